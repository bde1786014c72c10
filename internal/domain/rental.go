package domain

type RentalStatus string

const (
	RentalStatusOpen   RentalStatus = "OPEN"
	RentalStatusClosed RentalStatus = "CLOSED"
)

type RentalTransaction struct {
	ID              string  `json:"id"`
	CarRegistration string  `json:"car_registration"`
	CustomerID      string  `json:"customer_id"`
	StartDate       string  `json:"start_date"`
	Days            int32   `json:"days"`
	DueDate         string  `json:"due_date"`
	ReturnDate      *string `json:"return_date,omitempty"`
	// Cost snapshot — computed from the car's rate at creation time.
	// Later rate changes never alter a recorded transaction.
	TotalCostCents int32        `json:"total_cost_cents"`
	Status         RentalStatus `json:"status"`
	CreatedOn      string       `json:"created_on"`
	UpdatedOn      string       `json:"updated_on"`
}

func (t *RentalTransaction) Open() bool {
	return t.Status == RentalStatusOpen
}

// Close records the return date and ends the transaction. Valid only while
// open; the agency calls it at most once per transaction.
func (t *RentalTransaction) Close(returnDate string) {
	t.ReturnDate = &returnDate
	t.Status = RentalStatusClosed
}
