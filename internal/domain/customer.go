package domain

type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
	Rentals     []RentalTransaction `json:"rentals,omitempty"` // Populated when fetching customer details
	CreatedOn   string `json:"created_on"`
	UpdatedOn   string `json:"updated_on"`
}
