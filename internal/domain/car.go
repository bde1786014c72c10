package domain

type CarStatus string

const (
	CarStatusAvailable CarStatus = "AVAILABLE"
	CarStatusRented    CarStatus = "RENTED"
)

type PricingClass string

const (
	PricingClassStandard PricingClass = "STANDARD"
	PricingClassLuxury   PricingClass = "LUXURY"
)

// Luxury cars carry a fixed 20% premium on the standard rate.
// Kept as a ratio so cent amounts stay exact.
const (
	luxuryPremiumNum = 6
	luxuryPremiumDen = 5
)

type Car struct {
	Registration   string       `json:"registration"`
	Model          string       `json:"model"`
	DailyRateCents int32        `json:"daily_rate_cents"`
	PricingClass   PricingClass `json:"pricing_class"`
	Status         CarStatus    `json:"status"`
	CreatedOn      string       `json:"created_on"`
	UpdatedOn      string       `json:"updated_on"`
}

// RentalCost returns the total cost in cents for the given number of days.
// days must be positive; the agency validates before calling.
func (c *Car) RentalCost(days int32) int32 {
	base := days * c.DailyRateCents
	if c.PricingClass == PricingClassLuxury {
		return base * luxuryPremiumNum / luxuryPremiumDen
	}
	return base
}

func (c *Car) Available() bool {
	return c.Status == CarStatusAvailable
}
