package domain

import "errors"

var (
	ErrCarNotFound       = errors.New("car not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrCarUnavailable    = errors.New("car is not available")
	ErrNoOpenRental      = errors.New("no open rental for car")
	ErrRentalNotFound    = errors.New("rental not found")
	ErrDuplicateCar      = errors.New("car already registered")
	ErrDuplicateCustomer = errors.New("customer already registered")
	ErrInvalidDays       = errors.New("rental days must be positive")
)
