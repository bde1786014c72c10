package repository

import (
	"context"

	"carrental-backend/internal/domain"
)

// Store bundles the three registries. Implemented by the memory and
// postgres backends; the storage type is selected in config.
type Store interface {
	Cars() CarRepository
	Customers() CustomerRepository
	Rentals() RentalRepository
}

type CarRepository interface {
	// Save inserts the car or overwrites an existing entry with the same
	// registration. Duplicate policy is enforced by the agency service.
	Save(ctx context.Context, car *domain.Car) error
	GetByRegistration(ctx context.Context, registration string) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	List(ctx context.Context) ([]domain.Car, error)
	ListAvailable(ctx context.Context) ([]domain.Car, error)
}

type CustomerRepository interface {
	Save(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	List(ctx context.Context) ([]domain.Customer, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.RentalTransaction) error
	GetByID(ctx context.Context, id string) (*domain.RentalTransaction, error)
	Update(ctx context.Context, rental *domain.RentalTransaction) error
	// List returns every transaction ever created, in creation order.
	List(ctx context.Context) ([]domain.RentalTransaction, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.RentalTransaction, error)
	// GetOpenByCar returns the single open transaction for the car, or
	// domain.ErrNoOpenRental. The agency guarantees at most one.
	GetOpenByCar(ctx context.Context, registration string) (*domain.RentalTransaction, error)
	// ListOverdue returns open transactions whose due date is before asOf
	// (yyyy-mm-dd).
	ListOverdue(ctx context.Context, asOf string) ([]domain.RentalTransaction, error)
}
