package memory

import (
	"sync"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

// Store keeps the whole fleet, customer roster and rental log in process
// memory: maps keyed by registration and customer id plus an append-only
// transaction slice. All access goes through the repository views, which
// copy values in and out so callers never hold an alias into the registry.
type Store struct {
	mu        sync.RWMutex
	cars      map[string]domain.Car
	customers map[string]domain.Customer
	rentals   []domain.RentalTransaction
	rentalIdx map[string]int // rental id -> position in rentals
}

func NewStore() *Store {
	return &Store{
		cars:      make(map[string]domain.Car),
		customers: make(map[string]domain.Customer),
		rentalIdx: make(map[string]int),
	}
}

func (s *Store) Cars() repository.CarRepository {
	return carRepository{s: s}
}

func (s *Store) Customers() repository.CustomerRepository {
	return customerRepository{s: s}
}

func (s *Store) Rentals() repository.RentalRepository {
	return rentalRepository{s: s}
}
