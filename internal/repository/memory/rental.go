package memory

import (
	"context"

	"carrental-backend/internal/domain"
)

type rentalRepository struct {
	s *Store
}

func (r rentalRepository) Create(ctx context.Context, rental *domain.RentalTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.rentalIdx[rental.ID] = len(r.s.rentals)
	r.s.rentals = append(r.s.rentals, *rental)
	return nil
}

func (r rentalRepository) GetByID(ctx context.Context, id string) (*domain.RentalTransaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	idx, ok := r.s.rentalIdx[id]
	if !ok {
		return nil, domain.ErrRentalNotFound
	}
	rental := r.s.rentals[idx]
	return &rental, nil
}

func (r rentalRepository) Update(ctx context.Context, rental *domain.RentalTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	idx, ok := r.s.rentalIdx[rental.ID]
	if !ok {
		return domain.ErrRentalNotFound
	}
	r.s.rentals[idx] = *rental
	return nil
}

func (r rentalRepository) List(ctx context.Context) ([]domain.RentalTransaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rentals := make([]domain.RentalTransaction, len(r.s.rentals))
	copy(rentals, r.s.rentals)
	return rentals, nil
}

func (r rentalRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.RentalTransaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var rentals []domain.RentalTransaction
	for _, rental := range r.s.rentals {
		if rental.CustomerID == customerID {
			rentals = append(rentals, rental)
		}
	}
	return rentals, nil
}

func (r rentalRepository) GetOpenByCar(ctx context.Context, registration string) (*domain.RentalTransaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, rental := range r.s.rentals {
		if rental.CarRegistration == registration && rental.Open() {
			found := rental
			return &found, nil
		}
	}
	return nil, domain.ErrNoOpenRental
}

func (r rentalRepository) ListOverdue(ctx context.Context, asOf string) ([]domain.RentalTransaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var rentals []domain.RentalTransaction
	for _, rental := range r.s.rentals {
		if rental.Open() && rental.DueDate < asOf {
			rentals = append(rentals, rental)
		}
	}
	return rentals, nil
}
