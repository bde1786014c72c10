package memory

import (
	"context"

	"carrental-backend/internal/domain"
)

type customerRepository struct {
	s *Store
}

func (r customerRepository) Save(ctx context.Context, customer *domain.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.customers[customer.ID] = *customer
	return nil
}

func (r customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	customer, ok := r.s.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return &customer, nil
}

func (r customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[customer.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	r.s.customers[customer.ID] = *customer
	return nil
}

func (r customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	customers := make([]domain.Customer, 0, len(r.s.customers))
	for _, customer := range r.s.customers {
		customers = append(customers, customer)
	}
	return customers, nil
}
