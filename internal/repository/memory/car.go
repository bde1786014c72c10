package memory

import (
	"context"

	"carrental-backend/internal/domain"
)

type carRepository struct {
	s *Store
}

func (r carRepository) Save(ctx context.Context, car *domain.Car) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.cars[car.Registration] = *car
	return nil
}

func (r carRepository) GetByRegistration(ctx context.Context, registration string) (*domain.Car, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	car, ok := r.s.cars[registration]
	if !ok {
		return nil, domain.ErrCarNotFound
	}
	return &car, nil
}

func (r carRepository) Update(ctx context.Context, car *domain.Car) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.cars[car.Registration]; !ok {
		return domain.ErrCarNotFound
	}
	r.s.cars[car.Registration] = *car
	return nil
}

func (r carRepository) List(ctx context.Context) ([]domain.Car, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	cars := make([]domain.Car, 0, len(r.s.cars))
	for _, car := range r.s.cars {
		cars = append(cars, car)
	}
	return cars, nil
}

func (r carRepository) ListAvailable(ctx context.Context) ([]domain.Car, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var cars []domain.Car
	for _, car := range r.s.cars {
		if car.Available() {
			cars = append(cars, car)
		}
	}
	return cars, nil
}
