package postgres

import (
	"database/sql"

	"carrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CarRepository
	repository.CustomerRepository
	repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		CarRepository:      NewCarRepository(db),
		CustomerRepository: NewCustomerRepository(db),
		RentalRepository:   NewRentalRepository(db),
	}
}

func (s *Store) Cars() repository.CarRepository {
	return s.CarRepository
}

func (s *Store) Customers() repository.CustomerRepository {
	return s.CustomerRepository
}

func (s *Store) Rentals() repository.RentalRepository {
	return s.RentalRepository
}
