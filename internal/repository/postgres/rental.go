package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

const rentalColumns = `id, car_registration, customer_id, start_date, days, due_date, return_date, total_cost_cents, status, created_on, updated_on`

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.RentalTransaction) error {
	query := `INSERT INTO rentals (id, car_registration, customer_id, start_date, days, due_date, total_cost_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, rt.ID, rt.CarRegistration, rt.CustomerID, rt.StartDate, rt.Days, rt.DueDate, rt.TotalCostCents, rt.Status, time.Now(), time.Now())
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.RentalTransaction, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rt, err := r.scanRental(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	return rt, err
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.RentalTransaction) error {
	query := `UPDATE rentals SET return_date=$1, status=$2, updated_on=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, rt.ReturnDate, rt.Status, time.Now(), rt.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrRentalNotFound
	}
	return nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.RentalTransaction, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY created_on`
	return r.queryRentals(ctx, query)
}

func (r *rentalRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.RentalTransaction, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE customer_id = $1 ORDER BY created_on`
	return r.queryRentals(ctx, query, customerID)
}

func (r *rentalRepository) GetOpenByCar(ctx context.Context, registration string) (*domain.RentalTransaction, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE car_registration = $1 AND status = 'OPEN'`
	rt, err := r.scanRental(r.db.QueryRowContext(ctx, query, registration))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoOpenRental
	}
	return rt, err
}

func (r *rentalRepository) ListOverdue(ctx context.Context, asOf string) ([]domain.RentalTransaction, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = 'OPEN' AND due_date < $1 ORDER BY due_date`
	return r.queryRentals(ctx, query, asOf)
}

func (r *rentalRepository) scanRental(row *sql.Row) (*domain.RentalTransaction, error) {
	rt := &domain.RentalTransaction{}
	err := row.Scan(&rt.ID, &rt.CarRegistration, &rt.CustomerID, &rt.StartDate, &rt.Days, &rt.DueDate, &rt.ReturnDate, &rt.TotalCostCents, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) queryRentals(ctx context.Context, query string, args ...interface{}) ([]domain.RentalTransaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.RentalTransaction
	for rows.Next() {
		var rt domain.RentalTransaction
		if err := rows.Scan(&rt.ID, &rt.CarRegistration, &rt.CustomerID, &rt.StartDate, &rt.Days, &rt.DueDate, &rt.ReturnDate, &rt.TotalCostCents, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
