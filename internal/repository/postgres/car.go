package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Save(ctx context.Context, car *domain.Car) error {
	query := `INSERT INTO cars (registration, model, daily_rate_cents, pricing_class, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (registration) DO UPDATE
	          SET model = EXCLUDED.model, daily_rate_cents = EXCLUDED.daily_rate_cents,
	              pricing_class = EXCLUDED.pricing_class, status = EXCLUDED.status, updated_on = EXCLUDED.updated_on`
	_, err := r.db.ExecContext(ctx, query, car.Registration, car.Model, car.DailyRateCents, car.PricingClass, car.Status, time.Now(), time.Now())
	return err
}

func (r *carRepository) GetByRegistration(ctx context.Context, registration string) (*domain.Car, error) {
	car := &domain.Car{}
	query := `SELECT registration, model, daily_rate_cents, pricing_class, status, created_on, updated_on FROM cars WHERE registration = $1`
	err := r.db.QueryRowContext(ctx, query, registration).Scan(&car.Registration, &car.Model, &car.DailyRateCents, &car.PricingClass, &car.Status, &car.CreatedOn, &car.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCarNotFound
	}
	if err != nil {
		return nil, err
	}
	return car, nil
}

func (r *carRepository) Update(ctx context.Context, car *domain.Car) error {
	query := `UPDATE cars SET model=$1, daily_rate_cents=$2, pricing_class=$3, status=$4, updated_on=$5 WHERE registration=$6`
	res, err := r.db.ExecContext(ctx, query, car.Model, car.DailyRateCents, car.PricingClass, car.Status, time.Now(), car.Registration)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrCarNotFound
	}
	return nil
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT registration, model, daily_rate_cents, pricing_class, status, created_on, updated_on FROM cars ORDER BY created_on`
	return r.queryCars(ctx, query)
}

func (r *carRepository) ListAvailable(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT registration, model, daily_rate_cents, pricing_class, status, created_on, updated_on FROM cars WHERE status = 'AVAILABLE' ORDER BY created_on`
	return r.queryCars(ctx, query)
}

func (r *carRepository) queryCars(ctx context.Context, query string, args ...interface{}) ([]domain.Car, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var car domain.Car
		if err := rows.Scan(&car.Registration, &car.Model, &car.DailyRateCents, &car.PricingClass, &car.Status, &car.CreatedOn, &car.UpdatedOn); err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	return cars, rows.Err()
}
