package service

import (
	"context"

	"carrental-backend/internal/domain"
)

type AgencyService interface {
	RegisterCar(ctx context.Context, car *domain.Car) error
	RegisterCustomer(ctx context.Context, customer *domain.Customer) error
	GetCar(ctx context.Context, registration string) (*domain.Car, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	ListAvailableCars(ctx context.Context) ([]domain.Car, error)
	RentCar(ctx context.Context, registration, customerID string, days int32) (*domain.RentalTransaction, error)
	ReturnCar(ctx context.Context, registration string) (*domain.RentalTransaction, error)
	ListTransactions(ctx context.Context) ([]domain.RentalTransaction, error)
	CustomerRentals(ctx context.Context, customerID string) ([]domain.RentalTransaction, error)
}

type EmailService interface {
	SendRentalReceipt(ctx context.Context, email, name, model string, days, totalCostCents int32) error
	SendReturnConfirmation(ctx context.Context, email, name, model, returnDate string) error
	SendOverdueReminder(ctx context.Context, email, name, model, dueDate string) error
}
