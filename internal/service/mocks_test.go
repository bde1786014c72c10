package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalReceipt(ctx context.Context, email, name, model string, days, totalCostCents int32) error {
	args := m.Called(ctx, email, name, model, days, totalCostCents)
	return args.Error(0)
}

func (m *MockEmailService) SendReturnConfirmation(ctx context.Context, email, name, model, returnDate string) error {
	args := m.Called(ctx, email, name, model, returnDate)
	return args.Error(0)
}

func (m *MockEmailService) SendOverdueReminder(ctx context.Context, email, name, model, dueDate string) error {
	args := m.Called(ctx, email, name, model, dueDate)
	return args.Error(0)
}
