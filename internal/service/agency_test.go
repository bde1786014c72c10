package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"carrental-backend/internal/clock"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository/memory"
	"carrental-backend/internal/service"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newAgency(t *testing.T, policy service.DuplicatePolicy) (service.AgencyService, *MockEmailService) {
	t.Helper()
	store := memory.NewStore()
	emailSvc := new(MockEmailService)
	emailSvc.On("SendRentalReceipt", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	emailSvc.On("SendReturnConfirmation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	svc := service.NewAgencyService(store.Cars(), store.Customers(), store.Rentals(), emailSvc, clock.NewFixed(testNow), policy)
	return svc, emailSvc
}

func registerFleet(t *testing.T, svc service.AgencyService) {
	t.Helper()
	ctx := context.Background()
	assert.NoError(t, svc.RegisterCar(ctx, &domain.Car{Registration: "KBC123", Model: "Toyota Corolla", DailyRateCents: 4000, PricingClass: domain.PricingClassStandard}))
	assert.NoError(t, svc.RegisterCar(ctx, &domain.Car{Registration: "KBP789", Model: "BMW 5 Series", DailyRateCents: 10000, PricingClass: domain.PricingClassLuxury}))
	assert.NoError(t, svc.RegisterCustomer(ctx, &domain.Customer{ID: "C001", Name: "Alice", ContactInfo: "alice@email.com"}))
	assert.NoError(t, svc.RegisterCustomer(ctx, &domain.Customer{ID: "C002", Name: "Bob", ContactInfo: "bob@email.com"}))
}

func TestAgencyService_RegisterCar(t *testing.T) {
	svc, _ := newAgency(t, service.DuplicatePolicyOverwrite)
	ctx := context.Background()

	t.Run("New cars are available", func(t *testing.T) {
		err := svc.RegisterCar(ctx, &domain.Car{Registration: "LMN456", Model: "Honda Civic", DailyRateCents: 5000})
		assert.NoError(t, err)

		car, err := svc.GetCar(ctx, "LMN456")
		assert.NoError(t, err)
		assert.Equal(t, domain.CarStatusAvailable, car.Status)
		assert.Equal(t, domain.PricingClassStandard, car.PricingClass)
	})

	t.Run("Overwrite policy replaces the entry", func(t *testing.T) {
		err := svc.RegisterCar(ctx, &domain.Car{Registration: "LMN456", Model: "Honda Civic 2026", DailyRateCents: 5500})
		assert.NoError(t, err)

		car, err := svc.GetCar(ctx, "LMN456")
		assert.NoError(t, err)
		assert.Equal(t, "Honda Civic 2026", car.Model)
	})

	t.Run("Reject policy refuses duplicates", func(t *testing.T) {
		strict, _ := newAgency(t, service.DuplicatePolicyReject)
		assert.NoError(t, strict.RegisterCar(ctx, &domain.Car{Registration: "AAA111", Model: "Mazda 3", DailyRateCents: 3500}))

		err := strict.RegisterCar(ctx, &domain.Car{Registration: "AAA111", Model: "Mazda 3", DailyRateCents: 3500})
		assert.ErrorIs(t, err, domain.ErrDuplicateCar)

		assert.NoError(t, strict.RegisterCustomer(ctx, &domain.Customer{ID: "C100", Name: "Cara"}))
		err = strict.RegisterCustomer(ctx, &domain.Customer{ID: "C100", Name: "Cara"})
		assert.ErrorIs(t, err, domain.ErrDuplicateCustomer)
	})
}

func TestAgencyService_RentCar(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, emailSvc := newAgency(t, service.DuplicatePolicyOverwrite)
		registerFleet(t, svc)

		rt, err := svc.RentCar(ctx, "KBC123", "C001", 5)
		assert.NoError(t, err)
		assert.True(t, rt.Open())
		assert.Equal(t, "KBC123", rt.CarRegistration)
		assert.Equal(t, "C001", rt.CustomerID)
		assert.Equal(t, int32(20000), rt.TotalCostCents) // 5 days * $40.00
		assert.Equal(t, "2026-03-01", rt.StartDate)
		assert.Equal(t, "2026-03-06", rt.DueDate)
		assert.Nil(t, rt.ReturnDate)

		car, err := svc.GetCar(ctx, "KBC123")
		assert.NoError(t, err)
		assert.False(t, car.Available())

		emailSvc.AssertCalled(t, "SendRentalReceipt", mock.Anything, "alice@email.com", "Alice", "Toyota Corolla", int32(5), int32(20000))
	})

	t.Run("Luxury pricing", func(t *testing.T) {
		svc, _ := newAgency(t, service.DuplicatePolicyOverwrite)
		registerFleet(t, svc)

		rt, err := svc.RentCar(ctx, "KBP789", "C002", 3)
		assert.NoError(t, err)
		assert.Equal(t, int32(36000), rt.TotalCostCents) // 3 * $100.00 * 1.2
	})

	t.Run("Unavailable car", func(t *testing.T) {
		svc, _ := newAgency(t, service.DuplicatePolicyOverwrite)
		registerFleet(t, svc)

		_, err := svc.RentCar(ctx, "KBC123", "C001", 5)
		assert.NoError(t, err)

		rt, err := svc.RentCar(ctx, "KBC123", "C002", 2)
		assert.ErrorIs(t, err, domain.ErrCarUnavailable)
		assert.Nil(t, rt)

		// No second transaction was recorded
		rentals, err := svc.ListTransactions(ctx)
		assert.NoError(t, err)
		assert.Len(t, rentals, 1)
	})

	t.Run("Unknown car", func(t *testing.T) {
		svc, _ := newAgency(t, service.DuplicatePolicyOverwrite)
		registerFleet(t, svc)

		rt, err := svc.RentCar(ctx, "ZZZ999", "C001", 2)
		assert.ErrorIs(t, err, domain.ErrCarNotFound)
		assert.Nil(t, rt)
	})

	t.Run("Unknown customer", func(t *testing.T) {
		svc, _ := newAgency(t, service.DuplicatePolicyOverwrite)
		registerFleet(t, svc)

		rt, err := svc.RentCar(ctx, "KBC123", "C999", 2)
		assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
		assert.Nil(t, rt)

		// Failed rent leaves the car untouched
		car, err := svc.GetCar(ctx, "KBC123")
		assert.NoError(t, err)
		assert.True(t, car.Available())
	})

	t.Run("Non-positive days", func(t *testing.T) {
		svc, _ := newAgency(t, service.DuplicatePolicyOverwrite)
		registerFleet(t, svc)

		_, err := svc.RentCar(ctx, "KBC123", "C001", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidDays)
		_, err = svc.RentCar(ctx, "KBC123", "C001", -3)
		assert.ErrorIs(t, err, domain.ErrInvalidDays)
	})

	t.Run("Cost is frozen at creation", func(t *testing.T) {
		svc, _ := newAgency(t, service.DuplicatePolicyOverwrite)
		registerFleet(t, svc)

		rt, err := svc.RentCar(ctx, "KBC123", "C001", 5)
		assert.NoError(t, err)
		assert.Equal(t, int32(20000), rt.TotalCostCents)

		// Re-registering the car with a new rate must not change the recorded cost
		_, err = svc.ReturnCar(ctx, "KBC123")
		assert.NoError(t, err)
		assert.NoError(t, svc.RegisterCar(ctx, &domain.Car{Registration: "KBC123", Model: "Toyota Corolla", DailyRateCents: 9000}))

		rentals, err := svc.ListTransactions(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int32(20000), rentals[0].TotalCostCents)
	})
}

func TestAgencyService_ReturnCar(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, emailSvc := newAgency(t, service.DuplicatePolicyOverwrite)
		registerFleet(t, svc)

		_, err := svc.RentCar(ctx, "KBC123", "C001", 5)
		assert.NoError(t, err)

		rt, err := svc.ReturnCar(ctx, "KBC123")
		assert.NoError(t, err)
		assert.False(t, rt.Open())
		if assert.NotNil(t, rt.ReturnDate) {
			assert.Equal(t, "2026-03-01", *rt.ReturnDate)
		}

		car, err := svc.GetCar(ctx, "KBC123")
		assert.NoError(t, err)
		assert.True(t, car.Available())

		emailSvc.AssertCalled(t, "SendReturnConfirmation", mock.Anything, "alice@email.com", "Alice", "Toyota Corolla", "2026-03-01")
	})

	t.Run("No open rental", func(t *testing.T) {
		svc, _ := newAgency(t, service.DuplicatePolicyOverwrite)
		registerFleet(t, svc)

		rt, err := svc.ReturnCar(ctx, "KBC123")
		assert.ErrorIs(t, err, domain.ErrNoOpenRental)
		assert.Nil(t, rt)

		// Unknown registration reports the same failure
		rt, err = svc.ReturnCar(ctx, "ZZZ999")
		assert.ErrorIs(t, err, domain.ErrNoOpenRental)
		assert.Nil(t, rt)
	})

	t.Run("Return twice fails the second time", func(t *testing.T) {
		svc, _ := newAgency(t, service.DuplicatePolicyOverwrite)
		registerFleet(t, svc)

		_, err := svc.RentCar(ctx, "KBC123", "C001", 5)
		assert.NoError(t, err)
		_, err = svc.ReturnCar(ctx, "KBC123")
		assert.NoError(t, err)

		_, err = svc.ReturnCar(ctx, "KBC123")
		assert.ErrorIs(t, err, domain.ErrNoOpenRental)
	})
}

func TestAgencyService_CustomerHistory(t *testing.T) {
	svc, _ := newAgency(t, service.DuplicatePolicyOverwrite)
	ctx := context.Background()
	registerFleet(t, svc)

	for i := 0; i < 3; i++ {
		_, err := svc.RentCar(ctx, "KBC123", "C001", 1)
		assert.NoError(t, err)
		_, err = svc.ReturnCar(ctx, "KBC123")
		assert.NoError(t, err)
	}
	_, err := svc.RentCar(ctx, "KBP789", "C002", 2)
	assert.NoError(t, err)

	history, err := svc.CustomerRentals(ctx, "C001")
	assert.NoError(t, err)
	assert.Len(t, history, 3)

	customer, err := svc.GetCustomer(ctx, "C002")
	assert.NoError(t, err)
	assert.Len(t, customer.Rentals, 1)

	_, err = svc.CustomerRentals(ctx, "C999")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestAgencyService_EndToEnd(t *testing.T) {
	svc, _ := newAgency(t, service.DuplicatePolicyOverwrite)
	ctx := context.Background()
	registerFleet(t, svc)

	// Alice rents the Corolla for 5 days
	rt1, err := svc.RentCar(ctx, "KBC123", "C001", 5)
	assert.NoError(t, err)
	assert.Equal(t, int32(20000), rt1.TotalCostCents)

	// Bob cannot rent the same car while it is out
	_, err = svc.RentCar(ctx, "KBC123", "C002", 2)
	assert.ErrorIs(t, err, domain.ErrCarUnavailable)

	available, err := svc.ListAvailableCars(ctx)
	assert.NoError(t, err)
	assert.Len(t, available, 1)
	assert.Equal(t, "KBP789", available[0].Registration)

	// After the return Bob can rent it
	_, err = svc.ReturnCar(ctx, "KBC123")
	assert.NoError(t, err)

	rt2, err := svc.RentCar(ctx, "KBC123", "C002", 2)
	assert.NoError(t, err)
	assert.Equal(t, int32(8000), rt2.TotalCostCents)

	// The log keeps every transaction in creation order
	rentals, err := svc.ListTransactions(ctx)
	assert.NoError(t, err)
	if assert.Len(t, rentals, 2) {
		assert.Equal(t, rt1.ID, rentals[0].ID)
		assert.Equal(t, rt2.ID, rentals[1].ID)
		assert.Equal(t, domain.RentalStatusClosed, rentals[0].Status)
		assert.Equal(t, domain.RentalStatusOpen, rentals[1].Status)
	}
}
