package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"carrental-backend/internal/clock"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

const dateLayout = "2006-01-02"

// DuplicatePolicy controls what happens when a car or customer is
// registered under an id that already exists.
type DuplicatePolicy string

const (
	DuplicatePolicyOverwrite DuplicatePolicy = "overwrite"
	DuplicatePolicyReject    DuplicatePolicy = "reject"
)

type agencyService struct {
	carRepo      repository.CarRepository
	customerRepo repository.CustomerRepository
	rentalRepo   repository.RentalRepository
	emailSvc     EmailService
	clock        clock.Clock
	policy       DuplicatePolicy

	// Guards the rent/return sequences so an availability flip and the
	// matching log write are never observed apart.
	mu sync.Mutex
}

func NewAgencyService(
	carRepo repository.CarRepository,
	customerRepo repository.CustomerRepository,
	rentalRepo repository.RentalRepository,
	emailSvc EmailService,
	clk clock.Clock,
	policy DuplicatePolicy,
) AgencyService {
	return &agencyService{
		carRepo:      carRepo,
		customerRepo: customerRepo,
		rentalRepo:   rentalRepo,
		emailSvc:     emailSvc,
		clock:        clk,
		policy:       policy,
	}
}

func (s *agencyService) RegisterCar(ctx context.Context, car *domain.Car) error {
	if s.policy == DuplicatePolicyReject {
		_, err := s.carRepo.GetByRegistration(ctx, car.Registration)
		if err == nil {
			return domain.ErrDuplicateCar
		}
		if !errors.Is(err, domain.ErrCarNotFound) {
			return err
		}
	}
	if car.PricingClass == "" {
		car.PricingClass = domain.PricingClassStandard
	}
	// Newly registered cars always start out available.
	car.Status = domain.CarStatusAvailable
	return s.carRepo.Save(ctx, car)
}

func (s *agencyService) RegisterCustomer(ctx context.Context, customer *domain.Customer) error {
	if s.policy == DuplicatePolicyReject {
		_, err := s.customerRepo.GetByID(ctx, customer.ID)
		if err == nil {
			return domain.ErrDuplicateCustomer
		}
		if !errors.Is(err, domain.ErrCustomerNotFound) {
			return err
		}
	}
	return s.customerRepo.Save(ctx, customer)
}

func (s *agencyService) GetCar(ctx context.Context, registration string) (*domain.Car, error) {
	return s.carRepo.GetByRegistration(ctx, registration)
}

func (s *agencyService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rentals, err := s.rentalRepo.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	customer.Rentals = rentals
	return customer, nil
}

func (s *agencyService) ListAvailableCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.ListAvailable(ctx)
}

func (s *agencyService) RentCar(ctx context.Context, registration, customerID string, days int32) (*domain.RentalTransaction, error) {
	if days <= 0 {
		return nil, domain.ErrInvalidDays
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	car, err := s.carRepo.GetByRegistration(ctx, registration)
	if err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !car.Available() {
		return nil, domain.ErrCarUnavailable
	}

	now := s.clock.Now()
	rt := &domain.RentalTransaction{
		ID:              uuid.NewString(),
		CarRegistration: car.Registration,
		CustomerID:      customer.ID,
		StartDate:       now.Format(dateLayout),
		Days:            days,
		DueDate:         now.AddDate(0, 0, int(days)).Format(dateLayout),
		TotalCostCents:  car.RentalCost(days),
		Status:          domain.RentalStatusOpen,
	}

	car.Status = domain.CarStatusRented
	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}
	if err := s.rentalRepo.Create(ctx, rt); err != nil {
		// Put the car back so a failed rent leaves no partial state.
		car.Status = domain.CarStatusAvailable
		_ = s.carRepo.Update(ctx, car)
		return nil, err
	}

	logger.InfoContext(ctx, "Car rented",
		"registration", car.Registration, "customer_id", customer.ID,
		"days", days, "total_cost_cents", rt.TotalCostCents)

	// Receipt is best effort; email failures never touch agency state.
	if err := s.emailSvc.SendRentalReceipt(ctx, customer.ContactInfo, customer.Name, car.Model, days, rt.TotalCostCents); err != nil {
		logger.Warn("Failed to send rental receipt", "error", err, "customer_id", customer.ID)
	}

	return rt, nil
}

func (s *agencyService) ReturnCar(ctx context.Context, registration string) (*domain.RentalTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rt, err := s.rentalRepo.GetOpenByCar(ctx, registration)
	if err != nil {
		return nil, err
	}
	car, err := s.carRepo.GetByRegistration(ctx, registration)
	if err != nil {
		return nil, err
	}

	returnDate := s.clock.Now().Format(dateLayout)
	rt.Close(returnDate)
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	car.Status = domain.CarStatusAvailable
	if err := s.carRepo.Update(ctx, car); err != nil {
		// Reopen the transaction so the log and the registry stay in step.
		rt.Status = domain.RentalStatusOpen
		rt.ReturnDate = nil
		_ = s.rentalRepo.Update(ctx, rt)
		return nil, err
	}

	logger.InfoContext(ctx, "Car returned",
		"registration", registration, "rental_id", rt.ID, "return_date", returnDate)

	if customer, err := s.customerRepo.GetByID(ctx, rt.CustomerID); err == nil {
		if err := s.emailSvc.SendReturnConfirmation(ctx, customer.ContactInfo, customer.Name, car.Model, returnDate); err != nil {
			logger.Warn("Failed to send return confirmation", "error", err, "customer_id", customer.ID)
		}
	}

	return rt, nil
}

func (s *agencyService) ListTransactions(ctx context.Context) ([]domain.RentalTransaction, error) {
	return s.rentalRepo.List(ctx)
}

func (s *agencyService) CustomerRentals(ctx context.Context, customerID string) ([]domain.RentalTransaction, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.rentalRepo.ListByCustomer(ctx, customerID)
}
