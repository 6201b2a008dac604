package customer

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"bwbackbone/internal/domain"
	"bwbackbone/internal/pkg/keylock"
	"bwbackbone/internal/pkg/validator"
)

var ErrValidation = errors.New("invalid customer data")

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context, limit, offset int) ([]domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
}

type Service struct {
	customers CustomerRepository
	locks     *keylock.KeyLock
}

func NewService(customers CustomerRepository, locks *keylock.KeyLock) *Service {
	return &Service{customers: customers, locks: locks}
}

func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (*domain.Customer, error) {
	if req.CompanyName == "" {
		return nil, ErrValidation
	}

	c := &domain.Customer{
		ID:           uuid.NewString(),
		CompanyName:  req.CompanyName,
		ContactName:  req.ContactName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
		BillingEmail: req.BillingEmail,
		PaymentTerms: req.PaymentTerms,
		Notes:        req.Notes,
	}
	if errs := validator.Validate(c); errs != nil {
		return nil, ErrValidation
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	return s.customers.List(ctx, limit, offset)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateCustomerRequest) (*domain.Customer, error) {
	unlock := s.locks.Lock("customer:" + id)
	defer unlock()

	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		if *req.CompanyName == "" {
			return nil, ErrValidation
		}
		c.CompanyName = *req.CompanyName
	}
	if req.ContactName != nil {
		c.ContactName = *req.ContactName
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.City != nil {
		c.City = *req.City
	}
	if req.State != nil {
		c.State = *req.State
	}
	if req.Zip != nil {
		c.Zip = *req.Zip
	}
	if req.BillingEmail != nil {
		c.BillingEmail = *req.BillingEmail
	}
	if req.PaymentTerms != nil {
		c.PaymentTerms = *req.PaymentTerms
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}

	if err := s.customers.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
