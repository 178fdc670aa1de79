package service

import (
	"context"
	"errors"

	"github.com/InhotaEverton/Aromas-Caf/internal/dto"
	"github.com/InhotaEverton/Aromas-Caf/internal/model"
	"github.com/InhotaEverton/Aromas-Caf/internal/repository"

	"github.com/google/uuid"
)

type CustomerService interface {
	Create(ctx context.Context, req dto.SaveCustomerRequest) (*dto.CustomerResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error)
	List(ctx context.Context, search string) ([]dto.CustomerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SaveCustomerRequest) (*dto.CustomerResponse, error)
}

type customerService struct {
	customers repository.CustomerRepository
}

func NewCustomerService(customers repository.CustomerRepository) CustomerService {
	return &customerService{customers: customers}
}

func (s *customerService) Create(ctx context.Context, req dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	customer := &model.Customer{
		ID:    uuid.New(),
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		TaxID: req.TaxID,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	resp := customerToResponse(customer)
	return &resp, nil
}

func (s *customerService) FindByID(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("customer not found")
	}
	resp := customerToResponse(customer)
	return &resp, nil
}

func (s *customerService) List(ctx context.Context, search string) ([]dto.CustomerResponse, error) {
	customers, err := s.customers.List(ctx, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, customerToResponse(&customers[i]))
	}
	return out, nil
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, req dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("customer not found")
	}
	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Email = req.Email
	customer.TaxID = req.TaxID
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	resp := customerToResponse(customer)
	return &resp, nil
}

func customerToResponse(c *model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:    c.ID.String(),
		Name:  c.Name,
		Phone: c.Phone,
		Email: c.Email,
		TaxID: c.TaxID,
	}
}
