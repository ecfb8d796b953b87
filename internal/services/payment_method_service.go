package services

import (
	"context"

	"github.com/codeAKstan/NexaVault-sub000/internal/models"
	"github.com/codeAKstan/NexaVault-sub000/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentMethodService handles payment method configuration
type PaymentMethodService struct {
	methodRepo repositories.PaymentMethodRepository
}

// NewPaymentMethodService creates a new PaymentMethodService
func NewPaymentMethodService(methodRepo repositories.PaymentMethodRepository) *PaymentMethodService {
	return &PaymentMethodService{methodRepo: methodRepo}
}

// GetEnabledMethods retrieves the methods shown to users on the deposit page
func (s *PaymentMethodService) GetEnabledMethods(ctx context.Context) ([]*models.PaymentMethod, error) {
	return s.methodRepo.FindEnabled(ctx)
}

// GetAllMethods retrieves every configured method
func (s *PaymentMethodService) GetAllMethods(ctx context.Context) ([]*models.PaymentMethod, error) {
	return s.methodRepo.FindAll(ctx)
}

// CreateMethod creates a new payment method, enabled by default
func (s *PaymentMethodService) CreateMethod(ctx context.Context, req *models.PaymentMethodRequest) (*models.PaymentMethod, error) {
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	method := &models.PaymentMethod{
		Name:    req.Name,
		Network: req.Network,
		Address: req.Address,
		Enabled: enabled,
	}
	if err := s.methodRepo.Create(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

// UpdateMethod updates an existing payment method
func (s *PaymentMethodService) UpdateMethod(ctx context.Context, id primitive.ObjectID, req *models.PaymentMethodRequest) (*models.PaymentMethod, error) {
	method, err := s.methodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	method.Name = req.Name
	method.Network = req.Network
	method.Address = req.Address
	if req.Enabled != nil {
		method.Enabled = *req.Enabled
	}

	if err := s.methodRepo.Update(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

// DeleteMethod removes a payment method
func (s *PaymentMethodService) DeleteMethod(ctx context.Context, id primitive.ObjectID) error {
	return s.methodRepo.Delete(ctx, id)
}
