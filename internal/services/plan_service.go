package services

import (
	"context"
	"errors"
	"time"

	"github.com/codeAKstan/NexaVault-sub000/internal/models"
	"github.com/codeAKstan/NexaVault-sub000/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidPlanBounds is returned when a plan's price or return bounds are inverted.
var ErrInvalidPlanBounds = errors.New("minPrice must not exceed maxPrice and minReturn must not exceed maxReturn")

// PlanService handles investment plan administration
type PlanService struct {
	planRepo repositories.PlanRepository
}

// NewPlanService creates a new PlanService
func NewPlanService(planRepo repositories.PlanRepository) *PlanService {
	return &PlanService{planRepo: planRepo}
}

func validatePlanBounds(req *models.PlanRequest) error {
	if req.MinPrice > req.MaxPrice || req.MinReturn > req.MaxReturn {
		return ErrInvalidPlanBounds
	}
	return nil
}

// GetAllPlans retrieves the plan catalog
func (s *PlanService) GetAllPlans(ctx context.Context) ([]*models.Plan, error) {
	return s.planRepo.FindAll(ctx)
}

// GetPlanByID retrieves a single plan
func (s *PlanService) GetPlanByID(ctx context.Context, id primitive.ObjectID) (*models.Plan, error) {
	return s.planRepo.FindByID(ctx, id)
}

// CreatePlan creates a new plan after validating its bounds
func (s *PlanService) CreatePlan(ctx context.Context, req *models.PlanRequest) (*models.Plan, error) {
	if err := validatePlanBounds(req); err != nil {
		return nil, err
	}

	plan := &models.Plan{
		Name:          req.Name,
		Price:         req.Price,
		MinPrice:      req.MinPrice,
		MaxPrice:      req.MaxPrice,
		MinReturn:     req.MinReturn,
		MaxReturn:     req.MaxReturn,
		TopUpInterval: req.TopUpInterval,
		TopUpType:     req.TopUpType,
		TopUpAmount:   req.TopUpAmount,
		Duration:      req.Duration,
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// UpdatePlan updates an existing plan after validating its bounds
func (s *PlanService) UpdatePlan(ctx context.Context, id primitive.ObjectID, req *models.PlanRequest) (*models.Plan, error) {
	if err := validatePlanBounds(req); err != nil {
		return nil, err
	}

	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	plan.Name = req.Name
	plan.Price = req.Price
	plan.MinPrice = req.MinPrice
	plan.MaxPrice = req.MaxPrice
	plan.MinReturn = req.MinReturn
	plan.MaxReturn = req.MaxReturn
	plan.TopUpInterval = req.TopUpInterval
	plan.TopUpType = req.TopUpType
	plan.TopUpAmount = req.TopUpAmount
	plan.Duration = req.Duration
	plan.UpdatedAt = time.Now()

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// DeletePlan removes a plan from the catalog
func (s *PlanService) DeletePlan(ctx context.Context, id primitive.ObjectID) error {
	return s.planRepo.Delete(ctx, id)
}
