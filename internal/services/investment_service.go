package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codeAKstan/NexaVault-sub000/internal/models"
	"github.com/codeAKstan/NexaVault-sub000/internal/repositories"
	"github.com/codeAKstan/NexaVault-sub000/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// ErrAmountOutOfBounds is returned when a purchase amount falls outside the
// plan's allocation range.
var ErrAmountOutOfBounds = errors.New("amount is outside the plan's allowed range")

// ErrInsufficientBalance is returned when a user's balance cannot cover a
// purchase or withdrawal.
var ErrInsufficientBalance = errors.New("insufficient balance")

// InvestmentService handles investment purchase and browsing
type InvestmentService struct {
	investmentRepo  repositories.InvestmentRepository
	planRepo        repositories.PlanRepository
	userRepo        repositories.UserRepository
	transactionRepo repositories.TransactionRepository
}

// NewInvestmentService creates a new InvestmentService
func NewInvestmentService(
	investmentRepo repositories.InvestmentRepository,
	planRepo repositories.PlanRepository,
	userRepo repositories.UserRepository,
	transactionRepo repositories.TransactionRepository,
) *InvestmentService {
	return &InvestmentService{
		investmentRepo:  investmentRepo,
		planRepo:        planRepo,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
	}
}

// Purchase allocates part of a user's balance into a plan. The principal is
// held conditionally so concurrent purchases cannot overdraw, the end date
// is fixed from the plan's duration string, and the first payout is left due
// immediately (nextPayout unset).
func (s *InvestmentService) Purchase(ctx context.Context, userID primitive.ObjectID, req *models.PurchaseRequest) (*models.Investment, error) {
	planID, err := primitive.ObjectIDFromHex(req.PlanID)
	if err != nil {
		return nil, fmt.Errorf("invalid plan id: %w", err)
	}

	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("plan not found: %w", err)
	}

	if req.Amount < plan.MinPrice || req.Amount > plan.MaxPrice {
		return nil, ErrAmountOutOfBounds
	}

	reference, err := utils.GenerateReference(16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reference: %w", err)
	}

	debited, err := s.userRepo.DebitBalance(ctx, userID, req.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to debit balance: %w", err)
	}
	if !debited {
		return nil, ErrInsufficientBalance
	}

	now := time.Now()
	investment := &models.Investment{
		UserID:    userID,
		PlanID:    plan.ID,
		PlanName:  plan.Name,
		Amount:    req.Amount,
		ROI:       fmt.Sprintf("%g%% - %g%%", plan.MinReturn, plan.MaxReturn),
		Status:    models.InvestmentActive,
		StartDate: now,
		EndDate:   utils.PlanEndDate(now, plan.Duration),
	}
	if err := s.investmentRepo.Create(ctx, investment); err != nil {
		// The principal was already held; put it back rather than strand it.
		if refundErr := s.userRepo.IncrementBalance(ctx, userID, req.Amount); refundErr != nil {
			slog.Error("Failed to refund principal after create failure",
				"error", refundErr, "userId", userID, "amount", req.Amount)
		}
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	transaction := &models.Transaction{
		UserID:        userID,
		Type:          models.TransactionDebit,
		Amount:        req.Amount,
		Status:        models.TransactionApproved,
		PaymentMethod: models.TransactionMethod{Name: "Investment: " + plan.Name},
		Reference:     reference,
	}
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		slog.Error("Failed to record purchase transaction", "error", err, "investmentId", investment.ID)
	}

	slog.Info("Investment purchased",
		"investmentId", investment.ID, "userId", userID,
		"plan", plan.Name, "amount", req.Amount, "endDate", investment.EndDate)
	return investment, nil
}

// GetInvestmentsByUser retrieves a user's investments with pagination
func (s *InvestmentService) GetInvestmentsByUser(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]*models.Investment, error) {
	return s.investmentRepo.FindByUserID(ctx, userID, page, limit)
}

// GetAllInvestments retrieves all investments with pagination
func (s *InvestmentService) GetAllInvestments(ctx context.Context, page, limit int) ([]*models.Investment, error) {
	return s.investmentRepo.FindAll(ctx, page, limit)
}

// GetInvestmentByID retrieves a single investment
func (s *InvestmentService) GetInvestmentByID(ctx context.Context, id primitive.ObjectID) (*models.Investment, error) {
	return s.investmentRepo.FindByID(ctx, id)
}

// CancelInvestment marks an active investment cancelled. The principal is
// not returned; refund policy is an admin decision handled through balance
// adjustment.
func (s *InvestmentService) CancelInvestment(ctx context.Context, id primitive.ObjectID) error {
	investment, err := s.investmentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if investment.Status != models.InvestmentActive {
		return fmt.Errorf("investment is not active (current: %s)", investment.Status)
	}
	return s.investmentRepo.UpdateStatus(ctx, id, models.InvestmentCancelled)
}

// GetInvestmentCount gets the total number of investments
func (s *InvestmentService) GetInvestmentCount(ctx context.Context) (int64, error) {
	return s.investmentRepo.Count(ctx)
}
