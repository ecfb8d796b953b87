package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codeAKstan/NexaVault-sub000/internal/models"
	"github.com/codeAKstan/NexaVault-sub000/internal/repositories"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// SweepResult reports the outcome of one accrual sweep.
type SweepResult struct {
	Processed int       `json:"processed"`
	Timestamp time.Time `json:"timestamp"`
}

// AccrualService runs the recurring ROI sweep: it finds active investments
// whose payout is due, credits the periodic profit, advances each record's
// schedule, and completes investments whose end date has passed.
type AccrualService interface {
	RunSweep(ctx context.Context, now time.Time) (*SweepResult, error)
}

// Compile-time check to ensure AccrualServiceImpl implements AccrualService
var _ AccrualService = (*AccrualServiceImpl)(nil)

// AccrualServiceImpl implements AccrualService against the ledger repositories
type AccrualServiceImpl struct {
	investmentRepo  repositories.InvestmentRepository
	planRepo        repositories.PlanRepository
	userRepo        repositories.UserRepository
	transactionRepo repositories.TransactionRepository
}

// NewAccrualService creates a new AccrualServiceImpl
func NewAccrualService(
	investmentRepo repositories.InvestmentRepository,
	planRepo repositories.PlanRepository,
	userRepo repositories.UserRepository,
	transactionRepo repositories.TransactionRepository,
) *AccrualServiceImpl {
	return &AccrualServiceImpl{
		investmentRepo:  investmentRepo,
		planRepo:        planRepo,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
	}
}

// RunSweep processes every investment due at now. Each candidate is handled
// independently: a failure for one investment is logged and never aborts the
// rest of the sweep. A candidate whose claim write is lost to a concurrent
// sweep is skipped without crediting.
func (s *AccrualServiceImpl) RunSweep(ctx context.Context, now time.Time) (*SweepResult, error) {
	candidates, err := s.investmentRepo.FindDue(ctx, now)
	if err != nil {
		slog.Error("Accrual sweep: failed to query due investments", "error", err)
		return nil, fmt.Errorf("failed to query due investments: %w", err)
	}

	processed := 0
	for _, investment := range candidates {
		credited, err := s.processCandidate(ctx, investment, now)
		if err != nil {
			slog.Error("Accrual sweep: candidate failed",
				"error", err, "investmentId", investment.ID, "userId", investment.UserID)
			continue
		}
		if credited {
			processed++
		}
	}

	slog.Info("Accrual sweep finished", "candidates", len(candidates), "processed", processed)
	return &SweepResult{Processed: processed, Timestamp: now}, nil
}

// processCandidate runs the per-investment accrual sequence. It returns true
// only when a payout was credited; completing an expired investment or
// losing the claim both return false with no error.
func (s *AccrualServiceImpl) processCandidate(ctx context.Context, investment *models.Investment, now time.Time) (bool, error) {
	// Defensive re-check against stale reads; the claim write re-checks this
	// condition atomically as well.
	if investment.Status != models.InvestmentActive {
		return false, nil
	}

	// An investment at or past its end date completes without a payout on
	// the terminating sweep.
	if !now.Before(investment.EndDate) {
		completed, err := s.investmentRepo.Complete(ctx, investment.ID, now)
		if err != nil {
			return false, fmt.Errorf("failed to complete investment: %w", err)
		}
		if completed {
			slog.Info("Investment completed", "investmentId", investment.ID, "endDate", investment.EndDate)
		}
		return false, nil
	}

	plan, err := s.planRepo.FindByID(ctx, investment.PlanID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Data-integrity gap: plans should never be hard-deleted while
			// investments reference them. Skip, do not fail the sweep.
			slog.Warn("Accrual sweep: plan not found for investment",
				"investmentId", investment.ID, "planId", investment.PlanID)
			return false, nil
		}
		return false, fmt.Errorf("failed to load plan: %w", err)
	}

	profit := ComputeProfit(plan, investment.Amount)
	next := NextPayoutAfter(now, plan.TopUpInterval)

	claimed, err := s.investmentRepo.ClaimPayout(ctx, investment.ID, now, next, profit)
	if err != nil {
		return false, fmt.Errorf("failed to claim payout: %w", err)
	}
	if !claimed {
		// A concurrent sweep already paid this cycle.
		slog.Warn("Accrual sweep: claim lost, skipping", "investmentId", investment.ID)
		return false, nil
	}

	if err := s.userRepo.IncrementEarnings(ctx, investment.UserID, profit); err != nil {
		return false, fmt.Errorf("failed to credit user earnings: %w", err)
	}

	transaction := &models.Transaction{
		UserID:        investment.UserID,
		Type:          models.TransactionCredit,
		Amount:        profit,
		Status:        models.TransactionApproved,
		PaymentMethod: models.TransactionMethod{Name: "ROI: " + investment.PlanName},
	}
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return false, fmt.Errorf("failed to append audit transaction: %w", err)
	}

	slog.Info("ROI credited",
		"investmentId", investment.ID, "userId", investment.UserID,
		"profit", profit, "nextPayout", next)
	return true, nil
}

// ComputeProfit resolves one payout for a plan against an investment's
// principal. Percentage plans pay principal * topUpAmount / 100; fixed plans
// pay the flat topUpAmount.
func ComputeProfit(plan *models.Plan, principal float64) float64 {
	if plan.TopUpType == models.TopUpPercentage {
		return decimal.NewFromFloat(principal).
			Mul(decimal.NewFromFloat(plan.TopUpAmount)).
			Div(decimal.NewFromInt(100)).
			InexactFloat64()
	}
	return plan.TopUpAmount
}

// NextPayoutAfter advances the schedule one interval from the sweep's
// wall-clock time. The base is now, not the previous nextPayout, so a late
// sweep shifts the cadence forward rather than catching up. See DESIGN.md.
func NextPayoutAfter(now time.Time, interval models.TopUpInterval) time.Time {
	switch interval {
	case models.IntervalHourly:
		return now.Add(time.Hour)
	case models.IntervalDaily:
		return now.AddDate(0, 0, 1)
	case models.IntervalWeekly:
		return now.AddDate(0, 0, 7)
	case models.IntervalMonthly:
		return now.AddDate(0, 1, 0)
	case models.IntervalYearly:
		return now.AddDate(1, 0, 0)
	default:
		return now.AddDate(0, 0, 1)
	}
}
