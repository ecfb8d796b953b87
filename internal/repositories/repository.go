package repositories

import (
	"context"
	"time"

	"github.com/codeAKstan/NexaVault-sub000/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context, page, limit int) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// IncrementEarnings atomically adds profit to a user's cumulative earnings.
	IncrementEarnings(ctx context.Context, userID primitive.ObjectID, amount float64) error
	// IncrementBalance atomically adjusts the spendable balance by amount,
	// which may be negative.
	IncrementBalance(ctx context.Context, userID primitive.ObjectID, amount float64) error
	// DebitBalance atomically deducts amount from the balance only when the
	// balance covers it. Returns false when funds are insufficient.
	DebitBalance(ctx context.Context, userID primitive.ObjectID, amount float64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// AdminRepository defines the interface for admin account operations
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// PlanRepository defines the interface for investment plan operations
type PlanRepository interface {
	Create(ctx context.Context, plan *models.Plan) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Plan, error)
	FindAll(ctx context.Context) ([]*models.Plan, error)
	Update(ctx context.Context, plan *models.Plan) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// InvestmentRepository defines the interface for investment ledger operations
type InvestmentRepository interface {
	Create(ctx context.Context, investment *models.Investment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Investment, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]*models.Investment, error)
	FindAll(ctx context.Context, page, limit int) ([]*models.Investment, error)
	// FindDue returns active investments whose next payout is unset or at or
	// before now.
	FindDue(ctx context.Context, now time.Time) ([]*models.Investment, error)
	// ClaimPayout advances the schedule and credits totalEarnings in a single
	// conditional write. The write only matches while the investment is still
	// active and still due, so a candidate can be claimed at most once per
	// cycle even when sweeps overlap. Returns false when the claim was lost.
	ClaimPayout(ctx context.Context, id primitive.ObjectID, now, next time.Time, profit float64) (bool, error)
	// Complete transitions an investment from active to completed. Returns
	// false when the investment was no longer active.
	Complete(ctx context.Context, id primitive.ObjectID, now time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.InvestmentStatus) error
	Count(ctx context.Context) (int64, error)
}

// TransactionRepository defines the interface for the audit transaction log
type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]*models.Transaction, error)
	FindByStatus(ctx context.Context, status models.TransactionStatus, page, limit int) ([]*models.Transaction, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.TransactionStatus) error
	Count(ctx context.Context) (int64, error)
}

// PaymentMethodRepository defines the interface for payment method configuration
type PaymentMethodRepository interface {
	Create(ctx context.Context, method *models.PaymentMethod) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.PaymentMethod, error)
	FindAll(ctx context.Context) ([]*models.PaymentMethod, error)
	FindEnabled(ctx context.Context) ([]*models.PaymentMethod, error)
	Update(ctx context.Context, method *models.PaymentMethod) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
