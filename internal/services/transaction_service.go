package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/codeAKstan/NexaVault-sub000/internal/models"
	"github.com/codeAKstan/NexaVault-sub000/internal/repositories"
	"github.com/codeAKstan/NexaVault-sub000/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// ErrTransactionNotPending is returned when approving or declining a
// transaction that has already been reviewed.
var ErrTransactionNotPending = errors.New("transaction is not pending")

// TransactionService handles deposit/withdrawal requests and admin review
type TransactionService struct {
	transactionRepo repositories.TransactionRepository
	userRepo        repositories.UserRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo repositories.TransactionRepository, userRepo repositories.UserRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
	}
}

// RequestDeposit records a pending credit. The balance is only credited once
// an admin approves the deposit.
func (s *TransactionService) RequestDeposit(ctx context.Context, userID primitive.ObjectID, req *models.DepositRequest) (*models.Transaction, error) {
	reference, err := utils.GenerateReference(16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reference: %w", err)
	}

	transaction := &models.Transaction{
		UserID:        userID,
		Type:          models.TransactionCredit,
		Amount:        req.Amount,
		Status:        models.TransactionPending,
		PaymentMethod: models.TransactionMethod{Name: req.Method},
		Reference:     reference,
		ProofURL:      req.ProofURL,
	}
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create deposit request: %w", err)
	}

	slog.Info("Deposit requested", "userId", userID, "amount", req.Amount, "method", req.Method)
	return transaction, nil
}

// RequestWithdrawal holds the requested amount immediately and records a
// pending debit. Declining the request refunds the hold.
func (s *TransactionService) RequestWithdrawal(ctx context.Context, userID primitive.ObjectID, req *models.WithdrawRequest) (*models.Transaction, error) {
	held, err := s.userRepo.DebitBalance(ctx, userID, req.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to hold withdrawal amount: %w", err)
	}
	if !held {
		return nil, ErrInsufficientBalance
	}

	reference, err := utils.GenerateReference(16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reference: %w", err)
	}

	transaction := &models.Transaction{
		UserID:        userID,
		Type:          models.TransactionDebit,
		Amount:        req.Amount,
		Status:        models.TransactionPending,
		PaymentMethod: models.TransactionMethod{Name: req.Method},
		Reference:     reference,
	}
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		// The hold went through but the request record did not; release it.
		if refundErr := s.userRepo.IncrementBalance(ctx, userID, req.Amount); refundErr != nil {
			slog.Error("Failed to release withdrawal hold after create failure",
				"error", refundErr, "userId", userID, "amount", req.Amount)
		}
		return nil, fmt.Errorf("failed to create withdrawal request: %w", err)
	}

	slog.Info("Withdrawal requested", "userId", userID, "amount", req.Amount, "method", req.Method)
	return transaction, nil
}

// Approve marks a pending transaction approved. Approving a deposit credits
// the user's balance; an approved withdrawal needs no balance change since
// the amount was held at request time.
func (s *TransactionService) Approve(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("transaction not found: %w", err)
	}
	if transaction.Status != models.TransactionPending {
		return nil, ErrTransactionNotPending
	}

	if transaction.Type == models.TransactionCredit {
		if err := s.userRepo.IncrementBalance(ctx, transaction.UserID, transaction.Amount); err != nil {
			return nil, fmt.Errorf("failed to credit balance: %w", err)
		}
	}

	if err := s.transactionRepo.UpdateStatus(ctx, id, models.TransactionApproved); err != nil {
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}

	transaction.Status = models.TransactionApproved
	slog.Info("Transaction approved", "transactionId", id, "userId", transaction.UserID, "amount", transaction.Amount)
	return transaction, nil
}

// Decline marks a pending transaction declined. Declining a withdrawal
// releases the amount held at request time.
func (s *TransactionService) Decline(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("transaction not found: %w", err)
	}
	if transaction.Status != models.TransactionPending {
		return nil, ErrTransactionNotPending
	}

	if transaction.Type == models.TransactionDebit {
		if err := s.userRepo.IncrementBalance(ctx, transaction.UserID, transaction.Amount); err != nil {
			return nil, fmt.Errorf("failed to refund withdrawal hold: %w", err)
		}
	}

	if err := s.transactionRepo.UpdateStatus(ctx, id, models.TransactionDeclined); err != nil {
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}

	transaction.Status = models.TransactionDeclined
	slog.Info("Transaction declined", "transactionId", id, "userId", transaction.UserID, "amount", transaction.Amount)
	return transaction, nil
}

// GetTransactionsByUser retrieves a user's transactions with pagination
func (s *TransactionService) GetTransactionsByUser(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]*models.Transaction, error) {
	return s.transactionRepo.FindByUserID(ctx, userID, page, limit)
}

// GetTransactionsByStatus retrieves transactions by status with pagination
func (s *TransactionService) GetTransactionsByStatus(ctx context.Context, status models.TransactionStatus, page, limit int) ([]*models.Transaction, error) {
	return s.transactionRepo.FindByStatus(ctx, status, page, limit)
}

// GetTransactionCount gets the total number of transactions
func (s *TransactionService) GetTransactionCount(ctx context.Context) (int64, error) {
	return s.transactionRepo.Count(ctx)
}
