package services

import (
	"context"
	"errors"
	"testing"

	"github.com/codeAKstan/NexaVault-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newInvestmentFixture() (*InvestmentService, *MockInvestmentRepository, *MockPlanRepository, *MockUserRepository, *MockTransactionRepository) {
	investmentRepo := new(MockInvestmentRepository)
	planRepo := new(MockPlanRepository)
	userRepo := new(MockUserRepository)
	transactionRepo := new(MockTransactionRepository)
	service := NewInvestmentService(investmentRepo, planRepo, userRepo, transactionRepo)
	return service, investmentRepo, planRepo, userRepo, transactionRepo
}

func starterPlan() *models.Plan {
	return &models.Plan{
		ID:        primitive.NewObjectID(),
		Name:      "Starter",
		MinPrice:  100,
		MaxPrice:  5000,
		MinReturn: 1,
		MaxReturn: 3,
		Duration:  "30 Days",
	}
}

func TestPurchaseHappyPath(t *testing.T) {
	service, investmentRepo, planRepo, userRepo, transactionRepo := newInvestmentFixture()

	userID := primitive.NewObjectID()
	plan := starterPlan()
	req := &models.PurchaseRequest{PlanID: plan.ID.Hex(), Amount: 1000}

	planRepo.On("FindByID", mock.Anything, plan.ID).Return(plan, nil)
	userRepo.On("DebitBalance", mock.Anything, userID, 1000.0).Return(true, nil)
	investmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(inv *models.Investment) bool {
		return inv.UserID == userID &&
			inv.PlanID == plan.ID &&
			inv.PlanName == "Starter" &&
			inv.Amount == 1000.0 &&
			inv.Status == models.InvestmentActive &&
			inv.NextPayout == nil &&
			inv.EndDate.Equal(inv.StartDate.AddDate(0, 0, 30))
	})).Return(nil)
	transactionRepo.On("Create", mock.Anything, mock.MatchedBy(func(tx *models.Transaction) bool {
		return tx.Type == models.TransactionDebit &&
			tx.Status == models.TransactionApproved &&
			tx.Amount == 1000.0 &&
			tx.PaymentMethod.Name == "Investment: Starter" &&
			tx.Reference != ""
	})).Return(nil)

	investment, err := service.Purchase(context.Background(), userID, req)
	require.NoError(t, err)
	assert.Equal(t, "1% - 3%", investment.ROI)

	investmentRepo.AssertExpectations(t)
	transactionRepo.AssertExpectations(t)
}

func TestPurchaseRejectsAmountOutOfBounds(t *testing.T) {
	service, investmentRepo, planRepo, userRepo, _ := newInvestmentFixture()

	userID := primitive.NewObjectID()
	plan := starterPlan()
	planRepo.On("FindByID", mock.Anything, plan.ID).Return(plan, nil)

	for _, amount := range []float64{50, 99.99, 5000.01} {
		_, err := service.Purchase(context.Background(), userID, &models.PurchaseRequest{PlanID: plan.ID.Hex(), Amount: amount})
		assert.ErrorIs(t, err, ErrAmountOutOfBounds, "amount %v", amount)
	}

	userRepo.AssertNotCalled(t, "DebitBalance", mock.Anything, mock.Anything, mock.Anything)
	investmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPurchaseBoundaryAmountsAccepted(t *testing.T) {
	service, investmentRepo, planRepo, userRepo, transactionRepo := newInvestmentFixture()

	userID := primitive.NewObjectID()
	plan := starterPlan()
	planRepo.On("FindByID", mock.Anything, plan.ID).Return(plan, nil)
	userRepo.On("DebitBalance", mock.Anything, userID, mock.Anything).Return(true, nil)
	investmentRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	transactionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	for _, amount := range []float64{plan.MinPrice, plan.MaxPrice} {
		_, err := service.Purchase(context.Background(), userID, &models.PurchaseRequest{PlanID: plan.ID.Hex(), Amount: amount})
		assert.NoError(t, err, "amount %v", amount)
	}
}

func TestPurchaseInsufficientBalance(t *testing.T) {
	service, investmentRepo, planRepo, userRepo, _ := newInvestmentFixture()

	userID := primitive.NewObjectID()
	plan := starterPlan()
	planRepo.On("FindByID", mock.Anything, plan.ID).Return(plan, nil)
	userRepo.On("DebitBalance", mock.Anything, userID, 1000.0).Return(false, nil)

	_, err := service.Purchase(context.Background(), userID, &models.PurchaseRequest{PlanID: plan.ID.Hex(), Amount: 1000})
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	investmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPurchaseRefundsOnCreateFailure(t *testing.T) {
	service, investmentRepo, planRepo, userRepo, _ := newInvestmentFixture()

	userID := primitive.NewObjectID()
	plan := starterPlan()
	planRepo.On("FindByID", mock.Anything, plan.ID).Return(plan, nil)
	userRepo.On("DebitBalance", mock.Anything, userID, 1000.0).Return(true, nil)
	investmentRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("write failed"))
	userRepo.On("IncrementBalance", mock.Anything, userID, 1000.0).Return(nil)

	_, err := service.Purchase(context.Background(), userID, &models.PurchaseRequest{PlanID: plan.ID.Hex(), Amount: 1000})
	assert.Error(t, err)

	userRepo.AssertCalled(t, "IncrementBalance", mock.Anything, userID, 1000.0)
}

func TestPurchaseInvalidPlanID(t *testing.T) {
	service, _, planRepo, _, _ := newInvestmentFixture()

	_, err := service.Purchase(context.Background(), primitive.NewObjectID(), &models.PurchaseRequest{PlanID: "not-a-hex-id", Amount: 1000})
	assert.Error(t, err)

	planRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCancelInvestment(t *testing.T) {
	service, investmentRepo, _, _, _ := newInvestmentFixture()

	active := &models.Investment{ID: primitive.NewObjectID(), Status: models.InvestmentActive}
	investmentRepo.On("FindByID", mock.Anything, active.ID).Return(active, nil)
	investmentRepo.On("UpdateStatus", mock.Anything, active.ID, models.InvestmentCancelled).Return(nil)

	require.NoError(t, service.CancelInvestment(context.Background(), active.ID))

	completed := &models.Investment{ID: primitive.NewObjectID(), Status: models.InvestmentCompleted}
	investmentRepo.On("FindByID", mock.Anything, completed.ID).Return(completed, nil)

	err := service.CancelInvestment(context.Background(), completed.ID)
	assert.Error(t, err)
	investmentRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, completed.ID, mock.Anything)
}
