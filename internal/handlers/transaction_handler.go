package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/codeAKstan/NexaVault-sub000/internal/models"
	"github.com/codeAKstan/NexaVault-sub000/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionHandler handles deposit/withdrawal HTTP requests and admin review
type TransactionHandler struct {
	transactionService *services.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// RequestDeposit handles POST /transactions/deposit
func (h *TransactionHandler) RequestDeposit(c *gin.Context) {
	userID, err := subjectID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req models.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.transactionService.RequestDeposit(c, userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to request deposit: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// RequestWithdrawal handles POST /transactions/withdraw
func (h *TransactionHandler) RequestWithdrawal(c *gin.Context) {
	userID, err := subjectID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req models.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.transactionService.RequestWithdrawal(c, userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientBalance) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to request withdrawal: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// GetMyTransactions handles GET /transactions
func (h *TransactionHandler) GetMyTransactions(c *gin.Context) {
	userID, err := subjectID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	transactions, err := h.transactionService.GetTransactionsByUser(c, userID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get transactions: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// GetTransactionsByStatus handles GET /admin/transactions/status/:status
func (h *TransactionHandler) GetTransactionsByStatus(c *gin.Context) {
	status := models.TransactionStatus(c.Param("status"))
	switch status {
	case models.TransactionPending, models.TransactionApproved, models.TransactionDeclined:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	transactions, err := h.transactionService.GetTransactionsByStatus(c, status, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get transactions: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// Approve handles POST /admin/transactions/:id/approve
func (h *TransactionHandler) Approve(c *gin.Context) {
	h.review(c, h.transactionService.Approve)
}

// Decline handles POST /admin/transactions/:id/decline
func (h *TransactionHandler) Decline(c *gin.Context) {
	h.review(c, h.transactionService.Decline)
}

func (h *TransactionHandler) review(c *gin.Context, fn func(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error)) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	transaction, err := fn(c, id)
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotPending) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to review transaction: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// GetTransactionCount handles GET /admin/transactions/count
func (h *TransactionHandler) GetTransactionCount(c *gin.Context) {
	count, err := h.transactionService.GetTransactionCount(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get transaction count: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
