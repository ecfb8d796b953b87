package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/codeAKstan/NexaVault-sub000/internal/models"
	"github.com/codeAKstan/NexaVault-sub000/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvestmentHandler handles investment-related HTTP requests
type InvestmentHandler struct {
	investmentService *services.InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler
func NewInvestmentHandler(investmentService *services.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// Purchase handles POST /investments
func (h *InvestmentHandler) Purchase(c *gin.Context) {
	userID, err := subjectID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req models.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	investment, err := h.investmentService.Purchase(c, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAmountOutOfBounds), errors.Is(err, services.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to purchase investment: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, investment)
}

// GetMyInvestments handles GET /investments
func (h *InvestmentHandler) GetMyInvestments(c *gin.Context) {
	userID, err := subjectID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	investments, err := h.investmentService.GetInvestmentsByUser(c, userID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get investments: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, investments)
}

// GetAllInvestments handles GET /admin/investments
func (h *InvestmentHandler) GetAllInvestments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	investments, err := h.investmentService.GetAllInvestments(c, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get investments: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, investments)
}

// CancelInvestment handles POST /admin/investments/:id/cancel
func (h *InvestmentHandler) CancelInvestment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.investmentService.CancelInvestment(c, id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to cancel investment: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Investment cancelled"})
}

// GetInvestmentCount handles GET /admin/investments/count
func (h *InvestmentHandler) GetInvestmentCount(c *gin.Context) {
	count, err := h.investmentService.GetInvestmentCount(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get investment count: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
