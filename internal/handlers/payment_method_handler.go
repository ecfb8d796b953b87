package handlers

import (
	"net/http"

	"github.com/codeAKstan/NexaVault-sub000/internal/models"
	"github.com/codeAKstan/NexaVault-sub000/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentMethodHandler handles payment method configuration HTTP requests
type PaymentMethodHandler struct {
	methodService *services.PaymentMethodService
}

// NewPaymentMethodHandler creates a new PaymentMethodHandler
func NewPaymentMethodHandler(methodService *services.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{methodService: methodService}
}

// GetEnabledMethods handles GET /payment-methods
func (h *PaymentMethodHandler) GetEnabledMethods(c *gin.Context) {
	methods, err := h.methodService.GetEnabledMethods(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get payment methods: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, methods)
}

// GetAllMethods handles GET /admin/payment-methods
func (h *PaymentMethodHandler) GetAllMethods(c *gin.Context) {
	methods, err := h.methodService.GetAllMethods(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get payment methods: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, methods)
}

// CreateMethod handles POST /admin/payment-methods
func (h *PaymentMethodHandler) CreateMethod(c *gin.Context) {
	var req models.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	method, err := h.methodService.CreateMethod(c, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment method: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, method)
}

// UpdateMethod handles PUT /admin/payment-methods/:id
func (h *PaymentMethodHandler) UpdateMethod(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req models.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	method, err := h.methodService.UpdateMethod(c, id, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment method: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, method)
}

// DeleteMethod handles DELETE /admin/payment-methods/:id
func (h *PaymentMethodHandler) DeleteMethod(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.methodService.DeleteMethod(c, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment method: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment method deleted"})
}
