package handlers

import (
	"errors"
	"net/http"

	"github.com/codeAKstan/NexaVault-sub000/internal/models"
	"github.com/codeAKstan/NexaVault-sub000/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanHandler handles plan-related HTTP requests
type PlanHandler struct {
	planService *services.PlanService
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(planService *services.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// GetAllPlans handles GET /plans
func (h *PlanHandler) GetAllPlans(c *gin.Context) {
	plans, err := h.planService.GetAllPlans(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get plans: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetPlanByID handles GET /plans/:id
func (h *PlanHandler) GetPlanByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	plan, err := h.planService.GetPlanByID(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// CreatePlan handles POST /admin/plans
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planService.CreatePlan(c, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPlanBounds) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// UpdatePlan handles PUT /admin/plans/:id
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planService.UpdatePlan(c, id, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPlanBounds) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePlan handles DELETE /admin/plans/:id
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.planService.DeletePlan(c, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete plan: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted"})
}
