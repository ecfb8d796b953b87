package handlers

import (
	"net/http"
	"time"

	"github.com/codeAKstan/NexaVault-sub000/internal/services"
	"github.com/gin-gonic/gin"
)

// AccrualHandler exposes the cron-triggered ROI sweep
type AccrualHandler struct {
	accrualService services.AccrualService
}

// NewAccrualHandler creates a new AccrualHandler
func NewAccrualHandler(accrualService services.AccrualService) *AccrualHandler {
	return &AccrualHandler{accrualService: accrualService}
}

// RunSweep handles GET /cron/accrue, invoked by the external scheduler.
// Per-candidate failures are absorbed by the sweep; only a failure to query
// the ledger at all surfaces as a 500.
func (h *AccrualHandler) RunSweep(c *gin.Context) {
	result, err := h.accrualService.RunSweep(c, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run accrual sweep"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Accrual sweep completed",
		"processed": result.Processed,
		"timestamp": result.Timestamp.Format(time.RFC3339),
	})
}
