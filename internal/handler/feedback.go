package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"nearme/internal/model"
)

// FeedbackLogger persists user feedback actions.
type FeedbackLogger interface {
	LogFeedback(ctx context.Context, searchID, placeID, action string) error
}

// FeedbackHandler handles feedback-related HTTP requests.
type FeedbackHandler struct {
	logger FeedbackLogger // nil when persistence is not configured
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(logger FeedbackLogger) *FeedbackHandler {
	return &FeedbackHandler{logger: logger}
}

// Submit handles POST /api/feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req model.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	validActions := map[string]bool{
		"click":        true,
		"favorite":     true,
		"helpful":      true,
		"view_details": true,
	}
	if !validActions[req.Action] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action. Must be one of: click, favorite, helpful, view_details"})
		return
	}

	if h.logger == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Feedback logging is not configured"})
		return
	}

	if err := h.logger.LogFeedback(c.Request.Context(), req.SearchID, req.PlaceID, req.Action); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
