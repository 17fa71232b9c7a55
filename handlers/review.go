// handlers/review.go
package handlers

import (
	"errors"
	"net/http"

	"myadvisor/services/review"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes review endpoints.
type ReviewHandler struct {
	ReviewService review.ReviewService
}

func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{ReviewService: svc}
}

// CreateReviewHandler handles POST /api/reviews.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	var input review.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.ReviewService.CreateReview(usr.ID, input)
	if err != nil {
		if errors.Is(err, review.ErrInvalidRating) || errors.Is(err, review.ErrNotReviewable) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListAdvisorReviewsHandler handles GET /api/advisors/:id/reviews.
func (h *ReviewHandler) ListAdvisorReviewsHandler(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reviews, err := h.ReviewService.ListByAdvisor(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
