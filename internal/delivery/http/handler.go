package http

import (
	"errors"
	"net/http"

	"github.com/dermalens/backend/internal/domain"
	"github.com/dermalens/backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommendations *usecase.RecommendationService
}

// NewHandler creates a new HTTP handler
func NewHandler(recommendations *usecase.RecommendationService) *Handler {
	return &Handler{recommendations: recommendations}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "dermalens-backend",
		"version": "1.0.0",
	})
}

// similarRequest is the payload for the similar-products endpoint
type similarRequest struct {
	ProductID string             `json:"productId" binding:"required"`
	Profile   domain.UserProfile `json:"profile"`
}

// SimilarProducts handles similar-product ranking requests
func (h *Handler) SimilarProducts(c *gin.Context) {
	var req similarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}

	results, err := h.recommendations.SimilarProducts(c.Request.Context(), req.ProductID, req.Profile)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": results})
}

// CompatibleProducts handles compatibility search requests
func (h *Handler) CompatibleProducts(c *gin.Context) {
	var req similarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}

	results, err := h.recommendations.CompatibleProducts(c.Request.Context(), req.ProductID, req.Profile)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": results})
}

// compareRequest is the payload for the comparison endpoint
type compareRequest struct {
	ProductIDs []string `json:"productIds" binding:"required,min=1,max=3"`
}

// CompareProducts handles side-by-side comparison requests
func (h *Handler) CompareProducts(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productIds must list 1 to 3 products"})
		return
	}

	metrics, err := h.recommendations.CompareProducts(c.Request.Context(), req.ProductIDs)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// TimeOfDay classifies a product into its AM/PM routine slot
func (h *Handler) TimeOfDay(c *gin.Context) {
	productID := c.Param("id")

	slot, err := h.recommendations.ProductTimeOfDay(c.Request.Context(), productID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"productId": productID, "timeOfDay": slot.Slots()})
}

// reviewSimilarityRequest is the payload for the review-similarity endpoint
type reviewSimilarityRequest struct {
	Review domain.ReviewProfile `json:"review" binding:"required"`
	User   domain.UserProfile   `json:"user"`
}

// ReviewSimilarity scores a reviewer profile against the current user
func (h *Handler) ReviewSimilarity(c *gin.Context) {
	var req reviewSimilarityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "review profile is required"})
		return
	}

	c.JSON(http.StatusOK, usecase.CalculateSimilarityWeight(req.Review, req.User))
}

// ingredientCheckRequest is the payload for the ingredient pair check
type ingredientCheckRequest struct {
	IngredientA string `json:"ingredientA" binding:"required"`
	IngredientB string `json:"ingredientB" binding:"required"`
}

// CheckIngredients classifies one ingredient pair
func (h *Handler) CheckIngredients(c *gin.Context) {
	var req ingredientCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredientA and ingredientB are required"})
		return
	}

	c.JSON(http.StatusOK, usecase.CheckCompatibility(req.IngredientA, req.IngredientB))
}

// writeError maps domain errors to HTTP status codes
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCatalogAPIFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
