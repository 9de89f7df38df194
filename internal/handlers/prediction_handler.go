package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "smartval/internal/errors"
	"smartval/internal/estimator"
	"smartval/internal/pagination"
	"smartval/internal/services"
)

// PredictionHandler serves the pricing service endpoints.
type PredictionHandler struct {
	predictionService services.PredictionServicer
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(predictionService services.PredictionServicer) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

// PredictRequest represents the numeric features of an item to price.
type PredictRequest struct {
	OriginalPrice float64 `json:"original_price" binding:"required,gt=0" example:"100000"`
	Age           *int    `json:"age" binding:"required,min=0" example:"2"`
	Condition     int     `json:"condition" binding:"required,condition_code" example:"4"`
	BrandTier     int     `json:"brand_tier" binding:"required,brand_tier_code" example:"3"`
}

// PredictResponse carries the estimated resale price.
type PredictResponse struct {
	EstimatedPrice float64 `json:"estimated_price" example:"65000"`
}

// Root handles the liveness probe.
// @Summary     Pricing service status
// @Tags        pricing
// @Produce     json
// @Success     200 {object} map[string]string "Service is running"
// @Router      / [get]
func (h *PredictionHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "SmartVal pricing service is running"})
}

// Predict handles pricing a single item.
// @Summary     Predict resale price
// @Description Estimate the resale price of a used item and record the prediction
// @Tags        pricing
// @Accept      json
// @Produce     json
// @Param       request body     PredictRequest  true "Item features"
// @Success     200     {object} PredictResponse "Estimated price"
// @Failure     400     {object} ErrorResponse   "Invalid input"
// @Failure     500     {object} ErrorResponse   "Server error"
// @Router      /predict [post]
func (h *PredictionHandler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	log, err := h.predictionService.Predict(estimator.Features{
		OriginalPrice: req.OriginalPrice,
		Age:           *req.Age,
		Condition:     req.Condition,
		BrandTier:     req.BrandTier,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, PredictResponse{EstimatedPrice: log.EstimatedPrice})
}

// GetHistory handles listing past predictions.
// @Summary     List prediction history
// @Description Get paginated predictions, newest first
// @Tags        pricing
// @Produce     json
// @Param       X-API-Key header string false "History API key, when configured"
// @Param       page      query  int    false "Page number (default 1)"
// @Param       page_size query  int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.ValuationLog] "Paginated history"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /history [get]
func (h *PredictionHandler) GetHistory(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.predictionService.GetHistory(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RegisterRoutes mounts the pricing endpoints on rg. historyAuth guards
// the history listing.
func (h *PredictionHandler) RegisterRoutes(rg gin.IRoutes, historyAuth gin.HandlerFunc) {
	rg.GET("/", h.Root)
	rg.POST("/predict", h.Predict)
	rg.GET("/history", historyAuth, h.GetHistory)
}
