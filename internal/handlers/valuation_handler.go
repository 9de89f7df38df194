package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "smartval/internal/errors"
	"smartval/internal/services"
	"smartval/internal/valuation"
)

// multipartOverhead is the allowance for form fields and part headers on
// top of the image limit.
const multipartOverhead = 1 << 20

// ValuationHandler handles valuation form requests.
type ValuationHandler struct {
	valuationService services.ValuationServicer
	maxImageBytes    int64
}

// NewValuationHandler creates a new ValuationHandler.
func NewValuationHandler(valuationService services.ValuationServicer, maxImageBytes int64) *ValuationHandler {
	return &ValuationHandler{valuationService: valuationService, maxImageBytes: maxImageBytes}
}

// CreateValuationRequest represents the valuation form. Every field is
// required; missing fields are reported as an incomplete form.
type CreateValuationRequest struct {
	Category      string   `json:"category" form:"category" binding:"asset_category" example:"electronics"`
	OriginalPrice *float64 `json:"original_price" form:"original_price" example:"100000"`
	PurchaseYear  *int     `json:"purchase_year" form:"purchase_year" example:"2024"`
	Condition     string   `json:"condition" form:"condition" binding:"asset_condition" example:"good"`
	BrandTier     string   `json:"brand_tier" form:"brand_tier" binding:"brand_tier" example:"premium"`
}

// ValuationResponse is a priced valuation with its display strings.
type ValuationResponse struct {
	Valuation *services.Submission `json:"valuation"`
	Display   valuation.Display    `json:"display"`
	ImageURL  string               `json:"image_url,omitempty"`
}

// GetOptions handles listing the form choices.
// @Summary     Get valuation form options
// @Description List categories, conditions, brand tiers and the selectable purchase years
// @Tags        valuations
// @Produce     json
// @Success     200 {object} valuation.FormOptions "Form options"
// @Router      /valuations/options [get]
func (h *ValuationHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.valuationService.Options())
}

// CreateValuation handles a valuation form submission.
// @Summary     Value a used asset
// @Description Price an item with the pricing service and project its value over the next five years.
// @Description Accepts JSON, or multipart/form-data with an optional image part.
// @Tags        valuations
// @Accept      json,mpfd
// @Produce     json
// @Param       X-Session-ID header   string                 false "Form session identifier"
// @Param       request      body     CreateValuationRequest true  "Valuation form"
// @Success     200          {object} ValuationResponse      "Valuation"
// @Failure     400          {object} ErrorResponse          "Incomplete or invalid form"
// @Failure     409          {object} ErrorResponse          "Submission already in progress"
// @Failure     413          {object} ErrorResponse          "Image too large"
// @Failure     502          {object} ErrorResponse          "Pricing service unavailable"
// @Router      /valuations [post]
func (h *ValuationHandler) CreateValuation(c *gin.Context) {
	var (
		form services.ValuationForm
		err  error
	)
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		form, err = h.bindMultipart(c)
	} else {
		form, err = bindJSON(c)
	}
	if err != nil {
		respondWithError(c, err)
		return
	}

	sub, err := h.valuationService.Submit(c.Request.Context(), sessionKey(c), form)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ValuationResponse{
		Valuation: sub,
		Display:   valuation.Describe(sub.Input, sub.Result),
		ImageURL:  sub.ImageURL,
	})
}

func bindJSON(c *gin.Context) (services.ValuationForm, error) {
	var req CreateValuationRequest
	// An empty body is an empty form.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return services.ValuationForm{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return req.form(), nil
}

func (h *ValuationHandler) bindMultipart(c *gin.Context) (services.ValuationForm, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxImageBytes+multipartOverhead)

	var req CreateValuationRequest
	if err := c.ShouldBind(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return services.ValuationForm{}, apperrors.ErrImageTooLarge
		}
		return services.ValuationForm{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	// Form binding turns an empty number field into zero.
	if strings.TrimSpace(c.PostForm("original_price")) == "" {
		req.OriginalPrice = nil
	}
	if strings.TrimSpace(c.PostForm("purchase_year")) == "" {
		req.PurchaseYear = nil
	}

	form := req.form()
	img, err := h.readImage(c)
	if err != nil {
		return services.ValuationForm{}, err
	}
	form.Image = img
	return form, nil
}

// readImage returns the optional image part, reading at most one byte past
// the limit so the service can reject oversized uploads.
func (h *ValuationHandler) readImage(c *gin.Context) (*services.Image, error) {
	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unreadable image upload")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxImageBytes+1))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &services.Image{Filename: fh.Filename, Data: data}, nil
}

func (r CreateValuationRequest) form() services.ValuationForm {
	return services.ValuationForm{
		Category:      r.Category,
		OriginalPrice: r.OriginalPrice,
		PurchaseYear:  r.PurchaseYear,
		Condition:     r.Condition,
		BrandTier:     r.BrandTier,
	}
}

// RegisterRoutes mounts the valuation endpoints on rg.
func (h *ValuationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	valuations := rg.Group("/valuations")
	valuations.GET("/options", h.GetOptions)
	valuations.POST("", h.CreateValuation)
}
