package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"ubishop/internal/delivery/api/response"
	"ubishop/internal/usecase"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review-related handlers
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// CreateReviewRequest represents the request body for reviewing a product.
// The author is taken from the access token.
type CreateReviewRequest struct {
	ProductID int64  `json:"producto_id" validate:"required,gt=0"`
	Rating    int    `json:"calificacion" validate:"required"`
	Comment   string `json:"comentario" validate:"notblank"`
}

// UpdateReviewRequest represents the request body for editing a review
type UpdateReviewRequest struct {
	Rating  int    `json:"calificacion" validate:"required"`
	Comment string `json:"comentario" validate:"notblank"`
}

type reviewResponse struct {
	Message string     `json:"mensaje"`
	Review  ReviewView `json:"opinion"`
}

type reviewSummaryView struct {
	ProductID int64   `json:"producto_id"`
	Average   float64 `json:"promedio"`
	Count     int     `json:"total"`
}

// List handles GET /opiniones
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.reviewUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(reviews, toReviewView))
}

// Create handles POST /opiniones
func (h *ReviewHandler) Create(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de la opinión inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	review, err := h.reviewUC.Create(c.Request().Context(), caller, usecase.CreateReviewInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, reviewResponse{
		Message: "Opinión registrada exitosamente",
		Review:  toReviewView(review),
	})
}

// Update handles PUT /opiniones/:id
func (h *ReviewHandler) Update(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviewID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de la opinión inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	review, err := h.reviewUC.Update(c.Request().Context(), caller, reviewID, usecase.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviewResponse{
		Message: "Opinión actualizada exitosamente",
		Review:  toReviewView(review),
	})
}

// Delete handles DELETE /opiniones/:id
func (h *ReviewHandler) Delete(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviewID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.reviewUC.Delete(c.Request().Context(), caller, reviewID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.MessageResponse{Message: "Opinión eliminada exitosamente"})
}

// Summary handles GET /productos/:id/calificacion
func (h *ReviewHandler) Summary(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.reviewUC.Summary(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviewSummaryView{
		ProductID: summary.ProductID,
		Average:   summary.Average,
		Count:     summary.Count,
	})
}
