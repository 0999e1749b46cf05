package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"ubishop/internal/delivery/api/response"
	"ubishop/internal/usecase"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product-related handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for listing a product
type CreateProductRequest struct {
	Name        string   `json:"nombre_producto" validate:"notblank"`
	Price       *float64 `json:"precio" validate:"required,gte=0"`
	Description string   `json:"descripcion" validate:"notblank"`
	CategoryID  int64    `json:"categoria_id" validate:"required,gt=0"`
	StoreID     int64    `json:"tienda_id" validate:"required,gt=0"`
	Status      string   `json:"estado"`
}

// UpdateProductRequest represents the request body for replacing a product
type UpdateProductRequest struct {
	Name        string   `json:"nombre_producto" validate:"notblank"`
	Price       *float64 `json:"precio" validate:"required,gte=0"`
	Description string   `json:"descripcion" validate:"notblank"`
	CategoryID  int64    `json:"categoria_id" validate:"required,gt=0"`
}

type updateProductResponse struct {
	Message string      `json:"mensaje"`
	Product ProductView `json:"producto"`
}

type imageResponse struct {
	URL string `json:"url"`
}

// Create handles POST /productos
func (h *ProductHandler) Create(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos del producto inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	product, err := h.productUC.Create(c.Request().Context(), caller, usecase.CreateProductInput{
		Name:        req.Name,
		Price:       *req.Price,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		StoreID:     req.StoreID,
		Status:      req.Status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product))
}

// Update handles PUT /productos/:id
func (h *ProductHandler) Update(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos del producto inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	product, err := h.productUC.Update(c.Request().Context(), caller, productID, usecase.UpdateProductInput{
		Name:        req.Name,
		Price:       *req.Price,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updateProductResponse{
		Message: "Producto actualizado exitosamente",
		Product: toProductView(product),
	})
}

// Image handles GET /productos/:id/imagen
func (h *ProductHandler) Image(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	url, err := h.productUC.ImageURL(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, imageResponse{URL: url})
}
