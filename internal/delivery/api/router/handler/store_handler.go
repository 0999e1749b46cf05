package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"ubishop/internal/delivery/api/response"
	"ubishop/internal/domain/entity"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/usecase"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	Logger  *slog.Logger
}

// StoreHandler holds dependencies for store and store location handlers
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		logger:  params.Logger,
	}
}

// LocationRequest is a store position in a request body
type LocationRequest struct {
	Latitude  *float64 `json:"latitud" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitud" validate:"required,gte=-180,lte=180"`
	Address   string   `json:"direccion" validate:"notblank"`
}

func (r *LocationRequest) input() usecase.LocationInput {
	return usecase.LocationInput{Latitude: *r.Latitude, Longitude: *r.Longitude, Address: r.Address}
}

// CreateStoreRequest represents the request body for opening a store.
// The owner is taken from the access token.
type CreateStoreRequest struct {
	Name        string           `json:"nombre" validate:"notblank"`
	Description string           `json:"descripcion" validate:"notblank"`
	OwnerName   string           `json:"propietario" validate:"notblank"`
	PlanID      int64            `json:"plan_id" validate:"required,gt=0"`
	Location    *LocationRequest `json:"ubicacion" validate:"omitnil"`
}

// UpdateStoreRequest represents the request body for a partial store update
type UpdateStoreRequest struct {
	Name        *string `json:"nombre" validate:"omitnil,notblank"`
	Description *string `json:"descripcion" validate:"omitnil,notblank"`
	OwnerName   *string `json:"propietario" validate:"omitnil,notblank"`
}

// CreateLocationRequest represents the request body for POST /ubicacion
type CreateLocationRequest struct {
	StoreID int64 `json:"tienda_id" validate:"required,gt=0"`
	LocationRequest
}

type storeResponse struct {
	Message string    `json:"mensaje"`
	Store   StoreView `json:"tienda"`
}

type locationResponse struct {
	Message  string       `json:"mensaje"`
	Location locationView `json:"ubicacion"`
}

// List handles GET /tiendas
func (h *StoreHandler) List(c echo.Context) error {
	stores, err := h.storeUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(stores, toStoreView))
}

// Get handles GET /tienda/:id
func (h *StoreHandler) Get(c echo.Context) error {
	storeID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	store, err := h.storeUC.Get(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toStoreView(store))
}

// Create handles POST /tiendas
func (h *StoreHandler) Create(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de la tienda inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input := usecase.CreateStoreInput{
		Name:        req.Name,
		Description: req.Description,
		OwnerName:   req.OwnerName,
		PlanID:      req.PlanID,
	}
	if req.Location != nil {
		loc := req.Location.input()
		input.Location = &loc
	}

	store, err := h.storeUC.Create(c.Request().Context(), caller, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, storeResponse{
		Message: "Tienda registrada exitosamente",
		Store:   toStoreView(store),
	})
}

// Update handles PUT /tienda/:id
func (h *StoreHandler) Update(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	storeID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de la tienda inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.Name == nil && req.Description == nil && req.OwnerName == nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("no fields to update"))
	}

	store, err := h.storeUC.Update(c.Request().Context(), caller, storeID, entity.StorePatch{
		Name:        req.Name,
		Description: req.Description,
		OwnerName:   req.OwnerName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, storeResponse{
		Message: "Tienda actualizada con éxito",
		Store:   toStoreView(store),
	})
}

// ShareQR handles GET /tienda/:id/qr
func (h *StoreHandler) ShareQR(c echo.Context) error {
	storeID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.storeUC.ShareQR(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateLocation handles POST /ubicacion
func (h *StoreHandler) CreateLocation(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de la ubicación inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	location, err := h.storeUC.CreateLocation(c.Request().Context(), caller, req.StoreID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, locationResponse{
		Message:  "Ubicación registrada exitosamente",
		Location: toLocationView(location),
	})
}

// UpdateLocation handles PUT /ubicacion/:id where id is the store id
func (h *StoreHandler) UpdateLocation(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	storeID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de la ubicación inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	location, err := h.storeUC.UpdateLocation(c.Request().Context(), caller, storeID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locationResponse{
		Message:  "Ubicación actualizada",
		Location: toLocationView(location),
	})
}
