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

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for POST /register
type RegisterRequest struct {
	Name   string `json:"nombre_usuario" validate:"notblank"`
	Email  string `json:"email" validate:"required,email"`
	Secret string `json:"clave" validate:"notblank"`
	RoleID int    `json:"rol_id" validate:"required"`
	Phone  string `json:"telefono" validate:"notblank"`
}

// LoginRequest represents the request body for POST /login
type LoginRequest struct {
	Email  string `json:"email" validate:"notblank"`
	Secret string `json:"clave" validate:"notblank"`
}

// UpdateUserRequest represents the request body for a partial profile update
type UpdateUserRequest struct {
	Name  *string `json:"nombre_usuario" validate:"omitnil,notblank"`
	Phone *string `json:"telefono" validate:"omitnil,notblank"`
	Email *string `json:"email" validate:"omitnil,email"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Message     string `json:"mensaje"`
	Role        string `json:"rol"`
	ID          int64  `json:"id"`
	Name        string `json:"nombre_usuario"`
	Email       string `json:"email"`
	Phone       string `json:"telefono"`
	AccessToken string `json:"access_token"`
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de registro inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	user, err := h.userUC.Register(c.Request().Context(), usecase.RegisterInput{
		Name:   req.Name,
		Secret: req.Secret,
		Email:  req.Email,
		Phone:  req.Phone,
		RoleID: req.RoleID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, response.MessageResponse{
		Message: "Usuario registrado exitosamente",
		ID:      user.ID,
	})
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de inicio de sesión inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.userUC.Login(c.Request().Context(), usecase.LoginInput{Email: req.Email, Secret: req.Secret})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Message:     "Inicio de sesión exitoso",
		Role:        output.Role.Label(),
		ID:          output.User.ID,
		Name:        output.User.Name,
		Email:       output.User.Email,
		Phone:       output.User.Phone,
		AccessToken: output.AccessToken,
	})
}

// List handles GET /usuarios
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(users, toUserView))
}

// Update handles PUT /usuarios/:id
func (h *UserHandler) Update(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	userID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos del usuario inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	patch := entity.UserPatch{Name: req.Name, Phone: req.Phone, Email: req.Email}
	if patch.Empty() {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("no fields to update"))
	}

	user, err := h.userUC.Update(c.Request().Context(), caller, userID, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserView(user))
}
