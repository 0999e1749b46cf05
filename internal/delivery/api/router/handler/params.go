package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"ubishop/internal/delivery/api/middleware"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/usecase"
)

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidID.WithDetails(map[string]string{name: raw})
	}

	return id, nil
}

// actor returns the authenticated caller. Routes using it sit behind
// the Authenticate middleware, so a missing actor is a wiring error.
func actor(c echo.Context) (usecase.Actor, error) {
	a, ok := middleware.GetActor(c)
	if !ok {
		return usecase.Actor{}, domainerrors.ErrUnauthenticated
	}

	return a, nil
}
