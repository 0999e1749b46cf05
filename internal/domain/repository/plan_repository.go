package repository

import (
	"context"
	"errors"

	"ubishop/internal/domain/entity"
)

// ErrPlanNotFound is returned when a plan is not found.
var ErrPlanNotFound = errors.New("plan not found")

// PlanRepository reads billing plans.
type PlanRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Plan, error)
	List(ctx context.Context) ([]*entity.Plan, error)
}
