// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"strconv"
	"strings"

	"ubishop/internal/domain/entity"
	domainerrors "ubishop/internal/domain/errors"
)

// Actor is the authenticated caller of a write operation.
type Actor struct {
	UserID int64
	Role   entity.Role
}

// CategoryFilter selects products by category. All disables the filter.
type CategoryFilter struct {
	All bool
	ID  int64
}

// AllCategories is the filter matching every product.
var AllCategories = CategoryFilter{All: true}

// ParseCategoryFilter reads a category path or query value. Empty, "null"
// and "Todos" mean every category.
func ParseCategoryFilter(raw string) (CategoryFilter, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "", strings.EqualFold(raw, "null"), strings.EqualFold(raw, "todos"):
		return AllCategories, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return CategoryFilter{}, domainerrors.ErrInvalidID.WithDetails(map[string]string{"categoria_id": raw})
	}

	return CategoryFilter{ID: id}, nil
}

// Matches reports whether a product with categoryID passes the filter.
func (f CategoryFilter) Matches(categoryID int64) bool {
	return f.All || f.ID == categoryID
}
