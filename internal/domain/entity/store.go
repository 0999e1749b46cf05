package entity

import "time"

// Store is a shop run by a single user.
type Store struct {
	ID          int64
	Name        string
	Description string
	OwnerName   string
	UserID      int64 // Owning user, at most one store per user.
	PlanID      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy reports whether the user owns the store.
func (s *Store) OwnedBy(userID int64) bool {
	return s.UserID == userID
}

// StorePatch carries the optional fields of a partial store update.
type StorePatch struct {
	Name        *string
	Description *string
	OwnerName   *string
}

// StoreWithPlan is a store enriched with its billing plan.
type StoreWithPlan struct {
	Store
	Plan Plan
}

// StoreWithLocation is a store enriched with its location.
type StoreWithLocation struct {
	Store
	Location Location
}
