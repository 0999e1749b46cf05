package handler

import (
	"time"

	"ubishop/internal/domain/entity"
)

// ProductView is the JSON shape of a product.
type ProductView struct {
	ID          int64     `json:"producto_id"`
	Name        string    `json:"nombre_producto"`
	Price       float64   `json:"precio"`
	Description string    `json:"descripcion"`
	CategoryID  int64     `json:"categoria_id"`
	StoreID     int64     `json:"tienda_id"`
	Status      string    `json:"estado"`
	CreatedAt   time.Time `json:"fecha_creacion"`
}

// CategoryInfo is the category nested in a product.
type CategoryInfo struct {
	Name        string `json:"nombre_categoria"`
	Description string `json:"descripcion"`
}

// LocationInfo is the store position nested in products and stores.
type LocationInfo struct {
	Latitude  float64 `json:"latitud"`
	Longitude float64 `json:"longitud"`
	Address   string  `json:"direccion"`
}

// PlanInfo is the plan nested in a store.
type PlanInfo struct {
	Period string  `json:"periodo"`
	Cost   float64 `json:"costo"`
}

type productWithCategoryView struct {
	ProductView
	Category CategoryInfo `json:"categoriaInfo"`
}

type productWithLocationView struct {
	ProductView
	Location LocationInfo `json:"ubicacionInfo"`
}

// ReviewView is the JSON shape of a review.
type ReviewView struct {
	ID        int64     `json:"opinion_id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"producto_id"`
	Rating    int       `json:"calificacion"`
	Comment   string    `json:"comentario"`
	CreatedAt time.Time `json:"fecha_opinion"`
}

type reviewWithAuthorView struct {
	ReviewView
	Author *string `json:"usuario"`
}

// StoreView is the JSON shape of a store.
type StoreView struct {
	ID          int64  `json:"tienda_id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	OwnerName   string `json:"propietario"`
	UserID      int64  `json:"user_id"`
	PlanID      int64  `json:"plan_id"`
}

type storeWithPlanView struct {
	StoreView
	Plan PlanInfo `json:"planInfo"`
}

type storeWithLocationView struct {
	StoreView
	Location LocationInfo `json:"ubicacionInfo"`
}

// UserView is the JSON shape of a user. The credential is never exposed.
type UserView struct {
	ID     int64  `json:"user_id"`
	Name   string `json:"nombre_usuario"`
	Email  string `json:"email"`
	Phone  string `json:"telefono"`
	RoleID int    `json:"rol_id"`
}

type categoryView struct {
	ID          int64  `json:"categoria_id"`
	Name        string `json:"nombre_categoria"`
	Description string `json:"descripcion"`
}

type planView struct {
	ID     int64   `json:"plan_id"`
	Period string  `json:"periodo"`
	Cost   float64 `json:"costo"`
}

type locationView struct {
	StoreID int64 `json:"tienda_id"`
	LocationInfo
}

func toProductView(p *entity.Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		StoreID:     p.StoreID,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
}

func toLocationInfo(l entity.Location) LocationInfo {
	return LocationInfo{Latitude: l.Latitude, Longitude: l.Longitude, Address: l.Address}
}

func toReviewView(r *entity.Review) ReviewView {
	return ReviewView{
		ID:        r.ID,
		UserID:    r.UserID,
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func toStoreView(s *entity.Store) StoreView {
	return StoreView{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		OwnerName:   s.OwnerName,
		UserID:      s.UserID,
		PlanID:      s.PlanID,
	}
}

func toUserView(u *entity.User) UserView {
	return UserView{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, RoleID: u.RoleID}
}

func toLocationView(l *entity.Location) locationView {
	return locationView{StoreID: l.StoreID, LocationInfo: toLocationInfo(*l)}
}

// mapAll converts a slice, always returning a non-nil result so empty
// collections encode as [].
func mapAll[T, V any](items []T, fn func(T) V) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}
