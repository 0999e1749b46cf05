package model

import "ubishop/internal/domain/entity"

func (m *UserModel) ToDomain() *entity.User {
	return &entity.User{
		ID:        m.ID,
		Name:      m.Name,
		Secret:    m.Secret,
		Email:     m.Email,
		Phone:     m.Phone,
		RoleID:    m.RoleID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromUser(u *entity.User) *UserModel {
	return &UserModel{
		ID:        u.ID,
		Name:      u.Name,
		Secret:    u.Secret,
		Email:     u.Email,
		Phone:     u.Phone,
		RoleID:    u.RoleID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (m *StoreModel) ToDomain() *entity.Store {
	return &entity.Store{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		OwnerName:   m.OwnerName,
		UserID:      m.UserID,
		PlanID:      m.PlanID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromStore(s *entity.Store) *StoreModel {
	return &StoreModel{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		OwnerName:   s.OwnerName,
		UserID:      s.UserID,
		PlanID:      s.PlanID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (m *LocationModel) ToDomain() *entity.Location {
	return &entity.Location{
		StoreID:   m.StoreID,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		Address:   m.Address,
	}
}

func FromLocation(l *entity.Location) *LocationModel {
	return &LocationModel{
		StoreID:   l.StoreID,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Address:   l.Address,
	}
}

func (m *PlanModel) ToDomain() *entity.Plan {
	return &entity.Plan{ID: m.ID, Period: m.Period, Cost: m.Cost}
}

func (m *ProductModel) ToDomain() *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Description: m.Description,
		CategoryID:  m.CategoryID,
		StoreID:     m.StoreID,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromProduct(p *entity.Product) *ProductModel {
	return &ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		StoreID:     p.StoreID,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *CategoryModel) ToDomain() *entity.Category {
	return &entity.Category{ID: m.ID, Name: m.Name, Description: m.Description}
}

func (m *ReviewModel) ToDomain() *entity.Review {
	return &entity.Review{
		ID:        m.ID,
		UserID:    m.UserID,
		ProductID: m.ProductID,
		Rating:    m.Rating,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
	}
}

func FromReview(r *entity.Review) *ReviewModel {
	return &ReviewModel{
		ID:        r.ID,
		UserID:    r.UserID,
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

// All lists every model for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&PlanModel{},
		&StoreModel{},
		&LocationModel{},
		&CategoryModel{},
		&ProductModel{},
		&ReviewModel{},
	}
}
