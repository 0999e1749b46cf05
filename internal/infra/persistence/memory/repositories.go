package memory

import (
	"context"
	"slices"
	"time"

	"ubishop/internal/domain/entity"
	"ubishop/internal/domain/repository"
)

type userRepository struct{ db *DB }

// NewUserRepository returns a UserRepository backed by db.
func NewUserRepository(db *DB) repository.UserRepository { return &userRepository{db: db} }

func (r *userRepository) FindByID(_ context.Context, id int64) (*entity.User, error) {
	var (
		u  entity.User
		ok bool
	)
	r.db.read(func(t *tables) { u, ok = t.users.rows[id] })
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &u, nil
}

func (r *userRepository) FindByIDs(_ context.Context, ids []int64) ([]*entity.User, error) {
	out := []*entity.User{}
	r.db.read(func(t *tables) {
		for _, u := range t.users.sorted() {
			if slices.Contains(ids, u.ID) {
				out = append(out, ptr(u))
			}
		}
	})

	return out, nil
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	var found *entity.User
	email = normalizeEmail(email)
	r.db.read(func(t *tables) {
		for _, u := range t.users.sorted() {
			if normalizeEmail(u.Email) == email {
				found = ptr(u)
				return
			}
		}
	})
	if found == nil {
		return nil, repository.ErrUserNotFound
	}

	return found, nil
}

func (r *userRepository) List(_ context.Context) ([]*entity.User, error) {
	var rows []entity.User
	r.db.read(func(t *tables) { rows = t.users.sorted() })

	return ptrs(rows), nil
}

func emailTaken(t *tables, email string, except int64) bool {
	for id, u := range t.users.rows {
		if id != except && normalizeEmail(u.Email) == normalizeEmail(email) {
			return true
		}
	}

	return false
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	return r.db.write(func(t *tables) error {
		if emailTaken(t, user.Email, 0) {
			return repository.ErrEmailTaken
		}
		now := time.Now()
		user.ID = t.users.next()
		user.CreatedAt, user.UpdatedAt = now, now
		t.users.rows[user.ID] = *user

		return nil
	})
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	return r.db.write(func(t *tables) error {
		cur, ok := t.users.rows[user.ID]
		if !ok {
			return repository.ErrUserNotFound
		}
		if emailTaken(t, user.Email, user.ID) {
			return repository.ErrEmailTaken
		}
		cur.Name, cur.Phone, cur.Email = user.Name, user.Phone, user.Email
		cur.UpdatedAt = time.Now()
		t.users.rows[user.ID] = cur

		return nil
	})
}

type storeRepository struct{ db *DB }

// NewStoreRepository returns a StoreRepository backed by db.
func NewStoreRepository(db *DB) repository.StoreRepository { return &storeRepository{db: db} }

func (r *storeRepository) FindByID(_ context.Context, id int64) (*entity.Store, error) {
	var (
		s  entity.Store
		ok bool
	)
	r.db.read(func(t *tables) { s, ok = t.stores.rows[id] })
	if !ok {
		return nil, repository.ErrStoreNotFound
	}

	return &s, nil
}

func (r *storeRepository) FindByOwner(_ context.Context, userID int64) (*entity.Store, error) {
	var found *entity.Store
	r.db.read(func(t *tables) {
		for _, s := range t.stores.sorted() {
			if s.UserID == userID {
				found = ptr(s)
				return
			}
		}
	})
	if found == nil {
		return nil, repository.ErrStoreNotFound
	}

	return found, nil
}

func (r *storeRepository) List(_ context.Context) ([]*entity.Store, error) {
	var rows []entity.Store
	r.db.read(func(t *tables) { rows = t.stores.sorted() })

	return ptrs(rows), nil
}

func (r *storeRepository) Create(_ context.Context, store *entity.Store) error {
	return r.db.write(func(t *tables) error {
		for _, s := range t.stores.rows {
			if s.UserID == store.UserID {
				return repository.ErrStoreOwnerTaken
			}
		}
		now := time.Now()
		store.ID = t.stores.next()
		store.CreatedAt, store.UpdatedAt = now, now
		t.stores.rows[store.ID] = *store

		return nil
	})
}

func (r *storeRepository) Update(_ context.Context, store *entity.Store) error {
	return r.db.write(func(t *tables) error {
		cur, ok := t.stores.rows[store.ID]
		if !ok {
			return repository.ErrStoreNotFound
		}
		cur.Name, cur.Description, cur.OwnerName = store.Name, store.Description, store.OwnerName
		cur.UpdatedAt = time.Now()
		t.stores.rows[store.ID] = cur

		return nil
	})
}

type locationRepository struct{ db *DB }

// NewLocationRepository returns a LocationRepository backed by db.
func NewLocationRepository(db *DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) FindByStore(_ context.Context, storeID int64) (*entity.Location, error) {
	var (
		l  entity.Location
		ok bool
	)
	r.db.read(func(t *tables) { l, ok = t.locations.rows[storeID] })
	if !ok {
		return nil, repository.ErrLocationNotFound
	}

	return &l, nil
}

func (r *locationRepository) List(_ context.Context) ([]*entity.Location, error) {
	var rows []entity.Location
	r.db.read(func(t *tables) { rows = t.locations.sorted() })

	return ptrs(rows), nil
}

func (r *locationRepository) Create(_ context.Context, location *entity.Location) error {
	return r.db.write(func(t *tables) error {
		if _, ok := t.locations.rows[location.StoreID]; ok {
			return repository.ErrLocationExists
		}
		t.locations.rows[location.StoreID] = *location

		return nil
	})
}

func (r *locationRepository) Update(_ context.Context, location *entity.Location) error {
	return r.db.write(func(t *tables) error {
		if _, ok := t.locations.rows[location.StoreID]; !ok {
			return repository.ErrLocationNotFound
		}
		t.locations.rows[location.StoreID] = *location

		return nil
	})
}

type productRepository struct{ db *DB }

// NewProductRepository returns a ProductRepository backed by db.
func NewProductRepository(db *DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	var (
		p  entity.Product
		ok bool
	)
	r.db.read(func(t *tables) { p, ok = t.products.rows[id] })
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return &p, nil
}

func (r *productRepository) List(_ context.Context) ([]*entity.Product, error) {
	var rows []entity.Product
	r.db.read(func(t *tables) { rows = t.products.sorted() })

	return ptrs(rows), nil
}

func (r *productRepository) ListByCategory(_ context.Context, categoryID int64) ([]*entity.Product, error) {
	out := []*entity.Product{}
	r.db.read(func(t *tables) {
		for _, p := range t.products.sorted() {
			if p.CategoryID == categoryID {
				out = append(out, ptr(p))
			}
		}
	})

	return out, nil
}

func (r *productRepository) Create(_ context.Context, product *entity.Product) error {
	return r.db.write(func(t *tables) error {
		now := time.Now()
		product.ID = t.products.next()
		if product.Status == "" {
			product.Status = entity.ProductStatusActive
		}
		product.CreatedAt, product.UpdatedAt = now, now
		t.products.rows[product.ID] = *product

		return nil
	})
}

func (r *productRepository) Update(_ context.Context, product *entity.Product) error {
	return r.db.write(func(t *tables) error {
		cur, ok := t.products.rows[product.ID]
		if !ok {
			return repository.ErrProductNotFound
		}
		cur.Name, cur.Price, cur.Description, cur.CategoryID =
			product.Name, product.Price, product.Description, product.CategoryID
		cur.UpdatedAt = time.Now()
		t.products.rows[product.ID] = cur

		return nil
	})
}

type categoryRepository struct{ db *DB }

// NewCategoryRepository returns a CategoryRepository backed by db.
func NewCategoryRepository(db *DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(_ context.Context) ([]*entity.Category, error) {
	var rows []entity.Category
	r.db.read(func(t *tables) { rows = t.categories.sorted() })

	return ptrs(rows), nil
}

type planRepository struct{ db *DB }

// NewPlanRepository returns a PlanRepository backed by db.
func NewPlanRepository(db *DB) repository.PlanRepository { return &planRepository{db: db} }

func (r *planRepository) FindByID(_ context.Context, id int64) (*entity.Plan, error) {
	var (
		p  entity.Plan
		ok bool
	)
	r.db.read(func(t *tables) { p, ok = t.plans.rows[id] })
	if !ok {
		return nil, repository.ErrPlanNotFound
	}

	return &p, nil
}

func (r *planRepository) List(_ context.Context) ([]*entity.Plan, error) {
	var rows []entity.Plan
	r.db.read(func(t *tables) { rows = t.plans.sorted() })

	return ptrs(rows), nil
}

type reviewRepository struct{ db *DB }

// NewReviewRepository returns a ReviewRepository backed by db.
func NewReviewRepository(db *DB) repository.ReviewRepository { return &reviewRepository{db: db} }

func (r *reviewRepository) FindByID(_ context.Context, id int64) (*entity.Review, error) {
	var (
		rv entity.Review
		ok bool
	)
	r.db.read(func(t *tables) { rv, ok = t.reviews.rows[id] })
	if !ok {
		return nil, repository.ErrReviewNotFound
	}

	return &rv, nil
}

func (r *reviewRepository) List(_ context.Context) ([]*entity.Review, error) {
	var rows []entity.Review
	r.db.read(func(t *tables) { rows = t.reviews.sorted() })

	return ptrs(rows), nil
}

func (r *reviewRepository) ListByProduct(_ context.Context, productID int64) ([]*entity.Review, error) {
	out := []*entity.Review{}
	r.db.read(func(t *tables) {
		for _, rv := range t.reviews.sorted() {
			if rv.ProductID == productID {
				out = append(out, ptr(rv))
			}
		}
	})

	return out, nil
}

func (r *reviewRepository) Summarize(_ context.Context, productID int64) (*entity.ReviewSummary, error) {
	summary := &entity.ReviewSummary{ProductID: productID}
	total := 0
	r.db.read(func(t *tables) {
		for _, rv := range t.reviews.rows {
			if rv.ProductID == productID {
				summary.Count++
				total += rv.Rating
			}
		}
	})
	if summary.Count > 0 {
		summary.Average = float64(total) / float64(summary.Count)
	}

	return summary, nil
}

func (r *reviewRepository) Create(_ context.Context, review *entity.Review) error {
	return r.db.write(func(t *tables) error {
		review.ID = t.reviews.next()
		if review.CreatedAt.IsZero() {
			review.CreatedAt = time.Now()
		}
		t.reviews.rows[review.ID] = *review

		return nil
	})
}

func (r *reviewRepository) Update(_ context.Context, review *entity.Review) error {
	return r.db.write(func(t *tables) error {
		cur, ok := t.reviews.rows[review.ID]
		if !ok {
			return repository.ErrReviewNotFound
		}
		cur.Rating, cur.Comment = review.Rating, review.Comment
		t.reviews.rows[review.ID] = cur

		return nil
	})
}

func (r *reviewRepository) Delete(_ context.Context, id int64) error {
	return r.db.write(func(t *tables) error {
		if _, ok := t.reviews.rows[id]; !ok {
			return repository.ErrReviewNotFound
		}
		delete(t.reviews.rows, id)

		return nil
	})
}
