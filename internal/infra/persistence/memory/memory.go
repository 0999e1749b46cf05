// Package memory is an in-process implementation of the repository
// interfaces, used by tests and local runs without PostgreSQL.
package memory

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"ubishop/internal/domain/entity"
	"ubishop/internal/domain/repository"
)

// table is an id-keyed collection with an insert sequence.
type table[T any] struct {
	rows map[int64]T
	seq  int64
}

func newTable[T any]() table[T] {
	return table[T]{rows: map[int64]T{}}
}

func (t table[T]) clone() table[T] {
	return table[T]{rows: maps.Clone(t.rows), seq: t.seq}
}

// next returns the next id, skipping ids that were set explicitly.
func (t *table[T]) next() int64 {
	for {
		t.seq++
		if _, taken := t.rows[t.seq]; !taken {
			return t.seq
		}
	}
}

// sorted returns the rows in ascending id order.
func (t table[T]) sorted() []T {
	out := make([]T, 0, len(t.rows))
	for _, id := range slices.Sorted(maps.Keys(t.rows)) {
		out = append(out, t.rows[id])
	}

	return out
}

type tables struct {
	users      table[entity.User]
	stores     table[entity.Store]
	locations  table[entity.Location]
	products   table[entity.Product]
	categories table[entity.Category]
	plans      table[entity.Plan]
	reviews    table[entity.Review]
}

func (t *tables) clone() *tables {
	return &tables{
		users:      t.users.clone(),
		stores:     t.stores.clone(),
		locations:  t.locations.clone(),
		products:   t.products.clone(),
		categories: t.categories.clone(),
		plans:      t.plans.clone(),
		reviews:    t.reviews.clone(),
	}
}

// DB holds every collection behind one mutex.
type DB struct {
	mu sync.Mutex
	t  *tables
}

// New returns an empty database.
func New() *DB {
	return &DB{t: &tables{
		users:      newTable[entity.User](),
		stores:     newTable[entity.Store](),
		locations:  newTable[entity.Location](),
		products:   newTable[entity.Product](),
		categories: newTable[entity.Category](),
		plans:      newTable[entity.Plan](),
		reviews:    newTable[entity.Review](),
	}}
}

func (db *DB) read(fn func(t *tables)) {
	db.mu.Lock()
	defer db.mu.Unlock()
	fn(db.t)
}

func (db *DB) write(fn func(t *tables) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	return fn(db.t)
}

// AddCategory inserts a category, assigning an id when it has none.
func (db *DB) AddCategory(c entity.Category) int64 {
	db.mu.Lock()
	defer db.mu.Unlock()
	if c.ID == 0 {
		c.ID = db.t.categories.next()
	}
	db.t.categories.rows[c.ID] = c

	return c.ID
}

// AddPlan inserts a plan, assigning an id when it has none.
func (db *DB) AddPlan(p entity.Plan) int64 {
	db.mu.Lock()
	defer db.mu.Unlock()
	if p.ID == 0 {
		p.ID = db.t.plans.next()
	}
	db.t.plans.rows[p.ID] = p

	return p.ID
}

type txManager struct {
	db *DB
}

// NewTransactionManager serializes transactions against db. The callback
// works on a copy that replaces the live tables only when it returns nil.
func NewTransactionManager(db *DB) repository.TransactionManager {
	return &txManager{db: db}
}

func (m *txManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	txDB := &DB{t: m.db.t.clone()}
	if err := fn(&factory{db: txDB}); err != nil {
		return err
	}
	m.db.t = txDB.t

	return nil
}

type factory struct {
	db *DB
}

func (f *factory) NewUserRepository() repository.UserRepository { return NewUserRepository(f.db) }
func (f *factory) NewStoreRepository() repository.StoreRepository {
	return NewStoreRepository(f.db)
}
func (f *factory) NewLocationRepository() repository.LocationRepository {
	return NewLocationRepository(f.db)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ptr[T any](v T) *T {
	return &v
}

func ptrs[T any](rows []T) []*T {
	out := make([]*T, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}

	return out
}
