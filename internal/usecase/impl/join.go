package impl

import (
	"ubishop/internal/domain/entity"
)

// indexFirst keys rows by key. Rows arrive ordered by id, so keeping the
// first one seen makes the lowest id win when a key repeats.
func indexFirst[T any, K comparable](rows []*T, key func(*T) K) map[K]*T {
	idx := make(map[K]*T, len(rows))
	for _, row := range rows {
		k := key(row)
		if _, seen := idx[k]; !seen {
			idx[k] = row
		}
	}

	return idx
}

// joinProductsWithCategory enriches products with their category. Products
// whose category is missing are dropped.
func joinProductsWithCategory(products []*entity.Product, categories []*entity.Category) []*entity.ProductWithCategory {
	byID := indexFirst(categories, func(c *entity.Category) int64 { return c.ID })

	out := make([]*entity.ProductWithCategory, 0, len(products))
	for _, p := range products {
		if c, ok := byID[p.CategoryID]; ok {
			out = append(out, &entity.ProductWithCategory{Product: *p, Category: *c})
		}
	}

	return out
}

// joinProductsWithLocation enriches products with their store location.
// Products whose store has no location are dropped.
func joinProductsWithLocation(products []*entity.Product, locations []*entity.Location) []*entity.ProductWithLocation {
	byStore := indexFirst(locations, func(l *entity.Location) int64 { return l.StoreID })

	out := make([]*entity.ProductWithLocation, 0, len(products))
	for _, p := range products {
		if l, ok := byStore[p.StoreID]; ok {
			out = append(out, &entity.ProductWithLocation{Product: *p, Location: *l})
		}
	}

	return out
}

// joinReviewsWithAuthor adds the author name to each review. Reviews whose
// author is missing are kept with a nil name.
func joinReviewsWithAuthor(reviews []*entity.Review, users []*entity.User) []*entity.ReviewWithAuthor {
	byID := indexFirst(users, func(u *entity.User) int64 { return u.ID })

	out := make([]*entity.ReviewWithAuthor, 0, len(reviews))
	for _, r := range reviews {
		row := &entity.ReviewWithAuthor{Review: *r}
		if u, ok := byID[r.UserID]; ok {
			name := u.Name
			row.AuthorName = &name
		}
		out = append(out, row)
	}

	return out
}

// joinStoresWithLocation enriches stores with their location, dropping
// stores without one.
func joinStoresWithLocation(stores []*entity.Store, locations []*entity.Location) []*entity.StoreWithLocation {
	byStore := indexFirst(locations, func(l *entity.Location) int64 { return l.StoreID })

	out := make([]*entity.StoreWithLocation, 0, len(stores))
	for _, s := range stores {
		if l, ok := byStore[s.ID]; ok {
			out = append(out, &entity.StoreWithLocation{Store: *s, Location: *l})
		}
	}

	return out
}

// distinctUserIDs returns the author ids of reviews in first-seen order.
func distinctUserIDs(reviews []*entity.Review) []int64 {
	seen := make(map[int64]struct{}, len(reviews))
	ids := make([]int64, 0, len(reviews))
	for _, r := range reviews {
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}
		ids = append(ids, r.UserID)
	}

	return ids
}
