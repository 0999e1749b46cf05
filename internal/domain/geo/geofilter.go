package geo

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/paulmach/orb"
)

// SortOrder is the requested price ordering.
type SortOrder string

const (
	SortNone       SortOrder = "none"
	SortAscending  SortOrder = "ascending"
	SortDescending SortOrder = "descending"
)

// ParseSortOrder accepts the short and long spellings. Empty means none.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case "asc", "ascending":
		return SortAscending, nil
	case "desc", "descending":
		return SortDescending, nil
	default:
		return SortNone, fmt.Errorf("unknown sort order %q", s)
	}
}

// Reverse returns the opposite ordering. None stays none.
func (o SortOrder) Reverse() SortOrder {
	switch o {
	case SortAscending:
		return SortDescending
	case SortDescending:
		return SortAscending
	default:
		return SortNone
	}
}

// Locatable is an item the filter can place, search and price.
type Locatable interface {
	// Coordinates returns the item position; ok is false when it has none.
	Coordinates() (p orb.Point, ok bool)
	SearchName() string
	SortPrice() float64
}

// Query describes one filter/rank pass.
type Query struct {
	// Origin is the caller position. Nil disables the distance filter.
	Origin *orb.Point
	// RadiusKm is inclusive. It is used as given.
	RadiusKm float64
	// Search keeps items whose name contains it, ignoring case.
	Search string
	Order  SortOrder
}

// Ranked is an item kept by Apply with its distance from the origin.
// DistanceKm is nil when the query had no origin.
type Ranked[T Locatable] struct {
	Item       T
	DistanceKm *float64
}

// Apply filters items by distance and name, then orders them by price.
// The sort is stable, so equal prices keep their input order. The result is
// never nil.
func Apply[T Locatable](items []T, q Query) []Ranked[T] {
	needle := strings.ToLower(q.Search)
	out := make([]Ranked[T], 0, len(items))

	for _, item := range items {
		var dist *float64
		if q.Origin != nil {
			p, ok := item.Coordinates()
			if !ok {
				continue
			}
			d := DistanceKm(*q.Origin, p)
			if d > q.RadiusKm {
				continue
			}
			dist = &d
		}

		if needle != "" && !strings.Contains(strings.ToLower(item.SearchName()), needle) {
			continue
		}

		out = append(out, Ranked[T]{Item: item, DistanceKm: dist})
	}

	switch q.Order {
	case SortAscending:
		slices.SortStableFunc(out, func(a, b Ranked[T]) int {
			return cmp.Compare(a.Item.SortPrice(), b.Item.SortPrice())
		})
	case SortDescending:
		slices.SortStableFunc(out, func(a, b Ranked[T]) int {
			return cmp.Compare(b.Item.SortPrice(), a.Item.SortPrice())
		})
	}

	return out
}

// Bounds returns the bounding box of the ranked items that have a position.
func Bounds[T Locatable](ranked []Ranked[T]) (orb.Bound, bool) {
	mp := make(orb.MultiPoint, 0, len(ranked))
	for _, r := range ranked {
		if p, ok := r.Item.Coordinates(); ok {
			mp = append(mp, p)
		}
	}
	if len(mp) == 0 {
		return orb.Bound{}, false
	}

	return mp.Bound(), true
}
