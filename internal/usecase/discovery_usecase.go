package usecase

import (
	"context"

	"github.com/paulmach/orb"

	"ubishop/internal/domain/entity"
)

// NearbyInput is a nearby-product query. Latitude and Longitude come as a
// pair; without them no distance filter is applied.
type NearbyInput struct {
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
	Search    string
	Order     string
	Category  CategoryFilter
}

// NearbyItem is one listed product.
type NearbyItem struct {
	Product    *entity.ProductWithLocation
	DistanceKm *float64
	// MapsURL links directions from the origin to the store, empty without origin.
	MapsURL string
}

// NearbyOutput is the ranked listing.
type NearbyOutput struct {
	Items    []NearbyItem
	Origin   *orb.Point
	RadiusKm float64
	// Bounds covers the listed stores; nil when nothing is listed.
	Bounds *orb.Bound
}

// DiscoveryUsecase lists active products near the caller.
type DiscoveryUsecase interface {
	Nearby(ctx context.Context, input NearbyInput) (*NearbyOutput, error)
}
