package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/paulmach/orb"
	"go.uber.org/fx"

	"ubishop/config"
	"ubishop/internal/domain/entity"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/domain/geo"
	"ubishop/internal/domain/repository"
	"ubishop/internal/usecase"
)

const mapsDirectionsURL = "https://www.google.com/maps/dir/"

// DiscoveryServiceParams holds dependencies for the discovery service, injected by Fx.
type DiscoveryServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	LocationRepo repository.LocationRepository
	Config       *config.Config
	Logger       *slog.Logger
}

type discoveryService struct {
	productRepo   repository.ProductRepository
	locationRepo  repository.LocationRepository
	defaultRadius float64
	maxRadius     float64
	logger        *slog.Logger
}

// NewDiscoveryService creates the nearby-product service.
func NewDiscoveryService(params DiscoveryServiceParams) usecase.DiscoveryUsecase {
	radius, maxRadius := geo.DefaultRadiusKm, geo.DefaultRadiusKm
	if d := params.Config.Discovery; d != nil {
		if d.RadiusKm > 0 {
			radius = d.RadiusKm
		}
		maxRadius = d.MaxRadiusKm
	}

	return &discoveryService{
		productRepo:   params.ProductRepo,
		locationRepo:  params.LocationRepo,
		defaultRadius: radius,
		maxRadius:     max(maxRadius, radius),
		logger:        params.Logger,
	}
}

// Nearby runs products-with-location through the active and category
// filters, then the geofence, search and price order.
func (s *discoveryService) Nearby(ctx context.Context, input usecase.NearbyInput) (*usecase.NearbyOutput, error) {
	query, err := s.buildQuery(input)
	if err != nil {
		return nil, err
	}

	products, locations, err := fetchProductsAndLocations(ctx, s.productRepo, s.locationRepo)
	if err != nil {
		return nil, err
	}

	candidates := make([]*entity.ProductWithLocation, 0, len(products))
	for _, p := range joinProductsWithLocation(products, locations) {
		if p.IsActive() && input.Category.Matches(p.CategoryID) {
			candidates = append(candidates, p)
		}
	}

	ranked := geo.Apply(candidates, query)

	out := &usecase.NearbyOutput{
		Items:    make([]usecase.NearbyItem, 0, len(ranked)),
		Origin:   query.Origin,
		RadiusKm: query.RadiusKm,
	}
	for _, r := range ranked {
		item := usecase.NearbyItem{Product: r.Item, DistanceKm: r.DistanceKm}
		if query.Origin != nil {
			item.MapsURL = directionsURL(*query.Origin, r.Item.Location.Point())
		}
		out.Items = append(out.Items, item)
	}
	if bound, ok := geo.Bounds(ranked); ok {
		out.Bounds = &bound
	}

	requestLogger(ctx, s.logger).Debug("Nearby products listed",
		slog.Int("candidates", len(candidates)),
		slog.Int("listed", len(out.Items)),
		slog.Float64("radiusKm", query.RadiusKm),
		slog.Bool("hasOrigin", query.Origin != nil),
	)

	return out, nil
}

func (s *discoveryService) buildQuery(input usecase.NearbyInput) (geo.Query, error) {
	order, err := geo.ParseSortOrder(input.Order)
	if err != nil {
		return geo.Query{}, domainerrors.ErrInvalidSortOrder.WithDetails(map[string]string{"orden": input.Order})
	}

	q := geo.Query{
		RadiusKm: s.defaultRadius,
		Search:   input.Search,
		Order:    order,
	}

	switch {
	case input.Latitude == nil && input.Longitude == nil:
	case input.Latitude == nil || input.Longitude == nil:
		return geo.Query{}, domainerrors.ErrInvalidCoordinates.WithDetails("lat and lng must be sent together")
	case !entity.ValidCoordinates(*input.Latitude, *input.Longitude):
		return geo.Query{}, domainerrors.ErrInvalidCoordinates.WithDetails(map[string]float64{
			"lat": *input.Latitude,
			"lng": *input.Longitude,
		})
	default:
		origin := orb.Point{*input.Longitude, *input.Latitude}
		q.Origin = &origin
	}

	if input.RadiusKm != nil {
		r := *input.RadiusKm
		if r <= 0 || r > s.maxRadius {
			return geo.Query{}, domainerrors.ErrValidationFailed.WithDetails(map[string]any{
				"radio_km": r,
				"max":      s.maxRadius,
			})
		}
		q.RadiusKm = r
	}

	return q, nil
}

// directionsURL links driving directions between two points.
func directionsURL(from, to orb.Point) string {
	params := url.Values{}
	params.Set("api", "1")
	params.Set("origin", formatLatLng(from))
	params.Set("destination", formatLatLng(to))
	params.Set("travelmode", "driving")

	return mapsDirectionsURL + "?" + params.Encode()
}

func formatLatLng(p orb.Point) string {
	return strconv.FormatFloat(p.Lat(), 'f', -1, 64) + "," + strconv.FormatFloat(p.Lon(), 'f', -1, 64)
}
