package handler

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"ubishop/internal/delivery/api/response"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/usecase"
)

// DiscoveryHandlerParams holds dependencies for DiscoveryHandler, injected by Fx.
type DiscoveryHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	Logger      *slog.Logger
}

// DiscoveryHandler serves nearby product searches.
type DiscoveryHandler struct {
	discoveryUC usecase.DiscoveryUsecase
	logger      *slog.Logger
}

// NewDiscoveryHandler is the constructor for DiscoveryHandler
func NewDiscoveryHandler(params DiscoveryHandlerParams) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUC: params.DiscoveryUC,
		logger:      params.Logger,
	}
}

type nearbyProductView struct {
	productWithLocationView
	DistanceKm *float64 `json:"distancia_km,omitempty"`
	MapsURL    string   `json:"maps_url,omitempty"`
}

type pointView struct {
	Latitude  float64 `json:"latitud"`
	Longitude float64 `json:"longitud"`
}

type boundsView struct {
	Min pointView `json:"min"`
	Max pointView `json:"max"`
}

// NearbyResponse is the body of GET /productos/cercanos
type NearbyResponse struct {
	Products []nearbyProductView `json:"productos"`
	RadiusKm float64             `json:"radio_km"`
	Origin   *pointView          `json:"origen,omitempty"`
	Bounds   *boundsView         `json:"limites,omitempty"`
}

// Nearby handles GET /productos/cercanos
func (h *DiscoveryHandler) Nearby(c echo.Context) error {
	input, err := nearbyInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.discoveryUC.Nearby(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := NearbyResponse{
		Products: make([]nearbyProductView, 0, len(out.Items)),
		RadiusKm: out.RadiusKm,
	}
	for _, item := range out.Items {
		resp.Products = append(resp.Products, nearbyProductView{
			productWithLocationView: productWithLocationView{
				ProductView: toProductView(&item.Product.Product),
				Location:    toLocationInfo(item.Product.Location),
			},
			DistanceKm: item.DistanceKm,
			MapsURL:    item.MapsURL,
		})
	}
	if out.Origin != nil {
		resp.Origin = &pointView{Latitude: out.Origin.Lat(), Longitude: out.Origin.Lon()}
	}
	if out.Bounds != nil {
		resp.Bounds = &boundsView{
			Min: pointView{Latitude: out.Bounds.Min.Lat(), Longitude: out.Bounds.Min.Lon()},
			Max: pointView{Latitude: out.Bounds.Max.Lat(), Longitude: out.Bounds.Max.Lon()},
		}
	}

	return response.Success(c, http.StatusOK, resp)
}

func nearbyInput(c echo.Context) (usecase.NearbyInput, error) {
	input := usecase.NearbyInput{
		Search: c.QueryParam("q"),
		Order:  c.QueryParam("orden"),
	}

	var err error
	if input.Latitude, err = optionalFloat(c, "lat"); err != nil {
		return input, err
	}
	if input.Longitude, err = optionalFloat(c, "lng"); err != nil {
		return input, err
	}
	if input.RadiusKm, err = optionalFloat(c, "radio_km"); err != nil {
		return input, err
	}
	if input.Category, err = usecase.ParseCategoryFilter(c.QueryParam("categoria_id")); err != nil {
		return input, err
	}

	return input, nil
}

func optionalFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, domainerrors.ErrValidationFailed.WithDetails(map[string]string{name: raw})
	}

	return &v, nil
}
