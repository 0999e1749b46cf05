package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"ubishop/internal/delivery/api/response"
	"ubishop/internal/domain/entity"
	"ubishop/internal/usecase"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the public read-only listings.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProducts handles GET /productos
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(products, toProductView))
}

// ListProductsByCategory handles GET /productos/categoria/:categoria_id
func (h *CatalogHandler) ListProductsByCategory(c echo.Context) error {
	filter, err := usecase.ParseCategoryFilter(c.Param("categoria_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.catalogUC.ListProductsByCategory(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(products, func(p *entity.ProductWithCategory) productWithCategoryView {
		return productWithCategoryView{
			ProductView: toProductView(&p.Product),
			Category:    CategoryInfo{Name: p.Category.Name, Description: p.Category.Description},
		}
	}))
}

// ListProductsWithLocation handles GET /productos/ubicacion
func (h *CatalogHandler) ListProductsWithLocation(c echo.Context) error {
	products, err := h.catalogUC.ListProductsWithLocation(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(products, func(p *entity.ProductWithLocation) productWithLocationView {
		return productWithLocationView{
			ProductView: toProductView(&p.Product),
			Location:    toLocationInfo(p.Location),
		}
	}))
}

// ListReviewsByProduct handles GET /opiniones/producto/:producto_id
func (h *CatalogHandler) ListReviewsByProduct(c echo.Context) error {
	productID, err := pathID(c, "producto_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews, err := h.catalogUC.ListReviewsByProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(reviews, func(r *entity.ReviewWithAuthor) reviewWithAuthorView {
		return reviewWithAuthorView{ReviewView: toReviewView(&r.Review), Author: r.AuthorName}
	}))
}

// GetStoreWithPlan handles GET /tienda/plan/:user_id
func (h *CatalogHandler) GetStoreWithPlan(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	store, err := h.catalogUC.GetStoreWithPlan(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, storeWithPlanView{
		StoreView: toStoreView(&store.Store),
		Plan:      PlanInfo{Period: store.Plan.Period, Cost: store.Plan.Cost},
	})
}

// ListStoresWithLocation handles GET /tiendas/ubicacion
func (h *CatalogHandler) ListStoresWithLocation(c echo.Context) error {
	stores, err := h.catalogUC.ListStoresWithLocation(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(stores, func(s *entity.StoreWithLocation) storeWithLocationView {
		return storeWithLocationView{StoreView: toStoreView(&s.Store), Location: toLocationInfo(s.Location)}
	}))
}

// ListCategories handles GET /categorias
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(categories, func(cat *entity.Category) categoryView {
		return categoryView{ID: cat.ID, Name: cat.Name, Description: cat.Description}
	}))
}

// ListPlans handles GET /planes
func (h *CatalogHandler) ListPlans(c echo.Context) error {
	plans, err := h.catalogUC.ListPlans(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(plans, func(p *entity.Plan) planView {
		return planView{ID: p.ID, Period: p.Period, Cost: p.Cost}
	}))
}

// ListLocations handles GET /ubicacion
func (h *CatalogHandler) ListLocations(c echo.Context) error {
	locations, err := h.catalogUC.ListLocations(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(locations, toLocationView))
}
