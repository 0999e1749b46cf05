// Package router wires the API handlers to their routes.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"ubishop/internal/delivery/api/middleware"
	"ubishop/internal/delivery/api/router/handler"
	"ubishop/internal/domain/entity"
)

// RouterParams holds the handlers and middleware the router needs, injected by Fx.
type RouterParams struct {
	fx.In

	CatalogHandler   *handler.CatalogHandler
	DiscoveryHandler *handler.DiscoveryHandler
	ProductHandler   *handler.ProductHandler
	ReviewHandler    *handler.ReviewHandler
	StoreHandler     *handler.StoreHandler
	UserHandler      *handler.UserHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// Router holds all the handlers that need to be registered.
type Router struct {
	catalog   *handler.CatalogHandler
	discovery *handler.DiscoveryHandler
	product   *handler.ProductHandler
	review    *handler.ReviewHandler
	store     *handler.StoreHandler
	user      *handler.UserHandler
	auth      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *Router {
	return &Router{
		catalog:   params.CatalogHandler,
		discovery: params.DiscoveryHandler,
		product:   params.ProductHandler,
		review:    params.ReviewHandler,
		store:     params.StoreHandler,
		user:      params.UserHandler,
		auth:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Auth
	e.POST("/login", r.user.Login)
	e.POST("/register", r.user.Register)

	// Public reads. Static segments win over :id in echo's router.
	e.GET("/productos", r.catalog.ListProducts)
	e.GET("/productos/categoria/:categoria_id", r.catalog.ListProductsByCategory)
	e.GET("/productos/ubicacion", r.catalog.ListProductsWithLocation)
	e.GET("/productos/cercanos", r.discovery.Nearby)
	e.GET("/productos/:id/imagen", r.product.Image)
	e.GET("/productos/:id/calificacion", r.review.Summary)
	e.GET("/opiniones", r.review.List)
	e.GET("/opiniones/producto/:producto_id", r.catalog.ListReviewsByProduct)
	e.GET("/usuarios", r.user.List)
	e.GET("/tiendas", r.store.List)
	e.GET("/tiendas/ubicacion", r.catalog.ListStoresWithLocation)
	e.GET("/tienda/:id", r.store.Get)
	e.GET("/tienda/:id/qr", r.store.ShareQR)
	e.GET("/tienda/plan/:user_id", r.catalog.GetStoreWithPlan)
	e.GET("/categorias", r.catalog.ListCategories)
	e.GET("/ubicacion", r.catalog.ListLocations)
	e.GET("/planes", r.catalog.ListPlans)

	// Writes need a signed-in customer or store owner. Attached per route:
	// a group on "" would catch unknown paths and answer 401 instead of 404.
	write := []echo.MiddlewareFunc{
		r.auth.Authenticate,
		r.auth.RequireRole(entity.RoleCustomer, entity.RoleStoreOwner),
	}

	e.POST("/productos", r.product.Create, write...)
	e.PUT("/productos/:id", r.product.Update, write...)

	e.POST("/opiniones", r.review.Create, write...)
	e.PUT("/opiniones/:id", r.review.Update, write...)
	e.DELETE("/opiniones/:id", r.review.Delete, write...)

	e.POST("/tiendas", r.store.Create, write...)
	e.PUT("/tienda/:id", r.store.Update, write...)

	e.POST("/ubicacion", r.store.CreateLocation, write...)
	e.PUT("/ubicacion/:id", r.store.UpdateLocation, write...)

	e.PUT("/usuarios/:id", r.user.Update, write...)
}
