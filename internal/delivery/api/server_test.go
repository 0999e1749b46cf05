package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ubishop/config"
	apimiddleware "ubishop/internal/delivery/api/middleware"
	"ubishop/internal/delivery/api/router"
	"ubishop/internal/delivery/api/router/handler"
	"ubishop/internal/delivery/middleware"
	"ubishop/internal/domain/entity"
	"ubishop/internal/domain/service"
	"ubishop/internal/infra/auth"
	"ubishop/internal/infra/persistence/memory"
	"ubishop/internal/infra/qrcode"
	mockSvc "ubishop/internal/mocks/service"
	"ubishop/internal/usecase/impl"
)

type harness struct {
	t      *testing.T
	e      *echo.Echo
	db     *memory.DB
	planID int64
	foodID int64
}

func newHarness(t *testing.T, images service.ImageSearcher) *harness {
	t.Helper()

	cfg := &config.Config{
		Auth:        &config.AuthConfig{AccessTokenTTL: time.Hour},
		Discovery:   &config.DiscoveryConfig{RadiusKm: 5, MaxRadiusKm: 20},
		QRCode:      &config.QRCodeConfig{Size: 128, BaseURL: "https://ubishop.test/tienda"},
		ImageSearch: &config.ImageSearchConfig{},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Access = "integration-secret"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := memory.New()
	h := &harness{
		t:      t,
		db:     db,
		planID: db.AddPlan(entity.Plan{Period: "mensual", Cost: 29.9}),
		foodID: db.AddCategory(entity.Category{Name: "Comida", Description: "Platos"}),
	}

	users := memory.NewUserRepository(db)
	stores := memory.NewStoreRepository(db)
	locations := memory.NewLocationRepository(db)
	products := memory.NewProductRepository(db)
	reviews := memory.NewReviewRepository(db)
	plans := memory.NewPlanRepository(db)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	r := router.NewRouter(router.RouterParams{
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{
			CatalogUC: impl.NewCatalogService(impl.CatalogServiceParams{
				ProductRepo:  products,
				CategoryRepo: memory.NewCategoryRepository(db),
				LocationRepo: locations,
				ReviewRepo:   reviews,
				UserRepo:     users,
				StoreRepo:    stores,
				PlanRepo:     plans,
				Logger:       logger,
			}),
			Logger: logger,
		}),
		DiscoveryHandler: handler.NewDiscoveryHandler(handler.DiscoveryHandlerParams{
			DiscoveryUC: impl.NewDiscoveryService(impl.DiscoveryServiceParams{
				ProductRepo:  products,
				LocationRepo: locations,
				Config:       cfg,
				Logger:       logger,
			}),
			Logger: logger,
		}),
		ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{
			ProductUC: impl.NewProductService(impl.ProductServiceParams{
				ProductRepo:   products,
				StoreRepo:     stores,
				ImageSearcher: images,
				Logger:        logger,
			}),
			Logger: logger,
		}),
		ReviewHandler: handler.NewReviewHandler(handler.ReviewHandlerParams{
			ReviewUC: impl.NewReviewService(impl.ReviewServiceParams{
				ReviewRepo:  reviews,
				ProductRepo: products,
				Logger:      logger,
			}),
			Logger: logger,
		}),
		StoreHandler: handler.NewStoreHandler(handler.StoreHandlerParams{
			StoreUC: impl.NewStoreService(impl.StoreServiceParams{
				TxManager:    memory.NewTransactionManager(db),
				StoreRepo:    stores,
				LocationRepo: locations,
				PlanRepo:     plans,
				QRCode:       qrcode.NewQRCodeService(cfg),
				Logger:       logger,
			}),
			Logger: logger,
		}),
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			UserUC: impl.NewUserService(impl.UserServiceParams{
				UserRepo:     users,
				Hasher:       auth.NewBcryptHasher(cfg),
				TokenService: tokens,
				Logger:       logger,
			}),
			Logger: logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokens, logger),
	})

	h.e = NewEcho(cfg, logger, r, middleware.NewMetricsMiddleware())

	return h
}

func (h *harness) do(method, path, body, token string) *httptest.ResponseRecorder {
	h.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

// signUp registers and logs in a user, returning its id and access token.
func (h *harness) signUp(name, email string, roleID int) (int64, string) {
	h.t.Helper()

	rec := h.do(http.MethodPost, "/register", `{"nombre_usuario":"`+name+`","email":"`+email+
		`","clave":"secreto","rol_id":`+strconv.Itoa(roleID)+`,"telefono":"999"}`, "")
	require.Equal(h.t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = h.do(http.MethodPost, "/login", `{"email":"`+email+`","clave":"secreto"}`, "")
	require.Equal(h.t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[map[string]any](h.t, rec)

	return int64(body["id"].(float64)), body["access_token"].(string)
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := decode[map[string]any](t, rec)
	assert.NotEmpty(t, body["error"])
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), body["request_id"])

	return body
}

func TestAPI_RegisterAndLogin(t *testing.T) {
	h := newHarness(t, nil)

	rec := h.do(http.MethodPost, "/register",
		`{"nombre_usuario":"Rosa","email":"Rosa@Example.com","clave":"secreto","rol_id":2,"telefono":"999"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Usuario registrado exitosamente", decode[map[string]any](t, rec)["mensaje"])
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	t.Run("duplicate email", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/register",
			`{"nombre_usuario":"Otra","email":"rosa@example.com","clave":"x","rol_id":1,"telefono":"1"}`, "")
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "EMAIL_ALREADY_REGISTERED", errorBody(t, rec)["code"])
	})

	t.Run("missing field", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/register",
			`{"nombre_usuario":"Otra","email":"otra@example.com","clave":"x","rol_id":1}`, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := errorBody(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", body["code"])
		assert.Equal(t, "Faltan datos obligatorios", body["error"])
		assert.Equal(t, map[string]any{"telefono": "notblank"}, body["details"])
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/register", `{"nombre_usuario":`, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", errorBody(t, rec)["code"])
	})

	t.Run("login", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/login", `{"email":"ROSA@example.com ","clave":" secreto "}`, "")
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode[map[string]any](t, rec)
		assert.Equal(t, "Inicio de sesión exitoso", body["mensaje"])
		assert.Equal(t, "Tienda", body["rol"])
		assert.Equal(t, "rosa@example.com", body["email"])
		assert.NotEmpty(t, body["access_token"])
	})

	t.Run("bad credentials look the same", func(t *testing.T) {
		wrong := h.do(http.MethodPost, "/login", `{"email":"rosa@example.com","clave":"nope"}`, "")
		unknown := h.do(http.MethodPost, "/login", `{"email":"nadie@example.com","clave":"secreto"}`, "")

		require.Equal(t, http.StatusUnauthorized, wrong.Code)
		require.Equal(t, http.StatusUnauthorized, unknown.Code)
		w, u := errorBody(t, wrong), errorBody(t, unknown)
		assert.Equal(t, w["error"], u["error"])
		assert.Equal(t, "INVALID_CREDENTIALS", w["code"])
		assert.NotContains(t, w, "details")
	})

	t.Run("users never expose the credential", func(t *testing.T) {
		rec := h.do(http.MethodGet, "/usuarios", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secreto")
		assert.NotContains(t, rec.Body.String(), "clave")
	})
}

func TestAPI_WritesRequireToken(t *testing.T) {
	h := newHarness(t, nil)

	rec := h.do(http.MethodPost, "/tiendas", `{"nombre":"x"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := errorBody(t, rec)
	assert.Equal(t, "UNAUTHENTICATED", body["code"])
	assert.NotContains(t, body, "details")

	rec = h.do(http.MethodPost, "/tiendas", `{"nombre":"x"}`, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	_, token := h.signUp("Raro", "raro@example.com", 7)
	rec = h.do(http.MethodPost, "/tiendas", `{"nombre":"x"}`, token)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", errorBody(t, rec)["code"])
}

func TestAPI_StoreProductReviewFlow(t *testing.T) {
	h := newHarness(t, nil)
	ownerID, ownerToken := h.signUp("Rosa", "rosa@example.com", entity.RoleIDStoreOwner)
	customerID, customerToken := h.signUp("Luis", "luis@example.com", entity.RoleIDCustomer)

	// store with its location in one request
	rec := h.do(http.MethodPost, "/tiendas", `{"nombre":"Bodega Rosa","descripcion":"Abarrotes","propietario":"Rosa","plan_id":`+
		strconv.FormatInt(h.planID, 10)+`,"ubicacion":{"latitud":-12.0464,"longitud":-77.0428,"direccion":"Jr. Lima 1"}}`, ownerToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	store := decode[map[string]any](t, rec)["tienda"].(map[string]any)
	storeID := strconv.FormatInt(int64(store["tienda_id"].(float64)), 10)
	assert.Equal(t, float64(ownerID), store["user_id"])

	rec = h.do(http.MethodPost, "/tiendas", `{"nombre":"Otra","descripcion":"d","propietario":"Rosa","plan_id":`+
		strconv.FormatInt(h.planID, 10)+`}`, ownerToken)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = h.do(http.MethodPost, "/ubicacion", `{"tienda_id":`+storeID+`,"latitud":1,"longitud":1,"direccion":"x"}`, ownerToken)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "LOCATION_ALREADY_EXISTS", errorBody(t, rec)["code"])

	rec = h.do(http.MethodPut, "/ubicacion/"+storeID, `{"latitud":-12.0464,"longitud":-77.0428,"direccion":"Jr. Lima 2"}`, ownerToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = h.do(http.MethodPut, "/ubicacion/"+storeID, `{"latitud":-12.0464,"longitud":-77.0428,"direccion":"Jr. Lima 3"}`, customerToken)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = h.do(http.MethodPut, "/tienda/"+storeID, `{"descripcion":"Bodega de barrio"}`, ownerToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bodega de barrio", decode[map[string]any](t, rec)["tienda"].(map[string]any)["descripcion"])

	rec = h.do(http.MethodGet, "/tienda/plan/"+strconv.FormatInt(ownerID, 10), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"periodo": "mensual", "costo": 29.9}, decode[map[string]any](t, rec)["planInfo"])

	rec = h.do(http.MethodGet, "/tienda/plan/"+strconv.FormatInt(customerID, 10), "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No se encontró la tienda para el usuario logueado", errorBody(t, rec)["error"])

	// product
	productBody := `{"nombre_producto":"Ceviche","precio":25,"descripcion":"Fresco","categoria_id":` +
		strconv.FormatInt(h.foodID, 10) + `,"tienda_id":` + storeID + `}`
	rec = h.do(http.MethodPost, "/productos", productBody, customerToken)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = h.do(http.MethodPost, "/productos", productBody, ownerToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	product := decode[map[string]any](t, rec)
	productID := strconv.FormatInt(int64(product["producto_id"].(float64)), 10)
	assert.Equal(t, entity.ProductStatusActive, product["estado"])

	rec = h.do(http.MethodGet, "/productos/categoria/Todos", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	byCategory := decode[[]map[string]any](t, rec)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Comida", byCategory[0]["categoriaInfo"].(map[string]any)["nombre_categoria"])

	rec = h.do(http.MethodGet, "/productos/cercanos?lat=-12.0464&lng=-77.0428&orden=asc", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	nearby := decode[map[string]any](t, rec)
	items := nearby["productos"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.InDelta(t, 0, item["distancia_km"], 1e-9)
	assert.Contains(t, item["maps_url"], "https://www.google.com/maps/dir/?")
	assert.Equal(t, "Jr. Lima 2", item["ubicacionInfo"].(map[string]any)["direccion"])
	assert.InDelta(t, 5, nearby["radio_km"], 1e-9)
	assert.NotNil(t, nearby["limites"])

	rec = h.do(http.MethodGet, "/productos/cercanos?lat=-12.0464", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_COORDINATES", errorBody(t, rec)["code"])

	// reviews
	rec = h.do(http.MethodPost, "/opiniones", `{"producto_id":`+productID+`,"calificacion":9,"comentario":"x"}`, customerToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_RATING", errorBody(t, rec)["code"])

	rec = h.do(http.MethodPost, "/opiniones", `{"producto_id":`+productID+`,"calificacion":5,"comentario":"Muy rico"}`, customerToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	review := decode[map[string]any](t, rec)["opinion"].(map[string]any)
	reviewID := strconv.FormatInt(int64(review["opinion_id"].(float64)), 10)
	assert.Equal(t, float64(customerID), review["user_id"])

	rec = h.do(http.MethodGet, "/opiniones/producto/"+productID, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	withAuthor := decode[[]map[string]any](t, rec)
	require.Len(t, withAuthor, 1)
	assert.Equal(t, "Luis", withAuthor[0]["usuario"])

	rec = h.do(http.MethodGet, "/productos/"+productID+"/calificacion", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[map[string]any](t, rec)
	assert.InDelta(t, 5, summary["promedio"], 1e-9)
	assert.Equal(t, float64(1), summary["total"])

	rec = h.do(http.MethodPut, "/opiniones/"+reviewID, `{"calificacion":1,"comentario":"No"}`, ownerToken)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = h.do(http.MethodPut, "/opiniones/"+reviewID, `{"calificacion":4,"comentario":"Rico"}`, customerToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(4), decode[map[string]any](t, rec)["opinion"].(map[string]any)["calificacion"])

	rec = h.do(http.MethodDelete, "/opiniones/"+reviewID, "", customerToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Opinión eliminada exitosamente", decode[map[string]any](t, rec)["mensaje"])

	rec = h.do(http.MethodDelete, "/opiniones/"+reviewID, "", customerToken)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// store QR
	rec = h.do(http.MethodGet, "/tienda/"+storeID+"/qr", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String()[:4])
}

func TestAPI_BlankFieldsRejected(t *testing.T) {
	h := newHarness(t, nil)
	_, ownerToken := h.signUp("Rosa", "rosa@example.com", entity.RoleIDStoreOwner)

	rec := h.do(http.MethodPost, "/tiendas", `{"nombre":"Bodega","descripcion":"Abarrotes","propietario":"Rosa","plan_id":`+
		strconv.FormatInt(h.planID, 10)+`}`, ownerToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	storeID := strconv.FormatInt(int64(decode[map[string]any](t, rec)["tienda"].(map[string]any)["tienda_id"].(float64)), 10)
	categoryID := strconv.FormatInt(h.foodID, 10)

	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		token   string
		details map[string]any
	}{
		{
			name:   "store fields",
			method: http.MethodPost,
			path:   "/tiendas",
			body:   `{"nombre":"   ","descripcion":"  ","propietario":" ","plan_id":` + strconv.FormatInt(h.planID, 10) + `}`,
			token:  ownerToken,
			details: map[string]any{
				"nombre": "notblank", "descripcion": "notblank", "propietario": "notblank",
			},
		},
		{
			name:    "store patch",
			method:  http.MethodPut,
			path:    "/tienda/" + storeID,
			body:    `{"nombre":"  "}`,
			token:   ownerToken,
			details: map[string]any{"nombre": "notblank"},
		},
		{
			name:   "product fields",
			method: http.MethodPost,
			path:   "/productos",
			body:   `{"nombre_producto":"   ","precio":3,"descripcion":"\t","categoria_id":` + categoryID + `,"tienda_id":` + storeID + `}`,
			token:  ownerToken,
			details: map[string]any{
				"nombre_producto": "notblank", "descripcion": "notblank",
			},
		},
		{
			name:    "product without price",
			method:  http.MethodPost,
			path:    "/productos",
			body:    `{"nombre_producto":"Pan","descripcion":"d","categoria_id":` + categoryID + `,"tienda_id":` + storeID + `}`,
			token:   ownerToken,
			details: map[string]any{"precio": "required"},
		},
		{
			name:    "negative price",
			method:  http.MethodPost,
			path:    "/productos",
			body:    `{"nombre_producto":"Pan","precio":-1,"descripcion":"d","categoria_id":` + categoryID + `,"tienda_id":` + storeID + `}`,
			token:   ownerToken,
			details: map[string]any{"precio": "gte=0"},
		},
		{
			name:    "register secret",
			method:  http.MethodPost,
			path:    "/register",
			body:    `{"nombre_usuario":"Ana","email":"ana@example.com","clave":"   ","rol_id":1,"telefono":"1"}`,
			details: map[string]any{"clave": "notblank"},
		},
		{
			name:    "login secret",
			method:  http.MethodPost,
			path:    "/login",
			body:    `{"email":"rosa@example.com","clave":"  "}`,
			details: map[string]any{"clave": "notblank"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := h.do(tt.method, tt.path, tt.body, tt.token)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			body := errorBody(t, rec)
			assert.Equal(t, "VALIDATION_ERROR", body["code"])
			assert.Equal(t, tt.details, body["details"])
		})
	}

	t.Run("blank secret never registers", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/login", `{"email":"ana@example.com","clave":"secreto"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("free product is allowed", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/productos", `{"nombre_producto":"Muestra","precio":0,"descripcion":"Gratis","categoria_id":`+
			categoryID+`,"tienda_id":`+storeID+`}`, ownerToken)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.InDelta(t, 0, decode[map[string]any](t, rec)["precio"], 1e-9)
	})
}

func TestAPI_UserUpdate(t *testing.T) {
	h := newHarness(t, nil)
	ownerID, _ := h.signUp("Rosa", "rosa@example.com", entity.RoleIDStoreOwner)
	customerID, token := h.signUp("Luis", "luis@example.com", entity.RoleIDCustomer)
	self := "/usuarios/" + strconv.FormatInt(customerID, 10)

	rec := h.do(http.MethodPut, "/usuarios/"+strconv.FormatInt(ownerID, 10), `{"telefono":"1"}`, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = h.do(http.MethodPut, self, `{}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(http.MethodPut, self, `{"email":"rosa@example.com"}`, token)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = h.do(http.MethodPut, self, `{"telefono":" 555 "}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "555", body["telefono"])
	assert.Equal(t, "Luis", body["nombre_usuario"])
}

func TestAPI_ProductImage(t *testing.T) {
	images := mockSvc.NewMockImageSearcher(t)
	h := newHarness(t, images)
	_, token := h.signUp("Rosa", "rosa@example.com", entity.RoleIDStoreOwner)

	rec := h.do(http.MethodPost, "/tiendas", `{"nombre":"B","descripcion":"d","propietario":"Rosa","plan_id":`+
		strconv.FormatInt(h.planID, 10)+`}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	storeID := strconv.FormatInt(int64(decode[map[string]any](t, rec)["tienda"].(map[string]any)["tienda_id"].(float64)), 10)

	rec = h.do(http.MethodPost, "/productos", `{"nombre_producto":"Mango","precio":3,"descripcion":"d","categoria_id":`+
		strconv.FormatInt(h.foodID, 10)+`,"tienda_id":`+storeID+`}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	productID := strconv.FormatInt(int64(decode[map[string]any](t, rec)["producto_id"].(float64)), 10)

	images.EXPECT().SearchImage(mock.Anything, "Mango").Return("https://images.test/mango.jpg", nil).Once()
	rec = h.do(http.MethodGet, "/productos/"+productID+"/imagen", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://images.test/mango.jpg", decode[map[string]any](t, rec)["url"])

	images.EXPECT().SearchImage(mock.Anything, "Mango").Return("", service.ErrNoImage).Once()
	rec = h.do(http.MethodGet, "/productos/"+productID+"/imagen", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "IMAGE_NOT_FOUND", errorBody(t, rec)["code"])
}

func TestAPI_Errors(t *testing.T) {
	h := newHarness(t, nil)

	tests := []struct {
		name   string
		path   string
		status int
		code   string
	}{
		{name: "unknown route", path: "/nope", status: http.StatusNotFound, code: "HTTP_ERROR"},
		{name: "non numeric id", path: "/tienda/abc", status: http.StatusBadRequest, code: "INVALID_ID"},
		{name: "missing store", path: "/tienda/99", status: http.StatusNotFound, code: "STORE_NOT_FOUND"},
		{name: "bad category", path: "/productos/categoria/abc", status: http.StatusBadRequest, code: "INVALID_ID"},
		{name: "bad order", path: "/productos/cercanos?orden=up", status: http.StatusBadRequest, code: "INVALID_SORT_ORDER"},
		{name: "radius over max", path: "/productos/cercanos?lat=0&lng=0&radio_km=500", status: http.StatusBadRequest, code: "VALIDATION_FAILED"},
		{name: "nan radius", path: "/productos/cercanos?radio_km=NaN", status: http.StatusBadRequest, code: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := h.do(http.MethodGet, tt.path, "", "")
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, tt.code, errorBody(t, rec)["code"])
		})
	}
}

func TestAPI_EmptyCollections(t *testing.T) {
	h := newHarness(t, nil)

	for _, path := range []string{"/productos", "/opiniones", "/tiendas", "/ubicacion", "/tiendas/ubicacion", "/productos/ubicacion"} {
		rec := h.do(http.MethodGet, path, "", "")
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `[]`, rec.Body.String(), path)
	}

	rec := h.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `ubishop_http_requests_total{method="GET",route="/productos",status="200"} 1`)
}
