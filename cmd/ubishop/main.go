package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"ubishop/config"
	"ubishop/internal/delivery"
	"ubishop/internal/delivery/api"
	apimiddleware "ubishop/internal/delivery/api/middleware"
	"ubishop/internal/delivery/api/router"
	"ubishop/internal/delivery/api/router/handler"
	"ubishop/internal/delivery/middleware"
	"ubishop/internal/infra/auth"
	"ubishop/internal/infra/imagesearch"
	logs "ubishop/internal/infra/log"
	"ubishop/internal/infra/persistence/postgres"
	"ubishop/internal/infra/qrcode"
	"ubishop/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewCategoryRepository,
			postgres.NewPlanRepository,
			postgres.NewStoreRepository,
			postgres.NewLocationRepository,
			postgres.NewReviewRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			imagesearch.NewUnsplashClient,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewDiscoveryService,
			impl.NewProductService,
			impl.NewReviewService,
			impl.NewStoreService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			middleware.NewMetricsMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewDiscoveryHandler,
			handler.NewProductHandler,
			handler.NewReviewHandler,
			handler.NewStoreHandler,
			handler.NewUserHandler,
			router.NewRouter,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
