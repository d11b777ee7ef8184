package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gwanzi/dog-marketplace/config"
	"github.com/gwanzi/dog-marketplace/internal/delivery"
	"github.com/gwanzi/dog-marketplace/internal/delivery/http"
	"github.com/gwanzi/dog-marketplace/internal/delivery/http/middleware"
	"github.com/gwanzi/dog-marketplace/internal/delivery/http/router/handler"
	"github.com/gwanzi/dog-marketplace/internal/infra/auth"
	logs "github.com/gwanzi/dog-marketplace/internal/infra/log"
	"github.com/gwanzi/dog-marketplace/internal/infra/persistence/jsonstore"
	"github.com/gwanzi/dog-marketplace/internal/usecase/impl"

	"go.uber.org/fx"
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
		jsonstore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			jsonstore.NewUserRepository,
			jsonstore.NewProductRepository,
			jsonstore.NewVendorRepository,
			jsonstore.NewVetRepository,
			jsonstore.NewOrderRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProductService,
			impl.NewVendorService,
			impl.NewVetService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewProductHandler,
			handler.NewVendorHandler,
			handler.NewVetHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
