// Command devserver runs the in-memory marketplace backend with seeded
// development data.
package main

import (
	"context"
	"log/slog"
	"os"

	"propmart/config"
	"propmart/internal/devserver"
	"propmart/internal/devserver/middleware"
	"propmart/internal/devserver/router/handler"
	"propmart/internal/domain/repository"
	"propmart/internal/domain/service"
	"propmart/internal/infra/auth"
	logs "propmart/internal/infra/log"
	"propmart/internal/infra/memory"
	"propmart/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []devserver.Delivery `group:"deliveries"`
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
			seedData,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewUserRepository,
			memory.NewPropertyRepository,
			memory.NewInquiryRepository,
			memory.NewWishlistRepository,
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
			impl.NewAuthService,
			impl.NewPropertyService,
			impl.NewUserService,
			impl.NewInquiryService,
			impl.NewWishlistService,
			impl.NewDashboardService,
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
			handler.NewAuthHandler,
			handler.NewPropertyHandler,
			handler.NewUserHandler,
			handler.NewInquiryHandler,
			handler.NewWishlistHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				devserver.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func seedData(
	ctx context.Context,
	userRepo repository.UserRepository,
	propertyRepo repository.PropertyRepository,
	inquiryRepo repository.InquiryRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) error {
	if err := memory.Seed(ctx, userRepo, propertyRepo, inquiryRepo, hasher); err != nil {
		return err
	}

	logger.Info("Seeded development data",
		slog.Int("accounts", len(memory.SeedAccounts)),
	)

	return nil
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
