package main

import (
	"context"
	"log/slog"
	"os"

	"khojo/config"
	"khojo/internal/delivery"
	"khojo/internal/delivery/http"
	customMiddleware "khojo/internal/delivery/http/middleware"
	"khojo/internal/delivery/http/router/handler"
	deliverymiddleware "khojo/internal/delivery/middleware"
	"khojo/internal/infra/dedupe"
	logs "khojo/internal/infra/log"
	"khojo/internal/infra/messaging"
	"khojo/internal/infra/persistence/postgres"
	"khojo/internal/infra/signature"
	"khojo/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewVendorLocationRepository,
			postgres.NewVendorRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			signature.NewFromConfig,
			messaging.NewMessenger,
			dedupe.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewWebhookService,
			impl.NewVendorService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			customMiddleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWebhookHandler,
			handler.NewVendorHandler,
			handler.NewHealthHandler,
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
