package main

import (
	"context"
	"log/slog"
	"os"

	"todo/config"
	"todo/internal/delivery"
	"todo/internal/delivery/api"
	"todo/internal/delivery/api/middleware"
	"todo/internal/delivery/api/router/handler"
	"todo/internal/infra/auth"
	logs "todo/internal/infra/log"
	"todo/internal/infra/persistence/postgres"
	"todo/internal/infra/pubsub"
	"todo/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type deliveriesParams struct {
	fx.In

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(appOptions()).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		storage(),
		authentication(),
		todos(),
		fx.Provide(
			fx.Annotate(api.NewServer, fx.ResultTags(`group:"deliveries"`)),
		),
		fx.Invoke(serveDeliveries),
	)
}

func storage() fx.Option {
	return fx.Provide(
		postgres.New,
		postgres.NewTransactionManager,
	)
}

func authentication() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			postgres.NewUserRepository,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			impl.NewAuthService,
			middleware.NewAuthMiddleware,
			handler.NewAuthHandler,
		),
	)
}

func todos() fx.Option {
	return fx.Provide(
		postgres.NewTodoRepository,
		impl.NewTodoService,
		handler.NewTodoHandler,
	)
}

func serveDeliveries(ctx context.Context, params deliveriesParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				slog.Error("Delivery stopped with error", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
