package main

import (
	"context"
	"log/slog"
	"os"

	"catalog/config"
	"catalog/internal/delivery"
	"catalog/internal/delivery/http"
	"catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/router/handler"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/errors"
	"catalog/internal/infra/auth"
	logs "catalog/internal/infra/log"
	"catalog/internal/infra/persistence/postgres"
	"catalog/internal/infra/persistence/redis"
	"catalog/internal/usecase"
	"catalog/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
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
			auth.RegisterSessionSweeper,
			provisionAdmin,
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
		fx.Annotate(
			postgres.NewDatabaseHealthChecker,
			fx.ResultTags(`group:"health_checkers"`),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewPersonRepository,
			postgres.NewAliasRepository,
			postgres.NewMovieRepository,
			postgres.NewRoleRepository,
			postgres.NewUserRepository,
			fx.Annotate(
				newSessionStore,
				fx.ResultTags(``, `group:"health_checkers"`),
			),
		),
	)
}

type sessionStoreParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// newSessionStore picks the session repository named by session.store, with its health checker.
func newSessionStore(params sessionStoreParams) (repository.SessionRepository, service.HealthChecker, error) {
	if params.Config.Session.Store != config.SessionStoreRedis {
		return postgres.NewSessionRepository(params.DB), postgres.NewSessionStoreHealthChecker(params.DB), nil
	}

	client, err := redis.NewClient(redis.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, nil, err
	}

	return redis.NewSessionRepository(client), redis.NewHealthChecker(client), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewSessionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPeopleService,
			impl.NewMovieService,
			impl.NewRoleService,
			impl.NewAuthService,
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
			handler.NewPersonHandler,
			handler.NewMovieHandler,
			handler.NewRoleHandler,
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

type provisionAdminParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Auth   usecase.AuthUsecase
}

// provisionAdmin creates or resets the configured administrator once the database is up.
func provisionAdmin(params provisionAdminParams) {
	admin := params.Config.Admin
	if admin == nil || admin.Password == "" {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			user, err := params.Auth.CreateOrUpdateAdmin(ctx, &usecase.AdminInput{
				Username: admin.Username,
				Password: admin.Password,
			})
			if err != nil {
				return errors.Wrap(err, "failed to provision admin")
			}

			params.Logger.Info("Admin provisioned", slog.String("username", user.Username))

			return nil
		},
	})
}

// startServer launches the deliveries once every other start hook has run.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
