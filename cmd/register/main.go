package main

import (
	"context"
	"log/slog"
	"os"

	"register/config"
	"register/internal/delivery"
	"register/internal/delivery/http"
	"register/internal/delivery/http/middleware"
	"register/internal/delivery/http/router/handler"
	"register/internal/domain/repository"
	"register/internal/domain/service"
	"register/internal/infra/auth"
	logs "register/internal/infra/log"
	"register/internal/infra/persistence/memory"
	"register/internal/infra/persistence/postgres"
	"register/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// repositories is the storage backend chosen at startup.
type repositories struct {
	fx.Out

	CredentialRepo repository.CredentialRepository
	PersonRepo     repository.PersonRepository
	TxManager      repository.TransactionManager
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newRepositories,
		),
	)
}

// newRepositories uses PostgreSQL when it is configured and falls back to the
// in-process store otherwise. Config resolution already refuses production
// without PostgreSQL.
func newRepositories(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (repositories, error) {
	if cfg.Postgres == nil {
		logger.Warn("PostgreSQL is not configured, using in-memory store")

		store := memory.NewStore()

		return repositories{
			CredentialRepo: store.CredentialRepo(),
			PersonRepo:     store.PersonRepo(),
			TxManager:      store.TransactionManager(),
		}, nil
	}

	db, err := postgres.New(postgres.Params{Lifecycle: lc, Config: cfg, Logger: logger})
	if err != nil {
		return repositories{}, errors.Wrap(err, "failed to open PostgreSQL")
	}

	return repositories{
		CredentialRepo: postgres.NewCredentialRepository(db),
		PersonRepo:     postgres.NewPersonRepository(db),
		TxManager:      postgres.NewTransactionManager(db),
	}, nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPBKDF2Hasher,
			auth.NewJWTService,
			newTokenIssuer,
			newTokenValidator,
		),
	)
}

func newTokenIssuer(jwtService auth.JWTService) service.TokenIssuer {
	return jwtService
}

func newTokenValidator(jwtService auth.JWTService) service.TokenValidator {
	return jwtService
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialService,
			impl.NewPersonService,
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
