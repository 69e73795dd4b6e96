package main

import (
	"context"
	"log/slog"
	"os"

	"ledger/config"
	"ledger/internal/delivery"
	"ledger/internal/delivery/http"
	"ledger/internal/delivery/http/middleware"
	"ledger/internal/delivery/http/router/handler"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"
	"ledger/internal/infra/auth"
	logs "ledger/internal/infra/log"
	"ledger/internal/infra/persistence/memory"
	"ledger/internal/infra/persistence/postgres"
	"ledger/internal/usecase/impl"

	"github.com/pkg/errors"
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
	)
}

type storageParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type repositories struct {
	fx.Out

	Users     repository.UserRepository
	Expenses  repository.ExpenseRepository
	Incomes   repository.IncomeRepository
	TxManager repository.TransactionManager
}

// newRepositories builds the persistence layer for the configured storage
// driver. The memory driver keeps everything process-resident and is lost on
// restart; postgres is the default.
func newRepositories(params storageParams) (repositories, error) {
	switch params.Config.Storage.Driver {
	case "memory":
		store := memory.NewStore()

		return repositories{
			Users:     memory.NewUserRepository(store),
			Expenses:  memory.NewExpenseRepository(store),
			Incomes:   memory.NewIncomeRepository(store),
			TxManager: memory.NewTransactionManager(store),
		}, nil

	case "postgres":
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return repositories{}, err
		}

		return repositories{
			Users:     postgres.NewUserRepository(db),
			Expenses:  postgres.NewExpenseRepository(db),
			Incomes:   postgres.NewIncomeRepository(db),
			TxManager: postgres.NewTransactionManager(db),
		}, nil

	default:
		return repositories{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}

func injectRepo() fx.Option {
	return fx.Provide(
		newRepositories,
	)
}

func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	return auth.NewPasswordHasher(cfg.Auth.PasswordScheme, cfg.Auth.BcryptCost)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewExpenseService,
			impl.NewIncomeService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewExpenseHandler,
			handler.NewIncomeHandler,
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
