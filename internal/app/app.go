package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/groph-cart/internal/cache"
	"github.com/fsdevblog/groph-cart/internal/config"
	"github.com/fsdevblog/groph-cart/internal/repository/memrepo"
	"github.com/fsdevblog/groph-cart/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-cart/internal/repository/repoargs"
	"github.com/fsdevblog/groph-cart/internal/service"
	"github.com/fsdevblog/groph-cart/internal/transport/api"
	"github.com/fsdevblog/groph-cart/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// Run поднимает хранилища и http сервер и блокируется до SIGINT/SIGTERM. При сигнале сервер
// останавливается штатно и Run возвращает nil.
func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"run_address": a.Config.RunAddress,
		"postgres":    a.Config.DatabaseDSN != "",
		"redis":       a.Config.RedisAddr,
	}).Info("starting app")

	unitOfWork, closeStorage, storageErr := a.initStorage(notifyCtx)
	if storageErr != nil {
		return fmt.Errorf("app run: %s", storageErr.Error())
	}
	defer closeStorage()

	stores, closeCache, cacheErr := a.initCache(notifyCtx)
	if cacheErr != nil {
		return fmt.Errorf("app run: %s", cacheErr.Error())
	}
	defer closeCache()

	services, sErr := service.Factory(unitOfWork, stores, a.Config, a.Logger)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:              a.Logger,
		CartService:         services.CartService,
		CreditService:       services.CreditService,
		CancellationService: services.CancellationService,
		JWTSecretKey:        []byte(a.Config.JWTSecret),
	})

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	g, gCtx := errgroup.WithContext(notifyCtx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		a.Logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	return g.Wait() //nolint:wrapcheck
}

// initStorage подключает postgres, если задан DSN, иначе использует хранилище в памяти.
func (a *App) initStorage(ctx context.Context) (uow.UOW, func(), error) {
	if a.Config.DatabaseDSN == "" {
		a.Logger.Warn("database DSN is not set, using in-memory storage")
		return memrepo.NewUnitOfWork(memrepo.NewStore()), func() {}, nil
	}

	conn, connErr := pgrepo.Connect(ctx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return nil, nil, connErr //nolint:wrapcheck
	}

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		conn.Close()
		return nil, nil, uowErr
	}
	return unitOfWork, conn.Close, nil
}

// initCache подключает redis, если задан адрес, иначе кеш и корзины живут в памяти процесса.
func (a *App) initCache(ctx context.Context) (service.Stores, func(), error) {
	if a.Config.RedisAddr == "" {
		a.Logger.Warn("redis address is not set, using in-memory cache")
		store := cache.NewMemoryStore()
		return service.Stores{Cache: store, Preferences: store, Carts: store}, func() {}, nil
	}

	rdb, err := cache.Connect(ctx, a.Config.RedisAddr, a.Config.RedisPassword, a.Config.RedisDB)
	if err != nil {
		return service.Stores{}, nil, err //nolint:wrapcheck
	}
	store := cache.NewRedisStore(rdb, a.Config.CacheTTL)
	closeFn := func() {
		if closeErr := rdb.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Warn("closing redis client")
		}
	}
	return service.Stores{Cache: store, Preferences: store, Carts: store}, closeFn, nil
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	// credit ledger repo
	creditRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewCreditRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.CreditRepoName), creditRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// purchase history repo
	historyRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewHistoryRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.HistoryRepoName), historyRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	return unitOfWork, nil
}
