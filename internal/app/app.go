package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/file"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/postgres"
	bookingsService "github.com/m04kA/SMC-SalonService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-SalonService/internal/service/catalog"
	salonService "github.com/m04kA/SMC-SalonService/internal/service/salon"
	completeBookingUC "github.com/m04kA/SMC-SalonService/internal/usecase/complete_booking"
	createBookingUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
	sellProductUC "github.com/m04kA/SMC-SalonService/internal/usecase/sell_product"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

// ErrStorage возвращается, когда хранилище снимков не удалось открыть или прочитать
var ErrStorage = errors.New("app: storage unavailable")

// Repository хранилище снимка салона
type Repository interface {
	Load(ctx context.Context) (*domain.Salon, error)
	Save(ctx context.Context, salon *domain.Salon) error
}

// App собранный граф зависимостей, общий для меню и HTTP сервера
type App struct {
	Config  *config.Config
	Logger  *logger.Logger
	Metrics *metrics.Metrics

	TxManager *txmanager.Manager

	Bookings *bookingsService.Service
	Catalog  *catalogService.Service
	Salon    *salonService.Service

	CreateBooking   *createBookingUC.UseCase
	CompleteBooking *completeBookingUC.UseCase
	SellProduct     *sellProductUC.UseCase

	closers []func() error
}

// New открывает хранилище, загружает салон и собирает сервисы.
// metricsCollector может быть nil.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger, metricsCollector *metrics.Metrics) (*App, error) {
	opts := []domain.Option{domain.WithRandomSource(domain.NewRandomSource(cfg.Random.Seed))}

	// 1. Хранилище
	repo, closer, err := openRepository(ctx, cfg, log, opts)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:  cfg,
		Logger:  log,
		Metrics: metricsCollector,
	}
	if closer != nil {
		a.closers = append(a.closers, closer)
	}

	// 2. Загрузка снимка
	salon, err := repo.Load(ctx)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	log.Info("Salon loaded: name=%s, staff=%d, inventory=%d, services=%d, bookings=%d, balance=%.2f",
		salon.Name(), len(salon.Staff()), len(salon.Inventory()), len(salon.Services()),
		len(salon.Bookings()), salon.CheckBalance())
	metricsCollector.SetBalance(salon.CheckBalance())

	// 3. Сервисы и use cases
	a.TxManager = txmanager.NewManager(salon, repo, cfg.Storage.Autosave, txmanager.WithLogger(log))

	a.Bookings = bookingsService.NewService(a.TxManager, metricsCollector, log)
	a.Catalog = catalogService.NewService(a.TxManager, log)
	a.Salon = salonService.NewService(a.TxManager, log)

	a.CreateBooking = createBookingUC.NewUseCase(a.TxManager, metricsCollector, log)
	a.CompleteBooking = completeBookingUC.NewUseCase(a.TxManager, metricsCollector, log)
	a.SellProduct = sellProductUC.NewUseCase(a.TxManager, metricsCollector, log)

	return a, nil
}

// Flush сохраняет текущее состояние салона
func (a *App) Flush(ctx context.Context) error {
	return a.TxManager.Flush(ctx)
}

// SaveError возвращает ошибку последнего сохранения, nil если состояние сохранено
func (a *App) SaveError() error {
	return a.TxManager.SaveError()
}

// Close освобождает ресурсы хранилища
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func openRepository(ctx context.Context, cfg *config.Config, log *logger.Logger, opts []domain.Option) (Repository, func() error, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := postgres.Open(cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrStorage, err)
		}

		configurePool(db, cfg.Database)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("%w: ping database: %v", ErrStorage, err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		repo := postgres.NewRepository(db, cfg.Salon.Name, opts...)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("%w: %w", ErrStorage, err)
		}
		return repo, db.Close, nil

	default:
		log.Info("Using file storage: path=%s", cfg.Storage.FilePath)
		return file.NewRepository(cfg.Storage.FilePath, cfg.Salon.DefaultName, opts...), nil, nil
	}
}

func configurePool(db *sql.DB, cfg config.DatabaseConfig) {
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
}
