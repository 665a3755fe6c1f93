package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sangkips/storefront-admin/internal/config"
	"github.com/sangkips/storefront-admin/internal/domain/entity"
)

// Open connects to the configured database. DB_DRIVER=sqlite uses DB_PATH,
// anything else connects to Postgres.
func Open(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: newGormLogger(cfg, log)}

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.Path)
	case "postgres", "":
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.Database.DSN(),
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	log.Info("connected to database", slog.String("driver", dialector.Name()))
	return db, nil
}

func newGormLogger(cfg *config.Config, log *slog.Logger) gormlogger.Interface {
	level := gormlogger.Info
	if cfg.App.IsProduction() {
		level = gormlogger.Warn
	}
	return gormlogger.New(
		slog.NewLogLogger(log.Handler(), slog.LevelDebug),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Customer{},
		&entity.Item{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SeedCatalog inserts a starter catalog when the items table is empty and
// reports how many items it created.
func SeedCatalog(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&entity.Item{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	items := []entity.Item{
		{Code: "ITM-RICE", Name: "Basmati Rice", Price: entity.ToPaise(95), Unit: "kg"},
		{Code: "ITM-ATTA", Name: "Wheat Atta", Price: entity.ToPaise(48), Unit: "kg"},
		{Code: "ITM-TOOR", Name: "Toor Dal", Price: entity.ToPaise(160), Unit: "kg"},
		{Code: "ITM-SUGR", Name: "Sugar", Price: entity.ToPaise(44), Unit: "kg"},
		{Code: "ITM-GHEE", Name: "Desi Ghee", Price: entity.ToPaise(620), Unit: "ltr"},
		{Code: "ITM-SOAP", Name: "Bath Soap", Price: entity.ToPaise(38.5), Unit: "pcs"},
	}
	if err := db.WithContext(ctx).Create(&items).Error; err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}
	return len(items), nil
}

// Module provides the database handle, migrates on start when
// DB_AUTO_MIGRATE is set and closes the pool on shutdown.
var Module = fx.Options(
	fx.Provide(Open),
	fx.Invoke(func(lc fx.Lifecycle, db *gorm.DB, cfg *config.Config) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				if !cfg.Database.AutoMigrate {
					return nil
				}
				return AutoMigrate(db)
			},
			OnStop: func(context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		})
	}),
)
