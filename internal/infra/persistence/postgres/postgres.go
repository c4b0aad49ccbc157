package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"todo/config"
	"todo/internal/domain/lifecycle"
	"todo/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the dependencies of the database connection
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL connection and registers the ping, migration and close hooks.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	conn := &connection{
		db:     db,
		sqlDB:  sqlDB,
		cfg:    params.Config,
		logger: params.Logger,
	}
	params.Append(fx.Hook{
		OnStart: conn.start,
		OnStop:  conn.stop,
	})

	return db, nil
}

// connection owns the startup checks and background pool monitoring of one *gorm.DB.
type connection struct {
	db     *gorm.DB
	sqlDB  *sql.DB
	cfg    *config.Config
	logger *slog.Logger

	stopMonitor context.CancelFunc
}

func (c *connection) start(startCtx context.Context) error {
	ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := c.sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	if c.cfg.Database.AutoMigrate {
		if err := Migrate(ctx, c.db); err != nil {
			return err
		}
		c.logger.Info("Database schema synchronized")
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	c.stopMonitor = stopMonitor
	go monitorDBPool(monitorCtx, c.logger, c.sqlDB, dbPoolMonitorInterval)

	return nil
}

func (c *connection) stop(_ context.Context) error {
	if c.stopMonitor != nil {
		c.stopMonitor()
	}

	return errors.Wrap(c.sqlDB.Close(), "failed to close PostgreSQL")
}

// monitorDBPool logs when requests had to wait for a pooled connection since the last tick.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if level, attrs, waited := poolWait(prev, cur); waited {
				logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWait compares two pool snapshots. Waits adding up past dbPoolWarnDurationThreshold warn.
func poolWait(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return slog.LevelDebug, nil, false
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}

	return level, []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
	}, true
}
