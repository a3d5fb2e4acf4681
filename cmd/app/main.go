// Command app runs the dispatch service. The serve command starts the HTTP API
// and the background jobs, and migrate applies the database schema.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dispatch/cmd"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/redis"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	app := &cli.App{
		Name:  "dispatch",
		Usage: "assigns delivery orders to couriers and moves couriers on the city grid",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "dotenv files to load before reading the environment",
				Value: cli.NewStringSlice(".env"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API and the background jobs",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "migrate",
						Usage: "apply migrations before serving",
						Value: true,
					},
				},
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations and exit",
				Action: migrate,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("dispatch stopped", "error", err)
		os.Exit(1)
	}
}

func setup(c *cli.Context) (cmd.Config, *slog.Logger, error) {
	cfg, err := cmd.LoadConfig(c.StringSlice("env-file")...)
	if err != nil {
		return cmd.Config{}, nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func migrate(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}

	if err := postgres.Migrate(cfg.DSN()); err != nil {
		return err
	}
	logger.Info("migrations applied")
	return nil
}

func serve(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if c.Bool("migrate") {
		if err := postgres.Migrate(cfg.DSN()); err != nil {
			return err
		}
	}

	gormDB, err := gorm.Open(gormpg.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	root, err := newCompositionRoot(ctx, cfg, gormDB, logger)
	if err != nil {
		return err
	}

	e, err := root.CreateHTTPServer()
	if err != nil {
		return err
	}
	jobManager, err := root.CreateJobManager()
	if err != nil {
		return err
	}

	if err := jobManager.StartAll(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
		logger.Info("http server started", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return errors.Join(
			e.Shutdown(shutdownCtx),
			jobManager.StopAll(shutdownCtx),
		)
	})

	return g.Wait()
}

func newCompositionRoot(ctx context.Context, cfg cmd.Config, gormDB *gorm.DB, logger *slog.Logger) (*cmd.CompositionRoot, error) {
	if cfg.RedisAddr == "" {
		return cmd.NewCompositionRoot(cfg, gormDB, nil, logger)
	}

	client, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return cmd.NewCompositionRoot(cfg, gormDB, client, logger)
}
