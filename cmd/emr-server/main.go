package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ptalab/emr/internal/config"
	"github.com/ptalab/emr/internal/domain/admin"
	"github.com/ptalab/emr/internal/domain/audit"
	"github.com/ptalab/emr/internal/domain/billing"
	"github.com/ptalab/emr/internal/domain/encounter"
	"github.com/ptalab/emr/internal/domain/patient"
	"github.com/ptalab/emr/internal/domain/user"
	"github.com/ptalab/emr/internal/platform/auth"
	"github.com/ptalab/emr/internal/platform/db"
	"github.com/ptalab/emr/internal/platform/middleware"
	"github.com/ptalab/emr/internal/seed"
)

// chartInfoAdapter adapts the patient service to the encounter package's
// directory interface, avoiding an import cycle between the two domains.
type chartInfoAdapter struct {
	svc *patient.Service
}

func (a *chartInfoAdapter) ChartInfo(ctx context.Context, patientID uuid.UUID) (encounter.ChartInfo, error) {
	p, err := a.svc.Get(ctx, patientID)
	if err != nil {
		if err == patient.ErrNotFound {
			return encounter.ChartInfo{}, encounter.ErrNotFound
		}
		return encounter.ChartInfo{}, err
	}
	info := encounter.ChartInfo{}
	if p.Contraindications != nil {
		info.Contraindications = *p.Contraindications
	}
	if p.Precautions != nil {
		info.Precautions = *p.Precautions
	}
	return info, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "emr-server",
		Short: "Educational PTA EMR API Server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the EMR API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func openPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	return db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := openPool(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := openPool(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate the synthetic training caseload",
		RunE: func(cmd *cobra.Command, args []string) error {
			seedID, _ := cmd.Flags().GetInt64("seed")
			patients, _ := cmd.Flags().GetInt("patients")
			force, _ := cmd.Flags().GetBool("force")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := openPool(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			logger := newLogger(cfg)
			return seed.New(pool, logger).Run(ctx, seed.Options{
				Seed:     seedID,
				Patients: patients,
				Force:    force,
			})
		},
	}
	cmd.Flags().Int64("seed", 42, "Random seed for deterministic generation")
	cmd.Flags().Int("patients", 100, "Number of synthetic patients")
	cmd.Flags().Bool("force", false, "Wipe existing data before seeding")
	return cmd
}

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.IsDev() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cfg)
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()
	pool, err := openPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	if cfg.SeedOnStart {
		if err := seed.New(pool, logger).Run(ctx, seed.Options{Seed: cfg.Seed}); err != nil {
			logger.Fatal().Err(err).Msg("seed on start failed")
		}
	}

	// Repositories and services
	userRepo := user.NewRepo(pool)
	patientRepo := patient.NewRepo(pool)
	encounterRepo := encounter.NewRepo(pool)
	chargeRepo := billing.NewRepo(pool)
	auditRepo := audit.NewRepo(pool)

	auditSvc := audit.NewService(auditRepo, logger)

	ttl := time.Duration(cfg.TokenTTL()) * time.Hour
	userSvc := user.NewService(userRepo, cfg.SigningSecret(), ttl, auditSvc)
	patientSvc := patient.NewService(patientRepo)
	billingSvc := billing.NewService(chargeRepo)

	inTx := func(ctx context.Context, fn func(context.Context) error) error {
		return db.RunInTx(ctx, pool, fn)
	}
	encounterSvc := encounter.NewService(
		encounterRepo,
		billingSvc,
		&chartInfoAdapter{svc: patientSvc},
		userSvc,
		auditSvc,
		inTx,
	)

	seeder := seed.New(pool, logger)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RequestTimeout(30 * time.Second))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	e.GET("/health", db.HealthHandler(pool))

	public := e.Group("/api/v1")
	user.NewHandler(userSvc).RegisterPublicRoutes(public)

	api := e.Group("/api/v1", auth.JWTMiddleware(cfg.SigningSecret()))
	user.NewHandler(userSvc).RegisterRoutes(api)
	patient.NewHandler(patientSvc).RegisterRoutes(api)
	encounter.NewHandler(encounterSvc).RegisterRoutes(api)
	billing.NewHandler(billingSvc).RegisterRoutes(api)
	audit.NewHandler(auditSvc).RegisterRoutes(api)
	admin.NewHandler(pool, seeder, cfg.Seed, logger).RegisterRoutes(api)

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("server listening")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
