// Package admin exposes the instructor-facing operational surface: caseload
// summary counts and the synthetic data reset.
package admin

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ptalab/emr/internal/platform/auth"
	"github.com/ptalab/emr/internal/seed"
)

type Handler struct {
	pool   *pgxpool.Pool
	seeder *seed.Seeder
	seedID int64
	logger zerolog.Logger
}

func NewHandler(pool *pgxpool.Pool, seeder *seed.Seeder, seedID int64, logger zerolog.Logger) *Handler {
	return &Handler{pool: pool, seeder: seeder, seedID: seedID, logger: logger}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/admin", auth.RequireRole(auth.RoleInstructor))
	g.GET("/summary", h.Summary)
	g.POST("/reset", h.Reset)
}

// Summary returns row counts for the main tables so instructors can see the
// state of the training dataset at a glance.
func (h *Handler) Summary(c echo.Context) error {
	ctx := c.Request().Context()

	counts := map[string]int{}
	for _, table := range []string{"users", "patients", "encounters", "notes", "charges", "audit_logs"} {
		var n int
		if err := h.pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		counts[table] = n
	}
	return c.JSON(http.StatusOK, counts)
}

// Reset wipes all data and regenerates the synthetic caseload. Destructive,
// so instructor rights are required by the route group.
func (h *Handler) Reset(c echo.Context) error {
	h.logger.Warn().Str("user", auth.NameFromContext(c.Request().Context())).Msg("training data reset requested")

	err := h.seeder.Run(c.Request().Context(), seed.Options{Seed: h.seedID, Force: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "reset complete"})
}
