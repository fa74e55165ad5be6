package billing

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/cpt-codes", h.ListCatalog)
	api.GET("/encounters/:id/charges", h.ListCharges)
}

// ListCatalog returns the static CPT reference for charge-entry screens.
func (h *Handler) ListCatalog(c echo.Context) error {
	return c.JSON(http.StatusOK, Catalog)
}

func (h *Handler) ListCharges(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	charges, err := h.svc.ChargesForEncounter(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"charges": charges,
		"totals":  SumTotals(charges),
	})
}
