package encounter

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ptalab/emr/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/patients/:id/encounters", h.Create)
	api.GET("/patients/:id/encounters", h.ListByPatient)
	api.GET("/encounters", h.ListRecent)
	api.GET("/encounters/:id", h.Get)
	api.PUT("/encounters/:id", h.Edit)
	api.POST("/encounters/:id/sign", h.Sign)
	api.POST("/encounters/:id/unlock", h.Unlock)
}

func httpError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "encounter not found")
	case errors.Is(err, ErrLocked):
		return echo.NewHTTPError(http.StatusConflict, "note is signed; unlock before editing")
	case errors.Is(err, ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "only an instructor or the signing clinician may unlock")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (h *Handler) Create(c echo.Context) error {
	patientID, err := pathID(c)
	if err != nil {
		return err
	}

	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	enc, note, err := h.svc.Create(c.Request().Context(), patientID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"encounter": enc,
		"note":      note,
	})
}

func (h *Handler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	detail, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req EditRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	detail, err := h.svc.Edit(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) Sign(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	enc, alreadySigned, err := h.svc.Sign(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"encounter":      enc,
		"already_signed": alreadySigned,
	})
}

func (h *Handler) Unlock(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	enc, err := h.svc.Unlock(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"encounter": enc})
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := pathID(c)
	if err != nil {
		return err
	}
	params := pagination.FromContext(c)
	encs, total, err := h.svc.ListByPatient(c.Request().Context(), patientID, params.Limit, params.Offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(encs, total, params.Limit, params.Offset))
}

func (h *Handler) ListRecent(c echo.Context) error {
	params := pagination.FromContext(c)
	encs, err := h.svc.ListRecent(c.Request().Context(), params.Limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": encs})
}
