package triage

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vigil/vigil/internal/domain/patient"
	"github.com/vigil/vigil/internal/platform/auth"
	"github.com/vigil/vigil/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	triageGroup := api.Group("/triage", auth.RequireRole("admin", "physician", "nurse"))
	triageGroup.POST("", h.RunTriage)
	triageGroup.GET("/decisions", h.ListDecisions)
	triageGroup.GET("/decisions/:id", h.GetDecision)

	dashGroup := api.Group("/dashboard", auth.RequireRole("admin", "physician", "nurse"))
	dashGroup.GET("/stats", h.DashboardStats)

	metaGroup := api.Group("/meta", auth.RequireRole("admin", "physician", "nurse"))
	metaGroup.GET("/symptoms", h.ListSymptomCodes)
}

func (h *Handler) RunTriage(c echo.Context) error {
	var snap patient.Snapshot
	if err := c.Bind(&snap); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	decision, err := h.svc.Triage(c.Request().Context(), &snap)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPatient):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrClassifierTimeout):
			return echo.NewHTTPError(http.StatusGatewayTimeout, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, decision)
}

func (h *Handler) GetDecision(c echo.Context) error {
	id := c.Param("id")
	decision, err := h.svc.GetDecision(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	return c.JSON(http.StatusOK, decision)
}

func (h *Handler) ListDecisions(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListDecisions(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) DashboardStats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) ListSymptomCodes(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"symptoms":   patient.SymptomCodes,
		"conditions": patient.ConditionCodes,
	})
}
