package capacity

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vigil/vigil/internal/platform/auth"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	readGroup := api.Group("/resources", auth.RequireRole("admin", "physician", "nurse"))
	readGroup.GET("", h.ListResources)
	readGroup.GET("/check/:department", h.CheckDepartment)

	writeGroup := api.Group("/resources", auth.RequireRole("admin", "physician", "nurse"))
	writeGroup.POST("/admit", h.AdmitPatient)
	writeGroup.POST("/discharge", h.DischargePatient)
}

func (h *Handler) ListResources(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"hospitals": h.store.Snapshot(),
	})
}

func (h *Handler) CheckDepartment(c echo.Context) error {
	department := c.Param("department")
	if department == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "department is required")
	}
	return c.JSON(http.StatusOK, h.store.Check(department))
}

type bedRequest struct {
	Department string `json:"department"`
	HospitalID string `json:"hospital_id"`
}

func (r *bedRequest) normalize() error {
	if r.Department == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "department is required")
	}
	if r.HospitalID == "" {
		r.HospitalID = DefaultPrimaryID
	}
	return nil
}

func (h *Handler) AdmitPatient(c echo.Context) error {
	var req bedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := req.normalize(); err != nil {
		return err
	}
	if !h.store.Admit(req.Department, req.HospitalID) {
		return echo.NewHTTPError(http.StatusConflict, "no beds available in "+req.Department)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"admitted":   true,
		"department": req.Department,
		"status":     h.store.Check(req.Department),
	})
}

func (h *Handler) DischargePatient(c echo.Context) error {
	var req bedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := req.normalize(); err != nil {
		return err
	}
	if !h.store.Discharge(req.Department, req.HospitalID) {
		return echo.NewHTTPError(http.StatusConflict, "no occupied beds to release in "+req.Department)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"discharged": true,
		"department": req.Department,
		"status":     h.store.Check(req.Department),
	})
}
