package patient

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/view", h.View)
	e.GET("/view/:id", h.ViewOne)
	e.GET("/sort", h.Sort)
	e.POST("/create", h.Create)
	e.PUT("/edit/:id", h.Edit)
	e.DELETE("/delete/:id", h.Delete)
}

func (h *Handler) View(c echo.Context) error {
	records, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

func (h *Handler) ViewOne(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Sort(c echo.Context) error {
	order := c.QueryParam("order")
	if order == "" {
		order = "asc"
	}
	patients, err := h.svc.Sort(c.Request().Context(), c.QueryParam("sort_by"), order)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patients)
}

func (h *Handler) Create(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := h.svc.Create(c.Request().Context(), p); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Patient created successfully"})
}

func (h *Handler) Edit(c echo.Context) error {
	var u Update
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := h.svc.Update(c.Request().Context(), c.Param("id"), u); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Patient updated successfully"})
}

func (h *Handler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Patient deleted successfully"})
}
