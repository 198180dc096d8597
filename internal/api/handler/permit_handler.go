package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
	"github.com/kyambogo/exam-permit-system/internal/core/ports"
)

// PermitHandler serves the student permit view and the admin management
// surface over permits.
type PermitHandler struct {
	permits ports.PermitService
}

func NewPermitHandler(permits ports.PermitService) *PermitHandler {
	return &PermitHandler{permits: permits}
}

type permitResponse struct {
	Permit    *domain.Permit `json:"permit"`
	PrintedAt string         `json:"printed_at,omitempty"`
}

// Own handles GET /permit — the authenticated student's printable permit.
//
// @Summary      Fetch own exam permit
// @Tags         permits
// @Produce      json
// @Success      200  {object}  permitResponse
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /permit [get]
func (h *PermitHandler) Own(c echo.Context) error {
	identity, err := identityFromContext(c)
	if err != nil {
		return err
	}

	permit, err := h.permits.OwnPermit(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, permitResponse{
		Permit:    permit,
		PrintedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// List handles GET /manage-permits — admin listing of all permits.
//
// @Summary      List permits
// @Tags         permits
// @Produce      json
// @Success      200  {array}  domain.Permit
// @Router       /manage-permits [get]
func (h *PermitHandler) List(c echo.Context) error {
	permits, err := h.permits.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, permits)
}

// Approve handles POST /manage-permits/:id/approve.
//
// @Summary      Approve a pending permit
// @Tags         permits
// @Produce      json
// @Param        id  path  string  true  "Permit ID"
// @Success      200  {object}  domain.Permit
// @Failure      404  {object}  map[string]string
// @Router       /manage-permits/{id}/approve [post]
func (h *PermitHandler) Approve(c echo.Context) error {
	identity, err := identityFromContext(c)
	if err != nil {
		return err
	}

	permit, err := h.permits.Approve(c.Request().Context(), c.Param("id"), identity.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, permit)
}

// Revoke handles POST /manage-permits/:id/revoke.
//
// @Summary      Revoke a permit
// @Tags         permits
// @Produce      json
// @Param        id  path  string  true  "Permit ID"
// @Success      200  {object}  domain.Permit
// @Failure      404  {object}  map[string]string
// @Router       /manage-permits/{id}/revoke [post]
func (h *PermitHandler) Revoke(c echo.Context) error {
	permit, err := h.permits.Revoke(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, permit)
}
