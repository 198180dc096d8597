package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the shared profile view and the admin settings page.
type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// Profile handles GET /profile — the authenticated identity, any role.
//
// @Summary      Current profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.Identity
// @Router       /profile [get]
func (h *ProfileHandler) Profile(c echo.Context) error {
	identity, err := identityFromContext(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}

type settingsResponse struct {
	AcademicYear    string `json:"academic_year"`
	CurrentSemester string `json:"current_semester"`
	Campus          string `json:"campus"`
	PermitsOpen     bool   `json:"permits_open"`
}

// Settings handles GET /settings — static academic-period configuration.
//
// @Summary      System settings
// @Tags         profile
// @Produce     json
// @Success      200  {object}  settingsResponse
// @Router       /settings [get]
func (h *ProfileHandler) Settings(c echo.Context) error {
	if _, err := identityFromContext(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settingsResponse{
		AcademicYear:    "2024/2025",
		CurrentSemester: "I",
		Campus:          "Kyambogo Main",
		PermitsOpen:     true,
	})
}
