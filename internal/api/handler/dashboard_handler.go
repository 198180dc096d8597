package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
	"github.com/kyambogo/exam-permit-system/internal/core/ports"
)

// DashboardHandler renders the role-polymorphic home route: the same URL
// serves a different dashboard per role.
type DashboardHandler struct {
	permits ports.PermitService
	roster  ports.RosterService
	scans   ports.ScanRepository
}

func NewDashboardHandler(permits ports.PermitService, roster ports.RosterService, scans ports.ScanRepository) *DashboardHandler {
	return &DashboardHandler{permits: permits, roster: roster, scans: scans}
}

type studentDashboard struct {
	View         string          `json:"view"`
	User         domain.Identity `json:"user"`
	PermitStatus string          `json:"permit_status"`
}

type adminDashboard struct {
	View            string `json:"view"`
	Students        int    `json:"students"`
	Invigilators    int    `json:"invigilators"`
	Permits         int    `json:"permits"`
	PermitsApproved int    `json:"permits_approved"`
	RecentScans     int    `json:"recent_scans"`
}

type invigilatorDashboard struct {
	View       string `json:"view"`
	RedirectTo string `json:"redirect_to"`
}

// Home handles GET / — dispatches on the session role. The switch is
// exhaustive over the closed role set.
//
// @Summary      Role-polymorphic home dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func (h *DashboardHandler) Home(c echo.Context) error {
	identity, err := identityFromContext(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	switch identity.Role {
	case domain.RoleStudent:
		status := "unknown"
		permit, permitErr := h.permits.OwnPermit(ctx, identity)
		switch {
		case permitErr == nil:
			status = string(permit.Status)
		case identity.FeesBalance > 0:
			status = string(domain.PermitPending)
		}
		return c.JSON(http.StatusOK, studentDashboard{
			View:         "student_dashboard",
			User:         identity,
			PermitStatus: status,
		})

	case domain.RoleAdmin:
		students, _ := h.roster.Students(ctx)
		invigilators, _ := h.roster.Invigilators(ctx)
		permits, _ := h.permits.List(ctx)
		approved := 0
		for _, p := range permits {
			if p.Status == domain.PermitApproved || p.Status == domain.PermitValid {
				approved++
			}
		}
		recent, _ := h.scans.List(ctx, 20)
		return c.JSON(http.StatusOK, adminDashboard{
			View:            "admin_dashboard",
			Students:        len(students),
			Invigilators:    len(invigilators),
			Permits:         len(permits),
			PermitsApproved: approved,
			RecentScans:     len(recent),
		})

	case domain.RoleInvigilator:
		// Invigilators land on the scanner; the home view just points there.
		return c.JSON(http.StatusOK, invigilatorDashboard{
			View:       "scanner_entry",
			RedirectTo: "/scan",
		})
	}

	return echo.NewHTTPError(http.StatusForbidden, "unknown role")
}
