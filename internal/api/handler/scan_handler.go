package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kyambogo/exam-permit-system/internal/api/metrics"
	"github.com/kyambogo/exam-permit-system/internal/core/ports"
)

const defaultHistoryLimit = 50

// ScanHandler exposes the invigilator scanning surface.
type ScanHandler struct {
	scans  ports.ScanService
	roster ports.RosterService
}

func NewScanHandler(scans ports.ScanService, roster ports.RosterService) *ScanHandler {
	return &ScanHandler{scans: scans, roster: roster}
}

// Scan handles POST /scan — runs one simulated QR scan and returns the
// verdict. The invigilation record is persisted asynchronously.
//
// @Summary      Scan a permit
// @Tags         scans
// @Produce      json
// @Success      200  {object}  ports.ScanResult
// @Failure      403  {object}  map[string]string
// @Router       /scan [post]
func (h *ScanHandler) Scan(c echo.Context) error {
	identity, err := identityFromContext(c)
	if err != nil {
		return err
	}

	result, err := h.scans.Scan(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	metrics.ScansTotal.WithLabelValues(string(result.Record.Outcome)).Inc()
	if result.Record.Duplicate {
		metrics.ScanDedupTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.ScanDedupTotal.WithLabelValues("miss").Inc()
	}

	return c.JSON(http.StatusOK, result)
}

// History handles GET /scan-history — recent invigilation records for the
// requesting invigilator (admins see everyone's).
//
// @Summary      Scan history
// @Tags         scans
// @Produce      json
// @Param        limit  query  int  false  "Maximum records to return"
// @Success      200  {array}  domain.Invigilation
// @Router       /scan-history [get]
func (h *ScanHandler) History(c echo.Context) error {
	identity, err := identityFromContext(c)
	if err != nil {
		return err
	}

	limit := defaultHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	records, err := h.scans.History(c.Request().Context(), identity, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// StudentDetails handles GET /student-details?reg= — the invigilator's
// drill-down on a scanned student.
//
// @Summary      Look up a scanned student
// @Tags         scans
// @Produce      json
// @Param        reg  query  string  true  "Registration number"
// @Success      200  {object}  domain.Identity
// @Failure      404  {object}  map[string]string
// @Router       /student-details [get]
func (h *ScanHandler) StudentDetails(c echo.Context) error {
	reg := c.QueryParam("reg")
	if reg == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reg query parameter is required")
	}

	student, err := h.roster.StudentByReg(c.Request().Context(), reg)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}
