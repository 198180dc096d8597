package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
	"github.com/kyambogo/exam-permit-system/internal/core/service"
	"github.com/kyambogo/exam-permit-system/internal/infrastructure/db/memory"
)

func newPermitHandler() *PermitHandler {
	permits := memory.NewPermitRepository([]*domain.Permit{
		{ID: "P-0001", RegNumber: "21/U/ITD/3925/PD", Status: domain.PermitValid},
		{ID: "P-0002", RegNumber: "23/U/DCE/04387/PD", Status: domain.PermitPending},
	})
	return NewPermitHandler(service.NewPermitService(permits, zerolog.Nop()))
}

func permitContext(t *testing.T, identity domain.Identity, path string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session", authenticatedSession(t, identity))
	return c, rec
}

func TestPermitOwn_ReturnsPrintablePermit(t *testing.T) {
	h := newPermitHandler()
	student := domain.Identity{ID: "S1", Role: domain.RoleStudent, RegNumber: "21/U/ITD/3925/PD"}
	c, rec := permitContext(t, student, "/permit")

	if err := h.Own(c); err != nil {
		t.Fatalf("own: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp permitResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Permit == nil || resp.Permit.ID != "P-0001" {
		t.Fatalf("unexpected permit: %+v", resp.Permit)
	}
	if resp.PrintedAt == "" {
		t.Fatalf("response must carry a print timestamp")
	}
}

func TestPermitOwn_PendingPermitWithheld(t *testing.T) {
	h := newPermitHandler()
	student := domain.Identity{ID: "S2", Role: domain.RoleStudent, RegNumber: "23/U/DCE/04387/PD"}
	c, _ := permitContext(t, student, "/permit")

	if err := h.Own(c); !errors.Is(err, domain.ErrPermitNotPrintable) {
		t.Fatalf("expected ErrPermitNotPrintable, got %v", err)
	}
}

func TestPermitApprove_RecordsApprover(t *testing.T) {
	h := newPermitHandler()
	admin := domain.Identity{ID: "A1", Name: "Admin User", Role: domain.RoleAdmin}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/manage-permits/P-0002/approve", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("P-0002")
	c.Set("session", authenticatedSession(t, admin))

	if err := h.Approve(c); err != nil {
		t.Fatalf("approve: %v", err)
	}

	var permit domain.Permit
	if err := json.Unmarshal(rec.Body.Bytes(), &permit); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if permit.Status != domain.PermitApproved || permit.ApprovedBy != "Admin User" {
		t.Fatalf("unexpected approval result: %+v", permit)
	}
}
