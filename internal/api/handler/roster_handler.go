package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
	"github.com/kyambogo/exam-permit-system/internal/core/ports"
)

// RosterHandler is the admin surface over provisioned students and
// invigilators.
type RosterHandler struct {
	roster ports.RosterService
}

func NewRosterHandler(roster ports.RosterService) *RosterHandler {
	return &RosterHandler{roster: roster}
}

// ListStudents handles GET /manage-students.
//
// @Summary      List provisioned students
// @Tags         roster
// @Produce      json
// @Success      200  {array}  domain.Identity
// @Router       /manage-students [get]
func (h *RosterHandler) ListStudents(c echo.Context) error {
	students, err := h.roster.Students(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, students)
}

// CreateStudent handles POST /manage-students.
//
// @Summary      Provision a student
// @Tags         roster
// @Accept       json
// @Produce      json
// @Param        body  body      createStudentRequest  true  "Student details"
// @Success      201   {object}  domain.Identity
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /manage-students [post]
func (h *RosterHandler) CreateStudent(c echo.Context) error {
	var req createStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	student, err := h.roster.AddStudent(c.Request().Context(), domain.Identity{
		Name:        req.Name,
		Email:       req.Email,
		RegNumber:   req.RegNumber,
		Semester:    req.Semester,
		YearOfStudy: req.YearOfStudy,
		Course:      req.Course,
		Gender:      req.Gender,
		Programme:   req.Programme,
		FeesBalance: req.FeesBalance,
		Faculty:     req.Faculty,
		Department:  req.Department,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, student)
}

// ListInvigilators handles GET /manage-invigilators.
//
// @Summary      List provisioned invigilators
// @Tags         roster
// @Produce      json
// @Success      200  {array}  domain.Identity
// @Router       /manage-invigilators [get]
func (h *RosterHandler) ListInvigilators(c echo.Context) error {
	invigilators, err := h.roster.Invigilators(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invigilators)
}

// CreateInvigilator handles POST /manage-invigilators.
//
// @Summary      Provision an invigilator
// @Tags         roster
// @Accept       json
// @Produce      json
// @Param        body  body      createInvigilatorRequest  true  "Invigilator details"
// @Success      201   {object}  domain.Identity
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /manage-invigilators [post]
func (h *RosterHandler) CreateInvigilator(c echo.Context) error {
	var req createInvigilatorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	invigilator, err := h.roster.AddInvigilator(c.Request().Context(), domain.Identity{
		Name:         req.Name,
		Email:        req.Email,
		RegNumber:    req.StaffNumber,
		Department:   req.Department,
		Faculty:      req.Faculty,
		AcademicYear: req.AcademicYear,
		Semester:     req.Semester,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, invigilator)
}
