package domain

import (
	"errors"
	"time"
)

// PermitStatus represents the lifecycle state of an exam permit.
type PermitStatus string

const (
	PermitPending  PermitStatus = "pending"
	PermitValid    PermitStatus = "valid"
	PermitApproved PermitStatus = "approved"
	PermitExpired  PermitStatus = "expired"
)

var ErrPermitNotFound = errors.New("permit not found")
var ErrPermitNotPrintable = errors.New("permit not printable")

// Printable reports whether a permit in this status may be rendered and
// printed by its owner. Pending and expired permits are withheld.
func (s PermitStatus) Printable() bool {
	return s == PermitValid || s == PermitApproved
}

// CourseUnit is a single registered unit listed on a permit.
type CourseUnit struct {
	Code        string `json:"code" bson:"code"`
	Name        string `json:"name" bson:"name"`
	CreditUnits int    `json:"credit_units" bson:"credit_units"`
	Category    string `json:"category" bson:"category"` // CORE or ELECTIVE
	Retake      bool   `json:"retake,omitempty" bson:"retake,omitempty"`
}

// Permit is the QR-bearing exam permit issued to a student for a semester.
type Permit struct {
	ID            string       `json:"id" bson:"_id,omitempty"`
	StudentName   string       `json:"student_name" bson:"student_name"`
	StudentNumber string       `json:"student_number" bson:"student_number"`
	RegNumber     string       `json:"reg_number" bson:"reg_number"`
	Gender        string       `json:"gender" bson:"gender"`
	Programme     string       `json:"programme,omitempty" bson:"programme,omitempty"`
	YearOfStudy   int          `json:"year_of_study" bson:"year_of_study"`
	Campus        string       `json:"campus" bson:"campus"`
	Semester      string       `json:"semester" bson:"semester"`
	AcademicYear  string       `json:"academic_year" bson:"academic_year"`
	Faculty       string       `json:"faculty" bson:"faculty"`
	Department    string       `json:"department" bson:"department"`
	CourseName    string       `json:"course_name,omitempty" bson:"course_name,omitempty"`
	CourseUnits   []CourseUnit `json:"course_units" bson:"course_units"`
	ExamDate      string       `json:"exam_date" bson:"exam_date"`
	Status        PermitStatus `json:"status" bson:"status"`
	PhotoURL      string       `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	PrintDate     string       `json:"print_date,omitempty" bson:"print_date,omitempty"`
	ApprovedBy    string       `json:"approved_by,omitempty" bson:"approved_by,omitempty"`
	ApprovedAt    *time.Time   `json:"approved_at,omitempty" bson:"approved_at,omitempty"`
}
