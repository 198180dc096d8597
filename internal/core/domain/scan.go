package domain

import (
	"errors"
	"time"
)

// ScanOutcome is the invigilator-facing verdict for a scanned permit.
type ScanOutcome string

const (
	ScanApproved ScanOutcome = "approved"
	ScanRejected ScanOutcome = "rejected"
)

var ErrStudentNotFound = errors.New("student not found")
var ErrInvigilatorNotFound = errors.New("invigilator not found")
var ErrRosterEntryExists = errors.New("roster entry already exists")

// Invigilation records one permit scan performed by an invigilator.
// Duplicate marks a repeat scan of the same permit on the same day.
type Invigilation struct {
	ID              string      `json:"id" bson:"_id,omitempty"`
	PermitID        string      `json:"permit_id" bson:"permit_id"`
	RegNumber       string      `json:"reg_number" bson:"reg_number"`
	StudentName     string      `json:"student_name" bson:"student_name"`
	InvigilatorID   string      `json:"invigilator_id" bson:"invigilator_id"`
	InvigilatorName string      `json:"invigilator_name" bson:"invigilator_name"`
	ScanTime        time.Time   `json:"scan_time" bson:"scan_time"`
	Outcome         ScanOutcome `json:"outcome" bson:"outcome"`
	Notes           string      `json:"notes,omitempty" bson:"notes,omitempty"`
	Duplicate       bool        `json:"is_duplicate" bson:"is_duplicate"`
}
