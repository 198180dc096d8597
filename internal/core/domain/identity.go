package domain

import "errors"

// Role represents the closed set of principal roles in the permit system.
// A principal belongs to exactly one role for the lifetime of a session.
type Role string

const (
	RoleStudent     Role = "student"
	RoleInvigilator Role = "invigilator"
	RoleAdmin       Role = "admin"
)

// ParseRole converts a stored string into a Role, rejecting anything
// outside the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleInvigilator, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInvigilator, RoleAdmin:
		return true
	}
	return false
}

var ErrUnknownRole = errors.New("unknown role")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrSessionNotFound = errors.New("session not found")
var ErrSessionCorrupt = errors.New("session record corrupt")
var ErrStorageUnavailable = errors.New("session storage unavailable")
var ErrForbidden = errors.New("access forbidden")

// Identity is the authenticated principal held by a session. Role-specific
// attributes are optional and populated only for the roles that carry them.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`

	// Student and staff attributes.
	RegNumber   string `json:"reg_number,omitempty"`
	Semester    string `json:"semester,omitempty"`
	YearOfStudy int    `json:"year_of_study,omitempty"`
	Course      string `json:"course,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Programme   string `json:"programme,omitempty"`
	FeesBalance int64  `json:"fees_balance,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`

	Faculty      string `json:"faculty,omitempty"`
	Department   string `json:"department,omitempty"`
	AcademicYear string `json:"academic_year,omitempty"`
}

// SessionRecordVersion tags persisted session records so the layout can
// evolve without breaking hydration of older records.
const SessionRecordVersion = 1

// SessionRecord is the durable shape persisted for an authenticated session.
type SessionRecord struct {
	Version  int      `json:"version"`
	Identity Identity `json:"identity"`
}
