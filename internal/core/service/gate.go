package service

import "github.com/kyambogo/exam-permit-system/internal/core/domain"

// Decision is the outcome of gating one navigation to a protected path.
type Decision int

const (
	// DecisionPending means hydration has not finished; render a transient
	// waiting state, never a redirect.
	DecisionPending Decision = iota
	// DecisionRedirectLogin sends an anonymous visitor to the login path.
	DecisionRedirectLogin
	// DecisionRedirectHome sends an authenticated but unauthorized visitor
	// to the home path.
	DecisionRedirectHome
	// DecisionAllow renders the destination.
	DecisionAllow
)

func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionRedirectLogin:
		return "redirect_login"
	case DecisionRedirectHome:
		return "redirect_home"
	case DecisionAllow:
		return "allow"
	}
	return "unknown"
}

// Navigable paths the gate redirects to. The role→landing table below lives
// in this file on purpose: where a role lands and what a role may reach must
// not drift apart.
const (
	LoginPath = "/login"
	HomePath  = "/"
	ScanPath  = "/scan"
)

// SessionState is the read-only view of a session the gate consults.
// *Session satisfies it.
type SessionState interface {
	IsLoading() bool
	IsAuthenticated() bool
	Current() *domain.Identity
}

// Decide gates one navigation. An empty required set means any
// authenticated role may pass. The decision is computed fresh per
// navigation; callers must not cache it.
func Decide(s SessionState, required ...domain.Role) Decision {
	if s.IsLoading() {
		return DecisionPending
	}
	if !s.IsAuthenticated() {
		return DecisionRedirectLogin
	}
	if len(required) == 0 {
		return DecisionAllow
	}

	identity := s.Current()
	if identity == nil {
		return DecisionRedirectLogin
	}
	for _, role := range required {
		if identity.Role == role {
			return DecisionAllow
		}
	}
	return DecisionRedirectHome
}

// HomeRoute maps a role to its landing path after login. The home path
// itself is role-polymorphic: students and admins land on "/" and get their
// respective dashboards, invigilators land directly on the scanner.
func HomeRoute(role domain.Role) string {
	switch role {
	case domain.RoleStudent:
		return HomePath
	case domain.RoleAdmin:
		return HomePath
	case domain.RoleInvigilator:
		return ScanPath
	}
	return LoginPath
}
