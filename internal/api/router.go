package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kyambogo/exam-permit-system/internal/api/handler"
	"github.com/kyambogo/exam-permit-system/internal/api/middleware"
	"github.com/kyambogo/exam-permit-system/internal/core/domain"
	"github.com/kyambogo/exam-permit-system/internal/core/ports"
	"github.com/kyambogo/exam-permit-system/internal/infrastructure/http/handlers"
)

// Deps carries everything the router needs wired in by the composition root.
type Deps struct {
	SessionSecret string
	SessionTTL    time.Duration
	Log           zerolog.Logger

	Directory   ports.CredentialDirectory
	Verifier    ports.SecretVerifier
	Sessions    ports.SessionRepository
	Permits     ports.PermitService
	Scans       ports.ScanService
	ScanRepo    ports.ScanRepository
	Roster      ports.RosterService

	// Optional backends, used by the readiness probe when present.
	Redis *redis.Client
	Mongo *mongo.Database
}

// NewRouter builds the Echo instance with all routes and their access rules
// registered. Each protected path declares its permitted roles right here;
// the gate middleware evaluates the rule on every navigation.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("exampermit"))
	e.Use(middleware.Session(d.SessionSecret, d.Directory, d.Verifier, d.Sessions, d.Log))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.SessionSecret, d.SessionTTL, d.Log)
	dashboardHandler := handler.NewDashboardHandler(d.Permits, d.Roster, d.ScanRepo)
	permitHandler := handler.NewPermitHandler(d.Permits)
	scanHandler := handler.NewScanHandler(d.Scans, d.Roster)
	rosterHandler := handler.NewRosterHandler(d.Roster)
	profileHandler := handler.NewProfileHandler()

	// --- Gate rules ---
	anyRole := middleware.Gate()
	studentOnly := middleware.Gate(domain.RoleStudent)
	invigilatorOnly := middleware.Gate(domain.RoleInvigilator)
	adminOnly := middleware.Gate(domain.RoleAdmin)

	// --- Auth routes (ungated) ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me)

	// --- Role-polymorphic home ---
	e.GET("/", dashboardHandler.Home, anyRole)

	// --- Student routes ---
	e.GET("/permit", permitHandler.Own, studentOnly)
	e.GET("/history", scanHandler.History, studentOnly)

	// --- Invigilator routes ---
	e.POST("/scan", scanHandler.Scan, invigilatorOnly)
	e.GET("/scan-history", scanHandler.History, invigilatorOnly)
	e.GET("/student-details", scanHandler.StudentDetails, invigilatorOnly)

	// --- Admin routes ---
	e.GET("/manage-students", rosterHandler.ListStudents, adminOnly)
	e.POST("/manage-students", rosterHandler.CreateStudent, adminOnly)
	e.GET("/manage-invigilators", rosterHandler.ListInvigilators, adminOnly)
	e.POST("/manage-invigilators", rosterHandler.CreateInvigilator, adminOnly)
	e.GET("/manage-permits", permitHandler.List, adminOnly)
	e.POST("/manage-permits/:id/approve", permitHandler.Approve, adminOnly)
	e.POST("/manage-permits/:id/revoke", permitHandler.Revoke, adminOnly)
	e.GET("/settings", profileHandler.Settings, adminOnly)

	// --- Common routes ---
	e.GET("/profile", profileHandler.Profile, anyRole)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
