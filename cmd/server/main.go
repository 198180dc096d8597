package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kyambogo/exam-permit-system/internal/api"
	"github.com/kyambogo/exam-permit-system/internal/core/domain"
	"github.com/kyambogo/exam-permit-system/internal/core/ports"
	"github.com/kyambogo/exam-permit-system/internal/core/service"
	"github.com/kyambogo/exam-permit-system/internal/directory"
	"github.com/kyambogo/exam-permit-system/internal/infrastructure/config"
	"github.com/kyambogo/exam-permit-system/internal/infrastructure/db/memory"
	mongodb "github.com/kyambogo/exam-permit-system/internal/infrastructure/db/mongo"
	redisdb "github.com/kyambogo/exam-permit-system/internal/infrastructure/db/redis"
	"github.com/kyambogo/exam-permit-system/internal/infrastructure/queue"
	"github.com/kyambogo/exam-permit-system/pkg/logger"
)

// main wires the composition root: the credential directory, the session
// store backends, the scan pipeline, and the HTTP router. Business logic
// lives in internal/core.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "exam-permit-system",
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Credential directory (static, read-only) ---
	verifier := directory.NewBcryptVerifier(cfg.BcryptCost)
	dir, err := directory.New(directory.Seed(), verifier)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build credential directory")
	}

	// --- Session persistence + scan dedup ---
	var sessions ports.SessionRepository
	var dedup service.ScanDedup
	deps := api.Deps{}

	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		sessions = redisdb.NewSessionRepository(rdb, cfg.SessionTTL)
		dedup = redisdb.NewScanDedup(rdb)
		deps.Redis = rdb
		log.Info().Str("addr", cfg.Redis.Addr).Msg("sessions persisted in redis")
	} else {
		sessions = memory.NewSessionRepository()
		dedup = memory.NewScanDedup()
		log.Warn().Msg("no REDIS_ADDR configured, sessions will not survive a restart")
	}

	// --- Scan history ---
	var scanRepo ports.ScanRepository
	if cfg.Mongo.URI != "" {
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		scanRepo = mongodb.NewScanRepository(db)
		deps.Mongo = db
		log.Info().Str("database", cfg.Mongo.Database).Msg("scan history persisted in mongodb")
	} else {
		scanRepo = memory.NewScanRepository()
	}

	// --- Rosters and permits (seeded in memory) ---
	rosterRepo := memory.NewRosterRepository(seedIdentities())
	permitRepo := memory.NewPermitRepository(memory.SeedPermits())

	// --- Scan recording pipeline ---
	dispatcher := queue.NewDispatcher(cfg.ScanWorkers, scanRepo, log)
	dispatcher.Start(ctx)

	// --- Services ---
	permitService := service.NewPermitService(permitRepo, log)
	rosterService := service.NewRosterService(rosterRepo, log)
	scanService := service.NewScanService(rosterRepo, permitRepo, scanRepo, dedup, dispatcher, log)

	deps.SessionSecret = cfg.SessionSecret
	deps.SessionTTL = cfg.SessionTTL
	deps.Log = log
	deps.Directory = dir
	deps.Verifier = verifier
	deps.Sessions = sessions
	deps.Permits = permitService
	deps.Scans = scanService
	deps.ScanRepo = scanRepo
	deps.Roster = rosterService

	e := api.NewRouter(deps)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting exam permit service")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// seedIdentities extracts the provisioned identities from the credential
// directory seed so the roster starts consistent with who can log in.
func seedIdentities() []domain.Identity {
	seed := directory.Seed()
	identities := make([]domain.Identity, 0, len(seed))
	for _, entry := range seed {
		identities = append(identities, entry.Identity)
	}
	return identities
}
