package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"apptrack-engine/internal/config"
	"apptrack-engine/internal/events"
	"apptrack-engine/internal/extract"
	"apptrack-engine/internal/httpapi"
	"apptrack-engine/internal/openjobs"
	"apptrack-engine/internal/scheduler"
	"apptrack-engine/internal/store"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Engine data dir: use env if provided (the desktop shell passes one),
	// else local folder.
	dataDir := os.Getenv("APPTRACK_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("create data dir")
	}

	// One engine per data dir; a second instance would fight over sqlite.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatal().Err(err).Msg("acquire data dir lock")
	}
	if !locked {
		log.Fatal().Str("dir", dataDir).Msg("another engine instance holds the data dir")
	}
	defer lock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config bootstrap failed")
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", userCfgPath).Msg("config load failed")
	}
	cfg, vres := config.NormalizeAndValidate(cfg)
	for _, w := range vres.Warnings {
		log.Warn().Msg(w)
	}
	if !vres.OK() {
		for _, e := range vres.Errors {
			log.Error().Msg(e)
		}
		log.Fatal().Msg("config invalid")
	}

	var cfgVal atomic.Value
	cfgVal.Store(cfg)

	db, err := store.Open(filepath.Join(dataDir, "apptrack.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	hub := events.NewHub()

	limiter := extract.NewHostLimiter(cfg.Extract.RequestsPerSec, cfg.Extract.Burst)
	client := extract.NewClient(limiter)

	cache := openjobs.NewCache()
	refresher := &openjobs.Refresher{
		Feed:  cfg.OpenJobs.FeedURL,
		Fetch: client,
		Cache: cache,
		Snap:  store.OpenJobs{DB: db.Pool},
		Hub:   hub,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	refresher.Warm(ctx)
	go scheduler.Every(ctx, time.Duration(cfg.OpenJobs.RefreshHours)*time.Hour, "open-jobs-refresh", refresher.Refresh)

	mux := httpapi.NewMux(httpapi.Deps{
		Hub:             hub,
		Importer:        client,
		OpenJobs:        cache,
		Refresher:       refresher,
		OpenJobsMaxDays: cfg.OpenJobs.MaxAgeDays,
		CfgVal:          &cfgVal,
	})

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", addr).Msg("listen")
	}
	log.Info().Str("addr", addr).Str("data_dir", dataDir).Msg("engine listening")

	srv := &http.Server{
		Handler:           httpapi.Chain(mux, httpapi.RequestID, httpapi.Recover, httpapi.AccessLog, httpapi.Cors),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("serve")
	}
}
