package daemon

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/planshift/planshift/internal/api"
	"github.com/planshift/planshift/internal/app/afk"
	"github.com/planshift/planshift/internal/app/track"
	"github.com/planshift/planshift/internal/domain"
	"github.com/planshift/planshift/internal/health"
	"github.com/planshift/planshift/internal/infra/input"
	"github.com/planshift/planshift/internal/infra/metrics"
	"github.com/planshift/planshift/internal/infra/power"
	"github.com/planshift/planshift/internal/infra/sqlite"
)

// Daemon is the planshift runtime. It wires together the plan registry,
// idle monitor, AFK engine, active-plan tracker and HTTP API.
type Daemon struct {
	Config   Config
	DB       *sqlite.DB
	Registry domain.PlanRegistry
	Idle     *input.Monitor
	Tracker  *track.Tracker
	Engine   *afk.Engine
	Notifier domain.ChangeNotifier
	Server   *api.Server
	Health   *health.Checker

	lock   *lockFile
	cancel context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	home := planshiftHome()
	if err := os.MkdirAll(home, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	lock, err := acquireLock(home)
	if err != nil {
		return nil, err
	}

	db, err := sqlite.Open(home)
	if err != nil {
		lock.release()
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Try the real OS power plan backend first, fall back to an
	// in-memory mock so the daemon stays usable for development.
	registry, err := power.NewSystemRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: no power plan backend on this system, using mock plans (no real switching)\n")
		registry = power.NewMockRegistry()
	}

	idle := input.NewMonitor()

	tracker := track.New(registry, func(c domain.PlanChange) {
		log.Printf("[track] active plan now %q (%s, source=%s)", c.Name, c.Plan, c.Source)
		metrics.PlanChanges.WithLabelValues(c.Source).Inc()
		if err := db.RecordPlanChange(c); err != nil {
			log.Printf("[track] record plan change: %v", err)
		}
	})

	engine := afk.NewEngine(registry, idle, db, tracker)

	notifier, err := power.NewChangeNotifier()
	if err != nil {
		log.Printf("[daemon] change notifier unavailable: %v (poll only)", err)
		notifier = power.NewNoopNotifier()
	}

	srv := api.NewServer(registry, idle, engine, tracker, db)

	checker := health.NewChecker(db, registry, home)
	srv.SetHealth(checker)

	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	return &Daemon{
		Config:   cfg,
		DB:       db,
		Registry: registry,
		Idle:     idle,
		Tracker:  tracker,
		Engine:   engine,
		Notifier: notifier,
		Server:   srv,
		Health:   checker,
		lock:     lock,
	}, nil
}

// Serve starts the scheduler and HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	go d.Health.Run(ctx)
	go d.schedule(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
	}()

	fmt.Printf("planshift serving on http://%s\n", addr)
	if d.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	err := httpServer.ListenAndServe()
	d.Close()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// schedule is the single evaluation goroutine. All periodic work runs
// here: the AFK tick, the reconciliation poll, and notifier wakeups.
// Serializing them keeps the engine and tracker free of ordering races
// between triggers.
func (d *Daemon) schedule(ctx context.Context) {
	tick := time.NewTicker(d.Config.TickInterval())
	defer tick.Stop()
	poll := time.NewTicker(d.Config.PollInterval())
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			d.Engine.Tick()
		case <-poll.C:
			metrics.Reconciles.WithLabelValues("poll").Inc()
			d.Tracker.Reconcile()
		case _, ok := <-d.Notifier.Events():
			if !ok {
				return
			}
			metrics.Reconciles.WithLabelValues("notify").Inc()
			d.Tracker.Reconcile()
		}
	}
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.Notifier != nil {
		_ = d.Notifier.Close()
	}
	if d.DB != nil {
		_ = d.DB.Close()
	}
	if d.lock != nil {
		d.lock.release()
	}
}
