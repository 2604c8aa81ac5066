package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"hrdash/internal/platform/config"
	"hrdash/internal/platform/events"
	"hrdash/internal/platform/fixtures"
	"hrdash/internal/platform/metrics"
	"hrdash/internal/store"
	corehandler "hrdash/internal/transport/http/handlers/core"
	eventshandler "hrdash/internal/transport/http/handlers/events"
	leavehandler "hrdash/internal/transport/http/handlers/leave"
	payrollhandler "hrdash/internal/transport/http/handlers/payroll"
	recruitmenthandler "hrdash/internal/transport/http/handlers/recruitment"
	reportshandler "hrdash/internal/transport/http/handlers/reports"
	taskshandler "hrdash/internal/transport/http/handlers/tasks"
	timetrackerhandler "hrdash/internal/transport/http/handlers/timetracker"
	"hrdash/internal/transport/http/middleware"
)

const redisQueueSize = 256

type App struct {
	Config  config.Config
	Store   *store.Store
	Metrics *metrics.Collector
	Router  http.Handler
	Logger  *slog.Logger

	publisher     *events.RedisPublisher
	stopPublisher context.CancelFunc
}

type Option func(*options)

type options struct {
	logger     *slog.Logger
	storeOpts  []store.Option
	fixtureNow time.Time
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStoreOptions passes options through to the store, mainly a fixed clock
// for tests.
func WithStoreOptions(opts ...store.Option) Option {
	return func(o *options) {
		o.storeOpts = append(o.storeOpts, opts...)
	}
}

func WithFixtureTime(now time.Time) Option {
	return func(o *options) {
		o.fixtureNow = now
	}
}

// New builds the store, loads the fixtures and wires the router. The caller
// must Close the returned App.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger

	st := store.New(append([]store.Option{store.WithLogger(logger)}, o.storeOpts...)...)
	fixtureNow := o.fixtureNow
	if fixtureNow.IsZero() {
		fixtureNow = st.Now()
	}
	dataset := fixtures.Generate(fixtures.Config{
		Seed:      cfg.FixtureSeed,
		Employees: cfg.FixtureEmployees,
		Now:       fixtureNow,
	})
	if err := st.Load(dataset); err != nil {
		return nil, fmt.Errorf("load fixtures: %w", err)
	}

	app := &App{Config: cfg, Store: st, Logger: logger}

	if cfg.MetricsEnabled {
		app.Metrics = metrics.New()
		st.Subscribe(app.Metrics)
	}

	if cfg.RedisAddr != "" {
		pubCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		app.publisher = events.NewRedisPublisher(events.NewRedisClient(cfg.RedisAddr), cfg.RedisChannel, redisQueueSize, logger)
		app.publisher.Start(pubCtx)
		app.stopPublisher = cancel
		st.Subscribe(app.publisher)
		logger.Info("publishing changes to redis", "addr", cfg.RedisAddr, "channel", cfg.RedisChannel)
	}

	app.Router = app.routes()
	return app, nil
}

func (a *App) routes() http.Handler {
	cfg := a.Config
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	var rec middleware.Recorder
	if a.Metrics != nil {
		rec = a.Metrics
	}
	router.Use(middleware.Logger(a.Logger, rec))
	router.Use(chimw.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/readyz", a.handleReady)
	if a.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", a.Metrics.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
		r.Use(middleware.MutationRateLimit(cfg.RateLimitPerMinute, time.Minute))

		corehandler.NewHandler(a.Store).RegisterRoutes(r)
		recruitmenthandler.NewHandler(a.Store).RegisterRoutes(r)
		payrollhandler.NewHandler(a.Store).RegisterRoutes(r)
		leavehandler.NewHandler(a.Store).RegisterRoutes(r)
		taskshandler.NewHandler(a.Store).RegisterRoutes(r)
		timetrackerhandler.NewHandler(a.Store).RegisterRoutes(r)
		reportshandler.NewHandler(a.Store).RegisterRoutes(r)
		eventshandler.NewHandler(a.Store).RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})
	return router
}

func (a *App) handleReady(w http.ResponseWriter, r *http.Request) {
	if !a.Store.Initialized() {
		http.Error(w, "store not ready", http.StatusServiceUnavailable)
		return
	}
	if a.publisher != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if !a.publisher.Healthy(ctx) {
			// Change fan-out is best effort; the API still serves.
			a.Logger.Warn("redis not reachable", "addr", a.Config.RedisAddr)
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// Close stops the redis worker and releases the store.
func (a *App) Close() error {
	var errs []error
	if a.stopPublisher != nil {
		a.stopPublisher()
		a.publisher.Wait()
		if err := a.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if err := a.Store.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Serve listens on the configured address until ctx is done, then drains
// connections within the shutdown timeout.
func (a *App) Serve(ctx context.Context) error {
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	// Open event streams only end when their request context does.
	srv.RegisterOnShutdown(cancelBase)

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("hrdash server listening", "addr", a.Config.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	a.Logger.Info("shutting down", "timeout", a.Config.ShutdownTimeout.String())
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func Run() {
	if err := run(); err != nil {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, cfg, WithLogger(logger))
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("close failed", "err", err)
		}
	}()
	return app.Serve(ctx)
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}
	if strings.HasPrefix(r.URL.Path, "/api/") {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, filepath.FromSlash(r.URL.Path))
	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	index := filepath.Join(h.staticPath, h.indexPath)
	if _, err := os.Stat(index); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}
