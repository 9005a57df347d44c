// Package web assembles the fiber application: middleware, the API route
// tree and the graceful shutdown lifecycle.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/fieldops/fieldops/internal/auth"
	"github.com/fieldops/fieldops/internal/config"
	fiberlogger "github.com/fieldops/fieldops/internal/logger/adapter/fiber"
	"github.com/fieldops/fieldops/internal/web/handler/admin"
	"github.com/fieldops/fieldops/internal/web/handler/jobs"
	"github.com/fieldops/fieldops/internal/web/handler/locations"
	"github.com/fieldops/fieldops/internal/web/handler/login"
	"github.com/fieldops/fieldops/internal/web/handler/masters"
)

// HealthPath is the liveness endpoint used by load balancers.
const HealthPath = "/api/health"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: report unhealthy first so the
	// LB drains this instance before the listener goes away.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "fieldops",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	app.Use(cors.New())

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: HealthPath,
	}))

	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}
	service.alive.Store(true)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get(HealthPath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"ok": false})
		}

		return c.JSON(fiber.Map{"ok": true})
	})

	guard := auth.NewGuard(db)

	if err := Handler.Init(app, cfg, db, guard); err != nil {
		log.Fatal().Err(err).Msg("failed to init api routes")
	}

	return service
}

// apiService wires the API route tree: the open auth routes plus the
// bearer-guarded resource groups.
type apiService struct{}

// Handler is the api route tree handler.
var Handler = apiService{}

// Init registers every API route group.
func (apiService) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard *auth.Guard) error {
	if err := login.Handler.Init(app.Group("/api/auth"), cfg, db, guard); err != nil {
		return err
	}

	api := app.Group("/api", auth.Middleware(cfg.Auth.JWTSecret))

	if err := admin.Handler.Init(api.Group("/admin"), cfg, db, guard); err != nil {
		return err
	}

	if err := masters.Handler.Init(api.Group("/masters"), cfg, db, guard); err != nil {
		return err
	}

	if err := locations.Handler.Init(api.Group("/settings"), cfg, db, guard); err != nil {
		return err
	}

	return jobs.Handler.Init(api.Group("/jobs"), cfg, db, guard)
}
