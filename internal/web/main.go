// Package web wires the storefront http server.
package web

import (
	"errors"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"path"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/laceandcraft/storefront/internal/analytics"
	"github.com/laceandcraft/storefront/internal/config"
	"github.com/laceandcraft/storefront/internal/db/models"
	fiberlogger "github.com/laceandcraft/storefront/internal/logger/adapter/fiber"
	"github.com/laceandcraft/storefront/internal/web/handler"
	"github.com/laceandcraft/storefront/internal/web/handler/contact"
	"github.com/laceandcraft/storefront/internal/web/handler/home"
	"github.com/laceandcraft/storefront/internal/web/handler/sitemap"
	"github.com/laceandcraft/storefront/internal/web/middleware/visitor"
)

const (
	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"

	// StaticPath serves the embedded css and scripts.
	StaticPath = "/static"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
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

// WaitShutdown blocks until SIGINT or SIGTERM and stops the server gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
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

		if err := s.App.Shutdown(); err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// CheckAlive answers 200 while serving and 503 once shutdown started.
func (s *Service) CheckAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("ok")
}

// New creates the web service. A nil recorder disables page view tracking.
func New(cfg *config.Config, deps *handler.Deps, recorder *analytics.Recorder) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if !deps.Valid() {
		panic(handler.ErrNilDepsFatalLogMsg)
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize:          8192,
			AppName:                 "storefront",
			CaseSensitive:           true,
			Prefork:                 false,
			Immutable:               true,
			Views:                   newTemplateEngine(cfg, deps),
			EnableTrustedProxyCheck: len(cfg.Webserver.TrustedProxies) > 0,
			TrustedProxies:          cfg.Webserver.TrustedProxies,
			ProxyHeader:             proxyHeader(cfg),
		},
	)

	if cfg.Webserver.CleanPath {
		app.Use(CleanPath)
	}

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	if !cfg.Webserver.DisableVisitorLog && recorder != nil {
		app.Use(visitor.New(visitor.Config{Recorder: recorder, Next: isInfrastructure}))
	}

	// serve embedded static files
	app.Use(StaticPath,
		filesystem.New(
			filesystem.Config{
				Root: subFS(embeddedStaticFiles, "static"),
			},
		),
	)

	service := &Service{
		cfg: cfg,
		App: app,
	}
	service.alive.Store(true)

	app.Get(CheckAlivePath, service.CheckAlive)

	if !cfg.Webserver.DisableMetrics {
		app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))
	}

	for _, h := range []handler.Service{&home.Handler, &sitemap.Handler, &contact.Handler} {
		if err := h.Init(app, deps); err != nil {
			log.Fatal().Err(err).Msg("failed to init handler")
		}
	}

	return service
}

func newTemplateEngine(cfg *config.Config, deps *handler.Deps) *html.Engine {
	engine := html.NewFileSystem(subFS(embeddedTemplates, "templates"), ".gohtml")

	// in debug mode, use local filesystem for templates
	if cfg.DevMode {
		engine = html.New("./internal/web/templates", ".gohtml")
		engine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	engine.AddFunc("val", models.Val)
	engine.AddFunc("asset", func(path *string) string {
		if models.Val(path) == "" {
			return ""
		}

		return deps.Site.Asset(*path)
	})
	engine.AddFunc("hasPrefix", strings.HasPrefix)
	// raw passes admin managed markup such as tracking snippets unescaped
	engine.AddFunc("raw", func(s *string) template.HTML {
		return template.HTML(models.Val(s)) //nolint:gosec
	})
	engine.AddFunc("iterate", func(count int) []int {
		result := make([]int, max(count, 0))
		for i := range result {
			result[i] = i
		}

		return result
	})
	engine.AddFunc("sub", func(a, b int) int {
		return a - b
	})

	return engine
}

// isInfrastructure reports probes, metrics scrapes and asset requests,
// none of which are page views.
func isInfrastructure(c *fiber.Ctx) bool {
	p := c.Path()

	return p == CheckAlivePath || p == MetricsPath || strings.HasPrefix(p, StaticPath+"/")
}

// CleanPath collapses repeated slashes so //products routes like /products.
func CleanPath(c *fiber.Ctx) error {
	if p := c.Path(); strings.Contains(p, "//") {
		c.Path(path.Clean(p))
	}

	return c.Next()
}

// proxyHeader trusts X-Forwarded-For only behind configured proxies.
func proxyHeader(cfg *config.Config) string {
	if len(cfg.Webserver.TrustedProxies) == 0 {
		return ""
	}

	return fiber.HeaderXForwardedFor
}
