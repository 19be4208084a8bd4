package handler

import (
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "ipoadvisor/docs"
	"ipoadvisor/internal/http/middleware"
)

// SwaggerPath serves the API reference UI and its doc.json.
const SwaggerPath = "/swagger/*"

// multipart framing allowance on top of the largest accepted file
const bodyOverhead = 1 << 20

// AppOptions configures NewApp.
type AppOptions struct {
	Services       Services
	Logger         *zap.Logger
	Registry       *prometheus.Registry
	MaxUploadBytes int64
}

// NewApp assembles the stub backend: error handler, middleware chain, /metrics,
// the Swagger UI and every API route.
func NewApp(opts AppOptions) (*fiber.App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	metrics, err := middleware.NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               "ipoadvisor-stub",
		ErrorHandler:          ErrorHandler(logger),
		BodyLimit:             int(opts.MaxUploadBytes) + bodyOverhead,
		UnescapePath:          true,
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath
	})))
	app.Use(middleware.Logger(logger))
	app.Use(metrics.Handler())

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	// host is left empty in the document, so the UI targets whichever host served it
	app.Get(SwaggerPath, swagger.HandlerDefault)
	RegisterRoutes(app, opts.Services, opts.MaxUploadBytes)

	return app, nil
}
