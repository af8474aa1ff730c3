package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/lordhost/storefront-client/docs"
	"github.com/lordhost/storefront-client/internal/api/handler"
	"github.com/lordhost/storefront-client/internal/api/middleware"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

// Deps are the services the router exposes.
type Deps struct {
	Sessions     ports.SessionService
	Orders       ports.OrderService
	Servers      ports.ServerService
	Store        ports.SessionStore
	StoreBackend string
	Log          zerolog.Logger

	// Registry receives the HTTP metrics and backs /metrics. Nil means the
	// default Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "storefront",
		Registerer: registerer,
	}))

	// --- Handlers ---
	sessionHandler := handler.NewSessionHandler(d.Sessions)
	planHandler := handler.NewPlanHandler(d.Orders)
	orderHandler := handler.NewOrderHandler(d.Orders)
	serverHandler := handler.NewServerHandler(d.Servers)
	requireSession := middleware.RequireSession(d.Sessions)

	// --- Health probes and tooling ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(d.Store, d.StoreBackend).Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")

	// --- Plans ---
	v1.GET("/plans", planHandler.List)
	v1.GET("/plans/:name/quote", planHandler.Quote)

	// --- Session ---
	v1.GET("/session", sessionHandler.Current)
	v1.POST("/session/login", sessionHandler.Login)
	v1.POST("/session/register", sessionHandler.Register)
	v1.DELETE("/session", sessionHandler.Logout)

	// --- Orders (anonymous allowed) ---
	v1.POST("/orders", orderHandler.Submit)
	v1.GET("/orders/current", orderHandler.Current)
	v1.DELETE("/orders/current", orderHandler.Reset)
	v1.GET("/orders/prefill", orderHandler.Prefill)

	// --- Dashboard ---
	v1.GET("/servers", serverHandler.List, requireSession)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
