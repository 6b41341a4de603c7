package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	"github.com/johnquangdev/meeting-summarizer/pkg/metrics"
)

// Router holds all handlers
type Router struct {
	cfg           *config.Config
	metrics       *metrics.Metrics
	summary       *Summary
	report        *Report
	transcription *Transcription
	analytics     *Analytics
	services      map[string]string
}

// NewRouter creates a new router with all handlers. services reports which
// external collaborators are wired, for the health check.
func NewRouter(
	cfg *config.Config,
	m *metrics.Metrics,
	summary *Summary,
	report *Report,
	transcription *Transcription,
	analytics *Analytics,
	services map[string]string,
) *Router {
	return &Router{
		cfg:           cfg,
		metrics:       m,
		summary:       summary,
		report:        report,
		transcription: transcription,
		analytics:     analytics,
		services:      services,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	if rt.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(rt.metrics.Registry, promhttp.HandlerOpts{})))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")

	rt.setupSummaryRoutes(v1)
	rt.setupAnalyticsRoutes(v1)
}

func (rt *Router) setupSummaryRoutes(g *echo.Group) {
	summaries := g.Group("/summaries")
	summaries.POST("/validate", rt.summary.Validate)
	summaries.POST("/prompt", rt.summary.Prompt)
	summaries.POST("/generate", rt.summary.Generate)
	summaries.POST("/parse", rt.summary.Parse)
	summaries.POST("/export/pdf", rt.report.ExportPDF)
	summaries.POST("/emails", rt.report.Emails)
	summaries.POST("/calendar", rt.report.Calendar)

	g.POST("/suggestions", rt.summary.Suggestions)
	g.POST("/transcribe", rt.transcription.Transcribe)
}

func (rt *Router) setupAnalyticsRoutes(g *echo.Group) {
	group := g.Group("/analytics")
	group.POST("/dashboard", rt.analytics.Dashboard)
	group.GET("/frequency", rt.analytics.Frequency)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := ""
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "ok",
		Environment: env,
		Services:    rt.services,
	})
}
