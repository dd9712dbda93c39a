package api

import (
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "recruitment-dashboard/docs"
	"recruitment-dashboard/internal/api/handler"
	"recruitment-dashboard/pkg/router"
)

// Options toggles the operational endpoints.
type Options struct {
	MetricsEnabled bool
	MetricsPath    string
	SwaggerEnabled bool
	AllowedOrigins []string
}

func RegisterRoutes(r *router.Router, h *handler.Handler, opts Options) {
	r.GET("/api/v1/health", handler.Instrument("health", h.Health))
	r.GET("/api/v1/filters", handler.Instrument("filters", h.FilterOptions))
	r.GET("/api/v1/dashboard", handler.Instrument("dashboard", h.Dashboard))
	r.GET("/api/v1/kpis", handler.Instrument("kpis", h.KPIs))

	r.GET("/api/v1/charts/principles", handler.Instrument("principle_chart", h.PrincipleChart))
	r.GET("/api/v1/charts/principles.svg", handler.Instrument("principle_chart_svg", h.PrincipleChartSVG))
	// More specific routes first
	r.GET("/api/v1/charts/regions/*.svg", handler.Instrument("region_chart_svg", h.RegionChartSVG))
	r.GET("/api/v1/charts/regions/*", handler.Instrument("region_chart", h.RegionChart))

	r.POST("/api/v1/sessions", handler.Instrument("session_create", h.CreateSession))
	r.PUT("/api/v1/sessions/*/filters", handler.Instrument("session_filters", h.UpdateSessionFilters))
	r.GET("/api/v1/sessions/*/dashboard", handler.Instrument("session_dashboard", h.GetSessionDashboard))
	// Generic session routes last
	r.GET("/api/v1/sessions/*", handler.Instrument("session_get", h.GetSession))
	r.DELETE("/api/v1/sessions/*", handler.Instrument("session_delete", h.DeleteSession))

	if opts.MetricsEnabled {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, promhttp.Handler())
	}
	if opts.SwaggerEnabled {
		r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
	}
}

// Wrap applies CORS and gzip compression around the router.
func Wrap(r *router.Router, opts Options) http.Handler {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept-Encoding"},
	})
	return c.Handler(gziphandler.GzipHandler(r.Handler()))
}
