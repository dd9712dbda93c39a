package handler

import (
	"net/http"
	"strings"

	"recruitment-dashboard/internal/model"
	"recruitment-dashboard/internal/pipeline"
	"recruitment-dashboard/internal/render"
	"recruitment-dashboard/pkg/router"
)

// Health reports the loaded table and the number of live sessions
// @Summary Health check
// @Description Report service status, the loaded source table and live session count
// @Tags system
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{
		Status:   "ok",
		Table:    h.table.Info(),
		Sessions: h.sessions.Len(),
	})
}

// FilterOptions lists the selectable values of every filter dimension
// @Summary List filter options
// @Description For each filter dimension, All followed by the distinct values of the loaded table in ascending order
// @Tags dashboard
// @Produce json
// @Success 200 {array} model.FilterOption
// @Router /filters [get]
func (h *Handler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.table.FilterOptions())
}

// Dashboard computes every figure for the selection in the query string
// @Summary Compute dashboard
// @Description Filter the table by the query parameters and return KPIs, the principle overview and the regional panels
// @Tags dashboard
// @Produce json
// @Param agency query string false "Agency or All"
// @Param principle query string false "Principle or All"
// @Param area query string false "Area or All"
// @Param job_title query string false "Job title or All"
// @Param regional query string false "Regional or All"
// @Param status_quota query string false "Status quota or All"
// @Param sort query string false "Region order: first_seen, value_desc, value_asc, label_asc, label_desc"
// @Success 200 {object} model.Dashboard
// @Failure 400 {object} model.ErrorResponse "Unknown filter dimension"
// @Router /dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, ok := h.queryDashboard(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// KPIs returns the headline fulfillment figures
// @Summary Fulfillment KPIs
// @Description Overall fulfillment followed by one KPI per configured agency
// @Tags dashboard
// @Produce json
// @Param agency query string false "Agency or All"
// @Param principle query string false "Principle or All"
// @Param area query string false "Area or All"
// @Param job_title query string false "Job title or All"
// @Param regional query string false "Regional or All"
// @Param status_quota query string false "Status quota or All"
// @Success 200 {array} model.KPI
// @Failure 400 {object} model.ErrorResponse "Unknown filter dimension"
// @Router /kpis [get]
func (h *Handler) KPIs(w http.ResponseWriter, r *http.Request) {
	sel, err := selectionFromQuery(r.URL.Query())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	filtered := pipeline.ApplyFilters(h.table.Records(), sel)
	writeJSON(w, http.StatusOK, pipeline.BuildKPIs(filtered, h.opts.KPIAgencies))
}

// PrincipleChart returns the recruit vs open counts per principle
// @Summary Principle overview data
// @Description Counts per principle and recruitment status, principles ordered by total descending
// @Tags charts
// @Produce json
// @Param agency query string false "Agency or All"
// @Param principle query string false "Principle or All"
// @Param area query string false "Area or All"
// @Param job_title query string false "Job title or All"
// @Param regional query string false "Regional or All"
// @Param status_quota query string false "Status quota or All"
// @Success 200 {array} model.StatusCount
// @Failure 400 {object} model.ErrorResponse "Unknown filter dimension"
// @Router /charts/principles [get]
func (h *Handler) PrincipleChart(w http.ResponseWriter, r *http.Request) {
	d, ok := h.queryDashboard(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, d.PrincipleOverview)
}

// PrincipleChartSVG renders the principle overview
// @Summary Principle overview chart
// @Description Stacked RECRUIT/OPEN bars per principle as SVG
// @Tags charts
// @Produce image/svg+xml
// @Param agency query string false "Agency or All"
// @Param principle query string false "Principle or All"
// @Param area query string false "Area or All"
// @Param job_title query string false "Job title or All"
// @Param regional query string false "Regional or All"
// @Param status_quota query string false "Status quota or All"
// @Success 200 {string} string "SVG document"
// @Failure 400 {object} model.ErrorResponse "Unknown filter dimension"
// @Failure 404 {object} model.ErrorResponse "Nothing to chart"
// @Router /charts/principles.svg [get]
func (h *Handler) PrincipleChartSVG(w http.ResponseWriter, r *http.Request) {
	d, ok := h.queryDashboard(w, r)
	if !ok {
		return
	}
	svg, err := render.PrincipleOverviewSVG(d.PrincipleOverview)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeSVG(w, svg)
}

// RegionChart returns regional fulfillment for one agency
// @Summary Regional fulfillment data
// @Description Fulfillment percentage per region within the agency's filtered records; undefined percentages are null
// @Tags charts
// @Produce json
// @Param agency path string true "Agency"
// @Param principle query string false "Principle or All"
// @Param area query string false "Area or All"
// @Param job_title query string false "Job title or All"
// @Param regional query string false "Regional or All"
// @Param status_quota query string false "Status quota or All"
// @Param sort query string false "Region order: first_seen, value_desc, value_asc, label_asc, label_desc"
// @Success 200 {object} model.RegionPanel
// @Failure 400 {object} model.ErrorResponse "Unknown filter dimension"
// @Router /charts/regions/{agency} [get]
func (h *Handler) RegionChart(w http.ResponseWriter, r *http.Request) {
	panel, ok := h.regionPanel(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, panel)
}

// RegionChartSVG renders regional fulfillment for one agency
// @Summary Regional fulfillment chart
// @Description One bar per region with its fulfillment percentage, as SVG
// @Tags charts
// @Produce image/svg+xml
// @Param agency path string true "Agency"
// @Param principle query string false "Principle or All"
// @Param area query string false "Area or All"
// @Param job_title query string false "Job title or All"
// @Param regional query string false "Regional or All"
// @Param status_quota query string false "Status quota or All"
// @Param sort query string false "Region order: first_seen, value_desc, value_asc, label_asc, label_desc"
// @Success 200 {string} string "SVG document"
// @Failure 400 {object} model.ErrorResponse "Unknown filter dimension"
// @Failure 404 {object} model.ErrorResponse "Nothing to chart"
// @Router /charts/regions/{agency}.svg [get]
func (h *Handler) RegionChartSVG(w http.ResponseWriter, r *http.Request) {
	panel, ok := h.regionPanel(w, r)
	if !ok {
		return
	}
	svg, err := render.RegionFulfillmentSVG(panel)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeSVG(w, svg)
}

func (h *Handler) queryDashboard(w http.ResponseWriter, r *http.Request) (*model.Dashboard, bool) {
	q := r.URL.Query()
	sel, err := selectionFromQuery(q)
	if err != nil {
		h.fail(w, r, err)
		return nil, false
	}
	opts, err := h.optionsFromQuery(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	d, err := h.dashboard(sel, opts)
	if err != nil {
		h.fail(w, r, err)
		return nil, false
	}
	return d, true
}

// regionPanel builds the panel for /charts/regions/{agency}[.svg]. The
// agency in the path scopes the records; an agency query parameter is
// still applied as a filter first.
func (h *Handler) regionPanel(w http.ResponseWriter, r *http.Request) (model.RegionPanel, bool) {
	agency := strings.TrimSuffix(router.Segment(r, 4), ".svg")
	if agency == "" {
		writeError(w, http.StatusBadRequest, "agency is required")
		return model.RegionPanel{}, false
	}
	q := r.URL.Query()
	sel, err := selectionFromQuery(q)
	if err != nil {
		h.fail(w, r, err)
		return model.RegionPanel{}, false
	}
	opts, err := h.optionsFromQuery(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return model.RegionPanel{}, false
	}

	all := h.table.Records()
	var universe []model.Record
	if opts.KeepEmptyGroups {
		universe = all
	}
	filtered := pipeline.ApplyFilters(all, sel)
	return pipeline.BuildRegionPanel(filtered, universe, agency, opts.RegionSort), true
}

func writeSVG(w http.ResponseWriter, svg []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}
