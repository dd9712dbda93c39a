package handler

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"recruitment-dashboard/internal/model"
	"recruitment-dashboard/internal/pipeline"
	"recruitment-dashboard/internal/render"
	"recruitment-dashboard/internal/session"
)

// Handler serves the dashboard API over one loaded table.
type Handler struct {
	table    *pipeline.Table
	sessions *session.Store
	opts     pipeline.Options
	logger   logrus.FieldLogger
}

func New(table *pipeline.Table, sessions *session.Store, opts pipeline.Options, logger logrus.FieldLogger) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	opts.Logger = logger
	return &Handler{
		table:    table,
		sessions: sessions,
		opts:     opts,
		logger:   logger.WithField("component", "api"),
	}
}

// reserved query parameters that are not filter dimensions
const sortParam = "sort"

// selectionFromQuery reads filter dimensions from the query string.
// Repeated keys keep their first value.
func selectionFromQuery(q url.Values) (model.Selection, error) {
	values := make(map[string]string, len(q))
	for k, v := range q {
		if k == sortParam || len(v) == 0 {
			continue
		}
		values[k] = v[0]
	}
	return pipeline.ParseSelection(values)
}

// optionsFromQuery applies an optional ?sort= override for region order.
func (h *Handler) optionsFromQuery(q url.Values) (pipeline.Options, error) {
	opts := h.opts
	if s := q.Get(sortParam); s != "" {
		mode, ok := pipeline.ParseSortMode(s)
		if !ok {
			return opts, errors.Errorf("unknown sort mode %q", s)
		}
		opts.RegionSort = mode
	}
	return opts, nil
}

func (h *Handler) dashboard(sel model.Selection, opts pipeline.Options) (*model.Dashboard, error) {
	return pipeline.BuildDashboard(h.table, sel, opts)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

// fail maps domain errors onto HTTP status codes.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, pipeline.ErrUnknownDimension):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, render.ErrNoData):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
