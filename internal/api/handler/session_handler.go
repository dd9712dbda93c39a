package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"recruitment-dashboard/internal/model"
	"recruitment-dashboard/internal/pipeline"
	"recruitment-dashboard/pkg/router"
)

// session routes are /api/v1/sessions/{id}[/...]
const sessionIDSegment = 3

// sessionID reads the id from /api/v1/sessions/{id}. The trailing wildcard
// route also catches deeper paths, so anything past the id is a 404.
func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := router.Segment(r, sessionIDSegment)
	if id == "" || router.Segment(r, sessionIDSegment+1) != "" {
		writeError(w, http.StatusNotFound, "not found")
		return "", false
	}
	return id, true
}

// CreateSession starts a dashboard session with every filter set to All
// @Summary Create session
// @Description Create a session holding its own filter selection
// @Tags sessions
// @Produce json
// @Success 201 {object} model.SessionResponse
// @Router /sessions [post]
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Create()
	h.logger.WithField("session", sess.ID).Info("session created")
	writeJSON(w, http.StatusCreated, sess.Response())
}

// GetSession returns the session's current selection
// @Summary Get session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} model.SessionResponse
// @Failure 404 {object} model.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	sess, err := h.sessions.Get(id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Response())
}

// UpdateSessionFilters replaces the session's filter selection
// @Summary Update session filters
// @Description Replace the selection; dimensions left out of the body reset to All
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param filters body model.SelectionRequest true "Filter selection keyed by dimension"
// @Success 200 {object} model.SessionResponse
// @Failure 400 {object} model.ErrorResponse "Invalid payload or unknown filter dimension"
// @Failure 404 {object} model.ErrorResponse "Session not found"
// @Router /sessions/{id}/filters [put]
func (h *Handler) UpdateSessionFilters(w http.ResponseWriter, r *http.Request) {
	var req model.SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	sel, err := pipeline.ParseSelection(req.Filters)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	sess, err := h.sessions.UpdateSelection(router.Segment(r, sessionIDSegment), sel)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Response())
}

// GetSessionDashboard computes the dashboard for the session's selection
// @Summary Session dashboard
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} model.Dashboard
// @Failure 404 {object} model.ErrorResponse "Session not found"
// @Router /sessions/{id}/dashboard [get]
func (h *Handler) GetSessionDashboard(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Get(router.Segment(r, sessionIDSegment))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	opts, err := h.optionsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	d, err := h.dashboard(sess.Selection, opts)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// DeleteSession ends a session
// @Summary Delete session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204 "Session deleted"
// @Failure 404 {object} model.ErrorResponse "Session not found"
// @Router /sessions/{id} [delete]
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	if err := h.sessions.Delete(id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.logger.WithFields(logrus.Fields{"session": id}).Info("session deleted")
	w.WriteHeader(http.StatusNoContent)
}
