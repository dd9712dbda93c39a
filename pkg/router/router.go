package router

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// --- ANSI color codes ---
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

type route struct {
	method  string
	pattern string
	handler HandlerFunc
}

// Router matches METHOD + path against registered patterns. A "*" segment
// matches any single segment; a trailing "*" matches the rest of the path.
// Exact routes win; wildcard routes are tried in registration order, so
// register specific patterns first.
type Router struct {
	mux    *http.ServeMux
	routes map[string]HandlerFunc // key = METHOD:PATH
	order  []route                // wildcard routes, registration order
	paths  map[string]bool        // track registered paths
	logger logrus.FieldLogger
	colors bool
}

func New(logger logrus.FieldLogger) *Router {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	r := &Router{
		mux:    http.NewServeMux(),
		routes: make(map[string]HandlerFunc),
		paths:  make(map[string]bool),
		logger: logger.WithField("component", "http"),
	}
	if l, ok := logger.(*logrus.Logger); ok {
		_, isText := l.Formatter.(*logrus.TextFormatter)
		r.colors = isText
	}

	// Catch-all handler for every path
	r.mux.HandleFunc("/", r.serve)
	return r
}

func (r *Router) serve(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	if h, ok := r.match(req.Method, req.URL.Path); ok {
		h(lrw, req)
	} else if r.pathExists(req.URL.Path) {
		// Path exists but method not allowed
		http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
	} else {
		http.Error(lrw, "Not Found", http.StatusNotFound)
	}

	r.logRequest(req, lrw.statusCode, start)
}

func (r *Router) match(method, path string) (HandlerFunc, bool) {
	if h, ok := r.routes[method+":"+path]; ok {
		return h, true
	}
	for _, rt := range r.order {
		if rt.method == method && matchWildcardRoute(path, rt.pattern) {
			return rt.handler, true
		}
	}
	return nil, false
}

func (r *Router) pathExists(path string) bool {
	if r.paths[path] {
		return true
	}
	for _, rt := range r.order {
		if matchWildcardRoute(path, rt.pattern) {
			return true
		}
	}
	return false
}

func (r *Router) logRequest(req *http.Request, status int, start time.Time) {
	duration := time.Since(start)
	entry := r.logger.WithFields(logrus.Fields{
		"method":   req.Method,
		"path":     req.URL.Path,
		"status":   status,
		"duration": duration.String(),
	})
	msg := "request"
	if r.colors {
		msg = methodColor(req.Method) + req.Method + colorReset + " " + req.URL.Path + " " +
			statusColor(status) + http.StatusText(status) + colorReset + " " +
			colorBlue + duration.String() + colorReset
	}
	switch {
	case status >= 500:
		entry.Error(msg)
	case status >= 400:
		entry.Warn(msg)
	default:
		entry.Info(msg)
	}
}

// matchWildcardRoute checks if a request path matches a wildcard route pattern
func matchWildcardRoute(requestPath, routePattern string) bool {
	requestSegments := strings.Split(strings.Trim(requestPath, "/"), "/")
	routeSegments := strings.Split(strings.Trim(routePattern, "/"), "/")

	// Single wildcard at the end matches any number of remaining segments
	if len(routeSegments) > 0 && routeSegments[len(routeSegments)-1] == "*" {
		if len(requestSegments) < len(routeSegments)-1 {
			return false
		}
		for i := 0; i < len(routeSegments)-1; i++ {
			if !segmentMatches(requestSegments[i], routeSegments[i]) {
				return false
			}
		}
		return true
	}

	if len(requestSegments) != len(routeSegments) {
		return false
	}
	for i, routeSegment := range routeSegments {
		if !segmentMatches(requestSegments[i], routeSegment) {
			return false
		}
	}
	return true
}

// segmentMatches compares one path segment. "*" matches any non-empty
// segment and "*.ext" any segment ending in .ext.
func segmentMatches(segment, pattern string) bool {
	switch {
	case pattern == "*":
		return segment != ""
	case strings.HasPrefix(pattern, "*."):
		return len(segment) > len(pattern)-1 && strings.HasSuffix(segment, pattern[1:])
	default:
		return segment == pattern
	}
}

// Segment returns the i-th segment of the request path, or "".
func Segment(req *http.Request, i int) string {
	parts := strings.Split(strings.Trim(req.URL.Path, "/"), "/")
	if i < 0 || i >= len(parts) {
		return ""
	}
	return parts[i]
}

// --- Register paths ---
func (r *Router) register(method, path string, handler HandlerFunc) {
	r.paths[path] = true
	if strings.Contains(path, "*") {
		r.order = append(r.order, route{method: method, pattern: path, handler: handler})
		return
	}
	r.routes[method+":"+path] = handler
}

func (r *Router) GET(path string, handler HandlerFunc)   { r.register(http.MethodGet, path, handler) }
func (r *Router) POST(path string, handler HandlerFunc)  { r.register(http.MethodPost, path, handler) }
func (r *Router) PUT(path string, handler HandlerFunc)   { r.register(http.MethodPut, path, handler) }
func (r *Router) PATCH(path string, handler HandlerFunc) { r.register(http.MethodPatch, path, handler) }
func (r *Router) DELETE(path string, handler HandlerFunc) {
	r.register(http.MethodDelete, path, handler)
}

// Handle registers an http.Handler for GET requests.
func (r *Router) Handle(path string, h http.Handler) {
	r.GET(path, h.ServeHTTP)
}

// Paths lists every registered path pattern, sorted.
func (r *Router) Paths() []string {
	out := make([]string, 0, len(r.paths))
	for p := range r.paths {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Handler exposes the router for wrapping with middleware.
func (r *Router) Handler() http.Handler {
	return r.mux
}

// --- Logging response writer to capture status codes ---
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// --- Color helpers ---
func statusColor(code int) string {
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	default:
		return colorRed
	}
}

func methodColor(method string) string {
	switch method {
	case http.MethodGet:
		return colorGreen
	case http.MethodPost:
		return colorBlue
	case http.MethodPut, http.MethodPatch:
		return colorYellow
	case http.MethodDelete:
		return colorRed
	default:
		return colorCyan
	}
}
