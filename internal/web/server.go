/*
Package web serves the questionnaire over HTTP.

A browser gets a session cookie holding a random id once its first
submission is stored.
The server keeps one survey.Navigator per session, so GET / shows either the
form or the results depending on where that session is. Clients without a
session always see a blank form. Every handler that touches the service
or a navigator runs under one mutex: the response file has a single writer
per process.

Routes:

	GET  /             form or results page
	POST /submit       store the form and switch to results
	POST /back         return to the form
	GET  /api/results  results as JSON
	GET  /healthz      liveness
	GET  /metrics      Prometheus metrics
*/
package web

import (
	"embed"
	"html/template"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/khanglvm/gift-inventory/internal/survey"
)

// SessionCookie is the name of the cookie carrying the session id.
const SessionCookie = "gift_session"

//go:embed templates/*.html
var templateFS embed.FS

// session is one browser's place in the questionnaire.
type session struct {
	nav *survey.Navigator
	// answers and problem hold a rejected submission so the form can be shown
	// again with the user's choices intact.
	answers survey.Answers
	problem string
}

// Server is the HTTP front end of a survey.Service.
type Server struct {
	svc       *survey.Service
	logger    *zap.Logger
	metrics   *Metrics
	registry  *prometheus.Registry
	templates *template.Template

	mu       sync.Mutex
	sessions map[string]*session
}

// NewServer creates a server for svc. A nil logger discards logs.
func NewServer(svc *survey.Service, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	return &Server{
		svc:       svc,
		logger:    logger,
		metrics:   newMetrics(reg),
		registry:  reg,
		templates: tmpl,
		sessions:  make(map[string]*session),
	}, nil
}

// Metrics returns the server's counters.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Handler returns the router with every route and the request logger.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(requestLogger(s.logger))

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/submit", s.handleSubmit).Methods(http.MethodPost)
	r.HandleFunc("/back", s.handleBack).Methods(http.MethodPost)
	r.HandleFunc("/api/results", s.handleAPIResults).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return r
}

// lookup returns the caller's session, or nil when the request carries no
// known session cookie. Callers must hold s.mu.
func (s *Server) lookup(r *http.Request) *session {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil
	}
	return s.sessions[c.Value]
}

// start registers sess under a new id and sets the session cookie. Callers
// must hold s.mu.
func (s *Server) start(w http.ResponseWriter, sess *session) {
	id := uuid.NewString()
	s.sessions[id] = sess

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.logger.Debug("Session started", zap.String("session", id))
}

// SessionCount returns the number of live sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
