// Package http exposes the calculator engine as a JSON API.
//
// The engine itself provides no internal synchronization, so the server
// serializes every engine call behind a mutex; each request is handled to
// completion before the next touches engine state.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/tally/pkg/domain"
)

// Engine defines the calculator surface the server drives. The root tally
// Engine satisfies it.
type Engine interface {
	SwitchMode(mode domain.Mode) domain.Layout
	Mode() domain.Mode
	CurrentLayout() domain.Layout
	PressClear() string
	PressToken(token string) string
	PressEquals() string
	PressConvert(operation string) (string, error)
}

// Server wraps one engine session behind HTTP handlers.
type Server struct {
	mu     sync.Mutex
	engine Engine
	logger *slog.Logger

	events        *prometheus.CounterVec
	displayErrors *prometheus.CounterVec
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates an HTTP handler for one engine session. Metrics are
// registered on a private registry so multiple handlers can coexist.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	s := &Server{
		engine: engine,
		logger: slog.Default(),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tally_events_total",
			Help: "Total number of engine events handled",
		}, []string{"event"}),
		displayErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tally_display_errors_total",
			Help: "Total number of events answered with the Error sentinel",
		}, []string{"event"}),
	}
	for _, opt := range opts {
		opt(s)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(s.events, s.displayErrors)

	r := chi.NewRouter()
	r.Get("/health", s.getHealth)
	r.Get("/info", s.getInfo)
	r.Get("/layout", s.getLayout)
	r.Post("/mode", s.postMode)
	r.Post("/token", s.postToken)
	r.Post("/clear", s.postClear)
	r.Post("/equals", s.postEquals)
	r.Post("/convert", s.postConvert)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return r
}

// -- Request/response shapes --

// ModeRequest selects the operating mode by name.
type ModeRequest struct {
	Mode string `json:"mode"`
}

// TokenRequest carries one appended token.
type TokenRequest struct {
	Token string `json:"token"`
}

// ConvertRequest names the conversion operation to apply.
type ConvertRequest struct {
	Operation string `json:"operation"`
}

// DisplayResponse is the display value produced by an engine event.
type DisplayResponse struct {
	Display string `json:"display"`
}

// LayoutResponse is a mode's declarative keypad.
type LayoutResponse struct {
	Mode string        `json:"mode"`
	Keys domain.Layout `json:"keys"`
}

// -- Handlers --

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getInfo(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	mode := s.engine.Mode()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{
		"app":  "tally-http",
		"mode": mode.String(),
	})
}

func (s *Server) getLayout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	mode := s.engine.Mode()
	layout := s.engine.CurrentLayout()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, LayoutResponse{Mode: mode.String(), Keys: layout})
}

func (s *Server) postMode(w http.ResponseWriter, r *http.Request) {
	var body ModeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	mode, err := domain.ParseMode(body.Mode)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.events.WithLabelValues("mode").Inc()
	s.mu.Lock()
	layout := s.engine.SwitchMode(mode)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, LayoutResponse{Mode: mode.String(), Keys: layout})
}

func (s *Server) postToken(w http.ResponseWriter, r *http.Request) {
	var body TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.events.WithLabelValues("token").Inc()
	s.mu.Lock()
	display := s.engine.PressToken(body.Token)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, DisplayResponse{Display: display})
}

func (s *Server) postClear(w http.ResponseWriter, r *http.Request) {
	s.events.WithLabelValues("clear").Inc()
	s.mu.Lock()
	display := s.engine.PressClear()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, DisplayResponse{Display: display})
}

func (s *Server) postEquals(w http.ResponseWriter, r *http.Request) {
	s.events.WithLabelValues("equals").Inc()
	s.mu.Lock()
	display := s.engine.PressEquals()
	s.mu.Unlock()

	if display == domain.DisplayError {
		s.displayErrors.WithLabelValues("equals").Inc()
	}
	writeJSON(w, http.StatusOK, DisplayResponse{Display: display})
}

func (s *Server) postConvert(w http.ResponseWriter, r *http.Request) {
	var body ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.events.WithLabelValues("convert").Inc()
	s.mu.Lock()
	display, err := s.engine.PressConvert(body.Operation)
	s.mu.Unlock()

	if err != nil {
		// Unknown operation id: a client integration bug, not a miskey.
		s.logger.Error("convert rejected", "operation", body.Operation, "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if display == domain.DisplayError {
		s.displayErrors.WithLabelValues("convert").Inc()
	}
	writeJSON(w, http.StatusOK, DisplayResponse{Display: display})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
