package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"explicador-backend/internal/config"
	"explicador-backend/internal/groq"
	"explicador-backend/internal/metrics"
	"explicador-backend/internal/types"
)

// APIConfigLoader yields the upstream configuration for one request cycle.
type APIConfigLoader interface {
	Load() config.APIConfig
}

type Server struct {
	router    *chi.Mux
	cfg       config.Config
	apiConfig APIConfigLoader
	explainer *groq.Explainer
	metrics   *metrics.Metrics
}

func NewServer(cfg config.Config) (*Server, error) {
	prompt, err := groq.DefaultPromptSpec()
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt spec: %w", err)
	}
	explainer := groq.NewExplainer(groq.NewClient(cfg.UpstreamTimeout), prompt)
	return New(cfg, config.NewAPILoader(cfg.EnvFile), explainer, metrics.New()), nil
}

// New wires a server from explicit parts.
func New(cfg config.Config, apiConfig APIConfigLoader, explainer *groq.Explainer, m *metrics.Metrics) *Server {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	origin := cfg.AllowedOrigin
	if origin == "" {
		origin = "*"
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{origin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	s := &Server{
		router:    r,
		cfg:       cfg,
		apiConfig: apiConfig,
		explainer: explainer,
		metrics:   m,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Get("/", s.handlePage)
	s.router.Post("/", s.handlePage)
	s.router.Get("/health", s.handleHealth)
	s.router.Method(http.MethodGet, "/metrics", s.metrics.Handler())
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handlePage serves GET and POST "/". Every path ends in a rendered page.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	apiCfg := s.apiConfig.Load()

	var outcome *types.Outcome
	var term string
	if !apiCfg.Valid() {
		outcome = types.ConfigurationError(apiCfg.Problem)
	} else if r.Method == http.MethodPost {
		rawTerm := ""
		if err := r.ParseForm(); err != nil {
			log.Printf("[page] %s: form parse error: %v", requestIDFrom(r.Context()), err)
		} else {
			rawTerm = r.PostForm.Get("termo")
		}
		start := time.Now()
		outcome, term = s.explainer.Explain(r.Context(), r.Method, rawTerm, apiCfg)
		s.metrics.ObserveUpstream(time.Since(start))
	}
	s.metrics.ObserveOutcome(outcome)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := RenderPage(w, term, outcome); err != nil {
		log.Printf("[page] %s: render error: %v", requestIDFrom(r.Context()), err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
