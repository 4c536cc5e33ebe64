package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mauv0809/padel-cup/internal/config"
	"github.com/mauv0809/padel-cup/internal/metrics"
	"github.com/mauv0809/padel-cup/internal/processor"
	"github.com/mauv0809/padel-cup/internal/pubsub"
)

// NewServer builds the REST surface. pubsub may be nil, which disables the push endpoint.
func NewServer(stores processor.Stores, proc *processor.Processor, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Stores:         stores,
		Processor:      proc,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         chi.NewRouter(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	r := s.Router
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	r.Method("GET", "/metrics", s.MetricsHandler)
	s.handle("GET", "/health", s.HealthCheckHandler())

	r.Route("/tournaments", func(r chi.Router) {
		s.handleOn(r, "GET", "/", s.ListTournamentsHandler())
		s.handleOn(r, "POST", "/", s.CreateTournamentHandler())
		s.handleOn(r, "GET", "/active", s.ActiveTournamentsHandler())

		r.Route("/{tournamentID}", func(r chi.Router) {
			s.handleOn(r, "GET", "/", s.GetTournamentHandler())
			s.handleOn(r, "PATCH", "/", s.UpdateTournamentHandler())
			s.handleOn(r, "DELETE", "/", s.DeleteTournamentHandler())
			s.handleOn(r, "POST", "/status", s.ChangeStatusHandler())
			s.handleOn(r, "GET", "/stats", s.StatsHandler())
			s.handleOn(r, "GET", "/teams", s.ListTeamsHandler())
			s.handleOn(r, "POST", "/teams", s.RegisterTeamHandler())
			s.handleOn(r, "POST", "/teams/import", s.ImportTeamsHandler())
			s.handleOn(r, "GET", "/structure", s.GetStructureHandler())
			s.handleOn(r, "POST", "/structure", s.GenerateStructureHandler())
			s.handleOn(r, "GET", "/structure/preview", s.PreviewStructureHandler())
			s.handleOn(r, "GET", "/matches", s.ListMatchesHandler())
		})
	})

	r.Route("/teams/{teamID}", func(r chi.Router) {
		s.handleOn(r, "GET", "/", s.GetTeamHandler())
		s.handleOn(r, "PATCH", "/", s.UpdateTeamHandler())
		s.handleOn(r, "DELETE", "/", s.DeleteTeamHandler())
	})

	s.handle("POST", "/pubsub/push", s.PubSubPushHandler())
}

func (s *Server) handle(method, pattern string, h http.Handler) {
	s.handleOn(s.Router, method, pattern, h)
}

func (s *Server) handleOn(r chi.Router, method, pattern string, h http.Handler) {
	r.Method(method, pattern, Chain(h, paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
