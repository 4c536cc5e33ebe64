package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mauv0809/padel-cup/internal/config"
	"github.com/mauv0809/padel-cup/internal/metrics"
	"github.com/mauv0809/padel-cup/internal/processor"
	"github.com/mauv0809/padel-cup/internal/pubsub"
)

type Server struct {
	Stores         processor.Stores
	Processor      *processor.Processor
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         chi.Router
	pubsub         pubsub.PubSubClient
}

// errorResponse is the body of every non-2xx JSON response.
type errorResponse struct {
	Error string `json:"error"`
}

type statusRequest struct {
	Status string `json:"status"`
}
