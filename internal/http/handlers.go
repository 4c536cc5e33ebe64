package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/mauv0809/padel-cup/internal/padel"
	"github.com/mauv0809/padel-cup/internal/processor"
	"github.com/mauv0809/padel-cup/internal/pubsub"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.FromContext(r.Context()).Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// ListTournamentsHandler returns every tournament, or a page of them when any
// of q, status, page or limit is given.
func (s *Server) ListTournamentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if !q.Has("q") && !q.Has("status") && !q.Has("page") && !q.Has("limit") {
			tournaments, err := s.Stores.Tournaments.List(r.Context())
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, tournaments)
			return
		}

		params := padel.SearchParams{
			Query:  q.Get("q"),
			Status: padel.TournamentStatus(q.Get("status")),
		}
		var err error
		if params.Page, err = intParam(q.Get("page")); err != nil {
			writeError(w, err)
			return
		}
		if params.Limit, err = intParam(q.Get("limit")); err != nil {
			writeError(w, err)
			return
		}
		page, err := s.Stores.Tournaments.Search(r.Context(), params)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q is not a non-negative integer", padel.ErrValidation, v)
	}
	return n, nil
}

func (s *Server) CreateTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in padel.CreateTournamentInput
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, err)
			return
		}
		t, err := s.Processor.CreateTournament(r.Context(), in, isDryRunFromContext(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, t)
	}
}

func (s *Server) ActiveTournamentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tournaments, err := s.Stores.Tournaments.Active(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, tournaments)
	}
}

func (s *Server) GetTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "tournamentID")
		t, err := s.Stores.Tournaments.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if t == nil {
			writeError(w, notFound("tournament", id))
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

func (s *Server) UpdateTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "tournamentID")
		var patch padel.TournamentUpdate
		if err := decodeJSON(r, &patch); err != nil {
			writeError(w, err)
			return
		}
		t, err := s.Stores.Tournaments.Update(r.Context(), id, patch)
		if err != nil {
			writeError(w, err)
			return
		}
		if t == nil {
			writeError(w, notFound("tournament", id))
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

func (s *Server) DeleteTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "tournamentID")
		deleted, err := s.Stores.Tournaments.Delete(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if !deleted {
			writeError(w, notFound("tournament", id))
			return
		}
		log.FromContext(r.Context()).Info("Tournament deleted", "tournamentID", id)
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) ChangeStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "tournamentID")
		var req statusRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}
		t, err := s.Stores.Tournaments.ChangeStatus(r.Context(), id, padel.TournamentStatus(req.Status))
		if err != nil {
			writeError(w, err)
			return
		}
		if t == nil {
			writeError(w, notFound("tournament", id))
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.Processor.Stats(r.Context(), chi.URLParam(r, "tournamentID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func (s *Server) ListTeamsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "tournamentID")
		t, err := s.Stores.Tournaments.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if t == nil {
			writeError(w, notFound("tournament", id))
			return
		}
		teams, err := s.Stores.Teams.GetByTournament(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if teams == nil {
			teams = []padel.Team{}
		}
		writeJSON(w, http.StatusOK, teams)
	}
}

func (s *Server) RegisterTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in padel.CreateTeamInput
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, err)
			return
		}
		in.TournamentID = chi.URLParam(r, "tournamentID")
		team, err := s.Processor.RegisterTeam(r.Context(), in, isDryRunFromContext(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, team)
	}
}

// ImportTeamsHandler registers teams found in Playtomic matches. The body is
// optional; the configured tenant is used when it names none.
func (s *Server) ImportTeamsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params processor.ImportParams
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		if len(body) > 0 {
			if err := json.Unmarshal(body, &params); err != nil {
				writeError(w, fmt.Errorf("%w: invalid JSON body: %v", padel.ErrValidation, err))
				return
			}
		}
		if params.TenantID == "" {
			params.TenantID = s.Cfg.TenantID
		}
		result, err := s.Processor.ImportTeams(r.Context(), chi.URLParam(r, "tournamentID"), params, isDryRunFromContext(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func (s *Server) GetTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "teamID")
		team, err := s.Stores.Teams.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if team == nil {
			writeError(w, notFound("team", id))
			return
		}
		writeJSON(w, http.StatusOK, team)
	}
}

func (s *Server) UpdateTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "teamID")
		var patch padel.TeamUpdate
		if err := decodeJSON(r, &patch); err != nil {
			writeError(w, err)
			return
		}
		team, err := s.Stores.Teams.Update(r.Context(), id, patch)
		if err != nil {
			writeError(w, err)
			return
		}
		if team == nil {
			writeError(w, notFound("team", id))
			return
		}
		writeJSON(w, http.StatusOK, team)
	}
}

func (s *Server) DeleteTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "teamID")
		deleted, err := s.Stores.Teams.Delete(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if !deleted {
			writeError(w, notFound("team", id))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) GetStructureHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		structure, err := s.Processor.Structure(r.Context(), chi.URLParam(r, "tournamentID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, structure)
	}
}

func (s *Server) GenerateStructureHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cfg padel.TournamentConfig
		if err := decodeJSON(r, &cfg); err != nil {
			writeError(w, err)
			return
		}
		result, err := s.Processor.GenerateStructure(r.Context(), chi.URLParam(r, "tournamentID"), cfg, isDryRunFromContext(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, result)
	}
}

// PreviewStructureHandler evaluates the suggested config for ?groups=N (default 2).
func (s *Server) PreviewStructureHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups := 2
		if v := r.URL.Query().Get("groups"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				writeError(w, fmt.Errorf("%w: groups must be a positive integer", padel.ErrValidation))
				return
			}
			groups = n
		}
		preview, err := s.Processor.Preview(r.Context(), chi.URLParam(r, "tournamentID"), groups)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, preview)
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "tournamentID")
		t, err := s.Stores.Tournaments.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if t == nil {
			writeError(w, notFound("tournament", id))
			return
		}
		matches, err := s.Stores.Matches.GetByTournament(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if matches == nil {
			matches = []padel.Match{}
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

// PubSubPushHandler receives events from a Pub/Sub push subscription.
// Events about deleted entities are acknowledged so they are not redelivered.
func (s *Server) PubSubPushHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.pubsub == nil {
			http.Error(w, "Pub/Sub is not configured", http.StatusServiceUnavailable)
			return
		}
		logger := log.FromContext(r.Context())
		var push pubsub.PushRequest
		if err := decodeJSON(r, &push); err != nil {
			logger.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		logger.Debug("Received push message", "subscription", push.Subscription, "messageID", push.Message.ID)

		var event pubsub.Event
		if err := s.pubsub.ProcessMessage(push.Message.Data, &event); err != nil {
			http.Error(w, "Invalid message data", http.StatusBadRequest)
			return
		}
		if isDryRunFromContext(r) {
			event.DryRun = true
		}

		err := s.Processor.HandleEvent(r.Context(), event)
		switch {
		case errors.Is(err, padel.ErrNotFound):
			logger.Warn("Dropping event for missing entity", "type", event.Type, "tournamentID", event.TournamentID, "error", err)
		case err != nil:
			logger.Error("Failed to handle event", "type", event.Type, "error", err)
			http.Error(w, "Failed to handle event", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
