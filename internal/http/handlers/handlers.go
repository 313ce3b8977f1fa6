package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	appfeed "github.com/preston-bernstein/sports-feed-service/internal/app/feed"
	"github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
	"github.com/preston-bernstein/sports-feed-service/internal/logging"
)

// Handler wires HTTP routes to the feed service.
type Handler struct {
	svc     *appfeed.Service
	logger  *slog.Logger
	readyFn func() bool
}

// NewHandler constructs a Handler. A nil readyFn reports ready whenever the service has sports.
func NewHandler(svc *appfeed.Service, logger *slog.Logger, readyFn func() bool) *Handler {
	return &Handler{
		svc:     svc,
		logger:  logger,
		readyFn: readyFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ready := len(h.svc.Sports()) > 0
	if h.readyFn != nil {
		ready = ready && h.readyFn()
	}
	if !ready {
		writeError(w, r, http.StatusServiceUnavailable, "not ready", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Sports lists the sport keys served under /api/{sport}.
func (h *Handler) Sports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sports": h.svc.Sports()}, h.logger)
}

// Games returns today's games for the sport in the path.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	sport, ok := h.sportParam(w, r)
	if !ok {
		return
	}

	games, err := h.svc.ListGames(r.Context(), sport)
	if errors.Is(err, appfeed.ErrUnknownSport) {
		writeError(w, r, http.StatusNotFound, "unknown sport", h.logger)
		return
	}
	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("served games", slog.String(logging.FieldSport, string(sport)), slog.Int(logging.FieldCount, len(games)))
	}
	writeJSON(w, http.StatusOK, games, h.logger)
}

// Plays returns the recent play feed for ?gameId= in the sport in the path.
func (h *Handler) Plays(w http.ResponseWriter, r *http.Request) {
	sport, ok := h.sportParam(w, r)
	if !ok {
		return
	}
	gameID := strings.TrimSpace(r.URL.Query().Get("gameId"))
	if gameID == "" {
		writeError(w, r, http.StatusBadRequest, "gameId is required", h.logger)
		return
	}

	result, err := h.svc.ListRecentPlays(r.Context(), sport, gameID)
	if errors.Is(err, appfeed.ErrUnknownSport) {
		writeError(w, r, http.StatusNotFound, "unknown sport", h.logger)
		return
	}
	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("served plays",
			slog.String(logging.FieldSport, string(sport)),
			slog.String(logging.FieldGameID, gameID),
			slog.Bool("active", result.Active),
			slog.Int(logging.FieldCount, len(result.Plays)),
		)
	}
	writeJSON(w, http.StatusOK, result, h.logger)
}

// NotFound renders unmatched routes as JSON.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed renders non-GET requests as JSON.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}

func (h *Handler) sportParam(w http.ResponseWriter, r *http.Request) (feed.Sport, bool) {
	sport, ok := feed.ParseSport(chi.URLParam(r, "sport"))
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown sport", h.logger)
		return "", false
	}
	return sport, true
}
