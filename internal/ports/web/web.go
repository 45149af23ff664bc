package web

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Store interface {
	Ping() error
	ListChannelIDs(ctx context.Context) ([]string, error)
	ListSubscribers(ctx context.Context, channelID string) ([]string, error)
	CountSubscriptions(ctx context.Context) (int64, error)
}

// Server exposes operational endpoints: liveness, registry status and
// prometheus metrics.
type Server struct {
	store  Store
	logger *zap.Logger
	router chi.Router
}

func NewServer(store Store, logger *zap.Logger) *Server {
	s := &Server{
		store:  store,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Get("/status", s.handleStatus)
	r.Handle("/metrics", promhttp.Handler())
	s.router = r

	return s
}

func (s *Server) Listen(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(); err != nil {
		s.logger.Error("store ping failed", zap.Error(err))
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Write([]byte("ok"))
}

type channelStatus struct {
	ChannelID   string `json:"channel_id"`
	Subscribers int    `json:"subscribers"`
}

type statusResponse struct {
	Channels      []channelStatus `json:"channels"`
	Subscriptions int64           `json:"subscriptions"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	channelIDs, err := s.store.ListChannelIDs(ctx)
	if err != nil {
		s.logger.Error("failed to list channels", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := statusResponse{Channels: []channelStatus{}}
	for _, channelID := range channelIDs {
		subscribers, err := s.store.ListSubscribers(ctx, channelID)
		if err != nil {
			s.logger.Error("failed to list subscribers", zap.Error(err), zap.String("channel_id", channelID))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp.Channels = append(resp.Channels, channelStatus{
			ChannelID:   channelID,
			Subscribers: len(subscribers),
		})
	}

	resp.Subscriptions, err = s.store.CountSubscriptions(ctx)
	if err != nil {
		s.logger.Error("failed to count subscriptions", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("failed to encode status response", zap.Error(err))
	}
}
