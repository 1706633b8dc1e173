package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/lox/pokeranalyzer/internal/analyzer"
	"github.com/lox/pokeranalyzer/internal/handfile"
)

// MaxHands is the most hands a single request may rank.
const MaxHands = 10

// Server ranks hands over HTTP and WebSocket
type Server struct {
	addr     string
	analyzer *analyzer.Analyzer
	upgrader websocket.Upgrader
	logger   *log.Logger
}

// NewServer creates a new server
func NewServer(addr string, a *analyzer.Analyzer, logger *log.Logger) *Server {
	return &Server{
		addr:     addr,
		analyzer: a,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.WithPrefix("server"),
	}
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/health", s.handleHealth)
	r.Post("/rank", s.handleRank)
	r.Get("/ws", s.handleWebSocket)
	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	body := http.MaxBytesReader(w, r.Body, readLimit)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.writeJSON(w, status, &RankResponse{Error: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	resp, err := s.rank(r.Context(), &req)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, &RankResponse{Error: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// rank validates and ranks a request.
func (s *Server) rank(ctx context.Context, req *RankRequest) (*RankResponse, error) {
	if len(req.Hands) == 0 {
		return nil, errors.New("no hands to rank")
	}
	if len(req.Hands) > MaxHands {
		return nil, fmt.Errorf("too many hands: %d (max %d)", len(req.Hands), MaxHands)
	}

	sets, err := handfile.Codes(req.Hands)
	if err != nil {
		return nil, err
	}
	round, err := s.analyzer.Rank(ctx, sets)
	if err != nil {
		return nil, err
	}
	return newRankResponse(round), nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}
