package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second
	readLimit = 64 * 1024
)

// handleWebSocket upgrades the connection and answers each RankRequest
// message with a RankResponse until the client goes away.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(readLimit)

	s.logger.Info("Client connected", "remote", r.RemoteAddr)
	defer s.logger.Info("Client disconnected", "remote", r.RemoteAddr)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("WebSocket read error", "error", err)
			}
			return
		}

		var resp *RankResponse
		var req RankRequest
		if err := json.Unmarshal(data, &req); err != nil {
			resp = &RankResponse{Error: fmt.Sprintf("invalid request: %v", err)}
		} else if resp, err = s.rank(r.Context(), &req); err != nil {
			resp = &RankResponse{Error: err.Error()}
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Error("Failed to send response", "error", err)
			return
		}
	}
}
