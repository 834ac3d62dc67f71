package server

import (
	"context"
	"net/http"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/aivend/judge/internal/events"
)

// handleEventWebsocket handles GET /api/events/ws. Same feed as the SSE
// stream for clients behind proxies that buffer SSE. One JSON message
// per event; the connection closes when the client goes away or a write
// fails.
func (s *Server) handleEventWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// CORS is enforced by the router middleware.
		InsecureSkipVerify: true,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("Websocket accept failed")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream terminated")

	s.log.Info().Str("remote", r.RemoteAddr).Msg("Client connected to websocket event stream")

	eventChan := make(chan *events.Event, 100)
	unsubscribe := s.bus.SubscribeAll(func(event *events.Event) {
		select {
		case eventChan <- event:
		default:
			s.log.Warn().Str("event_type", string(event.Type)).Msg("Websocket channel full, dropping event")
		}
	})
	defer unsubscribe()

	ctx := r.Context()

	// Drain client frames so pings are answered and closes are noticed.
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusGoingAway, "server shutting down")
			return
		case <-readDone:
			s.log.Info().Str("remote", r.RemoteAddr).Msg("Websocket client disconnected")
			return
		case event := <-eventChan:
			writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := wsjson.Write(writeCtx, conn, event)
			cancel()
			if err != nil {
				s.log.Debug().Err(err).Msg("Websocket write failed, closing stream")
				return
			}
		}
	}
}
