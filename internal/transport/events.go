package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/verdantchain/explorer-backend/internal/live"
)

const eventBuffer = 64

// handleEvents streams ledger events to the client as server-sent events
// until the client disconnects.
func (h *ExplorerHandler) handleEvents(w http.ResponseWriter, r *http.Request) {
	if h.events == nil {
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "event stream not available"})
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "streaming unsupported"})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// The dispatcher delivers on its own goroutine; bridge onto the request
	// goroutine through a buffered channel and drop on overflow, mirroring
	// the dispatcher's own slow-subscriber policy.
	feed := make(chan live.Event, eventBuffer)
	sub := h.events.Subscribe(func(event live.Event) {
		select {
		case feed <- event:
		default:
		}
	})
	defer sub.Cancel()

	for {
		select {
		case <-r.Context().Done():
			return
		case event := <-feed:
			body, err := json.Marshal(event)
			if err != nil {
				h.logger.Warn("event encode failed", zap.Error(err))
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, body)
			flusher.Flush()
		}
	}
}
