package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"creatorflow/domain/model"

	"github.com/gin-gonic/gin"
)

const subscriberBuffer = 8

// Hub streams activity events to every connected dashboard over SSE.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan model.ActivityEvent]struct{}
}

func NewActivityHub() *Hub {
	return &Hub{subs: make(map[chan model.ActivityEvent]struct{})}
}

// Serve holds the request open and writes one SSE frame per event.
func (h *Hub) Serve(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // disable nginx buffering

	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	_, _ = c.Writer.Write([]byte(":ok\n\n"))
	c.Writer.Flush()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case evt, ok := <-ch:
			if !ok {
				return
			}
			data, _ := json.Marshal(evt)
			_, _ = c.Writer.Write([]byte("event: " + evt.Type + "\n"))
			_, _ = c.Writer.Write([]byte("data: "))
			_, _ = c.Writer.Write(data)
			_, _ = c.Writer.Write([]byte("\n\n"))
			c.Writer.Flush()
		}
	}
}

func (h *Hub) Subscribe() chan model.ActivityEvent {
	ch := make(chan model.ActivityEvent, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan model.ActivityEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
}

// Close ends every open stream. Events already queued are still written.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		delete(h.subs, ch)
		close(ch)
	}
}

// Subscribers is the number of open streams.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Publish hands the event to every subscriber. Slow subscribers miss events
// instead of blocking the caller.
func (h *Hub) Publish(_ context.Context, event model.ActivityEvent) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select { // non-blocking
		case ch <- event:
		default:
		}
	}
	return nil
}
