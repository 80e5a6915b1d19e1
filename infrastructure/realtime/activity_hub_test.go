package realtime_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"creatorflow/domain/model"
	"creatorflow/infrastructure/realtime"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscribers(t *testing.T) {
	hub := realtime.NewActivityHub()
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	require.NoError(t, hub.Publish(context.Background(), model.ActivityEvent{Type: model.EventLogin}))

	select {
	case evt := <-ch:
		assert.Equal(t, model.EventLogin, evt.Type)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestHub_PublishDoesNotBlockOnFullSubscriber(t *testing.T) {
	hub := realtime.NewActivityHub()
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			_ = hub.Publish(context.Background(), model.ActivityEvent{Type: model.EventContentUpdated})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked")
	}
}

func TestHub_UnsubscribeTwiceIsSafe(t *testing.T) {
	hub := realtime.NewActivityHub()
	ch := hub.Subscribe()
	assert.Equal(t, 1, hub.Subscribers())

	hub.Unsubscribe(ch)
	assert.NotPanics(t, func() { hub.Unsubscribe(ch) })
	assert.Zero(t, hub.Subscribers())
}

func TestHub_ServeWritesFrames(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := realtime.NewActivityHub()
	router := gin.New()
	router.GET("/events", hub.Serve)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		router.ServeHTTP(w, req)
		close(done)
	}()

	require.Eventually(t, func() bool { return hub.Subscribers() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, hub.Publish(context.Background(), model.ActivityEvent{Type: model.EventPlanConfirmed}))
	hub.Close()
	<-done

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, ":ok\n\n"))
	assert.Contains(t, body, "event: plan.confirmed\n")
	assert.Contains(t, body, `"type":"plan.confirmed"`)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
}
