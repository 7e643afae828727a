package feed

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/stellarburgers/internal/client/store"
	"github.com/dmitrijs2005/stellarburgers/internal/logging"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chanDispatcher struct {
	got chan store.Action
}

func (d *chanDispatcher) Dispatch(ctx context.Context, a store.Action) error {
	d.got <- a
	return nil
}

func feedServer(t *testing.T, frames ...string) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for _, f := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				return
			}
		}
		// keep the connection open until the client goes away
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestWatcher_DispatchesFeedSnapshots(t *testing.T) {
	url := feedServer(t,
		`{"success":true,"orders":[{"number":1,"status":"done"}],"total":10,"totalToday":1}`,
		`not json`,
		`{"success":false,"message":"Invalid or missing token"}`,
		`{"success":true,"orders":[{"number":2}],"total":11,"totalToday":2}`,
	)
	d := &chanDispatcher{got: make(chan store.Action, 4)}
	w := NewWatcher(url, d, logging.NewTextLogger(io.Discard, "error"), 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	var got []store.FeedReceived
	for len(got) < 2 {
		select {
		case a := <-d.got:
			fr, ok := a.(store.FeedReceived)
			require.True(t, ok)
			got = append(got, fr)
		case <-ctx.Done():
			t.Fatal("timed out waiting for feed frames")
		}
	}
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	assert.Equal(t, 10, got[0].Data.Total)
	assert.Equal(t, "done", got[0].Data.Orders[0].Status)
	assert.Equal(t, 11, got[1].Data.Total)
	assert.Equal(t, 2, got[1].Data.TotalToday)
}

func TestWatcher_StopsWhileServerIsDown(t *testing.T) {
	d := &chanDispatcher{got: make(chan store.Action, 1)}
	w := NewWatcher("ws://127.0.0.1:1/orders/all", d, logging.NewTextLogger(io.Discard, "error"), 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := w.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, d.got)
}

func TestWatcher_TagsRecordsWithComponentOnce(t *testing.T) {
	var buf bytes.Buffer
	d := &chanDispatcher{got: make(chan store.Action, 1)}
	w := NewWatcher("ws://127.0.0.1:1/orders/all", d, logging.NewTextLogger(&buf, "warn"), 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = w.Run(ctx)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines[0])
	for _, line := range lines {
		assert.Equal(t, 1, strings.Count(line, "component=feed"), line)
	}
}
