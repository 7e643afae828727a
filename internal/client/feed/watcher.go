// Package feed keeps the order feed live by subscribing to the server's
// websocket stream and dispatching every snapshot into the store.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/stellarburgers/internal/client/models"
	"github.com/dmitrijs2005/stellarburgers/internal/client/store"
	"github.com/dmitrijs2005/stellarburgers/internal/logging"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// Dispatcher accepts store actions.
type Dispatcher interface {
	Dispatch(ctx context.Context, a store.Action) error
}

// message is one frame of the feed stream.
type message struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	models.FeedData
}

// Watcher streams feed snapshots. Each frame replaces the feed wholesale.
type Watcher struct {
	url      string
	dispatch Dispatcher
	log      logging.Logger
	limiter  *rate.Limiter
	dialer   websocket.Dialer
}

// NewWatcher builds a watcher for url that reconnects at most once per
// reconnectEvery.
func NewWatcher(url string, d Dispatcher, log logging.Logger, reconnectEvery time.Duration) *Watcher {
	return &Watcher{
		url:      url,
		dispatch: d,
		log:      log.With("component", "feed"),
		limiter:  rate.NewLimiter(rate.Every(reconnectEvery), 1),
		dialer:   websocket.Dialer{HandshakeTimeout: 10 * time.Second},
	}
}

// Run keeps a subscription open until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		if err := w.limiter.Wait(ctx); err != nil {
			// the limiter gives up early when the deadline cannot be met
			<-ctx.Done()
			return ctx.Err()
		}
		err := w.stream(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		w.log.Warn(ctx, "feed stream interrupted, reconnecting", "error", err)
	}
}

// stream reads frames from one connection until it fails or ctx is done.
func (w *Watcher) stream(ctx context.Context) error {
	conn, _, err := w.dialer.DialContext(ctx, w.url, nil)
	if err != nil {
		return fmt.Errorf("websocket dial: %w", err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		_ = conn.Close()
	})
	defer stop()

	w.log.Info(ctx, "feed stream connected", "url", w.url)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if err := w.handle(ctx, data); err != nil {
			w.log.Warn(ctx, "feed frame skipped", "error", err)
		}
	}
}

var errRejected = errors.New("feed frame rejected by server")

func (w *Watcher) handle(ctx context.Context, data []byte) error {
	var m message
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("decode feed frame: %w", err)
	}
	if !m.Success {
		return fmt.Errorf("%w: %s", errRejected, m.Message)
	}
	return w.dispatch.Dispatch(ctx, store.FeedReceived{Data: m.FeedData})
}
