// Package store is the client's state management core.
//
// A Store holds one RootState made of four slices (ingredient catalog,
// burger construction, order feed/profile, user session). Every change goes
// through Dispatch: the pure Reduce function computes the next state, the
// Store commits it, runs the credential effects the reducers asked for and
// then notifies subscribers with the new snapshot.
//
// Network-bound operations (FetchIngredients, Login, SubmitOrder, ...) record
// a Pending transition synchronously and return a Future; the settled
// transition is dispatched from a goroutine once the API call returns. Each
// operation kind carries an in-flight token and a settled transition whose
// token is no longer the latest one of its kind is discarded with
// ErrSuperseded.
package store

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/stellarburgers/internal/client/client"
	"github.com/dmitrijs2005/stellarburgers/internal/logging"
)

// Store is safe for concurrent use. Transitions are applied one at a time.
// Subscribers run inside dispatch and must not dispatch synchronously.
type Store struct {
	dispatchMu sync.Mutex

	mu       sync.RWMutex
	state    RootState
	inflight map[Kind]uint64
	token    uint64
	// settledCh is closed and replaced whenever an operation settles.
	settledCh chan struct{}

	subsMu  sync.Mutex
	subs    map[int]func(RootState)
	nextSub int

	api     client.Client
	cookies CookieStore
	storage KeyValueStore
	log     logging.Logger

	wg sync.WaitGroup
}

// New builds a Store in its initial state.
func New(api client.Client, cookies CookieStore, storage KeyValueStore, log logging.Logger) *Store {
	return &Store{
		inflight:  make(map[Kind]uint64),
		settledCh: make(chan struct{}),
		subs:      make(map[int]func(RootState)),
		api:       api,
		cookies:   cookies,
		storage:   storage,
		log:       log.With("component", "store"),
	}
}

// State returns the current snapshot.
func (s *Store) State() RootState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to be called with every new snapshot. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(RootState)) func() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		delete(s.subs, id)
	}
}

// Dispatch applies a to the state. Invalid construction intents return an
// error and leave the state untouched; a stale completion returns
// ErrSuperseded.
func (s *Store) Dispatch(ctx context.Context, a Action) error {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	aa, async := a.(AsyncAction)
	settling := async && aa.settled()
	if settling && s.inflight[aa.Kind] != aa.Token {
		s.mu.Unlock()
		s.log.Debug(ctx, "stale completion discarded", "action", aa.Type(), "token", aa.Token)
		return ErrSuperseded
	}
	next, effects, err := Reduce(s.state, a)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	if settling {
		delete(s.inflight, aa.Kind)
		close(s.settledCh)
		s.settledCh = make(chan struct{})
	}
	s.mu.Unlock()

	for _, e := range effects {
		if err := e.Apply(ctx, s.cookies, s.storage); err != nil {
			s.log.Error(ctx, "effect failed", "action", a.Type(), "effect", e.String(), "error", err)
		}
	}

	s.notify(next)
	return nil
}

func (s *Store) notify(state RootState) {
	s.subsMu.Lock()
	subs := make([]func(RootState), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

// begin records the Pending transition of a new operation of kind k and
// returns its token.
func (s *Store) begin(ctx context.Context, k Kind) uint64 {
	s.mu.Lock()
	s.token++
	token := s.token
	s.inflight[k] = token
	s.mu.Unlock()

	_ = s.Dispatch(ctx, AsyncAction{Kind: k, Phase: Pending, Token: token})
	return token
}

// idle blocks until no operation of kind k is in flight or ctx is done.
func (s *Store) idle(ctx context.Context, k Kind) error {
	for {
		s.mu.RLock()
		_, busy := s.inflight[k]
		ch := s.settledCh
		s.mu.RUnlock()
		if !busy {
			return nil
		}
		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Wait blocks until every operation started so far has settled.
func (s *Store) Wait() {
	s.wg.Wait()
}
