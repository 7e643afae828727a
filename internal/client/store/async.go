package store

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/stellarburgers/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// Future is the result of an asynchronous operation. It resolves after the
// settled transition has been dispatched, or with ErrSuperseded when that
// transition was discarded as stale.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

func (f *Future[T]) resolve(v T, err error) {
	f.val, f.err = v, err
	close(f.done)
}

// Done is closed once the operation has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the operation settles or ctx is done. A caller that stops
// waiting does not cancel the operation.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func runAsync[T any](ctx context.Context, s *Store, k Kind, call func(context.Context) (T, error)) *Future[T] {
	token := s.begin(ctx, k)
	f := newFuture[T]()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		v, err := call(ctx)
		settled := AsyncAction{Kind: k, Phase: Fulfilled, Token: token, Payload: v}
		if err != nil {
			settled = AsyncAction{Kind: k, Phase: Rejected, Token: token, Err: err}
			s.log.Warn(ctx, "operation failed", "kind", string(k), "error", err)
		}
		if derr := s.Dispatch(context.WithoutCancel(ctx), settled); errors.Is(derr, ErrSuperseded) {
			var zero T
			f.resolve(zero, ErrSuperseded)
			return
		}
		f.resolve(v, err)
	}()
	return f
}

// FetchIngredients loads the ingredient catalog.
func (s *Store) FetchIngredients(ctx context.Context) *Future[[]models.Ingredient] {
	return runAsync(ctx, s, KindFetchIngredients, s.api.GetIngredients)
}

// FetchFeed loads a snapshot of the global order feed.
func (s *Store) FetchFeed(ctx context.Context) *Future[models.FeedData] {
	return runAsync(ctx, s, KindFetchFeed, s.api.GetFeed)
}

// SubmitOrder sends the flat list of ingredient ids (bun, fillings, bun).
// Preconditions are the caller's business; see SubmitConstruction.
func (s *Store) SubmitOrder(ctx context.Context, ingredientIDs []string) *Future[models.NewOrderResponse] {
	return runAsync(ctx, s, KindSubmitOrder, func(ctx context.Context) (models.NewOrderResponse, error) {
		return s.api.OrderBurger(ctx, ingredientIDs)
	})
}

// SubmitConstruction checks the submission preconditions against the
// current state and submits the construction.
func (s *Store) SubmitConstruction(ctx context.Context) (*Future[models.NewOrderResponse], error) {
	state := s.State()
	if state.Constructor.OrderRequest {
		return nil, ErrOrderInFlight
	}
	ids, err := OrderIngredientIDs(state)
	if err != nil {
		return nil, err
	}
	return s.SubmitOrder(ctx, ids), nil
}

// FetchProfileOrders loads the signed-in user's order history.
func (s *Store) FetchProfileOrders(ctx context.Context) *Future[[]models.Order] {
	return runAsync(ctx, s, KindFetchProfileOrders, s.api.GetProfileOrders)
}

// Register creates an account and stores the issued credentials.
func (s *Store) Register(ctx context.Context, data models.RegisterData) *Future[models.AuthResponse] {
	return runAsync(ctx, s, KindRegister, func(ctx context.Context) (models.AuthResponse, error) {
		return s.api.Register(ctx, data)
	})
}

// Login signs in and stores the issued credentials.
func (s *Store) Login(ctx context.Context, data models.LoginData) *Future[models.AuthResponse] {
	return runAsync(ctx, s, KindLogin, func(ctx context.Context) (models.AuthResponse, error) {
		return s.api.Login(ctx, data)
	})
}

// FetchUser asks the API who the current session belongs to.
func (s *Store) FetchUser(ctx context.Context) *Future[models.User] {
	return runAsync(ctx, s, KindFetchUser, s.api.GetUser)
}

// UpdateUser sends a partial profile update.
func (s *Store) UpdateUser(ctx context.Context, data models.UserUpdate) *Future[models.User] {
	return runAsync(ctx, s, KindUpdateUser, func(ctx context.Context) (models.User, error) {
		return s.api.UpdateUser(ctx, data)
	})
}

// Logout ends the session and clears both credentials on success.
func (s *Store) Logout(ctx context.Context) *Future[struct{}] {
	return runAsync(ctx, s, KindLogout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.Logout(ctx)
	})
}

// RequestPasswordReset asks the server to email a reset token.
func (s *Store) RequestPasswordReset(ctx context.Context, email string) *Future[struct{}] {
	return runAsync(ctx, s, KindForgotPassword, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.ForgotPassword(ctx, email)
	})
}

// ResetPassword sets a new password using the emailed token.
func (s *Store) ResetPassword(ctx context.Context, data models.ResetPasswordData) *Future[struct{}] {
	return runAsync(ctx, s, KindResetPassword, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.ResetPassword(ctx, data)
	})
}

// CheckAuth checks the session once per app load. With an access token in
// the cookie store it starts FetchUser, waits until no FetchUser is in flight
// any more and only then latches isAuthChecked; without a token it latches
// immediately. The Future carries the user fetch error, ErrSuperseded when a
// newer FetchUser replaced it.
func (s *Store) CheckAuth(ctx context.Context) *Future[struct{}] {
	f := newFuture[struct{}]()

	if token, ok := s.cookies.Get(accessTokenName); !ok || token == "" {
		_ = s.Dispatch(ctx, AuthChecked{})
		f.resolve(struct{}{}, nil)
		return f
	}

	fetch := s.FetchUser(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		bg := context.WithoutCancel(ctx)
		<-fetch.Done()
		_ = s.idle(bg, KindFetchUser)
		_ = s.Dispatch(bg, AuthChecked{})
		f.resolve(struct{}{}, fetch.err)
	}()
	return f
}

// Bootstrap starts the catalog fetch, the feed fetch and the session check
// together and waits for all of them. Read failures are absorbed by the
// store, so only ctx expiry is reported.
func (s *Store) Bootstrap(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, _ = s.FetchIngredients(ctx).Wait(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		_, _ = s.FetchFeed(ctx).Wait(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		_, _ = s.CheckAuth(ctx).Wait(gctx)
		return gctx.Err()
	})
	return g.Wait()
}

// Sync intents.

func (s *Store) AddItem(ctx context.Context, ing models.Ingredient) error {
	return s.Dispatch(ctx, NewAddItem(ing))
}

func (s *Store) MoveUp(ctx context.Context, item models.ConstructorIngredient) error {
	return s.Dispatch(ctx, MoveUp{Item: item})
}

func (s *Store) MoveDown(ctx context.Context, item models.ConstructorIngredient) error {
	return s.Dispatch(ctx, MoveDown{Item: item})
}

func (s *Store) RemoveItem(ctx context.Context, item models.ConstructorIngredient) error {
	return s.Dispatch(ctx, RemoveItem{Item: item})
}

func (s *Store) Reset(ctx context.Context) error {
	return s.Dispatch(ctx, ResetConstructor{})
}

func (s *Store) DismissOrderResult(ctx context.Context) error {
	return s.Dispatch(ctx, DismissOrderResult{})
}

func (s *Store) ResetOrderState(ctx context.Context) error {
	return s.Dispatch(ctx, ResetOrderState{})
}
