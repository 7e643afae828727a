package store

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/stellarburgers/internal/client/models"
	"github.com/dmitrijs2005/stellarburgers/internal/logging"
	"github.com/stretchr/testify/require"
)

// ---- fake API client ----

// fakeClient implements client.Client. When gate is non-nil every call
// blocks until it receives a value or is closed.
type fakeClient struct {
	mu   sync.Mutex
	gate chan struct{}

	Ingredients    []models.Ingredient
	IngredientsErr error

	Feed    models.FeedData
	FeedErr error

	OrderResp models.NewOrderResponse
	OrderErr  error
	LastOrder []string

	ProfileOrders    []models.Order
	ProfileOrdersErr error

	AuthResp models.AuthResponse
	AuthErr  error

	User    models.User
	UserErr error

	LogoutErr error
	ResetErr  error

	calls []string
}

func (f *fakeClient) wait(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) GetIngredients(ctx context.Context) ([]models.Ingredient, error) {
	f.wait("GetIngredients")
	return f.Ingredients, f.IngredientsErr
}

func (f *fakeClient) GetFeed(ctx context.Context) (models.FeedData, error) {
	f.wait("GetFeed")
	return f.Feed, f.FeedErr
}

func (f *fakeClient) OrderBurger(ctx context.Context, ids []string) (models.NewOrderResponse, error) {
	f.mu.Lock()
	f.LastOrder = ids
	f.mu.Unlock()
	f.wait("OrderBurger")
	return f.OrderResp, f.OrderErr
}

func (f *fakeClient) GetProfileOrders(ctx context.Context) ([]models.Order, error) {
	f.wait("GetProfileOrders")
	return f.ProfileOrders, f.ProfileOrdersErr
}

func (f *fakeClient) Register(ctx context.Context, data models.RegisterData) (models.AuthResponse, error) {
	f.wait("Register")
	return f.AuthResp, f.AuthErr
}

func (f *fakeClient) Login(ctx context.Context, data models.LoginData) (models.AuthResponse, error) {
	f.wait("Login")
	return f.AuthResp, f.AuthErr
}

func (f *fakeClient) GetUser(ctx context.Context) (models.User, error) {
	f.wait("GetUser")
	return f.User, f.UserErr
}

func (f *fakeClient) UpdateUser(ctx context.Context, data models.UserUpdate) (models.User, error) {
	f.wait("UpdateUser")
	return f.User, f.UserErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.wait("Logout")
	return f.LogoutErr
}

func (f *fakeClient) ForgotPassword(ctx context.Context, email string) error {
	f.wait("ForgotPassword")
	return f.ResetErr
}

func (f *fakeClient) ResetPassword(ctx context.Context, data models.ResetPasswordData) error {
	f.wait("ResetPassword")
	return f.ResetErr
}

// ---- fake collaborators ----

type cookieCall struct {
	Op, Name, Value string
}

type fakeCookies struct {
	mu     sync.Mutex
	values map[string]string
	calls  []cookieCall
}

func newFakeCookies() *fakeCookies {
	return &fakeCookies{values: map[string]string{}}
}

func (c *fakeCookies) Set(_ context.Context, name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[name] = value
	c.calls = append(c.calls, cookieCall{"set", name, value})
	return nil
}

func (c *fakeCookies) Get(name string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[name]
	return v, ok
}

func (c *fakeCookies) Delete(_ context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, name)
	c.calls = append(c.calls, cookieCall{"delete", name, ""})
	return nil
}

type memStorage struct {
	mu     sync.Mutex
	values map[string][]byte
	setErr error
}

func newMemStorage() *memStorage {
	return &memStorage{values: map[string][]byte{}}
}

func (m *memStorage) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *memStorage) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *memStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// ---- helpers ----

var errBoom = errors.New("boom")

type harness struct {
	store   *Store
	api     *fakeClient
	cookies *fakeCookies
	storage *memStorage
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{api: &fakeClient{}, cookies: newFakeCookies(), storage: newMemStorage()}
	h.store = New(h.api, h.cookies, h.storage, logging.NewTextLogger(io.Discard, "debug"))
	t.Cleanup(h.store.Wait)
	return h
}

// waitCalls blocks until the fake has seen n calls; gates are picked up when
// a call starts, so a test re-gating between calls needs this.
func (h *harness) waitCalls(t *testing.T, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return len(h.api.Calls()) >= n }, 2*time.Second, 5*time.Millisecond)
}

// gated makes every API call block until release is called.
func (h *harness) gated() (release func()) {
	gate := make(chan struct{})
	h.api.mu.Lock()
	h.api.gate = gate
	h.api.mu.Unlock()
	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

var (
	bun    = models.Ingredient{ID: "bun-1", Name: "Crater bun", Type: models.IngredientTypeBun, Price: 20}
	bun2   = models.Ingredient{ID: "bun-2", Name: "Fluorescent bun", Type: models.IngredientTypeBun, Price: 30}
	sauce  = models.Ingredient{ID: "sauce-1", Name: "Spicy-X", Type: models.IngredientTypeSauce, Price: 5}
	meat   = models.Ingredient{ID: "main-1", Name: "Meteorite steak", Type: models.IngredientTypeMain, Price: 100}
	cheese = models.Ingredient{ID: "main-2", Name: "Space cheese", Type: models.IngredientTypeMain, Price: 40}
)
