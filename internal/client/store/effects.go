package store

import (
	"context"
	"fmt"
)

// CookieStore is the cookie-backed credential collaborator.
type CookieStore interface {
	Set(ctx context.Context, name, value string) error
	Get(name string) (string, bool)
	Delete(ctx context.Context, name string) error
}

// KeyValueStore is the persistent key/value collaborator.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

const (
	accessTokenName  = "accessToken"
	refreshTokenName = "refreshToken"
)

// Effect is a side effect requested by a reducer. Reducers only describe
// effects; the Store runs them after the new state is committed.
type Effect interface {
	Apply(ctx context.Context, cookies CookieStore, storage KeyValueStore) error
	fmt.Stringer
}

type SetCookie struct{ Name, Value string }

func (e SetCookie) Apply(ctx context.Context, cookies CookieStore, _ KeyValueStore) error {
	return cookies.Set(ctx, e.Name, e.Value)
}

func (e SetCookie) String() string { return "set cookie " + e.Name }

type DeleteCookie struct{ Name string }

func (e DeleteCookie) Apply(ctx context.Context, cookies CookieStore, _ KeyValueStore) error {
	return cookies.Delete(ctx, e.Name)
}

func (e DeleteCookie) String() string { return "delete cookie " + e.Name }

type SetStorage struct{ Key, Value string }

func (e SetStorage) Apply(ctx context.Context, _ CookieStore, storage KeyValueStore) error {
	return storage.Set(ctx, e.Key, []byte(e.Value))
}

func (e SetStorage) String() string { return "set storage " + e.Key }

type RemoveStorage struct{ Key string }

func (e RemoveStorage) Apply(ctx context.Context, _ CookieStore, storage KeyValueStore) error {
	return storage.Delete(ctx, e.Key)
}

func (e RemoveStorage) String() string { return "remove storage " + e.Key }
