package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/stellarburgers/internal/client/repositories/metadata"
)

const (
	AccessTokenName  = "accessToken"
	RefreshTokenName = "refreshToken"
)

// Credentials reads the access token from the cookie store and the refresh
// token from the persistent store. It satisfies client.TokenSource.
type Credentials struct {
	Cookies *CookieStore
	Store   metadata.Repository
}

func NewCredentials(cookies *CookieStore, store metadata.Repository) *Credentials {
	return &Credentials{Cookies: cookies, Store: store}
}

func (c *Credentials) AccessToken(ctx context.Context) (string, error) {
	token, ok := c.Cookies.Get(AccessTokenName)
	if !ok || token == "" {
		return "", fmt.Errorf("%s: %w", AccessTokenName, ErrNoToken)
	}
	return token, nil
}

func (c *Credentials) RefreshToken(ctx context.Context) (string, error) {
	v, err := c.Store.Get(ctx, RefreshTokenName)
	if err != nil {
		return "", err
	}
	if len(v) == 0 {
		return "", fmt.Errorf("%s: %w", RefreshTokenName, ErrNoToken)
	}
	return string(v), nil
}
