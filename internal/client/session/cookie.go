// Package session holds the client's credential stores: a cookie store for
// the short-lived access token and a token source that combines it with the
// persistent key/value store holding the refresh token.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/stellarburgers/internal/client/repositories/metadata"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/net/publicsuffix"
)

var ErrNoToken = errors.New("token not found")

// cookiesKey is the metadata key the cookie mirror is saved under.
const cookiesKey = "cookies"

// savedCookie is the persisted form of one cookie. A zero Expires means the
// cookie lives until deleted.
type savedCookie struct {
	Value   string    `json:"value"`
	Expires time.Time `json:"expires,omitzero"`
}

// CookieStore keeps named values in a cookie jar scoped to the API origin.
// With a backing repository every change is mirrored there, and the jar is
// refilled from it on construction, so cookies outlive the process.
type CookieStore struct {
	mu      sync.Mutex
	jar     http.CookieJar
	url     *url.URL
	now     func() time.Time
	backing metadata.Repository
	saved   map[string]savedCookie
}

// NewCookieStore builds a store whose cookies are scoped to apiURL. backing
// may be nil for a purely in-memory store.
func NewCookieStore(ctx context.Context, apiURL string, backing metadata.Repository) (*CookieStore, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	s := &CookieStore{
		jar:     jar,
		url:     &url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"},
		now:     time.Now,
		backing: backing,
		saved:   make(map[string]savedCookie),
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *CookieStore) load(ctx context.Context) error {
	if s.backing == nil {
		return nil
	}
	data, err := s.backing.Get(ctx, cookiesKey)
	if err != nil || len(data) == 0 {
		return err
	}

	var saved map[string]savedCookie
	if err := json.Unmarshal(data, &saved); err != nil {
		return fmt.Errorf("decode saved cookies: %w", err)
	}

	now := s.now()
	for name, c := range saved {
		if !c.Expires.IsZero() && !c.Expires.After(now) {
			continue
		}
		s.saved[name] = c
		s.jar.SetCookies(s.url, []*http.Cookie{s.cookie(name, c)})
	}
	return nil
}

func (s *CookieStore) cookie(name string, c savedCookie) *http.Cookie {
	return &http.Cookie{Name: name, Value: url.QueryEscape(c.Value), Path: "/", Expires: c.Expires}
}

// save writes the mirror to the backing repository. Callers hold s.mu.
func (s *CookieStore) save(ctx context.Context) error {
	if s.backing == nil {
		return nil
	}
	data, err := json.Marshal(s.saved)
	if err != nil {
		return err
	}
	return s.backing.Set(ctx, cookiesKey, data)
}

// Set stores value under name. When value is a JWT (optionally prefixed with
// "Bearer ") the cookie expires together with the token.
func (s *CookieStore) Set(ctx context.Context, name, value string) error {
	c := savedCookie{Value: value}
	if exp, ok := tokenExpiry(value); ok {
		if !exp.After(s.now()) {
			return fmt.Errorf("cookie %s: token already expired", name)
		}
		c.Expires = exp
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jar.SetCookies(s.url, []*http.Cookie{s.cookie(name, c)})
	s.saved[name] = c
	return s.save(ctx)
}

// Get returns the value stored under name.
func (s *CookieStore) Get(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.jar.Cookies(s.url) {
		if c.Name != name {
			continue
		}
		v, err := url.QueryUnescape(c.Value)
		if err != nil {
			return c.Value, true
		}
		return v, true
	}
	return "", false
}

// Delete removes the cookie stored under name.
func (s *CookieStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jar.SetCookies(s.url, []*http.Cookie{{Name: name, Path: "/", MaxAge: -1}})
	delete(s.saved, name)
	return s.save(ctx)
}

// tokenExpiry reads the exp claim without verifying the signature; the
// client never holds the signing key.
func tokenExpiry(value string) (time.Time, bool) {
	raw := strings.TrimSpace(strings.TrimPrefix(value, "Bearer "))
	if strings.Count(raw, ".") != 2 {
		return time.Time{}, false
	}
	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
