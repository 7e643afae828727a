package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/stellarburgers/internal/client/models"
	"github.com/tidwall/gjson"
)

// HTTPClient talks to the burger REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. https://norma.nomoreparties.space/api).
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

func (c *HTTPClient) GetIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var resp struct {
		Data []models.Ingredient `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/ingredients", nil, false, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *HTTPClient) GetFeed(ctx context.Context) (models.FeedData, error) {
	var resp models.FeedData
	if err := c.do(ctx, http.MethodGet, "/orders/all", nil, false, &resp); err != nil {
		return models.FeedData{}, err
	}
	return resp, nil
}

func (c *HTTPClient) OrderBurger(ctx context.Context, ingredientIDs []string) (models.NewOrderResponse, error) {
	body := map[string][]string{"ingredients": ingredientIDs}
	var resp models.NewOrderResponse
	if err := c.do(ctx, http.MethodPost, "/orders", body, true, &resp); err != nil {
		return models.NewOrderResponse{}, err
	}
	return resp, nil
}

func (c *HTTPClient) GetProfileOrders(ctx context.Context) ([]models.Order, error) {
	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/orders", nil, true, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (c *HTTPClient) Register(ctx context.Context, data models.RegisterData) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", data, false, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}

func (c *HTTPClient) Login(ctx context.Context, data models.LoginData) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", data, false, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}

func (c *HTTPClient) GetUser(ctx context.Context) (models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/user", nil, true, &resp); err != nil {
		return models.User{}, err
	}
	return resp.User, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, data models.UserUpdate) (models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPatch, "/auth/user", data, true, &resp); err != nil {
		return models.User{}, err
	}
	return resp.User, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	token, err := c.tokens.RefreshToken(ctx)
	if err != nil {
		return fmt.Errorf("refresh token: %w", err)
	}
	return c.do(ctx, http.MethodPost, "/auth/logout", map[string]string{"token": token}, false, nil)
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/password-reset", map[string]string{"email": email}, false, nil)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, data models.ResetPasswordData) error {
	return c.do(ctx, http.MethodPost, "/password-reset/reset", data, false, nil)
}

// do performs one JSON round trip. Non-2xx responses and bodies with
// "success": false are reported as *APIError carrying the server message.
func (c *HTTPClient) do(ctx context.Context, method, path string, in any, auth bool, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json;charset=utf-8")

	if auth {
		token, err := c.tokens.AccessToken(ctx)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		// the server issues tokens already prefixed with "Bearer "
		req.Header.Set("Authorization", token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	success := gjson.GetBytes(data, "success")
	if resp.StatusCode/100 != 2 || (success.Exists() && !success.Bool()) {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    gjson.GetBytes(data, "message").String(),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
