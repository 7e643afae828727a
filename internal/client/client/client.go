package client

import (
	"context"

	"github.com/dmitrijs2005/stellarburgers/internal/client/models"
)

// Client is the backend API contract the store core depends on.
type Client interface {
	GetIngredients(ctx context.Context) ([]models.Ingredient, error)
	GetFeed(ctx context.Context) (models.FeedData, error)
	OrderBurger(ctx context.Context, ingredientIDs []string) (models.NewOrderResponse, error)
	GetProfileOrders(ctx context.Context) ([]models.Order, error)

	Register(ctx context.Context, data models.RegisterData) (models.AuthResponse, error)
	Login(ctx context.Context, data models.LoginData) (models.AuthResponse, error)
	GetUser(ctx context.Context) (models.User, error)
	UpdateUser(ctx context.Context, data models.UserUpdate) (models.User, error)
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, data models.ResetPasswordData) error
}

// TokenSource supplies the credentials attached to authenticated calls.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
}
