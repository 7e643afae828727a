package store

import (
	"fmt"

	"github.com/dmitrijs2005/stellarburgers/internal/client/models"
	"github.com/google/uuid"
)

// Action is a plain intent descriptor dispatched into the Store.
type Action interface {
	Type() string
}

// AddItem puts an ingredient into the construction. Key is the stable
// arena key of the new filling; use NewAddItem to get a fresh one.
type AddItem struct {
	Ingredient models.Ingredient
	Key        string
}

// NewAddItem builds an AddItem carrying a freshly generated key.
func NewAddItem(ing models.Ingredient) AddItem {
	return AddItem{Ingredient: ing, Key: uuid.NewString()}
}

// MoveUp swaps a filling with its predecessor.
type MoveUp struct{ Item models.ConstructorIngredient }

// MoveDown swaps a filling with its successor.
type MoveDown struct{ Item models.ConstructorIngredient }

// RemoveItem deletes a filling from the construction.
type RemoveItem struct{ Item models.ConstructorIngredient }

// ResetConstructor clears the construction and the submission state.
type ResetConstructor struct{}

// DismissOrderResult clears the submission result, keeping the construction.
type DismissOrderResult struct{}

// ResetOrderState clears the submission state as seen from the feed side.
type ResetOrderState struct{}

// FeedReceived carries a feed snapshot pushed by the live feed.
type FeedReceived struct{ Data models.FeedData }

// AuthChecked latches isAuthChecked.
type AuthChecked struct{}

func (AddItem) Type() string            { return "burgerConstructor/addItem" }
func (MoveUp) Type() string             { return "burgerConstructor/moveItemUp" }
func (MoveDown) Type() string           { return "burgerConstructor/moveItemDown" }
func (RemoveItem) Type() string         { return "burgerConstructor/deleteItem" }
func (ResetConstructor) Type() string   { return "burgerConstructor/reset" }
func (DismissOrderResult) Type() string { return "burgerConstructor/dismissOrder" }
func (ResetOrderState) Type() string    { return "orders/resetOrder" }
func (FeedReceived) Type() string       { return "orders/feedReceived" }
func (AuthChecked) Type() string        { return "user/authChecked" }

// Kind names an asynchronous operation.
type Kind string

const (
	KindFetchIngredients   Kind = "ingredients/fetchIngredients"
	KindFetchFeed          Kind = "orders/fetchAll"
	KindSubmitOrder        Kind = "orders/order-burger"
	KindFetchProfileOrders Kind = "orders/profile-orders"
	KindRegister           Kind = "user/register"
	KindLogin              Kind = "user/login"
	KindFetchUser          Kind = "user/fetchUser"
	KindUpdateUser         Kind = "user/update"
	KindLogout             Kind = "user/logout"
	KindForgotPassword     Kind = "user/forgot-password"
	KindResetPassword      Kind = "user/reset-password"
)

// Phase is a lifecycle stage of an asynchronous operation.
type Phase int

const (
	Pending Phase = iota
	Rejected
	Fulfilled
)

func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Rejected:
		return "rejected"
	case Fulfilled:
		return "fulfilled"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// AsyncAction is one lifecycle transition of an asynchronous operation.
// Token identifies the dispatch the transition belongs to; Payload is set on
// Fulfilled and Err on Rejected.
type AsyncAction struct {
	Kind    Kind
	Phase   Phase
	Token   uint64
	Payload any
	Err     error
}

func (a AsyncAction) Type() string {
	return string(a.Kind) + "/" + a.Phase.String()
}

// settled reports whether the action is a terminal transition.
func (a AsyncAction) settled() bool {
	return a.Phase != Pending
}
