package models

import "time"

// Order is a submitted order as seen by the server.
type Order struct {
	ID          string    `json:"_id"`
	Status      string    `json:"status"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Number      int       `json:"number"`
	Ingredients []string  `json:"ingredients"`
}

// FeedData is a wholesale snapshot of the global order feed.
type FeedData struct {
	Orders     []Order `json:"orders"`
	Total      int     `json:"total"`
	TotalToday int     `json:"totalToday"`
}

// NewOrderResponse is returned by the order submission endpoint.
type NewOrderResponse struct {
	Name  string `json:"name"`
	Order Order  `json:"order"`
}
