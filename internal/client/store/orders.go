package store

import "github.com/dmitrijs2005/stellarburgers/internal/client/models"

// OrdersState is the feed and profile history slice. Submission state is
// owned by ConstructorState; LastOrderNumber is only a lookup key into it.
type OrdersState struct {
	Orders     []models.Order
	Total      int
	TotalToday int

	OrdersProfile []models.Order

	LastOrderNumber int
}

func reduceOrders(s OrdersState, action Action) OrdersState {
	switch a := action.(type) {
	case FeedReceived:
		return s.withFeed(a.Data)

	case ResetOrderState, DismissOrderResult, ResetConstructor:
		s.LastOrderNumber = 0
		return s

	case AsyncAction:
		if a.Phase == Rejected && a.Kind == KindSubmitOrder {
			s.LastOrderNumber = 0
		}
		if a.Phase != Fulfilled {
			return s
		}
		switch a.Kind {
		case KindFetchFeed:
			return s.withFeed(a.Payload.(models.FeedData))
		case KindFetchProfileOrders:
			s.OrdersProfile = a.Payload.([]models.Order)
		case KindSubmitOrder:
			s.LastOrderNumber = a.Payload.(models.NewOrderResponse).Order.Number
		}
	}
	return s
}

func (s OrdersState) withFeed(d models.FeedData) OrdersState {
	s.Orders = d.Orders
	s.Total = d.Total
	s.TotalToday = d.TotalToday
	return s
}
