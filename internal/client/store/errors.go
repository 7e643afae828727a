package store

import "errors"

var (
	ErrInvalidSlot   = errors.New("invalid constructor slot")
	ErrInvalidItem   = errors.New("invalid constructor item")
	ErrNoBun         = errors.New("no bun selected")
	ErrNoFillings    = errors.New("no fillings selected")
	ErrOrderInFlight = errors.New("order submission already in flight")

	// ErrSuperseded reports a completion that was discarded because a newer
	// operation of the same kind had been started.
	ErrSuperseded = errors.New("superseded by a newer operation")
)
