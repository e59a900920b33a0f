package model

import "errors"

// Sentinel errors returned by the stores. Callers distinguish them with
// errors.Is to render specific feedback.
var (
	ErrItemNotFound       = errors.New("item not found")
	ErrAuctionNotFound    = errors.New("auction not found")
	ErrInsufficientGold   = errors.New("insufficient gold")
	ErrBidTooLow          = errors.New("bid too low")
	ErrAuctionClosed      = errors.New("auction closed")
	ErrUnknownCategory    = errors.New("unknown item category")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
