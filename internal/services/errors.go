package services

import (
	"errors"

	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
)

// Engine error taxonomy. Every failure is terminal to the single operation
// that raised it; the engine never retries internally. Callers distinguish by
// kind: wait out ErrWaitingPeriodActive, retry ErrStaleRate after the feed
// refreshes, abandon the rest.
var (
	ErrExchangeDisabled    = errors.New("exchange disabled")
	ErrZeroAmount          = errors.New("amount must be positive")
	ErrSameAsset           = errors.New("source and destination assets are the same")
	ErrStaleRate           = errors.New("stale rate")
	ErrWaitingPeriodActive = errors.New("waiting period active")
	ErrUnknownAsset        = models.ErrUnknownAsset
	ErrInsufficientFunds   = errors.New("insufficient funds")
)
