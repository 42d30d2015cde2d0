package facades

import (
	"context"

	"github.com/sbilibin2017/gw-synth-exchange/internal/logger"
	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
	"github.com/shopspring/decimal"
)

// ErrUnknownAsset is returned for symbols outside the supported registry.
// It is the shared models sentinel, so handler error mapping recognizes it
// no matter which layer rejected the symbol.
var ErrUnknownAsset = models.ErrUnknownAsset

// RateFeedReader reads the published oracle feed.
type RateFeedReader interface {
	GetRate(ctx context.Context, asset string) (price decimal.Decimal, stale bool, err error)
}

// RateOracleFacade exposes the rate oracle boundary to the engine. Staleness
// is an explicit return value on every query, never a side channel: a missing
// or expired feed entry yields stale == true with no error.
type RateOracleFacade struct {
	feed RateFeedReader
}

// NewRateOracleFacade creates a new facade over the published rate feed.
func NewRateOracleFacade(feed RateFeedReader) *RateOracleFacade {
	return &RateOracleFacade{feed: feed}
}

// Rate returns the oracle price for an asset together with its staleness flag.
func (f *RateOracleFacade) Rate(ctx context.Context, asset string) (price decimal.Decimal, stale bool, err error) {
	if !models.IsSupportedAsset(asset) {
		logger.Log.Errorw("rate requested for unknown asset", "asset", asset)
		return decimal.Zero, false, ErrUnknownAsset
	}

	price, stale, err = f.feed.GetRate(ctx, asset)
	if err != nil {
		logger.Log.Errorw("failed to fetch oracle rate", "asset", asset, "error", err)
		return decimal.Zero, false, err
	}
	if !stale && price.Sign() <= 0 {
		// A published non-positive price is unusable; treat it as stale.
		logger.Log.Warnw("non-positive oracle rate treated as stale", "asset", asset, "price", price)
		return decimal.Zero, true, nil
	}

	return price, stale, nil
}
