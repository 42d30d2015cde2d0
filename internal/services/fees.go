package services

import (
	"context"

	"github.com/sbilibin2017/gw-synth-exchange/internal/logger"
	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
	"github.com/shopspring/decimal"
)

var bpsDivisor = decimal.NewFromInt(10000)

// QuoteService converts a source amount into destination units at oracle
// rates and subtracts the configured proportional fee.
type QuoteService struct {
	oracle RateOracle
	config EngineConfigReader
}

// NewQuoteService creates a new service instance.
func NewQuoteService(oracle RateOracle, config EngineConfigReader) *QuoteService {
	return &QuoteService{oracle: oracle, config: config}
}

// Quote returns the destination amount after the fee and the fee itself.
// Multiplication happens before division so rounding error stays bounded the
// same way on every path, and afterFee + fee == amount*rate(src)/rate(dst)
// exactly.
func (svc *QuoteService) Quote(ctx context.Context, sourceAsset, destAsset string, amount decimal.Decimal) (afterFee, fee decimal.Decimal, err error) {
	if amount.Sign() <= 0 {
		return decimal.Zero, decimal.Zero, ErrZeroAmount
	}
	if !models.IsSupportedAsset(sourceAsset) || !models.IsSupportedAsset(destAsset) {
		return decimal.Zero, decimal.Zero, ErrUnknownAsset
	}

	srcPrice, srcStale, err := svc.oracle.Rate(ctx, sourceAsset)
	if err != nil {
		logger.Log.Errorw("failed to get oracle rate", "asset", sourceAsset, "error", err)
		return decimal.Zero, decimal.Zero, err
	}
	destPrice, destStale, err := svc.oracle.Rate(ctx, destAsset)
	if err != nil {
		logger.Log.Errorw("failed to get oracle rate", "asset", destAsset, "error", err)
		return decimal.Zero, decimal.Zero, err
	}
	if srcStale || destStale {
		logger.Log.Errorw("stale oracle rate", "source", sourceAsset, "dest", destAsset, "sourceStale", srcStale, "destStale", destStale)
		return decimal.Zero, decimal.Zero, ErrStaleRate
	}

	cfg, err := svc.config.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read engine config", "error", err)
		return decimal.Zero, decimal.Zero, err
	}

	before := amount.Mul(srcPrice).Div(destPrice)
	fee = before.Mul(decimal.NewFromInt(cfg.FeeRateBps)).Div(bpsDivisor)
	afterFee = before.Sub(fee)

	return afterFee, fee, nil
}
