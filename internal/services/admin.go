package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-synth-exchange/internal/logger"
	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
	"github.com/shopspring/decimal"
)

// Admin validation errors.
var (
	ErrInvalidWaitingPeriod = errors.New("waiting period must not be negative")
	ErrInvalidFeeRate       = errors.New("fee rate must be between 0 and 10000 bps")
	ErrInvalidRate          = errors.New("rate must be positive")
)

// AdminService mutates the engine configuration and publishes oracle rates.
// It is the only holder of the config writer: exchange, settlement and
// queries run on the open capability and cannot reach it.
type AdminService struct {
	reader EngineConfigReader
	writer EngineConfigWriter
	feed   RateFeedWriter
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(reader EngineConfigReader, writer EngineConfigWriter, feed RateFeedWriter) *AdminService {
	return &AdminService{reader: reader, writer: writer, feed: feed}
}

// GetConfig returns the current engine configuration.
func (svc *AdminService) GetConfig(ctx context.Context) (models.EngineConfigDB, error) {
	cfg, err := svc.reader.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read engine config", "error", err)
		return models.EngineConfigDB{}, err
	}
	return cfg, nil
}

// SetWaitingPeriodSeconds updates the cooldown length.
func (svc *AdminService) SetWaitingPeriodSeconds(ctx context.Context, seconds int64) error {
	if seconds < 0 {
		return ErrInvalidWaitingPeriod
	}
	if err := svc.writer.SetWaitingPeriodSeconds(ctx, seconds); err != nil {
		logger.Log.Errorw("failed to set waiting period", "seconds", seconds, "error", err)
		return err
	}
	logger.Log.Infow("waiting period updated", "seconds", seconds)
	return nil
}

// SetFeeRateBps updates the proportional exchange fee.
func (svc *AdminService) SetFeeRateBps(ctx context.Context, bps int64) error {
	if bps < 0 || bps >= 10000 {
		return ErrInvalidFeeRate
	}
	if err := svc.writer.SetFeeRateBps(ctx, bps); err != nil {
		logger.Log.Errorw("failed to set fee rate", "bps", bps, "error", err)
		return err
	}
	logger.Log.Infow("fee rate updated", "bps", bps)
	return nil
}

// SetEnabled toggles the engine on or off. When disabled, every exchange
// attempt fails without side effects; re-enabling allows exchanges again
// immediately.
func (svc *AdminService) SetEnabled(ctx context.Context, enabled bool) error {
	if err := svc.writer.SetEnabled(ctx, enabled); err != nil {
		logger.Log.Errorw("failed to toggle engine", "enabled", enabled, "error", err)
		return err
	}
	logger.Log.Infow("engine toggled", "enabled", enabled)
	return nil
}

// PublishRate pushes an oracle price into the rate feed.
func (svc *AdminService) PublishRate(ctx context.Context, asset string, price decimal.Decimal) error {
	if !models.IsSupportedAsset(asset) {
		return ErrUnknownAsset
	}
	if price.Sign() <= 0 {
		return ErrInvalidRate
	}
	if err := svc.feed.SetRate(ctx, asset, price); err != nil {
		logger.Log.Errorw("failed to publish rate", "asset", asset, "price", price, "error", err)
		return err
	}
	logger.Log.Infow("rate published", "asset", asset, "price", price)
	return nil
}
