package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-synth-exchange/internal/logger"
	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
)

// WaitingPeriodService computes the cooldown for (account, asset) pairs. The
// cooldown tracks the latest entry only: every exchange into a pair resets the
// clock to its own timestamp.
type WaitingPeriodService struct {
	entries EntryReader
	config  EngineConfigReader
	now     func() time.Time
}

// NewWaitingPeriodService creates a new service instance. A nil clock falls
// back to time.Now.
func NewWaitingPeriodService(entries EntryReader, config EngineConfigReader, now func() time.Time) *WaitingPeriodService {
	if now == nil {
		now = time.Now
	}
	return &WaitingPeriodService{entries: entries, config: config, now: now}
}

// SecondsRemaining returns the remaining cooldown in seconds for the pair, or
// 0 when the pair has no entries or the period has elapsed. No side effects.
func (svc *WaitingPeriodService) SecondsRemaining(ctx context.Context, accountID uuid.UUID, asset string) (int64, error) {
	if !models.IsSupportedAsset(asset) {
		return 0, ErrUnknownAsset
	}

	latest, err := svc.entries.LatestTimestamp(ctx, accountID, asset)
	if err != nil {
		logger.Log.Errorw("failed to read latest entry timestamp", "accountID", accountID, "asset", asset, "error", err)
		return 0, err
	}
	if latest.IsZero() {
		return 0, nil
	}

	cfg, err := svc.config.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read engine config", "error", err)
		return 0, err
	}

	elapsed := int64(svc.now().Sub(latest) / time.Second)
	remaining := cfg.WaitingPeriodSeconds - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// CanExchangeFrom reports whether funds received into the asset may be
// exchanged out of it again. The gate applies to the source asset of an
// exchange, never to the destination being credited.
func (svc *WaitingPeriodService) CanExchangeFrom(ctx context.Context, accountID uuid.UUID, asset string) (bool, error) {
	remaining, err := svc.SecondsRemaining(ctx, accountID, asset)
	if err != nil {
		return false, err
	}
	return remaining == 0, nil
}
