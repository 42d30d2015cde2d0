package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-synth-exchange/internal/logger"
	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// SettlementService reconciles price drift for entries whose waiting period
// has elapsed. Settlement is permissionless and idempotent: a pass with no
// eligible entries returns a zero result and touches nothing, so the
// orchestrator calls it speculatively before every exchange.
type SettlementService struct {
	entryReader EntryReader
	entryWriter EntryWriter
	ledger      IssuanceLedger
	oracle      RateOracle
	config      EngineConfigReader
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewSettlementService creates a new service instance. A nil clock falls back
// to time.Now.
func NewSettlementService(
	entryReader EntryReader,
	entryWriter EntryWriter,
	ledger IssuanceLedger,
	oracle RateOracle,
	config EngineConfigReader,
	kafkaWriter KafkaWriter,
	now func() time.Time,
) *SettlementService {
	if now == nil {
		now = time.Now
	}
	return &SettlementService{
		entryReader: entryReader,
		entryWriter: entryWriter,
		ledger:      ledger,
		oracle:      oracle,
		config:      config,
		kafkaWriter: kafkaWriter,
		now:         now,
	}
}

// Settle walks the pair's entries, consumes every entry whose own waiting
// period has elapsed and applies the netted reclaim or rebate through the
// issuance ledger. Still-cooling entries stay untouched for the next pass. A
// consumed entry never contributes to a later result.
func (svc *SettlementService) Settle(ctx context.Context, accountID uuid.UUID, asset string) (models.ReconciliationResult, error) {
	var result models.ReconciliationResult
	result.ReclaimAmount = decimal.Zero
	result.RebateAmount = decimal.Zero

	if !models.IsSupportedAsset(asset) {
		return result, ErrUnknownAsset
	}

	cfg, err := svc.config.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read engine config", "error", err)
		return result, err
	}

	entries, err := svc.entryReader.ListByAccountAsset(ctx, accountID, asset, true)
	if err != nil {
		logger.Log.Errorw("failed to list entries", "accountID", accountID, "asset", asset, "error", err)
		return result, err
	}

	cutoff := svc.now().Add(-time.Duration(cfg.WaitingPeriodSeconds) * time.Second)
	var eligible []models.ExchangeEntryDB
	for _, entry := range entries {
		if !entry.CreatedAt.After(cutoff) {
			eligible = append(eligible, entry)
		}
	}
	if len(eligible) == 0 {
		return result, nil
	}

	priceNow, stale, err := svc.oracle.Rate(ctx, asset)
	if err != nil {
		logger.Log.Errorw("failed to get oracle rate", "asset", asset, "error", err)
		return result, err
	}
	if stale {
		logger.Log.Errorw("stale oracle rate on settlement", "asset", asset)
		return result, ErrStaleRate
	}

	reclaimTotal := decimal.Zero
	rebateTotal := decimal.Zero
	ids := make([]uuid.UUID, 0, len(eligible))
	for _, entry := range eligible {
		// Drift is the destination asset's own price movement since the
		// exchange: current market value of the held amount vs its value
		// at exchange time.
		valueNow := entry.DestAmount.Mul(priceNow).Div(entry.DestPriceAtExchange)
		delta := valueNow.Sub(entry.DestAmount)
		switch delta.Sign() {
		case -1:
			reclaimTotal = reclaimTotal.Add(delta.Neg())
		case 1:
			rebateTotal = rebateTotal.Add(delta)
		}
		ids = append(ids, entry.EntryID)
	}

	if err := svc.entryWriter.DeleteByIDs(ctx, ids); err != nil {
		logger.Log.Errorw("failed to remove settled entries", "accountID", accountID, "asset", asset, "error", err)
		return result, err
	}
	result.EntriesSettled = len(ids)

	// Drift nets to a single direction before being reported upward.
	switch {
	case reclaimTotal.GreaterThan(rebateTotal):
		result.ReclaimAmount = reclaimTotal.Sub(rebateTotal)
		shortfall, err := svc.ledger.ApplyReclaim(ctx, accountID, asset, result.ReclaimAmount)
		if err != nil {
			logger.Log.Errorw("failed to apply reclaim", "accountID", accountID, "asset", asset, "amount", result.ReclaimAmount, "error", err)
			return result, err
		}
		result.Shortfall = shortfall
	case rebateTotal.GreaterThan(reclaimTotal):
		result.RebateAmount = rebateTotal.Sub(reclaimTotal)
		if err := svc.ledger.ApplyRebate(ctx, accountID, asset, result.RebateAmount); err != nil {
			logger.Log.Errorw("failed to apply rebate", "accountID", accountID, "asset", asset, "amount", result.RebateAmount, "error", err)
			return result, err
		}
	}

	svc.publishSettlement(ctx, accountID, asset, result)

	return result, nil
}

// publishSettlement publishes a settlement event to Kafka. Events are
// advisory and best-effort: the Postgres state is authoritative, and a
// publish may precede the surrounding transaction's commit.
func (svc *SettlementService) publishSettlement(ctx context.Context, accountID uuid.UUID, asset string, result models.ReconciliationResult) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "account_id", accountID)
		return
	}

	event := models.SettlementEvent{
		EventID:        uuid.NewString(),
		Timestamp:      svc.now().Unix(),
		AccountID:      accountID.String(),
		Asset:          asset,
		ReclaimAmount:  result.ReclaimAmount.String(),
		RebateAmount:   result.RebateAmount.String(),
		Shortfall:      result.Shortfall,
		EntriesSettled: result.EntriesSettled,
		Operation:      "settle",
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal settlement event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish settlement event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Settlement event published to Kafka", "event_id", event.EventID, "entries", result.EntriesSettled)
	}
}
