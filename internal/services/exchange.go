package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-synth-exchange/internal/logger"
	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// ExchangeService is the public entry point of the engine: it validates
// preconditions in order, settles the source asset's outstanding entries,
// moves funds through the issuance ledger and records the new exchange entry.
type ExchangeService struct {
	config      EngineConfigReader
	oracle      RateOracle
	quoter      Quoter
	settler     Settler
	cooldown    CooldownReader
	ledger      IssuanceLedger
	entryWriter EntryWriter
	balances    BalanceReader
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewExchangeService creates a new service instance. A nil clock falls back
// to time.Now.
func NewExchangeService(
	config EngineConfigReader,
	oracle RateOracle,
	quoter Quoter,
	settler Settler,
	cooldown CooldownReader,
	ledger IssuanceLedger,
	entryWriter EntryWriter,
	balances BalanceReader,
	kafkaWriter KafkaWriter,
	now func() time.Time,
) *ExchangeService {
	if now == nil {
		now = time.Now
	}
	return &ExchangeService{
		config:      config,
		oracle:      oracle,
		quoter:      quoter,
		settler:     settler,
		cooldown:    cooldown,
		ledger:      ledger,
		entryWriter: entryWriter,
		balances:    balances,
		kafkaWriter: kafkaWriter,
		now:         now,
	}
}

// Exchange converts sourceAmount of sourceAsset into destAsset for the
// account and returns the credited amount with the account's new balances.
// Preconditions are checked in order and the first failure wins; on any
// failure nothing is debited, credited or recorded.
func (svc *ExchangeService) Exchange(
	ctx context.Context,
	accountID uuid.UUID,
	sourceAsset, destAsset string,
	amount decimal.Decimal,
) (credited decimal.Decimal, newBalances map[string]decimal.Decimal, err error) {
	cfg, err := svc.config.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read engine config", "error", err)
		return decimal.Zero, nil, err
	}
	if !cfg.Enabled {
		return decimal.Zero, nil, ErrExchangeDisabled
	}

	if amount.Sign() <= 0 {
		return decimal.Zero, nil, ErrZeroAmount
	}

	if !models.IsSupportedAsset(sourceAsset) || !models.IsSupportedAsset(destAsset) {
		return decimal.Zero, nil, ErrUnknownAsset
	}
	srcPrice, srcStale, err := svc.oracle.Rate(ctx, sourceAsset)
	if err != nil {
		logger.Log.Errorw("failed to get oracle rate", "asset", sourceAsset, "error", err)
		return decimal.Zero, nil, err
	}
	destPrice, destStale, err := svc.oracle.Rate(ctx, destAsset)
	if err != nil {
		logger.Log.Errorw("failed to get oracle rate", "asset", destAsset, "error", err)
		return decimal.Zero, nil, err
	}
	if srcStale || destStale {
		return decimal.Zero, nil, ErrStaleRate
	}

	if sourceAsset == destAsset {
		return decimal.Zero, nil, ErrSameAsset
	}

	// Settle the source asset first: applies owed reclaim/rebate and clears
	// the way for the waiting-period check.
	if _, err := svc.settler.Settle(ctx, accountID, sourceAsset); err != nil {
		logger.Log.Errorw("failed to settle source asset", "accountID", accountID, "asset", sourceAsset, "error", err)
		return decimal.Zero, nil, err
	}

	remaining, err := svc.cooldown.SecondsRemaining(ctx, accountID, sourceAsset)
	if err != nil {
		logger.Log.Errorw("failed to read waiting period", "accountID", accountID, "asset", sourceAsset, "error", err)
		return decimal.Zero, nil, err
	}
	if remaining > 0 {
		return decimal.Zero, nil, ErrWaitingPeriodActive
	}

	afterFee, fee, err := svc.quoter.Quote(ctx, sourceAsset, destAsset, amount)
	if err != nil {
		return decimal.Zero, nil, err
	}

	if err := svc.ledger.Debit(ctx, accountID, sourceAsset, amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, nil, ErrInsufficientFunds
		}
		logger.Log.Errorw("failed to debit source asset", "accountID", accountID, "asset", sourceAsset, "amount", amount, "error", err)
		return decimal.Zero, nil, err
	}

	if err := svc.ledger.Credit(ctx, accountID, destAsset, afterFee); err != nil {
		logger.Log.Errorw("failed to credit destination asset", "accountID", accountID, "asset", destAsset, "amount", afterFee, "error", err)
		return decimal.Zero, nil, err
	}

	entry := models.ExchangeEntryDB{
		EntryID:             uuid.New(),
		AccountID:           accountID,
		DestAsset:           destAsset,
		SourceAsset:         sourceAsset,
		DestAmount:          afterFee,
		RateAtExchange:      srcPrice.Div(destPrice),
		DestPriceAtExchange: destPrice,
		CreatedAt:           svc.now(),
	}
	if err := svc.entryWriter.Append(ctx, entry); err != nil {
		logger.Log.Errorw("failed to append exchange entry", "accountID", accountID, "asset", destAsset, "error", err)
		return decimal.Zero, nil, err
	}

	newBalances, err = svc.balances.GetByAccountID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to get balances after exchange", "accountID", accountID, "error", err)
		return afterFee, nil, err
	}

	svc.publishExchange(ctx, accountID, sourceAsset, destAsset, amount, afterFee, fee)

	return afterFee, newBalances, nil
}

// publishExchange publishes an exchange event to Kafka. Events are advisory
// and best-effort: the Postgres state is authoritative, and a publish may
// precede the surrounding transaction's commit.
func (svc *ExchangeService) publishExchange(ctx context.Context, accountID uuid.UUID, sourceAsset, destAsset string, sourceAmount, destAmount, fee decimal.Decimal) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "account_id", accountID)
		return
	}

	event := models.ExchangeEvent{
		EventID:      uuid.NewString(),
		Timestamp:    svc.now().Unix(),
		AccountID:    accountID.String(),
		SourceAsset:  sourceAsset,
		DestAsset:    destAsset,
		SourceAmount: sourceAmount.String(),
		DestAmount:   destAmount.String(),
		FeeAmount:    fee.String(),
		Operation:    "exchange",
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal exchange event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish exchange event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Exchange event published to Kafka", "event_id", event.EventID, "amount", sourceAmount)
	}
}
