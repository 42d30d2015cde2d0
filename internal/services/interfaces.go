package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// RateOracle supplies oracle prices with an explicit staleness flag.
type RateOracle interface {
	Rate(ctx context.Context, asset string) (price decimal.Decimal, stale bool, err error)
}

// EngineConfigReader reads the engine configuration; every engine operation
// consults it.
type EngineConfigReader interface {
	Get(ctx context.Context) (models.EngineConfigDB, error)
}

// EngineConfigWriter mutates the engine configuration. Only the admin
// capability holds a writer.
type EngineConfigWriter interface {
	SetWaitingPeriodSeconds(ctx context.Context, seconds int64) error
	SetFeeRateBps(ctx context.Context, bps int64) error
	SetEnabled(ctx context.Context, enabled bool) error
}

// EntryReader reads the exchange ledger for a pair.
type EntryReader interface {
	ListByAccountAsset(ctx context.Context, accountID uuid.UUID, asset string, forUpdate bool) ([]models.ExchangeEntryDB, error)
	LatestTimestamp(ctx context.Context, accountID uuid.UUID, asset string) (time.Time, error)
}

// EntryWriter appends new entries and drains settled ones.
type EntryWriter interface {
	Append(ctx context.Context, entry models.ExchangeEntryDB) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) error
}

// IssuanceLedger applies balance movements: exchange debits/credits and
// settlement reclaims/rebates.
type IssuanceLedger interface {
	Debit(ctx context.Context, accountID uuid.UUID, asset string, amount decimal.Decimal) error
	Credit(ctx context.Context, accountID uuid.UUID, asset string, amount decimal.Decimal) error
	ApplyReclaim(ctx context.Context, accountID uuid.UUID, asset string, amount decimal.Decimal) (shortfall bool, err error)
	ApplyRebate(ctx context.Context, accountID uuid.UUID, asset string, amount decimal.Decimal) error
}

// BalanceReader returns account balances per asset.
type BalanceReader interface {
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (map[string]decimal.Decimal, error)
}

// RateFeedWriter publishes oracle prices into the feed.
type RateFeedWriter interface {
	SetRate(ctx context.Context, asset string, price decimal.Decimal) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Quoter computes conversion amounts and fees.
type Quoter interface {
	Quote(ctx context.Context, sourceAsset, destAsset string, amount decimal.Decimal) (afterFee, fee decimal.Decimal, err error)
}

// Settler runs a settlement pass for an (account, asset) pair.
type Settler interface {
	Settle(ctx context.Context, accountID uuid.UUID, asset string) (models.ReconciliationResult, error)
}

// CooldownReader reports the remaining waiting period for a pair.
type CooldownReader interface {
	SecondsRemaining(ctx context.Context, accountID uuid.UUID, asset string) (int64, error)
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, password string, email string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}
