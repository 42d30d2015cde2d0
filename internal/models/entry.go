package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExchangeEntryDB represents one completed conversion into a destination asset,
// as persisted in the synth_entries table. Entries are immutable once created
// and are removed whole by settlement, never mutated.
type ExchangeEntryDB struct {
	EntryID             uuid.UUID       `json:"entry_id" db:"entry_id"`                             // Primary key
	AccountID           uuid.UUID       `json:"account_id" db:"account_id"`                         // Owning account
	DestAsset           string          `json:"dest_asset" db:"dest_asset"`                         // Asset credited by the exchange
	SourceAsset         string          `json:"source_asset" db:"source_asset"`                     // Asset debited by the exchange
	DestAmount          decimal.Decimal `json:"dest_amount" db:"dest_amount"`                       // Amount credited, after fees
	RateAtExchange      decimal.Decimal `json:"rate_at_exchange" db:"rate_at_exchange"`             // Source->dest rate used
	DestPriceAtExchange decimal.Decimal `json:"dest_price_at_exchange" db:"dest_price_at_exchange"` // Dest asset oracle price, reconciliation basis
	CreatedAt           time.Time       `json:"created_at" db:"created_at"`                         // Exchange timestamp
}

// ReconciliationResult is the outcome of one settlement pass for an
// (account, asset) pair. At most one of ReclaimAmount/RebateAmount is non-zero.
type ReconciliationResult struct {
	ReclaimAmount  decimal.Decimal `json:"reclaim_amount"`  // Downward correction owed by the account
	RebateAmount   decimal.Decimal `json:"rebate_amount"`   // Upward correction owed to the account
	Shortfall      bool            `json:"shortfall"`       // Reclaim exceeded the current balance
	EntriesSettled int             `json:"entries_settled"` // Number of entries consumed by this pass
}

// IsZero reports whether the pass settled nothing.
func (r ReconciliationResult) IsZero() bool {
	return r.EntriesSettled == 0 && r.ReclaimAmount.IsZero() && r.RebateAmount.IsZero()
}
