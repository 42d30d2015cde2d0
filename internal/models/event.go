package models

// ExchangeEvent is published to Kafka after every successful exchange.
type ExchangeEvent struct {
	EventID      string `json:"event_id"`      // EventID is a unique identifier for the event.
	Timestamp    int64  `json:"timestamp"`     // Timestamp is the Unix timestamp (in seconds) when the exchange occurred.
	AccountID    string `json:"account_id"`    // AccountID is the account that performed the exchange.
	SourceAsset  string `json:"source_asset"`  // SourceAsset is the asset debited.
	DestAsset    string `json:"dest_asset"`    // DestAsset is the asset credited.
	SourceAmount string `json:"source_amount"` // SourceAmount is the amount debited.
	DestAmount   string `json:"dest_amount"`   // DestAmount is the amount credited, after fees.
	FeeAmount    string `json:"fee_amount"`    // FeeAmount is the fee charged, in destination units.
	Operation    string `json:"operation"`     // Operation is always "exchange".
}

// SettlementEvent is published to Kafka after a settlement pass that consumed
// at least one entry.
type SettlementEvent struct {
	EventID        string `json:"event_id"`        // EventID is a unique identifier for the event.
	Timestamp      int64  `json:"timestamp"`       // Timestamp is the Unix timestamp (in seconds) of the settlement.
	AccountID      string `json:"account_id"`      // AccountID is the settled account.
	Asset          string `json:"asset"`           // Asset is the settled destination asset.
	ReclaimAmount  string `json:"reclaim_amount"`  // ReclaimAmount is the downward correction applied.
	RebateAmount   string `json:"rebate_amount"`   // RebateAmount is the upward correction applied.
	Shortfall      bool   `json:"shortfall"`       // Shortfall reports a reclaim that exceeded the balance.
	EntriesSettled int    `json:"entries_settled"` // EntriesSettled is the number of entries consumed.
	Operation      string `json:"operation"`       // Operation is always "settle".
}
