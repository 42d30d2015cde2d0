package models

import "github.com/shopspring/decimal"

// SettleRequest represents the JSON body for a settlement pass.
// Settlement is permissionless: any caller may settle any account.
// swagger:model SettleRequest
type SettleRequest struct {
	// Account to settle
	// required: true
	// example: 6ba7b810-9dad-11d1-80b4-00c04fd430c8
	AccountID string `json:"account_id"`

	// Destination asset to settle
	// required: true
	// example: sEUR
	Asset string `json:"asset"`
}

// SettleResponse represents the outcome of a settlement pass
// swagger:model SettleResponse
type SettleResponse struct {
	// Downward correction applied
	// example: 0
	ReclaimAmount decimal.Decimal `json:"reclaim_amount"`

	// Upward correction applied
	// example: 1.25
	RebateAmount decimal.Decimal `json:"rebate_amount"`

	// Reclaim exceeded the current balance
	// example: false
	Shortfall bool `json:"shortfall"`

	// Number of entries consumed
	// example: 2
	EntriesSettled int `json:"entries_settled"`
}

// SettleErrorResponse represents an error response for settlement
// swagger:model SettleErrorResponse
type SettleErrorResponse struct {
	// Error message
	// example: unknown asset
	Error string `json:"error"`
}
