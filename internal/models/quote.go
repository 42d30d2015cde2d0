package models

import "github.com/shopspring/decimal"

// QuoteResponse represents a read-only conversion quote
// swagger:model QuoteResponse
type QuoteResponse struct {
	// Source asset
	// example: sUSD
	FromAsset string `json:"from_asset"`

	// Destination asset
	// example: sEUR
	ToAsset string `json:"to_asset"`

	// Amount of source asset quoted
	// example: 100
	Amount decimal.Decimal `json:"amount"`

	// Destination amount after the fee
	// example: 85.5
	AmountAfterFee decimal.Decimal `json:"amount_after_fee"`

	// Fee amount, in destination units
	// example: 0.3
	FeeAmount decimal.Decimal `json:"fee_amount"`
}

// QuoteErrorResponse represents an error response for a quote
// swagger:model QuoteErrorResponse
type QuoteErrorResponse struct {
	// Error message
	// example: stale rate
	Error string `json:"error"`
}
