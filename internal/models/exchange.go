package models

import "github.com/shopspring/decimal"

// ExchangeRequest represents the JSON body for a synthetic asset exchange
// swagger:model ExchangeRequest
type ExchangeRequest struct {
	// Source asset
	// required: true
	// example: sUSD
	FromAsset string `json:"from_asset"`

	// Destination asset
	// required: true
	// example: sEUR
	ToAsset string `json:"to_asset"`

	// Amount of source asset to exchange
	// required: true
	// example: 100
	Amount decimal.Decimal `json:"amount"`
}

// ExchangeResponse represents a successful exchange response
// swagger:model ExchangeResponse
type ExchangeResponse struct {
	// Success message
	// example: Exchange successful
	Message string `json:"message"`

	// Amount of destination asset credited, after fees
	// example: 85.5
	CreditedAmount decimal.Decimal `json:"credited_amount"`

	// New balances per asset after the exchange
	NewBalance map[string]decimal.Decimal `json:"new_balance"`
}

// ExchangeErrorResponse represents an error response for exchange
// swagger:model ExchangeErrorResponse
type ExchangeErrorResponse struct {
	// Error message
	// example: waiting period active
	Error string `json:"error"`
}
