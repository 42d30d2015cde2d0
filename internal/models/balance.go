package models

import "github.com/shopspring/decimal"

// BalanceResponse represents a successful response with account balances per asset
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Balances keyed by asset symbol
	Balances map[string]decimal.Decimal `json:"balances"`
}

// BalanceErrorResponse represents an error response when fetching balances
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}
