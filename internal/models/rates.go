package models

import "github.com/shopspring/decimal"

// PublishRateRequest pushes an oracle price into the rate feed
// swagger:model PublishRateRequest
type PublishRateRequest struct {
	// Asset symbol
	// required: true
	// example: sEUR
	Asset string `json:"asset"`

	// Oracle price for the asset
	// required: true
	// example: 1.17
	Price decimal.Decimal `json:"price"`
}

// PublishRateResponse acknowledges a published rate
// swagger:model PublishRateResponse
type PublishRateResponse struct {
	// Success message
	// example: Rate published
	Message string `json:"message"`
}

// RatesErrorResponse represents an error response for rate publishing
// swagger:model RatesErrorResponse
type RatesErrorResponse struct {
	// Error message
	// example: unknown asset
	Error string `json:"error"`
}
