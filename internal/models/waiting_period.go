package models

// WaitingPeriodResponse reports the remaining cooldown for an (account, asset) pair
// swagger:model WaitingPeriodResponse
type WaitingPeriodResponse struct {
	// Asset queried
	// example: sEUR
	Asset string `json:"asset"`

	// Seconds until the asset can be exchanged out of again; 0 means no cooldown
	// example: 42
	SecondsRemaining int64 `json:"seconds_remaining"`
}

// WaitingPeriodErrorResponse represents an error response for the cooldown query
// swagger:model WaitingPeriodErrorResponse
type WaitingPeriodErrorResponse struct {
	// Error message
	// example: unknown asset
	Error string `json:"error"`
}
