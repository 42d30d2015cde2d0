package models

// WaitingPeriodConfigRequest sets the engine waiting period
// swagger:model WaitingPeriodConfigRequest
type WaitingPeriodConfigRequest struct {
	// Cooldown in seconds per (account, asset) pair
	// required: true
	// example: 360
	Seconds int64 `json:"seconds"`
}

// FeeRateConfigRequest sets the proportional exchange fee
// swagger:model FeeRateConfigRequest
type FeeRateConfigRequest struct {
	// Fee rate in basis points
	// required: true
	// example: 30
	Bps int64 `json:"bps"`
}

// EnabledConfigRequest toggles the engine on or off
// swagger:model EnabledConfigRequest
type EnabledConfigRequest struct {
	// When false, all exchange attempts fail without side effects
	// required: true
	// example: true
	Enabled bool `json:"enabled"`
}

// ConfigResponse returns the current engine configuration
// swagger:model ConfigResponse
type ConfigResponse struct {
	// Cooldown in seconds
	// example: 360
	WaitingPeriodSeconds int64 `json:"waiting_period_seconds"`

	// Fee rate in basis points
	// example: 30
	FeeRateBps int64 `json:"fee_rate_bps"`

	// Engine enabled flag
	// example: true
	Enabled bool `json:"enabled"`
}

// AdminErrorResponse represents an error response for admin operations
// swagger:model AdminErrorResponse
type AdminErrorResponse struct {
	// Error message
	// example: invalid value
	Error string `json:"error"`
}
