package models

import "time"

// EngineConfigDB is the single-row engine configuration read by every engine
// operation and mutated only through the admin surface.
type EngineConfigDB struct {
	WaitingPeriodSeconds int64     `json:"waiting_period_seconds" db:"waiting_period_seconds"` // Cooldown per (account, asset) pair
	FeeRateBps           int64     `json:"fee_rate_bps" db:"fee_rate_bps"`                     // Proportional exchange fee, basis points
	Enabled              bool      `json:"enabled" db:"enabled"`                               // When false all exchanges fail
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`                         // Last admin mutation
}
