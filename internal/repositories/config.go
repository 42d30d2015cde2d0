package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-synth-exchange/internal/logger"
	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
)

// Defaults applied when the engine_config row has not been created yet.
const (
	DefaultWaitingPeriodSeconds = 360
	DefaultFeeRateBps           = 30
)

// EngineConfigRepository stores the single engine configuration row.
type EngineConfigRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewEngineConfigRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *EngineConfigRepository {
	return &EngineConfigRepository{db: db, txGetter: txGetter}
}

func (r *EngineConfigRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}

// Get returns the current engine configuration, falling back to defaults when
// no admin has ever written the row.
func (r *EngineConfigRepository) Get(ctx context.Context) (models.EngineConfigDB, error) {
	const query = `
		SELECT waiting_period_seconds, fee_rate_bps, enabled, updated_at
		FROM engine_config
		WHERE config_id = 1
	`

	var cfg models.EngineConfigDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &cfg, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", cfg,
		"error", err,
	)

	if err == sql.ErrNoRows {
		return models.EngineConfigDB{
			WaitingPeriodSeconds: DefaultWaitingPeriodSeconds,
			FeeRateBps:           DefaultFeeRateBps,
			Enabled:              true,
		}, nil
	}
	if err != nil {
		return models.EngineConfigDB{}, err
	}
	return cfg, nil
}

// SetWaitingPeriodSeconds updates the cooldown length.
func (r *EngineConfigRepository) SetWaitingPeriodSeconds(ctx context.Context, seconds int64) error {
	return r.upsert(ctx, "waiting_period_seconds", seconds)
}

// SetFeeRateBps updates the proportional exchange fee.
func (r *EngineConfigRepository) SetFeeRateBps(ctx context.Context, bps int64) error {
	return r.upsert(ctx, "fee_rate_bps", bps)
}

// SetEnabled toggles the engine on or off.
func (r *EngineConfigRepository) SetEnabled(ctx context.Context, enabled bool) error {
	return r.upsert(ctx, "enabled", enabled)
}

func (r *EngineConfigRepository) upsert(ctx context.Context, column string, value any) error {
	// column comes from the fixed set above, never from input
	query := `
		INSERT INTO engine_config (config_id, waiting_period_seconds, fee_rate_bps, enabled, updated_at)
		VALUES (1, $2, $3, $4, NOW())
		ON CONFLICT (config_id)
		DO UPDATE SET ` + column + ` = $1, updated_at = NOW()
	`

	cfg, err := r.Get(ctx)
	if err != nil {
		return err
	}
	defaults := []any{cfg.WaitingPeriodSeconds, cfg.FeeRateBps, cfg.Enabled}
	switch column {
	case "waiting_period_seconds":
		defaults[0] = value
	case "fee_rate_bps":
		defaults[1] = value
	case "enabled":
		defaults[2] = value
	}

	args := append([]any{value}, defaults...)
	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
