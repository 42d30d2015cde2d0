package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-synth-exchange/internal/logger"
	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
)

// EntryWriteRepository handles exchange entry write operations.
type EntryWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewEntryWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *EntryWriteRepository {
	return &EntryWriteRepository{db: db, txGetter: txGetter}
}

func (r *EntryWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}

// Append adds an entry to the tail of the (account, dest asset) sequence.
// Callers create entries with the current clock, so created_at ordering is
// non-decreasing by construction.
func (r *EntryWriteRepository) Append(ctx context.Context, entry models.ExchangeEntryDB) error {
	query := `
		INSERT INTO synth_entries
			(entry_id, account_id, dest_asset, source_asset, dest_amount, rate_at_exchange, dest_price_at_exchange, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	args := []any{
		entry.EntryID, entry.AccountID, entry.DestAsset, entry.SourceAsset,
		entry.DestAmount, entry.RateAtExchange, entry.DestPriceAtExchange, entry.CreatedAt,
	}
	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// DeleteByIDs removes settled entries. Removal is all-or-nothing per entry;
// only the settlement reconciler calls this.
func (r *EntryWriteRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`DELETE FROM synth_entries WHERE entry_id IN (?)`, ids)
	if err != nil {
		return err
	}
	query = sqlx.Rebind(sqlx.DOLLAR, query)

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

// EntryReadRepository handles exchange entry read operations.
type EntryReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewEntryReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *EntryReadRepository {
	return &EntryReadRepository{db: db, txGetter: txGetter}
}

func (r *EntryReadRepository) queryer(ctx context.Context) sqlx.QueryerContext {
	var q sqlx.QueryerContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			q = tx
		}
	}
	return q
}

// ListByAccountAsset returns the ordered entry sequence for a pair. With
// forUpdate set the rows are locked for the rest of the request transaction,
// which serializes mutating operations per (account, asset) pair.
func (r *EntryReadRepository) ListByAccountAsset(ctx context.Context, accountID uuid.UUID, asset string, forUpdate bool) ([]models.ExchangeEntryDB, error) {
	query := `
		SELECT entry_id, account_id, dest_asset, source_asset, dest_amount, rate_at_exchange, dest_price_at_exchange, created_at
		FROM synth_entries
		WHERE account_id = $1 AND dest_asset = $2
		ORDER BY created_at, entry_id
	`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var entries []models.ExchangeEntryDB
	err := sqlx.SelectContext(ctx, r.queryer(ctx), &entries, query, accountID, asset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, asset},
		"result", len(entries),
		"error", err,
	)

	return entries, err
}

// LatestTimestamp returns the newest entry timestamp for a pair, or a zero
// time when the pair has no entries.
func (r *EntryReadRepository) LatestTimestamp(ctx context.Context, accountID uuid.UUID, asset string) (time.Time, error) {
	const query = `
		SELECT COALESCE(MAX(created_at), 'epoch'::timestamptz)
		FROM synth_entries
		WHERE account_id = $1 AND dest_asset = $2
	`

	var latest time.Time
	err := sqlx.GetContext(ctx, r.queryer(ctx), &latest, query, accountID, asset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, asset},
		"result", latest,
		"error", err,
	)

	if err != nil {
		return time.Time{}, err
	}
	if latest.Unix() <= 0 {
		return time.Time{}, nil
	}
	return latest, nil
}
