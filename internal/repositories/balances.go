package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-synth-exchange/internal/logger"
	"github.com/shopspring/decimal"
)

// BalanceWriteRepository is the issuance ledger surface the engine writes
// through: strict debits, crediting upserts and the reclaim/rebate pair used
// by settlement.
type BalanceWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBalanceWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BalanceWriteRepository {
	return &BalanceWriteRepository{db: db, txGetter: txGetter}
}

func (r *BalanceWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}

// Credit performs an UPSERT: creates the balance row if not exists, otherwise
// increases the balance.
func (r *BalanceWriteRepository) Credit(ctx context.Context, accountID uuid.UUID, asset string, amount decimal.Decimal) error {
	query := `
		INSERT INTO balances (balance_id, account_id, asset, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (account_id, asset)
		DO UPDATE SET balance = balances.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING balance
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, uuid.New(), accountID, asset, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, asset, amount},
		"result", balance,
		"error", err,
	)

	return err
}

// Debit decreases a balance only when sufficient funds exist. sql.ErrNoRows
// signals insufficient funds (or a missing balance row).
func (r *BalanceWriteRepository) Debit(ctx context.Context, accountID uuid.UUID, asset string, amount decimal.Decimal) error {
	query := `
		UPDATE balances
		SET balance = balance - $3, updated_at = NOW()
		WHERE account_id = $1 AND asset = $2 AND balance >= $3
		RETURNING balance
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, accountID, asset, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, asset, amount},
		"result", balance,
		"error", err,
	)

	return err
}

// ApplyReclaim debits a settlement reclaim, clamping at zero. It reports a
// shortfall when the prior balance could not cover the full reclaim; the
// settlement itself still proceeds.
func (r *BalanceWriteRepository) ApplyReclaim(ctx context.Context, accountID uuid.UUID, asset string, amount decimal.Decimal) (shortfall bool, err error) {
	query := `
		WITH prior AS (
			SELECT balance_id, balance FROM balances
			WHERE account_id = $1 AND asset = $2
			FOR UPDATE
		)
		UPDATE balances
		SET balance = GREATEST(balances.balance - $3, 0), updated_at = NOW()
		FROM prior
		WHERE balances.balance_id = prior.balance_id
		RETURNING prior.balance
	`

	var priorBalance decimal.Decimal
	err = sqlx.GetContext(ctx, r.executor(ctx), &priorBalance, query, accountID, asset, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, asset, amount},
		"result", priorBalance,
		"error", err,
	)

	if err == sql.ErrNoRows {
		// No balance row at all: the whole reclaim is a shortfall.
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return priorBalance.LessThan(amount), nil
}

// ApplyRebate credits a settlement rebate.
func (r *BalanceWriteRepository) ApplyRebate(ctx context.Context, accountID uuid.UUID, asset string, amount decimal.Decimal) error {
	return r.Credit(ctx, accountID, asset, amount)
}

// BalanceReadRepository handles balance read operations.
type BalanceReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBalanceReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BalanceReadRepository {
	return &BalanceReadRepository{db: db, txGetter: txGetter}
}

// queryer joins the request transaction when one is present, so reads issued
// inside a mutating flow see that flow's uncommitted writes.
func (r *BalanceReadRepository) queryer(ctx context.Context) sqlx.QueryerContext {
	var q sqlx.QueryerContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			q = tx
		}
	}
	return q
}

// GetByAccountID retrieves all balances for an account as map[asset]balance.
func (r *BalanceReadRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (map[string]decimal.Decimal, error) {
	const query = `
		SELECT asset, balance
		FROM balances
		WHERE account_id = $1
	`

	var rows []struct {
		Asset   string          `db:"asset"`
		Balance decimal.Decimal `db:"balance"`
	}

	err := sqlx.SelectContext(ctx, r.queryer(ctx), &rows, query, accountID)

	balances := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		balances[row.Asset] = row.Balance
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", balances,
		"error", err,
	)

	return balances, err
}
