package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupEnginePostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS balances (
		balance_id UUID PRIMARY KEY,
		account_id UUID NOT NULL,
		asset VARCHAR(8) NOT NULL,
		balance NUMERIC(38, 18) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (account_id, asset)
	);

	CREATE TABLE IF NOT EXISTS synth_entries (
		entry_id UUID PRIMARY KEY,
		account_id UUID NOT NULL,
		dest_asset VARCHAR(8) NOT NULL,
		source_asset VARCHAR(8) NOT NULL,
		dest_amount NUMERIC(38, 18) NOT NULL CHECK (dest_amount > 0),
		rate_at_exchange NUMERIC(38, 18) NOT NULL,
		dest_price_at_exchange NUMERIC(38, 18) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_synth_entries_pair ON synth_entries (account_id, dest_asset, created_at);

	CREATE TABLE IF NOT EXISTS engine_config (
		config_id SMALLINT PRIMARY KEY,
		waiting_period_seconds BIGINT NOT NULL,
		fee_rate_bps BIGINT NOT NULL,
		enabled BOOLEAN NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}
