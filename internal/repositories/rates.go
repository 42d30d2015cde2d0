package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-synth-exchange/internal/logger"
	"github.com/shopspring/decimal"
)

// RateCacheRepository holds the oracle rate feed in Redis. The feed process
// publishes one key per asset with a freshness TTL; an expired or missing key
// means the rate is stale.
type RateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // freshness window for published rates
}

// NewRateCacheRepository creates a new repository instance with the freshness TTL.
func NewRateCacheRepository(client *redis.Client, expiration time.Duration) *RateCacheRepository {
	return &RateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func rateKey(asset string) string {
	return fmt.Sprintf("synth_rate:%s", asset)
}

// GetRate fetches the current oracle price for an asset. stale is true when
// the feed has no fresh value; that is a normal condition, not an error.
func (r *RateCacheRepository) GetRate(ctx context.Context, asset string) (price decimal.Decimal, stale bool, err error) {
	key := rateKey(asset)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return decimal.Zero, true, nil
		}
		return decimal.Zero, false, err
	}

	price, err = decimal.NewFromString(val)
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return decimal.Zero, false, err
	}

	logger.Log.Infow(
		"key", key,
		"value", val,
		"result", price,
		"error", nil,
	)

	return price, false, nil
}

// SetRate publishes a new oracle price with the freshness TTL.
func (r *RateCacheRepository) SetRate(ctx context.Context, asset string, price decimal.Decimal) error {
	key := rateKey(asset)
	err := r.client.Set(ctx, key, price.String(), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"price", price,
		"result", "ok",
		"error", err,
	)

	return err
}
