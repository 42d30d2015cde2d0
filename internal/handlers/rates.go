package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-synth-exchange/internal/logger"
	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
	"github.com/sbilibin2017/gw-synth-exchange/internal/services"
	"github.com/shopspring/decimal"
)

// RatePublisher defines the interface that the rate publishing service must implement.
type RatePublisher interface {
	PublishRate(ctx context.Context, asset string, price decimal.Decimal) error
}

// NewPublishRateHandler pushes an oracle price into the rate feed.
// @Summary Publish an oracle rate
// @Description Stores the price with a freshness TTL. Exchanges and settlements reject assets whose price has expired.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.PublishRateRequest true "Rate to publish"
// @Success 200 {object} models.PublishRateResponse "Rate published"
// @Failure 400 {object} models.RatesErrorResponse "Unknown asset or non-positive price"
// @Failure 401 {object} models.RatesErrorResponse "Unauthorized"
// @Router /admin/rates [post]
// @Security BearerAuth
func NewPublishRateHandler(svc RatePublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.PublishRateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.RatesErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.PublishRate(r.Context(), req.Asset, req.Price); err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownAsset),
				errors.Is(err, services.ErrInvalidRate):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.RatesErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.RatesErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.PublishRateResponse{
			Message: "Rate published",
		})
	}
}
