package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-synth-exchange/internal/logger"
	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
	"github.com/sbilibin2017/gw-synth-exchange/internal/services"
)

// Settleer defines the interface that the settlement service must implement.
type Settleer interface {
	Settle(ctx context.Context, accountID uuid.UUID, asset string) (models.ReconciliationResult, error)
}

// NewSettleHandler runs a settlement pass for an (account, asset) pair. The
// endpoint is permissionless: settling an account only applies corrections it
// already owes or is owed.
// @Summary Settle outstanding exchange entries
// @Description Reconciles price drift for entries whose waiting period has elapsed and applies the netted reclaim or rebate. Idempotent: a pass with nothing eligible returns zeroes.
// @Tags settle
// @Accept json
// @Produce json
// @Param request body models.SettleRequest true "Settle Request"
// @Success 200 {object} models.SettleResponse "Settlement outcome"
// @Failure 400 {object} models.SettleErrorResponse "Invalid account or unknown asset"
// @Failure 503 {object} models.SettleErrorResponse "Rate unavailable"
// @Router /settle [post]
func NewSettleHandler(settler Settleer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req models.SettleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.SettleErrorResponse{Error: "invalid request body"})
			return
		}

		accountID, err := uuid.Parse(req.AccountID)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.SettleErrorResponse{Error: "invalid account id"})
			return
		}

		result, err := settler.Settle(ctx, accountID, req.Asset)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownAsset):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.SettleErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrStaleRate):
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(models.SettleErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.SettleErrorResponse{Error: "Internal server error"})
			}
			return
		}

		resp := models.SettleResponse{
			ReclaimAmount:  result.ReclaimAmount,
			RebateAmount:   result.RebateAmount,
			Shortfall:      result.Shortfall,
			EntriesSettled: result.EntriesSettled,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
