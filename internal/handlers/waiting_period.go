package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-synth-exchange/internal/jwt"
	"github.com/sbilibin2017/gw-synth-exchange/internal/logger"
	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
	"github.com/sbilibin2017/gw-synth-exchange/internal/services"
)

// WaitingPeriodTokener extracts and validates JWT tokens for the cooldown handler.
type WaitingPeriodTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// CooldownQuerier defines the interface that the waiting period service must implement.
type CooldownQuerier interface {
	SecondsRemaining(ctx context.Context, accountID uuid.UUID, asset string) (int64, error)
}

// NewWaitingPeriodHandler reports the remaining cooldown for an asset held by
// the authenticated account.
// @Summary Get remaining waiting period
// @Description Returns the seconds remaining before the asset can be exchanged out of again. Zero means no cooldown.
// @Tags exchange
// @Produce json
// @Param asset query string true "Asset symbol" example(sEUR)
// @Success 200 {object} models.WaitingPeriodResponse "Remaining cooldown"
// @Failure 400 {object} models.WaitingPeriodErrorResponse "Unknown asset"
// @Failure 401 {object} models.WaitingPeriodErrorResponse "Unauthorized"
// @Router /exchange/waiting-period [get]
// @Security BearerAuth
func NewWaitingPeriodHandler(
	tokener WaitingPeriodTokener,
	cooldown CooldownQuerier,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.WaitingPeriodErrorResponse{Error: "unauthorized"})
			return
		}
		claims, err := tokener.GetClaims(ctx, tokenStr)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.WaitingPeriodErrorResponse{Error: "unauthorized"})
			return
		}

		asset := r.URL.Query().Get("asset")

		remaining, err := cooldown.SecondsRemaining(ctx, claims.UserID, asset)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownAsset):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.WaitingPeriodErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.WaitingPeriodErrorResponse{Error: "Internal server error"})
			}
			return
		}

		resp := models.WaitingPeriodResponse{
			Asset:            asset,
			SecondsRemaining: remaining,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
