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
	"github.com/shopspring/decimal"
)

// ExchangeTokener extracts and validates JWT tokens for the exchange handler.
type ExchangeTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Exchanger defines the interface that the exchange service must implement.
type Exchanger interface {
	Exchange(
		ctx context.Context,
		accountID uuid.UUID,
		sourceAsset, destAsset string,
		amount decimal.Decimal,
	) (credited decimal.Decimal, newBalances map[string]decimal.Decimal, err error)
}

// NewExchangeHandler handles synthetic asset exchange requests.
// @Summary Exchange synthetic assets
// @Description Converts an amount of one synthetic asset into another at oracle rates, minus the exchange fee. Settles outstanding entries on the source asset first and enforces the waiting period.
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body models.ExchangeRequest true "Exchange Request"
// @Success 200 {object} models.ExchangeResponse "Exchange successful"
// @Failure 400 {object} models.ExchangeErrorResponse "Invalid amount, unknown asset, same asset or insufficient funds"
// @Failure 401 {object} models.ExchangeErrorResponse "Unauthorized"
// @Failure 409 {object} models.ExchangeErrorResponse "Waiting period active"
// @Failure 503 {object} models.ExchangeErrorResponse "Exchange disabled or rate unavailable"
// @Router /exchange [post]
// @Security BearerAuth
func NewExchangeHandler(
	tokener ExchangeTokener,
	exchanger Exchanger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.ExchangeErrorResponse{Error: "unauthorized"})
			return
		}

		claims, err := tokener.GetClaims(ctx, tokenStr)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.ExchangeErrorResponse{Error: "unauthorized"})
			return
		}
		accountID := claims.UserID

		var req models.ExchangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ExchangeErrorResponse{Error: "invalid request body"})
			return
		}

		credited, newBalances, err := exchanger.Exchange(ctx, accountID, req.FromAsset, req.ToAsset, req.Amount)
		if err != nil {
			writeExchangeError(w, err)
			return
		}

		resp := models.ExchangeResponse{
			Message:        "Exchange successful",
			CreditedAmount: credited,
			NewBalance:     newBalances,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// writeExchangeError maps engine errors onto HTTP statuses. Client mistakes
// land on 400, contention on 409 and engine unavailability on 503.
func writeExchangeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrZeroAmount),
		errors.Is(err, services.ErrSameAsset),
		errors.Is(err, services.ErrUnknownAsset),
		errors.Is(err, services.ErrInsufficientFunds):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ExchangeErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrWaitingPeriodActive):
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(models.ExchangeErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrExchangeDisabled),
		errors.Is(err, services.ErrStaleRate):
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(models.ExchangeErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ExchangeErrorResponse{Error: "Internal server error"})
	}
}
