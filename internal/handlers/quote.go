package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-synth-exchange/internal/jwt"
	"github.com/sbilibin2017/gw-synth-exchange/internal/logger"
	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
	"github.com/sbilibin2017/gw-synth-exchange/internal/services"
	"github.com/shopspring/decimal"
)

// QuoteTokener extracts and validates JWT tokens for the quote handler.
type QuoteTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Quoter defines the interface that the quote service must implement.
type Quoter interface {
	Quote(ctx context.Context, sourceAsset, destAsset string, amount decimal.Decimal) (afterFee, fee decimal.Decimal, err error)
}

// NewQuoteHandler returns a read-only conversion quote. No funds move and no
// entry is recorded.
// @Summary Quote an exchange
// @Description Computes the destination amount and fee for a conversion at current oracle rates without executing it
// @Tags exchange
// @Produce json
// @Param from query string true "Source asset" example(sUSD)
// @Param to query string true "Destination asset" example(sEUR)
// @Param amount query string true "Source amount" example(100)
// @Success 200 {object} models.QuoteResponse "Quote"
// @Failure 400 {object} models.QuoteErrorResponse "Invalid amount or unknown asset"
// @Failure 401 {object} models.QuoteErrorResponse "Unauthorized"
// @Failure 503 {object} models.QuoteErrorResponse "Rate unavailable"
// @Router /exchange/quote [get]
// @Security BearerAuth
func NewQuoteHandler(
	tokener QuoteTokener,
	quoter Quoter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.QuoteErrorResponse{Error: "unauthorized"})
			return
		}
		if _, err := tokener.GetClaims(ctx, tokenStr); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.QuoteErrorResponse{Error: "unauthorized"})
			return
		}

		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		amount, err := decimal.NewFromString(r.URL.Query().Get("amount"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.QuoteErrorResponse{Error: "invalid amount"})
			return
		}

		afterFee, fee, err := quoter.Quote(ctx, from, to, amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrZeroAmount),
				errors.Is(err, services.ErrUnknownAsset):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.QuoteErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrStaleRate):
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(models.QuoteErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.QuoteErrorResponse{Error: "Internal server error"})
			}
			return
		}

		resp := models.QuoteResponse{
			FromAsset:      from,
			ToAsset:        to,
			Amount:         amount,
			AmountAfterFee: afterFee,
			FeeAmount:      fee,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
