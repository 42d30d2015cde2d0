package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-synth-exchange/internal/jwt"
	"github.com/sbilibin2017/gw-synth-exchange/internal/logger"
	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
	"github.com/shopspring/decimal"
)

// BalanceTokener defines only the methods needed by this handler.
type BalanceTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AccountBalanceReader defines the interface that the service must implement.
type AccountBalanceReader interface {
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (map[string]decimal.Decimal, error)
}

// NewGetBalanceHandler returns an HTTP handler for fetching account balances.
// @Summary Get account balances
// @Description Returns balances for all synthetic assets held by the account
// @Tags balance
// @Produce json
// @Success 200 {object} models.BalanceResponse "Account balances"
// @Failure 401 {object} models.BalanceErrorResponse "Unauthorized"
// @Failure 500 {object} models.BalanceErrorResponse "Internal server error"
// @Router /balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(
	balanceReader AccountBalanceReader,
	tokenGetter BalanceTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized balance request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.BalanceErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.BalanceErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		balances, err := balanceReader.GetByAccountID(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get balances", "accountID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.BalanceErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if balances == nil {
			balances = map[string]decimal.Decimal{}
		}

		resp := models.BalanceResponse{
			Balances: balances,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
