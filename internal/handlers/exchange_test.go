package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-synth-exchange/internal/jwt"
	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
	"github.com/sbilibin2017/gw-synth-exchange/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExchangeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockExchangeTokener(ctrl)
	mockExchanger := NewMockExchanger(ctrl)

	accountID := uuid.New()
	amount := decimal.NewFromInt(100)
	credited := decimal.RequireFromString("49.85")

	handler := NewExchangeHandler(mockTokener, mockExchanger)

	// Allow token calls for all subtests
	mockTokener.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		AnyTimes().
		Return("valid-token", nil)
	mockTokener.EXPECT().
		GetClaims(gomock.Any(), "valid-token").
		AnyTimes().
		Return(&jwt.Claims{UserID: accountID}, nil)

	tests := []struct {
		name           string
		reqBody        interface{}
		mockExchange   func()
		expectedStatus int
		expectedError  string
	}{
		{
			name: "success",
			reqBody: models.ExchangeRequest{
				FromAsset: models.SEUR,
				ToAsset:   models.SBTC,
				Amount:    amount,
			},
			mockExchange: func() {
				mockExchanger.EXPECT().
					Exchange(gomock.Any(), accountID, models.SEUR, models.SBTC, amount).
					Return(credited, map[string]decimal.Decimal{
						models.SEUR: decimal.NewFromInt(900),
						models.SBTC: credited,
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad_request_invalid_json",
			reqBody:        `invalid-json`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
		{
			name: "zero_amount",
			reqBody: models.ExchangeRequest{
				FromAsset: models.SEUR,
				ToAsset:   models.SBTC,
				Amount:    decimal.Zero,
			},
			mockExchange: func() {
				mockExchanger.EXPECT().
					Exchange(gomock.Any(), accountID, models.SEUR, models.SBTC, gomock.Any()).
					Return(decimal.Zero, nil, services.ErrZeroAmount)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  services.ErrZeroAmount.Error(),
		},
		{
			name: "insufficient_funds",
			reqBody: models.ExchangeRequest{
				FromAsset: models.SEUR,
				ToAsset:   models.SBTC,
				Amount:    amount,
			},
			mockExchange: func() {
				mockExchanger.EXPECT().
					Exchange(gomock.Any(), accountID, models.SEUR, models.SBTC, amount).
					Return(decimal.Zero, nil, services.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  services.ErrInsufficientFunds.Error(),
		},
		{
			name: "waiting_period_active",
			reqBody: models.ExchangeRequest{
				FromAsset: models.SEUR,
				ToAsset:   models.SBTC,
				Amount:    amount,
			},
			mockExchange: func() {
				mockExchanger.EXPECT().
					Exchange(gomock.Any(), accountID, models.SEUR, models.SBTC, amount).
					Return(decimal.Zero, nil, services.ErrWaitingPeriodActive)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  services.ErrWaitingPeriodActive.Error(),
		},
		{
			name: "exchange_disabled",
			reqBody: models.ExchangeRequest{
				FromAsset: models.SEUR,
				ToAsset:   models.SBTC,
				Amount:    amount,
			},
			mockExchange: func() {
				mockExchanger.EXPECT().
					Exchange(gomock.Any(), accountID, models.SEUR, models.SBTC, amount).
					Return(decimal.Zero, nil, services.ErrExchangeDisabled)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  services.ErrExchangeDisabled.Error(),
		},
		{
			name: "stale_rate",
			reqBody: models.ExchangeRequest{
				FromAsset: models.SEUR,
				ToAsset:   models.SBTC,
				Amount:    amount,
			},
			mockExchange: func() {
				mockExchanger.EXPECT().
					Exchange(gomock.Any(), accountID, models.SEUR, models.SBTC, amount).
					Return(decimal.Zero, nil, services.ErrStaleRate)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  services.ErrStaleRate.Error(),
		},
		{
			name: "internal_server_error",
			reqBody: models.ExchangeRequest{
				FromAsset: models.SEUR,
				ToAsset:   models.SBTC,
				Amount:    amount,
			},
			mockExchange: func() {
				mockExchanger.EXPECT().
					Exchange(gomock.Any(), accountID, models.SEUR, models.SBTC, amount).
					Return(decimal.Zero, nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockExchange != nil {
				tt.mockExchange()
			}

			var bodyBytes []byte
			switch v := tt.reqBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/exchange", bytes.NewReader(bodyBytes))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Result().StatusCode)

			if tt.expectedError != "" {
				var got models.ExchangeErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, tt.expectedError, got.Error)
				return
			}
			if tt.expectedStatus == http.StatusOK {
				var got models.ExchangeResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, "Exchange successful", got.Message)
				assert.True(t, got.CreditedAmount.Equal(credited))
				assert.True(t, got.NewBalance[models.SBTC].Equal(credited))
			}
		})
	}
}

func TestExchangeHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockExchangeTokener(ctrl)
	mockExchanger := NewMockExchanger(ctrl)

	mockTokener.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("", assert.AnError)

	handler := NewExchangeHandler(mockTokener, mockExchanger)

	req := httptest.NewRequest(http.MethodPost, "/exchange", bytes.NewReader(nil))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
