package handlers

import (
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

func TestQuoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockQuoteTokener(ctrl)
	mockQuoter := NewMockQuoter(ctrl)

	accountID := uuid.New()

	mockTokener.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		AnyTimes().
		Return("valid-token", nil)
	mockTokener.EXPECT().
		GetClaims(gomock.Any(), "valid-token").
		AnyTimes().
		Return(&jwt.Claims{UserID: accountID}, nil)

	handler := NewQuoteHandler(mockTokener, mockQuoter)

	tests := []struct {
		name           string
		query          string
		mockQuote      func()
		expectedStatus int
		expectedError  string
	}{
		{
			name:  "success",
			query: "from=sUSD&to=sEUR&amount=100",
			mockQuote: func() {
				mockQuoter.EXPECT().
					Quote(gomock.Any(), models.SUSD, models.SEUR, decimal.NewFromInt(100)).
					Return(decimal.RequireFromString("85.5"), decimal.RequireFromString("0.3"), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unparseable amount",
			query:          "from=sUSD&to=sEUR&amount=abc",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid amount",
		},
		{
			name:  "unknown asset",
			query: "from=sDOGE&to=sEUR&amount=1",
			mockQuote: func() {
				mockQuoter.EXPECT().
					Quote(gomock.Any(), "sDOGE", models.SEUR, decimal.NewFromInt(1)).
					Return(decimal.Zero, decimal.Zero, services.ErrUnknownAsset)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  services.ErrUnknownAsset.Error(),
		},
		{
			name:  "stale rate",
			query: "from=sUSD&to=sEUR&amount=1",
			mockQuote: func() {
				mockQuoter.EXPECT().
					Quote(gomock.Any(), models.SUSD, models.SEUR, decimal.NewFromInt(1)).
					Return(decimal.Zero, decimal.Zero, services.ErrStaleRate)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  services.ErrStaleRate.Error(),
		},
		{
			name:  "internal error",
			query: "from=sUSD&to=sEUR&amount=1",
			mockQuote: func() {
				mockQuoter.EXPECT().
					Quote(gomock.Any(), models.SUSD, models.SEUR, decimal.NewFromInt(1)).
					Return(decimal.Zero, decimal.Zero, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockQuote != nil {
				tt.mockQuote()
			}

			req := httptest.NewRequest(http.MethodGet, "/exchange/quote?"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedError != "" {
				var got models.QuoteErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, tt.expectedError, got.Error)
				return
			}

			var got models.QuoteResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, models.SUSD, got.FromAsset)
			assert.True(t, got.AmountAfterFee.Equal(decimal.RequireFromString("85.5")))
			assert.True(t, got.FeeAmount.Equal(decimal.RequireFromString("0.3")))
		})
	}
}
