package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-synth-exchange/internal/jwt"
	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGetBalanceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockBalanceTokener(ctrl)
	mockReader := NewMockAccountBalanceReader(ctrl)

	accountID := uuid.New()
	token := "valid-token"

	tests := []struct {
		name                string
		setupMocks          func()
		expectedStatus      int
		expectedResponseKey string // "balances" or "error"
	}{
		{
			name: "successful balance fetch",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(&jwt.Claims{UserID: accountID}, nil)
				mockReader.EXPECT().GetByAccountID(gomock.Any(), accountID).
					Return(map[string]decimal.Decimal{
						models.SUSD: decimal.NewFromInt(100),
						models.SEUR: decimal.NewFromInt(50),
					}, nil)
			},
			expectedStatus:      http.StatusOK,
			expectedResponseKey: "balances",
		},
		{
			name: "empty balances serialize as object",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(&jwt.Claims{UserID: accountID}, nil)
				mockReader.EXPECT().GetByAccountID(gomock.Any(), accountID).
					Return(nil, nil)
			},
			expectedStatus:      http.StatusOK,
			expectedResponseKey: "balances",
		},
		{
			name: "unauthorized missing token",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus:      http.StatusUnauthorized,
			expectedResponseKey: "error",
		},
		{
			name: "unauthorized invalid token",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(nil, errors.New("invalid token"))
			},
			expectedStatus:      http.StatusUnauthorized,
			expectedResponseKey: "error",
		},
		{
			name: "internal server error from reader",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(&jwt.Claims{UserID: accountID}, nil)
				mockReader.EXPECT().GetByAccountID(gomock.Any(), accountID).
					Return(nil, errors.New("db error"))
			},
			expectedStatus:      http.StatusInternalServerError,
			expectedResponseKey: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewGetBalanceHandler(mockReader, mockTokenGetter)

			req := httptest.NewRequest(http.MethodGet, "/balance", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var body map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&body)
			assert.NoError(t, err)

			_, ok := body[tt.expectedResponseKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedResponseKey)
		})
	}
}
