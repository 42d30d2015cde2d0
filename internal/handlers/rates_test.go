package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-synth-exchange/internal/models"
	"github.com/sbilibin2017/gw-synth-exchange/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPublishRateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		reqBody        interface{}
		mockSetup      func(m *MockRatePublisher)
		expectedStatus int
		expectedError  string
	}{
		{
			name:    "success",
			reqBody: models.PublishRateRequest{Asset: models.SEUR, Price: decimal.RequireFromString("1.17")},
			mockSetup: func(m *MockRatePublisher) {
				m.EXPECT().
					PublishRate(gomock.Any(), models.SEUR, decimal.RequireFromString("1.17")).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "unknown asset",
			reqBody: models.PublishRateRequest{Asset: "sDOGE", Price: decimal.NewFromInt(1)},
			mockSetup: func(m *MockRatePublisher) {
				m.EXPECT().
					PublishRate(gomock.Any(), "sDOGE", decimal.NewFromInt(1)).
					Return(services.ErrUnknownAsset)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  services.ErrUnknownAsset.Error(),
		},
		{
			name:    "non-positive price",
			reqBody: models.PublishRateRequest{Asset: models.SEUR, Price: decimal.Zero},
			mockSetup: func(m *MockRatePublisher) {
				m.EXPECT().
					PublishRate(gomock.Any(), models.SEUR, gomock.Any()).
					Return(services.ErrInvalidRate)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  services.ErrInvalidRate.Error(),
		},
		{
			name:           "invalid json",
			reqBody:        `garbage`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
		{
			name:    "feed failure",
			reqBody: models.PublishRateRequest{Asset: models.SEUR, Price: decimal.NewFromInt(1)},
			mockSetup: func(m *MockRatePublisher) {
				m.EXPECT().
					PublishRate(gomock.Any(), models.SEUR, decimal.NewFromInt(1)).
					Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRatePublisher(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewPublishRateHandler(mockSvc)

			var bodyBytes []byte
			switch v := tt.reqBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/admin/rates", bytes.NewReader(bodyBytes))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedError != "" {
				var got models.RatesErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, tt.expectedError, got.Error)
				return
			}

			var got models.PublishRateResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, "Rate published", got.Message)
		})
	}
}
