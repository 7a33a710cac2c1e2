package ledger

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"depositmart/internal/domain"
	"depositmart/pkg/clients"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewPriceMock(t *testing.T) (*PriceClient, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	client := NewPriceClient("https://prices.example/v3/", httpClient)
	defer ctrl.Finish()
	return client, httpClient
}

func TestPriceClient_HistoricalUSD(t *testing.T) {
	at := time.Date(2023, 11, 14, 12, 30, 0, 0, time.UTC)
	historyURL := "https://prices.example/v3/coins/bitcoin/history?date=14-11-2023"

	tests := []struct {
		name       string
		currency   string
		statusCode int
		body       string
		httpErr    error
		expected   float64
		expectErr  bool
	}{
		{
			name:       "Historical price resolved",
			currency:   domain.CurrencyBTC,
			statusCode: http.StatusOK,
			body:       `{"market_data":{"current_price":{"usd":36500.25,"eur":34000.0}}}`,
			expected:   36500.25,
		},
		{
			name:      "Unsupported currency fails before the request",
			currency:  "XMR",
			expectErr: true,
		},
		{
			name:       "Missing usd price",
			currency:   domain.CurrencyBTC,
			statusCode: http.StatusOK,
			body:       `{"market_data":{"current_price":{"eur":34000.0}}}`,
			expectErr:  true,
		},
		{
			name:       "API returns server error",
			currency:   domain.CurrencyBTC,
			statusCode: http.StatusInternalServerError,
			expectErr:  true,
		},
		{
			name:      "Request failure",
			currency:  domain.CurrencyBTC,
			httpErr:   errors.New("connection refused"),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, httpClient := NewPriceMock(t)

			if tt.currency == domain.CurrencyBTC {
				httpClient.EXPECT().
					Get(gomock.Any(), historyURL, nil).
					Return(tt.statusCode, []byte(tt.body), http.Header{}, tt.httpErr)
			}

			price, err := client.HistoricalUSD(context.Background(), tt.currency, at)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, price, 1e-9)
		})
	}
}

func TestPriceClient_SpotUSD(t *testing.T) {
	spotURL := "https://prices.example/v3/simple/price?ids=dogecoin&vs_currencies=usd"

	tests := []struct {
		name       string
		currency   string
		statusCode int
		body       string
		httpErr    error
		expected   float64
		expectErr  bool
	}{
		{
			name:       "Spot price resolved",
			currency:   domain.CurrencyDOGE,
			statusCode: http.StatusOK,
			body:       `{"dogecoin":{"usd":0.083}}`,
			expected:   0.083,
		},
		{
			name:      "Unsupported currency fails before the request",
			currency:  "XMR",
			expectErr: true,
		},
		{
			name:       "Zero price rejected",
			currency:   domain.CurrencyDOGE,
			statusCode: http.StatusOK,
			body:       `{"dogecoin":{"usd":0}}`,
			expectErr:  true,
		},
		{
			name:       "Malformed response body",
			currency:   domain.CurrencyDOGE,
			statusCode: http.StatusOK,
			body:       `{invalid json}`,
			expectErr:  true,
		},
		{
			name:      "Request failure",
			currency:  domain.CurrencyDOGE,
			httpErr:   errors.New("connection refused"),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, httpClient := NewPriceMock(t)

			if tt.currency == domain.CurrencyDOGE {
				httpClient.EXPECT().
					Get(gomock.Any(), spotURL, nil).
					Return(tt.statusCode, []byte(tt.body), http.Header{}, tt.httpErr)
			}

			price, err := client.SpotUSD(context.Background(), tt.currency)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, price, 1e-9)
		})
	}
}
