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

const testTxid = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"

func NewExplorerMock(t *testing.T) (*ExplorerClient, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	client := NewExplorerClient(domain.CurrencyBTC, "https://btc.example/api/", httpClient)
	defer ctrl.Finish()
	return client, httpClient
}

func TestExplorerClient_GetTransaction(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		body        string
		httpErr     error
		expectedErr error
		expectErr   bool
		check       func(t *testing.T, tx *Transaction)
	}{
		{
			name:       "Confirmed transaction with outputs",
			statusCode: http.StatusOK,
			body: `{
				"txid": "` + testTxid + `",
				"status": {"confirmed": true, "block_height": 820000, "block_time": 1700000000},
				"vout": [
					{"scriptpubkey_address": "bc1qother", "value": 100},
					{"scriptpubkey_address": "bc1qexample", "value": 1500000}
				]
			}`,
			check: func(t *testing.T, tx *Transaction) {
				assert.Equal(t, testTxid, tx.Txid)
				assert.True(t, tx.Confirmed)
				assert.Equal(t, int64(820000), tx.BlockHeight)
				assert.Equal(t, time.Unix(1700000000, 0).UTC(), tx.BlockTime)
				assert.Len(t, tx.Outputs, 2)
				assert.Equal(t, "bc1qexample", tx.Outputs[1].Address)
				assert.Equal(t, int64(1500000), tx.Outputs[1].ValueSats)
			},
		},
		{
			name:       "Unconfirmed transaction has no block time",
			statusCode: http.StatusOK,
			body:       `{"txid": "` + testTxid + `", "status": {"confirmed": false}, "vout": []}`,
			check: func(t *testing.T, tx *Transaction) {
				assert.False(t, tx.Confirmed)
				assert.True(t, tx.BlockTime.IsZero())
				assert.Empty(t, tx.Outputs)
			},
		},
		{
			name:        "Transaction not found",
			statusCode:  http.StatusNotFound,
			expectedErr: ErrTxNotFound,
		},
		{
			name:       "Explorer returns server error",
			statusCode: http.StatusInternalServerError,
			expectErr:  true,
		},
		{
			name:      "Request failure",
			httpErr:   errors.New("connection refused"),
			expectErr: true,
		},
		{
			name:       "Malformed response body",
			statusCode: http.StatusOK,
			body:       `{invalid json}`,
			expectErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, httpClient := NewExplorerMock(t)

			httpClient.EXPECT().
				Get(gomock.Any(), "https://btc.example/api/tx/"+testTxid, nil).
				Return(tt.statusCode, []byte(tt.body), http.Header{}, tt.httpErr)

			tx, err := client.GetTransaction(context.Background(), testTxid)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			tt.check(t, tx)
		})
	}
}

func TestExplorerClient_GetTipHeight(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		httpErr    error
		expected   int64
		expectErr  bool
	}{
		{
			name:       "Tip height parsed",
			statusCode: http.StatusOK,
			body:       "820002\n",
			expected:   820002,
		},
		{
			name:       "Non-numeric body",
			statusCode: http.StatusOK,
			body:       "not a number",
			expectErr:  true,
		},
		{
			name:       "Explorer returns server error",
			statusCode: http.StatusBadGateway,
			expectErr:  true,
		},
		{
			name:      "Request failure",
			httpErr:   errors.New("connection refused"),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, httpClient := NewExplorerMock(t)

			httpClient.EXPECT().
				Get(gomock.Any(), "https://btc.example/api/blocks/tip/height", nil).
				Return(tt.statusCode, []byte(tt.body), http.Header{}, tt.httpErr)

			height, err := client.GetTipHeight(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, height)
		})
	}
}

func TestExplorerClient_Metadata(t *testing.T) {
	client, _ := NewExplorerMock(t)

	assert.Equal(t, domain.CurrencyBTC, client.Currency())
	assert.Equal(t, 1e8, client.UnitScale())
}

func TestRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	btc := NewMockClient(ctrl)
	btc.EXPECT().Currency().Return(domain.CurrencyBTC)
	doge := NewMockClient(ctrl)
	doge.EXPECT().Currency().Return(domain.CurrencyDOGE)

	registry := NewRegistry(btc, doge)

	client, err := registry.Client(domain.CurrencyBTC)
	assert.NoError(t, err)
	assert.Equal(t, btc, client)

	client, err = registry.Client(domain.CurrencyDOGE)
	assert.NoError(t, err)
	assert.Equal(t, doge, client)

	_, err = registry.Client(domain.CurrencyETH)
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)
}
