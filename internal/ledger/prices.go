package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"depositmart/internal/domain"
	"depositmart/pkg/clients"
)

// asset ids as the price API knows them
var priceAssetIDs = map[string]string{
	domain.CurrencyBTC:  "bitcoin",
	domain.CurrencyDOGE: "dogecoin",
	domain.CurrencyETH:  "ethereum",
}

// PriceClient resolves USD prices from a coingecko-compatible API.
// Historical and spot lookups fail independently; the verification engine
// owns the fallback chain.
type PriceClient struct {
	baseURL string
	client  clients.HTTPClientI
}

func NewPriceClient(baseURL string, client clients.HTTPClientI) *PriceClient {
	return &PriceClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

func (p *PriceClient) assetID(currency string) (string, error) {
	id, ok := priceAssetIDs[currency]
	if !ok {
		return "", ErrUnsupportedCurrency
	}
	return id, nil
}

type historyResponse struct {
	MarketData struct {
		CurrentPrice map[string]float64 `json:"current_price"`
	} `json:"market_data"`
}

// HistoricalUSD returns the asset's USD price on the given date.
func (p *PriceClient) HistoricalUSD(ctx context.Context, currency string, at time.Time) (float64, error) {
	id, err := p.assetID(currency)
	if err != nil {
		return 0, err
	}

	url := fmt.Sprintf("%s/coins/%s/history?date=%s", p.baseURL, id, at.UTC().Format("02-01-2006"))
	statusCode, body, _, err := p.client.Get(ctx, url, nil)
	if err != nil {
		return 0, fmt.Errorf("historical price request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return 0, fmt.Errorf("historical price returned status %d", statusCode)
	}

	var parsed historyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("can't parse historical price response: %w", err)
	}
	price, ok := parsed.MarketData.CurrentPrice["usd"]
	if !ok || price <= 0 {
		return 0, fmt.Errorf("no usd price in historical response for %s", currency)
	}
	return price, nil
}

// SpotUSD returns the asset's current USD price.
func (p *PriceClient) SpotUSD(ctx context.Context, currency string) (float64, error) {
	id, err := p.assetID(currency)
	if err != nil {
		return 0, err
	}

	url := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd", p.baseURL, id)
	statusCode, body, _, err := p.client.Get(ctx, url, nil)
	if err != nil {
		return 0, fmt.Errorf("spot price request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return 0, fmt.Errorf("spot price returned status %d", statusCode)
	}

	var parsed map[string]map[string]float64
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("can't parse spot price response: %w", err)
	}
	price, ok := parsed[id]["usd"]
	if !ok || price <= 0 {
		return 0, fmt.Errorf("no usd price in spot response for %s", currency)
	}
	return price, nil
}
