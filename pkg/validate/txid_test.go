package validate

import (
	"strings"
	"testing"

	"depositmart/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTxid(t *testing.T) {
	assert.Equal(t, "abc123", NormalizeTxid("  ABC123 "))
	assert.Equal(t, "0xdeadbeef", NormalizeTxid("0xDEADBEEF"))
}

func TestIsTxid(t *testing.T) {
	validHex := strings.Repeat("ab12", 16)

	tests := []struct {
		name     string
		currency string
		txid     string
		want     bool
	}{
		{"Valid BTC txid", domain.CurrencyBTC, validHex, true},
		{"Valid DOGE txid", domain.CurrencyDOGE, validHex, true},
		{"Valid ETH txid", domain.CurrencyETH, "0x" + validHex, true},
		{"Non-hex characters", domain.CurrencyBTC, strings.Repeat("zz", 32), false},
		{"Too short", domain.CurrencyBTC, "abcd", false},
		{"Too long", domain.CurrencyBTC, validHex + "ab", false},
		{"Uppercase rejected before normalization", domain.CurrencyBTC, strings.ToUpper(validHex), false},
		{"ETH txid without prefix", domain.CurrencyETH, validHex, false},
		{"BTC txid with ETH prefix", domain.CurrencyBTC, "0x" + validHex, false},
		{"Unknown currency", "XRP", validHex, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTxid(tt.currency, tt.txid))
		})
	}
}
