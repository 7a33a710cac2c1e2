package validate

import (
	"regexp"
	"strings"

	"depositmart/internal/domain"
)

var (
	btcFamilyTxid = regexp.MustCompile(`^[0-9a-f]{64}$`)
	ethTxid       = regexp.MustCompile(`^0x[0-9a-f]{64}$`)
)

// NormalizeTxid lowercases and trims a user-submitted transaction id. The
// normalized form is the idempotency key for crediting.
func NormalizeTxid(txid string) string {
	return strings.ToLower(strings.TrimSpace(txid))
}

// IsTxid reports whether a normalized txid is well-formed for the currency.
func IsTxid(currency, txid string) bool {
	switch currency {
	case domain.CurrencyBTC, domain.CurrencyDOGE:
		return btcFamilyTxid.MatchString(txid)
	case domain.CurrencyETH:
		return ethTxid.MatchString(txid)
	default:
		return false
	}
}
