package domain

import "time"

const (
	CurrencyBTC  string = "BTC"
	CurrencyDOGE string = "DOGE"
	CurrencyETH  string = "ETH"
)

// Pricing modes recorded when a deposit credit amount is computed.
const (
	PricingHistorical string = "historical"
	PricingSpot       string = "spot"
	PricingRaw        string = "raw"
)

type User struct {
	ID                     int        `db:"id"`
	Login                  string     `db:"login"`
	PasswordHash           string     `db:"password_hash"`
	Credits                float64    `db:"credits"`
	LastCancelledDepositAt *time.Time `db:"last_cancelled_deposit_at"`
	CreatedAt              time.Time  `db:"created_at"`
}

type WalletAddress struct {
	ID        int       `db:"id"`
	Currency  string    `db:"currency"`
	Address   string    `db:"address"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
}

type Deposit struct {
	ID                int        `db:"id"`
	UserID            int        `db:"user_id"`
	Currency          string     `db:"currency"`
	WalletAddress     string     `db:"wallet_address"`
	Status            string     `db:"status"`
	TransactionID     *string    `db:"transaction_id"`
	Confirmations     int        `db:"confirmations"`
	Credits           float64    `db:"credits"`
	PricingMode       *string    `db:"pricing_mode"`
	VerifiedAt        *time.Time `db:"verified_at"`
	VerificationError *string    `db:"verification_error"`
	Notes             *string    `db:"notes"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

// VerificationRecord is the durable state for one observed on-chain
// transaction, identified by (txid, currency). The pull path and the push
// listener both write through the same record.
type VerificationRecord struct {
	ID             string     `db:"id"`
	Txid           string     `db:"txid"`
	Currency       string     `db:"currency"`
	MatchedAddress string     `db:"matched_address"`
	AmountSats     int64      `db:"amount_sats"`
	AmountFloat    float64    `db:"amount_float"`
	Confirmed      bool       `db:"confirmed"`
	ConfirmedAt    *time.Time `db:"confirmed_at"`
	Credited       bool       `db:"credited"`
	CreditedAt     *time.Time `db:"credited_at"`
	PricingMode    *string    `db:"pricing_mode"`
	FirstSeen      time.Time  `db:"first_seen"`
	LastChecked    time.Time  `db:"last_checked"`
	RetryCount     int        `db:"retry_count"`
	ErrorMessage   *string    `db:"error_message"`
	Meta           []byte     `db:"meta"`
}

type ManualCredit struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Txid      string    `db:"txid"`
	Amount    float64   `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
}
