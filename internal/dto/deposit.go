package dto

import "time"

type CreateDepositRequestDTO struct {
	Currency string `json:"currency" example:"BTC"`
}

type DepositResponseDTO struct {
	ID                int        `json:"id" example:"1"`
	Currency          string     `json:"currency" example:"BTC"`
	WalletAddress     string     `json:"walletAddress" example:"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"`
	Status            string     `json:"status" example:"pending"`
	TransactionID     *string    `json:"transactionId,omitempty"`
	Confirmations     int        `json:"confirmations" example:"0"`
	Credits           float64    `json:"credits,omitempty" example:"125.5"`
	PricingMode       *string    `json:"pricingMode,omitempty" example:"historical"`
	VerificationError *string    `json:"verificationError,omitempty"`
	VerifiedAt        *time.Time `json:"verifiedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt" example:"2024-12-09T16:09:57+03:00"`
}

type AttachTransactionRequestDTO struct {
	TransactionID string `json:"transactionId" example:"4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"`
}

type VerifyTransactionRequestDTO struct {
	TransactionID string `json:"transactionId" example:"4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"`
}

type VerifyResponseDTO struct {
	Success          bool     `json:"success" example:"true"`
	Status           string   `json:"status" example:"confirmed"`
	Code             string   `json:"code,omitempty" example:"ALREADY_CREDITED"`
	Reason           string   `json:"reason,omitempty"`
	Confirmations    int      `json:"confirmations" example:"2"`
	Amount           float64  `json:"amount,omitempty" example:"0.015"`
	CreditsAdded     float64  `json:"creditsAdded,omitempty" example:"125.5"`
	NewBalance       float64  `json:"newBalance,omitempty" example:"625.5"`
	PricingMode      string   `json:"pricingMode,omitempty" example:"historical"`
	CheckedAddresses []string `json:"checkedAddresses,omitempty"`
}

type CooldownStatusResponseDTO struct {
	HasCooldown      bool       `json:"hasCooldown" example:"true"`
	CooldownEndsAt   *time.Time `json:"cooldownEndsAt,omitempty"`
	RemainingMinutes int        `json:"remainingMinutes" example:"30"`
}

type CooldownErrorDTO struct {
	Message          string    `json:"message"`
	Code             string    `json:"code" example:"COOLDOWN_ACTIVE"`
	CooldownEndsAt   time.Time `json:"cooldownEndsAt"`
	RemainingMinutes int       `json:"remainingMinutes" example:"30"`
}

type BalanceResponseDTO struct {
	Current float64 `json:"current" example:"500.5"`
}
