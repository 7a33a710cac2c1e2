package dto

type ManualCreditRequestDTO struct {
	UserID        int     `json:"userId" example:"1"`
	TransactionID string  `json:"transactionId" example:"4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"`
	Amount        float64 `json:"amount" example:"100"`
}

type ManualCreditResponseDTO struct {
	NewBalance float64 `json:"newBalance" example:"600.5"`
}

type ListenerStatusResponseDTO struct {
	Running          bool `json:"running" example:"true"`
	Connected        bool `json:"connected" example:"true"`
	TrackedAddresses int  `json:"trackedAddresses" example:"3"`
}
