package deposits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"depositmart/internal/domain"
	"depositmart/internal/dto"
	"depositmart/internal/service/depositservice"
	"depositmart/internal/service/verifyservice"
	"depositmart/pkg/auth"
	"depositmart/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type DepositService interface {
	Create(ctx context.Context, userID int, currency string) (*domain.Deposit, error)
	AttachTransaction(ctx context.Context, userID, depositID int, txid string) (*domain.Deposit, error)
	Cancel(ctx context.Context, userID, depositID int) error
	GetDeposits(ctx context.Context, userID int) ([]domain.Deposit, error)
	GetCooldownStatus(ctx context.Context, userID int) (*depositservice.CooldownStatus, error)
}

type VerifyService interface {
	VerifyDeposit(ctx context.Context, userID, depositID int, txid string) (*verifyservice.Outcome, error)
	CheckConfirmations(ctx context.Context, userID, depositID int) (*verifyservice.Outcome, error)
}

type DepositHandler struct {
	depositService DepositService
	verifyService  VerifyService
}

func New(depositService DepositService, verifyService VerifyService) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
		verifyService:  verifyService,
	}
}

func toDepositDTO(d *domain.Deposit) dto.DepositResponseDTO {
	return dto.DepositResponseDTO{
		ID:                d.ID,
		Currency:          d.Currency,
		WalletAddress:     d.WalletAddress,
		Status:            d.Status,
		TransactionID:     d.TransactionID,
		Confirmations:     d.Confirmations,
		Credits:           d.Credits,
		PricingMode:       d.PricingMode,
		VerificationError: d.VerificationError,
		VerifiedAt:        d.VerifiedAt,
		CreatedAt:         d.CreatedAt,
	}
}

func depositID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// CreateDeposit godoc
//
//	@Summary		Start a new deposit
//	@Description	Reserve a receiving address for the given currency. Blocked while the cancellation cooldown is active.
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateDepositRequestDTO	true	"Deposit currency"
//	@Success		201		{object}	dto.DepositResponseDTO		"Deposit created"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		409		{object}	dto.CooldownErrorDTO		"Cooldown active"
//	@Failure		503		{object}	utils.Response				"No active wallet address"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/deposits [post]
func (h *DepositHandler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateDepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Currency == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "currency is required")
		return
	}

	deposit, err := h.depositService.Create(r.Context(), userID, req.Currency)
	if err != nil {
		var cooldown *depositservice.CooldownError
		switch {
		case errors.As(err, &cooldown):
			utils.RespondWithJSON(w, http.StatusConflict, dto.CooldownErrorDTO{
				Message:          cooldown.Error(),
				Code:             "COOLDOWN_ACTIVE",
				CooldownEndsAt:   cooldown.EndsAt,
				RemainingMinutes: cooldown.RemainingMinutes(),
			})
		case errors.Is(err, depositservice.ErrNoActiveAddress):
			utils.RespondWithCodedError(w, http.StatusServiceUnavailable, "NO_ACTIVE_ADDRESS", err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDepositDTO(deposit))
}

// GetDeposits godoc
//
//	@Summary		List own deposits
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DepositResponseDTO	"Deposits"
//	@Success		204	{object}	utils.Response			"No deposits"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/deposits [get]
func (h *DepositHandler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	deposits, err := h.depositService.GetDeposits(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch deposits")
		return
	}
	if len(deposits) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Deposits not found")
		return
	}

	response := make([]dto.DepositResponseDTO, len(deposits))
	for i := range deposits {
		response[i] = toDepositDTO(&deposits[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AttachTransaction godoc
//
//	@Summary		Attach a transaction id to a pending deposit
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Deposit id"
//	@Param			request	body		dto.AttachTransactionRequestDTO	true	"Transaction id"
//	@Success		200		{object}	dto.DepositResponseDTO			"Deposit updated"
//	@Failure		400		{object}	utils.Response					"Invalid request"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		404		{object}	utils.Response					"Deposit not found"
//	@Failure		409		{object}	utils.Response					"Deposit is not pending"
//	@Failure		422		{object}	utils.Response					"Invalid transaction id format"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/deposits/{id} [put]
func (h *DepositHandler) AttachTransaction(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := depositID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid deposit id")
		return
	}

	var req dto.AttachTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deposit, err := h.depositService.AttachTransaction(r.Context(), userID, id, req.TransactionID)
	if err != nil {
		switch {
		case errors.Is(err, depositservice.ErrDepositNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, depositservice.ErrDepositNotPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, depositservice.ErrInvalidTxidFormat):
			utils.RespondWithCodedError(w, http.StatusUnprocessableEntity, "INVALID_TXID_FORMAT", err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDepositDTO(deposit))
}

// CancelDeposit godoc
//
//	@Summary		Cancel a pending deposit
//	@Description	Cancelling arms the one-hour deposit cooldown.
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Deposit id"
//	@Success		200	{object}	utils.Response	"Deposit cancelled"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Deposit not found"
//	@Failure		409	{object}	utils.Response	"Deposit is not pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/deposits/{id} [delete]
func (h *DepositHandler) CancelDeposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := depositID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid deposit id")
		return
	}

	if err := h.depositService.Cancel(r.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, depositservice.ErrDepositNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, depositservice.ErrDepositNotPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "deposit cancelled"})
}

func outcomeStatusCode(outcome *verifyservice.Outcome) int {
	switch outcome.Status {
	case verifyservice.StatusConfirmed, verifyservice.StatusPending:
		return http.StatusOK
	case verifyservice.StatusTransient:
		return http.StatusBadGateway
	}
	switch outcome.Code {
	case verifyservice.CodeInvalidTxidFormat, verifyservice.CodeAddressMismatch:
		return http.StatusUnprocessableEntity
	case verifyservice.CodeTxidAlreadyUsed:
		return http.StatusConflict
	case verifyservice.CodeTransactionNotFound:
		return http.StatusNotFound
	case verifyservice.CodeNoActiveAddress:
		return http.StatusServiceUnavailable
	case verifyservice.CodeUnsupportedCurrency:
		return http.StatusBadRequest
	}
	return http.StatusUnprocessableEntity
}

func respondOutcome(w http.ResponseWriter, outcome *verifyservice.Outcome) {
	utils.RespondWithJSON(w, outcomeStatusCode(outcome), dto.VerifyResponseDTO{
		Success:          outcome.Status == verifyservice.StatusConfirmed,
		Status:           string(outcome.Status),
		Code:             outcome.Code,
		Reason:           outcome.Reason,
		Confirmations:    outcome.Confirmations,
		Amount:           outcome.Amount,
		CreditsAdded:     outcome.CreditsAdded,
		NewBalance:       outcome.NewBalance,
		PricingMode:      outcome.PricingMode,
		CheckedAddresses: outcome.CheckedAddresses,
	})
}

func respondVerifyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, verifyservice.ErrDepositNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, verifyservice.ErrDepositCancelled):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, verifyservice.ErrNoTransactionID):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// VerifyTransaction godoc
//
//	@Summary		Verify a deposit's transaction on-chain
//	@Description	Look the transaction up on the public ledger, match it against registered addresses and credit the deposit when the confirmation threshold is reached.
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Deposit id"
//	@Param			request	body		dto.VerifyTransactionRequestDTO	true	"Transaction id"
//	@Success		200		{object}	dto.VerifyResponseDTO			"Verification outcome"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		404		{object}	dto.VerifyResponseDTO			"Transaction not found on chain"
//	@Failure		409		{object}	dto.VerifyResponseDTO			"Transaction id already used"
//	@Failure		422		{object}	dto.VerifyResponseDTO			"Rejected"
//	@Failure		502		{object}	dto.VerifyResponseDTO			"Explorer unavailable, retryable"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/deposits/{id}/verify [post]
func (h *DepositHandler) VerifyTransaction(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := depositID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid deposit id")
		return
	}

	var req dto.VerifyTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := h.verifyService.VerifyDeposit(r.Context(), userID, id, req.TransactionID)
	if err != nil {
		respondVerifyError(w, err)
		return
	}
	respondOutcome(w, outcome)
}

// CheckConfirmations godoc
//
//	@Summary		Re-check confirmations for a deposit
//	@Description	Re-runs verification for a deposit that already carries a transaction id; completes the deposit on reaching the threshold.
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Deposit id"
//	@Success		200	{object}	dto.VerifyResponseDTO	"Verification outcome"
//	@Failure		400	{object}	utils.Response			"No transaction id attached"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Deposit not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/deposits/{id}/confirmations [get]
func (h *DepositHandler) CheckConfirmations(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := depositID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid deposit id")
		return
	}

	outcome, err := h.verifyService.CheckConfirmations(r.Context(), userID, id)
	if err != nil {
		respondVerifyError(w, err)
		return
	}
	respondOutcome(w, outcome)
}

// GetCooldownStatus godoc
//
//	@Summary		Get deposit cooldown status
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CooldownStatusResponseDTO	"Cooldown status"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/user/cooldown [get]
func (h *DepositHandler) GetCooldownStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	status, err := h.depositService.GetCooldownStatus(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CooldownStatusResponseDTO{
		HasCooldown:      status.HasCooldown,
		CooldownEndsAt:   status.CooldownEndsAt,
		RemainingMinutes: status.RemainingMinutes,
	})
}
