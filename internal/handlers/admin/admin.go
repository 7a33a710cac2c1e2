package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"depositmart/internal/dto"
	"depositmart/internal/listener"
	"depositmart/internal/service/creditservice"
	"depositmart/internal/service/verifyservice"
	"depositmart/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type CreditService interface {
	CreditManual(ctx context.Context, userID int, txid string, amount float64) (float64, error)
}

type VerifyService interface {
	Retry(ctx context.Context, recordID string) (*verifyservice.Outcome, error)
}

type ListenerService interface {
	Start(ctx context.Context) error
	Stop()
	Status() listener.Status
}

type AdminHandler struct {
	creditService   CreditService
	verifyService   VerifyService
	listenerService ListenerService
}

func New(creditService CreditService, verifyService VerifyService, listenerService ListenerService) *AdminHandler {
	return &AdminHandler{
		creditService:   creditService,
		verifyService:   verifyService,
		listenerService: listenerService,
	}
}

// ManualCredit godoc
//
//	@Summary		Credit a user manually for an out-of-band payment
//	@Description	Consumes the transaction id from the same uniqueness set as automatic verification, so a txid credited here can never be credited again through a deposit.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ManualCreditRequestDTO	true	"Manual credit payload"
//	@Success		200		{object}	dto.ManualCreditResponseDTO	"Credit applied"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"User not found"
//	@Failure		409		{object}	utils.Response				"Transaction id already used"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/credits [post]
func (h *AdminHandler) ManualCredit(w http.ResponseWriter, r *http.Request) {
	var req dto.ManualCreditRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID <= 0 || req.TransactionID == "" || req.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "userId, transactionId and a positive amount are required")
		return
	}

	newBalance, err := h.creditService.CreditManual(r.Context(), req.UserID, req.TransactionID, req.Amount)
	if err != nil {
		var conflict *creditservice.ConflictError
		switch {
		case errors.As(err, &conflict):
			utils.RespondWithCodedError(w, http.StatusConflict, "TXID_ALREADY_USED", conflict.Error())
		case errors.Is(err, creditservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ManualCreditResponseDTO{NewBalance: newBalance})
}

// RetryVerification godoc
//
//	@Summary		Retry verification for a recorded transaction
//	@Description	Re-runs the verification pass for an existing record. Credited records return a no-op success.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Verification record id"
//	@Success		200	{object}	dto.VerifyResponseDTO	"Verification outcome"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Record not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/verifications/{id}/retry [post]
func (h *AdminHandler) RetryVerification(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "id")
	if recordID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "record id is required")
		return
	}

	outcome, err := h.verifyService.Retry(r.Context(), recordID)
	if err != nil {
		if errors.Is(err, verifyservice.ErrRecordNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyResponseDTO{
		Success:       outcome.Status == verifyservice.StatusConfirmed,
		Status:        string(outcome.Status),
		Code:          outcome.Code,
		Reason:        outcome.Reason,
		Confirmations: outcome.Confirmations,
		Amount:        outcome.Amount,
		CreditsAdded:  outcome.CreditsAdded,
		NewBalance:    outcome.NewBalance,
		PricingMode:   outcome.PricingMode,
	})
}

// StartListener godoc
//
//	@Summary		Start the push ingestion listener
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ListenerStatusResponseDTO	"Listener status"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		409	{object}	utils.Response					"Listener cannot start"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/listener/start [post]
func (h *AdminHandler) StartListener(w http.ResponseWriter, r *http.Request) {
	if err := h.listenerService.Start(r.Context()); err != nil {
		switch {
		case errors.Is(err, listener.ErrNotConfigured), errors.Is(err, listener.ErrNoTrackedAddresses):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	h.respondStatus(w)
}

// StopListener godoc
//
//	@Summary		Stop the push ingestion listener
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ListenerStatusResponseDTO	"Listener status"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Router			/api/admin/listener/stop [delete]
func (h *AdminHandler) StopListener(w http.ResponseWriter, r *http.Request) {
	h.listenerService.Stop()
	h.respondStatus(w)
}

// ListenerStatus godoc
//
//	@Summary		Get push ingestion listener status
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ListenerStatusResponseDTO	"Listener status"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Router			/api/admin/listener/status [get]
func (h *AdminHandler) ListenerStatus(w http.ResponseWriter, r *http.Request) {
	h.respondStatus(w)
}

func (h *AdminHandler) respondStatus(w http.ResponseWriter) {
	status := h.listenerService.Status()
	utils.RespondWithJSON(w, http.StatusOK, dto.ListenerStatusResponseDTO{
		Running:          status.Running,
		Connected:        status.Connected,
		TrackedAddresses: status.TrackedAddresses,
	})
}
