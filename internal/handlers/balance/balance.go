package balance

import (
	"context"
	"errors"
	"net/http"

	"depositmart/internal/dto"
	"depositmart/internal/service/creditservice"
	"depositmart/pkg/auth"
	"depositmart/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (float64, error)
}

type BalanceHandler struct {
	creditService Service
}

func New(creditService Service) *BalanceHandler {
	return &BalanceHandler{
		creditService: creditService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current credit balance
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	credits, err := h.creditService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, creditservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Current: credits})
}
