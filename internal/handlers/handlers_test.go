package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "depositmart/docs"
	"depositmart/internal/listener"
	"depositmart/internal/service"
	"depositmart/pkg/auth"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	h := New(&service.Services{}, &listener.Service{})
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.DepositHandler)
	assert.NotNil(t, h.BalanceHandler)
	assert.NotNil(t, h.AdminHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockDepositHandler := NewMockDepositHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockDepositHandler.EXPECT().CreateDeposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockDepositHandler.EXPECT().GetDeposits(gomock.Any(), gomock.Any()).AnyTimes()
	mockDepositHandler.EXPECT().AttachTransaction(gomock.Any(), gomock.Any()).AnyTimes()
	mockDepositHandler.EXPECT().CancelDeposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockDepositHandler.EXPECT().VerifyTransaction(gomock.Any(), gomock.Any()).AnyTimes()
	mockDepositHandler.EXPECT().CheckConfirmations(gomock.Any(), gomock.Any()).AnyTimes()
	mockDepositHandler.EXPECT().GetCooldownStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().ManualCredit(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().RetryVerification(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().StartListener(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().StopListener(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().ListenerStatus(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		DepositHandler: mockDepositHandler,
		BalanceHandler: mockBalanceHandler,
		AdminHandler:   mockAdminHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"POST", "/api/user/deposits", http.StatusUnauthorized},
		{"GET", "/api/user/deposits", http.StatusUnauthorized},
		{"PUT", "/api/user/deposits/1", http.StatusUnauthorized},
		{"DELETE", "/api/user/deposits/1", http.StatusUnauthorized},
		{"POST", "/api/user/deposits/1/verify", http.StatusUnauthorized},
		{"GET", "/api/user/deposits/1/confirmations", http.StatusUnauthorized},
		{"GET", "/api/user/cooldown", http.StatusUnauthorized},
		{"GET", "/api/user/balance", http.StatusUnauthorized},
		{"POST", "/api/admin/credits", http.StatusUnauthorized},
		{"POST", "/api/admin/verifications/1/retry", http.StatusUnauthorized},
		{"POST", "/api/admin/listener/start", http.StatusUnauthorized},
		{"DELETE", "/api/admin/listener/stop", http.StatusUnauthorized},
		{"GET", "/api/admin/listener/status", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestListenerStopMethod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdminHandler := NewMockAdminHandler(ctrl)
	mockAdminHandler.EXPECT().StopListener(gomock.Any(), gomock.Any())

	h := &Handlers{
		AuthHandler:    NewMockAuthHandler(ctrl),
		DepositHandler: NewMockDepositHandler(ctrl),
		BalanceHandler: NewMockBalanceHandler(ctrl),
		AdminHandler:   mockAdminHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	jwtService := &auth.JWTService{}
	token, err := jwtService.GenerateJWT(1, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/listener/stop", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/admin/listener/stop", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
