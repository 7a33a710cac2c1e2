package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"depositmart/internal/dto"
	"depositmart/internal/listener"
	"depositmart/internal/service/creditservice"
	"depositmart/internal/service/verifyservice"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AdminHandler, *MockCreditService, *MockVerifyService, *MockListenerService) {
	ctrl := gomock.NewController(t)
	creditService := NewMockCreditService(ctrl)
	verifyService := NewMockVerifyService(ctrl)
	listenerService := NewMockListenerService(ctrl)
	handler := New(creditService, verifyService, listenerService)
	defer ctrl.Finish()
	return handler, creditService, verifyService, listenerService
}

const testTxid = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"

func withRecordID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestManualCreditHandler(t *testing.T) {
	handler, creditService, _, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Credit applied",
			body: `{"userId":1,"transactionId":"` + testTxid + `","amount":100}`,
			prepareMock: func() {
				creditService.EXPECT().
					CreditManual(gomock.Any(), 1, testTxid, 100.0).
					Return(600.5, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `not json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Missing user id",
			body:          `{"transactionId":"` + testTxid + `","amount":100}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "positive amount",
		},
		{
			name:          "Non-positive amount",
			body:          `{"userId":1,"transactionId":"` + testTxid + `","amount":0}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "positive amount",
		},
		{
			name: "Txid already used",
			body: `{"userId":1,"transactionId":"` + testTxid + `","amount":100}`,
			prepareMock: func() {
				creditService.EXPECT().
					CreditManual(gomock.Any(), 1, testTxid, 100.0).
					Return(0.0, &creditservice.ConflictError{Txid: testTxid, Source: "deposit"})
			},
			expectedCode:  http.StatusConflict,
			expectedError: "TXID_ALREADY_USED",
		},
		{
			name: "User not found",
			body: `{"userId":9,"transactionId":"` + testTxid + `","amount":100}`,
			prepareMock: func() {
				creditService.EXPECT().
					CreditManual(gomock.Any(), 9, testTxid, 100.0).
					Return(0.0, creditservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "user not found",
		},
		{
			name: "Internal server error",
			body: `{"userId":1,"transactionId":"` + testTxid + `","amount":100}`,
			prepareMock: func() {
				creditService.EXPECT().
					CreditManual(gomock.Any(), 1, testTxid, 100.0).
					Return(0.0, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/credits", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.ManualCredit(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.ManualCreditResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.InDelta(t, 600.5, body.NewBalance, 1e-9)
			}
		})
	}
}

func TestRetryVerificationHandler(t *testing.T) {
	handler, _, verifyService, _ := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Retry confirms and credits",
			id:   "rec-1",
			prepareMock: func() {
				verifyService.EXPECT().
					Retry(gomock.Any(), "rec-1").
					Return(&verifyservice.Outcome{
						Status:        verifyservice.StatusConfirmed,
						Confirmations: 2,
						CreditsAdded:  1200,
						NewBalance:    1700.5,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Credited record is a no-op success",
			id:   "rec-1",
			prepareMock: func() {
				verifyService.EXPECT().
					Retry(gomock.Any(), "rec-1").
					Return(&verifyservice.Outcome{
						Status: verifyservice.StatusConfirmed,
						Code:   verifyservice.CodeAlreadyCredited,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Missing record id",
			id:            "",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "record id is required",
		},
		{
			name: "Record not found",
			id:   "missing",
			prepareMock: func() {
				verifyService.EXPECT().
					Retry(gomock.Any(), "missing").
					Return(nil, verifyservice.ErrRecordNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "verification record not found",
		},
		{
			name: "Internal server error",
			id:   "rec-1",
			prepareMock: func() {
				verifyService.EXPECT().
					Retry(gomock.Any(), "rec-1").
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withRecordID(httptest.NewRequest(http.MethodPost, "/verifications/retry", nil), tt.id)
			w := httptest.NewRecorder()

			handler.RetryVerification(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestStartListenerHandler(t *testing.T) {
	handler, _, _, listenerService := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Listener started",
			prepareMock: func() {
				listenerService.EXPECT().Start(gomock.Any()).Return(nil)
				listenerService.EXPECT().Status().Return(listener.Status{
					Running:          true,
					Connected:        true,
					TrackedAddresses: 3,
				})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Push feed not configured",
			prepareMock: func() {
				listenerService.EXPECT().Start(gomock.Any()).Return(listener.ErrNotConfigured)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "push feed url not configured",
		},
		{
			name: "No addresses to track",
			prepareMock: func() {
				listenerService.EXPECT().Start(gomock.Any()).Return(listener.ErrNoTrackedAddresses)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "no active wallet addresses",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				listenerService.EXPECT().Start(gomock.Any()).Return(errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/listener/start", nil)
			w := httptest.NewRecorder()

			handler.StartListener(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.ListenerStatusResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.True(t, body.Running)
				assert.Equal(t, 3, body.TrackedAddresses)
			}
		})
	}
}

func TestStopListenerHandler(t *testing.T) {
	handler, _, _, listenerService := NewMock(t)

	listenerService.EXPECT().Stop()
	listenerService.EXPECT().Status().Return(listener.Status{})

	r := httptest.NewRequest(http.MethodDelete, "/listener/stop", nil)
	w := httptest.NewRecorder()

	handler.StopListener(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.ListenerStatusResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.False(t, body.Running)
}

func TestListenerStatusHandler(t *testing.T) {
	handler, _, _, listenerService := NewMock(t)

	listenerService.EXPECT().Status().Return(listener.Status{
		Running:          true,
		Connected:        false,
		TrackedAddresses: 2,
	})

	r := httptest.NewRequest(http.MethodGet, "/listener/status", nil)
	w := httptest.NewRecorder()

	handler.ListenerStatus(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.ListenerStatusResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.True(t, body.Running)
	assert.False(t, body.Connected)
	assert.Equal(t, 2, body.TrackedAddresses)
}
