package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mehrbod2002/capitalmarket/internal/config"
	"github.com/mehrbod2002/capitalmarket/internal/middleware"
	"github.com/mehrbod2002/capitalmarket/internal/models"
	"github.com/mehrbod2002/capitalmarket/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubWithdrawals struct {
	requestErr error
	updateErr  error
	gotUpdate  service.StatusUpdate
}

func (s *stubWithdrawals) RequestWithdrawal(_ context.Context, req service.WithdrawalRequest) (*service.WithdrawalReceipt, error) {
	if s.requestErr != nil {
		return nil, s.requestErr
	}
	return &service.WithdrawalReceipt{ID: "tx-1", Date: "March 3, 2026", WithdrawalFee: 10}, nil
}

func (s *stubWithdrawals) SubmitFeePayment(context.Context, service.FeePayment) (*service.FeePaymentReceipt, error) {
	return &service.FeePaymentReceipt{WithdrawalID: "tx-1", Amount: 10}, nil
}

func (s *stubWithdrawals) ConfirmFeePayment(context.Context, string, string) error { return nil }

func (s *stubWithdrawals) UpdateStatus(_ context.Context, req service.StatusUpdate) error {
	s.gotUpdate = req
	return s.updateErr
}

func (s *stubWithdrawals) GetHistory(context.Context, string) ([]models.WithdrawalEntry, error) {
	return []models.WithdrawalEntry{}, nil
}

type stubPlans struct{ err error }

func (s *stubPlans) PurchasePlan(_ context.Context, req service.PlanPurchase) (*models.InvestmentEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.InvestmentEntry{ID: "p1", Plan: req.Plan, Status: models.PackageActivated, Amount: 50}, nil
}

type stubUsers struct{ got service.ProfileInput }

func (s *stubUsers) UpdateProfile(_ context.Context, in service.ProfileInput) (*models.User, error) {
	s.got = in
	return &models.User{Email: in.Email}, nil
}

type stubKYC struct{}

func (stubKYC) SubmitKYC(context.Context, service.KYCSubmission) (float64, error) { return 25, nil }
func (stubKYC) ReviewKYC(context.Context, string, string) error { return nil }

type stubSettings struct{ saved *models.Settings }

func (s *stubSettings) GetSettings(context.Context) (*models.Settings, error) {
	if s.saved != nil {
		return s.saved, nil
	}
	return models.DefaultSettings(), nil
}

func (s *stubSettings) UpdateSettings(_ context.Context, kycFee, rate float64) (*models.Settings, error) {
	if rate <= 0 || rate >= 1 {
		return nil, service.ErrInvalidSettings
	}
	s.saved = &models.Settings{KYCFee: kycFee, WithdrawalFeeRate: rate}
	return s.saved, nil
}

type stubLogs struct{ actions []string }

func (s *stubLogs) LogAction(_ context.Context, _, action, _, _ string, _ map[string]interface{}) error {
	s.actions = append(s.actions, action)
	return nil
}

func (s *stubLogs) GetAllLogs(context.Context, int, int) ([]*models.LogEntry, error) {
	return []*models.LogEntry{}, nil
}

func (s *stubLogs) GetLogsByUserEmail(context.Context, string, int, int) ([]*models.LogEntry, error) {
	return []*models.LogEntry{}, nil
}

type stubAddresses struct{}

func (stubAddresses) GetAddresses(context.Context) (*models.DepositAddresses, error) {
	return nil, service.ErrAddressesMissing
}

type stubAdmins struct{ admin *models.AdminAccount }

func (s *stubAdmins) SaveAdmin(context.Context, *models.AdminAccount) error { return nil }

func (s *stubAdmins) GetAdminByUsername(_ context.Context, username string) (*models.AdminAccount, error) {
	if s.admin != nil && s.admin.Username == username {
		return s.admin, nil
	}
	return nil, nil
}

type testServer struct {
	router      *gin.Engine
	cfg         *config.Config
	withdrawals *stubWithdrawals
	plans       *stubPlans
	users       *stubUsers
	settings    *stubSettings
	logs        *stubLogs
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	ts := &testServer{
		router:      gin.New(),
		cfg:         &config.Config{JWTSecret: "test-secret"},
		withdrawals: &stubWithdrawals{},
		plans:       &stubPlans{},
		users:       &stubUsers{},
		settings:    &stubSettings{},
		logs:        &stubLogs{},
	}
	SetupRoutes(ts.router, ts.cfg, Services{
		Withdrawals: ts.withdrawals,
		Plans:       ts.plans,
		Users:       ts.users,
		KYC:         stubKYC{},
		Settings:    ts.settings,
		Logs:        ts.logs,
		Addresses:   stubAddresses{},
		AdminRepo:   &stubAdmins{admin: &models.AdminAccount{Username: "root", Password: string(hash), AccountType: "admin"}},
	}, nil)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	var resp Response
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func (ts *testServer) adminToken(t *testing.T) string {
	token, err := middleware.GenerateAdminJWT("root", ts.cfg)
	require.NoError(t, err)
	return token
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrMissingFields, http.StatusBadRequest},
		{service.ErrInvalidAmount, http.StatusBadRequest},
		{service.ErrUserNotFound, http.StatusNotFound},
		{service.ErrWithdrawalNotFound, http.StatusNotFound},
		{service.ErrKYCRequired, http.StatusUnprocessableEntity},
		{service.ErrInsufficientBalance, http.StatusUnprocessableEntity},
		{service.ErrWithdrawalFinalized, http.StatusConflict},
		{service.ErrFeeNotDue, http.StatusConflict},
		{errors.New("mongo: connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestRequestWithdrawalHandler(t *testing.T) {
	ts := newTestServer(t)

	w, resp := ts.do(t, http.MethodPost, "/api/v1/withdrawals", map[string]interface{}{
		"email": "jane@example.com", "amount": "100", "withdrawMethod": "Bitcoin", "transactionStatus": "pending",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "tx-1", data["id"])
	assert.Equal(t, 10.0, data["withdrawalFee"])
	assert.Equal(t, []string{"WITHDRAWAL_REQUESTED"}, ts.logs.actions)
}

func TestRequestWithdrawalHandlerErrors(t *testing.T) {
	ts := newTestServer(t)

	ts.withdrawals.requestErr = service.ErrKYCRequired
	w, resp := ts.do(t, http.MethodPost, "/api/v1/withdrawals", map[string]interface{}{"email": "jane@example.com", "amount": 5}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, service.ErrKYCRequired.Error(), resp.Message)

	ts.withdrawals.requestErr = errors.New("boom")
	w, resp = ts.do(t, http.MethodPost, "/api/v1/withdrawals", map[string]interface{}{"email": "jane@example.com", "amount": 5}, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, resp.Message, "boom")
	assert.Empty(t, ts.logs.actions)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/withdrawals", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusRequiresAdmin(t *testing.T) {
	ts := newTestServer(t)
	body := map[string]interface{}{"email": "jane@example.com", "transactionId": "tx-1", "newStatus": "success"}

	w, _ := ts.do(t, http.MethodPost, "/api/v1/admin/withdrawals/status", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, resp := ts.do(t, http.MethodPost, "/api/v1/admin/withdrawals/status", body, ts.adminToken(t))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Transaction status updated successfully", resp.Message)
	assert.Equal(t, "tx-1", ts.withdrawals.gotUpdate.TransactionID)
	assert.Nil(t, ts.withdrawals.gotUpdate.Amount)

	ts.withdrawals.updateErr = service.ErrWithdrawalFinalized
	w, _ = ts.do(t, http.MethodPost, "/api/v1/admin/withdrawals/status", body, ts.adminToken(t))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPurchasePlanHandler(t *testing.T) {
	ts := newTestServer(t)

	w, resp := ts.do(t, http.MethodPost, "/api/v1/plans/purchase", map[string]interface{}{
		"email": "jane@example.com", "plan": "Gold", "amount": 50,
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "plan added", resp.Message)

	ts.plans.err = service.ErrInsufficientBalance
	w, resp = ts.do(t, http.MethodPost, "/api/v1/plans/purchase", map[string]interface{}{
		"email": "jane@example.com", "plan": "Gold", "amount": 50,
	}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Insufficient balance", resp.Message)
}

func TestUpdateUserHandlerPassesLooseNumbers(t *testing.T) {
	ts := newTestServer(t)

	w, _ := ts.do(t, http.MethodPost, "/api/v1/admin/users/update", map[string]interface{}{
		"email": "jane@example.com", "tradingBalance": "12.5", "totalWon": nil, "name": "Jane",
	}, ts.adminToken(t))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12.5", ts.users.got.TradingBalance)
	assert.Nil(t, ts.users.got.TotalWon)
	require.NotNil(t, ts.users.got.Name)
	assert.Equal(t, "Jane", *ts.users.got.Name)
	assert.Nil(t, ts.users.got.Phone)
}

func TestAdminLoginAndSettings(t *testing.T) {
	ts := newTestServer(t)

	w, _ := ts.do(t, http.MethodPost, "/api/v1/admin/login", map[string]string{"username": "root", "password": "nope"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, resp := ts.do(t, http.MethodPost, "/api/v1/admin/login", map[string]string{"username": "root", "password": "s3cret"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token := resp.Data.(map[string]interface{})["token"].(string)

	w, resp = ts.do(t, http.MethodPut, "/api/v1/admin/settings", map[string]float64{"withdrawalFeeRate": 0.05}, token)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, 0.05, data["withdrawalFeeRate"])
	assert.Equal(t, 25.0, data["kycFee"])

	w, _ = ts.do(t, http.MethodPut, "/api/v1/admin/settings", map[string]float64{"withdrawalFeeRate": 2}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestKYCAndAddresses(t *testing.T) {
	ts := newTestServer(t)

	w, resp := ts.do(t, http.MethodPost, "/api/v1/kyc", map[string]interface{}{
		"email": "jane@example.com", "idType": "passport", "frontIDSecureUrl": "f",
		"formData": map[string]string{"firstName": "Jane"},
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 25.0, resp.Data.(map[string]interface{})["kycFee"])

	w, _ = ts.do(t, http.MethodGet, "/api/v1/addresses", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
