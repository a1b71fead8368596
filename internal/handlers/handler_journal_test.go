package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/akuntansi-app/akuntansi-backend/internal/apperrors"
	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
	"github.com/akuntansi-app/akuntansi-backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJournalService struct {
	mock.Mock
	kind domain.JournalKind
}

func (m *MockJournalService) Kind() domain.JournalKind { return m.kind }

func (m *MockJournalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalsResponse), args.Error(1)
}

func (m *MockJournalService) UpdateJournal(ctx context.Context, journalID string, req dto.UpdateJournalRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) DeleteJournal(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func setupJournalRouter(svc *MockJournalService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/api/v1")
	registerJournalRoutes(v1, "/general-journals", svc)
	return r
}

func decodeEnvelope(t *testing.T, body string) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return resp
}

func TestCreateJournal_ReturnsCreatedEnvelope(t *testing.T) {
	svc := &MockJournalService{kind: domain.GeneralJournal}
	router := setupJournalRouter(svc)

	entry := &domain.JournalEntry{
		JournalID:   "jid-1",
		Kind:        domain.GeneralJournal,
		Description: "Penerimaan kas",
		Version:     1,
		Lines: []domain.JournalLine{
			{LineID: "l1", AccountNumber: "101", Debit: decimal.NewFromInt(100)},
			{LineID: "l2", AccountNumber: "401", Credit: decimal.NewFromInt(100)},
		},
	}
	svc.On("CreateJournal", mock.Anything, mock.AnythingOfType("dto.CreateJournalRequest")).
		Return(entry, nil).Once()

	body := `{
		"tanggal": "2023-05-10",
		"deskripsi_transaksi": "Penerimaan kas",
		"lines": [
			{"account_id": "101", "debet": "100"},
			{"account_id": "401", "kredit": "100"}
		]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/general-journals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w.Body.String())
	assert.True(t, resp.IsSuccess)
	assert.Equal(t, "success", resp.Status)
	assert.NotNil(t, resp.Data)

	svc.AssertExpectations(t)
}

func TestCreateJournal_UnbalancedMapsTo400(t *testing.T) {
	svc := &MockJournalService{kind: domain.GeneralJournal}
	router := setupJournalRouter(svc)

	svc.On("CreateJournal", mock.Anything, mock.Anything).
		Return(nil, &apperrors.UnbalancedEntryError{
			TotalDebit:  decimal.NewFromInt(100),
			TotalCredit: decimal.NewFromInt(90),
		}).Once()

	body := `{
		"tanggal": "2023-05-10",
		"deskripsi_transaksi": "Tidak seimbang",
		"lines": [
			{"account_id": "101", "debet": "100"},
			{"account_id": "401", "kredit": "90"}
		]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/general-journals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w.Body.String())
	assert.False(t, resp.IsSuccess)
	assert.Contains(t, resp.Message, "total debit")
}

func TestCreateJournal_MalformedBodyMapsTo400(t *testing.T) {
	svc := &MockJournalService{kind: domain.GeneralJournal}
	router := setupJournalRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/general-journals", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateJournal", mock.Anything, mock.Anything)
}

func TestGetJournal_NotFoundMapsTo404(t *testing.T) {
	svc := &MockJournalService{kind: domain.GeneralJournal}
	router := setupJournalRouter(svc)

	svc.On("GetJournalByID", mock.Anything, "missing").
		Return(nil, apperrors.NewNotFoundError("journal missing not found")).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/general-journals/missing", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w.Body.String())
	assert.False(t, resp.IsSuccess)
}

func TestUpdateJournal_ConflictMapsTo409(t *testing.T) {
	svc := &MockJournalService{kind: domain.GeneralJournal}
	router := setupJournalRouter(svc)

	svc.On("UpdateJournal", mock.Anything, "jid-1", mock.Anything).
		Return(nil, apperrors.NewAppError(409, "journal jid-1 was modified concurrently", apperrors.ErrConflict)).Once()

	body := `{
		"lines": [
			{"account_id": "101", "debet": "100"},
			{"account_id": "401", "kredit": "100"}
		]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/general-journals/jid-1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteJournal_ReturnsLastState(t *testing.T) {
	svc := &MockJournalService{kind: domain.GeneralJournal}
	router := setupJournalRouter(svc)

	entry := &domain.JournalEntry{JournalID: "jid-1", Kind: domain.GeneralJournal, Version: 2}
	svc.On("DeleteJournal", mock.Anything, "jid-1").Return(entry, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/general-journals/jid-1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w.Body.String())
	assert.True(t, resp.IsSuccess)
	assert.NotNil(t, resp.Data)
	svc.AssertExpectations(t)
}
