package ledger_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anzallkiyteb-cell/bey/internal/ledger"
	ledgererrors "github.com/anzallkiyteb-cell/bey/internal/ledger/errors"
	ledgerMock "github.com/anzallkiyteb-cell/bey/internal/ledger/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  *struct {
		Total int64 `json:"total"`
		Page  int   `json:"page"`
	} `json:"meta"`
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newLedgerHandler(t *testing.T) (*ledgerMock.MockService, *ledger.Handler) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := ledgerMock.NewMockService(ctrl)
	return svc, ledger.NewHandler(svc)
}

func TestLedgerHandler_Record(t *testing.T) {
	svc, h := newLedgerHandler(t)
	actorID := uuid.NewString()

	svc.EXPECT().
		Record(gomock.Any(), actorID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req ledger.RecordEntryRequest) (ledger.EntryResponse, error) {
			assert.Equal(t, "adjustment", req.Kind)
			require.NotNil(t, req.Amount)
			assert.Equal(t, int64(2500), *req.Amount)
			return ledger.EntryResponse{ID: "e-1", Kind: req.Kind, Amount: *req.Amount}, nil
		})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", actorID)
	body := `{"employee_id":"` + uuid.NewString() + `","kind":"adjustment","date":"2024-03-10","category":"Prime","amount":2500}`
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/ledger", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Record(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "e-1")
}

func TestLedgerHandler_Record_MissingFields(t *testing.T) {
	_, h := newLedgerHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/ledger", strings.NewReader(`{"kind":"retard"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Record(c)

	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestLedgerHandler_Remove_NotFound(t *testing.T) {
	svc, h := newLedgerHandler(t)
	id := uuid.NewString()
	svc.EXPECT().Remove(gomock.Any(), id).Return(ledgererrors.ErrEntryNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/ledger/"+id, nil)

	h.Remove(c)

	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestLedgerHandler_Query_Meta(t *testing.T) {
	svc, h := newLedgerHandler(t)
	svc.EXPECT().Query(gomock.Any(), gomock.Any()).Return([]ledger.EntryResponse{{ID: "a"}}, int64(75), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/ledger?from=2024-03-01&to=2024-03-31&page=2", nil)

	h.Query(c)

	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(75), env.Meta.Total)
	assert.Equal(t, 2, env.Meta.Page)
}
