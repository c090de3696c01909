package attendance_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anzallkiyteb-cell/bey/internal/attendance"
	attendanceerrors "github.com/anzallkiyteb-cell/bey/internal/attendance/errors"
	attendanceMock "github.com/anzallkiyteb-cell/bey/internal/attendance/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newAttendanceHandler(t *testing.T) (*attendanceMock.MockService, *attendance.Handler) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := attendanceMock.NewMockService(ctrl)
	return svc, attendance.NewHandler(svc)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestAttendanceHandler_GetDailyState(t *testing.T) {
	svc, h := newAttendanceHandler(t)
	empID := uuid.NewString()

	svc.EXPECT().
		GetDailyState(gomock.Any(), empID, attendance.DailyStateRequest{Date: "2026-03-02"}).
		Return(attendance.DailyStateResponse{EmployeeID: empID, Date: "2026-03-02", State: "Retard", LateMinutes: 20}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "employee_id", Value: empID}}
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/attendance/"+empID+"/daily?date=2026-03-02", nil)

	h.GetDailyState(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.True(t, env.Ok)
	var data attendance.DailyStateResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Retard", data.State)
	assert.Equal(t, 20, data.LateMinutes)
}

func TestAttendanceHandler_GetDailyState_InvalidEmployee(t *testing.T) {
	svc, h := newAttendanceHandler(t)

	svc.EXPECT().
		GetDailyState(gomock.Any(), "bad", gomock.Any()).
		Return(attendance.DailyStateResponse{}, attendanceerrors.ErrInvalidEmployeeID)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "employee_id", Value: "bad"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/attendance/bad/daily", nil)

	h.GetDailyState(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decode(t, w).Ok)
}

func TestAttendanceHandler_History_MissingRange(t *testing.T) {
	_, h := newAttendanceHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "employee_id", Value: uuid.NewString()}}
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/attendance/x/history?from=2026-03-01", nil)

	h.History(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, w).Error.Code)
}

func TestAttendanceHandler_GetPersonnelStatus(t *testing.T) {
	svc, h := newAttendanceHandler(t)

	svc.EXPECT().
		GetPersonnelStatus(gomock.Any(), attendance.DailyStateRequest{}).
		Return(attendance.PersonnelStatusResponse{
			Date:   "2026-03-02",
			Counts: attendance.StatusCounts{Present: 3, Absent: 1, Total: 4},
		}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/attendance/status", nil)

	h.GetPersonnelStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var data attendance.PersonnelStatusResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, 4, data.Counts.Total)
}

func TestAttendanceHandler_TopPerformers(t *testing.T) {
	svc, h := newAttendanceHandler(t)

	svc.EXPECT().
		TopPerformers(gomock.Any(), attendance.TopPerformersRequest{Month: "2026-03", Limit: 3}).
		Return([]attendance.TopPerformerResponse{{Rank: 1, EmployeeID: "a", WorkedMinutes: 600}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/attendance/top-performers?month=2026-03&limit=3", nil)

	h.TopPerformers(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAttendanceHandler_RequestSync(t *testing.T) {
	t.Run("empty body syncs today", func(t *testing.T) {
		svc, h := newAttendanceHandler(t)
		actorID := uuid.NewString()

		svc.EXPECT().
			RequestSync(gomock.Any(), actorID, attendance.SyncRequest{}).
			Return(attendance.SyncResponse{Date: "2026-03-02", Queued: true}, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("employee_id", actorID)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/attendance/sync", nil)

		h.RequestSync(c)

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("explicit date", func(t *testing.T) {
		svc, h := newAttendanceHandler(t)

		svc.EXPECT().
			RequestSync(gomock.Any(), gomock.Any(), attendance.SyncRequest{Date: "2026-03-01"}).
			Return(attendance.SyncResponse{Date: "2026-03-01", AlreadyPending: true}, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/attendance/sync", strings.NewReader(`{"date":"2026-03-01"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.RequestSync(c)

		assert.Equal(t, http.StatusAccepted, w.Code)
		var data attendance.SyncResponse
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
		assert.True(t, data.AlreadyPending)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, h := newAttendanceHandler(t)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/attendance/sync", strings.NewReader(`{"date":`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.RequestSync(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
