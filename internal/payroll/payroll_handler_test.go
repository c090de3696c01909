package payroll_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anzallkiyteb-cell/bey/internal/payroll"
	payrollerrors "github.com/anzallkiyteb-cell/bey/internal/payroll/errors"
	payrollMock "github.com/anzallkiyteb-cell/bey/internal/payroll/mock"

	"github.com/gin-gonic/gin"
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

func newPayrollHandler(t *testing.T) (*payrollMock.MockService, *payroll.Handler) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := payrollMock.NewMockService(ctrl)
	return svc, payroll.NewHandler(svc)
}

func payrollContext(method, path, employeeID, month string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "employee_id", Value: employeeID}, {Key: "month", Value: month}}
	c.Request = httptest.NewRequest(method, path, nil)
	return w, c
}

func TestPayrollHandler_GetMonthly(t *testing.T) {
	svc, h := newPayrollHandler(t)
	svc.EXPECT().GetMonthlyPayroll(gomock.Any(), "e-1", "2026-03").
		Return(payroll.PayrollResponse{EmployeeID: "e-1", Month: "2026-03", NetSalary: 1250}, nil)

	w, c := payrollContext(http.MethodGet, "/api/v1/payrolls/e-1/2026-03", "e-1", "2026-03")
	h.GetMonthly(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var got payroll.PayrollResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, int64(1250), got.NetSalary)
}

func TestPayrollHandler_Pay(t *testing.T) {
	t.Run("success uses the caller as actor", func(t *testing.T) {
		svc, h := newPayrollHandler(t)
		svc.EXPECT().Pay(gomock.Any(), "actor-1", "e-1", "2026-03").
			Return(payroll.PayrollResponse{EmployeeID: "e-1", Paid: true}, nil)

		w, c := payrollContext(http.MethodPost, "/api/v1/payrolls/e-1/2026-03/pay", "e-1", "2026-03")
		c.Set("employee_id", "actor-1")
		h.Pay(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("already paid is a conflict", func(t *testing.T) {
		svc, h := newPayrollHandler(t)
		svc.EXPECT().Pay(gomock.Any(), gomock.Any(), "e-1", "2026-03").
			Return(payroll.PayrollResponse{}, payrollerrors.ErrAlreadyPaid)

		w, c := payrollContext(http.MethodPost, "/api/v1/payrolls/e-1/2026-03/pay", "e-1", "2026-03")
		h.Pay(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		var env apiEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
		assert.Equal(t, "ALREADY_PAID", env.Error.Code)
	})
}

func TestPayrollHandler_Unpay_NotPaid(t *testing.T) {
	svc, h := newPayrollHandler(t)
	svc.EXPECT().Unpay(gomock.Any(), gomock.Any(), "e-1", "2026-03").
		Return(payroll.PayrollResponse{}, payrollerrors.ErrNotPaid)

	w, c := payrollContext(http.MethodPost, "/api/v1/payrolls/e-1/2026-03/unpay", "e-1", "2026-03")
	h.Unpay(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "NOT_PAID", env.Error.Code)
}

func TestPayrollHandler_GetSummary(t *testing.T) {
	svc, h := newPayrollHandler(t)
	svc.EXPECT().GetMonthlySummary(gomock.Any(), payroll.SummaryRequest{Month: "2026-03"}).
		Return(payroll.SummaryResponse{Month: "2026-03", Employees: []payroll.PayrollResponse{}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/payrolls?month=2026-03", nil)
	h.GetSummary(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPayrollHandler_DownloadPayslip(t *testing.T) {
	t.Run("streams the pdf", func(t *testing.T) {
		svc, h := newPayrollHandler(t)
		svc.EXPECT().Payslip(gomock.Any(), "e-1", "2026-03").
			Return(payroll.Payslip{Filename: "fiche-de-paie-amine-2026-03.pdf", Content: []byte("%PDF-1.3")}, nil)

		w, c := payrollContext(http.MethodGet, "/api/v1/payrolls/e-1/2026-03/payslip", "e-1", "2026-03")
		h.DownloadPayslip(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "fiche-de-paie-amine-2026-03.pdf")
	})

	t.Run("excluded employee", func(t *testing.T) {
		svc, h := newPayrollHandler(t)
		svc.EXPECT().Payslip(gomock.Any(), "e-1", "2026-03").
			Return(payroll.Payslip{}, payrollerrors.ErrEmployeeExcluded)

		w, c := payrollContext(http.MethodGet, "/api/v1/payrolls/e-1/2026-03/payslip", "e-1", "2026-03")
		h.DownloadPayslip(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
