package payroll

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/attendance"
	"github.com/anzallkiyteb-cell/bey/internal/calendar"
	"github.com/anzallkiyteb-cell/bey/internal/employee"
	"github.com/anzallkiyteb-cell/bey/internal/events"
	"github.com/anzallkiyteb-cell/bey/internal/ledger"
	"github.com/anzallkiyteb-cell/bey/internal/messaging/kafka"
	payrollerrors "github.com/anzallkiyteb-cell/bey/internal/payroll/errors"
	"github.com/anzallkiyteb-cell/bey/internal/shared/apperror"
	"github.com/anzallkiyteb-cell/bey/internal/shared/audit"
	"github.com/anzallkiyteb-cell/bey/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type EmployeeDirectory interface {
	Lookup(ctx context.Context, id string) (employee.Employee, error)
	Active(ctx context.Context) ([]employee.Employee, error)
}

type AttendanceSource interface {
	MonthlyStates(ctx context.Context, emps []employee.Employee, month time.Time) (map[string][]attendance.DailyAttendance, error)
}

type LedgerSource interface {
	Entries(ctx context.Context, employeeIDs []string, from, to time.Time) ([]ledger.Entry, error)
}

type AdvanceSource interface {
	ValidatedAdvances(ctx context.Context, employeeIDs []string, month time.Time) (map[string]int64, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	GetMonthlyPayroll(ctx context.Context, employeeID, month string) (PayrollResponse, error)
	GetMonthlySummary(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
	Pay(ctx context.Context, actorID, employeeID, month string) (PayrollResponse, error)
	Unpay(ctx context.Context, actorID, employeeID, month string) (PayrollResponse, error)
	Payslip(ctx context.Context, employeeID, month string) (Payslip, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo kafka.OutboxRepository
	employees  EmployeeDirectory
	attendance AttendanceSource
	ledger     LedgerSource
	advances   AdvanceSource
	cal        calendar.Calendar
	audit      audit.Logger
	sf         *singleflight.Group
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	employees EmployeeDirectory,
	attendanceSource AttendanceSource,
	ledgerSource LedgerSource,
	advanceSource AdvanceSource,
	cal calendar.Calendar,
	auditLogger audit.Logger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop{}
	}
	return &service{
		db:         db,
		repo:       repo,
		outboxRepo: outboxRepo,
		employees:  employees,
		attendance: attendanceSource,
		ledger:     ledgerSource,
		advances:   advanceSource,
		cal:        cal,
		audit:      auditLogger,
		sf:         &singleflight.Group{},
		now:        time.Now,
		logger:     l,
	}
}

func (s *service) parseMonth(raw string) (time.Time, error) {
	if raw == "" {
		first, _ := calendar.MonthRange(s.cal.Today(s.now()))
		return first, nil
	}
	m, err := calendar.ParseMonth(raw)
	if err != nil {
		return time.Time{}, apperror.ErrInvalidMonth
	}
	return m, nil
}

// resolve validates the path parameters and refuses employees that are
// not part of payroll.
func (s *service) resolve(ctx context.Context, employeeID, rawMonth string) (employee.Employee, time.Time, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return employee.Employee{}, time.Time{}, payrollerrors.ErrInvalidEmployeeID
	}
	month, err := s.parseMonth(rawMonth)
	if err != nil {
		return employee.Employee{}, time.Time{}, err
	}
	emp, err := s.employees.Lookup(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, time.Time{}, err
	}
	if !emp.Eligible() {
		return employee.Employee{}, time.Time{}, payrollerrors.ErrEmployeeExcluded
	}
	return emp, month, nil
}

func (s *service) compute(ctx context.Context, emp employee.Employee, month time.Time) (Aggregate, error) {
	id := emp.ID.String()
	from, to := calendar.MonthRange(month)

	days, err := s.attendance.MonthlyStates(ctx, []employee.Employee{emp}, month)
	if err != nil {
		return Aggregate{}, err
	}
	entries, err := s.ledger.Entries(ctx, []string{id}, from, to)
	if err != nil {
		return Aggregate{}, err
	}
	advances, err := s.advances.ValidatedAdvances(ctx, []string{id}, month)
	if err != nil {
		return Aggregate{}, err
	}

	return Compute(AggregateInput{
		EmployeeID:        id,
		Month:             month,
		BaseSalary:        emp.BaseSalary,
		Days:              days[id],
		Entries:           entries,
		ValidatedAdvances: advances[id],
	}), nil
}

// GetMonthlyPayroll recomputes and stores an unpaid month. A paid month is
// returned as frozen, with the current computation alongside.
func (s *service) GetMonthlyPayroll(ctx context.Context, employeeID, rawMonth string) (PayrollResponse, error) {
	emp, month, err := s.resolve(ctx, employeeID, rawMonth)
	if err != nil {
		return PayrollResponse{}, err
	}

	key := events.PayrollKey(employeeID, calendar.FormatMonth(month))
	v, err, shared := s.sf.Do(key, func() (interface{}, error) {
		return s.refresh(ctx, emp, month)
	})
	if err != nil {
		return PayrollResponse{}, err
	}
	if shared {
		contextutil.GetLogger(ctx, s.logger).Debug("payroll computation shared", zap.String("key", key))
	}
	return v.(PayrollResponse), nil
}

func (s *service) refresh(ctx context.Context, emp employee.Employee, month time.Time) (PayrollResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	agg, err := s.compute(ctx, emp, month)
	if err != nil {
		return PayrollResponse{}, err
	}

	if err := s.repo.Upsert(ctx, newRecord(agg, emp.ID, s.now().UTC())); err != nil {
		log.Error("payroll upsert failed", zap.String("employee_id", emp.ID.String()), zap.Error(err))
		return PayrollResponse{}, apperror.Internal(err)
	}
	stored, err := s.repo.FindByEmployeeMonth(ctx, emp.ID.String(), month)
	if err != nil {
		log.Error("payroll reload failed", zap.String("employee_id", emp.ID.String()), zap.Error(err))
		return PayrollResponse{}, apperror.Internal(err)
	}
	return withLive(toResponse(*stored, emp), agg), nil
}

func (s *service) Pay(ctx context.Context, actorID, employeeID, rawMonth string) (PayrollResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	emp, month, err := s.resolve(ctx, employeeID, rawMonth)
	if err != nil {
		return PayrollResponse{}, err
	}
	agg, err := s.compute(ctx, emp, month)
	if err != nil {
		return PayrollResponse{}, err
	}
	monthStr := calendar.FormatMonth(month)
	now := s.now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("pay begin tx failed", zap.Error(err))
		return PayrollResponse{}, apperror.Internal(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Upsert(ctx, newRecord(agg, emp.ID, now)); err != nil {
		log.Error("pay upsert failed", zap.String("employee_id", employeeID), zap.Error(err))
		return PayrollResponse{}, apperror.Internal(err)
	}
	n, err := qtx.MarkPaid(ctx, employeeID, month, agg.NetSalary, parseActor(actorID), now)
	if err != nil {
		log.Error("pay update failed", zap.String("employee_id", employeeID), zap.Error(err))
		return PayrollResponse{}, apperror.Internal(err)
	}
	if n == 0 {
		log.Warn("payroll already paid", zap.String("employee_id", employeeID), zap.String("month", monthStr))
		return PayrollResponse{}, payrollerrors.ErrAlreadyPaid
	}

	paid := agg.NetSalary
	if err := s.queueStatusEvent(ctx, tx, events.PayrollStatusChangedEvent{
		EventType:  events.EventPayrollPaid,
		EmployeeID: employeeID,
		Month:      monthStr,
		NetSalary:  agg.NetSalary,
		PaidAmount: &paid,
		ActorID:    actorID,
		OccurredAt: now,
	}, events.PayrollPaidTopic); err != nil {
		log.Error("pay outbox persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return PayrollResponse{}, apperror.Internal(err)
	}

	stored, err := qtx.FindByEmployeeMonth(ctx, employeeID, month)
	if err != nil {
		return PayrollResponse{}, apperror.Internal(err)
	}
	if err := tx.Commit(); err != nil {
		log.Error("pay commit failed", zap.Error(err))
		return PayrollResponse{}, apperror.Internal(err)
	}

	log.Info("payroll paid",
		zap.String("employee_id", employeeID),
		zap.String("month", monthStr),
		zap.Int64("paid_amount", paid),
	)
	s.audit.Log(ctx, audit.Log{
		Action:  audit.ActionPayrollPaid,
		ActorID: actorID,
		Message: "payroll marked as paid",
		Meta: map[string]any{
			"employee_id": employeeID,
			"month":       monthStr,
			"paid_amount": paid,
		},
	})
	return toResponse(*stored, emp), nil
}

// Unpay reopens a paid month. The stored computation stays until the next
// read refreshes it.
func (s *service) Unpay(ctx context.Context, actorID, employeeID, rawMonth string) (PayrollResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	emp, month, err := s.resolve(ctx, employeeID, rawMonth)
	if err != nil {
		return PayrollResponse{}, err
	}
	monthStr := calendar.FormatMonth(month)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("unpay begin tx failed", zap.Error(err))
		return PayrollResponse{}, apperror.Internal(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	n, err := qtx.MarkUnpaid(ctx, employeeID, month)
	if err != nil {
		log.Error("unpay update failed", zap.String("employee_id", employeeID), zap.Error(err))
		return PayrollResponse{}, apperror.Internal(err)
	}
	if n == 0 {
		return PayrollResponse{}, payrollerrors.ErrNotPaid
	}

	stored, err := qtx.FindByEmployeeMonth(ctx, employeeID, month)
	if err != nil {
		return PayrollResponse{}, apperror.Internal(err)
	}
	if err := s.queueStatusEvent(ctx, tx, events.PayrollStatusChangedEvent{
		EventType:  events.EventPayrollUnpaid,
		EmployeeID: employeeID,
		Month:      monthStr,
		NetSalary:  stored.NetSalary,
		ActorID:    actorID,
		OccurredAt: s.now().UTC(),
	}, events.PayrollUnpaidTopic); err != nil {
		log.Error("unpay outbox persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return PayrollResponse{}, apperror.Internal(err)
	}
	if err := tx.Commit(); err != nil {
		log.Error("unpay commit failed", zap.Error(err))
		return PayrollResponse{}, apperror.Internal(err)
	}

	log.Info("payroll unpaid", zap.String("employee_id", employeeID), zap.String("month", monthStr))
	s.audit.Log(ctx, audit.Log{
		Action:  audit.ActionPayrollUnpaid,
		ActorID: actorID,
		Message: "payroll payment cancelled",
		Meta: map[string]any{
			"employee_id": employeeID,
			"month":       monthStr,
		},
	})
	return toResponse(*stored, emp), nil
}

func (s *service) queueStatusEvent(ctx context.Context, tx *sql.Tx, payload events.PayrollStatusChangedEvent, topic string) error {
	ev, err := kafka.NewEvent(ctx, "payroll", events.PayrollKey(payload.EmployeeID, payload.Month), payload.EventType, topic, payload)
	if err != nil {
		return err
	}
	return s.outboxRepo.WithTx(tx).Create(ctx, ev)
}

// GetMonthlySummary lists the month for every eligible employee without
// writing anything.
func (s *service) GetMonthlySummary(ctx context.Context, req SummaryRequest) (SummaryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	month, err := s.parseMonth(req.Month)
	if err != nil {
		return SummaryResponse{}, err
	}
	resp := SummaryResponse{Month: calendar.FormatMonth(month), Employees: []PayrollResponse{}}

	active, err := s.employees.Active(ctx)
	if err != nil {
		return SummaryResponse{}, err
	}
	emps := make([]employee.Employee, 0, len(active))
	ids := make([]string, 0, len(active))
	for _, e := range active {
		if e.Eligible() {
			emps = append(emps, e)
			ids = append(ids, e.ID.String())
		}
	}
	if len(emps) == 0 {
		return resp, nil
	}

	from, to := calendar.MonthRange(month)
	days, err := s.attendance.MonthlyStates(ctx, emps, month)
	if err != nil {
		return SummaryResponse{}, err
	}
	entries, err := s.ledger.Entries(ctx, ids, from, to)
	if err != nil {
		return SummaryResponse{}, err
	}
	advances, err := s.advances.ValidatedAdvances(ctx, ids, month)
	if err != nil {
		return SummaryResponse{}, err
	}
	records, err := s.repo.FindByMonth(ctx, month)
	if err != nil {
		log.Error("list payroll records failed", zap.Error(err))
		return SummaryResponse{}, apperror.Internal(err)
	}

	byEmployee := make(map[string][]ledger.Entry, len(ids))
	for _, e := range entries {
		key := e.EmployeeID.String()
		byEmployee[key] = append(byEmployee[key], e)
	}
	stored := make(map[string]PayrollRecord, len(records))
	for _, r := range records {
		stored[r.EmployeeID.String()] = r
	}

	now := s.now().UTC()
	for _, emp := range emps {
		id := emp.ID.String()
		agg := Compute(AggregateInput{
			EmployeeID:        id,
			Month:             month,
			BaseSalary:        emp.BaseSalary,
			Days:              days[id],
			Entries:           byEmployee[id],
			ValidatedAdvances: advances[id],
		})

		var row PayrollResponse
		if rec, ok := stored[id]; ok && rec.Paid {
			row = withLive(toResponse(rec, emp), agg)
		} else {
			row = toResponse(*newRecord(agg, emp.ID, now), emp)
		}

		t := &resp.Totals
		t.BaseSalaries += row.BaseSalary
		t.Primes += row.Primes
		t.Extras += row.Extras
		t.Doublages += row.Doublages
		t.Infractions += row.Infractions
		t.Advances += row.Advances
		t.NetSalaries += effectiveNet(row)
		if row.Paid {
			t.PaidCount++
		} else {
			t.UnpaidCount++
		}
		resp.Employees = append(resp.Employees, row)
	}
	return resp, nil
}

func (s *service) Payslip(ctx context.Context, employeeID, rawMonth string) (Payslip, error) {
	p, err := s.GetMonthlyPayroll(ctx, employeeID, rawMonth)
	if err != nil {
		return Payslip{}, err
	}
	emp, err := s.employees.Lookup(ctx, employeeID)
	if err != nil {
		return Payslip{}, err
	}

	content, err := renderPayslip(p, emp, s.now().In(s.cal.Location()))
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("render payslip failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return Payslip{}, payrollerrors.ErrPayslipRender
	}
	return Payslip{
		Filename: fmt.Sprintf("fiche-de-paie-%s-%s.pdf", emp.Username, p.Month),
		Content:  content,
	}, nil
}

func toResponse(rec PayrollRecord, emp employee.Employee) PayrollResponse {
	unrecorded := rec.AbsentDays - rec.JustifiedDays - rec.UnjustifiedDays - rec.SuspensionDays
	if unrecorded < 0 {
		unrecorded = 0
	}
	resp := PayrollResponse{
		EmployeeID:  rec.EmployeeID.String(),
		FullName:    emp.DisplayName(),
		Month:       calendar.FormatMonth(rec.Month),
		BaseSalary:  rec.BaseSalary,
		Primes:      rec.Primes,
		Extras:      rec.Extras,
		Doublages:   rec.Doublages,
		Infractions: rec.Infractions,
		Advances:    rec.Advances,
		NetSalary:   rec.NetSalary,
		AbsentDays:  rec.AbsentDays,
		Absences: AbsenceBreakdown{
			Justified:   rec.JustifiedDays,
			Unjustified: rec.UnjustifiedDays,
			Suspension:  rec.SuspensionDays,
			Unrecorded:  unrecorded,
		},
		RetardCount:   rec.RetardCount,
		RetardMinutes: rec.RetardMinutes,
		RetardDisplay: FormatRetard(rec.RetardMinutes),
		Incomplete:    rec.Incomplete,
		Paid:          rec.Paid,
		PaidAmount:    rec.PaidAmount,
		ComputedAt:    rec.ComputedAt.UTC().Format(time.RFC3339),
	}
	if rec.PaidAt != nil {
		v := rec.PaidAt.UTC().Format(time.RFC3339)
		resp.PaidAt = &v
	}
	if rec.PaidBy != nil {
		v := rec.PaidBy.String()
		resp.PaidBy = &v
	}
	return resp
}

// withLive attaches the fresh computation to a paid response.
func withLive(resp PayrollResponse, agg Aggregate) PayrollResponse {
	if !resp.Paid {
		return resp
	}
	live := agg.NetSalary
	resp.LiveNetSalary = &live
	resp.Stale = live != effectiveNet(resp)
	return resp
}

func effectiveNet(resp PayrollResponse) int64 {
	if resp.Paid && resp.PaidAmount != nil {
		return *resp.PaidAmount
	}
	return resp.NetSalary
}

// FormatRetard renders minutes as "1h 20min", "45min" or "2h".
func FormatRetard(minutes int) string {
	if minutes <= 0 {
		return "0min"
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dmin", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dmin", h, m)
}

func parseActor(actorID string) *uuid.UUID {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return nil
	}
	return &id
}
