package advance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	advanceerrors "github.com/anzallkiyteb-cell/bey/internal/advance/errors"
	"github.com/anzallkiyteb-cell/bey/internal/calendar"
	"github.com/anzallkiyteb-cell/bey/internal/employee"
	"github.com/anzallkiyteb-cell/bey/internal/shared/apperror"
	"github.com/anzallkiyteb-cell/bey/internal/shared/audit"
	"github.com/anzallkiyteb-cell/bey/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EmployeeDirectory interface {
	Lookup(ctx context.Context, id string) (employee.Employee, error)
	Active(ctx context.Context) ([]employee.Employee, error)
}

//go:generate mockgen -source=advance_service.go -destination=mock/advance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateAdvanceRequest) (AdvanceResponse, error)
	GetAll(ctx context.Context, req ListAdvancesRequest) ([]AdvanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAdvanceRequest) (AdvanceResponse, error)
	Validate(ctx context.Context, actorID, id string) (AdvanceResponse, error)
	Refuse(ctx context.Context, actorID, id string) (AdvanceResponse, error)
	Reset(ctx context.Context, actorID, id string) (AdvanceResponse, error)
	Delete(ctx context.Context, actorID, id string) error

	Exposure(ctx context.Context, req ExposureRequest) (ExposureReport, error)
	EmployeeExposure(ctx context.Context, employeeID string, req ExposureRequest) (ExposureResponse, error)
	// ValidatedAdvances totals Validé advances per employee for a month.
	ValidatedAdvances(ctx context.Context, employeeIDs []string, month time.Time) (map[string]int64, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeDirectory
	cal       calendar.Calendar
	audit     audit.Logger
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeDirectory,
	cal calendar.Calendar,
	auditLogger audit.Logger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("advance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("advance.service")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop{}
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		cal:       cal,
		audit:     auditLogger,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) monthOrCurrent(raw string) (time.Time, error) {
	if raw == "" {
		return s.cal.Today(s.now()), nil
	}
	m, err := calendar.ParseMonth(raw)
	if err != nil {
		return time.Time{}, apperror.ErrInvalidMonth
	}
	return m, nil
}

func (s *service) Create(ctx context.Context, actorID string, req CreateAdvanceRequest) (AdvanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if req.Amount <= 0 {
		return AdvanceResponse{}, advanceerrors.ErrInvalidAmount
	}
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return AdvanceResponse{}, advanceerrors.ErrInvalidEmployeeID
	}
	emp, err := s.employees.Lookup(ctx, req.EmployeeID)
	if err != nil {
		return AdvanceResponse{}, err
	}

	date := s.cal.Today(s.now())
	if req.Date != "" {
		if date, err = calendar.ParseDate(req.Date); err != nil {
			return AdvanceResponse{}, apperror.ErrInvalidDate
		}
	}
	status := StatusPending
	if req.Status != "" {
		if status, err = ParseStatus(req.Status); err != nil {
			return AdvanceResponse{}, advanceerrors.ErrInvalidStatus
		}
	}

	a := &Advance{
		ID:         uuid.New(),
		EmployeeID: emp.ID,
		Amount:     req.Amount,
		Date:       date,
		Status:     status,
		Motif:      req.Motif,
		CreatedBy:  parseActor(actorID),
	}
	if status != StatusPending {
		now := s.now().UTC()
		a.DecidedBy = a.CreatedBy
		a.DecidedAt = &now
	}

	if err := s.repo.Create(ctx, a); err != nil {
		log.Error("create advance persist failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return AdvanceResponse{}, apperror.Internal(err)
	}

	log.Info("advance created",
		zap.String("advance_id", a.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Int64("amount", a.Amount),
		zap.String("status", string(a.Status)),
	)
	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context, req ListAdvancesRequest) ([]AdvanceResponse, error) {
	var f Filter
	if req.EmployeeID != "" {
		if _, err := uuid.Parse(req.EmployeeID); err != nil {
			return nil, advanceerrors.ErrInvalidEmployeeID
		}
		f.EmployeeIDs = []string{req.EmployeeID}
	}
	if req.Month != "" {
		m, err := calendar.ParseMonth(req.Month)
		if err != nil {
			return nil, apperror.ErrInvalidMonth
		}
		f.From, f.To = calendar.MonthRange(m)
	}
	if req.Status != "" {
		st, err := ParseStatus(req.Status)
		if err != nil {
			return nil, advanceerrors.ErrInvalidStatus
		}
		f.Statuses = []Status{st}
	}

	rows, err := s.repo.Find(ctx, f)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list advances failed", zap.Error(err))
		return nil, apperror.Internal(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) find(ctx context.Context, repo Repository, id string) (*Advance, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, advanceerrors.ErrInvalidAdvanceID
	}
	a, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, advanceerrors.ErrAdvanceNotFound
		}
		return nil, apperror.Internal(err)
	}
	return a, nil
}

// Update edits amount, date or motif. Validated advances already count
// against payroll and have to be reset first.
func (s *service) Update(ctx context.Context, id string, req UpdateAdvanceRequest) (AdvanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update advance begin tx failed", zap.Error(err))
		return AdvanceResponse{}, apperror.Internal(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	a, err := s.find(ctx, qtx, id)
	if err != nil {
		return AdvanceResponse{}, err
	}
	if a.Status == StatusValidated {
		return AdvanceResponse{}, advanceerrors.ErrValidatedImmutable
	}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			return AdvanceResponse{}, advanceerrors.ErrInvalidAmount
		}
		a.Amount = *req.Amount
	}
	if req.Date != nil {
		d, err := calendar.ParseDate(*req.Date)
		if err != nil {
			return AdvanceResponse{}, apperror.ErrInvalidDate
		}
		a.Date = d
	}
	if req.Motif != nil {
		a.Motif = *req.Motif
	}

	if err := qtx.Update(ctx, a); err != nil {
		log.Error("update advance persist failed", zap.String("advance_id", id), zap.Error(err))
		return AdvanceResponse{}, apperror.Internal(err)
	}
	if err := tx.Commit(); err != nil {
		log.Error("update advance commit failed", zap.String("advance_id", id), zap.Error(err))
		return AdvanceResponse{}, apperror.Internal(err)
	}
	return mapToResponse(*a), nil
}

func (s *service) Validate(ctx context.Context, actorID, id string) (AdvanceResponse, error) {
	return s.transition(ctx, actorID, id, StatusValidated)
}

func (s *service) Refuse(ctx context.Context, actorID, id string) (AdvanceResponse, error) {
	return s.transition(ctx, actorID, id, StatusRefused)
}

func (s *service) Reset(ctx context.Context, actorID, id string) (AdvanceResponse, error) {
	return s.transition(ctx, actorID, id, StatusPending)
}

func (s *service) transition(ctx context.Context, actorID, id string, target Status) (AdvanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("advance transition begin tx failed", zap.Error(err))
		return AdvanceResponse{}, apperror.Internal(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	a, err := s.find(ctx, qtx, id)
	if err != nil {
		return AdvanceResponse{}, err
	}
	from := a.Status
	if !from.CanMoveTo(target) {
		log.Warn("advance transition invalid",
			zap.String("advance_id", id),
			zap.String("from_status", string(from)),
			zap.String("to_status", string(target)),
		)
		return AdvanceResponse{}, advanceerrors.ErrInvalidStatusTransition
	}

	a.Status = target
	if target == StatusPending {
		a.DecidedBy = nil
		a.DecidedAt = nil
	} else {
		now := s.now().UTC()
		a.DecidedBy = parseActor(actorID)
		a.DecidedAt = &now
	}

	if err := qtx.Update(ctx, a); err != nil {
		log.Error("advance transition persist failed", zap.String("advance_id", id), zap.Error(err))
		return AdvanceResponse{}, apperror.Internal(err)
	}
	if err := tx.Commit(); err != nil {
		log.Error("advance transition commit failed", zap.String("advance_id", id), zap.Error(err))
		return AdvanceResponse{}, apperror.Internal(err)
	}

	s.audit.Log(ctx, audit.Log{
		Action:  audit.ActionAdvanceDecided,
		ActorID: actorID,
		Message: "advance status changed",
		Meta: map[string]any{
			"advance_id":  id,
			"employee_id": a.EmployeeID.String(),
			"amount":      a.Amount,
			"from":        string(from),
			"to":          string(target),
		},
	})
	return mapToResponse(*a), nil
}

func (s *service) Delete(ctx context.Context, actorID, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return advanceerrors.ErrInvalidAdvanceID
	}

	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error("delete advance failed", zap.String("advance_id", id), zap.Error(err))
		return apperror.Internal(err)
	}
	if n == 0 {
		return advanceerrors.ErrAdvanceNotFound
	}
	log.Info("advance deleted", zap.String("advance_id", id), zap.String("actor_id", actorID))
	return nil
}

func (s *service) ValidatedAdvances(ctx context.Context, employeeIDs []string, month time.Time) (map[string]int64, error) {
	from, to := calendar.MonthRange(month)
	totals, err := s.repo.SumValidated(ctx, employeeIDs, from, to)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("sum validated advances failed", zap.Error(err))
		return nil, apperror.Internal(err)
	}
	return totals, nil
}

// Exposure ranks every eligible employee of the month. Employees without a
// base salary are reported separately and never ranked.
func (s *service) Exposure(ctx context.Context, req ExposureRequest) (ExposureReport, error) {
	month, err := s.monthOrCurrent(req.Month)
	if err != nil {
		return ExposureReport{}, err
	}

	active, err := s.employees.Active(ctx)
	if err != nil {
		return ExposureReport{}, err
	}
	emps := make(map[string]employee.Employee, len(active))
	ids := make([]string, 0, len(active))
	for _, e := range active {
		if !e.Eligible() {
			continue
		}
		emps[e.ID.String()] = e
		ids = append(ids, e.ID.String())
	}

	report := ExposureReport{
		Month:     calendar.FormatMonth(month),
		Employees: []ExposureResponse{},
		Excluded:  []string{},
	}
	if len(ids) == 0 {
		return report, nil
	}

	totals, err := s.ValidatedAdvances(ctx, ids, month)
	if err != nil {
		return ExposureReport{}, err
	}

	all := make([]Exposure, 0, len(ids))
	for _, id := range ids {
		e := emps[id]
		exp := ComputeExposure(id, e.BaseSalary, totals[id])
		report.TotalSalaries += e.BaseSalary
		report.TotalAdvances += exp.TotalValidated
		if exp.Excluded {
			report.Excluded = append(report.Excluded, id)
		}
		all = append(all, exp)
	}
	report.TotalRemaining = report.TotalSalaries - report.TotalAdvances

	for i, exp := range RankExposure(all) {
		row := toExposureResponse(exp, emps[exp.EmployeeID])
		row.Rank = i + 1
		if exp.AtMaximum {
			report.AtMaximumCount++
		}
		report.Employees = append(report.Employees, row)
	}
	return report, nil
}

func (s *service) EmployeeExposure(ctx context.Context, employeeID string, req ExposureRequest) (ExposureResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return ExposureResponse{}, advanceerrors.ErrInvalidEmployeeID
	}
	month, err := s.monthOrCurrent(req.Month)
	if err != nil {
		return ExposureResponse{}, err
	}
	emp, err := s.employees.Lookup(ctx, employeeID)
	if err != nil {
		return ExposureResponse{}, err
	}

	totals, err := s.ValidatedAdvances(ctx, []string{employeeID}, month)
	if err != nil {
		return ExposureResponse{}, err
	}
	return toExposureResponse(ComputeExposure(employeeID, emp.BaseSalary, totals[employeeID]), emp), nil
}

func parseActor(actorID string) *uuid.UUID {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return nil
	}
	return &id
}

func toExposureResponse(e Exposure, emp employee.Employee) ExposureResponse {
	return ExposureResponse{
		EmployeeID:     e.EmployeeID,
		FullName:       emp.DisplayName(),
		BaseSalary:     e.BaseSalary,
		TotalValidated: e.TotalValidated,
		Remaining:      e.Remaining,
		Percentage:     e.Percentage,
		AtMaximum:      e.AtMaximum,
		Excluded:       e.Excluded,
	}
}

func mapToResponse(a Advance) AdvanceResponse {
	resp := AdvanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Amount:     a.Amount,
		Date:       calendar.FormatDate(a.Date),
		Status:     string(a.Status),
		Motif:      a.Motif,
	}
	if a.CreatedBy != nil {
		v := a.CreatedBy.String()
		resp.CreatedBy = &v
	}
	if a.DecidedBy != nil {
		v := a.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if a.DecidedAt != nil {
		v := a.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToListResponse(rows []Advance) []AdvanceResponse {
	resp := make([]AdvanceResponse, len(rows))
	for i, a := range rows {
		resp[i] = mapToResponse(a)
	}
	return resp
}
