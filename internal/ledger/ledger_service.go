package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/calendar"
	"github.com/anzallkiyteb-cell/bey/internal/employee"
	ledgererrors "github.com/anzallkiyteb-cell/bey/internal/ledger/errors"
	"github.com/anzallkiyteb-cell/bey/internal/shared/apperror"
	"github.com/anzallkiyteb-cell/bey/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// EmployeeLookup is the part of the employee directory the ledger needs.
type EmployeeLookup interface {
	Lookup(ctx context.Context, id string) (employee.Employee, error)
}

//go:generate mockgen -source=ledger_service.go -destination=mock/ledger_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, actorID string, req RecordEntryRequest) (EntryResponse, error)
	UpdateReason(ctx context.Context, id string, req UpdateReasonRequest) (EntryResponse, error)
	Remove(ctx context.Context, id string) error
	Query(ctx context.Context, req QueryEntriesRequest) ([]EntryResponse, int64, error)
	Days(ctx context.Context, req QueryEntriesRequest) ([]DaySummaryResponse, error)

	// Entries returns every entry of the employees whose logical date is in
	// [from, to]. An empty id list means all employees.
	Entries(ctx context.Context, employeeIDs []string, from, to time.Time) ([]Entry, error)
	// AbsenceOverrides maps employee id -> YYYY-MM-DD -> strongest manual
	// absence type of that day.
	AbsenceOverrides(ctx context.Context, employeeIDs []string, from, to time.Time) (map[string]map[string]AbsenceType, error)
}

type service struct {
	repo      Repository
	employees EmployeeLookup
	cal       calendar.Calendar
	logger    *zap.Logger
}

func NewService(repo Repository, employees EmployeeLookup, cal calendar.Calendar, logger ...*zap.Logger) Service {
	l := zap.L().Named("ledger.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ledger.service")
	}
	return &service{repo: repo, employees: employees, cal: cal, logger: l}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ledgererrors.ErrEntryNotFound
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Internal(err)
}

// placement is where an entry sits in time.
type placement struct {
	occurredAt  time.Time
	logicalDate time.Time
}

// place accepts a plain date with an optional HH:MM, or a full RFC3339
// instant with no separate time. A plain date without a time is pinned to
// the start of the logical day.
func (s *service) place(date, clock string) (placement, error) {
	date = strings.TrimSpace(date)
	if d, err := calendar.ParseDate(date); err == nil {
		if strings.TrimSpace(clock) == "" {
			start, _ := s.cal.DayBounds(d)
			return placement{occurredAt: start, logicalDate: d}, nil
		}
		ct, err := calendar.ParseClock(clock)
		if err != nil {
			return placement{}, fmt.Errorf("time: %v", err)
		}
		return placement{occurredAt: s.cal.At(d, ct), logicalDate: d}, nil
	}
	instant, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return placement{}, fmt.Errorf("date %q is not YYYY-MM-DD or RFC3339", date)
	}
	if strings.TrimSpace(clock) != "" {
		return placement{}, fmt.Errorf("time: must be empty when date is a full instant")
	}
	return placement{occurredAt: instant, logicalDate: s.cal.LogicalDate(instant)}, nil
}

func (s *service) buildEntry(req RecordEntryRequest) (*Entry, []string) {
	var problems []string
	e := &Entry{ID: uuid.New(), Reason: strings.TrimSpace(req.Reason)}

	empID, err := uuid.Parse(strings.TrimSpace(req.EmployeeID))
	if err != nil {
		problems = append(problems, "employee_id: must be a valid id")
	}
	e.EmployeeID = empID

	kind, err := ParseKind(req.Kind)
	if err != nil {
		problems = append(problems, "kind: "+err.Error())
	}
	e.Kind = kind

	p, err := s.place(req.Date, req.Time)
	if err != nil {
		problems = append(problems, err.Error())
	}
	e.OccurredAt, e.LogicalDate = p.occurredAt, p.logicalDate

	switch kind {
	case KindAbsence:
		t, err := ParseAbsenceType(req.AbsenceType)
		if err != nil {
			problems = append(problems, "absence_type: "+err.Error())
		}
		e.AbsenceType = t
	case KindAdjustment:
		c, err := ParseCategory(req.Category)
		if err != nil {
			problems = append(problems, "category: "+err.Error())
		}
		e.Category = c
		switch {
		case req.Amount == nil:
			problems = append(problems, "amount: required for adjustments")
		case *req.Amount < 0:
			problems = append(problems, "amount: must not be negative")
		default:
			e.Amount = *req.Amount
		}
	}
	if kind != KindAdjustment && req.Amount != nil && *req.Amount != 0 {
		problems = append(problems, "amount: only adjustments carry an amount")
	}
	return e, problems
}

func (s *service) Record(ctx context.Context, actorID string, req RecordEntryRequest) (EntryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	entry, problems := s.buildEntry(req)
	if len(problems) > 0 {
		return EntryResponse{}, ledgererrors.InvalidEntry(problems)
	}

	if s.employees != nil {
		if _, err := s.employees.Lookup(ctx, entry.EmployeeID.String()); err != nil {
			return EntryResponse{}, err
		}
	}
	if actor, err := uuid.Parse(actorID); err == nil {
		entry.CreatedBy = &actor
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		log.Error("record ledger entry failed", zap.String("employee_id", entry.EmployeeID.String()), zap.Error(err))
		return EntryResponse{}, mapRepositoryError(err)
	}

	log.Info("ledger entry recorded",
		zap.String("entry_id", entry.ID.String()),
		zap.String("employee_id", entry.EmployeeID.String()),
		zap.String("kind", string(entry.Kind)),
		zap.String("date", calendar.FormatDate(entry.LogicalDate)),
	)
	return mapToResponse(entry), nil
}

func validateEntryID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ledgererrors.ErrInvalidEntryID
	}
	return nil
}

func (s *service) UpdateReason(ctx context.Context, id string, req UpdateReasonRequest) (EntryResponse, error) {
	if err := validateEntryID(id); err != nil {
		return EntryResponse{}, err
	}

	n, err := s.repo.UpdateReason(ctx, id, strings.TrimSpace(req.Reason))
	if err != nil {
		return EntryResponse{}, mapRepositoryError(err)
	}
	if n == 0 {
		return EntryResponse{}, ledgererrors.ErrEntryNotFound
	}

	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EntryResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(entry), nil
}

func (s *service) Remove(ctx context.Context, id string) error {
	if err := validateEntryID(id); err != nil {
		return err
	}

	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("remove ledger entry failed", zap.String("entry_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if n == 0 {
		return ledgererrors.ErrEntryNotFound
	}
	return nil
}

func (s *service) filterFrom(req QueryEntriesRequest) (Filter, error) {
	from, errFrom := calendar.ParseDate(req.From)
	to, errTo := calendar.ParseDate(req.To)
	if errFrom != nil || errTo != nil || to.Before(from) {
		return Filter{}, ledgererrors.ErrInvalidRange
	}

	f := Filter{From: from, To: to}
	if req.EmployeeID != "" {
		if _, err := uuid.Parse(req.EmployeeID); err != nil {
			return Filter{}, apperror.InvalidField("employee_id")
		}
		f.EmployeeIDs = []string{req.EmployeeID}
	}
	if req.Kind != "" {
		k, err := ParseKind(req.Kind)
		if err != nil {
			return Filter{}, apperror.InvalidField("kind")
		}
		f.Kinds = []Kind{k}
	}
	return f, nil
}

func (s *service) Query(ctx context.Context, req QueryEntriesRequest) ([]EntryResponse, int64, error) {
	f, err := s.filterFrom(req)
	if err != nil {
		return nil, 0, err
	}

	page, limit := req.Page, req.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	f.Limit, f.Offset = limit, (page-1)*limit

	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, mapRepositoryError(err)
	}
	rows, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, 0, mapRepositoryError(err)
	}

	out := make([]EntryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, mapToResponse(&rows[i]))
	}
	return out, total, nil
}

func (s *service) Days(ctx context.Context, req QueryEntriesRequest) ([]DaySummaryResponse, error) {
	f, err := s.filterFrom(req)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	type dayKey struct{ emp, date string }
	var order []dayKey
	grouped := make(map[dayKey][]Entry)
	for _, e := range rows {
		k := dayKey{e.EmployeeID.String(), calendar.FormatDate(e.LogicalDate)}
		if _, ok := grouped[k]; !ok {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], e)
	}

	out := make([]DaySummaryResponse, 0, len(order))
	for _, k := range order {
		entries := grouped[k]
		day := DaySummaryResponse{
			EmployeeID: k.emp,
			Date:       k.date,
			Display:    DisplayKind(entries),
			Entries:    make([]EntryResponse, 0, len(entries)),
		}
		for i := range entries {
			day.Net += entries[i].SignedAmount()
			day.Entries = append(day.Entries, mapToResponse(&entries[i]))
		}
		out = append(out, day)
	}
	return out, nil
}

func (s *service) Entries(ctx context.Context, employeeIDs []string, from, to time.Time) ([]Entry, error) {
	rows, err := s.repo.Find(ctx, Filter{EmployeeIDs: employeeIDs, From: from, To: to})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("load ledger entries failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return rows, nil
}

func (s *service) AbsenceOverrides(ctx context.Context, employeeIDs []string, from, to time.Time) (map[string]map[string]AbsenceType, error) {
	rows, err := s.repo.Find(ctx, Filter{
		EmployeeIDs: employeeIDs,
		From:        from,
		To:          to,
		Kinds:       []Kind{KindAbsence},
	})
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	byDay := make(map[string]map[string][]Entry)
	for _, e := range rows {
		emp := e.EmployeeID.String()
		if byDay[emp] == nil {
			byDay[emp] = make(map[string][]Entry)
		}
		d := calendar.FormatDate(e.LogicalDate)
		byDay[emp][d] = append(byDay[emp][d], e)
	}

	out := make(map[string]map[string]AbsenceType, len(byDay))
	for emp, days := range byDay {
		out[emp] = make(map[string]AbsenceType, len(days))
		for d, entries := range days {
			out[emp][d] = StrongestAbsence(entries)
		}
	}
	return out, nil
}

func mapToResponse(e *Entry) EntryResponse {
	return EntryResponse{
		ID:          e.ID.String(),
		EmployeeID:  e.EmployeeID.String(),
		Kind:        string(e.Kind),
		AbsenceType: string(e.AbsenceType),
		Category:    string(e.Category),
		Amount:      e.Amount,
		Reason:      e.Reason,
		OccurredAt:  e.OccurredAt.Format(time.RFC3339),
		Date:        calendar.FormatDate(e.LogicalDate),
	}
}
