package attendance

import (
	"context"
	"database/sql"
	"math"
	"sort"
	"time"

	attendanceerrors "github.com/anzallkiyteb-cell/bey/internal/attendance/errors"
	"github.com/anzallkiyteb-cell/bey/internal/calendar"
	"github.com/anzallkiyteb-cell/bey/internal/employee"
	"github.com/anzallkiyteb-cell/bey/internal/events"
	"github.com/anzallkiyteb-cell/bey/internal/ledger"
	"github.com/anzallkiyteb-cell/bey/internal/messaging/kafka"
	"github.com/anzallkiyteb-cell/bey/internal/schedule"
	"github.com/anzallkiyteb-cell/bey/internal/shared/apperror"
	"github.com/anzallkiyteb-cell/bey/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxHistoryDays      = 93
	defaultTopPerformer = 5
	maxTopPerformer     = 50
)

type EmployeeDirectory interface {
	Lookup(ctx context.Context, id string) (employee.Employee, error)
	Active(ctx context.Context) ([]employee.Employee, error)
	ByDeviceIDs(ctx context.Context, deviceIDs []string) (map[string]employee.Employee, error)
}

type ScheduleSource interface {
	SchedulesFor(ctx context.Context, employeeIDs []string) (map[string]*schedule.Schedule, error)
}

type AbsenceSource interface {
	AbsenceOverrides(ctx context.Context, employeeIDs []string, from, to time.Time) (map[string]map[string]ledger.AbsenceType, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	GetDailyState(ctx context.Context, employeeID string, req DailyStateRequest) (DailyStateResponse, error)
	GetPersonnelStatus(ctx context.Context, req DailyStateRequest) (PersonnelStatusResponse, error)
	History(ctx context.Context, employeeID string, req HistoryRequest) ([]DailyStateResponse, error)
	TopPerformers(ctx context.Context, req TopPerformersRequest) ([]TopPerformerResponse, error)
	RequestSync(ctx context.Context, actorID string, req SyncRequest) (SyncResponse, error)
	IngestPunches(ctx context.Context, event events.PunchesIngestedEvent) (IngestResult, error)

	// MonthlyStates classifies every elapsed day of month for each employee,
	// keyed by employee id. Days after today are left out.
	MonthlyStates(ctx context.Context, emps []employee.Employee, month time.Time) (map[string][]DailyAttendance, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo kafka.OutboxRepository
	employees  EmployeeDirectory
	schedules  ScheduleSource
	absences   AbsenceSource
	classifier Classifier
	cal        calendar.Calendar
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	employees EmployeeDirectory,
	schedules ScheduleSource,
	absences AbsenceSource,
	classifier Classifier,
	cal calendar.Calendar,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		outboxRepo: outboxRepo,
		employees:  employees,
		schedules:  schedules,
		absences:   absences,
		classifier: classifier,
		cal:        cal,
		now:        time.Now,
		logger:     l,
	}
}

func (s *service) today() time.Time {
	return s.cal.Today(s.now())
}

func (s *service) parseDateOrToday(raw string) (time.Time, error) {
	if raw == "" {
		return s.today(), nil
	}
	d, err := calendar.ParseDate(raw)
	if err != nil {
		return time.Time{}, apperror.ErrInvalidDate
	}
	return d, nil
}

func (s *service) lookup(ctx context.Context, employeeID string) (employee.Employee, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return employee.Employee{}, attendanceerrors.ErrInvalidEmployeeID
	}
	return s.employees.Lookup(ctx, employeeID)
}

// classifyRange is the shared read path: one query each for schedules,
// ledger absences and punches, then pure classification per day.
func (s *service) classifyRange(ctx context.Context, emps []employee.Employee, from, to time.Time) (map[string][]DailyAttendance, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	out := make(map[string][]DailyAttendance, len(emps))
	if len(emps) == 0 {
		return out, nil
	}

	ids := make([]string, len(emps))
	for i, e := range emps {
		ids[i] = e.ID.String()
	}

	schedules, err := s.schedules.SchedulesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	overrides, err := s.absences.AbsenceOverrides(ctx, ids, from, to)
	if err != nil {
		return nil, err
	}

	start, end := s.cal.RangeBounds(from, to)
	punches, err := s.repo.FindPunches(ctx, ids, start, end)
	if err != nil {
		log.Error("load punches failed", zap.Error(err))
		return nil, apperror.Internal(err)
	}

	byDay := make(map[string]map[string][]time.Time, len(emps))
	for _, p := range punches {
		emp := p.EmployeeID.String()
		if byDay[emp] == nil {
			byDay[emp] = make(map[string][]time.Time)
		}
		d := calendar.FormatDate(s.cal.LogicalDate(p.PunchedAt))
		byDay[emp][d] = append(byDay[emp][d], p.PunchedAt)
	}

	dates := calendar.Dates(from, to)
	for _, e := range emps {
		id := e.ID.String()
		days := make([]DailyAttendance, 0, len(dates))
		for _, d := range dates {
			key := calendar.FormatDate(d)
			day := s.classifier.Classify(ClassifyInput{
				EmployeeID: id,
				Date:       d,
				Schedule:   schedules[id],
				Punches:    byDay[id][key],
				Manual:     overrides[id][key],
			})
			for _, w := range day.Warnings {
				log.Debug("attendance warning",
					zap.String("employee_id", id),
					zap.String("date", key),
					zap.String("warning", w),
				)
			}
			days = append(days, day)
		}
		out[id] = days
	}
	return out, nil
}

func (s *service) GetDailyState(ctx context.Context, employeeID string, req DailyStateRequest) (DailyStateResponse, error) {
	date, err := s.parseDateOrToday(req.Date)
	if err != nil {
		return DailyStateResponse{}, err
	}
	emp, err := s.lookup(ctx, employeeID)
	if err != nil {
		return DailyStateResponse{}, err
	}

	states, err := s.classifyRange(ctx, []employee.Employee{emp}, date, date)
	if err != nil {
		return DailyStateResponse{}, err
	}
	return s.toResponse(states[emp.ID.String()][0]), nil
}

func (s *service) GetPersonnelStatus(ctx context.Context, req DailyStateRequest) (PersonnelStatusResponse, error) {
	date, err := s.parseDateOrToday(req.Date)
	if err != nil {
		return PersonnelStatusResponse{}, err
	}

	emps, err := s.employees.Active(ctx)
	if err != nil {
		return PersonnelStatusResponse{}, err
	}
	states, err := s.classifyRange(ctx, emps, date, date)
	if err != nil {
		return PersonnelStatusResponse{}, err
	}

	resp := PersonnelStatusResponse{
		Date:      calendar.FormatDate(date),
		Employees: make([]PersonnelEntry, 0, len(emps)),
	}
	for _, e := range emps {
		day := states[e.ID.String()][0]
		resp.Employees = append(resp.Employees, PersonnelEntry{
			DailyStateResponse: s.toResponse(day),
			FullName:           e.DisplayName(),
			Department:         e.Department,
			Role:               e.Role,
		})
		if !e.Eligible() {
			continue
		}
		resp.Counts.Total++
		switch day.State {
		case StatePresent:
			resp.Counts.Present++
		case StateRetard:
			resp.Counts.Retard++
		case StateAbsent:
			resp.Counts.Absent++
		case StateRepos:
			resp.Counts.Repos++
		}
	}
	return resp, nil
}

func (s *service) History(ctx context.Context, employeeID string, req HistoryRequest) ([]DailyStateResponse, error) {
	from, errFrom := calendar.ParseDate(req.From)
	to, errTo := calendar.ParseDate(req.To)
	if errFrom != nil || errTo != nil || to.Before(from) {
		return nil, attendanceerrors.ErrInvalidRange
	}
	if len(calendar.Dates(from, to)) > maxHistoryDays {
		return nil, attendanceerrors.ErrRangeTooLong
	}
	if today := s.today(); to.After(today) {
		to = today
	}

	emp, err := s.lookup(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return []DailyStateResponse{}, nil
	}

	states, err := s.classifyRange(ctx, []employee.Employee{emp}, from, to)
	if err != nil {
		return nil, err
	}
	days := states[emp.ID.String()]
	out := make([]DailyStateResponse, 0, len(days))
	for _, d := range days {
		out = append(out, s.toResponse(d))
	}
	return out, nil
}

// MonthlyStates classifies the month up to today. Today is still open, so
// a working day with neither punches nor a ledger absence is left out
// instead of being reported Absent.
func (s *service) MonthlyStates(ctx context.Context, emps []employee.Employee, month time.Time) (map[string][]DailyAttendance, error) {
	from, to := calendar.MonthRange(month)
	today := s.today()
	if to.After(today) {
		to = today
	}
	if to.Before(from) {
		out := make(map[string][]DailyAttendance, len(emps))
		for _, e := range emps {
			out[e.ID.String()] = nil
		}
		return out, nil
	}

	states, err := s.classifyRange(ctx, emps, from, to)
	if err != nil {
		return nil, err
	}
	if !to.Equal(today) {
		return states, nil
	}
	for id, days := range states {
		if n := len(days); n > 0 && days[n-1].pending() {
			states[id] = days[:n-1]
		}
	}
	return states, nil
}

// TopPerformers ranks eligible employees by real worked time over the
// month, ties broken by employee id.
func (s *service) TopPerformers(ctx context.Context, req TopPerformersRequest) ([]TopPerformerResponse, error) {
	month := s.today()
	if req.Month != "" {
		m, err := calendar.ParseMonth(req.Month)
		if err != nil {
			return nil, apperror.ErrInvalidMonth
		}
		month = m
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultTopPerformer
	}
	if limit > maxTopPerformer {
		limit = maxTopPerformer
	}

	active, err := s.employees.Active(ctx)
	if err != nil {
		return nil, err
	}
	emps := make([]employee.Employee, 0, len(active))
	for _, e := range active {
		if e.Eligible() {
			emps = append(emps, e)
		}
	}

	states, err := s.MonthlyStates(ctx, emps, month)
	if err != nil {
		return nil, err
	}

	ranking := make([]TopPerformerResponse, 0, len(emps))
	for _, e := range emps {
		row := TopPerformerResponse{
			EmployeeID: e.ID.String(),
			FullName:   e.DisplayName(),
			Department: e.Department,
		}
		var worked time.Duration
		for _, d := range states[row.EmployeeID] {
			worked += d.Worked
			switch d.State {
			case StatePresent:
				row.PresentDays++
			case StateRetard:
				row.RetardDays++
			}
		}
		row.WorkedMinutes = int(worked / time.Minute)
		row.WorkedHours = math.Round(worked.Hours()*100) / 100
		ranking = append(ranking, row)
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].WorkedMinutes != ranking[j].WorkedMinutes {
			return ranking[i].WorkedMinutes > ranking[j].WorkedMinutes
		}
		return ranking[i].EmployeeID < ranking[j].EmployeeID
	})
	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	for i := range ranking {
		ranking[i].Rank = i + 1
	}
	return ranking, nil
}

// RequestSync queues one sync request per date. Asking again while the
// previous request is still unsent is a no-op.
func (s *service) RequestSync(ctx context.Context, actorID string, req SyncRequest) (SyncResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	date, err := s.parseDateOrToday(req.Date)
	if err != nil {
		return SyncResponse{}, err
	}
	key := calendar.FormatDate(date)
	resp := SyncResponse{Date: key}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("request sync begin tx failed", zap.Error(err))
		return SyncResponse{}, apperror.Internal(err)
	}
	defer tx.Rollback()

	outboxRepo := s.outboxRepo.WithTx(tx)
	pending, err := outboxRepo.HasPending(ctx, events.AttendanceSyncRequestedTopic, key)
	if err != nil {
		log.Error("request sync pending check failed", zap.Error(err))
		return SyncResponse{}, apperror.Internal(err)
	}
	if pending {
		resp.AlreadyPending = true
		return resp, nil
	}

	ev, err := kafka.NewEvent(ctx, "attendance", key, events.EventAttendanceSyncRequested, events.AttendanceSyncRequestedTopic,
		events.AttendanceSyncRequestedEvent{
			EventType:   events.EventAttendanceSyncRequested,
			Date:        key,
			RequestedBy: actorID,
			OccurredAt:  s.now().UTC(),
		})
	if err != nil {
		return SyncResponse{}, apperror.Internal(err)
	}
	if err := outboxRepo.Create(ctx, ev); err != nil {
		log.Error("request sync outbox persist failed", zap.String("date", key), zap.Error(err))
		return SyncResponse{}, apperror.Internal(err)
	}
	if err := tx.Commit(); err != nil {
		log.Error("request sync commit failed", zap.Error(err))
		return SyncResponse{}, apperror.Internal(err)
	}

	log.Info("attendance sync requested", zap.String("date", key), zap.String("actor_id", actorID))
	resp.Queued = true
	return resp, nil
}

// IngestPunches stores a device batch. Unknown device users are counted
// and skipped; replays insert nothing.
func (s *service) IngestPunches(ctx context.Context, event events.PunchesIngestedEvent) (IngestResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	result := IngestResult{Received: len(event.Punches)}
	if len(event.Punches) == 0 {
		return result, nil
	}

	seen := make(map[string]struct{})
	deviceIDs := make([]string, 0)
	for _, p := range event.Punches {
		if _, ok := seen[p.DeviceUserID]; !ok {
			seen[p.DeviceUserID] = struct{}{}
			deviceIDs = append(deviceIDs, p.DeviceUserID)
		}
	}

	emps, err := s.employees.ByDeviceIDs(ctx, deviceIDs)
	if err != nil {
		return IngestResult{}, err
	}

	rows := make([]Punch, 0, len(event.Punches))
	for _, p := range event.Punches {
		emp, ok := emps[p.DeviceUserID]
		if !ok || p.PunchedAt.IsZero() {
			result.Unknown++
			continue
		}
		at := p.PunchedAt.UTC()
		rows = append(rows, Punch{
			ID:          uuid.New(),
			EmployeeID:  emp.ID,
			PunchedAt:   at,
			LogicalDate: s.cal.LogicalDate(at),
			DeviceID:    event.DeviceID,
			Source:      "device",
		})
	}
	if result.Unknown > 0 {
		log.Warn("punches from unknown device users skipped",
			zap.String("batch_id", event.BatchID),
			zap.Int("count", result.Unknown),
		)
	}

	inserted, err := s.repo.InsertPunches(ctx, rows)
	if err != nil {
		log.Error("insert punches failed", zap.String("batch_id", event.BatchID), zap.Error(err))
		return IngestResult{}, apperror.Internal(err)
	}
	result.Inserted = int(inserted)
	result.Duplicates = len(rows) - result.Inserted

	log.Info("punch batch ingested",
		zap.String("batch_id", event.BatchID),
		zap.Int("received", result.Received),
		zap.Int("inserted", result.Inserted),
		zap.Int("duplicates", result.Duplicates),
	)
	return result, nil
}

func formatInstant(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	v := t.In(loc).Format(time.RFC3339)
	return &v
}

func (s *service) toResponse(d DailyAttendance) DailyStateResponse {
	loc := s.cal.Location()
	return DailyStateResponse{
		EmployeeID:     d.EmployeeID,
		Date:           calendar.FormatDate(d.Date),
		State:          string(d.State),
		Shift:          string(d.Shift),
		ClockIn:        formatInstant(d.ClockIn, loc),
		ClockOut:       formatInstant(d.ClockOut, loc),
		LastPunch:      formatInstant(d.LastPunch, loc),
		ScheduledStart: formatInstant(d.ScheduledStart, loc),
		LateMinutes:    int(d.LateBy / time.Minute),
		WorkedMinutes:  int(d.Worked / time.Minute),
		ManualType:     string(d.ManualType),
		Source:         string(d.Source),
		Warnings:       d.Warnings,
	}
}
