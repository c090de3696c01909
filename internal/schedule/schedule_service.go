package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/calendar"
	scheduleerrors "github.com/anzallkiyteb-cell/bey/internal/schedule/errors"
	"github.com/anzallkiyteb-cell/bey/internal/shared/apperror"
	"github.com/anzallkiyteb-cell/bey/internal/shared/audit"
	"github.com/anzallkiyteb-cell/bey/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]ScheduleResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) (ScheduleResponse, error)
	Upsert(ctx context.Context, actorID, employeeID string, req UpsertScheduleRequest) (ScheduleResponse, error)
	UpdateDay(ctx context.Context, actorID, employeeID, day string, req UpdateDayRequest) (ScheduleResponse, error)
	ApplyMondayToAll(ctx context.Context, actorID, employeeID string, req ApplyMondayRequest) (ScheduleResponse, error)
	Resolve(ctx context.Context, employeeID, date string) (ResolutionResponse, error)

	// ScheduleFor returns nil when the employee has no schedule. An
	// unreadable record comes back with Schedule.Invalid set.
	ScheduleFor(ctx context.Context, employeeID string) (*Schedule, error)
	SchedulesFor(ctx context.Context, employeeIDs []string) (map[string]*Schedule, error)
	Resolver() Resolver
}

type service struct {
	db       *sql.DB
	repo     Repository
	resolver Resolver
	audit    audit.Logger
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, resolver Resolver, auditLogger audit.Logger, logger ...*zap.Logger) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop{}
	}
	return &service{
		db:       db,
		repo:     repo,
		resolver: resolver,
		audit:    auditLogger,
		logger:   l,
	}
}

func (s *service) Resolver() Resolver {
	return s.resolver
}

func validateEmployeeID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, scheduleerrors.ErrInvalidEmployeeID
	}
	return parsed, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return scheduleerrors.ErrScheduleNotFound
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Internal(err)
}

func (s *service) GetAll(ctx context.Context) ([]ScheduleResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list schedules failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	out := make([]ScheduleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, mapToResponse(&rows[i]))
	}
	return out, nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) (ScheduleResponse, error) {
	if _, err := validateEmployeeID(employeeID); err != nil {
		return ScheduleResponse{}, err
	}

	row, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return ScheduleResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(row), nil
}

func (s *service) Upsert(ctx context.Context, actorID, employeeID string, req UpsertScheduleRequest) (ScheduleResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	empID, err := validateEmployeeID(employeeID)
	if err != nil {
		return ScheduleResponse{}, err
	}

	mode, err := ParseMode(req.Mode)
	if err != nil {
		return ScheduleResponse{}, scheduleerrors.InvalidSchedule([]string{err.Error()})
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("upsert schedule begin tx failed", zap.Error(err))
		return ScheduleResponse{}, apperror.Internal(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row, err := qtx.FindByEmployeeForUpdate(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("upsert schedule load failed", zap.Error(err))
			return ScheduleResponse{}, mapRepositoryError(err)
		}
		row = NewShiftSchedule(empID)
	}

	if problems := applyUpsert(row, mode, req); len(problems) > 0 {
		log.Warn("upsert schedule rejected",
			zap.String("employee_id", employeeID),
			zap.Strings("problems", problems),
		)
		return ScheduleResponse{}, scheduleerrors.InvalidSchedule(problems)
	}
	if _, err := row.ToSchedule(); err != nil {
		return ScheduleResponse{}, scheduleerrors.InvalidSchedule([]string{err.Error()})
	}

	row.UpdatedBy = actorUUID(actorID)
	if err := qtx.Save(ctx, row); err != nil {
		log.Error("upsert schedule persist failed", zap.Error(err))
		return ScheduleResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("upsert schedule commit failed", zap.Error(err))
		return ScheduleResponse{}, apperror.Internal(err)
	}

	log.Info("schedule saved", zap.String("employee_id", employeeID), zap.String("mode", string(mode)))
	return mapToResponse(row), nil
}

// applyUpsert copies the request onto row and returns every rejected field.
// Nothing is partially validated: the caller discards row on problems.
func applyUpsert(row *ShiftSchedule, mode Mode, req UpsertScheduleRequest) []string {
	var problems []string

	row.SetMode(mode)

	for key, value := range req.Days {
		wd, err := ParseDayKey(key)
		if err != nil {
			problems = append(problems, err.Error())
			continue
		}
		cat, err := ParseCategory(value)
		if err != nil {
			problems = append(problems, DayKey(wd)+": "+err.Error())
			continue
		}
		row.SetCategory(wd, cat)
	}

	if req.Split != nil {
		fields := []struct {
			label string
			value string
			dst   *string
		}{
			{"p1_in", req.Split.P1In, &row.P1In},
			{"p1_out", req.Split.P1Out, &row.P1Out},
			{"p2_in", req.Split.P2In, &row.P2In},
			{"p2_out", req.Split.P2Out, &row.P2Out},
		}
		for _, f := range fields {
			if f.value == "" {
				continue
			}
			c, err := calendar.ParseClock(f.value)
			if err != nil {
				problems = append(problems, f.label+": "+err.Error())
				continue
			}
			*f.dst = c.String()
		}
	}

	for key, pair := range req.Fixed {
		wd, err := ParseDayKey(key)
		if err != nil {
			problems = append(problems, err.Error())
			continue
		}
		in, errIn := calendar.ParseClock(pair.In)
		out, errOut := calendar.ParseClock(pair.Out)
		if errIn != nil || errOut != nil {
			problems = append(problems, fmt.Sprintf("%s: invalid fixed hours %q-%q", key, pair.In, pair.Out))
			continue
		}
		if !(Window{Start: in, End: out}).Valid() {
			problems = append(problems, fmt.Sprintf("%s: fixed out must be after in", key))
			continue
		}
		row.SetFixedPair(wd, in.String(), out.String())
	}

	if mode == ModeCoupure {
		p1, err1 := parseWindow("p1", row.P1In, row.P1Out, DefaultP1In, DefaultP1Out)
		p2, err2 := parseWindow("p2", row.P2In, row.P2Out, DefaultP2In, DefaultP2Out)
		if err1 == nil && err2 == nil {
			switch {
			case !p1.Valid() || !p2.Valid():
				problems = append(problems, "coupure periods must end after they start")
			case p2.Start.Offset() < p1.End.Offset():
				problems = append(problems, "coupure periods overlap")
			}
		}
	}

	sort.Strings(problems)
	return problems
}

func (s *service) UpdateDay(ctx context.Context, actorID, employeeID, day string, req UpdateDayRequest) (ScheduleResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	empID, err := validateEmployeeID(employeeID)
	if err != nil {
		return ScheduleResponse{}, err
	}
	wd, err := ParseDayKey(day)
	if err != nil {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidDay
	}
	cat, err := ParseCategory(req.Category)
	if err != nil {
		return ScheduleResponse{}, scheduleerrors.InvalidSchedule([]string{err.Error()})
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update day begin tx failed", zap.Error(err))
		return ScheduleResponse{}, apperror.Internal(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row, err := qtx.FindByEmployeeForUpdate(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return ScheduleResponse{}, mapRepositoryError(err)
		}
		row = NewShiftSchedule(empID)
	}

	row.SetCategory(wd, cat)
	row.UpdatedBy = actorUUID(actorID)
	if err := qtx.Save(ctx, row); err != nil {
		log.Error("update day persist failed", zap.Error(err))
		return ScheduleResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		log.Error("update day commit failed", zap.Error(err))
		return ScheduleResponse{}, apperror.Internal(err)
	}

	log.Info("shift day updated",
		zap.String("employee_id", employeeID),
		zap.String("day", DayKey(wd)),
		zap.String("category", string(cat)),
	)
	return mapToResponse(row), nil
}

// ApplyMondayToAll copies Monday's fixed hours to every weekday in one
// transaction. Days that already differ require req.Confirm.
func (s *service) ApplyMondayToAll(ctx context.Context, actorID, employeeID string, req ApplyMondayRequest) (ScheduleResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := validateEmployeeID(employeeID); err != nil {
		return ScheduleResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("apply monday begin tx failed", zap.Error(err))
		return ScheduleResponse{}, apperror.Internal(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row, err := qtx.FindByEmployeeForUpdate(ctx, employeeID)
	if err != nil {
		return ScheduleResponse{}, mapRepositoryError(err)
	}

	monIn, monOut := row.FixedPair(time.Monday)
	if _, err := parseWindow("lun", monIn, monOut, DefaultFixedIn, DefaultFixedOut); err != nil {
		return ScheduleResponse{}, scheduleerrors.InvalidSchedule([]string{err.Error()})
	}

	var differing []string
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if wd == time.Monday {
			continue
		}
		in, out := row.FixedPair(wd)
		if in != monIn || out != monOut {
			differing = append(differing, DayKey(wd))
		}
	}

	if len(differing) > 0 && !req.Confirm {
		log.Info("apply monday needs confirmation",
			zap.String("employee_id", employeeID),
			zap.Strings("days", differing),
		)
		return ScheduleResponse{}, scheduleerrors.ConfirmationRequired(differing)
	}

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		row.SetFixedPair(wd, monIn, monOut)
	}
	row.UpdatedBy = actorUUID(actorID)

	if err := qtx.Save(ctx, row); err != nil {
		log.Error("apply monday persist failed", zap.Error(err))
		return ScheduleResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		log.Error("apply monday commit failed", zap.Error(err))
		return ScheduleResponse{}, apperror.Internal(err)
	}

	s.audit.Log(ctx, audit.Log{
		Action:  audit.ActionScheduleApplied,
		ActorID: actorID,
		Message: "monday hours copied to all days",
		Meta: map[string]any{
			"employee_id": employeeID,
			"in":          monIn,
			"out":         monOut,
			"overwritten": differing,
		},
	})

	return mapToResponse(row), nil
}

func (s *service) Resolve(ctx context.Context, employeeID, date string) (ResolutionResponse, error) {
	if _, err := validateEmployeeID(employeeID); err != nil {
		return ResolutionResponse{}, err
	}
	d, err := calendar.ParseDate(date)
	if err != nil {
		return ResolutionResponse{}, apperror.ErrInvalidDate
	}

	sched, err := s.ScheduleFor(ctx, employeeID)
	if err != nil {
		return ResolutionResponse{}, err
	}

	res := s.resolver.ResolveDay(sched, d.Weekday())
	out := ResolutionResponse{
		EmployeeID: employeeID,
		Date:       calendar.FormatDate(d),
		Day:        DayKey(d.Weekday()),
		Category:   string(res.Category),
		Windows:    make([]WindowResponse, 0, len(res.Windows)),
		IsSplit:    res.IsSplit,
		Configured: res.Configured,
		Warning:    res.Warning,
	}
	for _, w := range res.Windows {
		out.Windows = append(out.Windows, WindowResponse{Start: w.Start.String(), End: w.End.String()})
	}
	return out, nil
}

func (s *service) ScheduleFor(ctx context.Context, employeeID string) (*Schedule, error) {
	row, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("load schedule failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return s.toSchedule(row), nil
}

func (s *service) SchedulesFor(ctx context.Context, employeeIDs []string) (map[string]*Schedule, error) {
	rows, err := s.repo.FindByEmployees(ctx, employeeIDs)
	if err != nil {
		s.logger.Error("load schedules failed", zap.Int("count", len(employeeIDs)), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	out := make(map[string]*Schedule, len(rows))
	for i := range rows {
		out[rows[i].EmployeeID.String()] = s.toSchedule(&rows[i])
	}
	return out, nil
}

func (s *service) toSchedule(row *ShiftSchedule) *Schedule {
	sched, err := row.ToSchedule()
	if err != nil {
		s.logger.Warn("stored schedule is malformed",
			zap.String("employee_id", row.EmployeeID.String()),
			zap.Error(err),
		)
		return &Schedule{EmployeeID: row.EmployeeID.String(), Invalid: err.Error()}
	}
	return sched
}

func actorUUID(actorID string) *uuid.UUID {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return nil
	}
	return &id
}

func mapToResponse(row *ShiftSchedule) ScheduleResponse {
	resp := ScheduleResponse{
		EmployeeID: row.EmployeeID.String(),
		Days:       make([]DayScheduleResponse, 0, 7),
		Split: SplitTimesRequest{
			P1In:  row.P1In,
			P1Out: row.P1Out,
			P2In:  row.P2In,
			P2Out: row.P2Out,
		},
	}

	if mode, err := row.Mode(); err != nil {
		resp.Warning = err.Error()
	} else {
		resp.Mode = string(mode)
	}

	// Monday first, the way the roster is displayed.
	for i := 1; i <= 7; i++ {
		wd := time.Weekday(i % 7)
		in, out := row.FixedPair(wd)
		resp.Days = append(resp.Days, DayScheduleResponse{
			Day:      DayKey(wd),
			Category: strings.TrimSpace(row.Category(wd)),
			FixedIn:  in,
			FixedOut: out,
		})
	}

	if !row.UpdatedAt.IsZero() {
		resp.UpdatedAt = row.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
