package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/techcreator/ems-backend-go/internal/domain/attendance"
	"github.com/techcreator/ems-backend-go/internal/domain/employee"
)

type ReconciliationServiceImpl struct {
	employee.EmployeeRepository
	logRepo      attendance.AttendanceLogRepository
	absenteeRepo attendance.AbsenteeRepository
	holidayRepo  attendance.HolidayRepository

	holidays       *HolidayCache
	loc            *time.Location
	checkoutHour   int
	checkoutMinute int

	// now is swapped out by tests to pin the run date.
	now func() time.Time
}

func NewReconciliationService(
	employeeRepo employee.EmployeeRepository,
	logRepo attendance.AttendanceLogRepository,
	absenteeRepo attendance.AbsenteeRepository,
	holidayRepo attendance.HolidayRepository,
	loc *time.Location,
	checkoutHour, checkoutMinute int,
) attendance.ReconciliationService {
	return &ReconciliationServiceImpl{
		EmployeeRepository: employeeRepo,
		logRepo:            logRepo,
		absenteeRepo:       absenteeRepo,
		holidayRepo:        holidayRepo,
		holidays:           NewHolidayCache(),
		loc:                loc,
		checkoutHour:       checkoutHour,
		checkoutMinute:     checkoutMinute,
		now:                time.Now,
	}
}

// RefreshHolidays implements attendance.ReconciliationService.
func (s *ReconciliationServiceImpl) RefreshHolidays(ctx context.Context) error {
	dates, err := s.holidayRepo.ListDates(ctx)
	if err != nil {
		return fmt.Errorf("failed to load holiday calendar: %w", err)
	}

	s.holidays.Store(dates)
	slog.Info("Holiday calendar refreshed", "holidays", s.holidays.Len())
	return nil
}

// IsWorkingDay implements attendance.ReconciliationService. Weekends and
// cached holidays are off; everything else is a working day.
func (s *ReconciliationServiceImpl) IsWorkingDay(date time.Time) bool {
	local := date.In(s.loc)
	if wd := local.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !s.holidays.Contains(local)
}

// Reconcile implements attendance.ReconciliationService. It runs once per
// working day, after close of business:
//
//  1. Employees with no attendance log today get an Absent record.
//  2. Open logs (checked in, never checked out) get the default check-out
//     stamped and the auto-checkout flag set.
//  3. Everyone else is left alone.
//
// Checkout updates are applied row by row so one bad log cannot block the
// rest; the absentee batch goes in as a single insert so a partial day can
// never be recorded.
func (s *ReconciliationServiceImpl) Reconcile(ctx context.Context) error {
	if err := s.RefreshHolidays(ctx); err != nil {
		if !s.holidays.Ready() {
			return err
		}
		slog.Warn("Holiday refresh failed, reusing cached calendar", "error", err)
	}

	today := s.localMidnight(s.now())
	if !s.IsWorkingDay(today) {
		slog.Info("Skipping reconciliation on non-working day", "date", today.Format(dateKeyLayout))
		return nil
	}

	dayStart := today
	dayEnd := today.Add(24 * time.Hour)

	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	logs, err := s.logRepo.ListByCheckInRange(ctx, dayStart, dayEnd)
	if err != nil {
		return fmt.Errorf("failed to list attendance logs: %w", err)
	}

	recorded, err := s.absenteeRepo.ListByCreatedRange(ctx, dayStart, dayEnd)
	if err != nil {
		return fmt.Errorf("failed to list absentee records: %w", err)
	}

	hasLog := make(map[string]bool, len(logs))
	for _, log := range logs {
		hasLog[log.EmployeeID] = true
	}

	alreadyRecorded := make(map[string]bool, len(recorded))
	for _, rec := range recorded {
		alreadyRecorded[rec.EmployeeID] = true
	}

	checkedOut, checkoutFailures := s.applyAutoCheckouts(ctx, today, logs)

	absentees := s.classifyAbsentees(employees, hasLog, alreadyRecorded)
	if len(absentees) > 0 {
		if err := s.absenteeRepo.BulkCreate(ctx, absentees); err != nil {
			return fmt.Errorf("failed to insert absentee records: %w", err)
		}
	}

	slog.Info("Attendance reconciliation finished",
		"date", today.Format(dateKeyLayout),
		"employees", len(employees),
		"marked_absent", len(absentees),
		"auto_checkouts", checkedOut,
		"checkout_failures", checkoutFailures,
	)
	return nil
}

// applyAutoCheckouts stamps the default check-out on every open log. Each
// update stands alone: a failure is logged and the loop moves on.
func (s *ReconciliationServiceImpl) applyAutoCheckouts(ctx context.Context, today time.Time, logs []attendance.AttendanceLog) (updated, failed int) {
	defaultOut := time.Date(today.Year(), today.Month(), today.Day(),
		s.checkoutHour, s.checkoutMinute, 0, 0, s.loc).UTC()

	for _, log := range logs {
		if log.CheckOut != nil {
			continue
		}

		checkOut := defaultOut
		if checkOut.Before(log.CheckIn) {
			// Checked in after the default close; never check out before
			// the check-in.
			checkOut = log.CheckIn
		}

		if err := s.logRepo.SetAutoCheckout(ctx, log.ID, checkOut); err != nil {
			failed++
			slog.Error("Failed to auto-checkout attendance log",
				"log_id", log.ID,
				"employee_id", log.EmployeeID,
				"error", err,
			)
			continue
		}
		updated++
	}
	return updated, failed
}

// classifyAbsentees builds the day's absentee batch: one Absent / Full Day
// record per employee without an attendance log, skipping anyone already
// recorded today. Duplicate employee rows keep their first occurrence only,
// and NotAbsent placeholders never reach storage.
func (s *ReconciliationServiceImpl) classifyAbsentees(
	employees []employee.Employee,
	hasLog, alreadyRecorded map[string]bool,
) []attendance.AbsenteeRecord {
	candidates := make([]attendance.AbsenteeRecord, 0, len(employees))
	seen := make(map[string]bool, len(employees))

	for _, emp := range employees {
		if seen[emp.ID] {
			continue
		}
		seen[emp.ID] = true

		if alreadyRecorded[emp.ID] {
			continue
		}

		record := attendance.AbsenteeRecord{
			EmployeeID: emp.ID,
			Type:       attendance.AbsenteeTypeAbsent,
		}
		if hasLog[emp.ID] {
			record.Type = attendance.AbsenteeTypeNotAbsent
		} else {
			timing := attendance.TimingFullDay
			record.Timing = &timing
		}
		candidates = append(candidates, record)
	}

	batch := candidates[:0]
	for _, rec := range candidates {
		if rec.Type == attendance.AbsenteeTypeNotAbsent {
			continue
		}
		batch = append(batch, rec)
	}
	return batch
}

func (s *ReconciliationServiceImpl) localMidnight(t time.Time) time.Time {
	local := t.In(s.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
}
