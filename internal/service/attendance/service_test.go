package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techcreator/ems-backend-go/internal/domain/attendance"
	"github.com/techcreator/ems-backend-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
	err       error
	listCalls int
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	f.listCalls++
	return f.employees, f.err
}

type fakeLogRepo struct {
	logs      []attendance.AttendanceLog
	listErr   error
	listCalls int

	updates  map[string]time.Time
	failIDs  map[string]bool
	setCalls int
}

func (f *fakeLogRepo) ListByCheckInRange(ctx context.Context, start, end time.Time) ([]attendance.AttendanceLog, error) {
	f.listCalls++
	return f.logs, f.listErr
}

func (f *fakeLogRepo) SetAutoCheckout(ctx context.Context, logID string, checkOut time.Time) error {
	f.setCalls++
	if f.failIDs[logID] {
		return errors.New("forced update failure")
	}
	if f.updates == nil {
		f.updates = make(map[string]time.Time)
	}
	f.updates[logID] = checkOut
	return nil
}

type fakeAbsenteeRepo struct {
	existing  []attendance.AbsenteeRecord
	listErr   error
	listCalls int

	bulkErr   error
	bulkCalls int
	inserted  []attendance.AbsenteeRecord
}

func (f *fakeAbsenteeRepo) ListByCreatedRange(ctx context.Context, start, end time.Time) ([]attendance.AbsenteeRecord, error) {
	f.listCalls++
	return f.existing, f.listErr
}

func (f *fakeAbsenteeRepo) BulkCreate(ctx context.Context, records []attendance.AbsenteeRecord) error {
	f.bulkCalls++
	if f.bulkErr != nil {
		return f.bulkErr
	}
	f.inserted = append(f.inserted, records...)
	return nil
}

type fakeHolidayRepo struct {
	dates     []time.Time
	err       error
	listCalls int
}

func (f *fakeHolidayRepo) ListDates(ctx context.Context) ([]time.Time, error) {
	f.listCalls++
	return f.dates, f.err
}

type fixture struct {
	svc       *ReconciliationServiceImpl
	employees *fakeEmployeeRepo
	logs      *fakeLogRepo
	absentees *fakeAbsenteeRepo
	holidays  *fakeHolidayRepo
	loc       *time.Location
}

// 2026-08-26 is a Wednesday.
var testRunDate = time.Date(2026, 8, 26, 21, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Karachi")
	require.NoError(t, err)

	f := &fixture{
		employees: &fakeEmployeeRepo{},
		logs:      &fakeLogRepo{},
		absentees: &fakeAbsenteeRepo{},
		holidays:  &fakeHolidayRepo{},
		loc:       loc,
	}

	svc := NewReconciliationService(f.employees, f.logs, f.absentees, f.holidays, loc, 16, 30)
	f.svc = svc.(*ReconciliationServiceImpl)
	f.svc.now = func() time.Time {
		return time.Date(2026, 8, 26, 21, 0, 0, 0, loc)
	}
	return f
}

func newEmployee(name string) employee.Employee {
	return employee.Employee{ID: uuid.NewString(), FullName: name}
}

func openLog(employeeID string, checkIn time.Time) attendance.AttendanceLog {
	return attendance.AttendanceLog{ID: uuid.NewString(), EmployeeID: employeeID, CheckIn: checkIn}
}

func TestReconcileClassifiesEmployees(t *testing.T) {
	f := newFixture(t)

	present := newEmployee("Present And Gone")
	forgetful := newEmployee("Forgot To Check Out")
	missing := newEmployee("Never Showed Up")
	f.employees.employees = []employee.Employee{present, forgetful, missing}

	checkIn := time.Date(2026, 8, 26, 9, 0, 0, 0, f.loc).UTC()
	checkOut := time.Date(2026, 8, 26, 17, 0, 0, 0, f.loc).UTC()

	closed := openLog(present.ID, checkIn)
	closed.CheckOut = &checkOut
	open := openLog(forgetful.ID, checkIn)
	f.logs.logs = []attendance.AttendanceLog{closed, open}

	require.NoError(t, f.svc.Reconcile(context.Background()))

	// Only the employee without any log is marked absent.
	require.Len(t, f.absentees.inserted, 1)
	rec := f.absentees.inserted[0]
	assert.Equal(t, missing.ID, rec.EmployeeID)
	assert.Equal(t, attendance.AbsenteeTypeAbsent, rec.Type)
	require.NotNil(t, rec.Timing)
	assert.Equal(t, attendance.TimingFullDay, *rec.Timing)

	// Only the open log gets the default checkout stamped.
	require.Len(t, f.logs.updates, 1)
	wantOut := time.Date(2026, 8, 26, 16, 30, 0, 0, f.loc).UTC()
	assert.Equal(t, wantOut, f.logs.updates[open.ID])
	assert.Equal(t, 1, f.logs.setCalls)
}

func TestReconcileSkipsWeekend(t *testing.T) {
	f := newFixture(t)
	f.employees.employees = []employee.Employee{newEmployee("Weekend Worker")}
	f.svc.now = func() time.Time {
		// 2026-08-29 is a Saturday.
		return time.Date(2026, 8, 29, 21, 0, 0, 0, f.loc)
	}

	require.NoError(t, f.svc.Reconcile(context.Background()))

	// Nothing may be read or written once the day is ruled out.
	assert.Equal(t, 0, f.employees.listCalls)
	assert.Equal(t, 0, f.logs.listCalls)
	assert.Equal(t, 0, f.absentees.listCalls)
	assert.Equal(t, 0, f.absentees.bulkCalls)
}

func TestReconcileSkipsHoliday(t *testing.T) {
	f := newFixture(t)
	f.employees.employees = []employee.Employee{newEmployee("Holiday Taker")}
	f.holidays.dates = []time.Time{time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)}

	require.NoError(t, f.svc.Reconcile(context.Background()))

	assert.Equal(t, 0, f.employees.listCalls)
	assert.Equal(t, 0, f.logs.listCalls)
	assert.Equal(t, 0, f.absentees.listCalls)
}

func TestReconcileDeduplicatesEmployeeRows(t *testing.T) {
	f := newFixture(t)
	emp := newEmployee("Doubly Listed")
	f.employees.employees = []employee.Employee{emp, emp, emp}

	require.NoError(t, f.svc.Reconcile(context.Background()))

	require.Len(t, f.absentees.inserted, 1)
	assert.Equal(t, emp.ID, f.absentees.inserted[0].EmployeeID)
}

func TestReconcileSkipsAlreadyRecordedEmployees(t *testing.T) {
	f := newFixture(t)
	recorded := newEmployee("Already Recorded")
	fresh := newEmployee("Not Yet Recorded")
	f.employees.employees = []employee.Employee{recorded, fresh}
	f.absentees.existing = []attendance.AbsenteeRecord{
		{ID: uuid.NewString(), EmployeeID: recorded.ID, Type: attendance.AbsenteeTypeAbsent},
	}

	require.NoError(t, f.svc.Reconcile(context.Background()))

	require.Len(t, f.absentees.inserted, 1)
	assert.Equal(t, fresh.ID, f.absentees.inserted[0].EmployeeID)
}

func TestReconcileCheckoutFailureDoesNotBlockSiblings(t *testing.T) {
	f := newFixture(t)
	a := newEmployee("First Open Log")
	b := newEmployee("Second Open Log")
	absent := newEmployee("Absent Anyway")
	f.employees.employees = []employee.Employee{a, b, absent}

	checkIn := time.Date(2026, 8, 26, 9, 0, 0, 0, f.loc).UTC()
	logA := openLog(a.ID, checkIn)
	logB := openLog(b.ID, checkIn)
	f.logs.logs = []attendance.AttendanceLog{logA, logB}
	f.logs.failIDs = map[string]bool{logA.ID: true}

	require.NoError(t, f.svc.Reconcile(context.Background()))

	// The failed update is skipped, the sibling still lands, and the
	// absentee insert still happens.
	assert.Equal(t, 2, f.logs.setCalls)
	assert.Contains(t, f.logs.updates, logB.ID)
	assert.NotContains(t, f.logs.updates, logA.ID)
	require.Len(t, f.absentees.inserted, 1)
	assert.Equal(t, absent.ID, f.absentees.inserted[0].EmployeeID)
}

func TestReconcileClampsCheckoutToCheckIn(t *testing.T) {
	f := newFixture(t)
	late := newEmployee("Evening Starter")
	f.employees.employees = []employee.Employee{late}

	checkIn := time.Date(2026, 8, 26, 18, 15, 0, 0, f.loc).UTC()
	log := openLog(late.ID, checkIn)
	f.logs.logs = []attendance.AttendanceLog{log}

	require.NoError(t, f.svc.Reconcile(context.Background()))

	// A checkout must never precede its check-in.
	assert.Equal(t, checkIn, f.logs.updates[log.ID])
}

func TestReconcileBatchesAbsenteesInOneInsert(t *testing.T) {
	f := newFixture(t)
	f.employees.employees = []employee.Employee{
		newEmployee("One"), newEmployee("Two"), newEmployee("Three"),
	}

	require.NoError(t, f.svc.Reconcile(context.Background()))

	assert.Equal(t, 1, f.absentees.bulkCalls)
	assert.Len(t, f.absentees.inserted, 3)
}

func TestReconcileSkipsInsertWhenNobodyIsAbsent(t *testing.T) {
	f := newFixture(t)
	emp := newEmployee("Diligent")
	f.employees.employees = []employee.Employee{emp}

	checkIn := time.Date(2026, 8, 26, 9, 0, 0, 0, f.loc).UTC()
	checkOut := checkIn.Add(8 * time.Hour)
	log := openLog(emp.ID, checkIn)
	log.CheckOut = &checkOut
	f.logs.logs = []attendance.AttendanceLog{log}

	require.NoError(t, f.svc.Reconcile(context.Background()))

	assert.Equal(t, 0, f.absentees.bulkCalls)
	assert.Equal(t, 0, f.logs.setCalls)
}

func TestReconcilePropagatesBulkInsertFailure(t *testing.T) {
	f := newFixture(t)
	f.employees.employees = []employee.Employee{newEmployee("Unlucky")}
	f.absentees.bulkErr = errors.New("insert failed")

	err := f.svc.Reconcile(context.Background())
	assert.Error(t, err)
	assert.Empty(t, f.absentees.inserted)
}

func TestReconcileAbortsWhenHolidaysNeverLoaded(t *testing.T) {
	f := newFixture(t)
	f.employees.employees = []employee.Employee{newEmployee("Anyone")}
	f.holidays.err = errors.New("calendar unavailable")

	err := f.svc.Reconcile(context.Background())
	assert.Error(t, err)

	// Without a holiday snapshot the day cannot be classified, so nothing
	// may be read or written.
	assert.Equal(t, 0, f.employees.listCalls)
	assert.Equal(t, 0, f.logs.listCalls)
	assert.Equal(t, 0, f.absentees.listCalls)
}

func TestReconcileReusesCachedHolidaysOnRefreshFailure(t *testing.T) {
	f := newFixture(t)
	emp := newEmployee("Steady")
	f.employees.employees = []employee.Employee{emp}

	// First run loads an empty calendar into the cache.
	require.NoError(t, f.svc.Reconcile(context.Background()))
	require.Len(t, f.absentees.inserted, 1)

	// Second run hits a calendar outage but proceeds on the snapshot.
	f.holidays.err = errors.New("calendar unavailable")
	f.absentees.existing = f.absentees.inserted
	f.absentees.inserted = nil

	require.NoError(t, f.svc.Reconcile(context.Background()))
	assert.Equal(t, 2, f.employees.listCalls)
}

func TestIsWorkingDay(t *testing.T) {
	f := newFixture(t)
	f.holidays.dates = []time.Time{time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, f.svc.RefreshHolidays(context.Background()))

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"weekday", time.Date(2026, 8, 26, 12, 0, 0, 0, f.loc), true},
		{"saturday", time.Date(2026, 8, 29, 12, 0, 0, 0, f.loc), false},
		{"sunday", time.Date(2026, 8, 30, 12, 0, 0, 0, f.loc), false},
		{"holiday", time.Date(2026, 8, 14, 12, 0, 0, 0, f.loc), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.svc.IsWorkingDay(tt.date))
		})
	}
}
