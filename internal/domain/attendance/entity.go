package attendance

import (
	"time"
)

// AttendanceLog is one employee's check-in/check-out for a single day.
// Created by the check-in endpoint of the employee app; the reconciliation
// job only ever fills in CheckOut and sets AutoCheckout.
type AttendanceLog struct {
	ID           string
	EmployeeID   string
	CheckIn      time.Time
	CheckOut     *time.Time
	AutoCheckout bool
	WorkMode     *string
	CreatedAt    time.Time
}

// AbsenteeType classifies an employee's disposition for a day. Only Absent
// is ever persisted; NotAbsent exists for bookkeeping during a run and is
// filtered out before the insert phase.
type AbsenteeType string

const (
	AbsenteeTypeAbsent    AbsenteeType = "Absent"
	AbsenteeTypeNotAbsent AbsenteeType = "Not Absent"
)

// TimingFullDay is the timing qualifier for a whole-day absence.
const TimingFullDay = "Full Day"

type AbsenteeRecord struct {
	ID         string
	EmployeeID string
	Type       AbsenteeType
	Timing     *string
	CreatedAt  time.Time
}

// Holiday is a calendar date on which attendance is not enforced.
type Holiday struct {
	ID   string
	Date time.Time
	Name *string
}

// CheckoutUpdate is a scheduled auto-checkout for one attendance log.
type CheckoutUpdate struct {
	LogID    string
	CheckOut time.Time
}
