package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceLogNotFound = errors.New("attendance log not found")
	ErrNothingToInsert       = errors.New("no absentee records to insert")
)
