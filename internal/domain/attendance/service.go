package attendance

import (
	"context"
	"time"
)

// ReconciliationService defines the daily attendance reconciliation job.
type ReconciliationService interface {
	// Reconcile decides and applies the disposition for every employee for
	// the current date: mark absent, schedule an auto-checkout, or leave
	// alone. It no-ops on weekends and holidays. All failures are logged at
	// the job boundary; the returned error exists for the scheduler's log
	// line only.
	Reconcile(ctx context.Context) error

	// IsWorkingDay reports whether attendance is enforced on the given date.
	IsWorkingDay(date time.Time) bool

	// RefreshHolidays reloads the holiday calendar into the in-process cache.
	RefreshHolidays(ctx context.Context) error
}
