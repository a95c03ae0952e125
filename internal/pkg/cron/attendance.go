package cron

import (
	"context"
	"log/slog"

	"github.com/techcreator/ems-backend-go/internal/domain/attendance"
)

// ReminderSink receives the fire-and-forget reminder broadcasts. Satisfied
// by the Slack client's webhook sender.
type ReminderSink interface {
	PostWebhook(ctx context.Context, text string) error
}

// Reminder texts and schedules match the EMS rollout: check-in nudge in the
// morning, break start/end around lunch, check-out nudge before close.
const (
	specMorningCheckin  = "45 8 * * *"
	specBreakStart      = "45 12 * * *"
	specBreakEnd        = "45 13 * * *"
	specEveningCheckout = "45 16 * * *"

	msgMorningCheckin  = "Good Morning! Please Don't Forget To Check In."
	msgBreakStart      = "Reminder: Please Don't Forget To Start Break!"
	msgBreakEnd        = "Reminder: Please Don't Forget To End Break!"
	msgEveningCheckout = "Hello Everyone! Ensure You Have Checked Out From EMS."
)

type AttendanceJobs struct {
	reconciler    attendance.ReconciliationService
	reminders     ReminderSink
	reconcileSpec string
}

func NewAttendanceJobs(
	reconciler attendance.ReconciliationService,
	reminders ReminderSink,
	reconcileSpec string,
) *AttendanceJobs {
	return &AttendanceJobs{
		reconciler:    reconciler,
		reminders:     reminders,
		reconcileSpec: reconcileSpec,
	}
}

// RegisterJobs registers the daily reconciliation and the four reminder
// broadcasts. Each runs independently; none awaits another's outcome.
func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) error {
	if err := scheduler.AddJob("attendance_reconciliation", j.reconcileSpec, j.RunReconciliation); err != nil {
		return err
	}

	reminders := []struct {
		name string
		spec string
		text string
	}{
		{"reminder_morning_checkin", specMorningCheckin, msgMorningCheckin},
		{"reminder_break_start", specBreakStart, msgBreakStart},
		{"reminder_break_end", specBreakEnd, msgBreakEnd},
		{"reminder_evening_checkout", specEveningCheckout, msgEveningCheckout},
	}

	for _, r := range reminders {
		text := r.text
		if err := scheduler.AddJob(r.name, r.spec, func(ctx context.Context) error {
			return j.sendReminder(ctx, text)
		}); err != nil {
			return err
		}
	}

	return nil
}

func (j *AttendanceJobs) RunReconciliation(ctx context.Context) error {
	slog.Info("Cron: Starting attendance reconciliation job")
	return j.reconciler.Reconcile(ctx)
}

func (j *AttendanceJobs) sendReminder(ctx context.Context, text string) error {
	if j.reminders == nil {
		slog.Warn("Cron: Reminder sink not configured, skipping broadcast", "text", text)
		return nil
	}
	return j.reminders.PostWebhook(ctx, text)
}
