package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/techcreator/ems-backend-go/internal/config"
	appHTTP "github.com/techcreator/ems-backend-go/internal/handler/http"
	"github.com/techcreator/ems-backend-go/internal/pkg/cron"
	"github.com/techcreator/ems-backend-go/internal/pkg/database"
	"github.com/techcreator/ems-backend-go/internal/pkg/email"
	"github.com/techcreator/ems-backend-go/internal/pkg/push"
	"github.com/techcreator/ems-backend-go/internal/pkg/slack"
	"github.com/techcreator/ems-backend-go/internal/repository/postgresql"
	attendanceService "github.com/techcreator/ems-backend-go/internal/service/attendance"
	notificationService "github.com/techcreator/ems-backend-go/internal/service/notification"
	reportService "github.com/techcreator/ems-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceLogRepo := postgresql.NewAttendanceLogRepository(db)
	absenteeRepo := postgresql.NewAbsenteeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	deviceTokenRepo := postgresql.NewDeviceTokenRepository(db)

	loc, err := time.LoadLocation(cfg.Job.Timezone)
	if err != nil {
		log.Fatal("Failed to load job timezone:", err)
	}
	checkoutHour, checkoutMinute, err := config.ParseWallClock(cfg.Job.DefaultCheckout)
	if err != nil {
		log.Fatal("Failed to parse default checkout:", err)
	}

	pushClient, err := push.NewClient(context.Background(), cfg.Firebase)
	if err != nil {
		log.Fatal("Failed to initialize push client:", err)
	}
	slackClient := slack.NewClient(cfg.Slack)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	reconciliationService := attendanceService.NewReconciliationService(
		employeeRepo,
		attendanceLogRepo,
		absenteeRepo,
		holidayRepo,
		loc,
		checkoutHour,
		checkoutMinute,
	)
	notifService := notificationService.NewNotificationService(deviceTokenRepo, pushClient)
	reportSvc := reportService.NewReportService()

	scheduler := cron.NewScheduler(loc)
	jobs := cron.NewAttendanceJobs(reconciliationService, slackClient, cfg.Job.ReconcileSpec)
	if err := jobs.RegisterJobs(scheduler); err != nil {
		log.Fatal("Failed to register scheduled jobs:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	notifHandler := appHTTP.NewNotificationHandler(notifService)
	slackHandler := appHTTP.NewSlackHandler(slackClient)
	emailHandler := appHTTP.NewEmailHandler(emailService)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		notifHandler,
		slackHandler,
		emailHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
