package main

import (
	"fmt"
	"net/http"

	"github.com/qcc-attendance/attendance-backend-go/internal/config"
	appHTTP "github.com/qcc-attendance/attendance-backend-go/internal/handler/http"
	"github.com/qcc-attendance/attendance-backend-go/internal/pkg/clock"
	"github.com/qcc-attendance/attendance-backend-go/internal/pkg/cron"
	"github.com/qcc-attendance/attendance-backend-go/internal/pkg/database"
	"github.com/qcc-attendance/attendance-backend-go/internal/pkg/jwt"
	"github.com/qcc-attendance/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/qcc-attendance/attendance-backend-go/internal/service/attendance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	geofenceRepo := postgresql.NewGeofenceRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	systemClock := clock.New()

	attendanceSvc := attendanceService.NewAttendanceService(
		postgresql.NewTxManager(db),
		attendanceRepo,
		geofenceRepo,
		staffRepo,
		leaveRepo,
		auditRepo,
		systemClock,
		cfg.Attendance,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	locationHandler := appHTTP.NewLocationHandler(geofenceRepo)
	reportHandler := appHTTP.NewReportHandler(attendanceSvc)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo, auditRepo, systemClock, cfg.Attendance.Timezone)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		locationHandler,
		reportHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
