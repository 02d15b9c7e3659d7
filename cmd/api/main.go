package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/kalendra-hr/hrms-backend-go/internal/config"
	appHTTP "github.com/kalendra-hr/hrms-backend-go/internal/handler/http"
	"github.com/kalendra-hr/hrms-backend-go/internal/pkg/clock"
	"github.com/kalendra-hr/hrms-backend-go/internal/pkg/database"
	"github.com/kalendra-hr/hrms-backend-go/internal/pkg/jwt"
	"github.com/kalendra-hr/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/kalendra-hr/hrms-backend-go/internal/service/attendance"
	authService "github.com/kalendra-hr/hrms-backend-go/internal/service/auth"
	employeeService "github.com/kalendra-hr/hrms-backend-go/internal/service/employee"
	leaveService "github.com/kalendra-hr/hrms-backend-go/internal/service/leave"
	notificationService "github.com/kalendra-hr/hrms-backend-go/internal/service/notification"
	salaryService "github.com/kalendra-hr/hrms-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	systemClock := clock.System()

	notificationSvc := notificationService.NewNotificationService(notificationRepo, logger)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, notificationSvc, systemClock)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, notificationSvc)
	salarySvc := salaryService.NewSalaryService(salaryRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, systemClock)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Salary:       appHTTP.NewSalaryHandler(salarySvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
