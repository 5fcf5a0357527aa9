package main

import (
	"fmt"
	"net/http"

	"github.com/crewpay/crewpay-backend-go/internal/config"
	appHTTP "github.com/crewpay/crewpay-backend-go/internal/handler/http"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/database"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/jwt"
	"github.com/crewpay/crewpay-backend-go/internal/repository/postgresql"
	authService "github.com/crewpay/crewpay-backend-go/internal/service/auth"
	employeeService "github.com/crewpay/crewpay-backend-go/internal/service/employee"
	payoutService "github.com/crewpay/crewpay-backend-go/internal/service/payout"
	settingService "github.com/crewpay/crewpay-backend-go/internal/service/setting"
	timeclockService "github.com/crewpay/crewpay-backend-go/internal/service/timeclock"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	payoutRepo := postgresql.NewPayoutRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	timeClockSvc := timeclockService.NewTimeClockService(timeEntryRepo, employeeRepo)
	settingSvc := settingService.NewSettingService(settingRepo)
	payoutSvc := payoutService.NewPayoutService(db, payoutRepo, employeeRepo, timeEntryRepo, settingSvc)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	timeClockHandler := appHTTP.NewTimeClockHandler(timeClockSvc)
	payoutHandler := appHTTP.NewPayoutHandler(payoutSvc)
	settingHandler := appHTTP.NewSettingHandler(settingSvc)
	webhookHandler := appHTTP.NewWebhookHandler(payoutSvc, cfg.Webhook.Secret)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		timeClockHandler,
		payoutHandler,
		settingHandler,
		webhookHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
