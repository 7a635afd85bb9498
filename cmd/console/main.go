package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/hr-console/internal/api/http"
	"github.com/spec-kit/hr-console/internal/api/http/handlers"
	"github.com/spec-kit/hr-console/internal/config"
	"github.com/spec-kit/hr-console/internal/events"
	"github.com/spec-kit/hr-console/internal/gateway"
	"github.com/spec-kit/hr-console/internal/hrapi"
	"github.com/spec-kit/hr-console/internal/observability"
	"github.com/spec-kit/hr-console/internal/session"
	"github.com/spec-kit/hr-console/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatcher := events.NewInMemoryDispatcher()
	dispatcher.Subscribe(events.EventSessionExpired, func(_ context.Context, ev events.Event) error {
		logger.Info("session expired", zap.Any("payload", ev.Payload))
		return nil
	})

	var store session.Store
	var backend handlers.Pinger
	if cfg.Session.Backend == "redis" {
		redisStore := session.NewRedisStore(cfg.Redis, logger)
		defer redisStore.Close()
		store = redisStore
		backend = redisStore
	} else {
		store = session.NewFileStore(cfg.Session.FilePath)
	}

	if _, err := store.Load(); err != nil {
		logger.Fatal("failed to load session", zap.Error(err))
	}

	metrics := observability.NewMetrics()
	notices := gateway.NewNoticeCenter(logger, dispatcher)
	redirector := gateway.NewLoginRedirector()

	client := gateway.New(cfg.API, gateway.Dependencies{
		Store:      store,
		Notifier:   notices,
		Navigator:  redirector,
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
	})

	authAPI := hrapi.NewAuthAPI(client, store, dispatcher)
	employeesAPI := hrapi.NewEmployeesAPI(client)
	departmentsAPI := hrapi.NewDepartmentsAPI(client)
	positionsAPI := hrapi.NewPositionsAPI(client)
	usersAPI := hrapi.NewUsersAPI(client)
	attendanceAPI := hrapi.NewAttendanceAPI(client)
	leavesAPI := hrapi.NewLeavesAPI(client)
	payrollAPI := hrapi.NewPayrollAPI(client)

	guard := httptransport.NewRouteGuard(store, redirector)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, backend),
		Auth:       handlers.NewAuthHandler(authAPI, notices),
		Dashboard:  handlers.NewDashboardHandler(employeesAPI, leavesAPI, attendanceAPI, payrollAPI),
		Employees:  handlers.NewEmployeesHandler(employeesAPI, departmentsAPI, positionsAPI),
		Attendance: handlers.NewAttendanceHandler(attendanceAPI),
		Leaves:     handlers.NewLeavesHandler(leavesAPI),
		Payroll:    handlers.NewPayrollHandler(payrollAPI),
		Reports:    handlers.NewReportsHandler(employeesAPI, leavesAPI, attendanceAPI, payrollAPI),
		Settings:   handlers.NewSettingsHandler(store, notices, usersAPI),
		Guard:      guard,
	})

	watcher := worker.NewSessionWatcher(store, dispatcher, logger, cfg.Session.WatchInterval())
	go watcher.Run(ctx)

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
