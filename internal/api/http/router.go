package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-console/internal/api/http/handlers"
	"github.com/spec-kit/hr-console/internal/authz"
	"github.com/spec-kit/hr-console/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Dashboard  *handlers.DashboardHandler
	Employees  *handlers.EmployeesHandler
	Attendance *handlers.AttendanceHandler
	Leaves     *handlers.LeavesHandler
	Payroll    *handlers.PayrollHandler
	Reports    *handlers.ReportsHandler
	Settings   *handlers.SettingsHandler
	Guard      *RouteGuard
}

// RegisterRoutes wires the console views behind their role requirements.
// The requirements mirror the authz route table.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// Public views.
	app.Post("/login", cfg.Auth.Login)
	app.Post("/signup", cfg.Auth.Signup)

	// Everything below honors a login redirect latched by a background 401.
	app.Use(cfg.Guard.ConsumeForcedLogin)

	app.Post("/logout", cfg.Guard.Protect(authz.RequireAnyAuthenticated()), cfg.Auth.Logout)
	app.Get("/", cfg.Guard.Protect(authz.RequireAnyAuthenticated()), cfg.Dashboard.Show)

	employees := app.Group("/employees", cfg.Guard.Protect(authz.RequireRoles(domain.RoleAdmin)))
	employees.Get("/", cfg.Employees.List)
	employees.Get("/options", cfg.Employees.Options)
	employees.Post("/", cfg.Employees.Create)
	employees.Put("/:id", cfg.Employees.Update)
	employees.Delete("/:id", cfg.Employees.Delete)

	attendance := app.Group("/attendance", cfg.Guard.Protect(authz.RequireRoles(domain.RoleAdmin, domain.RoleEmployee)))
	attendance.Get("/", cfg.Attendance.List)
	attendance.Post("/check-in", cfg.Attendance.CheckIn)
	attendance.Put("/check-out/:id", cfg.Attendance.CheckOut)
	attendance.Delete("/:id", cfg.Attendance.Delete)
	attendance.Get("/report/:employeeID", cfg.Attendance.Report)
	attendance.Get("/hours/:employeeID", cfg.Attendance.Hours)

	leave := app.Group("/leave", cfg.Guard.Protect(authz.RequireRoles(domain.RoleAdmin, domain.RoleEmployee)))
	leave.Get("/", cfg.Leaves.List)
	leave.Get("/employee/:employeeID", cfg.Leaves.ByEmployee)
	leave.Post("/", cfg.Leaves.Create)
	leave.Put("/resolve/:id", cfg.Leaves.Resolve)
	leave.Delete("/:id", cfg.Leaves.Delete)

	payroll := app.Group("/payroll", cfg.Guard.Protect(authz.RequireRoles(domain.RoleAdmin)))
	payroll.Get("/", cfg.Payroll.List)
	payroll.Post("/", cfg.Payroll.Create)
	payroll.Put("/:id", cfg.Payroll.Update)
	payroll.Delete("/:id", cfg.Payroll.Delete)
	payroll.Get("/report/monthly", cfg.Payroll.MonthlyReport)
	payroll.Get("/report/yearly", cfg.Payroll.YearlyReport)
	payroll.Post("/deduct-leave", cfg.Payroll.DeductLeave)

	app.Get("/reports", cfg.Guard.Protect(authz.RequireRoles(domain.RoleAdmin)), cfg.Reports.Show)

	settings := app.Group("/settings", cfg.Guard.Protect(authz.RequireRoles(domain.RoleAdmin)))
	settings.Get("/", cfg.Settings.Show)
	settings.Post("/accounts", cfg.Settings.CreateAccount)
	settings.Put("/accounts/:id", cfg.Settings.UpdateAccount)
	settings.Delete("/accounts/:id", cfg.Settings.DeleteAccount)

	// Unknown paths land on the default view, authenticated or not.
	app.Use(func(c *fiber.Ctx) error {
		return c.Redirect(authz.DefaultPath, fiber.StatusFound)
	})
}
