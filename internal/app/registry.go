package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"hris-portal/internal/attendance"
	"hris-portal/internal/auth"
	"hris-portal/internal/config"
	"hris-portal/internal/employee"
	"hris-portal/internal/gateway"
	"hris-portal/internal/layout"
	"hris-portal/internal/leave"
	"hris-portal/internal/leaveapproval"
	"hris-portal/internal/messaging/kafka"
	"hris-portal/internal/middleware"
	"hris-portal/internal/notification"
	"hris-portal/internal/payroll"
	"hris-portal/internal/project"
	"hris-portal/internal/rbac"
	"hris-portal/internal/rbac/infra"
	"hris-portal/internal/session"
	"hris-portal/internal/todo"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const sessionSweepInterval = time.Minute

func registerModules(
	ctx context.Context,
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	)

	// --- Infrastructure ---
	transport := gateway.NewTransport(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	recorder := kafka.NewRecorder(kafka.NewOutboxRepository(db))
	sessions := session.NewManager(session.NewRepository(rdb), cfg.SessionTTL)
	go sessions.RunSweeper(ctx, sessionSweepInterval)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(
		rbac.NewStaticRepository(layout.Policies(), session.RoleAdmin, session.RoleEmployee),
		enforcer,
	)
	if err := rbacService.LoadPolicy(); err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(auth.NewGateway(transport), sessions)
	attendanceService := attendance.NewService(attendance.NewGateway(transport), recorder, cfg.Location)
	leaveService := leave.NewService(leave.NewGateway(transport), recorder)
	leaveApprovalService := leaveapproval.NewService(leaveapproval.NewGateway(transport), recorder)
	employeeService := employee.NewService(employee.NewGateway(transport), rdb)
	projectService := project.NewService(project.NewGateway(transport))
	payrollService := payroll.NewService(payroll.NewGateway(transport), recorder)
	todoService := todo.NewService(todo.NewRepository(gormDB))
	notificationService := notification.NewService(notification.NewRepository(rdb))
	layoutService := layout.NewService(rbacService)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.SecureCookies())
	attendanceHandler := attendance.NewHandler(attendanceService, sessions, cfg.AttendancePollInterval)
	leaveHandler := leave.NewHandler(leaveService)
	leaveApprovalHandler := leaveapproval.NewHandler(leaveApprovalService)
	employeeHandler := employee.NewHandler(employeeService)
	projectHandler := project.NewHandler(projectService)
	payrollHandler := payroll.NewHandler(payrollService)
	todoHandler := todo.NewHandler(todoService)
	notificationHandler := notification.NewHandler(notificationService)
	layoutHandler := layout.NewHandler(layoutService)
	rbacHandler := rbac.NewHandler(rbacService)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, sessions)
		layout.RegisterRoutes(api, layoutHandler, sessions)
		attendance.RegisterRoutes(api, attendanceHandler, sessions, rbacService, rdb)
		leave.RegisterRoutes(api, leaveHandler, sessions, rbacService, rdb)
		leaveapproval.RegisterRoutes(api, leaveApprovalHandler, sessions, rbacService)
		employee.RegisterRoutes(api, employeeHandler, sessions, rbacService, rdb)
		project.RegisterRoutes(api, projectHandler, sessions, rbacService, rdb)
		payroll.RegisterRoutes(api, payrollHandler, sessions, rbacService)
		todo.RegisterRoutes(api, todoHandler, sessions, rbacService)
		notification.RegisterRoutes(api, notificationHandler, sessions)

		admin := api.Group("", middleware.SessionAuth(sessions), middleware.RoleMiddleware(session.RoleAdmin))
		rbac.RegisterRoutes(admin, rbacHandler)
	}

	return nil
}
