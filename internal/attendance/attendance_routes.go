package attendance

import (
	"hris-portal/internal/middleware"
	"hris-portal/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver middleware.SessionResolver, guard middleware.RBACService, rdb *redis.Client) {
	attendance := r.Group("/attendance")
	attendance.Use(middleware.SessionAuth(resolver))
	{
		attendance.GET("/daily-report", middleware.RBACAuthorize(guard, "/daily-report", rbac.ActionView), h.DailyReport)

		tracker := attendance.Group("", middleware.RBACAuthorize(guard, "/attendance", rbac.ActionView))
		tracker.GET("", h.Overview)
		tracker.GET("/logs", h.Refresh)
		tracker.GET("/stream", h.Stream)
		tracker.GET("/export", h.Export)
		tracker.POST("/clock-in", middleware.Idempotency(rdb), h.ClockIn)
		tracker.PATCH("/clock-out/:id", h.ClockOut)
	}
}
