package todo

import (
	"hris-portal/internal/middleware"
	"hris-portal/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver middleware.SessionResolver, guard middleware.RBACService) {
	todos := r.Group("/todos")
	todos.Use(
		middleware.SessionAuth(resolver),
		middleware.RBACAuthorize(guard, "/dashboard-employee", rbac.ActionView),
	)
	{
		todos.GET("", h.List)
		todos.POST("", h.Create)
		todos.PATCH("/:id", h.Update)
		todos.POST("/:id/toggle", h.Toggle)
		todos.DELETE("/:id", h.Delete)
	}
}
