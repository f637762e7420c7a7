package project

import (
	"hris-portal/internal/middleware"
	"hris-portal/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver middleware.SessionResolver, guard middleware.RBACService, rdb *redis.Client) {
	projects := r.Group("/projects")
	projects.Use(middleware.SessionAuth(resolver))
	{
		projects.GET("", middleware.RBACAuthorize(guard, "/projects", rbac.ActionView), h.List)
		projects.GET("/:id", middleware.RBACAuthorize(guard, "/projects", rbac.ActionView), h.Get)
		projects.POST("",
			middleware.RBACAuthorize(guard, "/add-project", rbac.ActionView),
			middleware.Idempotency(rdb),
			h.Create,
		)
	}
}
