package leave

import (
	"hris-portal/internal/middleware"
	"hris-portal/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver middleware.SessionResolver, guard middleware.RBACService, rdb *redis.Client) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.SessionAuth(resolver))
	{
		leaves.GET("/mine", middleware.RBACAuthorize(guard, "/my-leave", rbac.ActionView), h.MyLeaves)
		leaves.POST("", middleware.RBACAuthorize(guard, "/leave", rbac.ActionView), middleware.Idempotency(rdb), h.Apply)
	}
}
