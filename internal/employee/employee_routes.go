package employee

import (
	"hris-portal/internal/middleware"
	"hris-portal/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	resolver middleware.SessionResolver,
	guard middleware.RBACService,
	rdb *redis.Client,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.SessionAuth(resolver))
	{
		employees.GET("",
			middleware.RBACAuthorize(guard, "/employees", rbac.ActionView),
			handler.List,
		)

		employees.GET("/options",
			middleware.RateLimitBySession(5, 20),
			middleware.RBACAuthorize(guard, "/add-project", rbac.ActionView),
			handler.Options,
		)

		employees.GET("/:id",
			middleware.RBACAuthorize(guard, "/employees", rbac.ActionView),
			handler.GetByID,
		)

		employees.POST("",
			middleware.RateLimitBySession(0.5, 2),
			middleware.RBACAuthorize(guard, "/add-employee", rbac.ActionView),
			middleware.Idempotency(rdb),
			handler.Register,
		)

		employees.PUT("/:id",
			middleware.RBACAuthorize(guard, "/employees", rbac.ActionView),
			handler.Update,
		)
	}

	profile := r.Group("/profile")
	profile.Use(middleware.SessionAuth(resolver))
	profile.Use(middleware.RBACAuthorize(guard, "/profile-details", rbac.ActionView))
	{
		profile.GET("", handler.Me)
		profile.GET("/:section", handler.Section)
		profile.PUT("/:section", handler.SaveSection)
	}
}
