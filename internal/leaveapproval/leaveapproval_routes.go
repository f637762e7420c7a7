package leaveapproval

import (
	"hris-portal/internal/middleware"
	"hris-portal/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver middleware.SessionResolver, guard middleware.RBACService) {
	group := r.Group("/leave-management")
	group.Use(
		middleware.SessionAuth(resolver),
		middleware.RBACAuthorize(guard, "/leave-management", rbac.ActionView),
	)
	{
		group.GET("", h.All)
		group.PUT("/:id/approve", h.Approve)
		group.PUT("/:id/reject", h.Reject)
	}
}
