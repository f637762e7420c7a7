package notification

import (
	"hris-portal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver middleware.SessionResolver) {
	n := r.Group("/notifications")
	n.Use(middleware.SessionAuth(resolver))
	{
		n.GET("", h.List)
		n.DELETE("", h.Clear)
	}
}
