package layout

import (
	"hris-portal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, resolver middleware.SessionResolver) {
	group := r.Group("/layout")
	group.Use(middleware.OptionalSession(resolver))
	{
		group.GET("/resolve", h.Resolve)
		group.GET("/navigation", middleware.SessionAuth(resolver), h.Navigation)
	}
}
