package auth

import (
	"hris-portal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, resolver middleware.SessionResolver) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/register", middleware.RateLimitByIP(0.1, 2), handler.Register)
		auth.GET("/me", middleware.SessionAuth(resolver), handler.Me)
		auth.POST("/logout", middleware.SessionAuth(resolver), handler.Logout)
	}
}
