package payroll

import (
	"hris-portal/internal/middleware"
	"hris-portal/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, resolver middleware.SessionResolver, guard middleware.RBACService) {
	payroll := r.Group("/payroll")
	payroll.Use(middleware.SessionAuth(resolver))
	{
		payroll.GET("", middleware.RBACAuthorize(guard, "/admin-payroll", rbac.ActionView), handler.List)
		payroll.POST("/preview", middleware.RBACAuthorize(guard, "/add-payroll", rbac.ActionView), handler.Preview)
		payroll.PUT("/:employeeId", middleware.RBACAuthorize(guard, "/add-payroll", rbac.ActionView), handler.Update)

		payroll.GET("/me", middleware.RBACAuthorize(guard, "/employee-payroll", rbac.ActionView), handler.Mine)
		payroll.GET("/me/payslip", middleware.RBACAuthorize(guard, "/employee-payroll", rbac.ActionView), handler.DownloadPayslip)
	}
}
