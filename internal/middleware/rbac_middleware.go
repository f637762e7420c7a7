package middleware

import (
	"hris-portal/internal/rbac"
	"hris-portal/internal/shared/apperror"
	"hris-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type RBACService interface {
	Enforce(req rbac.EnforceRequest) (bool, error)
}

// RBACAuthorize guards an API group with the page policy of the view it
// feeds. The upstream still authorizes every call.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := service.Enforce(rbac.EnforceRequest{
			Role:     c.GetString("role"),
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, gin.H{
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
