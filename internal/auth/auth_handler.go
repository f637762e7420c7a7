package auth

import (
	"net/http"

	"hris-portal/internal/session"
	"hris-portal/internal/shared/apperror"
	"hris-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service       Service
	secureCookies bool
}

func NewHandler(s Service, secureCookies bool) *Handler {
	return &Handler{service: s, secureCookies: secureCookies}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (ctrl *Handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   ctrl.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (ctrl *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, err)
		return
	}

	sess, err := ctrl.service.Login(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	maxAge := int(sess.ExpiresAt.Sub(sess.CreatedAt).Seconds())
	if maxAge <= 0 {
		maxAge = 86400
	}
	ctrl.setSessionCookie(c, sess.ID, maxAge)
	c.Header(session.HeaderName, sess.ID)

	response.Success(c, http.StatusOK, ViewOf(sess), nil)
}

func (ctrl *Handler) Me(c *gin.Context) {
	sess, ok := session.Current(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	response.Success(c, http.StatusOK, ViewOf(sess), nil)
}

func (ctrl *Handler) Logout(c *gin.Context) {
	sess, ok := session.Current(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	if err := ctrl.service.Logout(c.Request.Context(), sess); err != nil {
		writeServiceError(c, err)
		return
	}
	ctrl.setSessionCookie(c, "", -1)

	response.Success(c, http.StatusOK, gin.H{"redirect": "/login"}, nil)
}

func (ctrl *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, err)
		return
	}

	res, err := ctrl.service.Register(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}
