package leave

import (
	"net/http"

	"hris-portal/internal/session"
	"hris-portal/internal/shared/apperror"
	"hris-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Apply(c *gin.Context) {
	st, ok := session.CurrentStore(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, err)
		return
	}

	created, err := h.service.Apply(c.Request.Context(), st, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created, nil)
}

func (h *Handler) MyLeaves(c *gin.Context) {
	st, ok := session.CurrentStore(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	fetch := h.service.View
	if c.Query("refresh") == "true" {
		fetch = h.service.MyLeaves
	}

	view, err := fetch(c.Request.Context(), st)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}
