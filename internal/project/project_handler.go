package project

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

func (h *Handler) List(c *gin.Context) {
	st, ok := session.CurrentStore(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	view, err := h.service.List(c.Request.Context(), st, c.Query("refresh") == "true")
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) Get(c *gin.Context) {
	st, ok := session.CurrentStore(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	p, err := h.service.Get(c.Request.Context(), st, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, nil)
}

func (h *Handler) Create(c *gin.Context) {
	st, ok := session.CurrentStore(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, err)
		return
	}

	p, err := h.service.Create(c.Request.Context(), st, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p, nil)
}
