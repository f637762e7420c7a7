package leaveapproval

import (
	"errors"
	"net/http"

	leaveerrors "hris-portal/internal/leave/errors"
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
	if errors.Is(err, leaveerrors.ErrRejectionReasonRequired) {
		response.Warning(c, http.StatusBadRequest, leaveerrors.ErrRejectionReasonRequired.Message)
		return
	}
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) All(c *gin.Context) {
	st, ok := session.CurrentStore(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var filter Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		writeServiceError(c, err)
		return
	}

	view, err := h.service.All(c.Request.Context(), st, filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	page, meta := response.Paginate(view.Leaves, filter.Page, filter.PageSize)
	view.Leaves = page
	response.Success(c, http.StatusOK, view, &meta)
}

func (h *Handler) Approve(c *gin.Context) {
	st, ok := session.CurrentStore(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	rec, err := h.service.Approve(c.Request.Context(), st, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rec, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	st, ok := session.CurrentStore(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req RejectRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeServiceError(c, err)
			return
		}
	}

	rec, err := h.service.Reject(c.Request.Context(), st, c.Param("id"), req.Reason)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rec, nil)
}
