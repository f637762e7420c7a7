package employee

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	employeeerrors "hris-portal/internal/employee/errors"
	"hris-portal/internal/session"
	"hris-portal/internal/shared/apperror"
	"hris-portal/internal/shared/response"
	"hris-portal/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) currentStore(c *gin.Context) (*store.Store, bool) {
	st, ok := session.CurrentStore(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
	}
	return st, ok
}

func (h *Handler) Register(c *gin.Context) {
	st, ok := h.currentStore(c)
	if !ok {
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), st, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	st, ok := h.currentStore(c)
	if !ok {
		return
	}

	list, err := h.service.List(c.Request.Context(), st, c.Query("refresh") == "true")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp := make([]Employee, 0, len(list))
	q := strings.TrimSpace(strings.ToLower(c.Query("q")))
	for _, e := range list {
		if q == "" ||
			strings.Contains(strings.ToLower(e.FullName()), q) ||
			strings.Contains(strings.ToLower(e.Email), q) ||
			strings.Contains(strings.ToLower(e.Department), q) {
			resp = append(resp, e)
		}
	}

	sortBy := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_by", "name")))
	sortDir := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_dir", "asc")))
	sort.SliceStable(resp, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "email":
			less = strings.ToLower(resp[i].Email) < strings.ToLower(resp[j].Email)
		case "department":
			less = strings.ToLower(resp[i].Department) < strings.ToLower(resp[j].Department)
		default:
			less = strings.ToLower(resp[i].FullName()) < strings.ToLower(resp[j].FullName())
		}
		if sortDir == "desc" {
			return !less
		}
		return less
	})

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) Options(c *gin.Context) {
	opts, err := h.service.Options(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, opts, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	st, ok := h.currentStore(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), st, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	st, ok := h.currentStore(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), st, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Me(c *gin.Context) {
	st, ok := h.currentStore(c)
	if !ok {
		return
	}

	view, err := h.service.Me(c.Request.Context(), st, c.Query("refresh") == "true")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) Section(c *gin.Context) {
	st, ok := h.currentStore(c)
	if !ok {
		return
	}

	data, err := h.service.Section(c.Request.Context(), st, c.Param("section"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, data, nil)
}

func (h *Handler) SaveSection(c *gin.Context) {
	st, ok := h.currentStore(c)
	if !ok {
		return
	}

	name := c.Param("section")
	form, ok := NewSectionForm(name)
	if !ok {
		h.writeServiceError(c, employeeerrors.ErrUnknownSection)
		return
	}
	if err := c.ShouldBindJSON(form); err != nil {
		h.writeServiceError(c, err)
		return
	}

	view, err := h.service.SaveSection(c.Request.Context(), st, name, form)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}
