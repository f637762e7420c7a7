package payroll

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	payrollerrors "hris-portal/internal/payroll/errors"
	"hris-portal/internal/session"
	"hris-portal/internal/shared/apperror"
	"hris-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	now     func() time.Time
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service, now: time.Now}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// period reads ?month=&year=, defaulting to the current month. The month may
// be a number or a name.
func (h *Handler) period(c *gin.Context) (Period, error) {
	now := h.now()
	p := Period{Month: int(now.Month()), Year: now.Year()}

	if raw := strings.TrimSpace(c.Query("month")); raw != "" {
		p.Month = MonthNumber(raw)
		if p.Month == 0 {
			return Period{}, payrollerrors.ErrInvalidMonth
		}
	}
	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			return Period{}, payrollerrors.ErrInvalidYear
		}
		p.Year = y
	}
	return p, CheckPeriod(p)
}

func (h *Handler) List(c *gin.Context) {
	st, ok := session.CurrentStore(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	p, err := h.period(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	view, err := h.service.List(c.Request.Context(), st, p, c.Query("refresh") == "true")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) Preview(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.ErrInvalidInput)
		return
	}
	if err := apperror.ValidateStruct(req.Earnings); err != nil {
		h.writeServiceError(c, err)
		return
	}
	if err := apperror.ValidateStruct(req.Deductions); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, Compute(req.Earnings, req.Deductions), nil)
}

func (h *Handler) Update(c *gin.Context) {
	st, ok := session.CurrentStore(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.ErrInvalidInput)
		return
	}

	row, err := h.service.Update(c.Request.Context(), st, c.Param("employeeId"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, row, nil)
}

func (h *Handler) Mine(c *gin.Context) {
	st, ok := session.CurrentStore(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	p, err := h.period(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	view, err := h.service.MyPayroll(c.Request.Context(), st, p, c.Query("refresh") == "true")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) DownloadPayslip(c *gin.Context) {
	sess, ok := session.Current(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	st, ok := session.CurrentStore(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	p, err := h.period(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	doc, filename, err := h.service.Payslip(c.Request.Context(), st, p, sess.Name)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", doc)
}
