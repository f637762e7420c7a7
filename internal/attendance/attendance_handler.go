package attendance

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"hris-portal/internal/session"
	"hris-portal/internal/shared/apperror"
	"hris-portal/internal/shared/response"
	"hris-portal/internal/store"

	"github.com/gin-gonic/gin"
)

// Watcher ties a background task to the portal session so logout stops it.
type Watcher interface {
	Watch(parent context.Context, id string) (context.Context, func())
}

type Handler struct {
	service      Service
	watcher      Watcher
	pollInterval time.Duration
}

func NewHandler(service Service, watcher Watcher, pollInterval time.Duration) *Handler {
	return &Handler{service: service, watcher: watcher, pollInterval: pollInterval}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func currentStore(c *gin.Context) (*store.Store, bool) {
	st, ok := session.CurrentStore(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
	}
	return st, ok
}

func (h *Handler) Overview(c *gin.Context) {
	st, ok := currentStore(c)
	if !ok {
		return
	}
	ov, err := h.service.Overview(c.Request.Context(), st)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ov, nil)
}

func (h *Handler) Refresh(c *gin.Context) {
	st, ok := currentStore(c)
	if !ok {
		return
	}
	ov, err := h.service.FetchLogs(c.Request.Context(), st)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ov, nil)
}

func (h *Handler) ClockIn(c *gin.Context) {
	st, ok := currentStore(c)
	if !ok {
		return
	}

	var req ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, err)
		return
	}

	sess, err := h.service.ClockIn(c.Request.Context(), st, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, sess, nil)
}

func (h *Handler) ClockOut(c *gin.Context) {
	st, ok := currentStore(c)
	if !ok {
		return
	}

	sess, err := h.service.ClockOut(c.Request.Context(), st, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sess, nil)
}

func (h *Handler) DailyReport(c *gin.Context) {
	rows, err := h.service.DailyReport(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows, nil)
}

func (h *Handler) Export(c *gin.Context) {
	st, ok := currentStore(c)
	if !ok {
		return
	}

	data, err := h.service.Export(c.Request.Context(), st)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("attendance-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// Stream keeps the attendance view in sync over server-sent events. The
// poller lives exactly as long as the stream: closing the view or logging out
// stops it.
func (h *Handler) Stream(c *gin.Context) {
	st, ok := currentStore(c)
	if !ok {
		return
	}
	s, _ := session.Current(c)

	ctx, stop := h.watcher.Watch(c.Request.Context(), s.ID)
	updates := make(chan Overview, 1)
	done := make(chan struct{})

	go func() {
		defer close(done)
		_ = h.service.Poll(ctx, st, h.pollInterval, func(ov Overview) {
			select {
			case updates <- ov:
			case <-ctx.Done():
			}
		})
	}()

	defer func() {
		stop()
		<-done
	}()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(w io.Writer) bool {
		select {
		case ov := <-updates:
			c.SSEvent("attendance", ov)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
