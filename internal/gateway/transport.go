package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hris-portal/internal/shared/apperror"
	"hris-portal/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Transport handles low-level HTTP to the HR API. The bearer token is taken
// from the request context, so one Transport serves every session.
type Transport struct {
	BaseURL    string
	HTTPClient *http.Client
	logger     *zap.Logger
}

// NewTransport creates a transport with base URL and per-request timeout
func NewTransport(baseURL string, timeout time.Duration, logger ...*zap.Logger) *Transport {
	l := zap.L().Named("gateway.transport")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("gateway.transport")
	}
	return &Transport{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		logger:     l,
	}
}

// helper: build full URL with query params
func (t *Transport) buildURL(path string, query map[string]string) (string, error) {
	u, err := url.Parse(t.BaseURL + path)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, v := range query {
		if v == "" {
			continue
		}
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (t *Transport) Get(ctx context.Context, path string, query map[string]string, out any) error {
	return t.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (t *Transport) Post(ctx context.Context, path string, in, out any) error {
	return t.Do(ctx, http.MethodPost, path, nil, in, out)
}

func (t *Transport) Put(ctx context.Context, path string, in, out any) error {
	return t.Do(ctx, http.MethodPut, path, nil, in, out)
}

func (t *Transport) Patch(ctx context.Context, path string, in, out any) error {
	return t.Do(ctx, http.MethodPatch, path, nil, in, out)
}

// Do sends one JSON request and decodes the answer into out (when non-nil).
// Non-2xx answers come back as *apperror.AppError carrying the server message.
func (t *Transport) Do(ctx context.Context, method, path string, query map[string]string, in, out any) error {
	fullURL, err := t.buildURL(path, query)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "Invalid upstream URL", http.StatusInternalServerError)
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return apperror.Wrap(err, apperror.CodeInvalidInput, "Request could not be encoded", http.StatusBadRequest)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "Invalid upstream request", http.StatusInternalServerError)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := contextutil.GetAccessToken(ctx); token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	log := contextutil.GetLogger(ctx, t.logger)
	start := time.Now()

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.Warn("upstream call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return apperror.Wrap(err, apperror.ErrUpstreamUnavailable.Code, apperror.ErrUpstreamUnavailable.Message, http.StatusServiceUnavailable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeUpstreamError, "Could not read upstream response", http.StatusBadGateway)
	}

	log.Debug("upstream call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode >= 300 {
		return upstreamError(method, path, resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperror.Wrap(err, apperror.CodeUpstreamError, "Unexpected response from HR service", http.StatusBadGateway)
	}
	return nil
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func upstreamError(method, path string, status int, raw []byte) error {
	var eb errorBody
	_ = json.Unmarshal(raw, &eb)

	message := eb.Message
	if message == "" {
		message = eb.Error
	}
	if message == "" {
		message = http.StatusText(status)
	}

	cause := fmt.Errorf("%s %s failed with status code %d", method, path, status)

	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return apperror.Wrap(cause, apperror.CodeInvalidInput, message, http.StatusBadRequest)
	case status == http.StatusUnauthorized:
		return apperror.Wrap(cause, apperror.CodeUnauthorized, message, http.StatusUnauthorized)
	case status == http.StatusForbidden:
		return apperror.Wrap(cause, apperror.CodeForbidden, message, http.StatusForbidden)
	case status == http.StatusNotFound:
		return apperror.Wrap(cause, apperror.CodeNotFound, message, http.StatusNotFound)
	case status == http.StatusConflict:
		return apperror.Wrap(cause, apperror.CodeConflict, message, http.StatusConflict)
	case status == http.StatusTooManyRequests:
		return apperror.Wrap(cause, apperror.CodeTooManyRequests, message, http.StatusTooManyRequests)
	case status >= 500:
		return apperror.Wrap(cause, apperror.CodeUpstreamError, message, http.StatusBadGateway)
	default:
		return apperror.Wrap(cause, apperror.CodeUpstreamError, message, status)
	}
}

// IsUnauthorized reports an expired or revoked upstream token.
func IsUnauthorized(err error) bool {
	return apperror.HasCode(err, apperror.CodeUnauthorized)
}

// IsCanceled reports that the caller went away before the upstream answered.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
