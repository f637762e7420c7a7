package leaveapproval_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hris-portal/internal/leaveapproval"
	"hris-portal/internal/session"
	"hris-portal/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	OK      bool            `json:"ok"`
	Data    json.RawMessage `json:"data"`
	Warning string          `json:"warning"`
	Meta    *struct {
		Total int64 `json:"total"`
	} `json:"meta"`
}

func newContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	st := store.New("sid-admin")
	t.Cleanup(st.Close)
	session.Bind(c, session.Session{ID: "sid-admin", Role: session.RoleAdmin, Email: "boss@gmail.com"}, st)
	return c, w
}

func TestHandler_RejectWithoutReasonIsWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := leaveapproval.NewHandler(leaveapproval.NewService(mockGateway(ctrl), nil))

	c, w := newContext(t, http.MethodPut, "/leave-management/p1/reject", `{"reason":""}`)
	c.Params = gin.Params{{Key: "id", Value: "p1"}}
	h.Reject(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.OK)
	assert.Equal(t, "Please provide a reason for rejection", env.Warning)
}

func TestHandler_AllPaginates(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mockGateway(ctrl)
	gw.EXPECT().All(gomock.Any()).Return(records(), nil)
	h := leaveapproval.NewHandler(leaveapproval.NewService(gw, nil))

	c, w := newContext(t, http.MethodGet, "/leave-management?page=1&page_size=2", "")
	h.All(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(3), env.Meta.Total)

	var view leaveapproval.ListView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Len(t, view.Leaves, 2)
}
