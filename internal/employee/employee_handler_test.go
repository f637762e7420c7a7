package employee_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hris-portal/internal/employee"
	employeeerrors "hris-portal/internal/employee/errors"
	employeeMock "hris-portal/internal/employee/mock"
	"hris-portal/internal/session"
	"hris-portal/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupEmployeeRouter(t *testing.T, svc employee.Service) (*gin.Engine, *store.Store) {
	gin.SetMode(gin.TestMode)
	st := newStore(t)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		session.Bind(c, session.Session{ID: "sid", Role: session.RoleAdmin, Email: "boss@gmail.com"}, st)
		c.Next()
	})

	h := employee.NewHandler(svc)
	r.GET("/employees", h.List)
	r.GET("/employees/options", h.Options)
	r.GET("/employees/:id", h.GetByID)
	r.POST("/employees", h.Register)
	r.GET("/profile/:section", h.Section)
	r.PUT("/profile/:section", h.SaveSection)
	return r, st
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := employeeMock.NewMockService(ctrl)
	router, st := setupEmployeeRouter(t, mockService)

	list := []employee.Employee{
		{ID: "e-1", Name: "Zara", Email: "zara@paarsiv.com", Department: "HR"},
		{ID: "e-2", Name: "Asha", Email: "asha@paarsiv.com", Department: "Engineering"},
		{ID: "e-3", Name: "Ravi", Email: "ravi@paarsiv.com", Department: "Engineering"},
	}

	t.Run("Search Sort And Paginate", func(t *testing.T) {
		mockService.EXPECT().List(gomock.Any(), st, false).Return(list, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?q=engineering&page_size=1", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var res struct {
			Data []employee.Employee `json:"data"`
			Meta struct {
				Total int64 `json:"total"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res.Data, 1)
		assert.Equal(t, "Asha", res.Data[0].Name)
		assert.EqualValues(t, 2, res.Meta.Total)
	})

	t.Run("Refresh", func(t *testing.T) {
		mockService.EXPECT().List(gomock.Any(), st, true).Return(list, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?refresh=true&sort_by=email&sort_dir=desc", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "zara@paarsiv.com")
	})
}

func TestHandler_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := employeeMock.NewMockService(ctrl)
	router, st := setupEmployeeRouter(t, mockService)

	mockService.EXPECT().Get(gomock.Any(), st, "nope").Return(employee.Employee{}, employeeerrors.ErrEmployeeNotFound)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Employee not found")
}

func TestHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := employeeMock.NewMockService(ctrl)
	router, st := setupEmployeeRouter(t, mockService)

	req := validRegister()
	body, _ := json.Marshal(req)

	mockService.EXPECT().Register(gomock.Any(), st, req).Return(employee.Employee{ID: "e-1", Name: req.Name}, nil)

	httpReq := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Sections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := employeeMock.NewMockService(ctrl)
	router, st := setupEmployeeRouter(t, mockService)

	t.Run("Save Binds Typed Form", func(t *testing.T) {
		form := employee.GuarantorDetails{Name: "Kiran", Occupation: "Teacher", Phone: "77777"}
		body, _ := json.Marshal(form)

		mockService.EXPECT().
			SaveSection(gomock.Any(), st, employee.SectionGuarantor, &form).
			Return(employee.ProfileView{Status: "loaded"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/profile/guarantor-details", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Save Unknown Section", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/profile/hobbies", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Read Section", func(t *testing.T) {
		mockService.EXPECT().
			Section(gomock.Any(), st, employee.SectionAcademicRecords).
			Return([]employee.AcademicRecord{{Institution: "IIT", Details: "B.Tech"}}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile/academic-records", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "IIT")
	})
}
