package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"hris-portal/internal/employee"
	employeeerrors "hris-portal/internal/employee/errors"
	employeeMock "hris-portal/internal/employee/mock"
	"hris-portal/internal/shared/apperror"
	"hris-portal/internal/store"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func salary(v float64) *float64 { return &v }

func validRegister() employee.RegisterRequest {
	return employee.RegisterRequest{
		Name:        "Asha",
		LastName:    "Rao",
		Email:       "asha@paarsiv.com",
		Password:    "password1",
		Department:  "Engineering",
		JobTitle:    "Backend Developer",
		JobCategory: "Information Technology",
		Position:    "Senior",
		Salary:      salary(90000),
	}
}

func newStore(t *testing.T) *store.Store {
	st := store.New("sid-employee")
	t.Cleanup(st.Close)
	return st
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := employeeMock.NewMockGateway(ctrl)
	db, redisMock := redismock.NewClientMock()
	service := employee.NewService(mockGateway, db)
	ctx := context.Background()
	st := newStore(t)

	t.Run("Success Register", func(t *testing.T) {
		req := validRegister()
		mockGateway.EXPECT().
			Register(ctx, req).
			Return(employee.Employee{ID: "e-1", Name: req.Name, LastName: req.LastName, Email: req.Email}, nil)
		redisMock.ExpectDel(employee.OptionsCacheKey).SetVal(1)

		created, err := service.Register(ctx, st, req)
		require.NoError(t, err)
		assert.Equal(t, "e-1", created.ID)

		// served from the directory slice, no upstream call
		got, err := service.Get(ctx, st, "e-1")
		require.NoError(t, err)
		assert.Equal(t, "Asha Rao", got.FullName())
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("Missing Job Title", func(t *testing.T) {
		req := validRegister()
		req.JobTitle = ""

		_, err := service.Register(ctx, st, req)
		require.Error(t, err)
		assert.Equal(t, "Job Title is required", apperror.ToHTTP(err).Message)
	})

	t.Run("Missing Salary", func(t *testing.T) {
		req := validRegister()
		req.Salary = nil

		_, err := service.Register(ctx, st, req)
		require.Error(t, err)
		assert.Equal(t, "Salary is required", apperror.ToHTTP(err).Message)
	})

	t.Run("Negative Salary", func(t *testing.T) {
		req := validRegister()
		req.Salary = salary(-1)

		_, err := service.Register(ctx, st, req)
		assert.ErrorIs(t, err, employeeerrors.ErrNegativeSalary)
	})
}

func TestService_GetFallsBackToUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := employeeMock.NewMockGateway(ctrl)
	service := employee.NewService(mockGateway, nil)
	ctx := context.Background()
	st := newStore(t)

	mockGateway.EXPECT().Get(ctx, "e-9").Return(employee.Employee{ID: "e-9", Name: "Ravi"}, nil)
	got, err := service.Get(ctx, st, "e-9")
	require.NoError(t, err)
	assert.Equal(t, "Ravi", got.Name)

	mockGateway.EXPECT().Get(ctx, "missing").
		Return(employee.Employee{}, apperror.New(apperror.CodeNotFound, "not here", http.StatusNotFound))
	_, err = service.Get(ctx, st, "missing")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestService_ListUsesSliceUntilRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := employeeMock.NewMockGateway(ctrl)
	service := employee.NewService(mockGateway, nil)
	ctx := context.Background()
	st := newStore(t)

	mockGateway.EXPECT().List(gomock.Any()).Return([]employee.Employee{{ID: "e-1"}}, nil).Times(2)

	list, err := service.List(ctx, st, false)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = service.List(ctx, st, false)
	require.NoError(t, err)

	_, err = service.List(ctx, st, true)
	require.NoError(t, err)
}

func TestService_Options(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := employeeMock.NewMockGateway(ctrl)
	db, redisMock := redismock.NewClientMock()
	service := employee.NewService(mockGateway, db)
	ctx := context.Background()

	t.Run("Cache Miss Fills Cache", func(t *testing.T) {
		mockGateway.EXPECT().List(gomock.Any()).Return([]employee.Employee{
			{ID: "e-1", Name: "Asha", LastName: "Rao", Email: "asha@paarsiv.com", JobTitle: "QA Tester"},
		}, nil)

		want := []employee.Option{{ID: "e-1", Name: "Asha Rao", Email: "asha@paarsiv.com", JobTitle: "QA Tester"}}
		data, _ := json.Marshal(want)

		redisMock.ExpectGet(employee.OptionsCacheKey).RedisNil()
		redisMock.ExpectSet(employee.OptionsCacheKey, data, employee.OptionsCacheTTL).SetVal("OK")

		opts, err := service.Options(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, opts)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("Cache Hit", func(t *testing.T) {
		redisMock.ExpectGet(employee.OptionsCacheKey).SetVal(`[{"id":"e-2","name":"Ravi","email":"ravi@paarsiv.com"}]`)

		opts, err := service.Options(ctx)
		require.NoError(t, err)
		require.Len(t, opts, 1)
		assert.Equal(t, "e-2", opts[0].ID)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}

func TestService_SaveSection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := employeeMock.NewMockGateway(ctrl)
	service := employee.NewService(mockGateway, nil)
	ctx := context.Background()
	st := newStore(t)

	t.Run("Financial Details Saved Then Profile Reloaded", func(t *testing.T) {
		form := &employee.FinancialDetails{BankName: "SBI", IFSC: "SBIN0001", AccountNo: "1234", AccountName: "Asha Rao"}

		gomock.InOrder(
			mockGateway.EXPECT().SaveSection(ctx, http.MethodPost, employee.SectionFinancial, form).Return(nil),
			mockGateway.EXPECT().Me(ctx).Return(employee.Employee{ID: "e-1", FinancialDetails: form}, nil),
		)

		view, err := service.SaveSection(ctx, st, employee.SectionFinancial, form)
		require.NoError(t, err)
		assert.Equal(t, "loaded", view.Status)

		section, err := service.Section(ctx, st, employee.SectionFinancial)
		require.NoError(t, err)
		assert.Equal(t, form, section)
	})

	t.Run("Missing Required Field - No Request", func(t *testing.T) {
		form := &employee.ContactDetails{Phone1: "99999", City: "Pune", Address: "MG Road"}

		_, err := service.SaveSection(ctx, st, employee.SectionContact, form)
		require.Error(t, err)
		assert.Equal(t, "Personal Email is required", apperror.ToHTTP(err).Message)
	})

	t.Run("Family Details Use Put", func(t *testing.T) {
		form := &employee.FamilyDetails{FullName: "Meera Rao", Relationship: "Mother", PhoneNo: "88888", Address: "Pune"}

		mockGateway.EXPECT().SaveSection(ctx, http.MethodPut, employee.SectionFamily, form).Return(nil)
		mockGateway.EXPECT().Me(ctx).Return(employee.Employee{ID: "e-1", FamilyDetails: form}, nil)

		_, err := service.SaveSection(ctx, st, employee.SectionFamily, form)
		require.NoError(t, err)
	})

	t.Run("Job Details Are Read Only", func(t *testing.T) {
		_, err := service.SaveSection(ctx, st, employee.SectionJobDetails, &struct{}{})
		assert.ErrorIs(t, err, employeeerrors.ErrUnknownSection)

		docs, err := service.Section(ctx, st, employee.SectionJobDetails)
		require.NoError(t, err)
		assert.Equal(t, []employee.Document{}, docs)
	})

	t.Run("Unknown Section", func(t *testing.T) {
		_, err := service.Section(ctx, st, "hobbies")
		assert.ErrorIs(t, err, employeeerrors.ErrUnknownSection)
	})
}
