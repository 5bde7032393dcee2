package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hradmin/internal/employee"
	employeeerrors "hradmin/internal/employee/errors"
	"hradmin/internal/shared/apperror"
	"hradmin/internal/shared/listquery"
	"hradmin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeEmployeeService struct {
	GetAllFn  func(ctx context.Context, p listquery.Params) ([]employee.EmployeeListItem, int64, error)
	GetByIDFn func(ctx context.Context, id uint) (employee.EmployeeResponse, error)
	UpdateFn  func(ctx context.Context, id uint, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn  func(ctx context.Context, id uint) error
}

func (f *fakeEmployeeService) GetAll(ctx context.Context, p listquery.Params) ([]employee.EmployeeListItem, int64, error) {
	return f.GetAllFn(ctx, p)
}

func (f *fakeEmployeeService) GetByID(ctx context.Context, id uint) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeEmployeeService) Update(ctx context.Context, id uint, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}

func (f *fakeEmployeeService) Delete(ctx context.Context, id uint) error {
	return f.DeleteFn(ctx, id)
}

func setupHandler(svc employee.Service) *employee.Handler {
	return employee.NewHandler(svc, zap.NewNop())
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success - query resolved to page params", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context, p listquery.Params) ([]employee.EmployeeListItem, int64, error) {
				assert.Equal(t, 2, p.Page)
				assert.Equal(t, 2, p.Limit)
				assert.Equal(t, "employees.fullname", p.SortBy)
				assert.Equal(t, "desc", p.SortOrder)
				return []employee.EmployeeListItem{
					{No: 3, ID: 103, Fullname: "Citra"},
					{No: 4, ID: 104, Fullname: "Dewi"},
				}, 5, nil
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/employees?page=2&sortBy=fullname&sortOrder=desc", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var env response.Envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Success)
		assert.Equal(t, "Employees fetched successfully", env.Message)
		assert.NotNil(t, env.TotalData)
		assert.Equal(t, int64(5), *env.TotalData)
	})

	t.Run("default page size is 2", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context, p listquery.Params) ([]employee.EmployeeListItem, int64, error) {
				assert.Equal(t, 1, p.Page)
				assert.Equal(t, 2, p.Limit)
				return nil, 0, nil
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/employees", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("sortBy outside allow-list rejected", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context, p listquery.Params) ([]employee.EmployeeListItem, int64, error) {
				t.Fatal("service must not be called for a rejected sortBy")
				return nil, 0, nil
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/employees?sortBy=password", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "sortBy must be one of")
	})
}

func TestEmployeeHandler_GetById(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id uint) (employee.EmployeeResponse, error) {
				assert.Equal(t, uint(11), id)
				return employee.EmployeeResponse{ID: 11, Fullname: "Budi Santoso"}, nil
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/employees/11", nil)
		c.Params = gin.Params{{Key: "id", Value: "11"}}

		h.GetById(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Budi Santoso")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		svc := &fakeEmployeeService{}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/employees/abc", nil)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		h.GetById(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid employee ID")
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id uint) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/employees/404", nil)
		c.Params = gin.Params{{Key: "id", Value: "404"}}

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Employee not found")
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id uint, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, uint(11), id)
				assert.Equal(t, "Budi Baru", req.Fullname)
				return employee.EmployeeResponse{ID: 11, Fullname: req.Fullname}, nil
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{
			"fullname": "Budi Baru",
			"phone_number": "+628123456789",
			"address": "Jl. Baru No. 2",
			"hire_date": "2025-02-01",
			"id_department": 3,
			"id_division": 4
		}`
		req := httptest.NewRequest(http.MethodPut, "/admin/employees/11", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: "11"}}

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Employee updated successfully")
	})

	t.Run("invalid body - field errors listed", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id uint, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				t.Fatal("service must not be called on validation failure")
				return employee.EmployeeResponse{}, nil
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest(http.MethodPut, "/admin/employees/11", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: "11"}}

		h.Update(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var env response.Envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Len(t, env.Errors, 6)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id uint) error {
				assert.Equal(t, uint(11), id)
				return nil
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/admin/employees/11", nil)
		c.Params = gin.Params{{Key: "id", Value: "11"}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Employee deleted successfully")
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id uint) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/admin/employees/404", nil)
		c.Params = gin.Params{{Key: "id", Value: "404"}}

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
