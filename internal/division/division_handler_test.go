package division_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hradmin/internal/division"
	divisionerrors "hradmin/internal/division/errors"
	"hradmin/internal/shared/apperror"
	"hradmin/internal/shared/listquery"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeDivisionService struct {
	CreateFn     func(ctx context.Context, req division.CreateDivisionRequest) (division.DivisionResponse, error)
	GetAllFn     func(ctx context.Context, p listquery.Params) ([]division.DivisionListItem, int64, error)
	GetOptionsFn func(ctx context.Context) ([]division.OptionItem, error)
	GetByIDFn    func(ctx context.Context, id uint) (division.DivisionResponse, error)
	UpdateFn     func(ctx context.Context, id uint, req division.UpdateDivisionRequest) (division.DivisionResponse, error)
	DeleteFn     func(ctx context.Context, id uint) error
}

func (f *fakeDivisionService) Create(ctx context.Context, req division.CreateDivisionRequest) (division.DivisionResponse, error) {
	return f.CreateFn(ctx, req)
}

func (f *fakeDivisionService) GetAll(ctx context.Context, p listquery.Params) ([]division.DivisionListItem, int64, error) {
	return f.GetAllFn(ctx, p)
}

func (f *fakeDivisionService) GetOptions(ctx context.Context) ([]division.OptionItem, error) {
	return f.GetOptionsFn(ctx)
}

func (f *fakeDivisionService) GetByID(ctx context.Context, id uint) (division.DivisionResponse, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeDivisionService) Update(ctx context.Context, id uint, req division.UpdateDivisionRequest) (division.DivisionResponse, error) {
	return f.UpdateFn(ctx, id, req)
}

func (f *fakeDivisionService) Delete(ctx context.Context, id uint) error {
	return f.DeleteFn(ctx, id)
}

func setupHandler(svc division.Service) *division.Handler {
	return division.NewHandler(svc, zap.NewNop())
}

func TestDivisionHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	svc := &fakeDivisionService{
		CreateFn: func(ctx context.Context, req division.CreateDivisionRequest) (division.DivisionResponse, error) {
			assert.Equal(t, "Backend", req.Name)
			return division.DivisionResponse{ID: 1, Name: req.Name}, nil
		},
	}

	h := setupHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/admin/divisions",
		strings.NewReader(`{"name": "Backend"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Division created successfully")
}

func TestDivisionHandler_GetOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeDivisionService{
		GetOptionsFn: func(ctx context.Context) ([]division.OptionItem, error) {
			return []division.OptionItem{{ID: 1, Name: "Backend"}}, nil
		},
	}

	h := setupHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/divisions/options", nil)

	h.GetOptions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Division options fetched successfully")
}

func TestDivisionHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("still referenced - 409", func(t *testing.T) {
		svc := &fakeDivisionService{
			DeleteFn: func(ctx context.Context, id uint) error {
				return divisionerrors.ErrDivisionInUse
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/admin/divisions/1", nil)
		c.Params = gin.Params{{Key: "id", Value: "1"}}

		h.Delete(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("not found - 404", func(t *testing.T) {
		svc := &fakeDivisionService{
			DeleteFn: func(ctx context.Context, id uint) error {
				return divisionerrors.ErrDivisionNotFound
			},
		}

		h := setupHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/admin/divisions/404", nil)
		c.Params = gin.Params{{Key: "id", Value: "404"}}

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
