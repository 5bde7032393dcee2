package department

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	departmenterrors "hradmin/internal/department/errors"
	"hradmin/internal/shared/listquery"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const optionsCacheKey = "departments:options"

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context, p listquery.Params) ([]DepartmentListItem, int64, error)
	GetOptions(ctx context.Context) ([]OptionItem, error)
	GetByID(ctx context.Context, id uint) (DepartmentResponse, error)
	Update(ctx context.Context, id uint, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	dept := &Department{
		Name:        req.Name,
		Description: req.Description,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, dept)
	})
	if err != nil {
		s.logger.Error("create department failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("create department success", zap.Uint("department_id", dept.ID))

	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context, p listquery.Params) ([]DepartmentListItem, int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	depts, err := s.repo.FindPage(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	items := make([]DepartmentListItem, len(depts))
	for i, d := range depts {
		items[i] = DepartmentListItem{
			No:          p.Number(i),
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
		}
	}

	return items, total, nil
}

func (s *service) GetOptions(ctx context.Context) ([]OptionItem, error) {
	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, optionsCacheKey).Result(); err == nil {
			var resp []OptionItem
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight supaya cache miss serentak tidak membanjiri store
	v, err, _ := s.sf.Do(optionsCacheKey, func() (interface{}, error) {
		depts, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]OptionItem, len(depts))
		for i, d := range depts {
			resp[i] = OptionItem{ID: d.ID, Name: d.Name}
		}

		// 3. Simpan ke Redis (TTL 1 jam cukup karena data master)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, optionsCacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]OptionItem), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (DepartmentResponse, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapNotFound(err)
	}

	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	var dept *Department
	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		dept, err = qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		dept.Name = req.Name
		dept.Description = req.Description

		return qtx.Update(ctx, dept)
	})
	if err != nil {
		s.logger.Error("update department failed", zap.Uint("department_id", id), zap.Error(err))
		return DepartmentResponse{}, mapNotFound(err)
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("update department success", zap.Uint("department_id", id))

	return mapToResponse(*dept), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		dept, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		// Delete diblok selama masih ada employee yang menunjuk ke sini
		inUse, err := qtx.CountEmployees(ctx, id)
		if err != nil {
			return err
		}
		if inUse > 0 {
			return departmenterrors.ErrDepartmentInUse
		}

		return qtx.Delete(ctx, dept)
	})
	if err != nil {
		s.logger.Error("delete department failed", zap.Uint("department_id", id), zap.Error(err))
		return mapNotFound(err)
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("delete department success", zap.Uint("department_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, optionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate department options cache",
			zap.Error(err),
			zap.String("key", optionsCacheKey),
		)
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}
	return err
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          dept.ID,
		Name:        dept.Name,
		Description: dept.Description,
	}
}
