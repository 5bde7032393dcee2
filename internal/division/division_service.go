package division

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	divisionerrors "hradmin/internal/division/errors"
	"hradmin/internal/shared/listquery"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const optionsCacheKey = "divisions:options"

//go:generate mockgen -source=division_service.go -destination=mock/division_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDivisionRequest) (DivisionResponse, error)
	GetAll(ctx context.Context, p listquery.Params) ([]DivisionListItem, int64, error)
	GetOptions(ctx context.Context) ([]OptionItem, error)
	GetByID(ctx context.Context, id uint) (DivisionResponse, error)
	Update(ctx context.Context, id uint, req UpdateDivisionRequest) (DivisionResponse, error)
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
	l := zap.L().Named("division.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("division.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateDivisionRequest) (DivisionResponse, error) {
	div := &Division{
		Name:        req.Name,
		Description: req.Description,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, div)
	})
	if err != nil {
		s.logger.Error("create division failed", zap.Error(err))
		return DivisionResponse{}, err
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("create division success", zap.Uint("division_id", div.ID))

	return mapToResponse(*div), nil
}

func (s *service) GetAll(ctx context.Context, p listquery.Params) ([]DivisionListItem, int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	divs, err := s.repo.FindPage(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	items := make([]DivisionListItem, len(divs))
	for i, d := range divs {
		items[i] = DivisionListItem{
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
		divs, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]OptionItem, len(divs))
		for i, d := range divs {
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

func (s *service) GetByID(ctx context.Context, id uint) (DivisionResponse, error) {
	div, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DivisionResponse{}, mapNotFound(err)
	}

	return mapToResponse(*div), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateDivisionRequest) (DivisionResponse, error) {
	var div *Division
	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		div, err = qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		div.Name = req.Name
		div.Description = req.Description

		return qtx.Update(ctx, div)
	})
	if err != nil {
		s.logger.Error("update division failed", zap.Uint("division_id", id), zap.Error(err))
		return DivisionResponse{}, mapNotFound(err)
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("update division success", zap.Uint("division_id", id))

	return mapToResponse(*div), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		div, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		// Delete diblok selama masih ada employee yang menunjuk ke sini
		inUse, err := qtx.CountEmployees(ctx, id)
		if err != nil {
			return err
		}
		if inUse > 0 {
			return divisionerrors.ErrDivisionInUse
		}

		return qtx.Delete(ctx, div)
	})
	if err != nil {
		s.logger.Error("delete division failed", zap.Uint("division_id", id), zap.Error(err))
		return mapNotFound(err)
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("delete division success", zap.Uint("division_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, optionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate division options cache",
			zap.Error(err),
			zap.String("key", optionsCacheKey),
		)
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return divisionerrors.ErrDivisionNotFound
	}
	return err
}

func mapToResponse(div Division) DivisionResponse {
	return DivisionResponse{
		ID:          div.ID,
		Name:        div.Name,
		Description: div.Description,
	}
}
