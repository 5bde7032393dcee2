package division

import (
	"context"

	"hradmin/internal/shared/listquery"

	"gorm.io/gorm"
)

//go:generate mockgen -source=division_repo.go -destination=mock/division_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, div *Division) error
	FindPage(ctx context.Context, p listquery.Params) ([]Division, error)
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id uint) (*Division, error)
	FindAll(ctx context.Context) ([]Division, error)
	Update(ctx context.Context, div *Division) error
	Delete(ctx context.Context, div *Division) error
	CountEmployees(ctx context.Context, id uint) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, div *Division) error {
	return r.db.WithContext(ctx).Create(div).Error
}

func (r *repository) FindPage(ctx context.Context, p listquery.Params) ([]Division, error) {
	var divs []Division
	err := r.db.WithContext(ctx).
		Order(p.OrderClause()).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&divs).Error
	return divs, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Division{}).Count(&count).Error
	return count, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Division, error) {
	var div Division
	err := r.db.WithContext(ctx).First(&div, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &div, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Division, error) {
	var divs []Division
	err := r.db.WithContext(ctx).Order("name ASC").Find(&divs).Error
	return divs, err
}

func (r *repository) Update(ctx context.Context, div *Division) error {
	return r.db.WithContext(ctx).Save(div).Error
}

func (r *repository) Delete(ctx context.Context, div *Division) error {
	return r.db.WithContext(ctx).Delete(div).Error
}

func (r *repository) CountEmployees(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("division_id = ?", id).
		Count(&count).Error
	return count, err
}
