package employee

import (
	"context"

	"hradmin/internal/shared/listquery"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	FindPage(ctx context.Context, p listquery.Params) ([]ListRow, error)
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id uint) (*Employee, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, empl *Employee) error
	DeleteLogin(ctx context.Context, loginID uint) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindPage(ctx context.Context, p listquery.Params) ([]ListRow, error) {
	var rows []ListRow
	err := r.db.WithContext(ctx).
		Table("employees").
		Select(`employees.id,
			employee_logins.email,
			employees.fullname,
			employees.phone_number,
			employees.address,
			employees.hire_date,
			departments.name AS department_name,
			divisions.name AS division_name`).
		Joins("JOIN employee_logins ON employee_logins.id = employees.login_id").
		Joins("JOIN departments ON departments.id = employees.department_id").
		Joins("JOIN divisions ON divisions.id = employees.division_id").
		Order(p.OrderClause()).
		Limit(p.Limit).
		Offset(p.Offset()).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Employee{}).Count(&count).Error
	return count, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Delete(empl).Error
}

func (r *repository) DeleteLogin(ctx context.Context, loginID uint) error {
	return r.db.WithContext(ctx).
		Table("employee_logins").
		Where("id = ?", loginID).
		Delete(nil).Error
}
