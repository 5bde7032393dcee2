package auth

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, login *EmployeeLogin) error
	FindByEmail(ctx context.Context, email string) (*EmployeeLogin, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	EmployeeProfile(ctx context.Context, loginID uint) (*EmployeeProfile, error)
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

func (r *repository) Create(ctx context.Context, login *EmployeeLogin) error {
	return r.db.WithContext(ctx).Create(login).Error
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*EmployeeLogin, error) {
	var login EmployeeLogin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&login).Error
	if err != nil {
		return nil, err
	}
	return &login, nil
}

func (r *repository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&EmployeeLogin{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) EmployeeProfile(ctx context.Context, loginID uint) (*EmployeeProfile, error) {
	var profile EmployeeProfile
	err := r.db.WithContext(ctx).
		Table("employees").
		Select(`employees.id AS id_employee,
			employees.fullname,
			employees.phone_number,
			departments.name AS name_department,
			divisions.name AS name_division`).
		Joins("JOIN departments ON departments.id = employees.department_id").
		Joins("JOIN divisions ON divisions.id = employees.division_id").
		Where("employees.login_id = ?", loginID).
		Scan(&profile).Error
	if err != nil {
		return nil, err
	}
	if profile.IDEmployee == 0 {
		// login tanpa employee (seharusnya tidak terjadi di alur normal)
		return nil, nil
	}
	return &profile, nil
}
