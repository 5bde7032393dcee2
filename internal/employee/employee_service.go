package employee

import (
	"context"
	"time"

	"hradmin/internal/shared/contextutil"
	"hradmin/internal/shared/listquery"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const hireDateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, p listquery.Params) ([]EmployeeListItem, int64, error)
	GetByID(ctx context.Context, id uint) (EmployeeResponse, error)
	Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, p listquery.Params) ([]EmployeeListItem, int64, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("get all employees requested",
		zap.String("request_id", rid),
		zap.Int("page", p.Page),
		zap.Int("limit", p.Limit),
	)

	// total_data adalah jumlah seluruh record, bukan jumlah halaman ini
	total, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("count employees failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	rows, err := s.repo.FindPage(ctx, p)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	items := make([]EmployeeListItem, len(rows))
	for i, row := range rows {
		items[i] = EmployeeListItem{
			No:          p.Number(i),
			ID:          row.ID,
			Login:       LoginInfo{Email: row.Email},
			Fullname:    row.Fullname,
			PhoneNumber: row.PhoneNumber,
			Address:     row.Address,
			HireDate:    row.HireDate.Format(hireDateLayout),
			Department:  NameInfo{Name: row.DepartmentName},
			Division:    NameInfo{Name: row.DivisionName},
		}
	}

	return items, total, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	// logger dari context sudah membawa request id dan subject id
	logger := contextutil.GetLogger(ctx, s.logger)
	logger.Debug("update employee requested",
		zap.Uint("employee_id", id),
		zap.Uint("actor_id", contextutil.GetLoginID(ctx)),
	)

	hireDate, err := time.Parse(hireDateLayout, req.HireDate)
	if err != nil {
		// binding sudah memvalidasi format; ini hanya jaring terakhir
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	var empl *Employee
	err = s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err = qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		empl.Fullname = req.Fullname
		empl.PhoneNumber = req.PhoneNumber
		empl.Address = req.Address
		empl.HireDate = hireDate
		empl.DepartmentID = uint(req.DepartmentID)
		empl.DivisionID = uint(req.DivisionID)

		return qtx.Update(ctx, empl)
	})
	if err != nil {
		logger.Error("update employee failed", zap.Uint("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	logger.Info("update employee success", zap.Uint("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	logger := contextutil.GetLogger(ctx, s.logger)
	logger.Debug("delete employee requested",
		zap.Uint("employee_id", id),
		zap.Uint("actor_id", contextutil.GetLoginID(ctx)),
	)

	// Credential ikut dihapus dalam transaksi yang sama supaya tidak ada
	// login yatim yang masih bisa dipakai masuk.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := qtx.Delete(ctx, empl); err != nil {
			return err
		}

		return qtx.DeleteLogin(ctx, empl.LoginID)
	})
	if err != nil {
		logger.Error("delete employee failed", zap.Uint("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	logger.Info("delete employee success", zap.Uint("employee_id", id))
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           empl.ID,
		Fullname:     empl.Fullname,
		PhoneNumber:  empl.PhoneNumber,
		Address:      empl.Address,
		HireDate:     empl.HireDate.Format(hireDateLayout),
		DepartmentID: empl.DepartmentID,
		DivisionID:   empl.DivisionID,
		IsActive:     empl.IsActive,
	}
}
