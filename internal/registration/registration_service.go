package registration

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"time"

	"hradmin/internal/auth"
	"hradmin/internal/employee"
	"hradmin/internal/events"
	"hradmin/internal/messaging/kafka"
	registrationerrors "hradmin/internal/registration/errors"
	"hradmin/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const hireDateLayout = "2006-01-02"

//go:generate mockgen -source=registration_service.go -destination=mock/registration_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, clientIP string, req RegisterRequest) (RegisterResponse, error)
}

type service struct {
	db        *gorm.DB
	logins    auth.Repository
	employees employee.Repository
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(
	db *gorm.DB,
	logins auth.Repository,
	employees employee.Repository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, logins, employees, nil, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	logins auth.Repository,
	employees employee.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("registration.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("registration.service")
	}
	return &service{
		db:        db,
		logins:    logins,
		employees: employees,
		outbox:    outboxRepo,
		logger:    l,
	}
}

// Register menjalankan alur inti: pre-check email, hash password, generate
// activation token, lalu satu transaksi yang membuat EmployeeLogin dan
// Employee sekaligus. Gagal di langkah mana pun berarti tidak ada baris
// yang tersisa di store.
func (s *service) Register(ctx context.Context, clientIP string, req RegisterRequest) (RegisterResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.Int("department_id", req.DepartmentID),
		zap.Int("division_id", req.DivisionID),
	)

	// 1. Pre-check uniqueness. Jaminan sebenarnya tetap unique index di
	// store; race antara check dan insert berakhir sebagai conflict di
	// mapStoreError, bukan duplikat diam-diam.
	taken, err := s.logins.EmailTaken(ctx, req.Email)
	if err != nil {
		s.logger.Error("register email pre-check failed", zap.Error(err))
		return RegisterResponse{}, err
	}
	if taken {
		return RegisterResponse{}, registrationerrors.ErrEmailTaken
	}

	// 2. Hash password (bcrypt, salt per panggilan)
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("register hash password failed", zap.Error(err))
		return RegisterResponse{}, err
	}

	// 3. Activation token: opaque, hanya disimpan, dipakai mailer nanti
	activationToken, err := newActivationToken()
	if err != nil {
		s.logger.Error("register generate activation token failed", zap.Error(err))
		return RegisterResponse{}, err
	}

	hireDate, err := time.Parse(hireDateLayout, req.HireDate)
	if err != nil {
		// binding sudah memvalidasi; jaring terakhir saja
		return RegisterResponse{}, err
	}

	login := &auth.EmployeeLogin{
		Email:           req.Email,
		Password:        string(hashed),
		IPAddress:       clientIP,
		ActivationToken: activationToken,
	}
	empl := &employee.Employee{
		Fullname:     req.Fullname,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		HireDate:     hireDate,
		DepartmentID: uint(req.DepartmentID),
		DivisionID:   uint(req.DivisionID),
		IsActive:     false,
		IsDelete:     false,
	}

	// 4-5. Dual create dalam satu transaksi; rollback otomatis saat error
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.logins.WithTx(tx).Create(ctx, login); err != nil {
			return err
		}

		empl.LoginID = login.ID
		if err := s.employees.WithTx(tx).Create(ctx, empl); err != nil {
			return err
		}

		if s.outbox == nil {
			return nil
		}

		event := events.EmployeeRegisteredEvent{
			EventType:  "employee_registered",
			RequestID:  rid,
			EmployeeID: empl.ID,
			Email:      login.Email,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		return s.outbox.WithTx(tx).Create(ctx, &kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   strconv.FormatUint(uint64(empl.ID), 10),
			EventType:     event.EventType,
			Topic:         events.EmployeeRegisteredTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
	if err != nil {
		s.logger.Error("register transaction failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return RegisterResponse{}, mapStoreError(err)
	}

	s.logger.Info("register success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", empl.ID),
		zap.Uint("login_id", login.ID),
	)

	// 7. Response shaping: tanpa password hash, tanpa activation token
	return RegisterResponse{
		ID:          empl.ID,
		Fullname:    empl.Fullname,
		PhoneNumber: empl.PhoneNumber,
		Email:       login.Email,
	}, nil
}

func newActivationToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
