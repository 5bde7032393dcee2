package registration_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"hradmin/internal/auth"
	authMock "hradmin/internal/auth/mock"
	"hradmin/internal/employee"
	employeeMock "hradmin/internal/employee/mock"
	"hradmin/internal/events"
	"hradmin/internal/messaging/kafka"
	kafkaMock "hradmin/internal/messaging/kafka/mock"
	"hradmin/internal/registration"
	registrationerrors "hradmin/internal/registration/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   registration.Service
	logins    *authMock.MockRepository
	employees *employeeMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	assert.NoError(t, err)

	logins := authMock.NewMockRepository(ctrl)
	employees := employeeMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := registration.NewServiceWithOutbox(gdb, logins, employees, outbox)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		logins:    logins,
		employees: employees,
		outbox:    outbox,
	}
}

func validRequest() registration.RegisterRequest {
	return registration.RegisterRequest{
		Email:        "a@x.com",
		Password:     "secret123",
		Fullname:     "Budi Santoso",
		PhoneNumber:  "+628123456789",
		Address:      "Jl. Merdeka No. 1",
		HireDate:     "2025-01-15",
		DepartmentID: 1,
		DivisionID:   2,
	}
}

func TestRegistrationService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success - creates login and employee in one transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validRequest()

		deps.logins.EXPECT().
			EmailTaken(gomock.Any(), req.Email).
			Return(false, nil)

		deps.sqlMock.ExpectBegin()

		deps.logins.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.logins)
		deps.logins.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, l *auth.EmployeeLogin) error {
				assert.Equal(t, req.Email, l.Email)
				assert.Equal(t, "10.0.0.1", l.IPAddress)
				// Password tersimpan sebagai hash bcrypt, bukan plaintext
				assert.NotEqual(t, req.Password, l.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(l.Password), []byte(req.Password)))
				// 16 byte random -> 32 karakter hex
				assert.Len(t, l.ActivationToken, 32)
				l.ID = 7
				return nil
			})

		deps.employees.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.employees)
		deps.employees.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, uint(7), e.LoginID)
				assert.Equal(t, req.Fullname, e.Fullname)
				assert.Equal(t, uint(1), e.DepartmentID)
				assert.Equal(t, uint(2), e.DivisionID)
				assert.False(t, e.IsActive)
				assert.False(t, e.IsDelete)
				assert.Equal(t, "2025-01-15", e.HireDate.Format("2006-01-02"))
				e.ID = 11
				return nil
			})

		deps.outbox.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev *kafka.OutboxEvent) error {
				assert.Equal(t, "employee", ev.AggregateType)
				assert.Equal(t, "11", ev.AggregateID)
				assert.Equal(t, events.EmployeeRegisteredTopic, ev.Topic)
				assert.Equal(t, kafka.OutboxStatusPending, ev.Status)

				var payload events.EmployeeRegisteredEvent
				assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, "employee_registered", payload.EventType)
				assert.Equal(t, uint(11), payload.EmployeeID)
				assert.Equal(t, req.Email, payload.Email)
				return nil
			})

		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Register(ctx, "10.0.0.1", req)

		assert.NoError(t, err)
		assert.Equal(t, uint(11), resp.ID)
		assert.Equal(t, req.Fullname, resp.Fullname)
		assert.Equal(t, req.PhoneNumber, resp.PhoneNumber)
		assert.Equal(t, req.Email, resp.Email)

		// Response tidak boleh membawa hash password maupun activation token
		raw, _ := json.Marshal(resp)
		assert.NotContains(t, string(raw), "password")
		assert.NotContains(t, string(raw), "activation")

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("email taken - no rows written", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.logins.EXPECT().
			EmailTaken(gomock.Any(), "a@x.com").
			Return(true, nil)

		resp, err := deps.service.Register(ctx, "10.0.0.1", validRequest())

		assert.ErrorIs(t, err, registrationerrors.ErrEmailTaken)
		assert.Zero(t, resp.ID)
		// Transaksi tidak pernah dimulai
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("employee insert fails - transaction rolled back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.logins.EXPECT().
			EmailTaken(gomock.Any(), gomock.Any()).
			Return(false, nil)

		deps.sqlMock.ExpectBegin()

		deps.logins.EXPECT().WithTx(gomock.Any()).Return(deps.logins)
		deps.logins.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, l *auth.EmployeeLogin) error {
				l.ID = 7
				return nil
			})

		deps.employees.EXPECT().WithTx(gomock.Any()).Return(deps.employees)
		deps.employees.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Register(ctx, "10.0.0.1", validRequest())

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unique index race - maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.logins.EXPECT().
			EmailTaken(gomock.Any(), gomock.Any()).
			Return(false, nil)

		deps.sqlMock.ExpectBegin()

		deps.logins.EXPECT().WithTx(gomock.Any()).Return(deps.logins)
		deps.logins.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505"})

		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Register(ctx, "10.0.0.1", validRequest())

		assert.ErrorIs(t, err, registrationerrors.ErrEmailConflict)
	})

	t.Run("unknown department or division - maps to validation error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.logins.EXPECT().
			EmailTaken(gomock.Any(), gomock.Any()).
			Return(false, nil)

		deps.sqlMock.ExpectBegin()

		deps.logins.EXPECT().WithTx(gomock.Any()).Return(deps.logins)
		deps.logins.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, l *auth.EmployeeLogin) error {
				l.ID = 7
				return nil
			})

		deps.employees.EXPECT().WithTx(gomock.Any()).Return(deps.employees)
		deps.employees.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23503"})

		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Register(ctx, "10.0.0.1", validRequest())

		assert.ErrorIs(t, err, registrationerrors.ErrUnknownReference)
	})

	t.Run("email pre-check fails - error propagated", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.logins.EXPECT().
			EmailTaken(gomock.Any(), gomock.Any()).
			Return(false, errors.New("db unreachable"))

		_, err := deps.service.Register(ctx, "10.0.0.1", validRequest())

		assert.Error(t, err)
	})
}
