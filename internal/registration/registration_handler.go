package registration

import (
	"errors"
	"net/http"

	registrationerrors "hradmin/internal/registration/errors"
	"hradmin/internal/shared/apperror"
	"hradmin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("registration.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("registration.handler")
	}
	return &Handler{service: service, logger: l}
}

// Register melayani POST /register (publik).
func (h *Handler) Register(c *gin.Context) {
	h.handle(c, "Registration successful. Please check your email for verification.")
}

// CreateEmployee melayani POST /admin/employees (guarded); alurnya sama,
// hanya pesan sukses yang berbeda.
func (h *Handler) CreateEmployee(c *gin.Context) {
	h.handle(c, "Employee created successfully. A pin has been sent to their email.")
}

func (h *Handler) handle(c *gin.Context, successMessage string) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, apperror.FieldErrors(err))
		return
	}

	resp, err := h.service.Register(c.Request.Context(), c.ClientIP(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, successMessage, resp)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	// Pre-check email dilaporkan sebagai field error supaya bentuknya sama
	// dengan pelanggaran validasi lain.
	if errors.Is(err, registrationerrors.ErrEmailTaken) {
		response.ValidationFailed(c, []response.FieldError{
			{Field: "email", Message: "Email already exists"},
		})
		return
	}

	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("registration failed",
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)

	if httpErr.Status == http.StatusInternalServerError {
		// Hanya jalur registrasi yang melampirkan pesan asli untuk diagnosa
		response.ErrorWithDetail(c,
			http.StatusInternalServerError,
			"An error occurred during registration.",
			err.Error(),
		)
		return
	}

	response.Error(c, httpErr.Status, httpErr.Message)
}
