package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Envelope struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	Data      any          `json:"data,omitempty"`
	Errors    []FieldError `json:"errors,omitempty"`
	Error     string       `json:"error,omitempty"`
	TotalData *int64       `json:"total_data,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List melampirkan total_data di samping halaman yang diminta.
func List(c *gin.Context, message string, data any, totalData int64) {
	c.JSON(http.StatusOK, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		TotalData: &totalData,
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
	})
}

// ErrorWithDetail menyertakan pesan error asli untuk diagnosa;
// hanya dipakai di jalur registrasi.
func ErrorWithDetail(c *gin.Context, status int, message, detail string) {
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Error:   detail,
	})
}

// ValidationFailed mengirim seluruh daftar pelanggaran field, bukan hanya yang pertama.
func ValidationFailed(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusUnprocessableEntity, Envelope{
		Success: false,
		Message: "Validation error",
		Errors:  errs,
	})
}
