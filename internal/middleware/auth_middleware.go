package middleware

import (
	"errors"
	"net/http"
	"strings"

	"hradmin/internal/shared/apperror"
	"hradmin/internal/shared/contextutil"
	"hradmin/internal/shared/response"
	"hradmin/internal/token"

	"github.com/gin-gonic/gin"
)

// ContextLoginIDKey adalah key gin context tempat subject id hasil verifikasi disimpan.
const ContextLoginIDKey = "login_id"

// AuthGuard memverifikasi bearer token dan menempelkan subject id ke context.
// Guard ini hanya menetapkan identitas; otorisasi per-resource tidak dilakukan.
func AuthGuard(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Client lama mengirim token mentah di header Authorization,
		// client baru memakai prefix "Bearer " - terima keduanya.
		tokenString := strings.TrimSpace(c.GetHeader("Authorization"))
		if cut, found := strings.CutPrefix(tokenString, "Bearer "); found {
			tokenString = cut
		}

		if tokenString == "" {
			response.Error(c, apperror.ErrUnauthorized.HTTPStatus, apperror.ErrUnauthorized.Message)
			c.Abort()
			return
		}

		loginID, err := issuer.Verify(tokenString)
		if err != nil {
			message := apperror.ErrUnauthorized.Message
			if errors.Is(err, token.ErrExpired) {
				message = "Token expired"
			}
			response.Error(c, http.StatusUnauthorized, message)
			c.Abort()
			return
		}

		c.Set(ContextLoginIDKey, loginID)
		c.Request = c.Request.WithContext(
			contextutil.WithLoginID(c.Request.Context(), loginID),
		)

		c.Next()
	}
}
