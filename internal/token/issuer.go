// Package token menandatangani dan memverifikasi bearer token yang memuat
// subject id (id EmployeeLogin) dengan masa berlaku tetap.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTTL = 24 * time.Hour

var (
	ErrExpired = errors.New("token expired")
	ErrInvalid = errors.New("token invalid")
)

type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer memakai ttl apa adanya; pemanggil yang ingin masa berlaku
// standar mengoper DefaultTTL secara eksplisit.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

func (i *Issuer) Issue(subjectID uint) (string, error) {
	claims := jwt.MapClaims{
		"id":  subjectID,
		"exp": time.Now().Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

func (i *Issuer) Verify(tokenString string) (uint, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpired
		}
		return 0, ErrInvalid
	}
	if !t.Valid {
		return 0, ErrInvalid
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalid
	}

	// angka di MapClaims selalu float64 setelah unmarshal JSON
	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return 0, ErrInvalid
	}

	return uint(id), nil
}
