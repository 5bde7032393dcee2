// Package listquery adalah kontrak listing bersama: pagination, sorting,
// dan penomoran baris untuk semua endpoint list.
package listquery

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"hradmin/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

const DefaultPageSize = 10

type Params struct {
	Page      int
	Limit     int
	SortBy    string // nama kolom hasil resolve allow-list
	SortOrder string // "asc" atau "desc"
}

// Parse membaca page/limit/sortBy/sortOrder dari query string.
// Nilai numerik yang tidak valid atau negatif jatuh ke default tanpa error.
// sortBy di luar allow-list ditolak sebagai validation error, tidak pernah
// diteruskan mentah ke store.
func Parse(c *gin.Context, defaultLimit int, sortable map[string]string) (Params, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}

	sortBy := strings.TrimSpace(c.DefaultQuery("sortBy", "id"))
	column, ok := sortable[sortBy]
	if !ok {
		keys := make([]string, 0, len(sortable))
		for k := range sortable {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return Params{}, apperror.New(
			apperror.CodeInvalidInput,
			fmt.Sprintf("sortBy must be one of: %s", strings.Join(keys, ", ")),
			http.StatusUnprocessableEntity,
		)
	}

	sortOrder := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sortOrder", "asc")))
	if sortOrder != "desc" {
		sortOrder = "asc"
	}

	return Params{
		Page:      page,
		Limit:     limit,
		SortBy:    column,
		SortOrder: sortOrder,
	}, nil
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Number memberi nomor urut 1-based yang kontinu antar halaman.
func (p Params) Number(index int) int {
	return p.Offset() + index + 1
}

func (p Params) OrderClause() string {
	return p.SortBy + " " + p.SortOrder
}
