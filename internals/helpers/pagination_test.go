package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWith(t *testing.T) {
	t.Run("default saat query kosong", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://local/brands", nil)
		p := ParseWith(r, "created_at", "desc", AdminOpts)

		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 50, p.PerPage)
		assert.Equal(t, "created_at", p.SortBy)
		assert.Equal(t, "desc", p.SortOrder)
		assert.Equal(t, 0, p.Offset())
	})

	t.Run("per_page dibatasi preset", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://local/brands?page=3&per_page=9999", nil)
		p := ParseWith(r, "created_at", "desc", AdminOpts)

		assert.Equal(t, 500, p.PerPage)
		assert.Equal(t, 1000, p.Offset())
	})

	t.Run("order tak dikenal jatuh ke default", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://local/brands?order=sideways", nil)
		p := ParseWith(r, "created_at", "asc", AdminOpts)

		assert.Equal(t, "asc", p.SortOrder)
	})
}

func TestSafeOrderExpr(t *testing.T) {
	allowed := map[string]string{
		"name":       "brand_name",
		"created_at": "brand_created_at",
	}

	t.Run("key whitelist dipakai apa adanya", func(t *testing.T) {
		p := Params{SortBy: "name", SortOrder: "asc"}
		expr, err := p.SafeOrderExpr(allowed, "created_at")
		require.NoError(t, err)
		assert.Equal(t, "brand_name ASC", expr)
	})

	t.Run("key liar jatuh ke kolom default, bukan injeksi", func(t *testing.T) {
		p := Params{SortBy: "name; DROP TABLE brands", SortOrder: "desc"}
		expr, err := p.SafeOrderExpr(allowed, "created_at")
		require.NoError(t, err)
		assert.Equal(t, "brand_created_at DESC", expr)
	})

	t.Run("error saat default pun tidak ada di whitelist", func(t *testing.T) {
		p := Params{SortBy: "liar", SortOrder: "desc"}
		_, err := p.SafeOrderExpr(allowed, "bukan_key")
		require.Error(t, err)
	})
}
