package models_test

import (
	"testing"

	"github.com/frozz/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartItems_Value(t *testing.T) {
	v, err := models.CartItems(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), v)

	v, err = models.CartItems{"7": 2}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"7":2}`, string(v.([]byte)))
}

func TestCartItems_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    models.CartItems
		wantErr bool
	}{
		{"Bytes", []byte(`{"1":3}`), models.CartItems{"1": 3}, false},
		{"String", `{"2":1}`, models.CartItems{"2": 1}, false},
		{"SQL NULL", nil, models.CartItems{}, false},
		{"JSON null", []byte(`null`), models.CartItems{}, false},
		{"Malformed", []byte(`[1,2]`), nil, true},
		{"Unsupported type", 42, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var items models.CartItems

			err := items.Scan(tc.src)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, items)
		})
	}
}

func TestNewPage(t *testing.T) {
	page := models.NewPage([]int{1}, 21, 2, 10)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNext)

	last := models.NewPage(nil, 21, 3, 10)
	assert.False(t, last.HasNext)

	empty := models.NewPage(nil, 0, 1, 10)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
}
