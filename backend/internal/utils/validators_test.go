package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameCleaner(t *testing.T) {
	v := NewColumnNameValidator()

	t.Run("plain names pass through", func(t *testing.T) {
		name, err := v.Clean("In Progress")
		require.NoError(t, err)
		assert.Equal(t, "In Progress", name)
	})

	t.Run("markup is stripped", func(t *testing.T) {
		name, err := v.Clean(`<script>alert(1)</script>Todo`)
		require.NoError(t, err)
		assert.Equal(t, "Todo", name)

		name, err = v.Clean("<b>Bold</b> plan")
		require.NoError(t, err)
		assert.Equal(t, "Bold plan", name)
	})

	t.Run("entities survive sanitizing", func(t *testing.T) {
		name, err := v.Clean("R&D")
		require.NoError(t, err)
		assert.Equal(t, "R&D", name)
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		name, err := v.Clean("  Todo  ")
		require.NoError(t, err)
		assert.Equal(t, "Todo", name)
	})

	t.Run("empty after cleaning rejected", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "<b></b>"} {
			_, err := v.Clean(raw)
			assert.Error(t, err, "%q", raw)
		}
	})

	t.Run("over limit rejected", func(t *testing.T) {
		_, err := v.Clean(strings.Repeat("x", 61))
		assert.Error(t, err)

		name, err := v.Clean(strings.Repeat("x", 60))
		require.NoError(t, err)
		assert.Len(t, name, 60)
	})
}

func TestItemTitleValidator_LongerLimit(t *testing.T) {
	v := NewItemTitleValidator()

	title, err := v.Clean(strings.Repeat("y", 200))
	require.NoError(t, err)
	assert.Len(t, title, 200)

	_, err = v.Clean(strings.Repeat("y", 201))
	assert.Error(t, err)
}
