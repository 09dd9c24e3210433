package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateBuilder(t *testing.T) {
	t.Run("single column", func(t *testing.T) {
		var b updateBuilder
		b.Set("description", "new text")

		query, args, err := b.Build("products", "id, description", 7)
		require.NoError(t, err)
		assert.Equal(t,
			"UPDATE products SET description = $1, updated_at = NOW() WHERE id = $2 RETURNING id, description",
			query)
		assert.Equal(t, []any{"new text", 7}, args)
	})

	t.Run("placeholders follow insertion order", func(t *testing.T) {
		var b updateBuilder
		b.Set("stock_quantity", 3)
		b.Set("is_active", false)
		b.Set("materials", "brass")

		query, args, err := b.Build("products", "id", 42)
		require.NoError(t, err)
		assert.Equal(t,
			"UPDATE products SET stock_quantity = $1, is_active = $2, materials = $3, updated_at = NOW() WHERE id = $4 RETURNING id",
			query)
		assert.Equal(t, []any{3, false, "brass", 42}, args)
	})

	t.Run("title expands into two columns", func(t *testing.T) {
		var b updateBuilder
		b.SetPair("title", "Gold Cup", "slug", "gold-cup")

		query, args, err := b.Build("articles", "id, title, slug", 1)
		require.NoError(t, err)
		assert.Equal(t,
			"UPDATE articles SET title = $1, slug = $2, updated_at = NOW() WHERE id = $3 RETURNING id, title, slug",
			query)
		assert.Equal(t, []any{"Gold Cup", "gold-cup", 1}, args)
	})

	t.Run("false and empty string are real values", func(t *testing.T) {
		var b updateBuilder
		b.Set("is_featured", false)
		b.Set("excerpt", "")

		_, args, err := b.Build("articles", "id", 9)
		require.NoError(t, err)
		assert.Equal(t, []any{false, "", 9}, args)
	})

	t.Run("nothing to update", func(t *testing.T) {
		var b updateBuilder
		assert.True(t, b.Empty())

		_, _, err := b.Build("products", "id", 1)
		assert.ErrorIs(t, err, ErrNothingToUpdate)
	})
}
