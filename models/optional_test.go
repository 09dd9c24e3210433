package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDistinguishesAbsentFromNull(t *testing.T) {
	type payload struct {
		Title Optional[string] `json:"title"`
		Price Optional[int]    `json:"price"`
	}

	t.Run("absent field stays unset", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"title":"abc"}`), &p))
		assert.True(t, p.Title.Set)
		assert.False(t, p.Price.Set)
	})

	t.Run("explicit null is set with nil value", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"price":null}`), &p))
		assert.True(t, p.Price.Set)
		assert.Nil(t, p.Price.Value)
	})

	t.Run("zero value is still a value", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"title":"","price":0}`), &p))
		v, ok := p.Title.Get()
		assert.True(t, ok)
		assert.Equal(t, "", v)
		n, ok := p.Price.Get()
		assert.True(t, ok)
		assert.Equal(t, 0, n)
	})

	t.Run("null does not satisfy Get", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"title":null}`), &p))
		_, ok := p.Title.Get()
		assert.False(t, ok)
	})
}

func TestBrandPatchUnmarshal(t *testing.T) {
	var p BrandPatch
	err := json.Unmarshal([]byte(`{"name":"SJC","isActive":false}`), &p)
	assert.NoError(t, err)

	name, ok := p.Name.Get()
	assert.True(t, ok)
	assert.Equal(t, "SJC", name)

	active, ok := p.IsActive.Get()
	assert.True(t, ok)
	assert.False(t, active)

	assert.False(t, p.Description.Set)
}
