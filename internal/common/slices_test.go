package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardinality(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsEmpty([]int{1}))
	assert.True(t, IsSingle([]string{"a"}))
	assert.False(t, IsSingle([]string{"a", "b"}))
	assert.True(t, IsMultiple([]string{"a", "b"}))
	assert.False(t, IsMultiple([]string{}))
}

func TestDuplicate(t *testing.T) {
	t.Parallel()

	dup, ok := Duplicate([]string{"name", "age", "name"})
	assert.True(t, ok)
	assert.Equal(t, "name", dup)

	_, ok = Duplicate([]string{"name", "age"})
	assert.False(t, ok)
}
