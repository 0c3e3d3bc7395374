package maybe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaybe(t *testing.T) {
	some := Some(42)
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 42, some.ValueOrDefault(7))

	none := None[int]()
	assert.False(t, none.IsValid())
	assert.Equal(t, 7, none.ValueOrDefault(7))

	assert.True(t, When(true, "x").IsValid())
	assert.False(t, When(false, "x").IsValid())

	var zero Maybe[string]
	assert.False(t, zero.IsValid())
}
