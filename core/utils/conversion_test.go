package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	assert.Equal(t, 5, ToInt(5))
	assert.Equal(t, 5, ToInt(int64(5)))
	assert.Equal(t, 5, ToInt(5.9))
	assert.Equal(t, 5, ToInt("5"))
	assert.Equal(t, 5, ToInt([]byte("5")))
	assert.Equal(t, 0, ToInt("not a number"))
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 1.5, ToFloat(1.5))
	assert.Equal(t, 1.5, ToFloat("1.5"))
	assert.Equal(t, 5.0, ToFloat(5))
	assert.Equal(t, 0.0, ToFloat("not a number"))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "hello", ToString("hello"))
	assert.Equal(t, "hello", ToString([]byte("hello")))
	// whole floats come out without a decimal point
	assert.Equal(t, "5", ToString(5.0))
	assert.Equal(t, "1.5", ToString(1.5))
	assert.Equal(t, "[1 0 0]", ToString([]float64{1, 0, 0}))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool(1))
	assert.True(t, ToBool("true"))
	assert.True(t, ToBool("TRUE"))
	assert.True(t, ToBool("1"))
	assert.False(t, ToBool(false))
	assert.False(t, ToBool(0))
	assert.False(t, ToBool("false"))
	assert.False(t, ToBool("yes"))
	assert.False(t, ToBool(nil))
}
