package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	h := HashPassword("hunter22")
	assert.NotEqual(t, "hunter22", h)
	assert.True(t, CheckPassword("hunter22", h))
	assert.False(t, CheckPassword("hunter23", h))
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
