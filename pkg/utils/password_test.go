package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	h := HashPassword("admin123")
	assert.True(t, strings.HasPrefix(h, "$2"), "bcrypt hash expected")
	assert.NotContains(t, h, "admin123")

	assert.True(t, CheckPassword("admin123", h))
	assert.False(t, CheckPassword("wrong", h))
}

func TestHashPassword_Salted(t *testing.T) {
	assert.NotEqual(t, HashPassword("same"), HashPassword("same"))
}
