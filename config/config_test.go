package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "9090"}

	assert.Equal(t, "9090", GetString(c, "PORT", "8080"))
	assert.Equal(t, "8080", GetString(c, "MISSING", "8080"))
	assert.Equal(t, "8080", GetString(nil, "PORT", "8080"))
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"TIMEOUT": "45", "BROKEN": "forty-five"}

	assert.Equal(t, 45, GetInt(c, "TIMEOUT", 30))
	assert.Equal(t, 30, GetInt(c, "BROKEN", 30))
	assert.Equal(t, 30, GetInt(c, "MISSING", 30))
}

func TestGetBool(t *testing.T) {
	c := map[string]string{"DEBUG": "true", "BROKEN": "yep"}

	assert.True(t, GetBool(c, "DEBUG", false))
	assert.False(t, GetBool(c, "BROKEN", false))
	assert.True(t, GetBool(c, "MISSING", true))
}

func TestGetSeconds(t *testing.T) {
	c := map[string]string{"READ_TIMEOUT_SECONDS": "15"}

	assert.Equal(t, 15*time.Second, GetSeconds(c, "READ_TIMEOUT_SECONDS", 30))
	assert.Equal(t, 30*time.Second, GetSeconds(c, "MISSING", 30))
}
