package id

import (
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsULID(t *testing.T) {
	_, err := ulid.ParseStrict(New())
	require.NoError(t, err)
}

func TestNewFileName(t *testing.T) {
	name := NewFileName(".png")
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.Equal(t, strings.ToLower(name), name)
	assert.NotEqual(t, name, NewFileName("png"))
	assert.NotContains(t, NewFileName(""), ".")
}
