package photo

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorageKey_Format(t *testing.T) {
	key := NewStorageKey("sunset.jpg")

	parts := strings.SplitN(key, "_", 2)
	require.Len(t, parts, 2)

	_, err := uuid.Parse(parts[0])
	assert.NoError(t, err, "prefix must be a valid UUID")
	assert.Equal(t, "sunset.jpg", parts[1])
}

func TestNewStorageKey_KeepsFilenameUnderscores(t *testing.T) {
	key := NewStorageKey("my_holiday_photo.png")

	parts := strings.SplitN(key, "_", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "my_holiday_photo.png", parts[1])
}

func TestNewStorageKey_Unique(t *testing.T) {
	const n = 10000

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		key := NewStorageKey("photo.jpg")
		_, dup := seen[key]
		require.False(t, dup, "duplicate key generated: %s", key)
		seen[key] = struct{}{}
	}
}
