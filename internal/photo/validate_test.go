package photo

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateImage_ContentTypes(t *testing.T) {
	tests := []struct {
		contentType string
		ok          bool
	}{
		{"image/jpeg", true},
		{"image/png", true},
		{"image/gif", true},
		{"image/webp", true},
		{"text/plain", false},
		{"application/pdf", false},
		{"image/svg+xml", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			file := bytes.NewReader(make([]byte, 1024))
			size, err := ValidateImage(tt.contentType, file)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, int64(1024), size)
			} else {
				assert.ErrorIs(t, err, ErrUnsupportedType)
			}
		})
	}
}

func TestValidateImage_SizeBoundary(t *testing.T) {
	atLimit := bytes.NewReader(make([]byte, MaxImageSize))
	size, err := ValidateImage("image/jpeg", atLimit)
	require.NoError(t, err)
	assert.Equal(t, int64(MaxImageSize), size)

	overLimit := bytes.NewReader(make([]byte, MaxImageSize+1))
	_, err = ValidateImage("image/jpeg", overLimit)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestValidateImage_BothChecksFail(t *testing.T) {
	// The type check fires first, but either way the candidate is rejected.
	file := bytes.NewReader(make([]byte, MaxImageSize+1))
	_, err := ValidateImage("text/plain", file)
	assert.Error(t, err)
}

func TestValidateImage_PreservesStreamPosition(t *testing.T) {
	content := []byte("jpeg bytes pretending to be a photo")

	t.Run("accepted", func(t *testing.T) {
		file := bytes.NewReader(content)
		_, err := ValidateImage("image/jpeg", file)
		require.NoError(t, err)

		got, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("rejected", func(t *testing.T) {
		file := bytes.NewReader(make([]byte, MaxImageSize+1))
		_, err := ValidateImage("image/jpeg", file)
		require.ErrorIs(t, err, ErrTooLarge)

		pos, err := file.Seek(0, io.SeekCurrent)
		require.NoError(t, err)
		assert.Equal(t, int64(0), pos)
	})

	t.Run("mid-stream position restored", func(t *testing.T) {
		file := bytes.NewReader(content)
		_, err := file.Seek(5, io.SeekStart)
		require.NoError(t, err)

		size, err := ValidateImage("image/jpeg", file)
		require.NoError(t, err)
		assert.Equal(t, int64(len(content)), size, "size is the stream's total length")

		pos, err := file.Seek(0, io.SeekCurrent)
		require.NoError(t, err)
		assert.Equal(t, int64(5), pos)
	})
}
