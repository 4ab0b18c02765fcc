package photo

import (
	"errors"
	"fmt"
	"io"
)

// MaxImageSize is the largest accepted upload, in bytes.
const MaxImageSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// ErrUnsupportedType is returned when the declared content type is not an
// accepted image format.
var ErrUnsupportedType = errors.New("unsupported file type")

// ErrTooLarge is returned when the upload exceeds MaxImageSize.
var ErrTooLarge = errors.New("file too large")

// ValidateImage checks the declared content type against the allow-list and
// the stream's total size against MaxImageSize, returning the size. The
// stream's read position is the same after the call as before it, whether the
// image is accepted or rejected.
func ValidateImage(contentType string, file io.Seeker) (int64, error) {
	if _, ok := allowedImageTypes[contentType]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	size, err := streamSize(file)
	if err != nil {
		return 0, fmt.Errorf("probe upload size: %w", err)
	}

	if size > MaxImageSize {
		return size, fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, size, MaxImageSize)
	}
	return size, nil
}

// streamSize measures the total length of a seekable stream by seeking to the
// end, then restores the original position.
func streamSize(file io.Seeker) (int64, error) {
	current, err := file.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := file.Seek(current, io.SeekStart); err != nil {
		return 0, err
	}
	return end, nil
}
