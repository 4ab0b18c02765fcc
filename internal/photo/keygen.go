package photo

import "github.com/google/uuid"

// NewStorageKey returns a globally unique object-store key for an upload,
// a random UUIDv4 prefixed to the original filename. The random prefix keeps
// unrelated uploads of the same filename from overwriting each other, with no
// coordination between concurrent uploads.
func NewStorageKey(filename string) string {
	return uuid.NewString() + "_" + filename
}
