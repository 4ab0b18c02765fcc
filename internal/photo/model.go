// Package photo manages photo uploads and their metadata.
package photo

import "io"

// Photo represents a stored photo's metadata record.
type Photo struct {
	ID          int64   `json:"id"`
	StorageKey  string  `json:"-"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// PresentedPhoto is a photo as returned to clients: the storage key is
// replaced by a presigned URL, or null when the URL could not be minted.
type PresentedPhoto struct {
	ID          int64   `json:"id"`
	PhotoURL    *string `json:"photo_url"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Upload is a single upload candidate: a byte stream plus the content type
// and filename declared by the client. It is consumed once by Ingest.
type Upload struct {
	File        io.ReadSeeker
	Filename    string
	ContentType string
}
