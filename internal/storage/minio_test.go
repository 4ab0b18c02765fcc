package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Storage = (*MinioStorage)(nil)

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		rawURL     string
		wantHost   string
		wantSecure bool
	}{
		{"http", "http://localhost:9000", "localhost:9000", false},
		{"https", "https://s3.us-east-1.amazonaws.com", "s3.us-east-1.amazonaws.com", true},
		{"bare host and port", "localhost:9000", "localhost:9000", false},
		{"https with port", "https://minio.internal:9443", "minio.internal:9443", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, secure, err := parseEndpoint(tt.rawURL)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantSecure, secure)
		})
	}
}

func TestParseEndpoint_Invalid(t *testing.T) {
	_, _, err := parseEndpoint("://missing-scheme")
	assert.Error(t, err)
}
