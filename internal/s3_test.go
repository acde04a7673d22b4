package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseS3URI(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		bucket, key string
		wantErr     bool
	}{
		{name: "bucket and key", text: "s3://my-bucket/path/to/key.gz", bucket: "my-bucket", key: "path/to/key.gz"},
		{name: "key with no prefix", text: "s3://my-bucket/key.gz", bucket: "my-bucket", key: "key.gz"},
		{name: "not an s3 uri", text: "https://example.com/file.gz", wantErr: true},
		{name: "bucket only", text: "s3://my-bucket", wantErr: true},
		{name: "bucket with trailing slash", text: "s3://my-bucket/", wantErr: true},
		{name: "empty bucket", text: "s3:///key.gz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, key, err := ParseS3URI(tt.text)
			if tt.wantErr {
				assert.Errorf(t, err, "ParseS3URI(%s) expected error", tt.text)
				return
			}

			assert.NoErrorf(t, err, "ParseS3URI(%s) error = %v", tt.text, err)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.key, key)
		})
	}
}
