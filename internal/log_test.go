package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefix(t *testing.T) {
	assert.Equal(t, `[0/3] "key.gz" - `, Prefix(0, 3, "s3://my-bucket/path/to/key.gz"))
	assert.Equal(t, `[1/2] "file.gz" - `, Prefix(1, 2, "/var/tmp/file.gz"))
	assert.Equal(t, `[0/1] "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa..." - `, Prefix(0, 1, strings.Repeat("a", 40)))
}
