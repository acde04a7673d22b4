package inspect

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/nguyengg/gzdump/internal"
)

// GetObjectClient abstracts the S3 client for testing purposes.
type GetObjectClient interface {
	GetObject(ctx context.Context, input *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// open returns the byte source for name: the S3 object if name is an s3:// URI, stdin if name is "-", the named local
// file otherwise. size is -1 when not known up front.
func (c *Command) open(ctx context.Context, name string) (src io.ReadCloser, size int64, err error) {
	switch {
	case name == "-":
		return io.NopCloser(os.Stdin), -1, nil
	case strings.HasPrefix(name, "s3://"):
		return c.openS3(ctx, name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, 0, fmt.Errorf(`open file "%s" error: %w`, name, err)
	}

	size = -1
	if fi, err := f.Stat(); err == nil {
		size = fi.Size()
	}
	return f, size, nil
}

func (c *Command) openS3(ctx context.Context, uri string) (io.ReadCloser, int64, error) {
	bucket, key, err := internal.ParseS3URI(uri)
	if err != nil {
		return nil, 0, fmt.Errorf(`parse "%s" error: %w`, uri, err)
	}

	if c.client == nil {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("load default config error: %w", err)
		}

		c.client = s3.NewFromConfig(cfg, func(options *s3.Options) {
			// without this, getting a bunch of WARN message below:
			// WARN Response has no supported checksum. Not validating response payload.
			options.DisableLogOutputChecksumValidationSkipped = true
		})
	}

	output, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("get object error: %w", err)
	}

	size := int64(-1)
	if output.ContentLength != nil {
		size = *output.ContentLength
	}
	return output.Body, size, nil
}
