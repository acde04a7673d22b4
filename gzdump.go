// Package gzdump decodes gzip (RFC 1952) streams member by member for diagnostic inspection, reporting every
// structural field of every member rather than just the concatenated payload.
package gzdump

import (
	"fmt"
	"io"
	"os"
)

// Options customises Decode.
type Options struct {
	// Verify if true cross-checks every stored checksum and size against the decoded bytes.
	//
	// By default stored values are recorded untouched so that a member with a wrong CRC32 still decodes. With
	// Verify, a mismatched header CRC16, trailer CRC32 or ISIZE fails the decode with ChecksumError.
	Verify bool
	// InflateRaw decodes the raw deflate payloads. Defaults to DefaultInflateRaw.
	InflateRaw InflateRaw
}

// WithVerification turns on checksum verification.
func WithVerification() func(*Options) {
	return func(opts *Options) {
		opts.Verify = true
	}
}

// Decode reads every member of the gzip stream src until it is exhausted.
//
// Members must sit back to back with no padding in between; a stream that does not start with a member, or that does
// not contain at least one, is malformed. Decoding is all or nothing: the first failure discards every member decoded
// so far.
func Decode(src io.Reader, optFns ...func(*Options)) ([]Member, error) {
	opts := &Options{InflateRaw: DefaultInflateRaw}
	for _, fn := range optFns {
		fn(opts)
	}
	if opts.InflateRaw == nil {
		opts.InflateRaw = DefaultInflateRaw
	}

	c := newCursor(src)
	switch done, err := c.exhausted(); {
	case err != nil:
		return nil, fmt.Errorf("read stream error: %w", err)
	case done:
		return nil, FormatError{Msg: "empty input, expected at least one member"}
	}

	var members []Member
	for i := 0; ; i++ {
		m, err := readMember(c, i, opts)
		if err != nil {
			return nil, err
		}
		members = append(members, m)

		switch done, err := c.exhausted(); {
		case err != nil:
			return nil, fmt.Errorf("read stream error: %w", err)
		case done:
			return members, nil
		}
	}
}

// DecodeFile decodes every member of the named gzip file.
func DecodeFile(name string, optFns ...func(*Options)) ([]Member, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf(`open file "%s" error: %w`, name, err)
	}
	defer f.Close()

	return Decode(f, optFns...)
}
