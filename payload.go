package gzdump

import (
	"errors"
	"io"

	"github.com/klauspost/compress/flate"
)

// InflateRaw is the decompression capability used to decode member payloads.
//
// Implementations read one complete raw deflate stream from src and return the decoded bytes along with the exact
// number of compressed bytes that stream occupied. The count is authoritative: the walker repositions itself with it
// to find the member trailer, so an implementation that buffers ahead of the end of the stream must still report only
// the bytes the stream itself occupied.
type InflateRaw func(src flate.Reader) (data []byte, consumed int64, err error)

// DefaultInflateRaw decodes raw deflate with github.com/klauspost/compress/flate.
func DefaultInflateRaw(src flate.Reader) ([]byte, int64, error) {
	cr := &countingReader{src: src}
	fr := flate.NewReader(cr)
	data, err := io.ReadAll(fr)
	if err != nil {
		_ = fr.Close()
		return nil, cr.n, err
	}
	return data, cr.n, fr.Close()
}

// countingReader tallies the bytes handed to the flate reader. Because it forwards ReadByte, flate reads one byte at
// a time and never takes more than the deflate stream itself, so the tally is the stream's exact compressed size.
type countingReader struct {
	src flate.Reader
	n   int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.src.Read(p)
	c.n += int64(n)
	return n, err
}

func (c *countingReader) ReadByte() (byte, error) {
	b, err := c.src.ReadByte()
	if err == nil {
		c.n++
	}
	return b, err
}

// readPayload decodes the member's raw deflate payload, then repositions the cursor at the member trailer using the
// consumed count reported by the decompression capability.
func readPayload(c *cursor, index int, opts *Options) ([]byte, error) {
	off := c.off
	c.mark()
	data, consumed, err := opts.InflateRaw(c)
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		return nil, TruncatedError{Field: "compressed payload", Off: off}
	case err != nil:
		return nil, PayloadError{Member: index, Err: err}
	}

	c.resetToMark()
	if err = c.skip("compressed payload", consumed); err != nil {
		return nil, err
	}
	return data, nil
}
