package gzdump

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// cursor is a forward-only reader over the raw stream with a one-shot checkpoint used to reposition after probing a
// member's payload.
//
// It implements flate.Reader so the decompression capability can consume it directly; reading one byte at a time from
// a bufio.Reader is cheap and keeps the capability from buffering past the end of the payload.
type cursor struct {
	src *bufio.Reader
	// replay holds bytes to serve again ahead of src after resetToMark.
	replay []byte
	// tee captures every byte served while a mark is active.
	tee *bytes.Buffer
	// off is the offset of the next byte to serve, counted from the start of the stream.
	off int64
}

func newCursor(src io.Reader) *cursor {
	return &cursor{src: bufio.NewReaderSize(src, 16*1024)}
}

func (c *cursor) Read(p []byte) (n int, err error) {
	if len(c.replay) > 0 {
		n = copy(p, c.replay)
		c.replay = c.replay[n:]
	} else {
		n, err = c.src.Read(p)
	}
	if c.tee != nil {
		c.tee.Write(p[:n])
	}
	c.off += int64(n)
	return n, err
}

func (c *cursor) ReadByte() (byte, error) {
	var b byte
	if len(c.replay) > 0 {
		b = c.replay[0]
		c.replay = c.replay[1:]
	} else {
		var err error
		if b, err = c.src.ReadByte(); err != nil {
			return 0, err
		}
	}
	if c.tee != nil {
		c.tee.WriteByte(b)
	}
	c.off++
	return b, nil
}

// readExact returns the next n bytes, or a TruncatedError naming field if the stream ends first.
func (c *cursor) readExact(field string, n int) ([]byte, error) {
	off := c.off
	b := make([]byte, n)
	switch _, err := io.ReadFull(c, b); {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return nil, TruncatedError{Field: field, Off: off}
	case err != nil:
		return nil, fmt.Errorf("read %s error: %w", field, err)
	}
	return b, nil
}

// readCString returns the raw bytes up to an excluded zero terminator, or a TruncatedError naming field if the stream
// ends before one is found.
func (c *cursor) readCString(field string) ([]byte, error) {
	off := c.off
	var b []byte
	for {
		switch v, err := c.ReadByte(); {
		case errors.Is(err, io.EOF):
			return nil, TruncatedError{Field: field, Off: off}
		case err != nil:
			return nil, fmt.Errorf("read %s error: %w", field, err)
		case v == 0:
			return b, nil
		default:
			b = append(b, v)
		}
	}
}

// mark begins capturing served bytes so that resetToMark can serve them again. Only one checkpoint is active at a
// time; marking again discards the previous capture.
func (c *cursor) mark() {
	c.tee = &bytes.Buffer{}
}

// resetToMark repositions the cursor at the byte that followed the last mark and stops capturing.
func (c *cursor) resetToMark() {
	b := c.tee.Bytes()
	c.tee = nil
	c.off -= int64(len(b))
	c.replay = append(b, c.replay...)
}

// skip discards the next n bytes, returning a TruncatedError naming field if the stream ends first.
func (c *cursor) skip(field string, n int64) error {
	off := c.off
	if m := int64(len(c.replay)); m > 0 {
		if n <= m {
			c.replay = c.replay[n:]
			c.off += n
			return nil
		}
		c.replay = nil
		c.off += m
		n -= m
	}
	m, err := io.CopyN(io.Discard, c.src, n)
	c.off += m
	switch {
	case errors.Is(err, io.EOF):
		return TruncatedError{Field: field, Off: off}
	case err != nil:
		return fmt.Errorf("skip %s error: %w", field, err)
	}
	return nil
}

// exhausted reports whether the stream has no more bytes. Only meaningful between members; a mark must not be active.
func (c *cursor) exhausted() (bool, error) {
	if len(c.replay) > 0 {
		return false, nil
	}
	switch _, err := c.src.Peek(1); {
	case errors.Is(err, io.EOF):
		return true, nil
	case err != nil:
		return false, err
	}
	return false, nil
}
