package gzdump

import (
	"fmt"
	"io"
)

// TruncatedError is returned when the stream ends in the middle of a structural field.
type TruncatedError struct {
	// Field names the field that was being read.
	Field string
	// Off is the offset of the first byte of the field.
	Off int64
}

func (e TruncatedError) Unwrap() error {
	return io.ErrUnexpectedEOF
}

func (e TruncatedError) Error() string {
	return fmt.Sprintf("unexpected end of stream reading %s at offset %d", e.Field, e.Off)
}

// FormatError is returned when bytes that were read successfully violate the member format.
type FormatError struct {
	// Off is the offset of the offending bytes.
	Off int64
	Msg string
	// Bytes holds the offending bytes, nil when there are none to show.
	Bytes []byte
}

func (e FormatError) Error() string {
	return fmt.Sprintf("malformed member at offset %d: %s", e.Off, e.Msg)
}

// PayloadError is returned when the decompression capability fails on a member's payload.
type PayloadError struct {
	// Member is the zero-based index of the member whose payload could not be decoded.
	Member int
	Err    error
}

func (e PayloadError) Unwrap() error {
	return e.Err
}

func (e PayloadError) Error() string {
	return fmt.Sprintf("decode payload of member %d error: %v", e.Member, e.Err)
}

// ChecksumError is returned only with WithVerification when a stored checksum or size does not match the decoded
// payload.
type ChecksumError struct {
	// Member is the zero-based index of the mismatched member.
	Member int
	// Field is the name of the mismatched quantity: "header CRC16", "CRC32" or "ISIZE".
	Field string
	// Stored is the value recorded in the member; Computed is the value derived from the decoded bytes.
	Stored, Computed uint32
}

func (e ChecksumError) Error() string {
	return fmt.Sprintf("member %d: mismatched %s, got 0x%x, expected 0x%x", e.Member, e.Field, e.Stored, e.Computed)
}
