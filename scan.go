package gzdump

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/crc32"
	"time"
)

const (
	gzipID1 = 0x1f
	gzipID2 = 0x8b
)

// readMember decodes one complete member at the cursor: fixed header, the optional items its flag byte announces, the
// compressed payload, then the trailer. The first error aborts the member; nothing is retried or resynchronized.
func readMember(c *cursor, index int, opts *Options) (m Member, err error) {
	// hdrCRC mirrors every header byte up to the CRC16 field. nil unless verifying.
	var hdrCRC hash.Hash32
	if opts.Verify {
		hdrCRC = crc32.NewIEEE()
	}

	b, err := c.readExact("fixed header", 10)
	if err != nil {
		return m, err
	}
	if b[0] != gzipID1 || b[1] != gzipID2 {
		return m, FormatError{
			Off:   c.off - 10,
			Msg:   fmt.Sprintf("mismatched signature, got 0x%x, expected 0x%x", b[:2], []byte{gzipID1, gzipID2}),
			Bytes: b[:2],
		}
	}

	m.RawHeader = RawHeader{
		ID1:        b[0],
		ID2:        b[1],
		Method:     b[2],
		Flags:      b[3],
		ModTime:    binary.LittleEndian.Uint32(b[4:8]),
		ExtraFlags: b[8],
		OS:         b[9],
	}
	m.Flags = parseFlags(b[3])
	m.Level = CompressionLevel(b[8])
	m.OS = OS(b[9])
	if m.RawHeader.ModTime != 0 {
		t := time.Unix(int64(m.RawHeader.ModTime), 0).UTC()
		m.ModTime = &t
	}
	if hdrCRC != nil {
		hdrCRC.Write(b)
	}

	if m.Flags.Extra {
		if m.Extra, err = readExtra(c, hdrCRC); err != nil {
			return m, err
		}
	}

	if m.Flags.Name {
		s, err := readLatin1(c, "file name", hdrCRC)
		if err != nil {
			return m, err
		}
		m.Name = &s
	}

	if m.Flags.Comment {
		s, err := readLatin1(c, "file comment", hdrCRC)
		if err != nil {
			return m, err
		}
		m.Comment = &s
	}

	if m.Flags.HeaderCRC {
		if b, err = c.readExact("header CRC16", 2); err != nil {
			return m, err
		}
		v := binary.LittleEndian.Uint16(b)
		m.HeaderCRC = &v
		if hdrCRC != nil {
			if computed := uint16(hdrCRC.Sum32()); v != computed {
				return m, ChecksumError{Member: index, Field: "header CRC16", Stored: uint32(v), Computed: uint32(computed)}
			}
		}
	}

	if m.Data, err = readPayload(c, index, opts); err != nil {
		return m, err
	}

	if b, err = c.readExact("trailer", 8); err != nil {
		return m, err
	}
	m.CRC32 = binary.LittleEndian.Uint32(b[:4])
	m.ISize = binary.LittleEndian.Uint32(b[4:8])

	if opts.Verify {
		if computed := crc32.ChecksumIEEE(m.Data); m.CRC32 != computed {
			return m, ChecksumError{Member: index, Field: "CRC32", Stored: m.CRC32, Computed: computed}
		}
		if computed := uint32(len(m.Data)); m.ISize != computed {
			return m, ChecksumError{Member: index, Field: "ISIZE", Stored: m.ISize, Computed: computed}
		}
	}

	return m, nil
}

// readExtra decodes the extra field as back-to-back subfields. A subfield that runs past the end of the field is a
// FormatError; a zero-length field decodes to zero subfields.
func readExtra(c *cursor, hdrCRC hash.Hash32) ([]ExtraField, error) {
	b, err := c.readExact("extra length", 2)
	if err != nil {
		return nil, err
	}
	if hdrCRC != nil {
		hdrCRC.Write(b)
	}

	xlen := int(binary.LittleEndian.Uint16(b))
	off := c.off
	if b, err = c.readExact("extra field", xlen); err != nil {
		return nil, err
	}
	if hdrCRC != nil {
		hdrCRC.Write(b)
	}

	fields := make([]ExtraField, 0, 1)
	for i := 0; i < xlen; {
		if xlen-i < 4 {
			return nil, FormatError{
				Off:   off + int64(i),
				Msg:   fmt.Sprintf("subfield header overruns extra field, %d bytes left", xlen-i),
				Bytes: b[i:],
			}
		}
		id, n := latin1String(b[i:i+2]), int(binary.LittleEndian.Uint16(b[i+2:i+4]))
		i += 4
		if n > xlen-i {
			return nil, FormatError{
				Off:   off + int64(i),
				Msg:   fmt.Sprintf(`subfield "%s" overruns extra field, expected %d bytes, got %d`, id, n, xlen-i),
				Bytes: b[i:],
			}
		}
		fields = append(fields, ExtraField{ID: id, Data: b[i : i+n]})
		i += n
	}
	return fields, nil
}

// readLatin1 reads a zero-terminated Latin-1 string.
func readLatin1(c *cursor, field string, hdrCRC hash.Hash32) (string, error) {
	b, err := c.readCString(field)
	if err != nil {
		return "", err
	}
	if hdrCRC != nil {
		hdrCRC.Write(b)
		hdrCRC.Write([]byte{0})
	}
	return latin1String(b), nil
}

// latin1String converts Latin-1 bytes to a string, one rune per byte.
func latin1String(b []byte) string {
	rs := make([]rune, len(b))
	for i, v := range b {
		rs[i] = rune(v)
	}
	return string(rs)
}
