package gzdump

import (
	"time"
)

const (
	flagText      = 1 << 0
	flagHeaderCRC = 1 << 1
	flagExtra     = 1 << 2
	flagName      = 1 << 3
	flagComment   = 1 << 4
)

// Member is one complete gzip member decoded from a stream.
//
// Optional header items use pointer or nil-slice fields so that an absent item is distinguishable from one that is
// present with a zero value; Flags records which items were present on the wire.
type Member struct {
	// RawHeader holds the fixed-header fields exactly as encoded.
	RawHeader RawHeader `json:"rawHeader"`
	// Flags holds the five defined bits of the flag byte.
	Flags Flags `json:"flags"`
	// OS is the operating-system code from the fixed header.
	OS OS `json:"os"`
	// Level is the compression-level hint from the extra-flags byte.
	Level CompressionLevel `json:"level"`
	// ModTime is the modification time, nil if the raw timestamp is zero.
	ModTime *time.Time `json:"modTime,omitempty"`
	// Extra lists the subfields of the extra field in order of appearance, nil if the member has none.
	Extra []ExtraField `json:"extra,omitempty"`
	// Name is the original file name from the member header, nil if the member has none.
	Name *string `json:"name,omitempty"`
	// Comment is the file comment from the member header, nil if the member has none.
	Comment *string `json:"comment,omitempty"`
	// HeaderCRC is the stored two-byte header checksum, nil if the member has none.
	//
	// The value is recorded verbatim; pass WithVerification to Decode to have it checked.
	HeaderCRC *uint16 `json:"headerCRC,omitempty"`
	// Data is the fully decoded payload.
	Data []byte `json:"-"`
	// CRC32 is the payload checksum from the member trailer, recorded verbatim.
	CRC32 uint32 `json:"crc32"`
	// ISize is the payload size modulo 2^32 from the member trailer, recorded verbatim.
	ISize uint32 `json:"isize"`
}

// RawHeader holds the ten fixed bytes that start every member, decoded positionally but otherwise untouched.
type RawHeader struct {
	ID1        byte   `json:"id1"`
	ID2        byte   `json:"id2"`
	Method     byte   `json:"method"`
	Flags      byte   `json:"flags"`
	ModTime    uint32 `json:"modTime"`
	ExtraFlags byte   `json:"extraFlags"`
	OS         byte   `json:"os"`
}

// Flags is the decoded flag byte. Only the five defined bits are mapped; the reserved high bits remain visible in
// RawHeader.Flags and are otherwise ignored.
type Flags struct {
	Text      bool `json:"text"`
	HeaderCRC bool `json:"headerCRC"`
	Extra     bool `json:"extra"`
	Name      bool `json:"name"`
	Comment   bool `json:"comment"`
}

func parseFlags(b byte) Flags {
	return Flags{
		Text:      b&flagText != 0,
		HeaderCRC: b&flagHeaderCRC != 0,
		Extra:     b&flagExtra != 0,
		Name:      b&flagName != 0,
		Comment:   b&flagComment != 0,
	}
}

// ExtraField is one subfield of a member's extra field.
type ExtraField struct {
	// ID is the two-character subfield identifier.
	ID string `json:"id"`
	// Data is the subfield payload.
	Data []byte `json:"data"`
}

// OS is the operating-system code byte from a member's fixed header.
//
// String maps the codes assigned by RFC 1952; any other code renders as "unrecognized" without failing the decode.
type OS byte

const (
	OSFAT         OS = 0
	OSAmiga       OS = 1
	OSVMS         OS = 2
	OSUnix        OS = 3
	OSVMCMS       OS = 4
	OSAtariTOS    OS = 5
	OSHPFS        OS = 6
	OSMacintosh   OS = 7
	OSZSystem     OS = 8
	OSCPM         OS = 9
	OSTOPS20      OS = 10
	OSNTFS        OS = 11
	OSQDOS        OS = 12
	OSAcornRISCOS OS = 13
	OSUnknown     OS = 255
)

func (o OS) String() string {
	switch o {
	case OSFAT:
		return "FAT"
	case OSAmiga:
		return "Amiga"
	case OSVMS:
		return "VMS"
	case OSUnix:
		return "Unix"
	case OSVMCMS:
		return "VM/CMS"
	case OSAtariTOS:
		return "Atari TOS"
	case OSHPFS:
		return "HPFS"
	case OSMacintosh:
		return "Macintosh"
	case OSZSystem:
		return "Z-System"
	case OSCPM:
		return "CP/M"
	case OSTOPS20:
		return "TOPS-20"
	case OSNTFS:
		return "NTFS"
	case OSQDOS:
		return "QDOS"
	case OSAcornRISCOS:
		return "Acorn RISCOS"
	case OSUnknown:
		return "unknown"
	default:
		return "unrecognized"
	}
}

func (o OS) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// CompressionLevel is the compression-level hint from a member's extra-flags byte.
//
// Only the two values assigned by RFC 1952 plus zero are mapped; any other value renders as "unrecognized" without
// failing the decode.
type CompressionLevel byte

const (
	LevelDefault         CompressionLevel = 0
	LevelBestCompression CompressionLevel = 2
	LevelFastest         CompressionLevel = 4
)

func (l CompressionLevel) String() string {
	switch l {
	case LevelDefault:
		return "default"
	case LevelBestCompression:
		return "best compression"
	case LevelFastest:
		return "fastest"
	default:
		return "unrecognized"
	}
}

func (l CompressionLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func methodName(m byte) string {
	if m == 8 {
		return "deflate"
	}
	return "unrecognized"
}
