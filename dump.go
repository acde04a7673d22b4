package gzdump

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Dump writes one "name = value" line per decoded field of the member to w, sorted by field name. Optional items that
// are absent from the member are omitted entirely rather than rendered with defaults.
func (m *Member) Dump(w io.Writer) error {
	lines := make([]string, 0, 12)
	add := func(name, format string, args ...any) {
		lines = append(lines, fmt.Sprintf("%-11s = %s", name, fmt.Sprintf(format, args...)))
	}

	add("data", "%s (%d)", humanize.IBytes(uint64(len(m.Data))), len(m.Data))
	add("flags", "0x%02x (%s)", m.RawHeader.Flags, flagNames(m.Flags))
	add("isize", "%d", m.ISize)
	add("level", "%s (%d)", m.Level, m.RawHeader.ExtraFlags)
	add("method", "%s (%d)", methodName(m.RawHeader.Method), m.RawHeader.Method)
	add("os", "%s (%d)", m.OS, m.RawHeader.OS)
	add("trailer crc", "0x%08x", m.CRC32)
	if m.Comment != nil {
		add("comment", "%q", *m.Comment)
	}
	if m.Extra != nil {
		add("extra", "%s", extraSummary(m.Extra))
	}
	if m.HeaderCRC != nil {
		add("header crc", "0x%04x", *m.HeaderCRC)
	}
	if m.ModTime != nil {
		add("mtime", "%s", m.ModTime.Format(time.UnixDate))
	}
	if m.Name != nil {
		add("name", "%q", *m.Name)
	}

	slices.Sort(lines)
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func flagNames(f Flags) string {
	names := make([]string, 0, 5)
	if f.Text {
		names = append(names, "text")
	}
	if f.HeaderCRC {
		names = append(names, "hcrc")
	}
	if f.Extra {
		names = append(names, "extra")
	}
	if f.Name {
		names = append(names, "name")
	}
	if f.Comment {
		names = append(names, "comment")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

func extraSummary(fields []ExtraField) string {
	if len(fields) == 0 {
		return "0 subfields"
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%q %s", f.ID, humanize.IBytes(uint64(len(f.Data))))
	}
	return strings.Join(parts, ", ")
}
