package gzdump

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMember_Dump(t *testing.T) {
	tests := []struct {
		name     string
		b        []byte
		expected string
	}{
		{
			name: "all items",
			b:    worksMember(),
			expected: `comment     = "no comment"
data        = 4 B (4)
extra       = "x1" 4 B
flags       = 0x1f (text, hcrc, extra, name, comment)
header crc  = 0x40e8
isize       = 4
level       = default (0)
method      = deflate (8)
mtime       = Sun Sep 13 12:26:40 UTC 2020
name        = "foo.bar"
os          = Unix (3)
trailer crc = 0x7e3265a8
`,
		},
		{
			name: "bare",
			b:    encodeMember(t, memberOpts{os: 255}),
			expected: `data        = 0 B (0)
flags       = 0x00 (none)
isize       = 0
level       = default (0)
method      = deflate (8)
os          = unknown (255)
trailer crc = 0x00000000
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members, err := Decode(bytes.NewReader(tt.b))
			assert.NoErrorf(t, err, "Decode(...) error = %v", err)
			if !assert.Len(t, members, 1) {
				return
			}

			var sb strings.Builder
			assert.NoErrorf(t, members[0].Dump(&sb), "Dump(...) error")
			assert.Equal(t, tt.expected, sb.String())
		})
	}
}

func TestMember_JSON(t *testing.T) {
	members, err := Decode(bytes.NewReader(worksMember()))
	assert.NoErrorf(t, err, "Decode(...) error = %v", err)

	b, err := json.Marshal(members[0])
	assert.NoErrorf(t, err, "Marshal(...) error = %v", err)

	var m map[string]any
	assert.NoErrorf(t, json.Unmarshal(b, &m), "Unmarshal(...) error")
	assert.Equal(t, "Unix", m["os"])
	assert.Equal(t, "default", m["level"])
	assert.Equal(t, "foo.bar", m["name"])
	assert.Equal(t, "no comment", m["comment"])
	assert.Equal(t, float64(4), m["isize"])
	// the payload itself stays out of the rendering.
	assert.NotContains(t, m, "data")
	assert.NotContains(t, m, "Data")
}

func TestMember_JSONUnrecognizedCodes(t *testing.T) {
	members, err := Decode(bytes.NewReader(encodeMember(t, memberOpts{data: []byte("x"), os: 200, xfl: 9})))
	assert.NoErrorf(t, err, "Decode(...) error = %v", err)

	b, err := json.Marshal(members[0])
	assert.NoErrorf(t, err, "Marshal(...) error = %v", err)

	// symbolic fields carry the category only; the numeric codes stay verbatim under rawHeader.
	var m map[string]any
	assert.NoErrorf(t, json.Unmarshal(b, &m), "Unmarshal(...) error")
	assert.Equal(t, "unrecognized", m["os"])
	assert.Equal(t, "unrecognized", m["level"])
	assert.Equal(t, map[string]any{
		"id1":        float64(0x1f),
		"id2":        float64(0x8b),
		"method":     float64(8),
		"flags":      float64(0),
		"modTime":    float64(0),
		"extraFlags": float64(9),
		"os":         float64(200),
	}, m["rawHeader"])
}

func TestMember_JSONOmitsAbsentItems(t *testing.T) {
	members, err := Decode(bytes.NewReader(encodeMember(t, memberOpts{data: []byte("x"), os: 255})))
	assert.NoErrorf(t, err, "Decode(...) error = %v", err)

	b, err := json.Marshal(members[0])
	assert.NoErrorf(t, err, "Marshal(...) error = %v", err)

	var m map[string]any
	assert.NoErrorf(t, json.Unmarshal(b, &m), "Unmarshal(...) error")
	for _, key := range []string{"modTime", "extra", "name", "comment", "headerCRC"} {
		assert.NotContains(t, m, key)
	}
}

func TestFlagNames(t *testing.T) {
	assert.Equal(t, "none", flagNames(Flags{}))
	assert.Equal(t, "text, extra", flagNames(Flags{Text: true, Extra: true}))
	assert.Equal(t, "text, hcrc, extra, name, comment", flagNames(Flags{Text: true, HeaderCRC: true, Extra: true, Name: true, Comment: true}))
}
