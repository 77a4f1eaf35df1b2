package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raven-computing/reckon/internal/types"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want types.Encoding
	}{
		{"empty", []byte{}, types.UTF8},
		{"utf8 bom", []byte{0xEF, 0xBB, 0xBF, 'a'}, types.UTF8},
		{"utf16le bom", []byte{0xFF, 0xFE, 'a', 0}, types.UTF16LE},
		{"utf16be bom", []byte{0xFE, 0xFF, 0, 'a'}, types.UTF16BE},
		{"no bom ascii", []byte("package main"), types.UTF8},
		{"single byte", []byte{0xFF}, types.UTF8},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Detect(types.NewSourceText(c.data))
			assert.Equal(t, c.want, got)
		})
	}
}

func TestHasUTF8BOM(t *testing.T) {
	assert.True(t, HasUTF8BOM(types.NewSourceText([]byte{0xEF, 0xBB, 0xBF})))
	assert.False(t, HasUTF8BOM(types.NewSourceText([]byte{0xEF, 0xBB})))
	assert.False(t, HasUTF8BOM(types.NewSourceText(nil)))
}
