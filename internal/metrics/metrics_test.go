package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raven-computing/reckon/internal/types"
)

func TestCountPhysicalLines(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want types.Count
	}{
		{"empty", []byte{}, 0},
		{"single line no newline", []byte("abc"), 1},
		{"single line with newline", []byte("abc\n"), 1},
		{"two lines", []byte("a\nb"), 2},
		{"two lines terminated", []byte("a\nb\n"), 2},
		{"crlf", []byte("a\r\nb\r\n"), 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := CountPhysicalLines(types.NewSourceText(c.data))
			assert.True(t, r.State.Ok)
			assert.Equal(t, c.want, r.Count)
		})
	}
}

func TestCountPhysicalLinesUTF16(t *testing.T) {
	// "a\nb" in UTF-16LE with BOM.
	data := []byte{0xFF, 0xFE, 'a', 0, '\n', 0, 'b', 0}
	r := CountPhysicalLines(types.NewSourceText(data))
	assert.True(t, r.State.Ok)
	assert.Equal(t, types.Count(2), r.Count)
}

func TestCountPhysicalLinesBOMOnly(t *testing.T) {
	for _, bom := range [][]byte{{0xFF, 0xFE}, {0xFE, 0xFF}} {
		r := CountPhysicalLines(types.NewSourceText(bom))
		assert.True(t, r.State.Ok)
		assert.Zero(t, r.Count)
	}
}

func TestCountWords(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want types.Count
	}{
		{"empty", []byte{}, 0},
		{"single word", []byte("hello"), 1},
		{"two words", []byte("hello world"), 2},
		{"leading/trailing space", []byte("  hello world  "), 2},
		{"tabs and newlines", []byte("a\tb\nc"), 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := CountWords(types.NewSourceText(c.data))
			assert.True(t, r.State.Ok)
			assert.Equal(t, c.want, r.Count)
		})
	}
}

func TestCountCharactersASCII(t *testing.T) {
	r := CountCharacters(types.NewSourceText([]byte("hello")))
	assert.True(t, r.State.Ok)
	assert.Equal(t, types.Count(5), r.Count)
}

func TestCountCharactersUTF8Multibyte(t *testing.T) {
	// "héllo" - é is 2 bytes in UTF-8.
	data := []byte("h\xc3\xa9llo")
	r := CountCharacters(types.NewSourceText(data))
	assert.True(t, r.State.Ok)
	assert.Equal(t, types.Count(5), r.Count)
}

func TestCountCharactersUTF16SurrogatePair(t *testing.T) {
	// U+1F600 GRINNING FACE as a surrogate pair, little endian, no BOM.
	data := []byte{0x3D, 0xD8, 0x00, 0xDE}
	r := CountCharacters(types.NewSourceText(append([]byte{0xFF, 0xFE}, data...)))
	assert.True(t, r.State.Ok)
	assert.Equal(t, types.Count(1), r.Count)
}

func TestCountCharactersBOMOnly(t *testing.T) {
	for _, bom := range [][]byte{{0xFF, 0xFE}, {0xFE, 0xFF}, {0xEF, 0xBB, 0xBF}} {
		r := CountCharacters(types.NewSourceText(bom))
		assert.True(t, r.State.Ok)
		assert.Zero(t, r.Count)
	}
}

func TestCountCharactersUTF16UnpairedHighSurrogate(t *testing.T) {
	// A lone high surrogate followed by an ordinary BMP code point.
	data := append([]byte{0xFF, 0xFE}, 0x00, 0xD8, 'a', 0)
	r := CountCharacters(types.NewSourceText(data))
	assert.True(t, r.State.Ok)
	// The unpaired high surrogate contributes zero; only 'a' counts.
	assert.Equal(t, types.Count(1), r.Count)
}
