package metrics

import (
	"github.com/raven-computing/reckon/internal/encoding"
	"github.com/raven-computing/reckon/internal/types"
)

const (
	utf16BOMLE = 0xfffe
	utf16BOMBE = 0xfeff

	highSurrogateStart = 0xd800
	highSurrogateEnd   = 0xdbff
	lowSurrogateStart  = 0xdc00
	lowSurrogateEnd    = 0xdfff

	maskB2       = 0xe0
	maskB3       = 0xf0
	maskB4       = 0xf8
	twoByteSeq   = 0xc0
	threeByteSeq = 0xe0
	fourByteSeq  = 0xf0
)

// CountCharacters counts Unicode code points in source: UTF-8 input is
// stepped through by a computed byte stride without validating
// continuation bytes (a truncated or malformed multi-byte sequence is
// still counted as exactly one character); UTF-16 input is stepped
// through by 16-bit code unit, where a valid surrogate pair counts as one
// character, an unpaired high surrogate contributes zero, and a stray low
// surrogate contributes zero. Grounded on characters.c.
func CountCharacters(source types.SourceText) types.CountResult {
	if source.Size == 0 {
		return types.CountResult{State: types.OK()}
	}
	if source.Size > uint64(types.MaxCounterInput) {
		return types.CountResult{State: types.Failed(types.ErrInputTooLarge, "Input exceeds maximum supported size")}
	}

	enc := encoding.Detect(source)
	var count types.Count
	if enc == types.UTF8 {
		count = countCharactersUTF8(source)
	} else {
		count = countCharactersUTF16(source, enc == types.UTF16LE)
	}
	return types.CountResult{Count: count, State: types.OK()}
}

func codeUnit(text []byte, offset int, littleEndian bool) uint16 {
	b0, b1 := text[offset], text[offset+1]
	if littleEndian {
		return uint16(b0) | uint16(b1)<<8
	}
	return uint16(b0)<<8 | uint16(b1)
}

func countCharactersUTF16(source types.SourceText, littleEndian bool) types.Count {
	text := source.Text
	size := len(text)
	var count types.Count
	offset := 0

	if size >= 2 {
		cu0 := codeUnit(text, 0, littleEndian)
		if cu0 == utf16BOMBE || cu0 == utf16BOMLE {
			offset = 2
		}
	}

	for offset+1 < size {
		cu0 := codeUnit(text, offset, littleEndian)
		offset += 2
		if cu0 == utf16BOMBE || cu0 == utf16BOMLE {
			continue // ignore stray BOMs beyond start
		}
		if cu0 >= highSurrogateStart && cu0 <= highSurrogateEnd {
			if offset+1 < size {
				cu1 := codeUnit(text, offset, littleEndian)
				if cu1 >= lowSurrogateStart && cu1 <= lowSurrogateEnd {
					offset += 2
					count++
				}
			}
			continue
		}
		if cu0 >= lowSurrogateStart && cu0 <= lowSurrogateEnd {
			continue // ignore stray low surrogates
		}
		count++
	}
	// any trailing single byte is ignored
	return count
}

func countCharactersUTF8(source types.SourceText) types.Count {
	var count types.Count
	offset := 0
	if encoding.HasUTF8BOM(source) {
		offset = 3
	}
	text := source.Text
	size := len(text)
	for offset < size {
		b := text[offset]
		stride := 1
		if b&maskB2 == twoByteSeq && offset+1 < size {
			stride = 2
		} else if b&maskB3 == threeByteSeq && offset+2 < size {
			stride = 3
		} else if b&maskB4 == fourByteSeq && offset+3 < size {
			stride = 4
		}
		offset += stride
		count++
	}
	return count
}
