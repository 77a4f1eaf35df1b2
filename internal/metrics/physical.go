// Package metrics implements reckon's physical-line, word and character
// counters: raw text metrics that apply to any source text regardless of
// its TextFormat.
package metrics

import (
	"github.com/raven-computing/reckon/internal/encoding"
	"github.com/raven-computing/reckon/internal/types"
)

// CountPhysicalLines counts physical (newline-delimited) lines in
// source. An empty input yields zero lines. A final, unterminated line
// (no trailing newline) still counts as one line. UTF-16 input counts
// 16-bit-code-unit newlines rather than byte-wise ones.
func CountPhysicalLines(source types.SourceText) types.CountResult {
	if source.Size == 0 {
		return types.CountResult{State: types.OK()}
	}
	if source.Size > uint64(types.MaxCounterInput) {
		return types.CountResult{State: types.Failed(types.ErrInputTooLarge, "Input exceeds maximum supported size")}
	}

	enc := encoding.Detect(source)
	var count types.Count
	if enc == types.UTF8 {
		count = countPhysicalLinesUTF8(source)
	} else {
		count = countPhysicalLinesUTF16(source, enc == types.UTF16LE)
	}
	return types.CountResult{Count: count, State: types.OK()}
}

func countPhysicalLinesUTF8(source types.SourceText) types.Count {
	var count types.Count
	text := source.Text
	for _, b := range text {
		if b == '\n' {
			count++
		}
	}
	if text[len(text)-1] != '\n' {
		count++
	}
	return count
}

func countPhysicalLinesUTF16(source types.SourceText, littleEndian bool) types.Count {
	var count types.Count
	text := source.Text
	size := len(text)

	var nlByte0, nlByte1 byte
	if littleEndian {
		nlByte0, nlByte1 = '\n', 0x00
	} else {
		nlByte0, nlByte1 = 0x00, '\n'
	}

	i := 2 // skip BOM
	for i+1 < size {
		if text[i] == nlByte0 && text[i+1] == nlByte1 {
			count++
		}
		i += 2
	}
	if size > 2 {
		last0, last1 := text[size-2], text[size-1]
		if !(last0 == nlByte0 && last1 == nlByte1) {
			count++
		}
	}
	return count
}
