package metrics

import "github.com/raven-computing/reckon/internal/types"

// CountWords counts ASCII whitespace-delimited byte runs in source. This
// is intentionally encoding-ignorant: even UTF-16 input is scanned
// byte-wise rather than being decoded into 16-bit code units first, so
// the word count for UTF-16 input is a byte-level approximation.
func CountWords(source types.SourceText) types.CountResult {
	if source.Size == 0 {
		return types.CountResult{State: types.OK()}
	}
	if source.Size > uint64(types.MaxCounterInput) {
		return types.CountResult{State: types.Failed(types.ErrInputTooLarge, "Input exceeds maximum supported size")}
	}

	var count types.Count
	inWord := false
	for _, b := range source.Text {
		if isASCIISpace(b) {
			inWord = false
			continue
		}
		if !inWord {
			count++
			inWord = true
		}
	}
	return types.CountResult{Count: count, State: types.OK()}
}

// isASCIISpace matches the C standard library's isspace() for the
// portable "C" locale: space, form feed, newline, carriage return,
// horizontal tab, vertical tab.
func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\f', '\n', '\r', '\t', '\v':
		return true
	default:
		return false
	}
}
