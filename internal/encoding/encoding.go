// Package encoding implements reckon's encoding detection: BOM-based
// sniffing of UTF-8, UTF-16LE and UTF-16BE source text.
package encoding

import "github.com/raven-computing/reckon/internal/types"

// HasUTF8BOM reports whether source begins with the three-byte UTF-8
// byte-order mark EF BB BF.
func HasUTF8BOM(source types.SourceText) bool {
	return source.Size >= 3 &&
		source.Text[0] == 0xEF &&
		source.Text[1] == 0xBB &&
		source.Text[2] == 0xBF
}

// Detect sniffs source's encoding by checking, in order, for a UTF-8 BOM,
// then a UTF-16LE BOM (FF FE), then a UTF-16BE BOM (FE FF), defaulting to
// UTF-8 when none is present.
func Detect(source types.SourceText) types.Encoding {
	if HasUTF8BOM(source) {
		return types.UTF8
	}
	if source.Size >= 2 {
		b0, b1 := source.Text[0], source.Text[1]
		if b0 == 0xFF && b1 == 0xFE {
			return types.UTF16LE
		}
		if b0 == 0xFE && b1 == 0xFF {
			return types.UTF16BE
		}
	}
	return types.UTF8
}
