package fileio

import (
	"strings"

	"github.com/raven-computing/reckon/internal/types"
)

// extensionFormats maps a lowercase extension (without the leading dot)
// to its TextFormat.
var extensionFormats = map[string]types.TextFormat{
	"c":    types.LangC,
	"h":    types.LangC,
	"java": types.LangJava,
	"md":   types.Markdown,
	"txt":  types.UnformattedText,
}

// DetectFormat maps file's extension to a TextFormat. Comparison is
// case-insensitive; the zero value of FormatDetection
// (IsSupportedFormat=false) signals an extension nothing in the table
// recognizes.
func DetectFormat(file *types.SourceFile) types.FormatDetection {
	ext := strings.ToLower(file.Extension)
	format, ok := extensionFormats[ext]
	if !ok {
		return types.FormatDetection{}
	}
	return types.FormatDetection{
		Format:                format,
		IsSupportedFormat:     true,
		IsProgrammingLanguage: format.IsProgrammingLanguage(),
	}
}

// SupportedExtensions returns every extension DetectFormat recognizes,
// used by the CLI's closest-match suggestion for an unsupported one.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(extensionFormats))
	for ext := range extensionFormats {
		exts = append(exts, ext)
	}
	return exts
}
