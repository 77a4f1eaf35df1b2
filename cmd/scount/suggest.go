package main

import (
	"github.com/hbollon/go-edlib"

	"github.com/raven-computing/reckon/internal/fileio"
)

// maxSuggestionDistance bounds how far off an extension may be before
// suggesting it stops being helpful.
const maxSuggestionDistance = 2

// suggestExtension finds the supported extension closest to ext by
// Levenshtein edit distance, for the CLI's unsupported-format error
// message. Returns "" when nothing is close enough to be a helpful
// suggestion.
func suggestExtension(ext string) string {
	if ext == "" {
		return ""
	}
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, candidate := range fileio.SupportedExtensions() {
		distance := edlib.LevenshteinDistance(ext, candidate)
		if distance < bestDistance {
			bestDistance = distance
			best = candidate
		}
	}
	if bestDistance > maxSuggestionDistance {
		return ""
	}
	return best
}
