// Package fileio discovers source files on disk, reads their content
// under a size ceiling, and maps their extension to a TextFormat.
package fileio

import (
	"errors"
	"os"

	"github.com/raven-computing/reckon/internal/types"
)

// ReadContent reads file's content from disk into memory. A file
// already in an error status refuses to read (the status is sticky), a
// file whose content has already been read is a no-op, and a file larger
// than MaxFileSize fails with FileTooLarge without attempting to read
// it.
func ReadContent(file *types.SourceFile) error {
	if file.Status != types.FileOK {
		return nil
	}
	if file.IsContentRead {
		return nil
	}
	if file.Path == "" {
		file.Status = types.FileInvalidPath
		return nil
	}

	info, err := os.Stat(file.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file.Status = types.FileNotFound
		} else {
			file.Status = types.FileIOError
		}
		return nil
	}
	if uint64(info.Size()) > types.MaxFileSize {
		file.Status = types.FileTooLarge
		return nil
	}

	content, err := os.ReadFile(file.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file.Status = types.FileNotFound
		} else {
			file.Status = types.FileIOError
		}
		return nil
	}

	file.Content = types.NewSourceText(content)
	file.IsContentRead = true
	return nil
}

// FreeContent discards file's in-memory content. Go's garbage collector
// reclaims the backing array; this just drops the reference and resets
// the bookkeeping flags so the file can be re-read later if needed.
func FreeContent(file *types.SourceFile) {
	file.Content = types.SourceText{}
	file.IsContentRead = false
}
