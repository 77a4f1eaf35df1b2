package fileio

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/raven-computing/reckon/internal/types"
)

// Walker discovers regular files under a directory tree. It never
// follows symlinks (entries are classified by lstat), always skips
// dotfiles and dot-directories unconditionally, and caps the number of
// files collected at types.MaxFilesPerWalk to guard against
// hardlink/bind-mount loops turning a bounded scan into an unbounded
// one.
//
// Exclude holds additional doublestar glob patterns (matched against the
// path relative to the walk root) to skip; leave it nil to collect
// everything the dotfile rule lets through.
type Walker struct {
	Exclude []string
}

// NewWalker returns a Walker with no additional exclusions.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk scans root (which must be a directory) and returns every regular
// file found, sorted ascending by basename under case-sensitive byte
// comparison. The scan is iterative (an explicit directory stack), not
// recursive.
func (w *Walker) Walk(root string) ([]*types.SourceFile, error) {
	var files []*types.SourceFile
	stack := []string{root}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			continue // unreadable directory: skip it
		}

		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") {
				continue // '.', '..' and every dotfile/dot-directory
			}
			full := filepath.Join(dir, name)

			if w.excluded(root, full) {
				continue
			}

			info, err := os.Lstat(full)
			if err != nil {
				continue
			}
			mode := info.Mode()
			if mode&os.ModeSymlink != 0 {
				continue // symlinks are never followed or counted
			}
			if mode.IsDir() {
				stack = append(stack, full)
				continue
			}
			if mode.IsRegular() {
				files = append(files, types.NewSourceFile(full))
				if len(files) >= types.MaxFilesPerWalk {
					return sortedFiles(files), nil
				}
			}
		}
	}
	return sortedFiles(files), nil
}

func (w *Walker) excluded(root, path string) bool {
	if len(w.Exclude) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range w.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func sortedFiles(files []*types.SourceFile) []*types.SourceFile {
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files
}

// IsDirectory reports whether path names a directory, without following
// a trailing symlink.
func IsDirectory(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ValidateStatsInput returns "" if path names a regular file or a
// directory, and a human-readable message otherwise.
func ValidateStatsInput(path string) string {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "No such file or directory"
		}
		return "Invalid input file path"
	}
	if info.IsDir() || info.Mode().IsRegular() {
		return ""
	}
	return "Is not a regular file or directory"
}
