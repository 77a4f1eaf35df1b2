package types

// Encoding is the text encoding detected for a chunk of source bytes.
type Encoding int

const (
	// UTF8 is the default encoding assumed whenever no BOM is present.
	UTF8 Encoding = iota
	// UTF16LE is little-endian UTF-16, detected via a 0xFF 0xFE BOM.
	UTF16LE
	// UTF16BE is big-endian UTF-16, detected via a 0xFE 0xFF BOM.
	UTF16BE
)

// String names the encoding.
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	default:
		return "unknown"
	}
}

// MaxCounterInput is the largest input size, in bytes, any single counter
// (physical, word, character or logical-line) will process. Anything
// larger yields ErrInputTooLarge.
const MaxCounterInput = ^uint32(0) // u32::MAX

// MaxFileSize is the largest file FileReader will read into memory.
const MaxFileSize = 512 * 1024 * 1024 // 512 MiB

// MaxFilesPerWalk caps how many files a single DirectoryWalker run will
// collect, guarding against hardlink/bind-mount loop resource exhaustion
// (symlinks are never followed).
const MaxFilesPerWalk = 10000

// SourceText is a view over raw source bytes plus its size. It exists
// as a distinct named type (rather than a bare []byte) because several
// operations care about the size separate from len(Text) when the slice
// is a window into a larger buffer.
type SourceText struct {
	Text []byte
	Size uint64
}

// NewSourceText wraps a byte slice as a SourceText.
func NewSourceText(b []byte) SourceText {
	return SourceText{Text: b, Size: uint64(len(b))}
}

// SourceFile is one file discovered by a DirectoryWalker, or the single
// file given directly to the statistics coordinator. Name and Extension
// are derived views into Path rather than separate copies.
type SourceFile struct {
	Path          string
	Name          string
	Extension     string
	Content       SourceText
	IsContentRead bool
	Status        FileOpStatus
}

// FileOpStatus enumerates the ways reading a file from disk can fail.
// The zero value, FileOK, is guaranteed to be the only status considered
// successful.
type FileOpStatus int

const (
	// FileOK means no error occurred. Guaranteed to be the zero value.
	FileOK FileOpStatus = iota
	FileInvalidPath
	FileNotFound
	FileIOError
	FileAllocFailure
	FileTooLarge
	FileUnknownError
)

// NewSourceFile builds a SourceFile from a path, deriving Name (the
// basename) and Extension (without the leading dot) from it.
func NewSourceFile(path string) *SourceFile {
	name := findFilename(path)
	return &SourceFile{
		Path:      path,
		Name:      name,
		Extension: findExtension(name),
		Status:    FileOK,
	}
}

func findFilename(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			if i == len(path)-1 {
				return path
			}
			return path[i+1:]
		}
	}
	return path
}

// findExtension returns the extension without its leading dot, or "" if
// name has no dot or the dot is the final character.
func findExtension(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			if i == len(name)-1 {
				return ""
			}
			return name[i+1:]
		}
	}
	return ""
}
