// Package stats implements the per-operation orchestrator that walks a
// Statistics' file list, runs the selected counters on each, and folds
// per-file results into per-format and grand totals.
package stats

import (
	"github.com/raven-computing/reckon/internal/debug"
	"github.com/raven-computing/reckon/internal/fileio"
	"github.com/raven-computing/reckon/internal/metrics"
	"github.com/raven-computing/reckon/internal/parser"
	"github.com/raven-computing/reckon/internal/types"
)

// Coordinator runs counting operations over a Statistics' files. A
// single Coordinator can run Count any number of times, but Count itself
// is not idempotent against a given *types.Statistics - each call must
// operate on a freshly built Statistics.
type Coordinator struct {
	Grammar *parser.GrammarService
	Log     *debug.Logger
}

// New returns a Coordinator backed by grammar. log may be nil (a
// no-op/disabled logger).
func New(grammar *parser.GrammarService, log *debug.Logger) *Coordinator {
	if log == nil {
		log = debug.Disabled()
	}
	return &Coordinator{Grammar: grammar, Log: log}
}

// Count is the single entry point: for every file in st.Files, it
// selects enabled operations, reads content as needed, runs the
// requested counters, and folds the result into st's per-format and
// grand totals. A single-file Statistics adopts the sole result's state
// verbatim, so it reports exactly like a single-file atomic call.
func (c *Coordinator) Count(st *types.Statistics, opts types.StatOptions) {
	if len(st.Files) == 0 {
		st.State = types.Failed(types.ErrInvalidInput, "No input files provided")
		return
	}

	st.State = types.OK()

	for i, file := range st.Files {
		result := st.Results[i]
		result.Reset()

		detection := fileio.DetectFormat(file)
		if !detection.IsSupportedFormat {
			result.State.Kind = types.ErrUnsupportedFormat
			result.State.Message = "The source format is not supported"
			c.Log.Log("stats", "skipping %s: unsupported format", file.Path)
			continue
		}
		if !opts.IsFormatSelected(detection.Format) {
			continue
		}

		ok := c.countFile(st, file, result, detection, opts)
		if !ok {
			// Non-critical failures still elevate the aggregate's
			// error kind without necessarily flipping Ok; critical ones
			// flip it inside countFile.
			st.State.Kind = result.State.Kind
			st.State.Message = result.State.Message
		}
		if !ok && (opts.StopOnError || !st.State.Ok) {
			if opts.StopOnError {
				st.State.Ok = false
			}
			break
		}
	}

	if len(st.Files) == 1 {
		st.State = st.Results[0].State
	}
}

func (c *Coordinator) countFile(st *types.Statistics, file *types.SourceFile, result *types.CountResultGroup, detection types.FormatDetection, opts types.StatOptions) bool {
	c.Log.Log("stats", "processing file: %s", file.Path)

	ok := c.ensureContent(file, result)
	format := detection.Format
	source := file.Content

	if ok && opts.IsOperationSelected(types.OptCountLogicalLines) && detection.IsProgrammingLanguage {
		r := parser.CountLogicalLines(c.Grammar, format, source)
		if ok = c.fold(st, result, r.State); ok {
			result.LogicalLines = r.Count
			st.TotalLogicalLines += r.Count
			st.LogicalLines[format] += r.Count
		}
	}
	if ok && opts.IsOperationSelected(types.OptCountPhysicalLines) {
		r := metrics.CountPhysicalLines(source)
		if ok = c.fold(st, result, r.State); ok {
			result.PhysicalLines = r.Count
			st.TotalPhysicalLines += r.Count
			st.PhysicalLines[format] += r.Count
		}
	}
	if ok && opts.IsOperationSelected(types.OptCountWords) {
		r := metrics.CountWords(source)
		if ok = c.fold(st, result, r.State); ok {
			result.Words = r.Count
			st.TotalWords += r.Count
			st.Words[format] += r.Count
		}
	}
	if ok && opts.IsOperationSelected(types.OptCountCharacters) {
		r := metrics.CountCharacters(source)
		if ok = c.fold(st, result, r.State); ok {
			result.Characters = r.Count
			st.TotalCharacters += r.Count
			st.Characters[format] += r.Count
		}
	}
	if ok {
		result.IsProcessed = true
		result.SourceSize = source.Size
		result.State = types.OK()
		st.SizeProcessed++
		st.TotalSourceSize += source.Size
		st.SourceSize[format] += source.Size
	}
	if !opts.KeepFileContent {
		fileio.FreeContent(file)
	}

	c.Log.Log("stats", "done processing file: %s", file.Path)
	return ok
}

// ensureContent loads file's content if needed, mapping any reader-level
// failure (not found, too large, I/O error) to ErrInvalidInput on the
// per-file result.
func (c *Coordinator) ensureContent(file *types.SourceFile, result *types.CountResultGroup) bool {
	_ = fileio.ReadContent(file)
	if file.Status != types.FileOK || !file.IsContentRead {
		result.State = types.Failed(types.ErrInvalidInput, fileStatusMessage(file.Status))
		return false
	}
	return true
}

// fold merges one counter's outcome into the per-file result: a failure
// zeroes every count already recorded for the file (the error state is
// kept) and, for critical kinds, flips the aggregate Ok immediately.
func (c *Coordinator) fold(st *types.Statistics, result *types.CountResultGroup, state types.ResultState) bool {
	if state.Kind == types.ErrNone {
		result.State = types.OK()
		return true
	}
	if state.Kind.Critical() {
		st.State.Ok = false
	}
	kept := state
	result.Reset()
	result.State = kept
	result.State.Ok = false
	return false
}

func fileStatusMessage(status types.FileOpStatus) string {
	switch status {
	case types.FileInvalidPath:
		return "Invalid file path"
	case types.FileNotFound:
		return "File not found"
	case types.FileIOError:
		return "I/O error reading file"
	case types.FileAllocFailure:
		return "Failed to allocate buffer for file content"
	case types.FileTooLarge:
		return "File exceeds the maximum supported size"
	default:
		return "Unknown file error"
	}
}
