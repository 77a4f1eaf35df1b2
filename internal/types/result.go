package types

// Count is a metric counter with uint64 wraparound semantics; overflow
// is defined but not expected under normal inputs.
type Count = uint64

// ResultState describes the outcome of a counting operation. For a single
// count or a per-file result, Ok is true only when the operation
// succeeded. For the aggregate state of a multi-file Statistics, Ok stays
// true unless a critical failure occurred or StopOnError halted the run,
// and Kind/Message may still describe the most recent non-critical
// failure. A failure state carries a non-zero ErrorKind; the zero value
// (Ok false, ErrNone) marks a result that was reset and never processed.
type ResultState struct {
	Ok      bool
	Kind    ErrorKind
	Message string
}

// OK is a convenience constructor for a successful state.
func OK() ResultState {
	return ResultState{Ok: true, Kind: ErrNone}
}

// Failed constructs a failed state of the given kind.
func Failed(kind ErrorKind, message string) ResultState {
	return ResultState{Ok: false, Kind: kind, Message: message}
}

// CountResult is the outcome of one atomic count (physical lines, words,
// characters, or logical lines).
type CountResult struct {
	Count Count
	State ResultState
}

// CountResultGroup holds every metric computed for a single source file,
// plus whether the file was actually processed at all. A file that is
// skipped (unsupported format, deselected by options) has IsProcessed
// false and every count at zero - a processed file can still have every
// count at zero legitimately (an empty file).
type CountResultGroup struct {
	LogicalLines  Count
	PhysicalLines Count
	Words         Count
	Characters    Count
	SourceSize    Count
	State         ResultState
	IsProcessed   bool
}

// Reset restores the group to its pre-processing zero value, preserving
// no prior counts or state.
func (g *CountResultGroup) Reset() {
	g.LogicalLines = 0
	g.PhysicalLines = 0
	g.Words = 0
	g.Characters = 0
	g.SourceSize = 0
	g.State = ResultState{}
	g.IsProcessed = false
}
