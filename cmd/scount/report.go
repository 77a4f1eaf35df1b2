package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/raven-computing/reckon/internal/types"
)

// reportSchema validates the --format json payload before it is
// written.
var reportSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"total", "per_format", "files"},
	Properties: map[string]*jsonschema.Schema{
		"total": {
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"llc": {Type: "integer"},
				"phl": {Type: "integer"},
				"wrd": {Type: "integer"},
				"chr": {Type: "integer"},
				"sze": {Type: "integer"},
			},
		},
		"per_format": {
			Type: "array",
			Items: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"format": {Type: "string"},
					"llc":    {Type: "integer"},
					"phl":    {Type: "integer"},
					"wrd":    {Type: "integer"},
					"chr":    {Type: "integer"},
					"sze":    {Type: "integer"},
				},
			},
		},
		"files": {
			Type: "array",
			Items: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"path":      {Type: "string"},
					"processed": {Type: "boolean"},
					"error":     {Type: "string"},
					"llc":       {Type: "integer"},
					"phl":       {Type: "integer"},
					"wrd":       {Type: "integer"},
					"chr":       {Type: "integer"},
					"sze":       {Type: "integer"},
				},
			},
		},
	},
}

type jsonMetrics struct {
	Format string `json:"format,omitempty"`
	LLC    uint64 `json:"llc"`
	PHL    uint64 `json:"phl"`
	WRD    uint64 `json:"wrd"`
	CHR    uint64 `json:"chr"`
	SZE    uint64 `json:"sze"`
}

type jsonFileResult struct {
	Path      string `json:"path"`
	Processed bool   `json:"processed"`
	Error     string `json:"error,omitempty"`
	LLC       uint64 `json:"llc"`
	PHL       uint64 `json:"phl"`
	WRD       uint64 `json:"wrd"`
	CHR       uint64 `json:"chr"`
	SZE       uint64 `json:"sze"`
}

type jsonReport struct {
	Total     jsonMetrics      `json:"total"`
	PerFormat []jsonMetrics    `json:"per_format"`
	Files     []jsonFileResult `json:"files"`
}

// buildJSONReport converts st into the wire shape reportSchema describes.
func buildJSONReport(st *types.Statistics) jsonReport {
	r := jsonReport{
		Total: jsonMetrics{
			LLC: st.TotalLogicalLines,
			PHL: st.TotalPhysicalLines,
			WRD: st.TotalWords,
			CHR: st.TotalCharacters,
			SZE: st.TotalSourceSize,
		},
	}
	for f := types.TextFormat(0); f < types.NumFormats; f++ {
		r.PerFormat = append(r.PerFormat, jsonMetrics{
			Format: f.String(),
			LLC:    st.LogicalLines[f],
			PHL:    st.PhysicalLines[f],
			WRD:    st.Words[f],
			CHR:    st.Characters[f],
			SZE:    st.SourceSize[f],
		})
	}
	for i, file := range st.Files {
		res := st.Results[i]
		fr := jsonFileResult{
			Path:      file.Path,
			Processed: res.IsProcessed,
			LLC:       res.LogicalLines,
			PHL:       res.PhysicalLines,
			WRD:       res.Words,
			CHR:       res.Characters,
			SZE:       res.SourceSize,
		}
		if !res.State.Ok {
			fr.Error = res.State.Message
		}
		r.Files = append(r.Files, fr)
	}
	return r
}

// WriteJSONReport marshals st as JSON, validating it against reportSchema
// first so a shape regression in buildJSONReport fails loudly instead of
// silently shipping a malformed report.
func WriteJSONReport(w io.Writer, st *types.Statistics) error {
	report := buildJSONReport(st)
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("scount: failed to marshal report: %w", err)
	}

	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("scount: failed to decode report for validation: %w", err)
	}
	resolved, err := reportSchema.Resolve(nil)
	if err != nil {
		return fmt.Errorf("scount: failed to resolve report schema: %w", err)
	}
	if err := resolved.Validate(generic); err != nil {
		return fmt.Errorf("scount: report failed schema validation: %w", err)
	}

	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteTableReport prints a simple fixed-width table: one row per
// processed file (and, when verbose, one row per skipped file naming its
// error kind) plus a totals row. Report layout is a CLI concern, so
// it lives here rather than in the library.
func WriteTableReport(w io.Writer, st *types.Statistics, verbose bool) error {
	fmt.Fprintf(w, "%-40s %10s %10s %10s %10s %10s\n", "FILE", "LLC", "PHL", "WRD", "CHR", "SZE")
	fmt.Fprintln(w, strings.Repeat("-", 96))
	for i, file := range st.Files {
		res := st.Results[i]
		if !res.IsProcessed {
			if verbose {
				fmt.Fprintf(w, "%-40s %s\n", truncate(file.Path, 40), "skipped: "+res.State.Kind.String())
			}
			continue
		}
		fmt.Fprintf(w, "%-40s %10d %10d %10d %10d %10d\n",
			truncate(file.Path, 40), res.LogicalLines, res.PhysicalLines, res.Words, res.Characters, res.SourceSize)
	}
	fmt.Fprintln(w, strings.Repeat("-", 96))
	fmt.Fprintf(w, "%-40s %10d %10d %10d %10d %10d\n",
		"TOTAL", st.TotalLogicalLines, st.TotalPhysicalLines, st.TotalWords, st.TotalCharacters, st.TotalSourceSize)
	return nil
}

// truncate returns s unchanged when it is at most n bytes long, and
// otherwise its first n-1 bytes followed by a "…" ellipsis (which is
// itself three bytes in UTF-8).
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
