// Command reckon-mcp exposes the metric engine as a single MCP tool,
// count_source_metrics, over stdio.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/raven-computing/reckon/internal/debug"
	"github.com/raven-computing/reckon/internal/fileio"
	"github.com/raven-computing/reckon/internal/parser"
	"github.com/raven-computing/reckon/internal/stats"
	"github.com/raven-computing/reckon/internal/types"
	"github.com/raven-computing/reckon/internal/version"
)

type countMetricsParams struct {
	Path        string   `json:"path"`
	Exclude     []string `json:"exclude,omitempty"`
	StopOnError bool     `json:"stop_on_error,omitempty"`
}

func main() {
	grammar, err := parser.NewGrammarService()
	if err != nil {
		log.Fatalf("reckon-mcp: failed to initialize grammar service: %v", err)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "reckon-mcp",
		Version: version.Version,
	}, nil)

	server.AddTool(&mcp.Tool{
		Name:        "count_source_metrics",
		Description: "Count logical lines, physical lines, words, characters and byte size of source files under a path",
		InputSchema: &jsonschema.Schema{
			Type:     "object",
			Required: []string{"path"},
			Properties: map[string]*jsonschema.Schema{
				"path": {
					Type:        "string",
					Description: "File or directory to count",
				},
				"exclude": {
					Type:        "array",
					Items:       &jsonschema.Schema{Type: "string"},
					Description: "Glob patterns (relative to path) to skip",
				},
				"stop_on_error": {
					Type:        "boolean",
					Description: "Stop counting at the first non-critical error instead of continuing past it",
				},
			},
		},
	}, handleCountSourceMetrics(grammar))

	ctx := context.Background()
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("reckon-mcp: server error: %v", err)
	}
}

func handleCountSourceMetrics(grammar *parser.GrammarService) func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var params countMetricsParams
		if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
			return errorResult(fmt.Errorf("invalid parameters: %w", err)), nil
		}
		if params.Path == "" {
			return errorResult(fmt.Errorf("path is required")), nil
		}
		if msg := fileio.ValidateStatsInput(params.Path); msg != "" {
			return errorResult(fmt.Errorf("%s", msg)), nil
		}

		var files []*types.SourceFile
		if fileio.IsDirectory(params.Path) {
			walker := &fileio.Walker{Exclude: params.Exclude}
			var err error
			files, err = walker.Walk(params.Path)
			if err != nil {
				return errorResult(err), nil
			}
		} else {
			files = []*types.SourceFile{types.NewSourceFile(params.Path)}
		}

		var supported []*types.SourceFile
		for _, f := range files {
			if fileio.DetectFormat(f).IsSupportedFormat {
				supported = append(supported, f)
			}
		}
		if len(supported) == 0 {
			return errorResult(fmt.Errorf("no eligible file found under %s", params.Path)), nil
		}

		st := types.NewStatistics(supported)
		coordinator := stats.New(grammar, debug.Disabled())
		coordinator.Count(st, types.StatOptions{StopOnError: params.StopOnError})

		return jsonResult(summarize(st))
	}
}

func summarize(st *types.Statistics) map[string]interface{} {
	files := make([]map[string]interface{}, 0, len(st.Files))
	for i, f := range st.Files {
		res := st.Results[i]
		entry := map[string]interface{}{
			"path":      f.Path,
			"processed": res.IsProcessed,
			"llc":       res.LogicalLines,
			"phl":       res.PhysicalLines,
			"wrd":       res.Words,
			"chr":       res.Characters,
			"sze":       res.SourceSize,
		}
		if !res.State.Ok {
			entry["error"] = res.State.Message
		}
		files = append(files, entry)
	}
	return map[string]interface{}{
		"success": st.State.Ok,
		"total": map[string]interface{}{
			"llc": st.TotalLogicalLines,
			"phl": st.TotalPhysicalLines,
			"wrd": st.TotalWords,
			"chr": st.TotalCharacters,
			"sze": st.TotalSourceSize,
		},
		"files": files,
	}
}

func jsonResult(data interface{}) (*mcp.CallToolResult, error) {
	content, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response data: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(content)},
		},
	}, nil
}

func errorResult(err error) *mcp.CallToolResult {
	content, marshalErr := json.Marshal(map[string]interface{}{
		"success": false,
		"error":   err.Error(),
	})
	if marshalErr != nil {
		content = []byte(`{"success":false}`)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(content)},
		},
		IsError: true,
	}
}
