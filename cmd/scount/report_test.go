package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raven-computing/reckon/internal/debug"
	"github.com/raven-computing/reckon/internal/parser"
	"github.com/raven-computing/reckon/internal/stats"
	"github.com/raven-computing/reckon/internal/types"
)

func statsForFixture(t *testing.T) *types.Statistics {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "a.c")
	require.NoError(t, os.WriteFile(path, []byte("int main() { return 0; }\n"), 0644))

	grammar, err := parser.NewGrammarService()
	require.NoError(t, err)

	st := types.NewStatistics([]*types.SourceFile{types.NewSourceFile(path)})
	stats.New(grammar, debug.Disabled()).Count(st, types.StatOptions{})
	return st
}

func TestWriteJSONReportValidatesAndRoundTrips(t *testing.T) {
	st := statsForFixture(t)

	var buf bytes.Buffer
	require.NoError(t, WriteJSONReport(&buf, st))

	var decoded jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, st.TotalLogicalLines, decoded.Total.LLC)
	assert.Len(t, decoded.Files, 1)
	assert.True(t, decoded.Files[0].Processed)
}

func TestWriteTableReportContainsTotalsRow(t *testing.T) {
	st := statsForFixture(t)

	var buf bytes.Buffer
	require.NoError(t, WriteTableReport(&buf, st, false))
	assert.Contains(t, buf.String(), "TOTAL")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc…", truncate("abcdefgh", 4))
}
