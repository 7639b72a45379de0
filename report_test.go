package dronelbl

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.json")
	result := DatasetResult{
		RunID: "run-1",
		Root:  "/data",
		Splits: []SplitResult{{
			Split:    "train",
			Files:    3,
			Statuses: map[FileStatus]int{StatusWritten: 2, StatusSkippedMissingImage: 1},
			Written:  5,
			Dropped:  DropCounts{Ignored: 4},
		}},
	}
	require.NoError(t, WriteReport(path, result))

	text := readTestFile(t, path)
	assert.Contains(t, text, `"run_id": "run-1"`)
	assert.Contains(t, text, `"written": 2`)
	assert.Contains(t, text, `"missing-image": 1`)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text), &decoded))
	assert.Equal(t, "/data", decoded["root"])
}
