package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTSVHeaderDrivenRows(t *testing.T) {
	rows := parseTSV("id\ttext\tanswer\n1\tQ1\tA1\n2\tQ2\tA2\n")

	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0]["id"])
	assert.Equal(t, "Q1", rows[0]["text"])
	assert.Equal(t, "A2", rows[1]["answer"])
}

func TestParseTSVPadsShortRows(t *testing.T) {
	rows := parseTSV("id\ttext\tanswer\n1\tQ1\n")

	require.Len(t, rows, 1)
	assert.Equal(t, "Q1", rows[0]["text"])
	assert.Equal(t, "", rows[0]["answer"])
}

func TestParseTSVSkipsBlankLines(t *testing.T) {
	rows := parseTSV("id\ttext\n\n1\tQ1\n   \n2\tQ2\n\n")

	assert.Len(t, rows, 2)
}

func TestParseTSVHandlesCRLF(t *testing.T) {
	rows := parseTSV("id\ttext\r\n1\tQ1\r\n")

	require.Len(t, rows, 1)
	assert.Equal(t, "Q1", rows[0]["text"])
}

func TestParseTSVEmptyContent(t *testing.T) {
	assert.Nil(t, parseTSV(""))
	assert.Nil(t, parseTSV("\n\n"))
}

func TestParseTSVHeaderOnly(t *testing.T) {
	assert.Empty(t, parseTSV("id\ttext\tanswer\n"))
}

func TestReadTSVMissingFileIsFatal(t *testing.T) {
	_, err := readTSV(filepath.Join(t.TempDir(), "nope.tsv"))

	assert.Error(t, err)
}

func TestReadTSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.tsv")
	require.NoError(t, os.WriteFile(path, []byte("id\ttext\tanswer\n1\tQ\tA\n"), 0o644))

	rows, err := readTSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0]["answer"])
}
