package cli

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphaelgruber/wordrank/internal/corpus"
)

// setupTable puts a frequency table into a fresh working directory and
// keeps ambient logging out of the developer's real paths.
func setupTable(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	t.Setenv("WORDRANK_LOG_FILE", filepath.Join(t.TempDir(), "wordrank.log"))
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if content != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, corpus.DefaultFilename), []byte(content), 0644))
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRun_FiltersAndRanks(t *testing.T) {
	setupTable(t, `[["cat",5],["elephant",9],["dog",5],["a",100]]`)

	out, err := runCommand(t)

	require.NoError(t, err)
	assert.Equal(t, "elephant\n", out)
}

func TestRun_DescendingFrequencyOrder(t *testing.T) {
	setupTable(t, `[["little",2.5],["mountain",1.1],["because",7.9],["with",9.3]]`)

	out, err := runCommand(t)

	require.NoError(t, err)
	assert.Equal(t, "with\nbecause\nlittle\nmountain\n", out)
}

func TestRun_LineCountMatchesFilter(t *testing.T) {
	setupTable(t, `[["the",7],["house",6],["of",6.8],["tree",5],["cat",4],["is",9],["garden",3],["sun",2]]`)

	out, err := runCommand(t)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3, "house, tree and garden are the only words longer than 3")
	for _, line := range lines {
		assert.Greater(t, len([]rune(line)), 3)
	}
}

func TestRun_DuplicateWordsBothPrinted(t *testing.T) {
	setupTable(t, `[["stone",4.2],["stone",1.7]]`)

	out, err := runCommand(t)

	require.NoError(t, err)
	assert.Equal(t, "stone\nstone\n", out)
}

func TestRun_EmptyTable(t *testing.T) {
	setupTable(t, `[]`)

	out, err := runCommand(t)

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRun_Idempotent(t *testing.T) {
	setupTable(t, `[["winter",3.3],["summer",3.3],["rain",1.0],["sun",5.5]]`)

	first, err := runCommand(t)
	require.NoError(t, err)
	second, err := runCommand(t)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_MalformedTable(t *testing.T) {
	setupTable(t, `not json`)

	out, err := runCommand(t)

	require.Error(t, err)
	assert.Empty(t, out, "no output may be produced on a parse failure")
	var perr *corpus.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestRun_MissingTable(t *testing.T) {
	setupTable(t, "")

	out, err := runCommand(t)

	require.Error(t, err)
	assert.Empty(t, out)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestStats(t *testing.T) {
	setupTable(t, `[["cat",5],["elephant",9],["dog",5],["a",100]]`)

	out, err := runCommand(t, "stats")

	require.NoError(t, err)
	assert.Contains(t, out, corpus.DefaultFilename)
	assert.Contains(t, out, "4", "entry count")
	assert.Contains(t, out, "elephant")
	assert.Contains(t, out, "100.000")
}

func TestStats_TopFlag(t *testing.T) {
	setupTable(t, `[["alpha",9],["beta",8],["gamma",7]]`)

	out, err := runCommand(t, "stats", "--top", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "alpha")
	assert.NotContains(t, out, "gamma")
}

func TestStats_MissingTable(t *testing.T) {
	setupTable(t, "")

	_, err := runCommand(t, "stats")

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRun_RejectsArguments(t *testing.T) {
	setupTable(t, `[]`)

	_, err := runCommand(t, "unexpected")

	require.Error(t, err)
	var perr *corpus.ParseError
	assert.False(t, errors.As(err, &perr), "argument errors are not parse errors")
}
