package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/wordcost/pkg/config"
	"github.com/bastiangx/wordcost/pkg/cost"
	"github.com/bastiangx/wordcost/pkg/dictionary"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.FatalLevel)
}

func writeInstruction(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestInputHandlerAnswersInstructions(t *testing.T) {
	dir := t.TempDir()
	first := writeInstruction(t, dir, "a.txt", "1 1 1 10\ncats\nbats\n")
	second := writeInstruction(t, dir, "b.txt", "5 5 5 1\nlisten\nsilent\n")

	dict := dictionary.NewIndex([]string{"cats", "bats", "listen", "silent"})
	in := strings.NewReader(first + "\n\n" + second + "\nexit\n" + first + "\n")
	var out bytes.Buffer

	require.NoError(t, NewInputHandlerWithIO(dict, nil, in, &out).Start())

	got := out.String()
	assert.Contains(t, got, "cost from cats to bats is 1")
	assert.Contains(t, got, "cost from listen to silent is 1")
	assert.Equal(t, 2, strings.Count(got, "cost from"), "input after exit is ignored")
}

// replyLines returns the handler's output lines with prompts removed.
func replyLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimLeft(line, "> ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestInputHandlerReportsBadFiles(t *testing.T) {
	dir := t.TempDir()
	bad := writeInstruction(t, dir, "bad.txt", "1 1 x 1\ncats\nbats\n")

	dict := dictionary.NewIndex([]string{"cats", "bats"})
	in := strings.NewReader(bad + "\n" + filepath.Join(dir, "missing.txt"))
	var out bytes.Buffer

	require.NoError(t, NewInputHandlerWithIO(dict, nil, in, &out).Start())

	errorLines := 0
	for _, line := range replyLines(out.String()) {
		if strings.HasPrefix(line, "error: ") {
			errorLines++
		}
		assert.NotContains(t, line, "cost from")
	}
	assert.Equal(t, 2, errorLines)
}

func TestAnswerErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeInstruction(t, dir, "bad.txt", "1 1 x 1\ncats\nbats\n")
	short := writeInstruction(t, dir, "short.txt", "1 1 1 1\ncats\n")

	h := NewInputHandlerWithIO(dictionary.NewIndex([]string{"cats", "bats"}), nil, nil, &bytes.Buffer{})

	_, err := h.answer(bad)
	assert.ErrorIs(t, err, cost.ErrConfiguration)
	_, err = h.answer(short)
	assert.ErrorIs(t, err, cost.ErrConfiguration)
	_, err = h.answer(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, cost.ErrConfiguration)

	line, err := h.answer(writeInstruction(t, dir, "ok.txt", "1 1 1 10\ncats\nbats\n"))
	require.NoError(t, err)
	assert.Equal(t, "cost from cats to bats is 1", line)
}

func TestFormatResult(t *testing.T) {
	inst := config.Instruction{Costs: cost.New(1, 1, 1, 1), Origin: "acts", Target: "bats"}
	assert.Equal(t, "cost from acts to bats is -1", FormatResult(inst, -1))
}
