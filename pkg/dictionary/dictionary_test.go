package dictionary

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNormalizesTokens(t *testing.T) {
	src := "  Listen\nSILENT \r\ntinsel\n\nlisten\n"
	idx, err := Load(strings.NewReader(src))
	require.NoError(t, err)

	assert.True(t, idx.Contains("listen"))
	assert.True(t, idx.Contains("silent"))
	assert.True(t, idx.Contains("tinsel"))
	assert.False(t, idx.Contains("Listen"))
	assert.False(t, idx.Contains("enlist"))

	// blank line is kept as the empty word
	assert.True(t, idx.Contains(""))
	assert.Equal(t, 4, idx.Len())
	assert.Equal(t, 6, idx.MaxLength())
	assert.Equal(t, []string{"listen", "silent", "tinsel"}, idx.Words())
}

func TestHasPrefix(t *testing.T) {
	idx := NewIndex([]string{"cold", "cord", "card"})

	testCases := []struct {
		prefix string
		want   bool
	}{
		{"", true},
		{"c", true},
		{"co", true},
		{"car", true},
		{"card", true},
		{"cards", false},
		{"w", false},
		{"cx", false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, idx.HasPrefix(tc.prefix), "prefix %q", tc.prefix)
	}

	assert.False(t, NewIndex(nil).HasPrefix(""))
}

func TestStats(t *testing.T) {
	idx := NewIndex([]string{"stale", "slate", "least", "cats"})
	stats := idx.Stats()
	assert.Equal(t, 4, stats["totalWords"])
	assert.Equal(t, 5, stats["maxLength"])
	assert.Equal(t, 2, stats["buckets"])
}

func TestLoadFileUnreadable(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnreadable)

	_, err = LoadPath(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestLoadPathText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cats\nbats\n"), 0644))

	format, err := DetectFileFormat(path)
	require.NoError(t, err)
	assert.Equal(t, FormatText, format)

	idx, err := LoadPath(path)
	require.NoError(t, err)
	assert.True(t, idx.Contains("cats"))
	assert.True(t, idx.Contains("bats"))
	assert.Equal(t, 2, idx.Len())
}

// writeChunk encodes words in the WordServe chunk layout.
func writeChunk(t *testing.T, dir string, id int, words ...string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, int32(len(words))))
	for i, w := range words {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(len(w))))
		buf.WriteString(w)
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(i+1)))
	}
	path := filepath.Join(dir, fmt.Sprintf("dict_%04d.bin", id))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestLoadChunks(t *testing.T) {
	dir := t.TempDir()
	writeChunk(t, dir, 2, "Silent", "tinsel")
	writeChunk(t, dir, 1, "listen", "enlist", "listen")

	chunks, err := GetAvailableChunks(dir)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, 1, chunks[0].ChunkID)
	assert.Equal(t, 3, chunks[0].WordCount)
	assert.Equal(t, 2, chunks[1].ChunkID)

	format, err := DetectFileFormat(dir)
	require.NoError(t, err)
	assert.Equal(t, FormatChunkDir, format)

	idx, err := LoadPath(dir)
	require.NoError(t, err)
	assert.Equal(t, 4, idx.Len())
	assert.True(t, idx.Contains("silent"))
	assert.Equal(t, []string{"enlist", "listen", "silent", "tinsel"}, idx.Anagrams().BucketFor("listen"))
}

func TestLoadSingleChunk(t *testing.T) {
	path := writeChunk(t, t.TempDir(), 7, "cats", "bats")

	format, err := DetectFileFormat(path)
	require.NoError(t, err)
	assert.Equal(t, FormatChunk, format)

	idx, err := LoadPath(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"bats", "cats"}, idx.Words())
}

func TestTruncatedChunk(t *testing.T) {
	dir := t.TempDir()
	path := writeChunk(t, dir, 1, "cats", "bats")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data[:len(data)-3], 0644))

	_, err = LoadChunks(dir)
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestChunkShorterThanHeader(t *testing.T) {
	path := writeChunk(t, t.TempDir(), 1, "cats", "bats")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// claim one more entry than the file holds
	binary.LittleEndian.PutUint32(data[:4], 3)
	require.NoError(t, os.WriteFile(path, data, 0644))

	_, err = LoadPath(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnreadable)
	assert.Contains(t, err.Error(), "after 2 of 3 entries")
}

func TestEmptyChunkDir(t *testing.T) {
	_, err := DetectFileFormat(t.TempDir())
	assert.ErrorIs(t, err, ErrUnreadable)

	_, err = LoadChunks(t.TempDir())
	assert.ErrorIs(t, err, ErrUnreadable)
}
