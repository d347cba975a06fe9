package dictionary

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrUnreadable is wrapped by every failure to open, read or decode a dictionary source.
var ErrUnreadable = errors.New("dictionary source unreadable")

// maxLineSize bounds a single line of a text word list.
const maxLineSize = 1 << 20

// ChunkInfo contains metadata about a chunk file
type ChunkInfo struct {
	ChunkID   int
	Filename  string
	WordCount int
}

// Load reads a newline-delimited word list. Every line is trimmed and
// lower-cased; blank lines become the empty string.
func Load(r io.Reader) (*Index, error) {
	b := newBuilder()
	if err := readText(r, b); err != nil {
		return nil, err
	}
	return b.build(), nil
}

// LoadFile reads a plain text word list from disk.
func LoadFile(path string) (*Index, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer file.Close()

	idx, err := Load(file)
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded %d words from %s (max length %d)", idx.Len(), path, idx.MaxLength())
	return idx, nil
}

// LoadPath detects the source format of path and loads it.
func LoadPath(path string) (*Index, error) {
	format, err := DetectFileFormat(path)
	if err != nil {
		return nil, err
	}
	log.Debugf("Dictionary %s detected as %s", path, format)

	switch format {
	case FormatText:
		return LoadFile(path)
	case FormatChunk:
		b := newBuilder()
		if _, err := readChunk(path, b); err != nil {
			return nil, err
		}
		return b.build(), nil
	case FormatChunkDir:
		return LoadChunks(path)
	}
	return nil, fmt.Errorf("%w: unsupported format for %s", ErrUnreadable, path)
}

// LoadChunks reads every dict_NNNN.bin chunk in dirPath, in chunk ID order.
func LoadChunks(dirPath string) (*Index, error) {
	chunks, err := GetAvailableChunks(dirPath)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: no chunk files found in %s", ErrUnreadable, dirPath)
	}

	b := newBuilder()
	for _, chunk := range chunks {
		count, err := readChunk(chunk.Filename, b)
		if err != nil {
			return nil, err
		}
		log.Debugf("Chunk %d loaded: %d words", chunk.ChunkID, count)
	}
	idx := b.build()
	log.Debugf("Loaded %d words from %d chunks", idx.Len(), len(chunks))
	return idx, nil
}

// GetAvailableChunks scans dirPath for chunk files sorted by ID.
func GetAvailableChunks(dirPath string) ([]ChunkInfo, error) {
	files, err := filepath.Glob(filepath.Join(dirPath, chunkPattern))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to scan for chunk files: %v", ErrUnreadable, err)
	}

	var chunks []ChunkInfo
	for _, file := range files {
		// dict_0001.bin -> 1
		idStr := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(file), "dict_"), ".bin")
		chunkID, err := strconv.Atoi(idStr)
		if err != nil {
			log.Warnf("Skipping chunk with malformed name: %s", file)
			continue
		}
		wordCount, err := getChunkWordCount(file)
		if err != nil {
			log.Warnf("Failed to get word count for chunk %s: %v", file, err)
			wordCount = 0
		}
		chunks = append(chunks, ChunkInfo{
			ChunkID:   chunkID,
			Filename:  file,
			WordCount: wordCount,
		})
	}

	sort.Slice(chunks, func(i, j int) bool {
		return chunks[i].ChunkID < chunks[j].ChunkID
	})
	return chunks, nil
}

func readText(r io.Reader, b *builder) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		b.add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return nil
}

// getChunkWordCount reads the word count from a chunk file's header
func getChunkWordCount(filename string) (int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	var wordCount int32
	if err := binary.Read(file, binary.LittleEndian, &wordCount); err != nil {
		return 0, err
	}
	return int(wordCount), nil
}

// readChunk streams one chunk file into b. Layout: int32 entry count, then per
// entry a uint16 length, the word bytes and a uint16 rank. Ranks are not used.
func readChunk(filename string, b *builder) (int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to open chunk file %s: %v", ErrUnreadable, filename, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)

	var totalEntries int32
	if err := binary.Read(reader, binary.LittleEndian, &totalEntries); err != nil {
		return 0, fmt.Errorf("%w: failed to read chunk header: %v", ErrUnreadable, err)
	}

	count := 0
	for count < int(totalEntries) {
		var wordLen uint16
		if err := binary.Read(reader, binary.LittleEndian, &wordLen); err != nil {
			if errors.Is(err, io.EOF) {
				return count, fmt.Errorf("%w: chunk %s ends after %d of %d entries", ErrUnreadable, filename, count, totalEntries)
			}
			return count, fmt.Errorf("%w: failed to read word length: %v", ErrUnreadable, err)
		}

		wordBytes := make([]byte, wordLen)
		if _, err := io.ReadFull(reader, wordBytes); err != nil {
			return count, fmt.Errorf("%w: failed to read word: %v", ErrUnreadable, err)
		}

		var rank uint16
		if err := binary.Read(reader, binary.LittleEndian, &rank); err != nil {
			return count, fmt.Errorf("%w: failed to read rank: %v", ErrUnreadable, err)
		}

		b.add(string(wordBytes))
		count++
	}
	return count, nil
}
