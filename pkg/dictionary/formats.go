package dictionary

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat represents different dictionary source formats
type FileFormat int

const (
	FormatUnknown  FileFormat = iota
	FormatText                // One word per line
	FormatChunk               // Single WordServe dict_NNNN.bin chunk
	FormatChunkDir            // Directory of chunk files
)

// chunkPattern matches WordServe chunk files inside a directory.
const chunkPattern = "dict_*.bin"

// maxChunkEntries is a sanity bound on a chunk header's entry count.
const maxChunkEntries = 1000000

func (f FileFormat) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatChunk:
		return "chunk"
	case FormatChunkDir:
		return "chunk-dir"
	default:
		return "unknown"
	}
}

// DetectFileFormat decides how a dictionary path should be read.
// Directories must contain at least one chunk file; any regular file that is not
// named like a chunk is read as plain text.
func DetectFileFormat(path string) (FileFormat, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	if info.IsDir() {
		matches, err := filepath.Glob(filepath.Join(path, chunkPattern))
		if err != nil || len(matches) == 0 {
			return FormatUnknown, fmt.Errorf("%w: no %s files in %s", ErrUnreadable, chunkPattern, path)
		}
		return FormatChunkDir, nil
	}

	basename := strings.ToLower(filepath.Base(path))
	if strings.HasPrefix(basename, "dict_") && filepath.Ext(basename) == ".bin" {
		if err := validateChunkHeader(path); err != nil {
			return FormatUnknown, err
		}
		return FormatChunk, nil
	}
	return FormatText, nil
}

// validateChunkHeader checks that the entry count header is readable and sane.
func validateChunkHeader(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer file.Close()

	var wordCount int32
	if err := binary.Read(file, binary.LittleEndian, &wordCount); err != nil {
		return fmt.Errorf("%w: failed to read header from %s: %v", ErrUnreadable, filename, err)
	}
	if wordCount < 0 {
		return fmt.Errorf("%w: invalid word count in %s: %d (negative)", ErrUnreadable, filename, wordCount)
	}
	if wordCount > maxChunkEntries {
		return fmt.Errorf("%w: suspicious word count in %s: %d (too large)", ErrUnreadable, filename, wordCount)
	}

	log.Debugf("Chunk file %s validated: %d words", filename, wordCount)
	return nil
}
