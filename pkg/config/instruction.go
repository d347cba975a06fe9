package config

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bastiangx/wordcost/internal/utils"
	"github.com/bastiangx/wordcost/pkg/cost"
)

// instructionLines is the fixed size of an instruction record.
const instructionLines = 3

// Instruction is one query record: the cost vector and the word pair.
//
//	1 3 1 5
//	origin
//	target
type Instruction struct {
	Costs  cost.Model
	Origin string
	Target string
}

// ParseInstruction reads a three line instruction record. Line one holds the four
// whitespace separated costs (insert delete substitute anagram); lines two and
// three hold the origin and target words, trimmed and lower-cased.
// Malformed records wrap cost.ErrConfiguration.
func ParseInstruction(r io.Reader) (Instruction, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Instruction{}, fmt.Errorf("reading instruction: %w", err)
	}
	if len(lines) != instructionLines {
		return Instruction{}, fmt.Errorf("%w: expected %d lines, got %d", cost.ErrConfiguration, instructionLines, len(lines))
	}

	costs, err := cost.ParseLine(lines[0])
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		Costs:  costs,
		Origin: utils.NormalizeWord(lines[1]),
		Target: utils.NormalizeWord(lines[2]),
	}, nil
}

// LoadInstruction reads an instruction record from a file.
func LoadInstruction(path string) (Instruction, error) {
	file, err := os.Open(path)
	if err != nil {
		return Instruction{}, fmt.Errorf("opening instruction %s: %w", path, err)
	}
	defer file.Close()

	inst, err := ParseInstruction(file)
	if err != nil {
		return Instruction{}, fmt.Errorf("%s: %w", path, err)
	}
	return inst, nil
}
