// Package cost holds the weighted edit cost vector used by the search engine.
package cost

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Count is the number of operations a cost vector prices.
const Count = 4

// ErrConfiguration is wrapped by every error caused by a malformed cost vector
// or instruction record.
var ErrConfiguration = errors.New("configuration error")

// Model is an immutable cost vector: insert, delete, substitute and anagram jump.
type Model struct {
	Insert     int `toml:"insert"`
	Delete     int `toml:"delete"`
	Substitute int `toml:"substitute"`
	Anagram    int `toml:"anagram"`
}

// New returns a Model from the four operation costs in order.
func New(insert, del, substitute, anagram int) Model {
	return Model{
		Insert:     insert,
		Delete:     del,
		Substitute: substitute,
		Anagram:    anagram,
	}
}

// FromInts builds a Model from exactly four costs ordered
// insert, delete, substitute, anagram.
func FromInts(costs []int) (Model, error) {
	if len(costs) != Count {
		return Model{}, fmt.Errorf("%w: expected %d costs, got %d", ErrConfiguration, Count, len(costs))
	}
	return New(costs[0], costs[1], costs[2], costs[3]), nil
}

// Parse builds a Model from four integer tokens.
// Zero and identical costs are legal; no range validation is applied.
func Parse(tokens []string) (Model, error) {
	if len(tokens) != Count {
		return Model{}, fmt.Errorf("%w: expected %d costs, got %d", ErrConfiguration, Count, len(tokens))
	}
	costs := make([]int, Count)
	for i, tok := range tokens {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return Model{}, fmt.Errorf("%w: cost %d (%q) is not an integer", ErrConfiguration, i+1, tok)
		}
		costs[i] = v
	}
	return FromInts(costs)
}

// ParseLine splits a whitespace separated line and parses it with Parse.
func ParseLine(line string) (Model, error) {
	return Parse(strings.Fields(line))
}

// Ints returns the costs in insert, delete, substitute, anagram order.
func (m Model) Ints() []int {
	return []int{m.Insert, m.Delete, m.Substitute, m.Anagram}
}

func (m Model) String() string {
	return fmt.Sprintf("insert=%d delete=%d substitute=%d anagram=%d",
		m.Insert, m.Delete, m.Substitute, m.Anagram)
}
