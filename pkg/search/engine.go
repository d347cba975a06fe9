/*
Package search finds the cheapest sequence of weighted edits turning one
dictionary word into another.

Four operations are priced by a cost.Model: inserting a letter, deleting a
character, substituting a letter, and an anagram jump. Every intermediate word
must be in the dictionary and longer than the length floor (3 by default).

The engine runs a best-first search ordered by accumulated cost plus the
weighted edit Distance to the target. It keeps a Frontier of pending words,
one entry per word, and an Explored map of the best cost recorded for every
expanded word. Once the target has a recorded cost, candidates more expensive
than it are dropped. The search runs until the frontier is exhausted; the answer
is the target's recorded cost, or Unreachable.

An Engine is read-only after New. Each query gets its own frontier and explored
map, so one Engine can serve concurrent queries.

	engine := search.New(cost.New(1, 1, 1, 10), idx)
	engine.FindMinimumCost("cats", "bats") // 1
*/
package search

import (
	"context"
	"errors"
	"time"

	"github.com/bastiangx/wordcost/pkg/cost"
	"github.com/bastiangx/wordcost/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// Unreachable is returned when origin or target is not a dictionary word, or
// when no valid chain of edits connects them.
const Unreachable = -1

// ErrExpansionLimit is returned when a query exceeds Options.MaxExpansions.
var ErrExpansionLimit = errors.New("search: expansion limit reached")

// letters tried by insert and substitute.
const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Result carries the answer of one query plus counters about the work done.
type Result struct {
	Cost      int
	Expanded  int
	Generated int
	Accepted  int
	Elapsed   time.Duration
}

// Engine answers minimum cost queries for a fixed cost vector and dictionary.
type Engine struct {
	costs   cost.Model
	dict    *dictionary.Index
	options Options
}

// New returns an Engine. dict must not be modified afterwards.
func New(costs cost.Model, dict *dictionary.Index, opts ...Option) *Engine {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{
		costs:   costs,
		dict:    dict,
		options: cfg,
	}
}

// FindMinimumCost is the one-shot form of Engine.FindMinimumCost with default options.
func FindMinimumCost(costs cost.Model, dict *dictionary.Index, origin, target string) int {
	return New(costs, dict).FindMinimumCost(origin, target)
}

// Costs returns the engine's cost vector.
func (e *Engine) Costs() cost.Model {
	return e.costs
}

// FindMinimumCost returns the cheapest total cost from origin to target, or
// Unreachable. With an expansion cap set, a capped query reports the best cost
// found before stopping.
func (e *Engine) FindMinimumCost(origin, target string) int {
	res, err := e.Search(context.Background(), origin, target)
	if err != nil {
		log.Debugf("search %s -> %s stopped early: %v", origin, target, err)
	}
	return res.Cost
}

// Search runs one query. The error is non-nil only when ctx is done or the
// expansion cap is hit; Result.Cost then holds the best target cost recorded so far.
func (e *Engine) Search(ctx context.Context, origin, target string) (Result, error) {
	start := time.Now()
	if !e.dict.Contains(origin) || !e.dict.Contains(target) {
		log.Debugf("search %s -> %s: word not in dictionary", origin, target)
		return Result{Cost: Unreachable, Elapsed: time.Since(start)}, nil
	}

	q := &query{
		engine:   e,
		target:   target,
		frontier: NewFrontier(),
		explored: make(Explored),
	}
	err := q.run(ctx, origin)

	res := Result{
		Cost:      Unreachable,
		Expanded:  q.expanded,
		Generated: q.generated,
		Accepted:  q.accepted,
		Elapsed:   time.Since(start),
	}
	if c, ok := q.explored.Cost(target); ok {
		res.Cost = c
	}
	log.Debugf("search %s -> %s: cost=%d expanded=%d generated=%d accepted=%d took=%v",
		origin, target, res.Cost, res.Expanded, res.Generated, res.Accepted, res.Elapsed)
	return res, err
}

// query holds the mutable state of a single search.
type query struct {
	engine   *Engine
	target   string
	frontier *Frontier
	explored Explored

	expanded  int
	generated int
	accepted  int
}

func (q *query) run(ctx context.Context, origin string) error {
	limit := q.engine.options.MaxExpansions
	q.frontier.Push(Node{
		Word:     origin,
		Cost:     0,
		Priority: Distance(origin, q.target, q.engine.costs),
	})

	for q.frontier.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		if limit > 0 && q.expanded >= limit {
			return ErrExpansionLimit
		}
		n, _ := q.frontier.PopMin()
		q.expanded++
		q.explored.Record(n.Word, n.Cost)
		q.expand(n)
	}
	return nil
}

// expand offers every successor of n by insert, delete, substitute and anagram.
func (q *query) expand(n Node) {
	m := q.engine.costs
	dict := q.engine.dict
	word := n.Word

	if q.lengthOK(len(word) + 1) {
		c := n.Cost + m.Insert
		for i := 0; i <= len(word); i++ {
			head := word[:i]
			for j := 0; j < len(alphabet); j++ {
				prefix := head + alphabet[j:j+1]
				if !dict.HasPrefix(prefix) {
					q.generated++
					continue
				}
				q.offer(prefix+word[i:], c, "")
			}
		}
	}

	if q.lengthOK(len(word) - 1) {
		c := n.Cost + m.Delete
		for i := 0; i < len(word); i++ {
			q.offer(word[:i]+word[i+1:], c, "")
		}
	}

	if q.lengthOK(len(word)) {
		c := n.Cost + m.Substitute
		for i := 0; i < len(word); i++ {
			head := word[:i]
			for j := 0; j < len(alphabet); j++ {
				prefix := head + alphabet[j:j+1]
				if !dict.HasPrefix(prefix) {
					q.generated++
					continue
				}
				q.offer(prefix+word[i+1:], c, "")
			}
		}
	}

	c := n.Cost + m.Anagram
	if dictionary.IsAnagramOf(word, q.target) {
		q.offer(q.target, c, "")
		return
	}
	// The current word is re-offered, scored against each other member of its bucket.
	for _, alt := range dict.Anagrams().BucketFor(word) {
		if alt != word {
			q.offer(word, c, alt)
		}
	}
}

// lengthOK reports whether a word of length l may be admitted.
func (q *query) lengthOK(l int) bool {
	return l > q.engine.options.MinLength && l <= q.engine.dict.MaxLength()
}

// offer validates a candidate and hands it to the frontier. The heuristic is
// taken from scoreWord when set, otherwise from word itself.
func (q *query) offer(word string, c int, scoreWord string) {
	q.generated++
	if !q.lengthOK(len(word)) || !q.engine.dict.Contains(word) {
		return
	}
	if best, ok := q.explored.Cost(q.target); ok && c > best {
		return
	}
	if scoreWord == "" {
		scoreWord = word
	}
	node := Node{
		Word:     word,
		Cost:     c,
		Priority: c + Distance(scoreWord, q.target, q.engine.costs),
	}
	if q.frontier.Upsert(node, q.explored) {
		q.accepted++
	}
}
