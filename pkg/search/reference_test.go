package search

import (
	"math/rand"
	"testing"

	"github.com/bastiangx/wordcost/pkg/cost"
	"github.com/bastiangx/wordcost/pkg/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomWords draws n words of length 3 to 6 over a two letter alphabet, so
// neighbouring words and anagrams are common and some words are too short to visit.
func randomWords(rng *rand.Rand, n int) []string {
	const letters = "ab"
	words := make([]string, n)
	for i := range words {
		b := make([]byte, 3+rng.Intn(4))
		for j := range b {
			b[j] = letters[rng.Intn(len(letters))]
		}
		words[i] = string(b)
	}
	return words
}

// stepCost prices a single move from u to v, scanning the edit rules
// directly instead of generating successors.
func stepCost(u, v, target string, m cost.Model) (int, bool) {
	best, ok := 0, false
	take := func(c int) {
		if !ok || c < best {
			best, ok = c, true
		}
	}
	switch {
	case len(v) == len(u)+1:
		for i := range v {
			if v[:i]+v[i+1:] == u {
				take(m.Insert)
				break
			}
		}
	case len(v) == len(u)-1:
		for i := range u {
			if u[:i]+u[i+1:] == v {
				take(m.Delete)
				break
			}
		}
	case len(v) == len(u):
		diff := 0
		for i := range u {
			if u[i] != v[i] {
				diff++
			}
		}
		if diff == 1 {
			take(m.Substitute)
		}
	}
	if v == target && u != v && dictionary.IsAnagramOf(u, v) {
		take(m.Anagram)
	}
	return best, ok
}

// exhaustiveCost is a plain quadratic Dijkstra over every dictionary word.
func exhaustiveCost(idx *dictionary.Index, m cost.Model, origin, target string) int {
	if !idx.Contains(origin) || !idx.Contains(target) {
		return Unreachable
	}
	words := idx.Words()
	valid := func(w string) bool {
		return len(w) > DefaultMinLength && len(w) <= idx.MaxLength()
	}

	dist := map[string]int{origin: 0}
	done := make(map[string]bool)
	for {
		cur, found := "", false
		for w, d := range dist {
			if !done[w] && (!found || d < dist[cur] || (d == dist[cur] && w < cur)) {
				cur, found = w, true
			}
		}
		if !found {
			return Unreachable
		}
		if cur == target {
			return dist[cur]
		}
		done[cur] = true
		for _, v := range words {
			if done[v] || !valid(v) {
				continue
			}
			c, ok := stepCost(cur, v, target, m)
			if !ok {
				continue
			}
			if d, seen := dist[v]; !seen || dist[cur]+c < d {
				dist[v] = dist[cur] + c
			}
		}
	}
}

func TestMatchesExhaustiveSearch(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	reachable := 0
	for trial := 0; trial < 200; trial++ {
		words := randomWords(rng, 30)
		idx := dictionary.NewIndex(words)
		m := cost.New(1+rng.Intn(6), 1+rng.Intn(6), 1+rng.Intn(6), 1+rng.Intn(6))
		origin := words[rng.Intn(len(words))]
		target := words[rng.Intn(len(words))]

		want := exhaustiveCost(idx, m, origin, target)
		got := FindMinimumCost(m, idx, origin, target)
		require.Equal(t, want, got, "trial %d: %s -> %s with %s", trial, origin, target, m)
		if want != Unreachable {
			reachable++
		}
	}
	assert.Greater(t, reachable, 20, "too few connected pairs to be meaningful")
}
