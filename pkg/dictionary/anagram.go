package dictionary

import (
	"slices"
	"sort"
)

// AnagramIndex maps a canonical signature (characters sorted ascending) to every
// dictionary word sharing it. Each word lives in exactly one bucket.
type AnagramIndex struct {
	buckets map[string][]string
}

func newAnagramIndex() *AnagramIndex {
	return &AnagramIndex{buckets: make(map[string][]string)}
}

func (a *AnagramIndex) add(signature, word string) {
	a.buckets[signature] = append(a.buckets[signature], word)
}

// freeze sorts every bucket so lookups are deterministic.
func (a *AnagramIndex) freeze() {
	for _, bucket := range a.buckets {
		sort.Strings(bucket)
	}
}

// Signature returns the canonical form of word: its characters sorted ascending.
func Signature(word string) string {
	r := []rune(word)
	slices.Sort(r)
	return string(r)
}

// BucketFor returns the dictionary words sharing word's signature, or nil if the
// signature is unseen. The returned slice must not be modified.
func (a *AnagramIndex) BucketFor(word string) []string {
	return a.buckets[Signature(word)]
}

// Len returns the number of distinct signatures.
func (a *AnagramIndex) Len() int {
	return len(a.buckets)
}

// IsAnagramOf reports whether a and b have identical character multisets.
// Neither needs to be a dictionary word; no index lookup is involved.
func IsAnagramOf(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[rune]int, len(a))
	for _, r := range a {
		counts[r]++
	}
	for _, r := range b {
		if counts[r] == 0 {
			return false
		}
		counts[r]--
	}
	return true
}
