/*
Package dictionary holds the set of valid words the search may visit.

The word set is a patricia trie keyed by the normalized word; each entry stores
the word's anagram signature. Besides membership the trie answers prefix queries,
which lets successor generation skip letters that cannot lead to a dictionary word.

An Index is built once and is read-only afterwards, so a single Index can be shared
by any number of queries, sequential or concurrent.

	idx, err := dictionary.LoadPath("words.txt")
	if err != nil {
		log.Fatal(err)
	}
	idx.Contains("listen")            // true
	idx.Anagrams().BucketFor("silent") // [enlist listen silent tinsel]
*/
package dictionary

import (
	"sort"

	"github.com/bastiangx/wordcost/internal/utils"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Index is the immutable dictionary: word set, longest word length and anagram index.
type Index struct {
	trie      *patricia.Trie
	size      int
	maxLength int
	// the trie cannot hold an empty key; blank source lines are tracked here
	hasEmpty bool
	anagrams *AnagramIndex
}

// builder accumulates words before the anagram index is frozen.
type builder struct {
	idx *Index
}

func newBuilder() *builder {
	return &builder{idx: &Index{trie: patricia.NewTrie()}}
}

// add normalizes and inserts a single token. Duplicates are ignored.
func (b *builder) add(token string) {
	word := utils.NormalizeWord(token)
	if len(word) > b.idx.maxLength {
		b.idx.maxLength = len(word)
	}
	if word == "" {
		if !b.idx.hasEmpty {
			b.idx.hasEmpty = true
			b.idx.size++
		}
		return
	}
	if b.idx.trie.Insert(patricia.Prefix(word), Signature(word)) {
		b.idx.size++
	}
}

// build freezes the word set and derives the anagram index from it.
func (b *builder) build() *Index {
	idx := b.idx
	idx.anagrams = newAnagramIndex()
	if idx.hasEmpty {
		idx.anagrams.add("", "")
	}
	_ = idx.trie.Visit(func(p patricia.Prefix, item patricia.Item) error {
		idx.anagrams.add(item.(string), string(p))
		return nil
	})
	idx.anagrams.freeze()
	b.idx = nil
	return idx
}

// NewIndex builds an Index from in-memory tokens, normalizing each the same way
// the loaders do.
func NewIndex(words []string) *Index {
	b := newBuilder()
	for _, w := range words {
		b.add(w)
	}
	return b.build()
}

// Contains reports whether word is in the dictionary.
func (d *Index) Contains(word string) bool {
	if word == "" {
		return d.hasEmpty
	}
	return d.trie.Match(patricia.Prefix(word))
}

// HasPrefix reports whether any dictionary word starts with prefix.
func (d *Index) HasPrefix(prefix string) bool {
	if prefix == "" {
		return d.size > 0
	}
	return d.trie.MatchSubtree(patricia.Prefix(prefix))
}

// MaxLength returns the length of the longest word.
func (d *Index) MaxLength() int {
	return d.maxLength
}

// Len returns the number of unique words, the empty string included if present.
func (d *Index) Len() int {
	return d.size
}

// Anagrams returns the anagram index built from this dictionary.
func (d *Index) Anagrams() *AnagramIndex {
	return d.anagrams
}

// Words returns every non-empty word in lexicographic order.
func (d *Index) Words() []string {
	words := make([]string, 0, d.size)
	_ = d.trie.Visit(func(p patricia.Prefix, _ patricia.Item) error {
		words = append(words, string(p))
		return nil
	})
	sort.Strings(words)
	return words
}

// Stats returns basic counters about the loaded dictionary.
func (d *Index) Stats() map[string]int {
	return map[string]int{
		"totalWords": d.size,
		"maxLength":  d.maxLength,
		"buckets":    d.anagrams.Len(),
	}
}
