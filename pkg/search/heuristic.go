package search

import "github.com/bastiangx/wordcost/pkg/cost"

// Distance is the weighted edit distance from s to t under m.
// Deleting a character of s costs m.Delete, inserting a character of t costs
// m.Insert and replacing a mismatched character costs m.Substitute.
// The anagram jump is not modelled, so with a cheap anagram cost the value can
// exceed the true cheapest transformation. It is not symmetric when insert and
// delete costs differ.
func Distance(s, t string, m cost.Model) int {
	n, k := len(s), len(t)
	if n == 0 {
		return k * m.Insert
	}
	if k == 0 {
		return n * m.Delete
	}

	// two rows of the (n+1)x(k+1) table
	prev := make([]int, k+1)
	curr := make([]int, k+1)
	for j := 0; j <= k; j++ {
		prev[j] = j * m.Insert
	}

	for i := 1; i <= n; i++ {
		curr[0] = i * m.Delete
		si := s[i-1]
		for j := 1; j <= k; j++ {
			sub := prev[j-1]
			if si != t[j-1] {
				sub += m.Substitute
			}
			curr[j] = min(prev[j]+m.Delete, curr[j-1]+m.Insert, sub)
		}
		prev, curr = curr, prev
	}
	return prev[k]
}
