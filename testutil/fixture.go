// Package testutil provides shared fixtures and an independent reference
// implementation for exercising the substring engine from multiple test
// packages.
package testutil

import "math/rand"

// Pair is a two-document fixture with the expected comparison outcome.
type Pair struct {
	Name       string
	A, B       string
	WantLength int
	WantText   string
}

// KnownPairs returns document pairs with hand-verified answers, covering
// overlap, containment, identity, disjoint alphabets, and empty inputs.
func KnownPairs() []Pair {
	return []Pair{
		{Name: "partial overlap", A: "abcde", B: "cdefg", WantLength: 3, WantText: "cde"},
		{Name: "periodic overlap", A: "banana", B: "ananas", WantLength: 5, WantText: "anana"},
		{Name: "identical documents", A: "same", B: "same", WantLength: 4, WantText: "same"},
		{Name: "disjoint alphabets", A: "xyz", B: "abc", WantLength: 0, WantText: ""},
		{Name: "empty first document", A: "", B: "hello", WantLength: 0, WantText: ""},
		{Name: "empty second document", A: "hello", B: "", WantLength: 0, WantText: ""},
		{Name: "both empty", A: "", B: "", WantLength: 0, WantText: ""},
		{Name: "single shared rune", A: "x", B: "axb", WantLength: 1, WantText: "x"},
		{Name: "match inside larger text", A: "the quick brown fox", B: "a quick brow", WantLength: 11, WantText: " quick brow"},
	}
}

// LongestCommonLength returns the length of the longest common substring of
// a and b by dynamic programming over rune slices. It is an independent
// reference for maximality checks; it makes no promise about which of
// several maximal substrings it would pick.
func LongestCommonLength(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)

	best := 0
	for i := 0; i < len(ra); i++ {
		for j := 0; j < len(rb); j++ {
			if ra[i] == rb[j] {
				cur[j+1] = prev[j] + 1
				if cur[j+1] > best {
					best = cur[j+1]
				}
			} else {
				cur[j+1] = 0
			}
		}
		prev, cur = cur, prev
	}
	return best
}

// RandomText returns a pseudo-random string of length n drawn from the
// given alphabet. Alphabets are kept small so random pairs actually share
// substrings.
func RandomText(rng *rand.Rand, alphabet string, n int) string {
	letters := []rune(alphabet)
	out := make([]rune, n)
	for i := range out {
		out[i] = letters[rng.Intn(len(letters))]
	}
	return string(out)
}
