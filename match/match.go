// Package match finds the longest contiguous run of characters shared by
// two texts. It concatenates the documents around a sentinel rune, sorts
// every suffix of the combined buffer, computes adjacent shared-prefix
// lengths for cross-document pairs, and reconstructs the substring behind
// the first maximal entry.
package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amizrahi/overlap/suffix"
)

// Sentinel separates the two documents inside the combined buffer. It is
// U+02E6 (modifier letter extra-high tone bar), chosen because it does not
// occur in ordinary text. Neither input may contain it.
const Sentinel = '˦'

// ErrDelimiterCollision reports that an input document contains the
// Sentinel rune, which would silently corrupt the document-origin
// classification of suffixes.
var ErrDelimiterCollision = errors.New("document contains the sentinel rune")

// Result is the outcome of a comparison. The zero value means no common
// substring of length >= 1 exists.
type Result struct {
	Length int    `json:"length" yaml:"length"`
	Text   string `json:"text" yaml:"text"`
}

// Combine concatenates a, the sentinel, and b into a single rune buffer and
// returns it together with the rune length of b. The buffer always holds
// exactly len(a) + 1 + len(b) runes.
func Combine(a, b string) ([]rune, int) {
	ra, rb := []rune(a), []rune(b)
	buf := make([]rune, 0, len(ra)+1+len(rb))
	buf = append(buf, ra...)
	buf = append(buf, Sentinel)
	buf = append(buf, rb...)
	return buf, len(rb)
}

// Find returns the longest common substring of a and b. Either document may
// be empty; an empty side simply contributes no match and the result is the
// zero Result. Find fails with ErrDelimiterCollision if either document
// contains the Sentinel rune.
func Find(a, b string) (Result, error) {
	if strings.ContainsRune(a, Sentinel) {
		return Result{}, fmt.Errorf("first document: %w", ErrDelimiterCollision)
	}
	if strings.ContainsRune(b, Sentinel) {
		return Result{}, fmt.Errorf("second document: %w", ErrDelimiterCollision)
	}

	buf, lenB := Combine(a, b)
	sorted := suffix.BuildArray(buf)
	lcp := suffix.NewLCP(buf, lenB).Compute(sorted)

	// First index attaining the maximum wins; later ties do not replace it.
	best := 0
	for i := 1; i < len(lcp); i++ {
		if lcp[i] > lcp[best] {
			best = i
		}
	}
	if lcp[best] == 0 {
		return Result{}, nil
	}

	v := sorted[best]
	return Result{
		Length: lcp[best],
		Text:   string(buf[v.Start : v.Start+lcp[best]]),
	}, nil
}
