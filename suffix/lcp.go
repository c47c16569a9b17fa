package suffix

// LCP computes adjacent longest-common-prefix lengths over a sorted suffix
// array built from a combined "A + sentinel + B" buffer. The length of the
// second document is bound at construction time and drives the
// cross-document filter: pairs that originate entirely inside one document
// are recorded as zero without comparing any characters.
type LCP struct {
	buf  []rune
	lenB int
}

// NewLCP returns an LCP computer for buf, where lenB is the rune length of
// the second document in the combined buffer.
func NewLCP(buf []rune, lenB int) *LCP {
	return &LCP{buf: buf, lenB: lenB}
}

// fromB reports whether the view's suffix starts inside the second
// document. Suffix length decreases as the start offset grows, so any
// suffix no longer than the second document must begin past the sentinel.
func (l *LCP) fromB(v View) bool {
	return v.Len <= l.lenB
}

// fromA reports whether the view's suffix starts inside the first document,
// i.e. it is long enough to span the sentinel and all of the second
// document.
func (l *LCP) fromA(v View) bool {
	return v.Len > l.lenB+1
}

// CrossDocument reports whether the pair may witness a substring shared by
// both documents: it must not be the case that both suffixes come from the
// first document, nor that both come from the second.
func (l *LCP) CrossDocument(a, b View) bool {
	if l.fromA(a) && l.fromA(b) {
		return false
	}
	if l.fromB(a) && l.fromB(b) {
		return false
	}
	return true
}

// Compute returns the filtered LCP array for the sorted views: out[i] is
// the shared-prefix length of sorted[i-1] and sorted[i] when the pair is a
// cross-document candidate, and zero otherwise. out[0] is always zero.
func (l *LCP) Compute(sorted []View) []int {
	out := make([]int, len(sorted))
	for i := 1; i < len(sorted); i++ {
		if !l.CrossDocument(sorted[i-1], sorted[i]) {
			continue
		}
		out[i] = l.commonPrefix(sorted[i-1], sorted[i])
	}
	return out
}

// commonPrefix compares runes at increasing offsets until a mismatch or
// either view is exhausted.
func (l *LCP) commonPrefix(a, b View) int {
	k := 0
	for k < a.Len && k < b.Len && l.buf[a.Start+k] == l.buf[b.Start+k] {
		k++
	}
	return k
}
