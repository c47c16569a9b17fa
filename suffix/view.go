// Package suffix provides the index structures behind the longest common
// substring engine: zero-copy suffix views over a shared rune buffer, a
// content-only comparator, sorted suffix array construction, and adjacent
// longest-common-prefix computation restricted to cross-document pairs.
package suffix

// View is a window over a shared rune buffer, identified by its start
// offset and length. Views never own character data; a View must not
// outlive the buffer it indexes into.
type View struct {
	Start int
	Len   int
}

// Runes returns the characters the view covers.
func (v View) Runes(buf []rune) []rune {
	return buf[v.Start : v.Start+v.Len]
}

// Compare orders two views over the same buffer by their character content.
// It returns a negative value if a sorts before b, a positive value if b
// sorts before a, and zero if their content is identical. If one view's
// content is an exact prefix of the other's, the shorter view sorts first;
// otherwise the first differing rune decides. Start offsets play no role.
func Compare(buf []rune, a, b View) int {
	n := a.Len
	if b.Len < n {
		n = b.Len
	}
	for i := 0; i < n; i++ {
		ca, cb := buf[a.Start+i], buf[b.Start+i]
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case a.Len < b.Len:
		return -1
	case a.Len > b.Len:
		return 1
	default:
		return 0
	}
}
