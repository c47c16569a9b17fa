package suffix

import "sort"

// Enumerate returns one view per start offset in buf, so views[i] covers
// buf[i:]. The result has exactly len(buf) entries in offset order.
func Enumerate(buf []rune) []View {
	views := make([]View, len(buf))
	for i := range buf {
		views[i] = View{Start: i, Len: len(buf) - i}
	}
	return views
}

// BuildArray enumerates every suffix of buf and sorts the views under
// Compare. Every suffix of a single buffer has a distinct length, so no
// two views ever compare equal and the resulting order is deterministic.
func BuildArray(buf []rune) []View {
	views := Enumerate(buf)
	sort.Slice(views, func(i, j int) bool {
		return Compare(buf, views[i], views[j]) < 0
	})
	return views
}
