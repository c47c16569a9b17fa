package suffix

import (
	"sort"
	"testing"
)

func TestEnumerate(t *testing.T) {
	buf := []rune("abc")
	views := Enumerate(buf)

	if len(views) != 3 {
		t.Fatalf("Expected 3 views, got %d", len(views))
	}
	for i, v := range views {
		if v.Start != i {
			t.Errorf("views[%d].Start = %d, want %d", i, v.Start, i)
		}
		if v.Len != len(buf)-i {
			t.Errorf("views[%d].Len = %d, want %d", i, v.Len, len(buf)-i)
		}
	}
}

func TestEnumerateEmpty(t *testing.T) {
	if views := Enumerate(nil); len(views) != 0 {
		t.Errorf("Expected no views for empty buffer, got %d", len(views))
	}
}

func TestBuildArray(t *testing.T) {
	buf := []rune("banana")
	got := BuildArray(buf)

	// a, ana, anana, banana, na, nana
	wantStarts := []int{5, 3, 1, 0, 4, 2}
	if len(got) != len(wantStarts) {
		t.Fatalf("Expected %d views, got %d", len(wantStarts), len(got))
	}
	for i, want := range wantStarts {
		if got[i].Start != want {
			t.Errorf("sorted[%d].Start = %d, want %d (%q)", i, got[i].Start, want, string(got[i].Runes(buf)))
		}
		if got[i].Len != len(buf)-got[i].Start {
			t.Errorf("sorted[%d] has inconsistent length %d for start %d", i, got[i].Len, got[i].Start)
		}
	}
}

func TestBuildArrayMatchesStringSort(t *testing.T) {
	buf := []rune("mississippi")

	suffixes := make([]string, len(buf))
	for i := range buf {
		suffixes[i] = string(buf[i:])
	}
	sort.Strings(suffixes)

	got := BuildArray(buf)
	for i, v := range got {
		if s := string(v.Runes(buf)); s != suffixes[i] {
			t.Errorf("sorted[%d] = %q, want %q", i, s, suffixes[i])
		}
	}
}
