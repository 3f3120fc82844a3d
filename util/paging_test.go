package util

import (
	"sort"
	"strings"
	"testing"
)

func TestPages(t *testing.T) {

	if got := Pages(1, 1); len(got) != 1 || got[0] != 1 {
		t.Errorf("Pages(1, 1) = %v, want [1]", got)
	}

	got := Pages(5, 100)
	if !sort.IntsAreSorted(got) {
		t.Errorf("Pages(5, 100) = %v, want ascending", got)
	}
	if got[0] != 1 || got[len(got)-1] != 100 {
		t.Errorf("Pages(5, 100) = %v, want first and last page included", got)
	}
	var hasCurrent, hasPrev, hasNext bool
	for _, p := range got {
		hasCurrent = hasCurrent || p == 5
		hasPrev = hasPrev || p == 4
		hasNext = hasNext || p == 6
	}
	if !hasCurrent || !hasPrev || !hasNext {
		t.Errorf("Pages(5, 100) = %v, want current page and direct neighbors", got)
	}
}

func TestPageLinks(t *testing.T) {

	link := func(page int, name string) string {
		return "[" + name + "]"
	}
	active := func(page int, name string) string {
		return "(" + name + ")"
	}

	links := PageLinks(2, 3, link, active)

	var joined string
	for _, l := range links {
		joined += string(l)
	}

	if !strings.Contains(joined, "(2)") {
		t.Errorf("got %q, want the current page marked active", joined)
	}
	if !strings.Contains(joined, "[&laquo;]") || !strings.Contains(joined, "[&raquo;]") {
		t.Errorf("got %q, want prev and next arrows", joined)
	}

	if got := PageLinks(1, 0, link, active); len(got) != 0 {
		t.Errorf("got %v for zero pages, want none", got)
	}
}
