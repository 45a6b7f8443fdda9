package listview

import (
	"reflect"
	"testing"
)

type row struct {
	Name   string
	Status string
}

var sample = []row{
	{"alpha", "active"},
	{"bravo", "suspended"},
	{"charlie", "active"},
	{"delta", "pending_approval"},
	{"echo", "active"},
}

func TestFilterPreservesOrder(t *testing.T) {
	active := Filter(sample, func(r row) bool { return r.Status == "active" })
	want := []row{{"alpha", "active"}, {"charlie", "active"}, {"echo", "active"}}
	if !reflect.DeepEqual(active, want) {
		t.Fatalf("filtered = %v", active)
	}

	// clearing the filter restores the original order and count
	cleared := Filter(sample)
	if !reflect.DeepEqual(cleared, sample) {
		t.Fatalf("cleared = %v", cleared)
	}
}

func TestFilterMultiplePredicates(t *testing.T) {
	got := Filter(sample,
		func(r row) bool { return r.Status == "active" },
		func(r row) bool { return MatchText("ch", r.Name) },
	)
	if len(got) != 1 || got[0].Name != "charlie" {
		t.Fatalf("got %v", got)
	}
}

func TestMatchText(t *testing.T) {
	if !MatchText("", "anything") {
		t.Fatal("empty query matches everything")
	}
	if !MatchText("ALP", "alpha") {
		t.Fatal("match is case-insensitive")
	}
	if MatchText("zulu", "alpha", "bravo") {
		t.Fatal("no field contains zulu")
	}
	if !MatchText("ravo", "alpha", "bravo") {
		t.Fatal("any field may match")
	}
}

func TestPaginationClamp(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	if tp := TotalPages(25, 10); tp != 3 {
		t.Fatalf("TotalPages(25,10) = %d, want 3", tp)
	}

	page3, served := Page(items, 3, 10)
	if served != 3 || len(page3) != 5 {
		t.Fatalf("page 3: served %d with %d items, want 3 with 5", served, len(page3))
	}
	if page3[0] != 20 || page3[4] != 24 {
		t.Fatalf("page 3 contents = %v", page3)
	}

	// out-of-range requests clamp to the last valid page
	page4, served := Page(items, 4, 10)
	if served != 3 || len(page4) != 5 {
		t.Fatalf("page 4 should clamp to 3: served %d with %d items", served, len(page4))
	}

	page0, served := Page(items, 0, 10)
	if served != 1 || len(page0) != 10 {
		t.Fatalf("page 0 should clamp to 1: served %d with %d items", served, len(page0))
	}
}

func TestPaginationEmpty(t *testing.T) {
	if tp := TotalPages(0, 10); tp != 1 {
		t.Fatalf("TotalPages(0,10) = %d, want 1", tp)
	}
	items, served := Page([]int{}, 5, 10)
	if served != 1 || len(items) != 0 {
		t.Fatalf("empty list: served %d with %d items", served, len(items))
	}
}
