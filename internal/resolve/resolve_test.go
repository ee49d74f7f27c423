package resolve

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/pbozzay/kanbanist/internal/model"
)

func TestUniqueTitle_Unused(t *testing.T) {
	got := UniqueTitle("Work", []string{"Home", "Errands"})
	if got != "Work" {
		t.Errorf("expected %q, got %q", "Work", got)
	}
}

func TestUniqueTitle_Collision(t *testing.T) {
	got := UniqueTitle("Work", []string{"Work", "Home"})
	if got != "Work 2" {
		t.Errorf("expected %q, got %q", "Work 2", got)
	}
}

func TestUniqueTitle_SuffixChain(t *testing.T) {
	existing := []string{"Work", "Work 2", "Work 2 2"}
	got := UniqueTitle("Work", existing)
	if got != "Work 2 2 2" {
		t.Errorf("expected %q, got %q", "Work 2 2 2", got)
	}
}

func TestUniqueTitle_NeverReturnsExisting(t *testing.T) {
	existing := []string{"a", "a 2", "b", "", " 2"}
	for _, candidate := range []string{"a", "b", "c", "", "a 2"} {
		got := UniqueTitle(candidate, existing)
		for _, e := range existing {
			if got == e {
				t.Errorf("UniqueTitle(%q) returned existing title %q", candidate, got)
			}
		}
		if !strings.HasPrefix(got, candidate) {
			t.Errorf("UniqueTitle(%q) = %q, want candidate prefix", candidate, got)
		}
	}
}

func boardLists() []model.List {
	return []model.List{
		{ID: "work", Title: "Work", Items: []model.Item{{ID: "i1"}, {ID: "i2"}}},
		{ID: "home", Title: "Home", Items: []model.Item{{ID: "i1"}}},
		{ID: "errands", Title: "Errands"},
		{ID: "2024-01-01", Title: "Jan 1", Items: []model.Item{{ID: "i1"}}},
		{ID: model.BacklogID, Title: "Backlog", Items: []model.Item{{ID: "i3"}}},
	}
}

func TestLabels_MoveBetweenLabels(t *testing.T) {
	got := Labels("i1", boardLists(), "work", "errands")
	want := []string{"errands", "home"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestLabels_MoveToBacklog(t *testing.T) {
	got := Labels("i2", boardLists(), "work", model.BacklogID)
	if len(got) != 0 {
		t.Errorf("expected no labels, got %v", got)
	}
}

func TestLabels_MoveFromBacklog(t *testing.T) {
	got := Labels("i3", boardLists(), model.BacklogID, "home")
	want := []string{"home"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestLabels_Properties(t *testing.T) {
	lists := boardLists()
	ids := []string{"work", "home", "errands", model.BacklogID}
	for _, item := range []string{"i1", "i2", "i3", "missing"} {
		for _, from := range ids {
			for _, to := range ids {
				if from == to {
					continue
				}
				got := Labels(item, lists, from, to)
				seen := map[string]bool{}
				for _, l := range got {
					if l == from {
						t.Errorf("%s %s->%s: result contains source", item, from, to)
					}
					if l == model.BacklogID {
						t.Errorf("%s %s->%s: result contains backlog", item, from, to)
					}
					if seen[l] {
						t.Errorf("%s %s->%s: duplicate label %q", item, from, to, l)
					}
					seen[l] = true
				}
				if to != model.BacklogID && !seen[to] {
					t.Errorf("%s %s->%s: result missing destination", item, from, to)
				}
			}
		}
	}
}

func TestLabelsWithout(t *testing.T) {
	got := LabelsWithout("i1", boardLists(), "work")
	want := []string{"home"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	if got := LabelsWithout("i2", boardLists(), "work"); len(got) != 0 {
		t.Errorf("expected no labels, got %v", got)
	}
}

func TestDueForList(t *testing.T) {
	now := time.Date(2023, 12, 30, 15, 4, 0, 0, time.UTC)
	got, err := DueForList("2024-01-01", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.Due{Date: "2024-01-01", String: "in 2 days", IsRecurring: false}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("due mismatch (-want +got):\n%s", diff)
	}
}

func TestDueForList_Past(t *testing.T) {
	now := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	got, err := DueForList("2024-01-01", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String != "in -2 days" {
		t.Errorf("expected %q, got %q", "in -2 days", got.String)
	}
}

func TestDueForList_NotADate(t *testing.T) {
	_, err := DueForList("shopping", time.Now())
	if !errors.Is(err, ErrNotDate) {
		t.Errorf("expected ErrNotDate, got %v", err)
	}
}

func TestParseDate_Natural(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	got, err := ParseDate("tomorrow", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Format(model.DateLayout) != "2024-01-02" {
		t.Errorf("expected 2024-01-02, got %s", got.Format(model.DateLayout))
	}
}

func TestDaysBetween_DST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	a := time.Date(2024, 3, 9, 12, 0, 0, 0, loc)
	b := time.Date(2024, 3, 11, 0, 0, 0, 0, loc)
	if got := DaysBetween(a, b); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

func TestRenameTitle_IgnoresOwnTitle(t *testing.T) {
	lists := []model.List{{ID: "a", Title: "Work"}, {ID: "b", Title: "Home"}}
	if got := RenameTitle("Work", lists, "a"); got != "Work" {
		t.Errorf("expected %q, got %q", "Work", got)
	}
	if got := RenameTitle("Home", lists, "a"); got != "Home 2" {
		t.Errorf("expected %q, got %q", "Home 2", got)
	}
}

func TestOrderMap(t *testing.T) {
	lists := []model.List{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}}
	got := OrderMap(lists, "D", 2)
	want := map[string]int{"A": 0, "B": 1, "D": 2, "C": 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestReorder_Clamps(t *testing.T) {
	ids := []string{"A", "B", "C"}
	if diff := cmp.Diff([]string{"B", "C", "A"}, Reorder(ids, "A", 10)); diff != "" {
		t.Errorf("high index (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"C", "A", "B"}, Reorder(ids, "C", -1)); diff != "" {
		t.Errorf("negative index (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ids, Reorder(ids, "X", 0)); diff != "" {
		t.Errorf("unknown id (-want +got):\n%s", diff)
	}
}
