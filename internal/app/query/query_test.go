package query

import (
	"testing"
	"time"

	"github.com/bella507/help-me-sub000/internal/app/ds"
)

func mkReq(id, urgency, status string, created time.Time) ds.HelpRequest {
	return ds.HelpRequest{
		ID:        id,
		Name:      "someone",
		Phone:     "081-234-5678",
		Urgency:   urgency,
		Status:    status,
		CreatedAt: created,
	}
}

func TestSortForTriageUrgencyFirst(t *testing.T) {
	base := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	a := mkReq("A", ds.UrgencyHigh, ds.StatusPending, base.Add(1*time.Minute))
	b := mkReq("B", ds.UrgencyLow, ds.StatusPending, base.Add(5*time.Minute))
	c := mkReq("C", ds.UrgencyHigh, ds.StatusPending, base.Add(3*time.Minute))

	got := SortForTriage([]ds.HelpRequest{a, b, c}, true)

	want := []string{"C", "A", "B"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestSortForTriageRecencyOnly(t *testing.T) {
	base := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	a := mkReq("A", ds.UrgencyHigh, ds.StatusPending, base.Add(1*time.Minute))
	b := mkReq("B", ds.UrgencyLow, ds.StatusPending, base.Add(5*time.Minute))
	c := mkReq("C", ds.UrgencyHigh, ds.StatusPending, base.Add(3*time.Minute))

	got := SortForTriage([]ds.HelpRequest{a, b, c}, false)

	want := []string{"B", "C", "A"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestSortForTriageDoesNotMutateInput(t *testing.T) {
	base := time.Now()
	in := []ds.HelpRequest{
		mkReq("A", ds.UrgencyLow, ds.StatusPending, base),
		mkReq("B", ds.UrgencyHigh, ds.StatusPending, base.Add(-time.Hour)),
	}
	SortForTriage(in, true)
	if in[0].ID != "A" || in[1].ID != "B" {
		t.Fatal("input slice was reordered")
	}
}

func TestFilterByPhoneSubstring(t *testing.T) {
	base := time.Now()
	reqs := []ds.HelpRequest{
		mkReq("A", ds.UrgencyHigh, ds.StatusPending, base),
		{ID: "B", Phone: "099-000-1111", Urgency: ds.UrgencyLow, Status: ds.StatusPending, CreatedAt: base},
	}

	got := FilterByPhone(reqs, "234")
	if len(got) != 1 || got[0].ID != "A" {
		t.Fatalf("expected only A to match %q, got %d results", "234", len(got))
	}

	if got := FilterByPhone(reqs, "nope"); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestFilterByStatus(t *testing.T) {
	base := time.Now()
	reqs := []ds.HelpRequest{
		mkReq("A", ds.UrgencyHigh, ds.StatusPending, base),
		mkReq("B", ds.UrgencyHigh, ds.StatusCompleted, base),
		mkReq("C", ds.UrgencyLow, ds.StatusPending, base),
	}

	if got := FilterByStatus(reqs, ds.StatusPending); len(got) != 2 {
		t.Fatalf("pending: got %d, want 2", len(got))
	}
	if got := FilterByStatus(reqs, All); len(got) != 3 {
		t.Fatalf("all: got %d, want 3", len(got))
	}
}

func TestFilterByUrgencyAndStatus(t *testing.T) {
	base := time.Now()
	reqs := []ds.HelpRequest{
		mkReq("A", ds.UrgencyHigh, ds.StatusPending, base),
		mkReq("B", ds.UrgencyHigh, ds.StatusCompleted, base),
		mkReq("C", ds.UrgencyLow, ds.StatusPending, base),
	}

	got := FilterByUrgencyAndStatus(reqs, ds.UrgencyHigh, ds.StatusPending)
	if len(got) != 1 || got[0].ID != "A" {
		t.Fatalf("conjunction failed: got %d results", len(got))
	}

	if got := FilterByUrgencyAndStatus(reqs, All, All); len(got) != 3 {
		t.Fatalf("all/all: got %d, want 3", len(got))
	}
}

func TestComputeStatsSumsToTotal(t *testing.T) {
	base := time.Now()
	reqs := []ds.HelpRequest{
		mkReq("A", ds.UrgencyHigh, ds.StatusPending, base),
		mkReq("B", ds.UrgencyMedium, ds.StatusInProgress, base),
		mkReq("C", ds.UrgencyLow, ds.StatusCompleted, base),
		mkReq("D", ds.UrgencyHigh, ds.StatusPending, base),
	}

	s := ComputeStats(reqs)
	if s.Total != 4 {
		t.Fatalf("total: got %d, want 4", s.Total)
	}
	if s.Pending+s.InProgress+s.Completed != s.Total {
		t.Fatalf("status counts %d+%d+%d do not sum to total %d", s.Pending, s.InProgress, s.Completed, s.Total)
	}
	if s.High != 2 || s.Medium != 1 || s.Low != 1 {
		t.Fatalf("urgency counts wrong: %+v", s)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats(nil)
	if s.Total != 0 || s.Pending != 0 {
		t.Fatalf("empty stats wrong: %+v", s)
	}
}
