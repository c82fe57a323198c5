package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/bella507/help-me-sub000/internal/app/ds"
	"github.com/bella507/help-me-sub000/internal/app/pkg/events"
)

// memStore is the in-memory Store double used instead of Postgres.
type memStore struct {
	requests      map[string]*ds.HelpRequest
	notifications []ds.Notification
}

func newMemStore() *memStore {
	return &memStore{requests: map[string]*ds.HelpRequest{}}
}

func (m *memStore) GetRequest(id string) (*ds.HelpRequest, error) {
	r, ok := m.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memStore) CreateRequest(r *ds.HelpRequest) error {
	cp := *r
	m.requests[r.ID] = &cp
	return nil
}

func (m *memStore) UpdateRequestCAS(id string, version int, fields map[string]interface{}) (bool, error) {
	r, ok := m.requests[id]
	if !ok || r.Version != version {
		return false, nil
	}
	for k, v := range fields {
		switch k {
		case "status":
			r.Status = v.(string)
		case "assigned_to":
			s := v.(string)
			r.AssignedTo = &s
		case "assigned_at":
			t := v.(time.Time)
			r.AssignedAt = &t
		case "completed_at":
			t := v.(time.Time)
			r.CompletedAt = &t
		case "notes":
			r.Notes = v.(string)
		case "volunteer_notes":
			r.VolunteerNotes = v.(string)
		case "version":
			r.Version = v.(int)
		}
	}
	return true, nil
}

func (m *memStore) DeleteRequest(id string) (bool, error) {
	if _, ok := m.requests[id]; !ok {
		return false, nil
	}
	delete(m.requests, id)
	return true, nil
}

func (m *memStore) CreateNotification(n *ds.Notification) error {
	m.notifications = append(m.notifications, *n)
	return nil
}

func validDraft() Draft {
	return Draft{
		Name:     "A",
		Phone:    "0800000000",
		Location: "X",
		Category: ds.CategoryFood,
		Urgency:  ds.UrgencyHigh,
	}
}

func TestCreateDefaults(t *testing.T) {
	store := newMemStore()
	eng := New(store, nil)

	before := time.Now()
	r, err := eng.Create(validDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if r.Status != ds.StatusPending {
		t.Fatalf("status: got %s, want pending", r.Status)
	}
	if r.AssignedTo != nil {
		t.Fatal("assigned_to should be unset on creation")
	}
	if r.ID == "" {
		t.Fatal("id not assigned")
	}
	if r.CreatedAt.Before(before) || r.CreatedAt.After(time.Now()) {
		t.Fatalf("created_at %v outside expected window", r.CreatedAt)
	}
	if r.Version != 1 {
		t.Fatalf("version: got %d, want 1", r.Version)
	}

	stored, _ := store.GetRequest(r.ID)
	if stored == nil || stored.Status != ds.StatusPending {
		t.Fatal("request not persisted as pending")
	}
}

func TestCreateValidation(t *testing.T) {
	eng := New(newMemStore(), nil)

	cases := []struct {
		name   string
		mutate func(*Draft)
	}{
		{"missing name", func(d *Draft) { d.Name = "" }},
		{"missing phone", func(d *Draft) { d.Phone = "" }},
		{"missing location", func(d *Draft) { d.Location = "" }},
		{"bad category", func(d *Draft) { d.Category = "rescue" }},
		{"bad urgency", func(d *Draft) { d.Urgency = "critical" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)
			_, err := eng.Create(d)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("got %v, want ValidationError", err)
			}
		})
	}
}

func TestAssign(t *testing.T) {
	store := newMemStore()
	eng := New(store, nil)

	r, _ := eng.Create(validDraft())

	got, err := eng.Assign(r.ID, "v1", "bring water")
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if got.Status != ds.StatusInProgress {
		t.Fatalf("status: got %s, want in-progress", got.Status)
	}
	if got.AssignedTo == nil || *got.AssignedTo != "v1" {
		t.Fatal("assigned_to not set to v1")
	}
	if got.AssignedAt == nil {
		t.Fatal("assigned_at not stamped")
	}
	if got.Notes != "bring water" {
		t.Fatalf("notes: got %q", got.Notes)
	}

	if len(store.notifications) != 1 {
		t.Fatalf("notifications: got %d, want 1", len(store.notifications))
	}
	n := store.notifications[0]
	if n.VolunteerID == nil || *n.VolunteerID != "v1" {
		t.Fatal("notification not addressed to v1")
	}

	// A second assign on the now in-progress request must be rejected.
	_, err = eng.Assign(r.ID, "v2", "")
	var it *InvalidTransitionError
	if !errors.As(err, &it) {
		t.Fatalf("second assign: got %v, want InvalidTransitionError", err)
	}
	stored, _ := store.GetRequest(r.ID)
	if *stored.AssignedTo != "v1" {
		t.Fatal("second assign overwrote the assignee")
	}
}

func TestAssignNotFound(t *testing.T) {
	eng := New(newMemStore(), nil)
	_, err := eng.Assign("missing", "v1", "")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}

func TestSelfAcceptSkipsNotification(t *testing.T) {
	store := newMemStore()
	eng := New(store, nil)

	r, _ := eng.Create(validDraft())
	got, err := eng.SelfAccept(r.ID, "v2")
	if err != nil {
		t.Fatalf("self-accept: %v", err)
	}
	if got.Status != ds.StatusInProgress || *got.AssignedTo != "v2" {
		t.Fatalf("self-accept state wrong: %s / %v", got.Status, got.AssignedTo)
	}
	if len(store.notifications) != 0 {
		t.Fatalf("self-accept queued %d notifications, want 0", len(store.notifications))
	}
}

func TestCompleteGuards(t *testing.T) {
	store := newMemStore()
	eng := New(store, nil)

	r, _ := eng.Create(validDraft())

	// Completing a still-pending request is rejected.
	_, err := eng.Complete(r.ID)
	var it *InvalidTransitionError
	if !errors.As(err, &it) {
		t.Fatalf("complete on pending: got %v, want InvalidTransitionError", err)
	}

	if _, err := eng.Assign(r.ID, "v1", ""); err != nil {
		t.Fatalf("assign: %v", err)
	}
	got, err := eng.Complete(r.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got.Status != ds.StatusCompleted || got.CompletedAt == nil {
		t.Fatalf("complete state wrong: %s", got.Status)
	}

	// Completing twice is rejected, not silently accepted.
	_, err = eng.Complete(r.ID)
	if !errors.As(err, &it) {
		t.Fatalf("double complete: got %v, want InvalidTransitionError", err)
	}
}

func TestUpdateNotes(t *testing.T) {
	store := newMemStore()
	eng := New(store, nil)

	r, _ := eng.Create(validDraft())

	if _, err := eng.UpdateNotes(r.ID, "favorite_color", "x"); err == nil {
		t.Fatal("unknown notes field accepted")
	}

	got, err := eng.UpdateNotes(r.ID, NotesVolunteer, "on my way")
	if err != nil {
		t.Fatalf("update notes: %v", err)
	}
	if got.VolunteerNotes != "on my way" {
		t.Fatalf("volunteer notes: got %q", got.VolunteerNotes)
	}

	stored, _ := store.GetRequest(r.ID)
	if stored.VolunteerNotes != "on my way" {
		t.Fatal("notes not persisted")
	}
}

func TestDelete(t *testing.T) {
	store := newMemStore()
	eng := New(store, nil)

	r, _ := eng.Create(validDraft())
	if err := eng.Delete(r.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if stored, _ := store.GetRequest(r.ID); stored != nil {
		t.Fatal("request still present after delete")
	}

	var nf *NotFoundError
	if err := eng.Delete(r.ID); !errors.As(err, &nf) {
		t.Fatalf("second delete: got %v, want NotFoundError", err)
	}
}

// staleStore fails the first CAS attempt, as if another writer got in
// between the read and the write.
type staleStore struct {
	*memStore
	failures int
}

func (s *staleStore) UpdateRequestCAS(id string, version int, fields map[string]interface{}) (bool, error) {
	if s.failures > 0 {
		s.failures--
		return false, nil
	}
	return s.memStore.UpdateRequestCAS(id, version, fields)
}

func TestConcurrentWriterRejected(t *testing.T) {
	store := &staleStore{memStore: newMemStore(), failures: 1}
	eng := New(store, nil)

	r, _ := eng.Create(validDraft())
	_, err := eng.Assign(r.ID, "v1", "")
	var cf *ConflictError
	if !errors.As(err, &cf) {
		t.Fatalf("got %v, want ConflictError", err)
	}

	// The retry (fresh read, fresh version) succeeds.
	if _, err := eng.Assign(r.ID, "v1", ""); err != nil {
		t.Fatalf("retry after conflict: %v", err)
	}
}

func TestScenarioCreateAssignComplete(t *testing.T) {
	store := newMemStore()
	hub := events.NewHub()
	eng := New(store, hub)

	r, err := eng.Create(validDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if r.Status != ds.StatusPending {
		t.Fatal("expected one pending record")
	}

	assigned, err := eng.Assign(r.ID, "v1", "")
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if assigned.Status != ds.StatusInProgress || *assigned.AssignedTo != "v1" {
		t.Fatalf("assign state wrong: %s / %v", assigned.Status, assigned.AssignedTo)
	}
	if len(store.notifications) != 1 {
		t.Fatalf("exactly one notification expected, got %d", len(store.notifications))
	}

	done, err := eng.Complete(r.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != ds.StatusCompleted {
		t.Fatalf("final status: got %s", done.Status)
	}
}
