// Package lifecycle is the guarded state machine over help requests:
// pending -> in-progress -> completed, no way back. Every mutation goes
// through here so the transitions cannot be bypassed by a view writing
// fields directly.
package lifecycle

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bella507/help-me-sub000/internal/app/ds"
	"github.com/bella507/help-me-sub000/internal/app/pkg/events"

	"github.com/google/uuid"
)

// Store is the persistence seam. UpdateRequestCAS must apply fields only
// when the stored version still matches and report whether it did.
// GetRequest returns (nil, nil) when the id does not resolve.
type Store interface {
	GetRequest(id string) (*ds.HelpRequest, error)
	CreateRequest(r *ds.HelpRequest) error
	UpdateRequestCAS(id string, version int, fields map[string]interface{}) (bool, error)
	DeleteRequest(id string) (bool, error)
	CreateNotification(n *ds.Notification) error
}

// Publisher receives a change event after each successful mutation.
type Publisher interface {
	Publish(e events.Event)
}

type Engine struct {
	store Store
	pub   Publisher
	now   func() time.Time
	newID func() string
}

func New(store Store, pub Publisher) *Engine {
	return &Engine{
		store: store,
		pub:   pub,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Draft is the intake payload before the engine stamps identity and status.
type Draft struct {
	Name        string
	Phone       string
	Location    string
	Address     string
	Category    string
	Urgency     string
	Description string
	RiskGroups  *ds.RiskGroups
}

// Fields a request may carry notes under.
const (
	NotesOperator  = "notes"
	NotesVolunteer = "volunteer_notes"
)

func (e *Engine) publish(action, id string) {
	if e.pub != nil {
		e.pub.Publish(events.Event{Action: action, RequestID: id})
	}
}

// Create validates the draft, stamps id/status/created_at and persists it.
// Status is always pending on creation.
func (e *Engine) Create(draft Draft) (*ds.HelpRequest, error) {
	if draft.Name == "" {
		return nil, &ValidationError{Field: "name", Reason: "required"}
	}
	if draft.Phone == "" {
		return nil, &ValidationError{Field: "phone", Reason: "required"}
	}
	if draft.Location == "" {
		return nil, &ValidationError{Field: "location", Reason: "required"}
	}
	if !ds.ValidCategory(draft.Category) {
		return nil, &ValidationError{Field: "category", Reason: "unknown value"}
	}
	if !ds.ValidUrgency(draft.Urgency) {
		return nil, &ValidationError{Field: "urgency", Reason: "unknown value"}
	}

	r := &ds.HelpRequest{
		ID:          e.newID(),
		Name:        draft.Name,
		Phone:       draft.Phone,
		Location:    draft.Location,
		Address:     draft.Address,
		Category:    draft.Category,
		Urgency:     draft.Urgency,
		Description: draft.Description,
		Status:      ds.StatusPending,
		Version:     1,
		CreatedAt:   e.now(),
	}
	if draft.RiskGroups != nil {
		raw, err := json.Marshal(draft.RiskGroups)
		if err != nil {
			return nil, err
		}
		r.RiskGroups = raw
	}

	if err := e.store.CreateRequest(r); err != nil {
		return nil, err
	}
	e.publish(events.ActionCreated, r.ID)
	return r, nil
}

// Assign moves a pending request to in-progress, records the assignee and
// queues a notification for them. Assigning a non-pending request is
// rejected instead of silently re-assigning.
func (e *Engine) Assign(requestID, volunteerID, notes string) (*ds.HelpRequest, error) {
	r, err := e.transition(requestID, ds.StatusPending, func(fields map[string]interface{}, now time.Time) {
		fields["status"] = ds.StatusInProgress
		fields["assigned_to"] = volunteerID
		fields["assigned_at"] = now
		if notes != "" {
			fields["notes"] = notes
		}
	})
	if err != nil {
		return nil, err
	}

	n := &ds.Notification{
		ID:          e.newID(),
		Type:        ds.NotificationInfo,
		Title:       "New assignment",
		Message:     fmt.Sprintf("You were assigned a %s request at %s", r.Category, r.Location),
		VolunteerID: &volunteerID,
		CreatedAt:   e.now(),
	}
	if err := e.store.CreateNotification(n); err != nil {
		return nil, err
	}
	e.publish(events.ActionAssigned, r.ID)
	return r, nil
}

// SelfAccept is the volunteer-initiated assign: same transition, no notes
// and no notification (the volunteer already knows).
func (e *Engine) SelfAccept(requestID, volunteerID string) (*ds.HelpRequest, error) {
	r, err := e.transition(requestID, ds.StatusPending, func(fields map[string]interface{}, now time.Time) {
		fields["status"] = ds.StatusInProgress
		fields["assigned_to"] = volunteerID
		fields["assigned_at"] = now
	})
	if err != nil {
		return nil, err
	}
	e.publish(events.ActionAssigned, r.ID)
	return r, nil
}

// Complete closes an in-progress request.
func (e *Engine) Complete(requestID string) (*ds.HelpRequest, error) {
	r, err := e.transition(requestID, ds.StatusInProgress, func(fields map[string]interface{}, now time.Time) {
		fields["status"] = ds.StatusCompleted
		fields["completed_at"] = now
	})
	if err != nil {
		return nil, err
	}
	e.publish(events.ActionCompleted, r.ID)
	return r, nil
}

// UpdateNotes sets the operator or volunteer notes field on any request.
func (e *Engine) UpdateNotes(requestID, field, text string) (*ds.HelpRequest, error) {
	if field != NotesOperator && field != NotesVolunteer {
		return nil, &ValidationError{Field: "field", Reason: "must be notes or volunteer_notes"}
	}
	r, err := e.store.GetRequest(requestID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, &NotFoundError{ID: requestID}
	}

	fields := map[string]interface{}{field: text}
	ok, err := e.applyCAS(r, fields)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ConflictError{ID: requestID}
	}
	if field == NotesOperator {
		r.Notes = text
	} else {
		r.VolunteerNotes = text
	}
	e.publish(events.ActionUpdated, r.ID)
	return r, nil
}

// Delete removes the request permanently. Confirmation is the caller's
// responsibility; there is no undo.
func (e *Engine) Delete(requestID string) error {
	ok, err := e.store.DeleteRequest(requestID)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{ID: requestID}
	}
	e.publish(events.ActionDeleted, requestID)
	return nil
}

// transition applies a status change guarded on the required prior state
// and on the version the request was read at.
func (e *Engine) transition(requestID, requiredStatus string, mutate func(fields map[string]interface{}, now time.Time)) (*ds.HelpRequest, error) {
	r, err := e.store.GetRequest(requestID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, &NotFoundError{ID: requestID}
	}
	now := e.now()
	fields := map[string]interface{}{}
	mutate(fields, now)
	next, _ := fields["status"].(string)
	if r.Status != requiredStatus {
		return nil, &InvalidTransitionError{ID: requestID, From: r.Status, To: next}
	}

	ok, err := e.applyCAS(r, fields)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ConflictError{ID: requestID}
	}

	r.Status = next
	if v, ok := fields["assigned_to"].(string); ok {
		r.AssignedTo = &v
	}
	if t, ok := fields["assigned_at"].(time.Time); ok {
		r.AssignedAt = &t
	}
	if t, ok := fields["completed_at"].(time.Time); ok {
		r.CompletedAt = &t
	}
	if n, ok := fields["notes"].(string); ok {
		r.Notes = n
	}
	return r, nil
}

func (e *Engine) applyCAS(r *ds.HelpRequest, fields map[string]interface{}) (bool, error) {
	fields["version"] = r.Version + 1
	ok, err := e.store.UpdateRequestCAS(r.ID, r.Version, fields)
	if err != nil {
		return false, err
	}
	if ok {
		r.Version++
	}
	return ok, nil
}
