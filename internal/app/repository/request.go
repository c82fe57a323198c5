package repository

import (
	"errors"

	"github.com/bella507/help-me-sub000/internal/app/ds"

	"gorm.io/gorm"
)

func (r *Repository) CreateRequest(req *ds.HelpRequest) error {
	return r.db.Create(req).Error
}

// GetRequest returns (nil, nil) when the id does not resolve; callers
// decide what missing means.
func (r *Repository) GetRequest(id string) (*ds.HelpRequest, error) {
	var req ds.HelpRequest
	err := r.db.Where("id = ?", id).First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListRequests filters by status and urgency in SQL; "" or "all" disables
// a dimension. Ordering is left to the query package.
func (r *Repository) ListRequests(status, urgency string) ([]ds.HelpRequest, error) {
	q := r.db.Model(&ds.HelpRequest{})
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}
	if urgency != "" && urgency != "all" {
		q = q.Where("urgency = ?", urgency)
	}
	var out []ds.HelpRequest
	err := q.Find(&out).Error
	return out, err
}

// ListRequestsByPhone is the self-service tracker lookup: substring match
// on the phone column.
func (r *Repository) ListRequestsByPhone(term string) ([]ds.HelpRequest, error) {
	var out []ds.HelpRequest
	err := r.db.Where("phone LIKE ?", "%"+term+"%").Find(&out).Error
	return out, err
}

func (r *Repository) ListRequestsByAssignee(volunteerID string) ([]ds.HelpRequest, error) {
	var out []ds.HelpRequest
	err := r.db.Where("assigned_to = ?", volunteerID).Find(&out).Error
	return out, err
}

// UpdateRequestCAS applies fields only if the stored version still matches
// the one the caller read. Reports whether the write landed.
func (r *Repository) UpdateRequestCAS(id string, version int, fields map[string]interface{}) (bool, error) {
	res := r.db.Model(&ds.HelpRequest{}).
		Where("id = ? AND version = ?", id, version).
		Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteRequest is a hard delete. Reports whether a row was removed.
func (r *Repository) DeleteRequest(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&ds.HelpRequest{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
