package repository

import (
	"errors"

	"github.com/bella507/help-me-sub000/internal/app/ds"

	"gorm.io/gorm"
)

func (r *Repository) CreateVolunteer(v *ds.Volunteer) error {
	return r.db.Create(v).Error
}

func (r *Repository) GetVolunteer(id string) (*ds.Volunteer, error) {
	var v ds.Volunteer
	err := r.db.Where("id = ?", id).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) ListVolunteers() ([]ds.Volunteer, error) {
	var out []ds.Volunteer
	err := r.db.Order("name").Find(&out).Error
	return out, err
}

func (r *Repository) UpdateVolunteer(id string, fields map[string]interface{}) error {
	return r.db.Model(&ds.Volunteer{}).Where("id = ?", id).Updates(fields).Error
}

// CountActiveAssignments is the derived assigned_tasks figure: in-progress
// requests currently pointing at the volunteer. Never stored.
func (r *Repository) CountActiveAssignments(volunteerID string) (int64, error) {
	var count int64
	err := r.db.Model(&ds.HelpRequest{}).
		Where("assigned_to = ? AND status = ?", volunteerID, ds.StatusInProgress).
		Count(&count).Error
	return count, err
}

// DeleteVolunteer removes the volunteer and clears the soft reference on
// any request still in flight, so assigned_to never dangles on active
// work. Completed history keeps the id.
func (r *Repository) DeleteVolunteer(id string) (bool, error) {
	err := r.db.Model(&ds.HelpRequest{}).
		Where("assigned_to = ? AND status <> ?", id, ds.StatusCompleted).
		Update("assigned_to", nil).Error
	if err != nil {
		return false, err
	}
	res := r.db.Where("id = ?", id).Delete(&ds.Volunteer{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
