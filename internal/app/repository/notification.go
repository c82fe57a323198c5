package repository

import "github.com/bella507/help-me-sub000/internal/app/ds"

func (r *Repository) CreateNotification(n *ds.Notification) error {
	return r.db.Create(n).Error
}

// ListNotifications returns a volunteer's notifications, newest first.
// An empty volunteerID returns the broadcast feed (no recipient).
func (r *Repository) ListNotifications(volunteerID string, unreadOnly bool) ([]ds.Notification, error) {
	q := r.db.Model(&ds.Notification{})
	if volunteerID != "" {
		q = q.Where("volunteer_id = ?", volunteerID)
	} else {
		q = q.Where("volunteer_id IS NULL")
	}
	if unreadOnly {
		q = q.Where("read = ?", false)
	}
	var out []ds.Notification
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *Repository) MarkNotificationRead(id string) (bool, error) {
	res := r.db.Model(&ds.Notification{}).Where("id = ?", id).Update("read", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
