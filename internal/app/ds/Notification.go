package ds

import "time"

const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationSuccess = "success"
	NotificationError   = "error"
)

type Notification struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Type        string    `gorm:"type:varchar(10);not null" json:"type"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Message     string    `gorm:"type:text" json:"message"`
	VolunteerID *string   `gorm:"type:varchar(36);index" json:"volunteer_id"`
	Read        bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
