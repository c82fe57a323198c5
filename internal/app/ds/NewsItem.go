package ds

import "time"

type NewsItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Body        string    `gorm:"type:text" json:"body"`
	ImageURL    string    `gorm:"type:varchar(300)" json:"image_url"`
	PublishedAt time.Time `gorm:"not null" json:"published_at"`
}
