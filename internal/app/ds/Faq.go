package ds

type Faq struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`
	Position int    `gorm:"not null;default:0" json:"position"`
}
