package ds

const (
	ShelterOpen   = "open"
	ShelterFull   = "full"
	ShelterClosed = "closed"
)

type Shelter struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"type:varchar(200);not null" json:"name"`
	Address   string  `gorm:"type:text" json:"address"`
	Capacity  int     `gorm:"not null;default:0" json:"capacity"`
	Occupancy int     `gorm:"not null;default:0" json:"occupancy"`
	Phone     string  `gorm:"type:varchar(20)" json:"phone"`
	Status    string  `gorm:"type:varchar(10);not null;default:open" json:"status"`
	ImageURL  string  `gorm:"type:varchar(300)" json:"image_url"`
	Lat       float64 `gorm:"type:decimal(9,6)" json:"lat"`
	Lng       float64 `gorm:"type:decimal(9,6)" json:"lng"`
}
