package ds

type DonationNeed struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Item      string `gorm:"type:varchar(200);not null" json:"item"`
	Quantity  int    `gorm:"not null;default:0" json:"quantity"`
	Unit      string `gorm:"type:varchar(50)" json:"unit"`
	Urgent    bool   `gorm:"not null;default:false" json:"urgent"`
	Fulfilled bool   `gorm:"not null;default:false" json:"fulfilled"`
}
