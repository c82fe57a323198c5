package ds

const (
	RiskWatch   = "watch"
	RiskWarning = "warning"
	RiskSevere  = "severe"
)

type RiskArea struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"type:varchar(200);not null" json:"name"`
	Level       string  `gorm:"type:varchar(10);not null;default:watch" json:"level"`
	Description string  `gorm:"type:text" json:"description"`
	Lat         float64 `gorm:"type:decimal(9,6)" json:"lat"`
	Lng         float64 `gorm:"type:decimal(9,6)" json:"lng"`
	RadiusKm    float64 `gorm:"type:decimal(6,2)" json:"radius_km"`
}
