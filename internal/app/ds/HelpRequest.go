package ds

import (
	"time"

	"gorm.io/datatypes"
)

// Request statuses. The lifecycle only moves forward:
// pending -> in-progress -> completed.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

const (
	CategoryFood       = "food"
	CategoryShelter    = "shelter"
	CategoryMedical    = "medical"
	CategoryClothing   = "clothing"
	CategoryEvacuation = "evacuation"
	CategoryOther      = "other"
)

// RiskDetail is one risk-group entry; both fields are optional.
type RiskDetail struct {
	Count  int    `json:"count,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// RiskGroups is the shape stored in the risk_groups JSON column.
type RiskGroups struct {
	Elderly  *RiskDetail `json:"elderly,omitempty"`
	Children *RiskDetail `json:"children,omitempty"`
	Disabled *RiskDetail `json:"disabled,omitempty"`
	Pregnant *RiskDetail `json:"pregnant,omitempty"`
	Pets     *RiskDetail `json:"pets,omitempty"`
	Medical  *RiskDetail `json:"medical,omitempty"`
}

type HelpRequest struct {
	ID             string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name           string         `gorm:"type:varchar(100);not null" json:"name"`
	Phone          string         `gorm:"type:varchar(20);not null;index" json:"phone"`
	Location       string         `gorm:"type:varchar(200);not null" json:"location"`
	Address        string         `gorm:"type:text" json:"address"`
	Category       string         `gorm:"type:varchar(20);not null" json:"category"`
	Urgency        string         `gorm:"type:varchar(10);not null" json:"urgency"`
	Description    string         `gorm:"type:text" json:"description"`
	Status         string         `gorm:"type:varchar(20);not null;index" json:"status"`
	AssignedTo     *string        `gorm:"type:varchar(36)" json:"assigned_to"`
	Notes          string         `gorm:"type:text" json:"notes"`
	VolunteerNotes string         `gorm:"type:text" json:"volunteer_notes"`
	RiskGroups     datatypes.JSON `json:"risk_groups"`
	Version        int            `gorm:"not null;default:1" json:"version"`
	CreatedAt      time.Time      `gorm:"not null" json:"created_at"`
	AssignedAt     *time.Time     `json:"assigned_at"`
	CompletedAt    *time.Time     `json:"completed_at"`
}

// ValidCategory reports whether c is one of the closed category values.
func ValidCategory(c string) bool {
	switch c {
	case CategoryFood, CategoryShelter, CategoryMedical, CategoryClothing, CategoryEvacuation, CategoryOther:
		return true
	}
	return false
}

// ValidUrgency reports whether u is one of the closed urgency values.
// The scale is deliberately three-tier; "critical" from an older admin
// screen was never reachable from intake and is not accepted.
func ValidUrgency(u string) bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}
