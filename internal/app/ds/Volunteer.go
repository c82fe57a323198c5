package ds

import (
	"encoding/json"
	"strings"
)

type Volunteer struct {
	ID           string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Phone        string `gorm:"type:varchar(20)" json:"phone"`
	Skills       string `gorm:"type:text" json:"skills"`
	Availability string `gorm:"type:varchar(50)" json:"availability"`
	Verified     bool   `gorm:"not null;default:true" json:"verified"`
}

// SkillList normalizes the skills column on read. Older records stored a
// comma-separated string, newer ones a JSON array; both come back as a
// clean slice.
func (v Volunteer) SkillList() []string {
	s := strings.TrimSpace(v.Skills)
	if s == "" {
		return []string{}
	}
	if strings.HasPrefix(s, "[") {
		var list []string
		if err := json.Unmarshal([]byte(s), &list); err == nil {
			out := make([]string, 0, len(list))
			for _, item := range list {
				if item = strings.TrimSpace(item); item != "" {
					out = append(out, item)
				}
			}
			return out
		}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
