package entity

import "time"

// Technician is a field worker that service orders can be assigned to.
//
// SkillLevel is free-form ("Junior", "Mid", "Senior" by UI convention);
// the core does not constrain it. After creation only the Active flag is
// mutable.
type Technician struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	SkillLevel string    `json:"skill_level"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}
