package models

import (
	"time"
)

// Activity is the append-only audit feed shown on the branch
// dashboard. Rows are written by the workflow layer, never edited.
type Activity struct {
	ID           uint         `gorm:"primary_key" json:"id"`
	BranchId     uint         `gorm:"index;not null" json:"branch_id"`
	UserId       uint         `gorm:"index" json:"user_id"`
	Module       string       `gorm:"size:100;not null" json:"module"`
	ActivityType ActivityType `gorm:"type:enum('create','update','delete','system');not null" json:"activity_type"`
	Description  string       `gorm:"size:500" json:"description"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"created_at"`
}
