package models

import "time"

// MatchResult is one resolver emission persisted by the worker path:
// a declarant plus the newline-joined candidate list found for them.
type MatchResult struct {
	ID         uint `gorm:"primaryKey"`
	IncomeYear int  `gorm:"index"`
	SectionID  uint
	PersonID   uint
	Name       string
	Candidates string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
