package models

import "time"

// CandidateAlert is created once when a student registers so HR users see
// new signups. It denormalizes the contact fields for quick review and is
// never mutated afterwards.
type CandidateAlert struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	UserID        string    `json:"user_id" gorm:"not null;size:36;index"`
	Name          string    `json:"name" gorm:"size:100"`
	Email         string    `json:"email" gorm:"size:255"`
	Phone         string    `json:"phone" gorm:"size:10"`
	ContactNumber string    `json:"contact_number,omitempty" gorm:"size:10"`
	Role          UserRole  `json:"role" gorm:"default:student;size:10"`
	CreatedAt     time.Time `json:"created_at"`
}

func (CandidateAlert) TableName() string {
	return "candidate_alerts"
}
