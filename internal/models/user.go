package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleHR      UserRole = "hr"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
)

// Badge is an earned gamification award. The earned list is append-only and
// preserves award order.
type Badge struct {
	Name     string    `json:"name"`
	Icon     string    `json:"icon"`
	EarnedAt time.Time `json:"earned_at"`
}

type User struct {
	ID            string   `json:"id" gorm:"primaryKey;size:36"`
	Name          string   `json:"name" gorm:"not null;size:100;index"`
	Email         string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash  string   `json:"-" gorm:"column:password_hash;not null;size:100"`
	Phone         string   `json:"phone" gorm:"size:10"`
	ContactNumber string   `json:"contact_number,omitempty" gorm:"size:10"`
	Role          UserRole `json:"role" gorm:"not null;default:student;size:10;index"`

	// Student profile
	Education   string                      `json:"education" gorm:"size:100"`
	Interests   datatypes.JSONSlice[string] `json:"interests"`
	SkillLevel  SkillLevel                  `json:"skill_level" gorm:"default:Beginner;size:20"`
	CareerGoal  string                      `json:"career_goal" gorm:"size:200"`
	DateOfBirth *time.Time                  `json:"date_of_birth,omitempty"`
	Consent     bool                        `json:"consent" gorm:"not null;default:false"`

	// Gamification state
	ReadinessScore int                        `json:"readiness_score" gorm:"not null;default:0"`
	Streak         int                        `json:"streak" gorm:"not null;default:0"`
	Badges         datatypes.JSONSlice[Badge] `json:"badges"`
	LastActivity   time.Time                  `json:"last_activity"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

// HasBadge reports whether the user already earned the named badge.
func (u *User) HasBadge(name string) bool {
	for _, b := range u.Badges {
		if b.Name == name {
			return true
		}
	}
	return false
}
