package models

import "time"

// ===== AUTH =====

type RegisterRequest struct {
	Name          string     `json:"name" validate:"required,min=1,max=100"`
	Email         string     `json:"email" validate:"required,email"`
	Password      string     `json:"password" validate:"required,min=6,max=72"`
	Phone         string     `json:"phone" validate:"required"`
	ContactNumber string     `json:"contact_number"`
	Role          UserRole   `json:"role" validate:"omitempty,user_role"`
	Education     string     `json:"education" validate:"omitempty,max=100"`
	Interests     []string   `json:"interests" validate:"omitempty,dive,max=50"`
	SkillLevel    SkillLevel `json:"skill_level" validate:"omitempty,skill_level"`
	CareerGoal    string     `json:"career_goal" validate:"omitempty,max=200"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	Consent       bool       `json:"consent"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest carries the fields a user may change on their own
// record. Role, email, password and gamification state are deliberately not
// part of this shape; anything else a client sends is dropped at bind time.
type UpdateProfileRequest struct {
	Name          *string     `json:"name" validate:"omitempty,min=1,max=100"`
	Phone         *string     `json:"phone"`
	ContactNumber *string     `json:"contact_number"`
	Education     *string     `json:"education" validate:"omitempty,max=100"`
	Interests     []string    `json:"interests" validate:"omitempty,dive,max=50"`
	SkillLevel    *SkillLevel `json:"skill_level" validate:"omitempty,skill_level"`
	CareerGoal    *string     `json:"career_goal" validate:"omitempty,max=200"`
	DateOfBirth   *time.Time  `json:"date_of_birth"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// ===== ROADMAP =====

type GenerateRoadmapRequest struct {
	Education    string   `json:"education" validate:"omitempty,max=100"`
	Interests    []string `json:"interests" validate:"omitempty,dive,max=50"`
	SkillLevel   string   `json:"skill_level" validate:"omitempty,max=20"`
	CareerGoal   string   `json:"career_goal" validate:"omitempty,max=200"`
	HoursPerWeek int      `json:"hours_per_week" validate:"omitempty,min=1,max=112"`
}

type ItemType string

const (
	ItemPhase   ItemType = "phase"
	ItemProject ItemType = "project"
)

type UpdateProgressRequest struct {
	RoadmapID      string   `json:"roadmap_id" validate:"required"`
	ItemID         string   `json:"item_id" validate:"required"`
	Type           ItemType `json:"type" validate:"required,oneof=phase project"`
	Completed      bool     `json:"completed"`
	SubmissionLink string   `json:"submission_link"`
}

type ProgressResponse struct {
	Roadmap        *Roadmap `json:"roadmap"`
	ReadinessScore int      `json:"readiness_score"`
	Streak         int      `json:"streak"`
	Badges         []Badge  `json:"badges"`
}

// ===== PHASE QUIZ =====

type QuizRequest struct {
	PhaseName string `json:"phase_name" validate:"required,max=200"`
}

type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
}

type QuizAnswers struct {
	Learnings string `json:"learnings"`
	Concept   string `json:"concept"`
}

type ValidateQuizRequest struct {
	PhaseName string      `json:"phase_name" validate:"required,max=200"`
	Answers   QuizAnswers `json:"answers"`
}

type QuizEvaluation struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
	Passed   bool   `json:"passed"`
}

// ===== HR =====

type UpdateContactRequest struct {
	Phone         *string `json:"phone"`
	ContactNumber *string `json:"contact_number"`
	Email         *string `json:"email" validate:"omitempty,email"`
}
