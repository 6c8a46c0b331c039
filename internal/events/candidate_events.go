package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/mr-pathfinder/roadmap-service/internal/models"
)

// EventType identifies candidate lifecycle events on the bus.
type EventType string

const (
	EventCandidateRegistered EventType = "candidate.registered"
	EventCandidateRemoved    EventType = "candidate.removed"
)

// CandidateEvent is the envelope for all candidate events.
type CandidateEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// CandidateRegisteredEvent is published when a student account is created,
// mirroring the candidate alert record HR reads from the directory.
type CandidateRegisteredEvent struct {
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CareerGoal     string `json:"career_goal"`
	ReadinessScore int    `json:"readiness_score"`
}

// CandidateRemovedEvent is published when HR deletes a candidate.
type CandidateRemovedEvent struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func newEvent(eventType EventType, data interface{}) *CandidateEvent {
	return &CandidateEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    "roadmap-service",
		Version:   "1.0",
		Data:      data,
	}
}

// NewCandidateRegisteredEvent builds the registration event from the user
// record.
func NewCandidateRegisteredEvent(user *models.User) *CandidateEvent {
	return newEvent(EventCandidateRegistered, CandidateRegisteredEvent{
		UserID:         user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Phone:          user.Phone,
		CareerGoal:     user.CareerGoal,
		ReadinessScore: user.ReadinessScore,
	})
}

// NewCandidateRemovedEvent builds the removal event.
func NewCandidateRemovedEvent(user *models.User) *CandidateEvent {
	return newEvent(EventCandidateRemoved, CandidateRemovedEvent{
		UserID: user.ID,
		Email:  user.Email,
	})
}
