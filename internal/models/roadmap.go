package models

import (
	"time"

	"gorm.io/datatypes"
)

// Resource categories used by both the AI payload and the fallback catalog.
const (
	ResourceVideo   = "video"
	ResourceCourse  = "course"
	ResourceArticle = "article"
)

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

// Phase is a time-boxed curriculum unit inside a roadmap.
type Phase struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Duration  string     `json:"duration"`
	Topics    []string   `json:"topics"`
	Resources []Resource `json:"resources"`
	Completed bool       `json:"completed"`
}

// Project is a practical deliverable. Completing one requires a submission
// link as proof of work.
type Project struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Tools          []string `json:"tools"`
	Guide          string   `json:"guide"`
	RepoURL        string   `json:"repo_url"`
	SubmissionLink string   `json:"submission_link,omitempty"`
	Completed      bool     `json:"completed"`
}

// Roadmap is owned by exactly one user. Phases and projects are stored as
// JSON documents; progress toggles rewrite the whole row, which keeps the
// update a single atomic write.
type Roadmap struct {
	ID          string                       `json:"id" gorm:"primaryKey;size:36"`
	UserID      string                       `json:"user_id" gorm:"not null;size:36;index"`
	Title       string                       `json:"title" gorm:"not null;size:200"`
	Description string                       `json:"description" gorm:"type:text"`
	Goal        string                       `json:"goal" gorm:"size:200"`
	Phases      datatypes.JSONSlice[Phase]   `json:"phases"`
	Projects    datatypes.JSONSlice[Project] `json:"projects"`
	Completed   bool                         `json:"completed" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}

// FindPhase returns a pointer into the phases slice, or nil.
func (r *Roadmap) FindPhase(id string) *Phase {
	for i := range r.Phases {
		if r.Phases[i].ID == id {
			return &r.Phases[i]
		}
	}
	return nil
}

// FindProject returns a pointer into the projects slice, or nil.
func (r *Roadmap) FindProject(id string) *Project {
	for i := range r.Projects {
		if r.Projects[i].ID == id {
			return &r.Projects[i]
		}
	}
	return nil
}
