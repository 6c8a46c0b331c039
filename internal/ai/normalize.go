package ai

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/mr-pathfinder/roadmap-service/internal/models"
)

// ErrEmptyRoadmap means the payload carried no phases, which makes it
// useless regardless of how well-formed the JSON was.
var ErrEmptyRoadmap = errors.New("roadmap payload has no phases")

// NormalizedRoadmap is the storage-ready form of a generated roadmap.
type NormalizedRoadmap struct {
	Title       string
	Description string
	Phases      []models.Phase
	Projects    []models.Project
}

// Normalize maps a raw payload onto the storage model, resolving field
// aliases and assigning item IDs for progress tracking.
func Normalize(payload *RoadmapPayload) (*NormalizedRoadmap, error) {
	if len(payload.Phases) == 0 {
		return nil, ErrEmptyRoadmap
	}

	phases := make([]models.Phase, 0, len(payload.Phases))
	for _, p := range payload.Phases {
		resources := make([]models.Resource, 0, len(p.Resources))
		for _, r := range p.Resources {
			resources = append(resources, models.Resource{
				Title: r.ResolvedTitle(),
				URL:   r.URL,
				Type:  r.Type,
			})
		}

		phases = append(phases, models.Phase{
			ID:        uuid.NewString(),
			Name:      p.ResolvedName(),
			Duration:  p.ResolvedDuration(),
			Topics:    p.Topics,
			Resources: resources,
		})
	}

	projects := make([]models.Project, 0, len(payload.Projects))
	for _, p := range payload.Projects {
		projects = append(projects, models.Project{
			ID:          uuid.NewString(),
			Title:       p.ResolvedTitle(),
			Description: p.ResolvedDescription(),
			Tools:       p.ResolvedTools(),
			Guide:       resolveGuide(p),
			RepoURL:     p.GithubLink,
		})
	}

	return &NormalizedRoadmap{
		Title:       payload.Title,
		Description: payload.Description,
		Phases:      phases,
		Projects:    projects,
	}, nil
}

// resolveGuide flattens the guide into one string. Arrays of steps are
// joined with newlines to match the string form.
func resolveGuide(p ProjectPayload) string {
	if len(p.Guide) > 0 {
		var steps []string
		if err := json.Unmarshal(p.Guide, &steps); err == nil {
			return strings.Join(steps, "\n")
		}
		var s string
		if err := json.Unmarshal(p.Guide, &s); err == nil && s != "" {
			return s
		}
	}
	return p.ImplementationGuide
}

// ParseRoadmap extracts and decodes a roadmap payload from model output.
func ParseRoadmap(text string) (*NormalizedRoadmap, error) {
	jsonStr, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	var payload RoadmapPayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, err
	}

	return Normalize(&payload)
}
