package ai

import "encoding/json"

// The payload types accept the field aliases models actually produce.
// Each accessor resolves the primary name first, then the alias.

type RoadmapPayload struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Phases      []PhasePayload   `json:"phases"`
	Projects    []ProjectPayload `json:"projects"`
}

type ResourcePayload struct {
	Title string `json:"title"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

func (r ResourcePayload) ResolvedTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

type PhasePayload struct {
	PhaseName string            `json:"phaseName"`
	Name      string            `json:"name"`
	Duration  string            `json:"duration"`
	Weeks     string            `json:"weeks"`
	Topics    []string          `json:"topics"`
	Resources []ResourcePayload `json:"resources"`
}

func (p PhasePayload) ResolvedName() string {
	if p.PhaseName != "" {
		return p.PhaseName
	}
	return p.Name
}

func (p PhasePayload) ResolvedDuration() string {
	if p.Duration != "" {
		return p.Duration
	}
	return p.Weeks
}

type ProjectPayload struct {
	Title            string   `json:"title"`
	Name             string   `json:"name"`
	ProblemStatement string   `json:"problemStatement"`
	Description      string   `json:"description"`
	Tools            []string `json:"tools"`
	Skills           []string `json:"skills"`
	// Guide may arrive as a string or as an array of steps.
	Guide               json.RawMessage `json:"guide"`
	ImplementationGuide string          `json:"implementationGuide"`
	GithubLink          string          `json:"githubLink"`
}

func (p ProjectPayload) ResolvedTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Name
}

func (p ProjectPayload) ResolvedDescription() string {
	if p.ProblemStatement != "" {
		return p.ProblemStatement
	}
	return p.Description
}

func (p ProjectPayload) ResolvedTools() []string {
	if len(p.Tools) > 0 {
		return p.Tools
	}
	return p.Skills
}
