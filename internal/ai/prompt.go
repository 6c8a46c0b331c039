package ai

import (
	"fmt"
	"strings"
)

// Profile defaults applied when the student leaves a field empty.
const (
	defaultTrack      = "General Technology"
	defaultGoal       = "Software Engineer"
	defaultSkillLevel = "Beginner"
	defaultHours      = 10
)

// Profile describes the student the roadmap is generated for.
type Profile struct {
	Education    string
	Interests    []string
	SkillLevel   string
	CareerGoal   string
	HoursPerWeek int
}

// Track returns the primary focus string derived from the interests list.
func (p Profile) Track() string {
	if len(p.Interests) == 0 {
		return defaultTrack
	}
	return strings.Join(p.Interests, ", ")
}

// Goal returns the career goal with the default applied.
func (p Profile) Goal() string {
	if p.CareerGoal == "" {
		return defaultGoal
	}
	return p.CareerGoal
}

func (p Profile) skillLevel() string {
	if p.SkillLevel == "" {
		return defaultSkillLevel
	}
	return p.SkillLevel
}

func (p Profile) education() string {
	if p.Education == "" {
		return "Not specified"
	}
	return p.Education
}

func (p Profile) hours() int {
	if p.HoursPerWeek <= 0 {
		return defaultHours
	}
	return p.HoursPerWeek
}

// BuildRoadmapPrompt renders the curriculum-designer prompt. The response
// structure is pinned in the prompt so Normalize can map it directly.
func BuildRoadmapPrompt(p Profile) string {
	track := p.Track()

	return fmt.Sprintf(`Act as an expert career counselor and curriculum designer. Create a detailed learning roadmap for a student who wants to master the following SPECIFIC TRACK:
- Primary Focus / Track: %s

Student Profile:
- Education: %s
- Current Skill Level: %s
- Career Goal: %s
- Available Time: %d hours/week

Output the roadmap strictly in JSON format with the following structure:
{
  "title": "%s Mastery Roadmap",
  "description": "Brief description",
  "phases": [
    {
      "phaseName": "Phase 1: Title",
      "duration": "Weeks 1-2",
      "topics": ["Topic 1", "Topic 2", "Topic 3", "Topic 4"],
      "resources": [
        {"title": "Video: Title", "url": "https://...", "type": "video"},
        {"title": "Course: Title", "url": "https://...", "type": "course"},
        {"title": "Article: Title", "url": "https://...", "type": "article"}
      ]
    }
  ],
  "projects": [
    {
      "title": "Project Name",
      "problemStatement": "Project details",
      "tools": ["Skill 1", "Skill 2"],
      "implementationGuide": "Step 1: ...\nStep 2: ...",
      "githubLink": "https://github.com/..."
    }
  ]
}
IMPORTANT:
1. Create a COMPREHENSIVE roadmap with at least 4-6 PHASES strictly focused on "%s".
2. For EACH phase, provide at least 3 distinct resources: one VIDEO (YouTube), one FREE COURSE (Coursera/EdX/Udemy/FreeCodeCamp), and one ARTICLE/DOC.
3. For EACH project, provide a step-by-step GUIDE (4-5 steps) AND a valid GitHub link (to a relevant starter repo or tutorial). The projects MUST be practical applications of "%s".
Ensure the content is practical, up-to-date, and tailored to the student's level.`,
		track, p.education(), p.skillLevel(), p.Goal(), p.hours(), track, track, track)
}

// BuildQuizPrompt renders the phase quiz prompt.
func BuildQuizPrompt(phaseName string) string {
	return fmt.Sprintf(`Create a multiple-choice quiz (MCQ) to test a student's understanding of: "%s".

Generate exactly 3 questions.
Each question must have 4 options.
Identify the correct answer index (0-3).

Output strictly in JSON format:
{
  "questions": [
    {
      "question": "Question text?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correct_index": 0
    }
  ]
}`, phaseName)
}

// BuildQuizEvalPrompt renders the reflection grading prompt.
func BuildQuizEvalPrompt(phaseName, learnings, concept string) string {
	return fmt.Sprintf(`Act as a strict but fair professor. Evaluate the following student reflection quiz for the learning phase: "%s".

Student Answers:
1. Key Learnings: %s
2. Concept Explanation: %s

Task:
- Analyze if the answers demonstrate genuine understanding or if they are gibberish/too vague.
- Assign a score from 1 to 10 based ONLY on the quality of their explanation.
- Provide short constructive feedback (max 2 sentences).

Output strictly in JSON format:
{
  "score": 7,
  "feedback": "string",
  "passed": true
}
The passed field is true when score >= 7.`, phaseName, learnings, concept)
}
