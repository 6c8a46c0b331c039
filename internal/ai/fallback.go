package ai

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/mr-pathfinder/roadmap-service/internal/models"
)

// FallbackRoadmap builds a roadmap without the AI provider. Known tracks
// get a curated catalog; everything else gets a generic template built
// around the track name, so generation never fails outright.
func FallbackRoadmap(p Profile) *NormalizedRoadmap {
	track := p.Track()

	switch track {
	case "Artificial Intelligence":
		return aiTrackRoadmap()
	case "Web Development":
		return webTrackRoadmap()
	default:
		return genericRoadmap(track, p.Goal())
	}
}

func aiTrackRoadmap() *NormalizedRoadmap {
	return &NormalizedRoadmap{
		Title:       "AI Mastery Roadmap",
		Description: "A comprehensive guide to becoming an AI Engineer.",
		Phases: []models.Phase{
			{
				ID:       uuid.NewString(),
				Name:     "Phase 1: Python & Math for AI",
				Duration: "Weeks 1-4",
				Topics:   []string{"Python Syntax", "Linear Algebra", "Calculus", "Probability"},
				Resources: []models.Resource{
					{Title: "Video: Python for Data Science", URL: "https://www.youtube.com/watch?v=LHBE6Q9XlzI", Type: models.ResourceVideo},
					{Title: "Course: AI for Everyone (Coursera)", URL: "https://www.coursera.org/learn/ai-for-everyone", Type: models.ResourceCourse},
					{Title: "Article: Math for ML", URL: "https://mml-book.github.io/", Type: models.ResourceArticle},
				},
			},
			{
				ID:       uuid.NewString(),
				Name:     "Phase 2: Machine Learning Algorithms",
				Duration: "Weeks 5-8",
				Topics:   []string{"Regression", "Classification", "Clustering", "Dimensionality Reduction"},
				Resources: []models.Resource{
					{Title: "Video: ML Algorithms", URL: "https://www.youtube.com/watch?v=Gv9_4yMHFhI", Type: models.ResourceVideo},
					{Title: "Course: ML by Andrew Ng", URL: "https://www.coursera.org/specializations/machine-learning-introduction", Type: models.ResourceCourse},
					{Title: "Article: Scikit-Learn Docs", URL: "https://scikit-learn.org/stable/", Type: models.ResourceArticle},
				},
			},
		},
		Projects: []models.Project{
			{
				ID:          uuid.NewString(),
				Title:       "House Price Predictor",
				Description: "Predict housing prices using regression.",
				Tools:       []string{"Regression", "Pandas", "Scikit-Learn"},
				Guide:       "Step 1: EDA\nStep 2: Feature Engineering\nStep 3: Train Model\nStep 4: Evaluate",
				RepoURL:     "https://github.com/ageron/handson-ml2",
			},
		},
	}
}

func webTrackRoadmap() *NormalizedRoadmap {
	return &NormalizedRoadmap{
		Title:       "Web Development Mastery Roadmap",
		Description: "A practical path from static pages to full stack applications.",
		Phases: []models.Phase{
			{
				ID:       uuid.NewString(),
				Name:     "Phase 1: HTML, CSS & JavaScript",
				Duration: "Weeks 1-4",
				Topics:   []string{"HTML Semantics", "CSS Layout", "JavaScript Basics", "DOM Manipulation"},
				Resources: []models.Resource{
					{Title: "Video: HTML & CSS Crash Course", URL: "https://www.youtube.com/watch?v=G3e-cpL7ofc", Type: models.ResourceVideo},
					{Title: "Course: Responsive Web Design (freeCodeCamp)", URL: "https://www.freecodecamp.org/learn/2022/responsive-web-design/", Type: models.ResourceCourse},
					{Title: "Article: MDN Learn Web Development", URL: "https://developer.mozilla.org/en-US/docs/Learn", Type: models.ResourceArticle},
				},
			},
			{
				ID:       uuid.NewString(),
				Name:     "Phase 2: Frontend Frameworks",
				Duration: "Weeks 5-8",
				Topics:   []string{"React Components", "State Management", "Routing", "API Integration"},
				Resources: []models.Resource{
					{Title: "Video: React Full Course", URL: "https://www.youtube.com/watch?v=bMknfKXIFA8", Type: models.ResourceVideo},
					{Title: "Course: React Basics (Coursera)", URL: "https://www.coursera.org/learn/react-basics", Type: models.ResourceCourse},
					{Title: "Article: React Docs", URL: "https://react.dev/learn", Type: models.ResourceArticle},
				},
			},
		},
		Projects: []models.Project{
			{
				ID:          uuid.NewString(),
				Title:       "Portfolio Website",
				Description: "Build and deploy a personal portfolio with responsive design.",
				Tools:       []string{"HTML", "CSS", "JavaScript", "React"},
				Guide:       "Step 1: Wireframe\nStep 2: Build Layout\nStep 3: Add Interactivity\nStep 4: Deploy",
				RepoURL:     "https://github.com/topics/portfolio-website",
			},
		},
	}
}

func genericRoadmap(track, goal string) *NormalizedRoadmap {
	title := track
	if goal != "" {
		title = goal
	}
	slug := strings.ReplaceAll(strings.ToLower(track), " ", "-")

	return &NormalizedRoadmap{
		Title:       fmt.Sprintf("%s Roadmap", title),
		Description: "A customized learning path for your career goals.",
		Phases: []models.Phase{
			{
				ID:       uuid.NewString(),
				Name:     "Phase 1: Foundations",
				Duration: "Weeks 1-4",
				Topics:   []string{"Core Concepts", "Tools Setup", "Basic Syntax", "Hello World"},
				Resources: []models.Resource{
					{Title: "Video: Intro to " + track, URL: "https://www.youtube.com/results?search_query=" + url.QueryEscape("Intro to "+track), Type: models.ResourceVideo},
					{Title: "Course: Learn " + track, URL: "https://www.udemy.com/topic/" + slug, Type: models.ResourceCourse},
					{Title: "Article: Getting Started", URL: "https://medium.com/tag/" + slug, Type: models.ResourceArticle},
				},
			},
			{
				ID:       uuid.NewString(),
				Name:     "Phase 2: Intermediate Skills",
				Duration: "Weeks 5-8",
				Topics:   []string{"Advanced Syntax", "Frameworks", "Best Practices", "Testing"},
				Resources: []models.Resource{
					{Title: "Video: Advanced " + track, URL: "https://www.youtube.com/results?search_query=" + url.QueryEscape("Advanced "+track), Type: models.ResourceVideo},
					{Title: "Course: Intermediate " + track, URL: "https://www.coursera.org/search?query=" + url.QueryEscape(track), Type: models.ResourceCourse},
					{Title: "Article: Best Practices", URL: "https://dev.to/t/" + strings.ReplaceAll(slug, "-", ""), Type: models.ResourceArticle},
				},
			},
		},
		Projects: []models.Project{
			{
				ID:          uuid.NewString(),
				Title:       "Starter Project",
				Description: fmt.Sprintf("Build a simple %s application to practice fundamentals.", track),
				Tools:       []string{"Basics", "Logic"},
				Guide:       "Step 1: Setup\nStep 2: Build Core\nStep 3: Test\nStep 4: Run",
				RepoURL:     "https://github.com/topics/" + slug,
			},
		},
	}
}

// FallbackQuiz is served when the provider cannot generate one.
func FallbackQuiz() *models.Quiz {
	return &models.Quiz{
		Questions: []models.QuizQuestion{
			{
				Question:     "What is the primary goal of this phase?",
				Options:      []string{"To learn the basics", "To master advanced topics", "To skip to the end", "None of the above"},
				CorrectIndex: 0,
			},
			{
				Question:     "Which concept is most important?",
				Options:      []string{"Concept A", "Concept B", "Concept C", "Concept D"},
				CorrectIndex: 1,
			},
			{
				Question:     "How do you apply this knowledge?",
				Options:      []string{"By reading", "By practicing", "By sleeping", "By eating"},
				CorrectIndex: 1,
			},
		},
	}
}
