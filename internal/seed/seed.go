// Package seed holds the demo candidate dataset loaded on first start so
// the HR directory is never empty.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/mr-pathfinder/roadmap-service/internal/models"
)

// DemoPassword is the plaintext password shared by every seeded account.
const DemoPassword = "password123"

// DemoHREmail identifies the seeded HR login.
const DemoHREmail = "hr@demo.example.com"

type candidate struct {
	name       string
	email      string
	education  string
	interests  []string
	careerGoal string
	score      int
	streak     int
	phone      string
	skillLevel models.SkillLevel
}

var candidates = []candidate{
	{"Zoya", "zoya@example.com", "Undergraduate", []string{"Web dev"}, "Full stack engineer", 21, 1, "9876543211", models.SkillBeginner},
	{"Om Shukla", "om11@example.com", "12th Pass", []string{"AI"}, "Cybersecurity", 25, 2, "9123456790", models.SkillBeginner},
	{"Ranjan Baria", "ranjan.baria@example.com", "Diploma", []string{"AI"}, "AI engineer", 20, 1, "9988776656", models.SkillBeginner},
	{"Jiya Sharma", "jiya@example.com", "Graduate", []string{"AWS"}, "Full stack engineer", 15, 1, "9876500011", models.SkillBeginner},
	{"Tanisha Shah", "tanisha@example.com", "Undergraduate", []string{"AI"}, "AI engineer", 10, 1, "9876500012", models.SkillBeginner},
	{"Kalpana", "kalpana@example.com", "12th Pass", []string{"Web design"}, "Web designer", 21, 1, "9876500013", models.SkillBeginner},
	{"Richa", "richa@example.com", "Diploma", []string{"AI"}, "AI engineer", 5, 1, "9876500014", models.SkillBeginner},
	{"Shashi Tiwari", "shashi.t@example.com", "Undergraduate", []string{"Web development"}, "Web developer", 9, 1, "9876500015", models.SkillBeginner},
	{"Aditya Sharma", "aditya.s@example.com", "BTech", []string{"Web Development", "HTML", "CSS"}, "Frontend Developer", 35, 2, "9876543210", models.SkillBeginner},
	{"Priya Singh", "priya.s@example.com", "Diploma", []string{"Web Development", "JavaScript", "HTML"}, "Web Developer", 28, 1, "9123456789", models.SkillBeginner},
	{"Raj Patel", "raj.p@example.com", "BTech", []string{"Java", "Programming", "Backend"}, "Java Developer", 32, 2, "9988776655", models.SkillBeginner},
	{"Kavya Nair", "kavya.n@example.com", "Diploma", []string{"Python", "Data Analysis", "SQL"}, "Data Analyst", 31, 1, "9876500001", models.SkillBeginner},
	{"Arjun Kumar", "arjun.k@example.com", "BTech", []string{"Database", "MySQL", "SQL"}, "Database Developer", 29, 2, "9876500002", models.SkillBeginner},
	{"Sneha Desai", "sneha.d@example.com", "Diploma", []string{"UI Design", "Web Design", "Graphics"}, "Web Designer", 25, 1, "9876500003", models.SkillBeginner},
	{"Vikram Reddy", "vikram.r@example.com", "BTech", []string{"Python", "Automation", "Linux"}, "System Administrator", 30, 2, "9876500004", models.SkillBeginner},
	{"Anjali Verma", "anjali.v@example.com", "Diploma", []string{"JavaScript", "Frontend", "Bootstrap"}, "Frontend Developer", 27, 1, "9876500005", models.SkillBeginner},
	{"Rohan Joshi", "rohan.j@example.com", "BTech", []string{"HTML", "CSS", "JavaScript"}, "Web Developer", 33, 2, "9876500006", models.SkillBeginner},
	{"Zara Khan", "zara.k@example.com", "Diploma", []string{"Mobile App", "Android", "Java"}, "Android Developer", 26, 1, "9876500007", models.SkillBeginner},
	{"Nikhil Gupta", "nikhil.g@example.com", "BTech", []string{"Networking", "IT Support", "Servers"}, "IT Support Executive", 24, 1, "9876500008", models.SkillBeginner},
	{"Divya Iyer", "divya.i@example.com", "Diploma", []string{"Business Analysis", "Excel", "Documentation"}, "Business Analyst", 28, 2, "9876500009", models.SkillBeginner},
	{"Sarthak Verma", "sarthak.v@example.com", "BTech", []string{"Testing", "QA", "Bug Testing"}, "QA Engineer", 30, 1, "9876500010", models.SkillBeginner},
	{"Rahul Sharma", "rahul.demo@example.com", "BTech", []string{"Machine Learning", "Python", "Data Analysis"}, "AI Researcher", 85, 12, "9876543220", models.SkillAdvanced},
	{"Jane Smith", "jane@example.com", "BTech", []string{"Web Development", "React", "Node.js"}, "Full Stack Developer", 72, 8, "9123456788", models.SkillIntermediate},
	{"Priya Patel", "priya.p@example.com", "Diploma", []string{"Data Science", "R", "Statistics"}, "Data Scientist", 92, 20, "9876500016", models.SkillAdvanced},
	{"Vikram Singh", "vikram.s@example.com", "BTech", []string{"Cybersecurity", "Network Security", "Ethical Hacking"}, "Security Analyst", 88, 18, "9876500017", models.SkillAdvanced},
	{"Karthik Iyer", "karthik.i@example.com", "BTech", []string{"Blockchain", "Solidity", "Web3"}, "Blockchain Developer", 82, 10, "9876500018", models.SkillAdvanced},
	{"Neha Verma", "neha.v@example.com", "Diploma", []string{"DevOps", "CI/CD", "Kubernetes"}, "DevOps Engineer", 75, 9, "9876500019", models.SkillIntermediate},
	{"Arjun Reddy", "arjun.r@example.com", "BTech", []string{"Robotics", "ROS", "C++"}, "Robotics Engineer", 89, 14, "9876500020", models.SkillAdvanced},
	{"Anjali Rao", "anjali.r@example.com", "BTech", []string{"Cloud Computing", "AWS", "Docker"}, "Cloud Architect", 70, 7, "9876500021", models.SkillIntermediate},
}

// Candidates builds the demo student accounts. The password hash is
// computed once by the caller and shared, which keeps seeding fast.
func Candidates(passwordHash string) []models.User {
	dob := time.Date(1995, time.January, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	users := make([]models.User, 0, len(candidates))
	for _, c := range candidates {
		users = append(users, models.User{
			ID:             uuid.NewString(),
			Name:           c.name,
			Email:          c.email,
			PasswordHash:   passwordHash,
			Phone:          c.phone,
			Role:           models.RoleStudent,
			Education:      c.education,
			Interests:      append([]string(nil), c.interests...),
			SkillLevel:     c.skillLevel,
			CareerGoal:     c.careerGoal,
			DateOfBirth:    &dob,
			Consent:        true,
			ReadinessScore: c.score,
			Streak:         c.streak,
			LastActivity:   now,
		})
	}
	return users
}

// HRUser builds the demo HR account.
func HRUser(passwordHash string) models.User {
	return models.User{
		ID:           uuid.NewString(),
		Name:         "Admin HR",
		Email:        DemoHREmail,
		PasswordHash: passwordHash,
		Phone:        "9999999999",
		Role:         models.RoleHR,
		Consent:      true,
		LastActivity: time.Now(),
	}
}
