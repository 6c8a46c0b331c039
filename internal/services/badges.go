package services

import (
	"time"

	"github.com/mr-pathfinder/roadmap-service/internal/models"
)

// BadgeRule awards a badge when Earned reports true for the user's current
// state. Rules are evaluated in order and each badge is granted once.
type BadgeRule struct {
	Name   string
	Icon   string
	Earned func(u *models.User) bool
}

// BadgeCatalog is the full award table. Order matters: it is the order
// badges appear on a profile when several are earned at once.
var BadgeCatalog = []BadgeRule{
	{
		Name:   "First Step",
		Icon:   "🚀",
		Earned: func(u *models.User) bool { return u.ReadinessScore > 50 },
	},
	{
		Name:   "Fast Learner",
		Icon:   "⚡",
		Earned: func(u *models.User) bool { return u.ReadinessScore >= 60 },
	},
	{
		Name:   "Committed",
		Icon:   "🔥",
		Earned: func(u *models.User) bool { return u.Streak >= 5 },
	},
	{
		Name:   "Achiever",
		Icon:   "🏆",
		Earned: func(u *models.User) bool { return u.ReadinessScore >= 75 },
	},
	{
		Name:   "Job Ready",
		Icon:   "💼",
		Earned: func(u *models.User) bool { return u.ReadinessScore >= 90 },
	},
}

// EvaluateBadges appends newly earned badges to the user. Idempotent:
// already-held badges are never duplicated or removed.
func EvaluateBadges(u *models.User, now time.Time) []models.Badge {
	var awarded []models.Badge
	for _, rule := range BadgeCatalog {
		if u.HasBadge(rule.Name) {
			continue
		}
		if rule.Earned(u) {
			badge := models.Badge{Name: rule.Name, Icon: rule.Icon, EarnedAt: now}
			u.Badges = append(u.Badges, badge)
			awarded = append(awarded, badge)
		}
	}
	return awarded
}
