package view

import (
	"math"

	"github.com/amonks/devflow/growth"
	"github.com/amonks/devflow/store"
)

// SkillSummary describes the skills shown for a category.
type SkillSummary struct {
	Skills          []growth.Skill
	LevelSum        int
	TasksCompleted  int
	AverageProgress int
}

// SummarizeSkills filters skills by category ("" or "all" keeps every
// skill) and totals the result.
func SummarizeSkills(skills []growth.Skill, category string) SkillSummary {
	var sum SkillSummary
	var progress float64
	for _, sk := range skills {
		if active(category) && sk.Category != category {
			continue
		}
		sum.Skills = append(sum.Skills, sk)
		sum.LevelSum += sk.Level
		sum.TasksCompleted += sk.TasksCompleted
		progress += sk.Progress()
	}
	if len(sum.Skills) > 0 {
		sum.AverageProgress = int(math.Round(progress / float64(len(sum.Skills)) * 100))
	}
	return sum
}

// SkillCategories returns the distinct skill categories in first-seen order.
func SkillCategories(skills []growth.Skill) []string {
	seen := make(map[string]bool)
	var out []string
	for _, sk := range skills {
		if seen[sk.Category] {
			continue
		}
		seen[sk.Category] = true
		out = append(out, sk.Category)
	}
	return out
}

// AllAchievements returns the stored achievements followed by the
// decorative catalog.
func AllAchievements(stored []growth.Achievement) []growth.Achievement {
	extended := store.ExtendedAchievements()
	out := make([]growth.Achievement, 0, len(stored)+len(extended))
	out = append(out, stored...)
	return append(out, extended...)
}

// AchievementSummary describes the achievement board.
type AchievementSummary struct {
	// Achievements are those matching the requested category.
	Achievements []growth.Achievement

	// The remaining fields cover the whole list regardless of category.
	Total           int
	Unlocked        int
	AverageProgress int
	// UnlockedByRarity counts unlocked achievements; a missing rarity
	// counts as common.
	UnlockedByRarity map[growth.Rarity]int
}

// SummarizeAchievements filters list by category ("" or "all" keeps every
// achievement) and computes board-wide totals.
func SummarizeAchievements(list []growth.Achievement, category string) AchievementSummary {
	sum := AchievementSummary{
		Total:            len(list),
		UnlockedByRarity: make(map[growth.Rarity]int, 4),
	}
	for _, r := range growth.ValidRarities() {
		sum.UnlockedByRarity[r] = 0
	}

	var progress float64
	for _, a := range list {
		if !active(category) || string(a.Category) == category {
			sum.Achievements = append(sum.Achievements, a)
		}
		progress += a.Ratio()
		if a.IsUnlocked {
			sum.Unlocked++
			sum.UnlockedByRarity[a.Rarity.OrCommon()]++
		}
	}
	if len(list) > 0 {
		sum.AverageProgress = int(math.Round(progress / float64(len(list)) * 100))
	}
	return sum
}

// JournalSummary is the growth journal's footer.
type JournalSummary struct {
	Entries  int
	Positive int
	// AverageRating is rounded to one decimal place.
	AverageRating float64
	Lessons       int
}

// SummarizeJournal totals the journal entries.
func SummarizeJournal(entries []growth.JournalEntry) JournalSummary {
	sum := JournalSummary{Entries: len(entries)}
	var rating int
	for _, e := range entries {
		if e.Mood.IsPositive() {
			sum.Positive++
		}
		rating += e.Rating
		sum.Lessons += len(e.Lessons)
	}
	if len(entries) > 0 {
		sum.AverageRating = math.Round(float64(rating)/float64(len(entries))*10) / 10
	}
	return sum
}

// RecentActivities returns at most n entries from the front of the log.
func RecentActivities(activities []growth.Activity, n int) []growth.Activity {
	if n < 0 {
		n = 0
	}
	if n > len(activities) {
		n = len(activities)
	}
	return activities[:n:n]
}
