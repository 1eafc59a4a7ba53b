package growth

import "time"

// Rarity classifies how hard an achievement is to earn.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// ValidRarities returns all rarity values, rarest last.
func ValidRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

// OrCommon returns r, or RarityCommon when r is empty.
func (r Rarity) OrCommon() Rarity {
	if r == "" {
		return RarityCommon
	}
	return r
}

// AchievementCategory groups achievements for display filtering.
type AchievementCategory string

const (
	CategoryProductivity AchievementCategory = "productivity"
	CategoryLearning     AchievementCategory = "learning"
	CategoryConsistency  AchievementCategory = "consistency"
	CategoryQuality      AchievementCategory = "quality"
)

// ValidAchievementCategories returns all achievement categories.
func ValidAchievementCategories() []AchievementCategory {
	return []AchievementCategory{CategoryProductivity, CategoryLearning, CategoryConsistency, CategoryQuality}
}

// Achievement is a gamification milestone.
type Achievement struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`

	// UnlockedAt is set exactly when IsUnlocked becomes true.
	UnlockedAt *time.Time `json:"unlockedAt,omitempty" yaml:"unlockedAt,omitempty"`

	Progress    int  `json:"progress" yaml:"progress"`
	MaxProgress int  `json:"maxProgress" yaml:"maxProgress"`
	IsUnlocked  bool `json:"isUnlocked" yaml:"isUnlocked"`

	Rarity   Rarity              `json:"rarity,omitempty" yaml:"rarity,omitempty"`
	Category AchievementCategory `json:"category,omitempty" yaml:"category,omitempty"`
	Reward   string              `json:"reward,omitempty" yaml:"reward,omitempty"`
}

// Ratio returns progress / maxProgress, or 0 when maxProgress is 0.
func (a Achievement) Ratio() float64 {
	if a.MaxProgress == 0 {
		return 0
	}
	return float64(a.Progress) / float64(a.MaxProgress)
}

// Unlock returns a copy of a marked unlocked at the given time. Unlocking an
// achievement that is already unlocked stamps the new time again.
func (a Achievement) Unlock(at time.Time) Achievement {
	out := a
	out.IsUnlocked = true
	out.UnlockedAt = &at
	return out
}
