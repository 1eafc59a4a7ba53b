package growth

import "time"

// MaxActivities is the number of activity entries retained in the log.
const MaxActivities = 50

// ActivityType describes what an activity entry records.
type ActivityType string

const (
	ActivityTaskCreated         ActivityType = "task_created"
	ActivityTaskUpdated         ActivityType = "task_updated"
	ActivityTaskCompleted       ActivityType = "task_completed"
	ActivitySkillImproved       ActivityType = "skill_improved"
	ActivityAchievementUnlocked ActivityType = "achievement_unlocked"
)

// ValidActivityTypes returns all activity type values.
func ValidActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityTaskCreated,
		ActivityTaskUpdated,
		ActivityTaskCompleted,
		ActivitySkillImproved,
		ActivityAchievementUnlocked,
	}
}

// IsValid returns true if the activity type is a known value.
func (t ActivityType) IsValid() bool {
	for _, valid := range ValidActivityTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// Activity is an append-only log entry.
type Activity struct {
	ID          string       `json:"id" yaml:"id"`
	Type        ActivityType `json:"type" yaml:"type"`
	Description string       `json:"description" yaml:"description"`
	Timestamp   time.Time    `json:"timestamp" yaml:"timestamp"`
	TaskID      string       `json:"taskId,omitempty" yaml:"taskId,omitempty"`
	SkillID     string       `json:"skillId,omitempty" yaml:"skillId,omitempty"`
}

// PrependActivity returns a new log with a first, keeping at most
// MaxActivities entries. The input slice is not modified.
func PrependActivity(log []Activity, a Activity) []Activity {
	keep := len(log)
	if keep > MaxActivities-1 {
		keep = MaxActivities - 1
	}
	out := make([]Activity, 0, keep+1)
	out = append(out, a)
	return append(out, log[:keep]...)
}
