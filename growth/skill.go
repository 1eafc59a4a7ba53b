// Package growth holds the gamification side of the dashboard: skills,
// achievements, the activity log and the growth journal.
package growth

// MaxSkillLevel is the highest level a skill can reach.
const MaxSkillLevel = 5

// Skill is a named competency tracked per category.
type Skill struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Level          int    `json:"level" yaml:"level"`
	Category       string `json:"category" yaml:"category"`
	TasksCompleted int    `json:"tasksCompleted" yaml:"tasksCompleted"`
	Experience     int    `json:"experience" yaml:"experience"`
	MaxExperience  int    `json:"maxExperience" yaml:"maxExperience"`
}

// Progress returns experience / maxExperience, or 0 when maxExperience is 0.
// The result is not clamped.
func (s Skill) Progress() float64 {
	if s.MaxExperience == 0 {
		return 0
	}
	return float64(s.Experience) / float64(s.MaxExperience)
}

// GainExperience returns a copy of s with xp added. Each time experience
// reaches maxExperience the level rises by one and the remainder carries
// over; at MaxSkillLevel experience is capped at maxExperience. The second
// result reports whether the level changed.
func (s Skill) GainExperience(xp int) (Skill, bool) {
	out := s
	if xp <= 0 {
		return out, false
	}
	out.Experience += xp
	leveled := false
	for out.MaxExperience > 0 && out.Experience >= out.MaxExperience {
		if out.Level >= MaxSkillLevel {
			out.Experience = out.MaxExperience
			break
		}
		out.Experience -= out.MaxExperience
		out.Level++
		leveled = true
	}
	return out, leveled
}
