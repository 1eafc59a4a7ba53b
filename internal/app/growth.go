package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/devflow/growth"
	internalstrings "github.com/amonks/devflow/internal/strings"
	"github.com/amonks/devflow/store"
)

// NewEntry is the user input for AddJournalEntry.
type NewEntry struct {
	// Date defaults to today.
	Date       time.Time
	Title      string
	Content    string
	Mood       growth.Mood
	Skills     []string
	Lessons    []string
	Challenges []string
	Goals      []string
	// Rating defaults to growth.DefaultRating when zero.
	Rating int
}

// UnlockAchievement unlocks an achievement and records the event.
func (a *App) UnlockAchievement(id string) (growth.Achievement, error) {
	st, ok := a.Store.DispatchFunc(func(st store.State) store.Action {
		if _, found := st.Achievement(id); !found {
			return nil
		}
		return store.UnlockAchievement{ID: id}
	})
	if !ok {
		return growth.Achievement{}, fmt.Errorf("%w: %q", ErrAchievementNotFound, id)
	}
	unlocked, _ := st.Achievement(id)
	a.record(growth.Activity{
		Type:        growth.ActivityAchievementUnlocked,
		Description: fmt.Sprintf("Unlocked %q", unlocked.Title),
	})
	return unlocked, nil
}

// GainExperience adds xp to a skill. A skill_improved activity is recorded
// when the level changes.
func (a *App) GainExperience(skillID string, xp int) (growth.Skill, error) {
	if xp < 0 {
		return growth.Skill{}, fmt.Errorf("experience must not be negative, got %d", xp)
	}
	var (
		next     growth.Skill
		levelled bool
	)
	_, ok := a.Store.DispatchFunc(func(st store.State) store.Action {
		current, found := st.Skill(skillID)
		if !found {
			return nil
		}
		next, levelled = current.GainExperience(xp)
		return store.UpdateSkill{Skill: next}
	})
	if !ok {
		return growth.Skill{}, fmt.Errorf("%w: %q", ErrSkillNotFound, skillID)
	}
	if levelled {
		a.record(growth.Activity{
			Type:        growth.ActivitySkillImproved,
			Description: fmt.Sprintf("%s reached level %d", next.Name, next.Level),
			SkillID:     next.ID,
		})
	}
	return next, nil
}

// AddJournalEntry validates input and prepends it to the journal.
func (a *App) AddJournalEntry(input NewEntry) (growth.JournalEntry, error) {
	date := input.Date
	if date.IsZero() {
		y, m, d := a.now().Date()
		date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	rating := input.Rating
	if rating == 0 {
		rating = growth.DefaultRating
	}
	mood := input.Mood
	if mood == "" {
		mood = growth.MoodGood
	}
	entry := growth.JournalEntry{
		ID:         a.newID(),
		Date:       date,
		Title:      internalstrings.NormalizeWhitespace(input.Title),
		Content:    strings.TrimSpace(input.Content),
		Mood:       mood,
		Skills:     growth.CompactLines(input.Skills),
		Lessons:    growth.CompactLines(input.Lessons),
		Challenges: growth.CompactLines(input.Challenges),
		Goals:      growth.CompactLines(input.Goals),
		Rating:     rating,
	}
	if err := growth.ValidateJournalEntry(&entry); err != nil {
		return growth.JournalEntry{}, err
	}
	a.Store.Dispatch(store.AddJournalEntry{Entry: entry})
	return entry, nil
}
