package growth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	internalstrings "github.com/amonks/devflow/internal/strings"
	"github.com/amonks/devflow/internal/validation"
)

// Mood records how a journal day felt.
type Mood string

const (
	MoodGreat Mood = "great"
	MoodGood  Mood = "good"
	MoodOkay  Mood = "okay"
	MoodBad   Mood = "bad"
)

// ValidMoods returns all mood values, best first.
func ValidMoods() []Mood {
	return []Mood{MoodGreat, MoodGood, MoodOkay, MoodBad}
}

// IsValid returns true if the mood is a known value.
func (m Mood) IsValid() bool {
	for _, valid := range ValidMoods() {
		if m == valid {
			return true
		}
	}
	return false
}

// ParseMood resolves user input to a mood.
func ParseMood(input string) (Mood, error) {
	value := Mood(internalstrings.NormalizeLowerTrimSpace(input))
	if !value.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidMood, Mood(input), ValidMoods())
	}
	return value, nil
}

// IsPositive reports whether the mood is great or good.
func (m Mood) IsPositive() bool {
	return m == MoodGreat || m == MoodGood
}

// Rating bounds for journal entries.
const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 3
)

var (
	// ErrEmptyJournalTitle is returned when an entry has no title.
	ErrEmptyJournalTitle = errors.New("journal title cannot be empty")
	// ErrEmptyJournalContent is returned when an entry has no content.
	ErrEmptyJournalContent = errors.New("journal content cannot be empty")
	// ErrInvalidMood is returned for an unknown mood.
	ErrInvalidMood = errors.New("invalid mood")
	// ErrInvalidRating is returned when a rating is out of range.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// JournalEntry is one day of the growth journal.
type JournalEntry struct {
	ID         string    `json:"id" yaml:"id"`
	Date       time.Time `json:"date" yaml:"date"`
	Title      string    `json:"title" yaml:"title"`
	Content    string    `json:"content" yaml:"content"`
	Mood       Mood      `json:"mood" yaml:"mood"`
	Skills     []string  `json:"skills" yaml:"skills"`
	Lessons    []string  `json:"lessons" yaml:"lessons"`
	Challenges []string  `json:"challenges" yaml:"challenges"`
	Goals      []string  `json:"goals" yaml:"goals"`
	Rating     int       `json:"rating" yaml:"rating"`
}

// ValidateJournalEntry checks that an entry can be added to the journal.
func ValidateJournalEntry(e *JournalEntry) error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyJournalTitle
	}
	if strings.TrimSpace(e.Content) == "" {
		return ErrEmptyJournalContent
	}
	if !e.Mood.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidMood, e.Mood, ValidMoods())
	}
	if e.Rating < MinRating || e.Rating > MaxRating {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, e.Rating)
	}
	return nil
}

// CompactLines drops blank entries and trims the rest.
func CompactLines(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
