package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amonks/devflow/growth"
	"github.com/amonks/devflow/internal/app"
	"github.com/amonks/devflow/internal/markdown"
	"github.com/amonks/devflow/internal/ui"
	"github.com/amonks/devflow/view"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Show skill levels and experience",
	Args:  cobra.NoArgs,
	RunE:  runSkills,
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show the achievement board",
	Args:  cobra.NoArgs,
	RunE:  runAchievements,
}

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show growth journal entries",
	Args:  cobra.NoArgs,
	RunE:  runJournal,
}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show the recent activity log",
	Args:  cobra.NoArgs,
	RunE:  runActivity,
}

var skillsGainCmd = &cobra.Command{
	Use:   "gain <id> <xp>",
	Short: "Add experience to a skill",
	Args:  cobra.ExactArgs(2),
	RunE:  runSkillsGain,
}

var achievementsUnlockCmd = &cobra.Command{
	Use:   "unlock <id>",
	Short: "Unlock an achievement",
	Args:  cobra.ExactArgs(1),
	RunE:  runAchievementsUnlock,
}

var journalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a journal entry and print the journal",
	Args:  cobra.NoArgs,
	RunE:  runJournalAdd,
}

var (
	entryDate       string
	entryTitle      string
	entryContent    string
	entryMood       string
	entryRating     int
	entrySkills     []string
	entryLessons    []string
	entryChallenges []string
	entryGoals      []string
)

var (
	skillsCategory       string
	achievementsCategory string
	activityLimit        int
)

const defaultActivityLimit = 10

func init() {
	rootCmd.AddCommand(skillsCmd, achievementsCmd, journalCmd, activityCmd)
	skillsCmd.AddCommand(skillsGainCmd)
	achievementsCmd.AddCommand(achievementsUnlockCmd)
	journalCmd.AddCommand(journalAddCmd)

	skillsCmd.Flags().StringVar(&skillsCategory, "category", "all", "Only show skills in this category")
	achievementsCmd.Flags().StringVar(&achievementsCategory, "category", "all", "Only show achievements in this category")
	activityCmd.Flags().IntVar(&activityLimit, "limit", defaultActivityLimit, "Maximum number of entries to show")

	flags := journalAddCmd.Flags()
	flags.StringVar(&entryDate, "date", "", "Entry date (YYYY-MM-DD, default today)")
	flags.StringVar(&entryTitle, "title", "", "Entry title")
	flags.StringVar(&entryContent, "content", "", "Entry body (markdown)")
	flags.StringVar(&entryMood, "mood", string(growth.MoodGood), "Mood (great, good, okay, bad)")
	flags.IntVar(&entryRating, "rating", growth.DefaultRating, "Rating from 1 to 5")
	flags.StringArrayVar(&entrySkills, "skill", nil, "Skill practiced (repeatable)")
	flags.StringArrayVar(&entryLessons, "lesson", nil, "Lesson learned (repeatable)")
	flags.StringArrayVar(&entryChallenges, "challenge", nil, "Challenge faced (repeatable)")
	flags.StringArrayVar(&entryGoals, "goal", nil, "Goal for next time (repeatable)")
	_ = journalAddCmd.MarkFlagRequired("title")
	_ = journalAddCmd.MarkFlagRequired("content")
}

func runSkills(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, openOptions{})
	if err != nil {
		return err
	}
	defer s.close()

	skills := s.app.Snapshot().Skills
	if !validChoice(skillsCategory, view.SkillCategories(skills)) {
		return fmt.Errorf("unknown skill category %q (valid: all, %s)", skillsCategory, strings.Join(view.SkillCategories(skills), ", "))
	}
	return writeSkills(s, view.SummarizeSkills(skills, skillsCategory))
}

func writeSkills(s *session, sum view.SkillSummary) error {
	if len(sum.Skills) == 0 {
		_, err := fmt.Fprintln(s.out, "No skills.")
		return err
	}

	builder := ui.NewTableBuilder([]string{"ID", "SKILL", "CATEGORY", "LEVEL", "EXPERIENCE", "TASKS"}, len(sum.Skills))
	for _, sk := range sum.Skills {
		progress := sk.Progress() * 100
		builder.AddRow(
			sk.ID,
			sk.Name,
			sk.Category,
			fmt.Sprintf("%d/%d", sk.Level, growth.MaxSkillLevel),
			fmt.Sprintf("%s %d/%d", ui.Bar(progress, 10), sk.Experience, sk.MaxExperience),
			fmt.Sprintf("%d", sk.TasksCompleted),
		)
	}
	_, err := fmt.Fprintf(s.out, "%s\nLevels: %d  Tasks completed: %d  Average progress: %d%%\n",
		builder.String(), sum.LevelSum, sum.TasksCompleted, sum.AverageProgress)
	return err
}

func runSkillsGain(cmd *cobra.Command, args []string) error {
	xp, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("experience %q is not a number", args[1])
	}
	s, err := openSession(cmd, openOptions{})
	if err != nil {
		return err
	}
	defer s.close()

	skill, err := s.app.GainExperience(args[0], xp)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s is level %d with %d/%d experience\n\n", skill.Name, skill.Level, skill.Experience, skill.MaxExperience)
	return writeSkills(s, view.SummarizeSkills(s.app.Snapshot().Skills, ""))
}

func runAchievements(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, openOptions{})
	if err != nil {
		return err
	}
	defer s.close()

	categories := make([]string, 0, 4)
	for _, c := range growth.ValidAchievementCategories() {
		categories = append(categories, string(c))
	}
	if !validChoice(achievementsCategory, categories) {
		return fmt.Errorf("unknown achievement category %q (valid: all, %s)", achievementsCategory, strings.Join(categories, ", "))
	}

	return writeAchievements(s, achievementsCategory)
}

func writeAchievements(s *session, category string) error {
	sum := view.SummarizeAchievements(view.AllAchievements(s.app.Snapshot().Achievements), category)
	p := ui.NewPalette(s.color)

	builder := ui.NewTableBuilder([]string{"ID", "", "ACHIEVEMENT", "RARITY", "PROGRESS", "UNLOCKED"}, len(sum.Achievements))
	for _, a := range sum.Achievements {
		unlocked := "-"
		if a.IsUnlocked && a.UnlockedAt != nil {
			unlocked = a.UnlockedAt.Format("2006-01-02")
		}
		title := a.Title
		if a.IsUnlocked {
			title = p.Bold(title)
		}
		builder.AddRow(
			a.ID,
			a.Icon,
			title,
			string(a.Rarity.OrCommon()),
			fmt.Sprintf("%d/%d", a.Progress, a.MaxProgress),
			unlocked,
		)
	}

	var b strings.Builder
	b.WriteString(builder.String())
	fmt.Fprintf(&b, "\nUnlocked %d/%d  Average progress: %d%%\n", sum.Unlocked, sum.Total, sum.AverageProgress)
	counts := make([]string, 0, len(growth.ValidRarities()))
	for _, r := range growth.ValidRarities() {
		counts = append(counts, fmt.Sprintf("%s %d", r, sum.UnlockedByRarity[r]))
	}
	fmt.Fprintf(&b, "By rarity: %s\n", strings.Join(counts, ", "))
	_, err := fmt.Fprint(s.out, b.String())
	return err
}

func runAchievementsUnlock(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, openOptions{})
	if err != nil {
		return err
	}
	defer s.close()

	unlocked, err := s.app.UnlockAchievement(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Unlocked %s %s\n\n", unlocked.Icon, unlocked.Title)
	return writeAchievements(s, "")
}

func runJournal(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, openOptions{})
	if err != nil {
		return err
	}
	defer s.close()
	return writeJournal(s)
}

func runJournalAdd(cmd *cobra.Command, args []string) error {
	input := app.NewEntry{
		Title:      entryTitle,
		Content:    entryContent,
		Rating:     entryRating,
		Skills:     entrySkills,
		Lessons:    entryLessons,
		Challenges: entryChallenges,
		Goals:      entryGoals,
	}
	var err error
	if input.Mood, err = growth.ParseMood(entryMood); err != nil {
		return err
	}
	date, err := parseDayFlag("date", entryDate)
	if err != nil {
		return err
	}
	if date != nil {
		input.Date = *date
	}

	s, err := openSession(cmd, openOptions{})
	if err != nil {
		return err
	}
	defer s.close()

	if _, err := s.app.AddJournalEntry(input); err != nil {
		return err
	}
	return writeJournal(s)
}

func writeJournal(s *session) error {
	st := s.app.Snapshot()
	if len(st.Journal) == 0 {
		_, err := fmt.Fprintln(s.out, "No journal entries.")
		return err
	}

	style := markdown.StyleFor(s.color, string(st.Theme))
	p := ui.NewPalette(s.color)
	var b strings.Builder
	for i, e := range st.Journal {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %s  (%s, %d/5)\n", e.Date.Format("2006-01-02"), p.Bold(e.Title), e.Mood, e.Rating)
		if content := markdown.Render(style, s.width, 2, e.Content); content != "" {
			b.WriteString(content + "\n")
		}
		writeList(&b, "Skills", e.Skills)
		writeList(&b, "Lessons", e.Lessons)
		writeList(&b, "Challenges", e.Challenges)
		writeList(&b, "Goals", e.Goals)
	}

	sum := view.SummarizeJournal(st.Journal)
	fmt.Fprintf(&b, "\n%d entries, %d positive, average rating %.1f, %d lessons\n",
		sum.Entries, sum.Positive, sum.AverageRating, sum.Lessons)
	_, err := fmt.Fprint(s.out, b.String())
	return err
}

func writeList(b *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s:\n", label)
	for _, v := range values {
		fmt.Fprintf(b, "    - %s\n", v)
	}
}

func runActivity(cmd *cobra.Command, args []string) error {
	if activityLimit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}
	s, err := openSession(cmd, openOptions{})
	if err != nil {
		return err
	}
	defer s.close()

	entries := view.RecentActivities(s.app.Snapshot().Activities, activityLimit)
	if len(entries) == 0 {
		_, err := fmt.Fprintln(s.out, "No activity.")
		return err
	}

	builder := ui.NewTableBuilder([]string{"WHEN", "TYPE", "DESCRIPTION"}, len(entries))
	for _, a := range entries {
		builder.AddRow(ui.FormatTimeAgo(a.Timestamp, s.now), string(a.Type), ui.TruncateTableCell(a.Description))
	}
	_, err = fmt.Fprint(s.out, builder.String())
	return err
}

// validChoice reports whether value is "all" or one of valid.
func validChoice(value string, valid []string) bool {
	if value == "" || strings.EqualFold(value, "all") {
		return true
	}
	for _, v := range valid {
		if v == value {
			return true
		}
	}
	return false
}
