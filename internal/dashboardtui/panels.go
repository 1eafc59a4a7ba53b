package dashboardtui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"

	"github.com/amonks/devflow/growth"
	"github.com/amonks/devflow/internal/ui"
	"github.com/amonks/devflow/store"
	"github.com/amonks/devflow/view"
)

const recentActivityCount = 5

func wrap(value string, width int) string {
	if width <= 0 {
		return value
	}
	return wordwrap.String(value, width)
}

func renderStatsLine(st store.State, now time.Time) string {
	s := view.ComputeStats(st, now)
	return fmt.Sprintf("%d tasks | %d todo | %d doing | %d done (%d%%) | %d high open | %d due this week",
		s.Total, s.Todo, s.Doing, s.Done, s.CompletionRate, s.HighPriorityOpen, s.DueThisWeek)
}

func renderPomodoro(p store.Pomodoro, styles *palette) string {
	label := "Pomodoro " + ui.FormatCountdown(p.TimeRemaining)
	style := styles.timer
	if p.Active {
		label += " running"
		style = styles.timerActive
	}
	return style.Render(label) + styles.muted.Render(fmt.Sprintf("  sessions today: %d", p.SessionsCompleted))
}

func renderFilters(st store.State) string {
	f := st.Filters
	parts := []string{
		"status=" + f.Status,
		"priority=" + f.Priority,
		"type=" + f.Type,
	}
	if st.SearchQuery != "" {
		parts = append(parts, strconv.Quote(st.SearchQuery))
	}
	return "Filters: " + strings.Join(parts, " ")
}

func renderActivity(activities []growth.Activity, now time.Time, width int) string {
	var b strings.Builder
	b.WriteString("Recent activity\n")
	recent := view.RecentActivities(activities, recentActivityCount)
	if len(recent) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, a := range recent {
		line := fmt.Sprintf("  %-8s %s", ui.FormatTimeAgo(a.Timestamp, now), a.Description)
		b.WriteString(truncateText(line, width))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderPlanning(st store.State, now time.Time, width int) string {
	var b strings.Builder

	month := view.BuildMonth(st.Tasks, now.Year(), now.Month())
	fmt.Fprintf(&b, "%s %d\n", month.Month, month.Year)
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")
	for _, week := range month.Weeks() {
		for _, day := range week {
			if day == nil {
				b.WriteString("    ")
				continue
			}
			mark := " "
			if len(day.Tasks) > 0 {
				mark = "*"
			}
			fmt.Fprintf(&b, "%3d%s", day.Date.Day(), mark)
		}
		b.WriteByte('\n')
	}

	if today := view.TasksDueOn(st.Tasks, now); len(today) > 0 {
		b.WriteString("\nDue today\n")
		for _, t := range today {
			b.WriteString(truncateText("  "+t.Title, width))
			b.WriteByte('\n')
		}
	}

	tt := view.ComputeTimeTracking(st.Tasks)
	fmt.Fprintf(&b, "\nTime: %.1fh estimated, %.1fh spent, accuracy %d%%, %d in progress\n",
		tt.EstimatedHours, tt.ActualHours, tt.Accuracy, len(tt.InProgress))

	report := view.AnalyzeDependencies(st.Tasks)
	if len(report.Blocked) > 0 || len(report.Cycles) > 0 {
		b.WriteString("\nDependencies\n")
		for _, t := range report.Blocked {
			b.WriteString(truncateText("  blocked: "+t.Title, width))
			b.WriteByte('\n')
		}
		for _, cycle := range report.Cycles {
			b.WriteString("  cycle: " + strings.Join(cycle, " -> ") + "\n")
		}
	}

	b.WriteString("\nPlan suggestions (a to request)\n")
	switch p := st.Planner; {
	case p.Loading:
		b.WriteString("  Analyzing tasks...\n")
	case p.Err != "":
		b.WriteString(wrap(p.Err, width) + "\n")
	case len(p.Items) == 0:
		b.WriteString("  (none yet)\n")
	default:
		for _, item := range p.Items {
			b.WriteString(truncateText(fmt.Sprintf("  [%s] %s", valueOrDash(item.Impact), item.Title), width))
			b.WriteByte('\n')
			if item.Description != "" {
				b.WriteString(wrap("    "+item.Description, width) + "\n")
			}
		}
	}
	return b.String()
}

func renderGrowth(st store.State, width int) string {
	var b strings.Builder

	skills := view.SummarizeSkills(st.Skills, "")
	fmt.Fprintf(&b, "Skills (avg progress %d%%)\n", skills.AverageProgress)
	for _, sk := range skills.Skills {
		line := fmt.Sprintf("  %-22s L%d %s %d/%d", sk.Name, sk.Level, ui.Bar(sk.Progress()*100, 10), sk.Experience, sk.MaxExperience)
		b.WriteString(truncateText(line, width))
		b.WriteByte('\n')
	}

	achievements := view.SummarizeAchievements(view.AllAchievements(st.Achievements), "")
	fmt.Fprintf(&b, "\nAchievements %d/%d unlocked\n", achievements.Unlocked, achievements.Total)
	for _, a := range achievements.Achievements {
		mark := "  "
		if a.IsUnlocked {
			mark = "* "
		}
		line := fmt.Sprintf("  %s%s (%d/%d)", mark, a.Title, a.Progress, a.MaxProgress)
		b.WriteString(truncateText(line, width))
		b.WriteByte('\n')
	}

	journal := view.SummarizeJournal(st.Journal)
	fmt.Fprintf(&b, "\nJournal: %d entries, avg rating %.1f, %d lessons\n", journal.Entries, journal.AverageRating, journal.Lessons)
	if len(st.Journal) > 0 {
		latest := st.Journal[0]
		b.WriteString(truncateText(fmt.Sprintf("  %s  %s (%s)", latest.Date.Format("2006-01-02"), latest.Title, latest.Mood), width))
		b.WriteByte('\n')
	}

	b.WriteString("\nLearning (l to request)\n")
	switch p := st.Learning; {
	case p.Loading:
		b.WriteString(wrap("  Asking: "+p.Question, width) + "\n")
	case p.Err != "":
		b.WriteString(wrap(p.Err, width) + "\n")
	case len(p.Items) == 0:
		b.WriteString("  (none yet)\n")
	default:
		b.WriteString(wrap("  Q: "+p.Question, width) + "\n")
		for _, item := range p.Items {
			line := fmt.Sprintf("  %s - %s", item.Title, valueOrDash(item.Provider))
			b.WriteString(truncateText(line, width))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
