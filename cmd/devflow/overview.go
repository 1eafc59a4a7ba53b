package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/amonks/devflow/internal/ui"
	"github.com/amonks/devflow/task"
	"github.com/amonks/devflow/view"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show headline task, focus and growth numbers",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show tasks by due date on a month grid",
	Args:  cobra.NoArgs,
	RunE:  runCalendar,
}

var (
	calendarMonth string
	calendarDay   string
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Show task counts by status, priority and type",
	Args:  cobra.NoArgs,
	RunE:  runCharts,
}

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Show estimated and actual hours",
	Args:  cobra.NoArgs,
	RunE:  runTime,
}

const chartBarWidth = 20

func init() {
	rootCmd.AddCommand(statsCmd, calendarCmd, chartsCmd, timeCmd)
	calendarCmd.Flags().StringVar(&calendarMonth, "month", "", "Month to show (YYYY-MM, default current)")
	calendarCmd.Flags().StringVar(&calendarDay, "day", "", "List the tasks due on one day (YYYY-MM-DD) instead of the grid")
	calendarCmd.MarkFlagsMutuallyExclusive("month", "day")
}

func runStats(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, openOptions{})
	if err != nil {
		return err
	}
	defer s.close()

	st := s.app.Snapshot()
	stats := view.ComputeStats(st, s.now)
	rows := [][]string{
		{"Tasks", fmt.Sprintf("%d", stats.Total)},
		{"Todo / doing / done", fmt.Sprintf("%d / %d / %d", stats.Todo, stats.Doing, stats.Done)},
		{"Completion", fmt.Sprintf("%d%%", stats.CompletionRate)},
		{"High priority open", fmt.Sprintf("%d", stats.HighPriorityOpen)},
		{"Due this week", fmt.Sprintf("%d", stats.DueThisWeek)},
		{"Pomodoros today", fmt.Sprintf("%d", stats.PomodorosToday)},
		{"Achievements", fmt.Sprintf("%d/%d", stats.AchievementsUnlocked, stats.AchievementsTotal)},
		{"Experience", fmt.Sprintf("%d/%d", stats.TotalExperience, stats.TotalMaxExperience)},
		{"Skill progress", fmt.Sprintf("%.0f%%", stats.AverageSkillProgress*100)},
	}
	_, err = fmt.Fprint(s.out, ui.FormatTable([]string{"METRIC", "VALUE"}, rows))
	return err
}

func runCalendar(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, openOptions{})
	if err != nil {
		return err
	}
	defer s.close()

	if calendarDay != "" {
		day, err := time.Parse(task.DayLayout, calendarDay)
		if err != nil {
			return fmt.Errorf("invalid --day %q: use YYYY-MM-DD", calendarDay)
		}
		return writeDueOn(s, day)
	}

	year, month := s.now.Year(), s.now.Month()
	if calendarMonth != "" {
		parsed, err := time.Parse("2006-01", calendarMonth)
		if err != nil {
			return fmt.Errorf("invalid --month %q: use YYYY-MM", calendarMonth)
		}
		year, month = parsed.Year(), parsed.Month()
	}

	grid := view.BuildMonth(s.app.Snapshot().Tasks, year, month)
	p := ui.NewPalette(s.color)
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", grid.Month, grid.Year)
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")
	for _, week := range grid.Weeks() {
		for _, day := range week {
			switch {
			case day == nil:
				b.WriteString("    ")
			case len(day.Tasks) > 0:
				b.WriteString(p.Bold(fmt.Sprintf("%3d*", day.Date.Day())))
			default:
				fmt.Fprintf(&b, "%3d ", day.Date.Day())
			}
		}
		b.WriteString("\n")
	}

	due := false
	for _, day := range grid.Days {
		for _, t := range day.Tasks {
			if !due {
				b.WriteString("\n")
				due = true
			}
			fmt.Fprintf(&b, "%s  %s  %s\n", day.Key, p.Priority(t.Priority), t.Title)
		}
	}
	_, err = fmt.Fprint(s.out, b.String())
	return err
}

func writeDueOn(s *session, day time.Time) error {
	tasks := view.TasksDueOn(s.app.Snapshot().Tasks, day)
	if len(tasks) == 0 {
		_, err := fmt.Fprintf(s.out, "Nothing due on %s.\n", task.DayKey(day))
		return err
	}
	_, err := fmt.Fprint(s.out, formatTaskTable(tasks, s))
	return err
}

func runCharts(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, openOptions{})
	if err != nil {
		return err
	}
	defer s.close()

	tasks := s.app.Snapshot().Tasks
	sections := []struct {
		title  string
		slices []view.Slice
	}{
		{"By status", view.StatusSeries(tasks)},
		{"By priority", view.PrioritySeries(tasks)},
		{"By type", view.TypeSeries(tasks)},
	}
	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(section.title + "\n")
		for _, slice := range section.slices {
			fmt.Fprintf(&b, "  %-9s %s %d (%d%%)\n", slice.Label, ui.Bar(float64(slice.Percent), chartBarWidth), slice.Count, slice.Percent)
		}
	}
	_, err = fmt.Fprint(s.out, b.String())
	return err
}

func runTime(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, openOptions{})
	if err != nil {
		return err
	}
	defer s.close()

	tt := view.ComputeTimeTracking(s.app.Snapshot().Tasks)
	var b strings.Builder
	fmt.Fprintf(&b, "Estimated: %gh\n", tt.EstimatedHours)
	fmt.Fprintf(&b, "Actual:    %gh\n", tt.ActualHours)
	fmt.Fprintf(&b, "Accuracy:  %d%% (completed tasks: %gh estimated, %gh actual)\n",
		tt.Accuracy, tt.CompletedEstimatedHours, tt.CompletedActualHours)

	if len(tt.InProgress) > 0 {
		b.WriteString("\n")
		builder := ui.NewTableBuilder([]string{"ID", "TITLE", "ESTIMATE", "ACTUAL", "PROGRESS"}, len(tt.InProgress))
		for _, t := range tt.InProgress {
			progress := "-"
			if ratio, ok := view.Progress(t); ok {
				progress = fmt.Sprintf("%s %.0f%%", ui.Bar(ratio*100, 10), ratio*100)
			}
			builder.AddRow(t.ID, ui.TruncateTableCell(t.Title), ui.FormatHours(t.EstimatedHours), ui.FormatHours(t.ActualHours), progress)
		}
		b.WriteString(builder.String())
	}
	_, err = fmt.Fprint(s.out, b.String())
	return err
}
