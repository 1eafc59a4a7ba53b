package dashboardtui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/amonks/devflow/internal/ui"
	"github.com/amonks/devflow/task"
	"github.com/amonks/devflow/view"
)

type taskItem struct {
	task task.Task
	now  time.Time
}

func (item taskItem) FilterValue() string {
	return item.task.Title
}

type taskItemDelegate struct {
	styles *palette
}

func (d taskItemDelegate) Height() int                             { return 1 }
func (d taskItemDelegate) Spacing() int                            { return 0 }
func (d taskItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d taskItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(taskItem)
	if !ok {
		return
	}

	line := formatTaskItem(item, m.Width())
	style := d.styles.normal
	if index == m.Index() {
		style = d.styles.selected
	} else if item.task.Status == task.StatusDone {
		style = d.styles.muted
	}
	fmt.Fprint(w, style.Render(line))
}

func formatTaskItem(item taskItem, width int) string {
	t := item.task
	title := strings.TrimSpace(t.Title)
	if title == "" {
		title = "(untitled)"
	}
	line := fmt.Sprintf("%s %s %s  (%s, %s)", statusMarks[t.Status], priorityMarks[t.Priority], title, t.Type, ui.DueLabel(t, item.now))
	return truncateText(line, width)
}

func taskItems(tasks []task.Task, now time.Time) []list.Item {
	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskItem{task: t, now: now})
	}
	return items
}

func renderTaskDetail(t task.Task, all []task.Task, now time.Time, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", t.Title)
	fields := [][2]string{
		{"Status", string(t.Status)},
		{"Priority", string(t.Priority)},
		{"Type", string(t.Type)},
		{"Due", ui.DueLabel(t, now)},
		{"Estimate", ui.FormatHours(t.EstimatedHours)},
		{"Actual", ui.FormatHours(t.ActualHours)},
		{"Tags", valueOrDash(strings.Join(t.Tags, ", "))},
	}
	if progress, ok := view.Progress(t); ok {
		fields = append(fields, [2]string{"Progress", fmt.Sprintf("%s %.0f%%", ui.Bar(progress*100, 10), progress*100)})
	}
	for _, f := range fields {
		fmt.Fprintf(&b, "%-9s %s\n", f[0]+":", f[1])
	}

	if len(t.Dependencies) > 0 {
		report := view.AnalyzeDependencies(all)
		for _, node := range report.Nodes {
			if node.Task.ID != t.ID {
				continue
			}
			b.WriteString("\nDepends on:\n")
			for _, dep := range t.Dependencies {
				mark := "done"
				for _, blocker := range node.Blockers {
					if blocker.ID == dep {
						mark = "blocking"
					}
				}
				for _, missing := range node.Missing {
					if missing == dep {
						mark = "missing"
					}
				}
				fmt.Fprintf(&b, "  %s (%s)\n", dep, mark)
			}
		}
	}

	if desc := strings.TrimSpace(t.Description); desc != "" {
		b.WriteString("\n")
		b.WriteString(wrap(desc, width))
		b.WriteString("\n")
	}
	return b.String()
}

func truncateText(value string, width int) string {
	if width <= 0 {
		return value
	}
	return runewidth.Truncate(value, width, "...")
}

func valueOrDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
