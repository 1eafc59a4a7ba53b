package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/amonks/devflow/internal/app"
	"github.com/amonks/devflow/internal/listflags"
	"github.com/amonks/devflow/internal/ui"
	"github.com/amonks/devflow/task"
	"github.com/amonks/devflow/view"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks, highest priority first",
	Args:  cobra.NoArgs,
	RunE:  runTasks,
}

var (
	tasksFilters listflags.TaskFilters
	tasksJSON    bool
)

var tasksShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one task in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksShow,
}

var tasksDepsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Show blocked tasks, missing dependencies and cycles",
	Args:  cobra.NoArgs,
	RunE:  runTasksDeps,
}

var tasksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task and print the resulting list",
	Args:  cobra.NoArgs,
	RunE:  runTasksAdd,
}

var tasksStatusCmd = &cobra.Command{
	Use:   "status <id> [todo|doing|done]",
	Short: "Set a task's status, or advance it when no status is given",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runTasksStatus,
}

var tasksDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task and print the resulting list",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksDelete,
}

var (
	addTitle       string
	addDescription string
	addStatus      string
	addPriority    string
	addType        string
	addDue         string
	addStart       string
	addEstimate    float64
	addTags        []string
	addDepends     []string
)

func init() {
	rootCmd.AddCommand(tasksCmd)
	tasksCmd.AddCommand(tasksShowCmd, tasksDepsCmd, tasksAddCmd, tasksStatusCmd, tasksDeleteCmd)

	listflags.AddTaskFilters(tasksCmd, &tasksFilters)
	tasksCmd.Flags().BoolVar(&tasksJSON, "json", false, "Output JSON")

	flags := tasksAddCmd.Flags()
	flags.StringVar(&addTitle, "title", "", "Task title")
	flags.StringVar(&addDescription, "description", "", "Longer description")
	flags.StringVar(&addStatus, "status", string(task.StatusTodo), "Initial status (todo, doing, done)")
	flags.StringVar(&addPriority, "priority", string(task.PriorityMedium), "Priority (high, medium, low)")
	flags.StringVar(&addType, "type", string(task.TypeFeature), "Type (feature, bug, refactor, research)")
	flags.StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
	flags.StringVar(&addStart, "start", "", "Start date (YYYY-MM-DD)")
	flags.Float64Var(&addEstimate, "estimate", 0, "Estimated hours")
	flags.StringSliceVar(&addTags, "tags", nil, "Comma separated tags")
	flags.StringSliceVar(&addDepends, "depends", nil, "Ids of tasks this one depends on")
	_ = tasksAddCmd.MarkFlagRequired("title")
}

func runTasks(cmd *cobra.Command, args []string) error {
	q, err := tasksFilters.Query()
	if err != nil {
		return err
	}
	s, err := openSession(cmd, openOptions{})
	if err != nil {
		return err
	}
	defer s.close()

	st := s.app.Snapshot()
	tasks := view.FilterTasks(st.Tasks, q)
	if tasksJSON {
		if tasks == nil {
			tasks = []task.Task{}
		}
		return encodeJSON(s.out, tasks)
	}
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(s.out, "No tasks match.")
		return err
	}
	_, err = fmt.Fprint(s.out, formatTaskTable(tasks, s))
	return err
}

func formatTaskTable(tasks []task.Task, s *session) string {
	p := ui.NewPalette(s.color)
	builder := ui.NewTableBuilder([]string{"ID", "PRIORITY", "STATUS", "TYPE", "TITLE", "DUE", "TAGS"}, len(tasks))
	for _, t := range tasks {
		due := ui.DueLabel(t, s.now)
		if task.IsOverdue(t, s.now) {
			due = p.Warn(due)
		}
		builder.AddRow(
			t.ID,
			p.Priority(t.Priority),
			p.Status(t.Status),
			string(t.Type),
			ui.TruncateTableCell(t.Title),
			due,
			ui.TruncateTableCell(strings.Join(t.Tags, ", ")),
		)
	}
	return builder.String()
}

func runTasksShow(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, openOptions{})
	if err != nil {
		return err
	}
	defer s.close()

	st := s.app.Snapshot()
	t, ok := st.Task(args[0])
	if !ok {
		return fmt.Errorf("task %q not found", args[0])
	}
	p := ui.NewPalette(s.color)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p.Bold(t.Title))
	fmt.Fprintf(&b, "ID:        %s\n", t.ID)
	fmt.Fprintf(&b, "Status:    %s\n", p.Status(t.Status))
	fmt.Fprintf(&b, "Priority:  %s\n", p.Priority(t.Priority))
	fmt.Fprintf(&b, "Type:      %s\n", t.Type)
	fmt.Fprintf(&b, "Due:       %s\n", ui.DueLabel(t, s.now))
	fmt.Fprintf(&b, "Estimate:  %s\n", ui.FormatHours(t.EstimatedHours))
	fmt.Fprintf(&b, "Actual:    %s\n", ui.FormatHours(t.ActualHours))
	if progress, ok := view.Progress(t); ok {
		fmt.Fprintf(&b, "Progress:  %s %.0f%%\n", ui.Bar(progress*100, 20), progress*100)
	}
	if len(t.Tags) > 0 {
		fmt.Fprintf(&b, "Tags:      %s\n", strings.Join(t.Tags, ", "))
	}
	if len(t.Dependencies) > 0 {
		fmt.Fprintf(&b, "Depends:   %s\n", strings.Join(t.Dependencies, ", "))
	}
	fmt.Fprintf(&b, "Created:   %s\n", t.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Updated:   %s\n", t.UpdatedAt.Format("2006-01-02 15:04"))
	if desc := strings.TrimSpace(t.Description); desc != "" {
		b.WriteString("\n")
		b.WriteString(indent.String(wordwrap.String(desc, s.width-2), 2))
		b.WriteString("\n")
	}
	_, err = fmt.Fprint(s.out, b.String())
	return err
}

func runTasksDeps(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, openOptions{})
	if err != nil {
		return err
	}
	defer s.close()

	report := view.AnalyzeDependencies(s.app.Snapshot().Tasks)
	var b strings.Builder
	builder := ui.NewTableBuilder([]string{"ID", "TITLE", "BLOCKED BY", "MISSING", "DEPENDENTS"}, len(report.Nodes))
	for _, node := range report.Nodes {
		if len(node.Task.Dependencies) == 0 && len(node.Dependents) == 0 {
			continue
		}
		builder.AddRow(
			node.Task.ID,
			ui.TruncateTableCell(node.Task.Title),
			valueOrDash(taskIDs(node.Blockers)),
			valueOrDash(strings.Join(node.Missing, ", ")),
			valueOrDash(taskIDs(node.Dependents)),
		)
	}
	if builder.Len() == 0 {
		b.WriteString("No task dependencies.\n")
	} else {
		b.WriteString(builder.String())
	}
	fmt.Fprintf(&b, "\n%d blocked\n", len(report.Blocked))
	for _, cycle := range report.Cycles {
		fmt.Fprintf(&b, "cycle: %s\n", strings.Join(cycle, " -> "))
	}
	_, err = fmt.Fprint(s.out, b.String())
	return err
}

func taskIDs(tasks []task.Task) string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return strings.Join(ids, ", ")
}

func valueOrDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func runTasksAdd(cmd *cobra.Command, args []string) error {
	input := app.NewTask{
		Title:        addTitle,
		Description:  addDescription,
		Tags:         addTags,
		Dependencies: addDepends,
	}
	var err error
	if input.Status, err = task.ParseStatus(addStatus); err != nil {
		return err
	}
	if input.Priority, err = task.ParsePriority(addPriority); err != nil {
		return err
	}
	if input.Type, err = task.ParseType(addType); err != nil {
		return err
	}
	if input.DueDate, err = parseDayFlag("due", addDue); err != nil {
		return err
	}
	if input.StartDate, err = parseDayFlag("start", addStart); err != nil {
		return err
	}
	if cmd.Flags().Changed("estimate") {
		input.EstimatedHours = task.Hours(addEstimate)
	}

	s, err := openSession(cmd, openOptions{})
	if err != nil {
		return err
	}
	defer s.close()

	created, err := s.app.CreateTask(input)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Added task %s %q\n\n", created.ID, created.Title)
	return writeAllTasks(s)
}

func runTasksStatus(cmd *cobra.Command, args []string) error {
	var status task.Status
	if len(args) == 2 {
		var err error
		if status, err = task.ParseStatus(args[1]); err != nil {
			return err
		}
	}
	s, err := openSession(cmd, openOptions{})
	if err != nil {
		return err
	}
	defer s.close()

	var updated task.Task
	if status == "" {
		updated, err = s.app.CycleTaskStatus(args[0])
	} else {
		updated, err = s.app.SetTaskStatus(args[0], status)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s is now %s\n\n", updated.Title, updated.Status)
	return writeAllTasks(s)
}

func runTasksDelete(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, openOptions{})
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.app.DeleteTask(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Deleted task %s\n\n", args[0])
	return writeAllTasks(s)
}

// writeAllTasks prints every task in display order.
func writeAllTasks(s *session) error {
	tasks := view.FilterTasks(s.app.Snapshot().Tasks, view.Query{})
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(s.out, "No tasks.")
		return err
	}
	_, err := fmt.Fprint(s.out, formatTaskTable(tasks, s))
	return err
}

func parseDayFlag(name, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	day, err := time.Parse(task.DayLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: use YYYY-MM-DD", name, value)
	}
	return &day, nil
}
