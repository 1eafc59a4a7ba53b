package dashboardtui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amonks/devflow/growth"
	"github.com/amonks/devflow/internal/app"
	"github.com/amonks/devflow/task"
)

type formKind int

const (
	taskForm formKind = iota
	journalForm
)

type formField struct {
	label string
	input textinput.Model
}

// entryForm is a column of single-line inputs. Enter submits from any
// field.
type entryForm struct {
	kind   formKind
	title  string
	fields []formField
	focus  int
	err    string
}

func newField(label, placeholder string) formField {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = task.MaxTitleLength
	return formField{label: label, input: in}
}

func newTaskForm() *entryForm {
	f := &entryForm{kind: taskForm, title: "New task", fields: []formField{
		newField("Title", "what needs doing"),
		newField("Priority", "low, medium or high (default medium)"),
		newField("Type", "feature, bug, refactor or research"),
		newField("Due", "YYYY-MM-DD"),
		newField("Tags", "comma separated"),
	}}
	f.fields[0].input.Focus()
	return f
}

func newJournalForm() *entryForm {
	content := newField("Content", "what happened today")
	content.input.CharLimit = 0
	f := &entryForm{kind: journalForm, title: "New journal entry", fields: []formField{
		newField("Title", "headline for the day"),
		content,
		newField("Mood", "great, good, okay or bad (default good)"),
		newField("Rating", "1 to 5 (default 3)"),
		newField("Lessons", "separate with ;"),
	}}
	f.fields[0].input.Focus()
	return f
}

func (f *entryForm) value(label string) string {
	for _, field := range f.fields {
		if field.label == label {
			return strings.TrimSpace(field.input.Value())
		}
	}
	return ""
}

func (f *entryForm) move(delta int) {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *entryForm) update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *entryForm) newTask() (app.NewTask, error) {
	in := app.NewTask{
		Title: f.value("Title"),
		Tags:  strings.Split(f.value("Tags"), ","),
	}
	var err error
	if v := f.value("Priority"); v != "" {
		if in.Priority, err = task.ParsePriority(v); err != nil {
			return app.NewTask{}, err
		}
	}
	if v := f.value("Type"); v != "" {
		if in.Type, err = task.ParseType(v); err != nil {
			return app.NewTask{}, err
		}
	}
	if v := f.value("Due"); v != "" {
		due, err := time.Parse(task.DayLayout, v)
		if err != nil {
			return app.NewTask{}, fmt.Errorf("due date %q: use YYYY-MM-DD", v)
		}
		in.DueDate = &due
	}
	return in, nil
}

func (f *entryForm) newEntry() (app.NewEntry, error) {
	in := app.NewEntry{
		Title:   f.value("Title"),
		Content: f.value("Content"),
		Lessons: strings.Split(f.value("Lessons"), ";"),
	}
	var err error
	if v := f.value("Mood"); v != "" {
		if in.Mood, err = growth.ParseMood(v); err != nil {
			return app.NewEntry{}, err
		}
	}
	if v := f.value("Rating"); v != "" {
		if in.Rating, err = strconv.Atoi(v); err != nil {
			return app.NewEntry{}, fmt.Errorf("rating %q is not a number", v)
		}
	}
	return in, nil
}

func (f *entryForm) view(styles *palette, width int) string {
	var b strings.Builder
	b.WriteString(styles.label.Render(f.title))
	b.WriteString("\n\n")
	for i, field := range f.fields {
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		line := fmt.Sprintf("%s%-8s %s", marker, field.label, field.input.View())
		b.WriteString(truncateText(line, width))
		b.WriteByte('\n')
	}
	if f.err != "" {
		b.WriteByte('\n')
		b.WriteString(styles.errorText.Render(truncateText(f.err, width)))
		b.WriteByte('\n')
	}
	b.WriteString("\n")
	b.WriteString(styles.muted.Render("enter save | tab next field | esc cancel"))
	return b.String()
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.form = nil
		m.setStatus("Canceled", statusInfo)
		return m, nil
	case "tab", "down":
		m.form.move(1)
		return m, nil
	case "shift+tab", "up":
		m.form.move(-1)
		return m, nil
	case "enter":
		m.submitForm()
		return m, nil
	}
	return m, m.form.update(msg)
}

// submitForm saves the form. On failure the form stays open with the error.
func (m *model) submitForm() {
	switch m.form.kind {
	case taskForm:
		input, err := m.form.newTask()
		if err == nil {
			var created task.Task
			if created, err = m.app.CreateTask(input); err == nil {
				m.form = nil
				m.applyState(m.app.Snapshot())
				m.selectTask(created.ID)
				m.setStatus(fmt.Sprintf("Added %q", created.Title), statusInfo)
				return
			}
		}
		m.form.err = err.Error()
	case journalForm:
		input, err := m.form.newEntry()
		if err == nil {
			var entry growth.JournalEntry
			if entry, err = m.app.AddJournalEntry(input); err == nil {
				m.form = nil
				m.applyState(m.app.Snapshot())
				m.setStatus(fmt.Sprintf("Journaled %q", entry.Title), statusInfo)
				return
			}
		}
		m.form.err = err.Error()
	}
}
