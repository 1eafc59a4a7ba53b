// Package dashboardtui is the interactive terminal dashboard.
package dashboardtui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amonks/devflow/internal/app"
	"github.com/amonks/devflow/store"
	"github.com/amonks/devflow/task"
	"github.com/amonks/devflow/view"
)

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

type stateMsg store.State

type model struct {
	ctx     context.Context
	app     *app.App
	state   store.State
	updates <-chan store.State
	styles  *palette

	width       int
	height      int
	taskList    list.Model
	search      textinput.Model
	searching   bool
	form        *entryForm
	showHelp    bool
	status      string
	statusLevel statusLevel
}

// Run shows the dashboard until the user quits or ctx is canceled.
func Run(ctx context.Context, a *app.App) error {
	if a == nil {
		return fmt.Errorf("app is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	updates, unsubscribe := a.Store.SubscribeLatest()
	defer unsubscribe()

	m := newModel(ctx, a, updates)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func newModel(ctx context.Context, a *app.App, updates <-chan store.State) model {
	st := a.Snapshot()
	styles := newPalette(st.Theme)

	taskList := list.New(nil, taskItemDelegate{styles: &styles}, 0, 0)
	taskList.Title = "Tasks"
	taskList.SetShowStatusBar(false)
	taskList.SetFilteringEnabled(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)

	search := textinput.New()
	search.Placeholder = "search title, description, tags"
	search.Prompt = "/ "
	search.SetValue(st.SearchQuery)

	m := model{
		ctx:      ctx,
		app:      a,
		updates:  updates,
		styles:   &styles,
		taskList: taskList,
		search:   search,
	}
	m.applyState(st)
	return m
}

func (m model) Init() tea.Cmd {
	return m.waitForState()
}

func (m model) waitForState() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	ctx, updates := m.ctx, m.updates
	return func() tea.Msg {
		select {
		case st := <-updates:
			return stateMsg(st)
		case <-ctx.Done():
			return nil
		}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case stateMsg:
		m.applyState(store.State(msg))
		return m, m.waitForState()
	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.state.SearchQuery {
		m.dispatch(store.SetSearchQuery{Query: m.search.Value()})
	}
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
	case "1":
		m.dispatch(store.SetView{View: store.ViewDashboard})
	case "2":
		m.dispatch(store.SetView{View: store.ViewPlanning})
	case "3":
		m.dispatch(store.SetView{View: store.ViewGrowth})
	case "tab", "]":
		m.dispatch(store.SetView{View: nextView(m.state.View, 1)})
	case "shift+tab", "[":
		m.dispatch(store.SetView{View: nextView(m.state.View, -1)})
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case " ", "space", "x":
		if item, ok := m.currentTask(); ok {
			if updated, err := m.app.CycleTaskStatus(item.ID); err != nil {
				m.setStatus(err.Error(), statusError)
			} else {
				m.setStatus(fmt.Sprintf("%s is now %s", updated.Title, updated.Status), statusInfo)
			}
			m.applyState(m.app.Snapshot())
		}
	case "n":
		m.form = newTaskForm()
		return m, textinput.Blink
	case "J":
		m.form = newJournalForm()
		return m, textinput.Blink
	case "D":
		if item, ok := m.currentTask(); ok {
			if err := m.app.DeleteTask(item.ID); err != nil {
				m.setStatus(err.Error(), statusError)
			} else {
				m.setStatus(fmt.Sprintf("Deleted %q", item.Title), statusInfo)
			}
			m.applyState(m.app.Snapshot())
		}
	case "s":
		m.dispatch(store.SetFilterStatus{Value: cycleFilter(m.state.Filters.Status, enumValues(task.ValidStatuses()))})
	case "p":
		m.dispatch(store.SetFilterPriority{Value: cycleFilter(m.state.Filters.Priority, enumValues(task.ValidPriorities()))})
	case "y":
		m.dispatch(store.SetFilterType{Value: cycleFilter(m.state.Filters.Type, enumValues(task.ValidTypes()))})
	case "c":
		m.search.SetValue("")
		m.dispatch(store.ClearFilters{})
	case "t":
		m.dispatch(store.ToggleTheme{})
	case "P":
		if m.app.TogglePomodoro(m.ctx) {
			m.setStatus("Pomodoro started", statusInfo)
		} else {
			m.setStatus("Pomodoro stopped", statusInfo)
		}
		m.applyState(m.app.Snapshot())
	case "l":
		return m, m.requestLearning()
	case "a":
		return m, m.requestPlan()
	default:
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) requestLearning() tea.Cmd {
	ctx, a := m.ctx, m.app
	return func() tea.Msg {
		a.RequestLearning(ctx, "")
		return nil
	}
}

func (m model) requestPlan() tea.Cmd {
	ctx, a := m.ctx, m.app
	return func() tea.Msg {
		a.RequestPlan(ctx)
		return nil
	}
}

// dispatch applies a and refreshes the model immediately; the subscription
// delivers the same state again later, which is harmless.
func (m *model) dispatch(a store.Action) {
	m.applyState(m.app.Store.Dispatch(a))
}

func (m *model) applyState(st store.State) {
	themeChanged := st.Theme != m.state.Theme
	m.state = st
	if themeChanged {
		*m.styles = newPalette(st.Theme)
	}

	selectedID := ""
	if item, ok := m.currentTask(); ok {
		selectedID = item.ID
	}
	filtered := view.FilterTasks(st.Tasks, view.QueryFromState(st))
	m.taskList.SetItems(taskItems(filtered, m.app.Now()))
	m.taskList.Title = fmt.Sprintf("Tasks %d/%d", len(filtered), len(st.Tasks))
	m.selectTask(selectedID)
}

func (m *model) selectTask(id string) {
	for i, item := range m.taskList.Items() {
		if item.(taskItem).task.ID == id {
			m.taskList.Select(i)
			return
		}
	}
}

func (m model) currentTask() (task.Task, bool) {
	item, ok := m.taskList.SelectedItem().(taskItem)
	if !ok {
		return task.Task{}, false
	}
	return item.task, true
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

func (m *model) resize() {
	left, _ := splitWidths(m.width)
	m.taskList.SetSize(left-4, max(m.contentHeight()-2, 1))
	m.search.Width = max(m.width-4, 1)
}

func (m model) contentHeight() int {
	return max(m.height-5, 1)
}

func splitWidths(width int) (int, int) {
	left := width / 2
	if left < 30 {
		left = 30
	}
	if left > width-20 {
		left = width / 2
	}
	right := width - left
	if right < 20 {
		right = 20
		left = width - right
	}
	return left, right
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading dashboard..."
	}
	if m.showHelp {
		return m.styles.pane.Width(max(m.width-2, 1)).Render(helpText)
	}

	now := m.app.Now()
	left, right := splitWidths(m.width)
	height := m.contentHeight()

	var leftContent, rightContent string
	switch m.state.View {
	case store.ViewPlanning:
		leftContent = m.taskList.View()
		rightContent = renderPlanning(m.state, now, right-4)
	case store.ViewGrowth:
		leftContent = renderGrowth(m.state, left-4)
		rightContent = renderActivity(m.state.Activities, now, right-4)
	default:
		leftContent = m.taskList.View()
		if t, ok := m.currentTask(); ok {
			rightContent = renderTaskDetail(t, m.state.Tasks, now, right-4)
		} else {
			rightContent = "No tasks match the current filters."
		}
		rightContent += "\n" + renderActivity(m.state.Activities, now, right-4)
	}
	if m.form != nil {
		rightContent = m.form.view(m.styles, right-4)
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.paneActive.Width(left-2).Height(height).Render(leftContent),
		m.styles.pane.Width(right-2).Height(height).Render(rightContent),
	)

	lines := []string{
		m.renderTabs(),
		renderStatsLine(m.state, now) + "   " + renderPomodoro(m.state.Pomodoro, m.styles),
		m.renderFilterLine(),
		panes,
		m.renderStatusLine(),
	}
	return strings.Join(lines, "\n")
}

func (m model) renderTabs() string {
	labels := map[store.View]string{
		store.ViewDashboard: "[1] Dashboard",
		store.ViewPlanning:  "[2] Planning",
		store.ViewGrowth:    "[3] Growth",
	}
	parts := make([]string, 0, len(labels))
	for _, v := range store.ValidViews() {
		style := m.styles.tabInactive
		if v == m.state.View {
			style = m.styles.tabActive
		}
		parts = append(parts, style.Render(labels[v]))
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	hint := m.styles.muted.Render("Press ? for help")
	spacer := strings.Repeat(" ", max(m.width-lipgloss.Width(content)-lipgloss.Width(hint), 1))
	return m.styles.tabBar.Width(m.width).Render(content + spacer + hint)
}

func (m model) renderFilterLine() string {
	if m.searching {
		return m.search.View()
	}
	line := renderFilters(m.state)
	if !view.HasActiveFilters(m.state) {
		return m.styles.muted.Render(line)
	}
	return line
}

func (m model) renderStatusLine() string {
	text := strings.TrimSpace(m.status)
	if text == "" {
		return m.styles.helpBar.Render(truncateText(helpSummary, m.width))
	}
	style := m.styles.muted
	switch m.statusLevel {
	case statusError:
		style = m.styles.errorText
	case statusInfo:
		style = m.styles.okText
	}
	return style.Render(truncateText(text, m.width))
}

const helpSummary = "Keys: up/down move | space cycle status | n new task | J journal | / search | s/p/y filters | P pomodoro | ? help | q quit"

const helpText = `Keys

  1 2 3, tab     switch between dashboard, planning and growth
  up/down, j/k   move through the task list
  space, x       cycle the selected task: todo, doing, done
  n              add a task
  D              delete the selected task
  J              write a journal entry
  /              search titles, descriptions and tags
  s p y          cycle the status, priority and type filters
  c              clear search and filters
  t              toggle light and dark theme
  P              start or stop a Pomodoro session
  l              ask for learning recommendations
  a              ask for planning suggestions
  q              quit

Press any key to close.`

func nextView(current store.View, delta int) store.View {
	views := store.ValidViews()
	idx := 0
	for i, v := range views {
		if v == current {
			idx = i
		}
	}
	idx = (idx + delta + len(views)) % len(views)
	return views[idx]
}

// cycleFilter moves a selector through "all" followed by values.
func cycleFilter(current string, values []string) string {
	options := append([]string{store.FilterAll}, values...)
	for i, option := range options {
		if option == current {
			return options[(i+1)%len(options)]
		}
	}
	return store.FilterAll
}

func enumValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
