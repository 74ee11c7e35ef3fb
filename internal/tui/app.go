// Package tui provides the interactive Bubble Tea dashboard for spendtrack.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"spendtrack/internal/auth"
	"spendtrack/internal/config"
	"spendtrack/internal/model"
	"spendtrack/internal/service"
	"spendtrack/internal/tui/components"
	"spendtrack/internal/tui/theme"
	"spendtrack/internal/viewmodel"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Messages forwarded from the viewmodel subscriptions through the sub
// channel.
type (
	expensesMsg struct{ Expenses []model.Expense }
	summaryMsg  struct{ Summary model.Summary }
	sessionMsg  struct{ Session auth.Session }
	busyMsg     struct{ Busy bool }
	errMsg      struct{ Message string }
)

// actionMsg reports a completed user action for the toast line.
type actionMsg struct {
	Note string
	Err  error
}

// loginFailedMsg is a rejected credential pair (not an I/O failure).
type loginFailedMsg struct{ Message string }

type toastClearMsg struct{}

// App is the root Bubble Tea model.
type App struct {
	listVM   *viewmodel.ListViewModel
	dashVM   *viewmodel.DashboardViewModel
	loginVM  *viewmodel.LoginViewModel
	editorVM *viewmodel.EditorViewModel

	cfg config.Config

	// Data published by the viewmodels
	expenses []model.Expense
	summary  model.Summary
	session  auth.Session
	authed   bool // login screen passed (restored session, login, or guest)
	restored bool // session restore attempt finished

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	expState expensesState

	// Forms (huh), at most one active at a time. The value structs are
	// pointers so the form's field bindings survive model copies.
	loginForm *huh.Form
	loginVals *loginValues
	loginErr  string

	expForm *huh.Form
	expVals *expenseValues
	editID  int64 // 0 while adding

	filterForm *huh.Form
	filterVals *filterValues

	// Busy spinner + toast line
	spinner  spinner.Model
	busy     bool
	toast    string
	toastErr bool

	// Viewmodel notifications are forwarded here by the subscriptions
	// registered in NewApp.
	sub chan tea.Msg
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5

	tabExpenses  = 0
	tabDashboard = 1
	tabSettings  = 2

	toastDuration = 3 * time.Second
)

// NewApp creates the TUI model and wires the viewmodel subscriptions into
// the message channel.
func NewApp(svc *service.ExpenseService, gate *auth.Authenticator, sessions *auth.SessionManager, cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	a := App{
		listVM:   viewmodel.NewListViewModel(svc),
		dashVM:   viewmodel.NewDashboardViewModel(svc),
		loginVM:  viewmodel.NewLoginViewModel(gate, sessions),
		editorVM: viewmodel.NewEditorViewModel(svc),
		cfg:      cfg,
		spinner:  sp,
		sub:      make(chan tea.Msg, 16),
	}

	// Forward every published change into the Bubble Tea loop. Callbacks run
	// on the goroutine that called Set, so the send must never block.
	push := func(msg tea.Msg) {
		select {
		case a.sub <- msg:
		default:
		}
	}
	a.listVM.Expenses.Subscribe(func(v []model.Expense) { push(expensesMsg{Expenses: v}) })
	a.dashVM.Summary.Subscribe(func(v model.Summary) { push(summaryMsg{Summary: v}) })
	a.loginVM.Session.Subscribe(func(v auth.Session) { push(sessionMsg{Session: v}) })
	a.listVM.Activity.Busy.Subscribe(func(v bool) { push(busyMsg{Busy: v}) })
	a.dashVM.Activity.Busy.Subscribe(func(v bool) { push(busyMsg{Busy: v}) })
	a.listVM.Activity.Err.Subscribe(func(v string) { push(errMsg{Message: v}) })
	a.dashVM.Activity.Err.Subscribe(func(v string) { push(errMsg{Message: v}) })

	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		waitForMsg(a.sub),
		a.spinner.Tick,
		a.restoreSessionCmd(),
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.loginForm != nil {
			a.loginForm = a.loginForm.WithWidth(msg.Width)
		}
		if a.expForm != nil {
			a.expForm = a.expForm.WithWidth(msg.Width)
		}
		if a.filterForm != nil {
			a.filterForm = a.filterForm.WithWidth(msg.Width)
		}
		return a, nil

	case tea.MouseMsg:
		return a.updateMouse(msg)

	case tea.KeyMsg:
		return a.updateKey(msg)

	case sessionMsg:
		a.session = msg.Session
		if msg.Session.LoggedIn || msg.Session.Email != "" {
			// Restored, freshly signed in, or guest: enter the main views.
			a.authed = true
			a.restored = true
			a.loginForm = nil
			return a, tea.Batch(waitForMsg(a.sub), a.reloadCmd())
		}
		a.restored = true
		a.authed = false
		if a.loginForm == nil {
			a.loginForm = a.newLoginForm()
			return a, tea.Batch(waitForMsg(a.sub), a.loginForm.Init())
		}
		return a, waitForMsg(a.sub)

	case expensesMsg:
		a.expenses = msg.Expenses
		a.expState.clamp(len(a.expenses))
		return a, waitForMsg(a.sub)

	case summaryMsg:
		a.summary = msg.Summary
		return a, waitForMsg(a.sub)

	case busyMsg:
		a.busy = msg.Busy
		cmds := []tea.Cmd{waitForMsg(a.sub)}
		if a.busy {
			cmds = append(cmds, a.spinner.Tick)
		}
		return a, tea.Batch(cmds...)

	case errMsg:
		if msg.Message != "" {
			a.toast = msg.Message
			a.toastErr = true
			return a, tea.Batch(waitForMsg(a.sub), toastClearCmd())
		}
		return a, waitForMsg(a.sub)

	case actionMsg:
		if msg.Err != nil {
			a.toast = msg.Err.Error()
			a.toastErr = true
		} else if msg.Note != "" {
			a.toast = msg.Note
			a.toastErr = false
		}
		return a, toastClearCmd()

	case loginFailedMsg:
		a.loginErr = msg.Message
		a.loginForm = a.newLoginForm()
		return a, a.loginForm.Init()

	case toastClearMsg:
		a.toast = ""
		return a, nil

	case spinner.TickMsg:
		if a.busy || !a.restored {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward everything else (cursor blinks, form internals) to whichever
	// form is active.
	if a.loginForm != nil {
		return a.updateLoginForm(msg)
	}
	if a.expForm != nil {
		return a.updateExpenseForm(msg)
	}
	if a.filterForm != nil {
		return a.updateFilterForm(msg)
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.loginForm != nil {
		return a.updateLoginForm(msg)
	}
	if !a.authed {
		return a, nil
	}
	if a.expForm != nil {
		return a.updateExpenseForm(msg)
	}
	if a.filterForm != nil {
		return a.updateFilterForm(msg)
	}

	// Search mode intercepts all keys
	if a.activeTab == tabExpenses && a.expState.searching {
		return a.updateSearch(msg)
	}

	// Pending delete confirmation
	if a.activeTab == tabExpenses && a.expState.confirmDelete != 0 {
		return a.updateConfirmDelete(key)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if a.activeTab == tabExpenses {
		if m, cmd, handled := a.updateExpensesKey(key); handled {
			return m, cmd
		}
	}
	if a.activeTab == tabSettings {
		if m, cmd, handled := a.updateSettingsKey(key); handled {
			return m, cmd
		}
	}

	if len(key) == 1 {
		if i := components.TabIdxByKey(rune(key[0])); i >= 0 {
			a.activeTab = i
			return a, nil
		}
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "r":
		return a, a.reloadCmd()
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !a.authed || a.showHelp || a.loginForm != nil || a.expForm != nil || a.filterForm != nil {
		return a, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == tabExpenses && !a.expState.searching && a.expState.cursor > 0 {
			a.expState.cursor--
		}
		return a, nil

	case tea.MouseButtonWheelDown:
		if a.activeTab == tabExpenses && !a.expState.searching && a.expState.cursor < len(a.expenses)-1 {
			a.expState.cursor++
		}
		return a, nil

	case tea.MouseButtonLeft:
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil
	}
	return a, nil
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2 // two-space separator
	}
	return -1
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.restored {
		return a.viewStarting()
	}
	if a.loginForm != nil {
		return a.viewLogin()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	if a.expForm != nil {
		return a.viewForm(a.expForm, a.expFormTitle())
	}
	if a.filterForm != nil {
		return a.viewForm(a.filterForm, "Filter Expenses")
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := "\n  Terminal too narrow.\n\n  spendtrack needs at least " +
		lipgloss.NewStyle().Bold(true).Render("60") + " columns.\n"
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewStarting() string {
	t := theme.Active
	body := a.spinner.View() + " Restoring session..."
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3).
		Render(body)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	render := func(b *strings.Builder, bindings []struct{ key, desc string }) {
		for _, bind := range bindings {
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(padRight(bind.key, 10)))
			b.WriteString("  ")
			b.WriteString(descStyle.Render(bind.desc))
			b.WriteString("\n")
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	render(&b, []struct{ key, desc string }{
		{"e b x", "Jump to tab"},
		{"← → tab", "Previous / Next tab"},
		{"j k", "Move in the expense list"},
		{"g G", "First / Last expense"},
	})
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Expenses"))
	b.WriteString("\n")
	render(&b, []struct{ key, desc string }{
		{"a", "Add expense"},
		{"enter", "Edit selected"},
		{"d", "Delete selected"},
		{"/", "Search"},
		{"f", "Filter by category / dates"},
		{"c", "Clear all filters"},
	})
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("General"))
	b.WriteString("\n")
	render(&b, []struct{ key, desc string }{
		{"r", "Reload data"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	})
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

// viewForm centers an active huh form with a title line above it.
func (a App) viewForm(form *huh.Form, title string) string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	body := titleStyle.Render(title) + "\n\n" + form.View()
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w) + a.renderHeaderLine(w)

	statusBar := components.RenderStatusBar(w, a.statusHints(), a.session.DisplayName())

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabExpenses:
		content = a.renderExpensesTab(cw, contentH)
	case tabDashboard:
		content = a.renderDashboardTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// renderHeaderLine is the second header row: spinner/toast on the left, the
// active filter badge on the right.
func (a App) renderHeaderLine(w int) string {
	t := theme.Active

	left := " "
	switch {
	case a.busy:
		left += a.spinner.View() + " working..."
	case a.toast != "":
		style := lipgloss.NewStyle().Foreground(t.Green)
		if a.toastErr {
			style = lipgloss.NewStyle().Foreground(t.Red)
		}
		left += style.Render(a.toast)
	}

	right := ""
	if n := a.listVM.ActiveFilterCount(); n > 0 {
		right = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).
			Render(pluralFilters(n)) + " "
	}

	padding := w - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	return left + strings.Repeat(" ", padding) + right
}

func (a App) statusHints() string {
	switch a.activeTab {
	case tabExpenses:
		if a.expState.confirmDelete != 0 {
			return "[y]delete  [n]cancel"
		}
		if a.expState.searching {
			return "[enter]apply  [esc]cancel"
		}
		return "[a]dd  [d]elete  [/]search  [f]ilter  [?]help  [q]uit"
	case tabSettings:
		return "[t]heme  [L]ogout  [?]help  [q]uit"
	default:
		return "[?]help  [q]uit"
	}
}

// ─── Commands ───────────────────────────────────────────────────

// waitForMsg blocks until the next forwarded viewmodel notification.
func waitForMsg(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}

func toastClearCmd() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastClearMsg{}
	})
}

// restoreSessionCmd loads any persisted session. The result arrives through
// the session subscription; a restore failure just means the login screen.
func (a App) restoreSessionCmd() tea.Cmd {
	return func() tea.Msg {
		s, err := a.loginVM.Restore(context.Background())
		if err != nil || (!s.LoggedIn && s.Email == "") {
			return sessionMsg{}
		}
		return nil // subscription already forwarded it
	}
}

// reloadCmd re-queries both the list and the dashboard. Results arrive
// through the subscriptions.
func (a App) reloadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		_ = a.listVM.Apply(ctx)
		_ = a.dashVM.Load(ctx)
		return nil
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func pluralFilters(n int) string {
	if n == 1 {
		return "1 filter"
	}
	return fmt.Sprintf("%d filters", n)
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
