package tui

import (
	"context"
	"fmt"
	"strings"

	"spendtrack/internal/cli"
	"spendtrack/internal/tui/components"
	"spendtrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// expensesState holds the expenses tab state.
type expensesState struct {
	cursor int
	offset int // scroll offset for the list

	searching   bool
	searchInput textinput.Model

	confirmDelete int64 // id awaiting confirmation, 0 when none
}

func (s *expensesState) clamp(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.offset > s.cursor {
		s.offset = s.cursor
	}
}

func newSearchInput(current string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "description, amount, or category"
	ti.Prompt = "/ "
	ti.CharLimit = 100
	ti.Width = 40
	ti.SetValue(current)
	return ti
}

// updateExpensesKey handles expenses tab keys. The bool reports whether the
// key was consumed.
func (a App) updateExpensesKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.expState.cursor < len(a.expenses)-1 {
			a.expState.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.expState.cursor > 0 {
			a.expState.cursor--
		}
		return a, nil, true
	case "g":
		a.expState.cursor = 0
		a.expState.offset = 0
		return a, nil, true
	case "G":
		a.expState.cursor = len(a.expenses) - 1
		if a.expState.cursor < 0 {
			a.expState.cursor = 0
		}
		return a, nil, true
	case "a":
		a.expForm = a.newExpenseForm(nil)
		return a, a.expForm.Init(), true
	case "enter":
		if a.expState.cursor < len(a.expenses) {
			e := a.expenses[a.expState.cursor]
			a.expForm = a.newExpenseForm(&e)
			return a, a.expForm.Init(), true
		}
		return a, nil, true
	case "d":
		if a.expState.cursor < len(a.expenses) {
			a.expState.confirmDelete = a.expenses[a.expState.cursor].ID
		}
		return a, nil, true
	case "/":
		a.expState.searching = true
		a.expState.searchInput = newSearchInput(a.listVM.Search.Get())
		a.expState.searchInput.Focus()
		return a, a.expState.searchInput.Cursor.BlinkCmd(), true
	case "f":
		a.filterForm = a.newFilterForm()
		return a, a.filterForm.Init(), true
	case "c":
		return a, a.clearFiltersCmd(), true
	}
	return a, nil, false
}

// updateSearch handles key events while the search input is focused.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		query := strings.TrimSpace(a.expState.searchInput.Value())
		a.expState.searching = false
		a.expState.cursor = 0
		a.expState.offset = 0
		return a, a.searchCmd(query)
	case "esc":
		a.expState.searching = false
		return a, nil
	}

	var cmd tea.Cmd
	a.expState.searchInput, cmd = a.expState.searchInput.Update(msg)
	return a, cmd
}

func (a App) updateConfirmDelete(key string) (tea.Model, tea.Cmd) {
	id := a.expState.confirmDelete
	switch key {
	case "y", "enter", "d":
		a.expState.confirmDelete = 0
		return a, a.deleteCmd(id)
	case "n", "esc":
		a.expState.confirmDelete = 0
		return a, nil
	}
	return a, nil
}

func (a App) searchCmd(query string) tea.Cmd {
	return func() tea.Msg {
		a.listVM.Search.Set(query)
		if err := a.listVM.Apply(context.Background()); err != nil {
			return actionMsg{Err: err}
		}
		return nil
	}
}

func (a App) clearFiltersCmd() tea.Cmd {
	return func() tea.Msg {
		if err := a.listVM.ClearFilters(context.Background()); err != nil {
			return actionMsg{Err: err}
		}
		return actionMsg{Note: "Filters cleared"}
	}
}

func (a App) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := a.listVM.Delete(ctx, id); err != nil {
			return actionMsg{Err: err}
		}
		_ = a.dashVM.Load(ctx)
		return actionMsg{Note: "Expense deleted"}
	}
}

func (a App) renderExpensesTab(cw, h int) string {
	t := theme.Active
	es := a.expState
	innerW := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	dangerStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder

	if es.searching {
		b.WriteString(es.searchInput.View())
		b.WriteString("\n\n")
	} else if q := a.listVM.Search.Get(); q != "" {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("search: %q", q)))
		b.WriteString("\n\n")
	}

	if len(a.expenses) == 0 {
		b.WriteString(mutedStyle.Render("No expenses found."))
		if a.listVM.ActiveFilterCount() > 0 {
			b.WriteString("\n")
			b.WriteString(mutedStyle.Render("Press c to clear the filters."))
		}
		return components.ContentCard("Expenses", b.String(), cw)
	}

	descW := innerW - 42 // date 10 + category 14 + amount 12 + gaps
	if descW < 10 {
		descW = 10
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-10s  %-14s %12s  %s",
		"Date", "Category", "Amount", "Description")))
	b.WriteString("\n")

	// Keep the cursor in the visible window
	visible := h - 8 // card border + title + header + hint rows
	if es.searching || a.listVM.Search.Get() != "" {
		visible -= 2
	}
	if visible < 3 {
		visible = 3
	}
	offset := es.offset
	if es.cursor < offset {
		offset = es.cursor
	}
	if es.cursor >= offset+visible {
		offset = es.cursor - visible + 1
	}
	end := offset + visible
	if end > len(a.expenses) {
		end = len(a.expenses)
	}

	for i := offset; i < end; i++ {
		e := a.expenses[i]
		line := fmt.Sprintf("%-10s  %-14s %12s  %s",
			cli.FormatDate(e.Date),
			e.Category.String(),
			cli.FormatAmount(e.Amount, a.cfg.General.Currency),
			truncStr(e.Description, descW))

		switch {
		case e.ID == es.confirmDelete:
			b.WriteString(dangerStyle.Render("✗ " + line))
		case i == es.cursor:
			b.WriteString(selectedStyle.Render("▸ " + line))
		default:
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if es.confirmDelete != 0 {
		b.WriteString("\n")
		b.WriteString(dangerStyle.Render("Delete this expense? [y/n]"))
	}

	title := fmt.Sprintf("Expenses (%d)", len(a.expenses))
	return components.ContentCard(title, b.String(), cw)
}
