// Package tui implements the interactive waterwise dashboard.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/waterwise/waterwise/internal/catalog"
	"github.com/waterwise/waterwise/internal/engine"
)

// SuggestionStore persists implemented-suggestion toggles made in the
// dashboard.
type SuggestionStore interface {
	Mark(id string) error
	Unmark(id string) error
	Set() map[string]bool
}

// Dashboard tabs.
const (
	tabTracker = iota
	tabSuggestions
	tabCatalog
	tabCount
)

var tabNames = [tabCount]string{"Tracker", "Suggestions", "Catalog"} //nolint:gochecknoglobals // Static labels

// Dashboard styles.
var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cursorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	doneStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// DashboardModel is the bubbletea model for the waterwise dashboard.
type DashboardModel struct {
	tab      int
	counters engine.UsageCounters
	store    SuggestionStore

	suggestions []engine.Suggestion
	implemented map[string]bool
	cursor      int

	search textinput.Model
	items  []catalog.Item

	err error
}

// NewDashboardModel builds the dashboard around the given starting
// counters and suggestion store.
func NewDashboardModel(counters engine.UsageCounters, store SuggestionStore) *DashboardModel {
	search := textinput.New()
	search.Placeholder = "search the catalog"
	search.CharLimit = 40

	m := &DashboardModel{
		counters:    counters,
		store:       store,
		implemented: store.Set(),
		search:      search,
	}
	m.refresh()
	return m
}

// refresh recomputes suggestions and the catalog list from current
// state.
func (m *DashboardModel) refresh() {
	daily := engine.ComputeTotals(m.counters).Daily
	m.suggestions = engine.GenerateSuggestions(m.counters, daily)
	if m.cursor >= len(m.suggestions) {
		m.cursor = 0
	}
	m.items = catalog.Search(catalog.Items(), m.search.Value(), catalog.CategoryAll)
}

// Init implements tea.Model.
func (m *DashboardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		if m.tab == tabCatalog && m.search.Focused() && keyMsg.String() == "q" {
			break // let "q" reach the search input
		}
		return m, tea.Quit
	case "tab":
		m.tab = (m.tab + 1) % tabCount
		if m.tab == tabCatalog {
			m.search.Focus()
		} else {
			m.search.Blur()
		}
		return m, nil
	case "shift+tab":
		m.tab = (m.tab + tabCount - 1) % tabCount
		if m.tab == tabCatalog {
			m.search.Focus()
		} else {
			m.search.Blur()
		}
		return m, nil
	}

	switch m.tab {
	case tabTracker:
		return m.updateTracker(keyMsg)
	case tabSuggestions:
		return m.updateSuggestions(keyMsg)
	case tabCatalog:
		return m.updateCatalog(keyMsg)
	}
	return m, nil
}

// updateTracker adjusts counters with s/S, b/B, w/W.
func (m *DashboardModel) updateTracker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		m.counters.Showers++
	case "S":
		if m.counters.Showers > 0 {
			m.counters.Showers--
		}
	case "b":
		m.counters.Buckets++
	case "B":
		if m.counters.Buckets > 0 {
			m.counters.Buckets--
		}
	case "w":
		m.counters.Bottles++
	case "W":
		if m.counters.Bottles > 0 {
			m.counters.Bottles--
		}
	}
	m.refresh()
	return m, nil
}

// updateSuggestions moves the cursor and toggles implemented state.
func (m *DashboardModel) updateSuggestions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.suggestions)-1 {
			m.cursor++
		}
	case " ":
		if len(m.suggestions) == 0 {
			break
		}
		id := m.suggestions[m.cursor].ID
		var err error
		if m.implemented[id] {
			err = m.store.Unmark(id)
		} else {
			err = m.store.Mark(id)
		}
		if err != nil {
			m.err = err
			break
		}
		m.err = nil
		m.implemented = m.store.Set()
	}
	return m, nil
}

// updateCatalog feeds keys to the search input and refilters.
func (m *DashboardModel) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.items = catalog.Search(catalog.Items(), m.search.Value(), catalog.CategoryAll)
	return m, cmd
}

// View implements tea.Model.
func (m *DashboardModel) View() string {
	var b strings.Builder

	for i, name := range tabNames {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == m.tab {
			b.WriteString(activeTabStyle.Render(name))
		} else {
			b.WriteString(inactiveTabStyle.Render(name))
		}
	}
	b.WriteString("\n\n")

	switch m.tab {
	case tabTracker:
		b.WriteString(m.viewTracker())
	case tabSuggestions:
		b.WriteString(m.viewSuggestions())
	case tabCatalog:
		b.WriteString(m.viewCatalog())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m *DashboardModel) helpLine() string {
	switch m.tab {
	case tabTracker:
		return "s/S showers · b/B buckets · w/W bottles · tab switch · q quit"
	case tabSuggestions:
		return "↑/↓ move · space toggle implemented · tab switch · q quit"
	default:
		return "type to search · tab switch · ctrl+c quit"
	}
}

func (m *DashboardModel) viewTracker() string {
	totals := engine.ComputeTotals(m.counters)
	eff := engine.ComputeEfficiency(float64(totals.Daily))

	var b strings.Builder
	fmt.Fprintf(&b, "Showers: %d   Buckets: %d   Bottles: %d\n\n",
		m.counters.Showers, m.counters.Buckets, m.counters.Bottles)
	fmt.Fprintf(&b, "Daily:   %d L\n", totals.Daily)
	fmt.Fprintf(&b, "Weekly:  %d L\n", totals.Weekly)
	fmt.Fprintf(&b, "Monthly: %d L\n\n", totals.Monthly)
	fmt.Fprintf(&b, "Efficiency: %s (%d%%)\n", eff.Rating, eff.Percent)
	return b.String()
}

func (m *DashboardModel) viewSuggestions() string {
	if len(m.suggestions) == 0 {
		return "No suggestions for this usage.\n"
	}

	summary := engine.Summarize(m.suggestions, m.implemented)

	var b strings.Builder
	for i, s := range m.suggestions {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		check := "[ ]"
		title := s.Title
		if m.implemented[s.ID] {
			check = "[✓]"
			title = doneStyle.Render(title)
		}
		fmt.Fprintf(&b, "%s%s %s (%d L/day)\n", cursor, check, title, s.WaterSaved)
	}
	fmt.Fprintf(&b, "\nSaving %d of %d L/day (%.0f%%)\n",
		summary.ImplementedSavings, summary.PotentialSavings, summary.Progress)
	return b.String()
}

func (m *DashboardModel) viewCatalog() string {
	var b strings.Builder
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString("No matching items\n")
		return b.String()
	}

	for _, item := range m.items {
		fmt.Fprintf(&b, "  %-22s %-12s %8d L\n", item.Name, item.Category, item.Liters)
	}
	return b.String()
}
