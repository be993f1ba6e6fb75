// Package tui is the interactive terminal frontend for the jobs API: a
// search field, a job listing pane with a page selector, and a detail pane
// showing the selected job along with the server's retrieval annotation.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/openhire/jobboard-be/internal/client/state"
)

// Driver is the slice of the fetch orchestrator the TUI needs. Calls block
// until the fetch completes, so the model runs them inside commands.
type Driver interface {
	FetchTitles(ctx context.Context, page int, keyword string)
	SelectJob(ctx context.Context, jobID int)
}

// StateMsg delivers a store snapshot to the TUI. The program owner bridges
// store subscriptions into these via Program.Send.
type StateMsg state.State

// fetchDoneMsg marks the completion of a command that drove the orchestrator.
// All visible effects arrive through StateMsg; this only satisfies tea.Cmd.
type fetchDoneMsg struct{}

type focusArea int

const (
	focusList focusArea = iota
	focusSearch
)

// Model is the Bubble Tea model for the job search screen.
type Model struct {
	driver Driver

	snap    state.State
	input   textinput.Model
	spinner spinner.Model
	focus   focusArea
	cursor  int
	width   int
	height  int
}

// NewModel returns a model wired to driver. The initial listing fetch is
// issued from Init.
func NewModel(driver Driver) Model {
	ti := textinput.New()
	ti.Placeholder = "search job titles"
	ti.CharLimit = 80
	ti.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		driver:  driver,
		snap:    state.Initial(),
		input:   ti,
		spinner: sp,
	}
}

// Init starts the spinner and loads the first page.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchPage(1, ""))
}

func (m Model) fetchPage(page int, keyword string) tea.Cmd {
	driver := m.driver
	return func() tea.Msg {
		driver.FetchTitles(context.Background(), page, keyword)
		return fetchDoneMsg{}
	}
}

func (m Model) selectJob(jobID int) tea.Cmd {
	driver := m.driver
	return func() tea.Msg {
		driver.SelectJob(context.Background(), jobID)
		return fetchDoneMsg{}
	}
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StateMsg:
		m.snap = state.State(msg)
		if m.cursor >= len(m.snap.Summaries) {
			m.cursor = 0
		}
		m.syncCursorToDetail()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchDoneMsg:
		return m, nil
	}

	return m, nil
}

// syncCursorToDetail moves the cursor onto the job whose detail is shown,
// so a fresh listing's auto-selected first entry is also the highlighted one.
func (m *Model) syncCursorToDetail() {
	if m.snap.Detail == nil {
		return
	}
	for i, s := range m.snap.Summaries {
		if s.ID == m.snap.Detail.JobID {
			m.cursor = i
			return
		}
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.focus = focusSearch
		m.input.Focus()
		return m, textinput.Blink

	case "up", "k":
		if len(m.snap.Summaries) > 0 && m.cursor > 0 {
			m.cursor--
			return m, m.selectJob(m.snap.Summaries[m.cursor].ID)
		}
		return m, nil

	case "down", "j":
		if len(m.snap.Summaries) > 0 && m.cursor < len(m.snap.Summaries)-1 {
			m.cursor++
			return m, m.selectJob(m.snap.Summaries[m.cursor].ID)
		}
		return m, nil

	case "enter":
		if len(m.snap.Summaries) > 0 && m.cursor < len(m.snap.Summaries) {
			return m, m.selectJob(m.snap.Summaries[m.cursor].ID)
		}
		return m, nil

	case "left", "h":
		if m.snap.Pagination.CurrentPage > 1 {
			return m, m.fetchPage(m.snap.Pagination.CurrentPage-1, m.snap.Pagination.Keyword)
		}
		return m, nil

	case "right", "l":
		if m.snap.Pagination.CurrentPage < m.snap.Pagination.TotalPages {
			return m, m.fetchPage(m.snap.Pagination.CurrentPage+1, m.snap.Pagination.Keyword)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.focus = focusList
		m.input.Blur()
		m.cursor = 0
		return m, m.fetchPage(1, m.input.Value())

	case "esc":
		m.focus = focusList
		m.input.Blur()
		return m, nil

	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
