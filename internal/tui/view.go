package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openhire/jobboard-be/internal/client/pagination"
)

// cursorMarker is the prefix shown on the selected listing row.
const cursorMarker = "▸ "

// View renders the search line, the two panes, the page bar, and the
// transient message area.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Job Board"))
	b.WriteString("\n\n")
	b.WriteString("Search: " + m.input.View())
	b.WriteString("\n")

	width := m.width
	if width == 0 {
		width = 100
	}
	listWidth, detailWidth := paneWidths(width)

	listStyle := unfocusedBorder()
	detailStyle := unfocusedBorder()
	if m.focus == focusList {
		listStyle = focusedBorder()
	}
	listStyle = listStyle.Width(listWidth - 2)
	detailStyle = detailStyle.Width(detailWidth - 2)

	panes := lipgloss.JoinHorizontal(
		lipgloss.Top,
		listStyle.Render(m.viewList()),
		detailStyle.Render(m.viewDetail()),
	)
	b.WriteString(panes)
	b.WriteString("\n")
	b.WriteString(m.viewPageBar())
	b.WriteString("\n")

	if m.snap.Notification != "" {
		b.WriteString(notificationStyle.Render(m.snap.Notification))
		b.WriteString("\n")
	}
	if m.snap.ErrorMessage != "" {
		b.WriteString(errorStyle.Render("Error: " + m.snap.ErrorMessage))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render("↑/↓ select  ←/→ page  / search  q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewList() string {
	if m.snap.ListLoading {
		return m.spinner.View() + " Loading jobs..."
	}
	if len(m.snap.Summaries) == 0 {
		return "No jobs to show"
	}

	var b strings.Builder
	for i, s := range m.snap.Summaries {
		if i > 0 {
			b.WriteByte('\n')
		}
		line := fmt.Sprintf("%s · %s (%s)", s.Title, s.Company, s.Location)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render(cursorMarker + line))
		} else {
			b.WriteString("  " + line)
		}
	}
	return b.String()
}

func (m Model) viewDetail() string {
	if m.snap.DetailLoading {
		return m.spinner.View() + " Loading detail..."
	}
	d := m.snap.Detail
	if d == nil {
		return "Select a job to see its detail"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Job #%d\n", d.JobID)
	fmt.Fprintf(&b, "Type:     %s\n", d.Type)
	fmt.Fprintf(&b, "Salary:   %s\n", d.Salary)
	fmt.Fprintf(&b, "Skills:   %s\n", strings.Join(d.Skills, ", "))
	fmt.Fprintf(&b, "Benefits: %s\n", strings.Join(d.Benefits, ", "))
	fmt.Fprintf(&b, "Posted:   %s\n", d.CreationDate)
	fmt.Fprintf(&b, "Link:     %s\n\n", d.Link)
	b.WriteString(d.Description)
	if d.RetrievalInfo != "" {
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render(d.RetrievalInfo))
	}
	return b.String()
}

func (m Model) viewPageBar() string {
	items := pagination.Window(m.snap.Pagination.CurrentPage, m.snap.Pagination.TotalPages)
	if len(items) == 0 {
		return ""
	}

	parts := make([]string, 0, len(items))
	for _, it := range items {
		switch {
		case it.Ellipsis:
			parts = append(parts, mutedStyle.Render("…"))
		case it.Page == m.snap.Pagination.CurrentPage:
			parts = append(parts, currentPageStyle.Render(fmt.Sprintf(" %d ", it.Page)))
		default:
			parts = append(parts, fmt.Sprintf(" %d ", it.Page))
		}
	}
	return "Pages: " + strings.Join(parts, "")
}
