package tui

import "github.com/charmbracelet/lipgloss"

// minListWidth is the minimum character width for the listing pane.
const minListWidth = 34

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"})

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})

	notificationStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"})

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})

	currentPageStyle = lipgloss.NewStyle().
				Bold(true).
				Reverse(true)
)

// focusedBorder is the accent-colored border of the pane holding focus.
func focusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
}

// unfocusedBorder is the dim border of the pane without focus.
func unfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
}

// paneWidths splits the terminal width between the listing and detail panes.
// The listing gets 2/5 with a floor of minListWidth.
func paneWidths(total int) (list, detail int) {
	if total <= 0 {
		return 0, 0
	}
	list = total * 2 / 5
	if list < minListWidth {
		list = minListWidth
	}
	detail = total - list
	if detail < 0 {
		detail = 0
	}
	return list, detail
}
