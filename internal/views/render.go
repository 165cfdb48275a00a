package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// AppData is everything the frame needs; panes arrive pre-rendered.
type AppData struct {
	Header       string
	LeftPane     string
	RightPane    string
	StatusLine   string
	StatusError  bool
	Footer       string
	Notification string
	Width        int
}

const (
	defaultWidth = 116
	minPaneWidth = 40
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7DF1E"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	formPaneStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#F7DF1E")).Padding(0, 1)
	sidePaneStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	focusStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	disabledStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	validStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// paneWidths splits the frame 60/40 between the form and the side pane.
func paneWidths(total int) (int, int) {
	if total <= 0 {
		total = defaultWidth
	}
	left := total * 6 / 10
	right := total - left - 4
	if left < minPaneWidth {
		left = minPaneWidth
	}
	if right < minPaneWidth {
		right = minPaneWidth
	}
	return left, right
}

func RenderApp(data AppData) string {
	leftWidth, rightWidth := paneWidths(data.Width)
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		formPaneStyle.Width(leftWidth).Render(data.LeftPane),
		sidePaneStyle.Width(rightWidth).Render(data.RightPane),
	)

	lines := []string{headerStyle.Render(data.Header), row}
	if data.StatusLine != "" {
		if data.StatusError {
			lines = append(lines, errorStyle.Render(data.StatusLine))
		} else {
			lines = append(lines, statusStyle.Render(data.StatusLine))
		}
	}
	if data.Notification != "" {
		lines = append(lines, sidePaneStyle.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders md with glamour's dark theme and falls back to the
// raw text if rendering fails.
func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
