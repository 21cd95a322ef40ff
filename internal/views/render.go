package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Theme        string
	Header       string
	Tabs         []string
	ActiveTab    string
	LeftPane     string
	RightPane    string
	StatusLine   string
	StatusError  bool
	Footer       string
	Notification string
}

type styles struct {
	header    lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	status    lipgloss.Style
	err       lipgloss.Style
	panel     lipgloss.Style
	footer    lipgloss.Style
	active    lipgloss.Style
	upcoming  lipgloss.Style
	missed    lipgloss.Style
	done      lipgloss.Style
	muted     lipgloss.Style
}

func newStyles(accent, ok, bad, muted, border lipgloss.Color) styles {
	return styles{
		header:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		tab:       lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		activeTab: lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true).Padding(0, 1),
		status:    lipgloss.NewStyle().Foreground(ok),
		err:       lipgloss.NewStyle().Foreground(bad),
		panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		footer:    lipgloss.NewStyle().Foreground(muted),
		active:    lipgloss.NewStyle().Bold(true).Foreground(ok),
		upcoming:  lipgloss.NewStyle().Foreground(accent),
		missed:    lipgloss.NewStyle().Foreground(bad),
		done:      lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
		muted:     lipgloss.NewStyle().Foreground(muted),
	}
}

var (
	lightStyles = newStyles("27", "28", "160", "245", "250")
	darkStyles  = newStyles("12", "10", "9", "8", "240")
)

func stylesFor(theme string) styles {
	if theme == "dark" {
		return darkStyles
	}
	return lightStyles
}

func RenderApp(data AppData) string {
	st := stylesFor(data.Theme)
	left := st.panel.Width(58).Render(data.LeftPane)
	row := left
	if strings.TrimSpace(data.RightPane) != "" {
		right := st.panel.Width(58).Render(data.RightPane)
		row = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	tabs := make([]string, 0, len(data.Tabs))
	for _, tab := range data.Tabs {
		if tab == data.ActiveTab {
			tabs = append(tabs, st.activeTab.Render(tab))
			continue
		}
		tabs = append(tabs, st.tab.Render(tab))
	}

	status := st.status.Render(data.StatusLine)
	if data.StatusError {
		status = st.err.Render(data.StatusLine)
	}

	lines := []string{st.header.Render(data.Header)}
	if len(tabs) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	}
	lines = append(lines, row, status)
	if data.Notification != "" {
		lines = append(lines, st.panel.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, st.footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders note bodies; on renderer failure the raw text is
// returned.
func RenderMarkdown(md string, theme string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if theme == "dark" {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
