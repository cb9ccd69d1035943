package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/roshtimer/internal/config"
	"github.com/akyairhashvil/roshtimer/internal/models"
	"github.com/akyairhashvil/roshtimer/internal/session"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	width := contentWidth(m.width)
	sections := []string{
		m.renderHeader(width),
		m.renderTabs(width),
		m.renderInput(width),
		m.renderButton(),
		m.renderResults(width),
		m.renderNotice(),
		m.help.View(m.keys.forFocus(m.focus)),
	}
	var parts []string
	for _, s := range sections {
		if s != "" {
			parts = append(parts, s)
		}
	}
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return m.theme.Base.Render(panel)
}

func (m Model) renderHeader(width int) string {
	title := fmt.Sprintf("%s v%s", config.AppName, versionLabel())
	return m.theme.Header.Render(truncate(title, width))
}

func (m Model) renderTabs(width int) string {
	var tabs []string
	for _, tab := range models.Tabs {
		style := m.theme.Tab
		if tab == m.state.Tab {
			style = m.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(tab.String()))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	rule := m.theme.Dim.Render(strings.Repeat("─", width-2))
	return lipgloss.JoinVertical(lipgloss.Left, bar, rule)
}

func (m Model) renderInput(width int) string {
	tab := m.state.Tab
	field := m.state.Field(tab)
	box := m.theme.Input
	caption := m.theme.Caption
	if field.Err != nil {
		box = m.theme.InputError
		caption = m.theme.Error
	}
	inputWidth := width - 6
	if inputWidth > config.InputWidth+2 {
		inputWidth = config.InputWidth + 2
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Label.Render(config.InputLabel),
		box.Width(inputWidth).Render(m.inputs[tab].View()),
		caption.Render(truncate(session.HelperCaption(m.state, tab), width-2)),
	)
}

func (m Model) renderButton() string {
	label := "Calculate " + m.state.Tab.String()
	if m.focus == FocusInput {
		return m.theme.Button.Render(label)
	}
	return m.theme.Dim.Render("[ " + label + " ]")
}

func (m Model) renderResults(width int) string {
	tab := m.state.Tab
	rows := m.state.Rows(tab)
	if len(rows) == 0 {
		return ""
	}
	cursor := m.state.Field(tab).Cursor
	inner := width - 4
	var lines []string
	for i, row := range rows {
		style := m.theme.Row
		marker := "  "
		switch {
		case m.state.IsSelected(row):
			style = m.theme.RowSelected
			marker = "✓ "
		case m.focus == FocusResults && i == cursor:
			style = m.theme.RowFocused
			marker = "> "
		}
		value := m.theme.Value.Render(row.Value)
		titleWidth := inner - lipgloss.Width(marker) - lipgloss.Width(value) - 1
		title := truncate(row.Title, titleWidth)
		gap := inner - lipgloss.Width(marker) - lipgloss.Width(title) - lipgloss.Width(value)
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, style.Render(marker+title+strings.Repeat(" ", gap)+value))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderNotice() string {
	if !m.state.Selection.Active() {
		return ""
	}
	return m.theme.Notice.Render(config.CopiedNotice)
}
