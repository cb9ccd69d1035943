package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Base        lipgloss.Style
	Border      lipgloss.Color
	Header      lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Label       lipgloss.Style
	Input       lipgloss.Style
	InputError  lipgloss.Style
	Caption     lipgloss.Style
	Error       lipgloss.Style
	Button      lipgloss.Style
	Row         lipgloss.Style
	RowFocused  lipgloss.Style
	RowSelected lipgloss.Style
	Value       lipgloss.Style
	Notice      lipgloss.Style
	Dim         lipgloss.Style
}

var DefaultTheme = Theme{
	Base:        lipgloss.NewStyle().Margin(1, 2),
	Border:      lipgloss.Color("63"),
	Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	Tab:         lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 2),
	ActiveTab:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Underline(true).Padding(0, 2),
	Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1),
	InputError:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("196")).Padding(0, 1),
	Caption:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginLeft(1),
	Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).MarginLeft(1),
	Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Padding(0, 2),
	Row:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
	RowFocused:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("237")).Padding(0, 1),
	RowSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("250")).Padding(0, 1),
	Value:       lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
	Notice:      lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("120")).Padding(0, 1),
	Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}
