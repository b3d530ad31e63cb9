package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/journal/internal/config"
)

// Settings view styles
var (
	settingsTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#f97316")).
				MarginBottom(1)

	settingsPathStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true).
				MarginBottom(1)

	settingsLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fdba74")).
				Bold(true).
				Width(14)

	settingsRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f1faee"))

	settingsMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))

	settingsHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				MarginTop(1)
)

// SettingsModel shows the effective configuration.
type SettingsModel struct {
	config *config.Config

	width  int
	height int
}

// NewSettingsModel creates a new settings model.
func NewSettingsModel(cfg *config.Config) SettingsModel {
	return SettingsModel{config: cfg}
}

// SetSize updates the view dimensions.
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	return m, nil
}

// View renders the settings view.
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(settingsTitleStyle.Render("Journal Configuration"))
	b.WriteString("\n")

	if m.config == nil {
		b.WriteString(settingsMutedStyle.Render("No configuration loaded"))
		return b.String()
	}
	cfg := m.config

	source := "built-in defaults"
	if cfg.ConfigFile != "" {
		source = cfg.ConfigFile
	}
	b.WriteString(settingsPathStyle.Render("Config: " + source))
	b.WriteString("\n\n")

	logFile := cfg.LogFile
	if logFile == "" {
		logFile = "(disabled)"
	}

	b.WriteString(m.renderRow("API URL", cfg.APIURL))
	b.WriteString(m.renderRow("Timeout", cfg.Timeout.String()))
	b.WriteString(m.renderRow("Typing", fmt.Sprintf("%s per character", cfg.Typing.CharDelay)))
	b.WriteString(m.renderRow("Pause", fmt.Sprintf("%s between sections", cfg.Typing.PhasePause)))
	b.WriteString(m.renderRow("Prompts", fmt.Sprintf("%d examples", len(cfg.Prompts))))
	b.WriteString(m.renderRow("Log file", logFile))
	b.WriteString(m.renderRow("Verbose", fmt.Sprintf("%t", cfg.Verbose)))

	b.WriteString(settingsHelpStyle.Render("Override with JOURNAL_API_URL or edit config.yaml ('journal init' creates one)"))

	return b.String()
}

func (m SettingsModel) renderRow(label, value string) string {
	width := 60
	if m.width > 0 {
		width = maxInt(10, m.width-18)
	}
	return settingsLabelStyle.Render(label+":") + " " + settingsRowStyle.Render(truncate(value, width)) + "\n"
}
