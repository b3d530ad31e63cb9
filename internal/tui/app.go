package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/journal/internal/config"
	"github.com/f3rmion/journal/internal/reveal"
	"github.com/f3rmion/journal/internal/session"
	"github.com/f3rmion/journal/internal/tui/views"
	"go.uber.org/zap"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewJournal ViewType = iota
	ViewAbout
	ViewContact
	ViewSettings
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// ViewSwitchMsg requests a view change
type ViewSwitchMsg struct {
	View ViewType
}

// AppModel is the main unified TUI model
type AppModel struct {
	config *config.Config

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	journalView  views.JournalModel
	aboutView    views.AboutModel
	contactView  views.ContactModel
	settingsView views.SettingsModel

	// Help overlay
	showHelp bool
}

// NewApp creates a new unified TUI application
func NewApp(cfg *config.Config, client views.Submitter, logger *zap.Logger) AppModel {
	if cfg == nil {
		cfg = &config.Config{Typing: reveal.DefaultTiming()}
	}

	ctrl := session.New(reveal.New(cfg.Typing), logger)

	menuItems := []MenuItem{
		{Label: "Journal", View: ViewJournal, Shortcut: "1"},
		{Label: "About", View: ViewAbout, Shortcut: "2"},
		{Label: "Contact", View: ViewContact, Shortcut: "3"},
		{Label: "Settings", View: ViewSettings, Shortcut: "4"},
	}

	return AppModel{
		config:       cfg,
		sidebarWidth: 18,
		currentView:  ViewJournal,
		menuItems:    menuItems,

		journalView:  views.NewJournalModel(ctrl, client, cfg.Prompts),
		aboutView:    views.NewAboutModel(),
		contactView:  views.NewContactModel(cfg.Contact),
		settingsView: views.NewSettingsModel(cfg),
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// Global keys
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.sidebarActive = !m.sidebarActive
			return m, nil
		case "esc":
			// Esc goes back to sidebar or quits
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		}

		// Sidebar navigation when active. Content views get every other key,
		// digits included, since the journal input needs them.
		if m.sidebarActive {
			return m.updateSidebar(msg)
		}
		return m.updateActive(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.journalView.SetSize(contentWidth, contentHeight)
		m.aboutView.SetSize(contentWidth, contentHeight)
		m.contactView.SetSize(contentWidth, contentHeight)
		m.settingsView.SetSize(contentWidth, contentHeight)

		return m, nil

	case ViewSwitchMsg:
		m.switchView(msg.View)
		return m, nil
	}

	// Request results and reveal ticks belong to the journal view no matter
	// which view is on screen.
	var cmd tea.Cmd
	m.journalView, cmd = m.journalView.Update(msg)
	return m, cmd
}

func (m AppModel) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
	case "j", "down":
		if m.selectedMenu < len(m.menuItems)-1 {
			m.selectedMenu++
		}
	case "k", "up":
		if m.selectedMenu > 0 {
			m.selectedMenu--
		}
	case "enter", "l", "right":
		m.switchView(m.menuItems[m.selectedMenu].View)
	default:
		for _, item := range m.menuItems {
			if item.Shortcut == msg.String() {
				m.switchView(item.View)
				break
			}
		}
	}
	return m, nil
}

func (m AppModel) updateActive(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewJournal:
		m.journalView, cmd = m.journalView.Update(msg)
	case ViewAbout:
		m.aboutView, cmd = m.aboutView.Update(msg)
	case ViewContact:
		m.contactView, cmd = m.contactView.Update(msg)
	case ViewSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}
	return m, cmd
}

func (m *AppModel) switchView(v ViewType) {
	m.currentView = v
	for i, item := range m.menuItems {
		if item.View == v {
			m.selectedMenu = i
			break
		}
	}
	m.sidebarActive = false
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewJournal:
		content = m.journalView.View()
	case ViewAbout:
		content = m.aboutView.View()
	case ViewContact:
		content = m.contactView.View()
	case ViewSettings:
		content = m.settingsView.View()
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	title := SidebarTitleStyle.Render(" AI Reflection ")
	items = append(items, title)
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				// Indicate current view but not focused
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}

		items = append(items, style.Render(label))
	}

	usedHeight := len(items) + 4
	if m.height > usedHeight {
		for i := 0; i < m.height-usedHeight-2; i++ {
			items = append(items, "")
		}
	}

	help := SidebarHelpStyle.Render("tab Menu  ? Help")
	if m.sidebarActive {
		help = SidebarHelpStyle.Render("? Help  q Quit")
	}
	items = append(items, help)

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	helpText := HelpTitleStyle.Render("AI Reflection - Journal") + "\n\n"

	helpText += HelpSectionStyle.Render("Global Keys") + "\n"
	helpText += HelpKeyStyle.Render("tab") + HelpDescStyle.Render("Toggle menu focus") + "\n"
	helpText += HelpKeyStyle.Render("1-4") + HelpDescStyle.Render("Switch views (menu)") + "\n"
	helpText += HelpKeyStyle.Render("?") + HelpDescStyle.Render("Show this help (menu)") + "\n"
	helpText += HelpKeyStyle.Render("q/esc") + HelpDescStyle.Render("Quit (menu)") + "\n"
	helpText += HelpKeyStyle.Render("ctrl+c") + HelpDescStyle.Render("Quit") + "\n"

	helpText += HelpSectionStyle.Render("Journal View") + "\n"
	helpText += HelpKeyStyle.Render("enter") + HelpDescStyle.Render("Reflect on entry") + "\n"
	helpText += HelpKeyStyle.Render("↑/↓") + HelpDescStyle.Render("Pick an example entry") + "\n"
	helpText += HelpKeyStyle.Render("ctrl+y") + HelpDescStyle.Render("Copy reflection") + "\n"
	helpText += HelpKeyStyle.Render("ctrl+l") + HelpDescStyle.Render("Clear reflection") + "\n"

	helpText += "\n" + HelpFooterStyle.Render("Press any key to close")

	helpBox := HelpBoxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
