package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	aboutHeadlineStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#f1faee"))

	aboutHighlightStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#f97316"))

	aboutBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cccccc"))
)

// AboutModel is the about page.
type AboutModel struct {
	width  int
	height int
}

// NewAboutModel creates a new about view model.
func NewAboutModel() AboutModel {
	return AboutModel{}
}

// SetSize updates the view dimensions.
func (m *AboutModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m AboutModel) Update(msg tea.Msg) (AboutModel, tea.Cmd) {
	return m, nil
}

// View renders the about page.
func (m AboutModel) View() string {
	headline := aboutHeadlineStyle.Render("Something ") +
		aboutHighlightStyle.Render("interesting") +
		aboutHeadlineStyle.Render(" is coming soon ") +
		aboutHighlightStyle.Render("...")

	body := wordWrap("Write how you feel in a sentence or two. The reflection service "+
		"answers with a short reflection on your entry, an affirmation, and "+
		"sometimes a few prompts to keep reflecting on. Nothing you write is stored.",
		minInt(maxInt(m.width-4, 20), 70))

	content := headline + "\n\n" + aboutBodyStyle.Render(body)
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// ContactModel is the contact page.
type ContactModel struct {
	contact string
	width   int
	height  int
}

// NewContactModel creates a new contact view model.
func NewContactModel(contact string) ContactModel {
	return ContactModel{contact: contact}
}

// SetSize updates the view dimensions.
func (m *ContactModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m ContactModel) Update(msg tea.Msg) (ContactModel, tea.Cmd) {
	return m, nil
}

// View renders the contact page.
func (m ContactModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" Contact "))
	b.WriteString("\n\n")
	if m.contact == "" {
		b.WriteString(helpStyle.Render("No contact configured"))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Set 'contact' in config.yaml or JOURNAL_CONTACT"))
		return b.String()
	}
	b.WriteString(aboutBodyStyle.Render("Questions or feedback? Reach us at "))
	b.WriteString(aboutHighlightStyle.Render(m.contact))
	return b.String()
}
