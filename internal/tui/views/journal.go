// Package views provides the individual views for the unified TUI.
package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/journal/internal/clipboard"
	"github.com/f3rmion/journal/internal/journal"
	"github.com/f3rmion/journal/internal/reveal"
	"github.com/f3rmion/journal/internal/session"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f97316")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fb923c"))

	promptCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d3d3d")).
			Padding(0, 1).
			Align(lipgloss.Center)

	promptCardActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#f97316")).
				Padding(0, 1).
				Align(lipgloss.Center)

	promptIconStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fb923c")).
			Bold(true)

	reflectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	affirmationLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fb923c"))

	affirmationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#16a34a")).
				Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f97316"))

	followUpHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f97316")).
				Bold(true).
				MarginTop(1)

	followUpCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#9a3412")).
				Foreground(lipgloss.Color("#cccccc")).
				Italic(true).
				Padding(0, 2)

	inputBarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#f97316")).
			Padding(0, 1)

	sendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f97316")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fb923c")).
			Bold(true).
			Italic(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)
)

// Submitter sends an entry to the reflection service.
type Submitter interface {
	SubmitEntry(ctx context.Context, entry string) (journal.Reflection, error)
}

// Message types
type reflectResultMsg struct {
	seq    uint64
	result journal.Reflection
	err    error
}

type revealTickMsg struct {
	gen uint64
}

type clearCopiedMsg struct{}

type copyResultMsg struct {
	err error
}

func revealTick(gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return revealTickMsg{gen: gen}
	})
}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// JournalModel is the entry and reflection view.
type JournalModel struct {
	input   textinput.Model
	spinner spinner.Model

	ctrl    *session.Controller
	client  Submitter
	prompts []journal.ExamplePrompt

	// Highlighted example prompt, -1 when none
	selected int

	// Clipboard
	writeClipboard func(string) error
	canCopy        bool
	copied         bool
	copyErr        error

	width  int
	height int
}

// NewJournalModel creates a new journal view model.
func NewJournalModel(ctrl *session.Controller, client Submitter, prompts []journal.ExamplePrompt) JournalModel {
	ti := textinput.New()
	ti.Placeholder = "How are you feeling today? Type freely..."
	ti.Prompt = "✎ "
	ti.Focus()
	ti.CharLimit = 2000
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f97316"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f1faee"))

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#f97316"))),
	)

	if prompts == nil {
		prompts = journal.DefaultPrompts()
	}

	return JournalModel{
		input:          ti,
		spinner:        sp,
		ctrl:           ctrl,
		client:         client,
		prompts:        prompts,
		selected:       -1,
		writeClipboard: clipboard.Write,
		canCopy:        clipboard.Available(),
	}
}

// SetSize updates the view dimensions.
func (m *JournalModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = maxInt(10, width-12)
}

// Controller returns the submission controller behind the view.
func (m JournalModel) Controller() *session.Controller {
	return m.ctrl
}

// Update handles messages.
func (m JournalModel) Update(msg tea.Msg) (JournalModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case reflectResultMsg:
		start, ok := m.ctrl.Resolve(msg.seq, msg.result, msg.err)
		if !ok {
			return m, nil
		}
		m.input.Focus()
		return m, revealTick(start.Gen, start.Delay)

	case revealTickMsg:
		next, more := m.ctrl.Advance(msg.gen)
		if !more {
			return m, nil
		}
		return m, revealTick(msg.gen, next)

	case spinner.TickMsg:
		if !m.ctrl.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case copyResultMsg:
		m.copyErr = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.copied = true
		return m, clearCopiedAfter(2 * time.Second)

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m JournalModel) handleKey(msg tea.KeyMsg) (JournalModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submit()
	case "up":
		if m.showPrompts() {
			m.selectPrompt(m.selected - 1)
		}
		return m, nil
	case "down":
		if m.showPrompts() {
			m.selectPrompt(m.selected + 1)
		}
		return m, nil
	case "ctrl+y":
		return m, m.copyReflection()
	case "ctrl+l":
		if !m.ctrl.Loading() {
			m.ctrl.Reset()
			m.selected = -1
			m.copyErr = nil
		}
		return m, nil
	}

	// The input is disabled while a request is in flight.
	if m.ctrl.Loading() {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetEntry(m.input.Value())
	return m, cmd
}

// submit starts a request for the current input.
func (m JournalModel) submit() (JournalModel, tea.Cmd) {
	if m.ctrl.Loading() {
		return m, nil
	}

	m.ctrl.SetEntry(m.input.Value())
	req, ok := m.ctrl.Submit()
	if !ok {
		return m, nil
	}

	m.input.SetValue("")
	m.input.Blur()
	m.selected = -1
	m.copied = false
	m.copyErr = nil

	return m, tea.Batch(m.spinner.Tick, m.submitCmd(req))
}

// submitCmd creates a command that performs the request.
func (m JournalModel) submitCmd(req session.Request) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		res, err := client.SubmitEntry(context.Background(), req.Entry)
		return reflectResultMsg{seq: req.Seq, result: res, err: err}
	}
}

// copyReflection copies the finished reveal to the clipboard.
func (m JournalModel) copyReflection() tea.Cmd {
	res := m.ctrl.Result()
	if !m.canCopy || res == nil || res.Empty() || !m.ctrl.Sequencer().Done() {
		return nil
	}

	var b strings.Builder
	b.WriteString(res.Reflection)
	if res.Affirmation != "" {
		b.WriteString("\n\n")
		b.WriteString(res.Affirmation)
	}
	for _, f := range res.FollowUps {
		b.WriteString("\n- ")
		b.WriteString(f)
	}

	text := b.String()
	write := m.writeClipboard
	return func() tea.Msg {
		return copyResultMsg{err: write(text)}
	}
}

func (m *JournalModel) selectPrompt(i int) {
	if len(m.prompts) == 0 {
		return
	}
	if i < 0 {
		i = len(m.prompts) - 1
	}
	if i >= len(m.prompts) {
		i = 0
	}
	m.selected = i
	m.input.SetValue(m.prompts[i].Text)
	m.input.CursorEnd()
	m.ctrl.SetEntry(m.input.Value())
}

// showPrompts reports whether the example prompts are on screen: only before
// any response exists and while nothing is loading or revealing.
func (m JournalModel) showPrompts() bool {
	return m.ctrl.Result() == nil && !m.ctrl.Loading() && !m.ctrl.Sequencer().Active()
}

// View renders the journal view.
func (m JournalModel) View() string {
	var b strings.Builder

	header := titleStyle.Render(" AI Reflection ") + "  " +
		subtitleStyle.Render("Write it down, watch it reflect back")
	b.WriteString(header)
	b.WriteString("\n\n")

	if m.showPrompts() {
		b.WriteString(m.renderPrompts())
		b.WriteString("\n")
	}

	if m.ctrl.Loading() || m.ctrl.Result() != nil {
		b.WriteString(m.renderResponse())
		b.WriteString("\n")
	}

	b.WriteString(m.renderInputBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

// renderPrompts renders the example prompt cards.
func (m JournalModel) renderPrompts() string {
	width := m.contentWidth()
	cardWidth := (width - 6) / maxInt(1, len(m.prompts))
	stacked := cardWidth < 18
	if stacked {
		cardWidth = width - 4
	}

	var cards []string
	for i, p := range m.prompts {
		style := promptCardStyle
		if i == m.selected {
			style = promptCardActiveStyle
		}
		body := wordWrap(p.Text, maxInt(8, cardWidth-4))
		if p.Icon != "" {
			body = promptIconStyle.Render(p.Icon) + "\n" + body
		}
		cards = append(cards, style.Width(cardWidth).Render(body))
	}

	if stacked {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderResponse renders the loading indicator or the revealed reflection.
func (m JournalModel) renderResponse() string {
	if m.ctrl.Loading() {
		return loadingStyle.Render(m.spinner.View() + " Reflecting on your entry...")
	}

	st := m.ctrl.Reveal()
	width := m.contentWidth()
	var b strings.Builder

	reflection := wordWrap(st.Reflection, width)
	b.WriteString(reflectionStyle.Render(reflection))
	if st.TypingReflection {
		b.WriteString(cursorStyle.Render("|"))
	}
	b.WriteString("\n\n")

	if st.Affirmation != "" {
		b.WriteString(affirmationLabelStyle.Render("✨ Affirmation:"))
		b.WriteString(" ")
		b.WriteString(affirmationStyle.Render(wordWrap(st.Affirmation, width-16)))
		if st.TypingAffirmation {
			b.WriteString(cursorStyle.Render("|"))
		}
		b.WriteString("\n")
	}

	if len(st.FollowUps) > 0 {
		b.WriteString(m.renderFollowUps(st))
	}

	return b.String()
}

// renderFollowUps renders the "Reflect On This" section.
func (m JournalModel) renderFollowUps(st reveal.State) string {
	width := minInt(m.contentWidth(), 80)

	var b strings.Builder
	b.WriteString(followUpHeaderStyle.Render("Reflect On This"))
	b.WriteString("\n")
	for _, f := range st.FollowUps {
		b.WriteString(followUpCardStyle.Width(width - 2).Render(wordWrap(f, width-6)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderInputBar renders the entry input with its send indicator.
func (m JournalModel) renderInputBar() string {
	send := sendStyle.Render("➤")
	if m.ctrl.Loading() {
		send = m.spinner.View()
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), " ", send)
	return inputBarStyle.Width(m.contentWidth()).Render(bar)
}

// renderHelp renders the key hints and clipboard status.
func (m JournalModel) renderHelp() string {
	var parts []string
	if m.showPrompts() {
		parts = append(parts, "↑/↓: examples")
	}
	parts = append(parts, "enter: reflect")
	if m.ctrl.Result() != nil && m.ctrl.Sequencer().Done() {
		if m.canCopy && !m.ctrl.Result().Empty() {
			parts = append(parts, "ctrl+y: copy")
		}
		parts = append(parts, "ctrl+l: clear")
	}
	parts = append(parts, "tab: menu")

	help := helpStyle.Render("  " + strings.Join(parts, " • "))
	switch {
	case m.copied:
		help += "  " + copiedStyle.Render("Copied!")
	case m.copyErr != nil:
		help += "  " + errorStyle.Render(fmt.Sprintf("Copy failed: %v", m.copyErr))
	}
	return help
}

func (m JournalModel) contentWidth() int {
	if m.width <= 0 {
		return 76
	}
	return maxInt(20, m.width-4)
}
