package views

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/journal/internal/journal"
	"github.com/f3rmion/journal/internal/reveal"
	"github.com/f3rmion/journal/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmitter struct {
	entries []string
	result  journal.Reflection
	err     error
}

func (f *fakeSubmitter) SubmitEntry(_ context.Context, entry string) (journal.Reflection, error) {
	f.entries = append(f.entries, entry)
	return f.result, f.err
}

func newJournal(t *testing.T, sub Submitter) JournalModel {
	t.Helper()
	ctrl := session.New(reveal.New(reveal.DefaultTiming()), nil)
	m := NewJournalModel(ctrl, sub, nil)
	m.SetSize(100, 40)
	return m
}

func typeText(m JournalModel, s string) JournalModel {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func pressEnter(m JournalModel) (JournalModel, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

// finishReveal delivers reveal ticks for the current generation until done.
func finishReveal(t *testing.T, m JournalModel) JournalModel {
	t.Helper()
	gen := m.ctrl.Sequencer().Gen()
	for i := 0; i < 10000; i++ {
		var cmd tea.Cmd
		m, cmd = m.Update(revealTickMsg{gen: gen})
		if cmd == nil {
			return m
		}
	}
	t.Fatal("reveal did not finish")
	return m
}

func TestJournal_EmptyEnterIsNoop(t *testing.T) {
	sub := &fakeSubmitter{}
	m := newJournal(t, sub)

	m = typeText(m, "   ")
	m, cmd := pressEnter(m)

	assert.Nil(t, cmd)
	assert.False(t, m.ctrl.Loading())
	assert.Equal(t, uint64(0), m.ctrl.Seq())
}

func TestJournal_SubmitAndReveal(t *testing.T) {
	sub := &fakeSubmitter{result: journal.Reflection{
		Reflection:  "You are valid.",
		Affirmation: "Breathe.",
		FollowUps:   []string{"What triggered this?"},
	}}
	m := newJournal(t, sub)

	m = typeText(m, "I feel anxious")
	m, cmd := pressEnter(m)
	require.NotNil(t, cmd)
	assert.True(t, m.ctrl.Loading())
	assert.Equal(t, "", m.input.Value())
	assert.Contains(t, m.View(), "Reflecting on your entry")
	assert.NotContains(t, m.View(), "I’ve been feeling anxious", "example prompts hidden while loading")

	msg := m.submitCmd(session.Request{Seq: m.ctrl.Seq(), Entry: "I feel anxious"})()
	require.IsType(t, reflectResultMsg{}, msg)
	assert.Equal(t, []string{"I feel anxious"}, sub.entries)

	m, cmd = m.Update(msg)
	require.NotNil(t, cmd, "a reveal tick must be scheduled")
	assert.False(t, m.ctrl.Loading())
	assert.True(t, m.ctrl.Reveal().TypingReflection)

	m = finishReveal(t, m)
	view := m.View()
	assert.Contains(t, view, "You are valid.")
	assert.Contains(t, view, "Affirmation:")
	assert.Contains(t, view, "Breathe.")
	assert.Contains(t, view, "Reflect On This")
	assert.Contains(t, view, "What triggered this?")
}

func TestJournal_ErrorShowsFallback(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("connection refused")}
	m := newJournal(t, sub)

	m = typeText(m, "hello")
	m, _ = pressEnter(m)
	m, _ = m.Update(m.submitCmd(session.Request{Seq: m.ctrl.Seq(), Entry: "hello"})())
	m = finishReveal(t, m)

	view := m.View()
	assert.Contains(t, view, journal.FallbackReflection)
	assert.Contains(t, view, journal.FallbackAffirmation)
	assert.NotContains(t, view, "Reflect On This")
	assert.NotContains(t, view, "connection refused", "the error is logged, not shown")
}

func TestJournal_NoFollowUpsSection(t *testing.T) {
	sub := &fakeSubmitter{result: journal.Reflection{Reflection: "r", Affirmation: "a", FollowUps: []string{}}}
	m := newJournal(t, sub)

	m = typeText(m, "x")
	m, _ = pressEnter(m)
	m, _ = m.Update(m.submitCmd(session.Request{Seq: m.ctrl.Seq(), Entry: "x"})())
	m = finishReveal(t, m)

	assert.NotContains(t, m.View(), "Reflect On This")
}

func TestJournal_StaleTicksIgnoredAfterResubmit(t *testing.T) {
	m := newJournal(t, &fakeSubmitter{})

	m = typeText(m, "first")
	m, _ = pressEnter(m)
	m, _ = m.Update(reflectResultMsg{seq: m.ctrl.Seq(), result: journal.Reflection{Reflection: "first reflection"}})
	oldGen := m.ctrl.Sequencer().Gen()
	m, _ = m.Update(revealTickMsg{gen: oldGen})
	m, _ = m.Update(revealTickMsg{gen: oldGen})
	require.Equal(t, "fi", m.ctrl.Reveal().Reflection)

	m = typeText(m, "second")
	m, _ = pressEnter(m)
	assert.Equal(t, reveal.State{FollowUps: []string{}}, m.ctrl.Reveal())

	m, cmd := m.Update(revealTickMsg{gen: oldGen})
	assert.Nil(t, cmd)
	assert.Equal(t, "", m.ctrl.Reveal().Reflection)
}

func TestJournal_StaleResponseIgnored(t *testing.T) {
	m := newJournal(t, &fakeSubmitter{})

	m = typeText(m, "first")
	m, _ = pressEnter(m)
	firstSeq := m.ctrl.Seq()
	m, _ = m.Update(reflectResultMsg{seq: firstSeq, result: journal.Reflection{Reflection: "one"}})

	m = typeText(m, "second")
	m, _ = pressEnter(m)

	m, cmd := m.Update(reflectResultMsg{seq: firstSeq, result: journal.Reflection{Reflection: "late"}})
	assert.Nil(t, cmd)
	assert.True(t, m.ctrl.Loading())
	assert.Nil(t, m.ctrl.Result())
}

func TestJournal_InputDisabledWhileLoading(t *testing.T) {
	m := newJournal(t, &fakeSubmitter{})

	m = typeText(m, "entry")
	m, _ = pressEnter(m)
	m = typeText(m, "more")
	assert.Equal(t, "", m.input.Value())

	m, cmd := pressEnter(m)
	assert.Nil(t, cmd)
	assert.Equal(t, uint64(1), m.ctrl.Seq())
}

func TestJournal_ExamplePromptsPrefill(t *testing.T) {
	m := newJournal(t, &fakeSubmitter{})
	prompts := journal.DefaultPrompts()

	assert.Contains(t, m.View(), "overwhelmed")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, prompts[0].Text, m.input.Value())
	assert.Equal(t, prompts[0].Text, m.ctrl.Entry())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, prompts[1].Text, m.input.Value())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, prompts[len(prompts)-1].Text, m.input.Value(), "selection wraps around")
}

func TestJournal_CursorWhileTyping(t *testing.T) {
	m := newJournal(t, &fakeSubmitter{})

	m = typeText(m, "x")
	m, _ = pressEnter(m)
	m, _ = m.Update(reflectResultMsg{seq: m.ctrl.Seq(), result: journal.Reflection{Reflection: "abc", Affirmation: "d"}})
	m, _ = m.Update(revealTickMsg{gen: m.ctrl.Sequencer().Gen()})

	view := m.View()
	assert.True(t, strings.Contains(view, "a") && strings.Contains(view, "|"))
	assert.NotContains(t, view, "Affirmation:", "affirmation hidden until its first character")
}

func TestJournal_CopyReflection(t *testing.T) {
	sub := &fakeSubmitter{result: journal.Reflection{Reflection: "r", Affirmation: "a", FollowUps: []string{"f"}}}
	m := newJournal(t, sub)

	var copied string
	m.canCopy = true
	m.writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Nil(t, cmd, "nothing to copy before a reflection")

	m = typeText(m, "x")
	m, _ = pressEnter(m)
	m, _ = m.Update(m.submitCmd(session.Request{Seq: m.ctrl.Seq(), Entry: "x"})())
	m = finishReveal(t, m)

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())
	assert.Equal(t, "r\n\na\n- f", copied)
	assert.True(t, m.copied)
	assert.Contains(t, m.View(), "Copied!")

	m, _ = m.Update(clearCopiedMsg{})
	assert.False(t, m.copied)
}

func TestJournal_ClearResetsToPrompts(t *testing.T) {
	sub := &fakeSubmitter{result: journal.Reflection{Reflection: "r", Affirmation: "a"}}
	m := newJournal(t, sub)

	m = typeText(m, "x")
	m, _ = pressEnter(m)
	m, _ = m.Update(m.submitCmd(session.Request{Seq: m.ctrl.Seq(), Entry: "x"})())
	m = finishReveal(t, m)
	require.False(t, m.showPrompts())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.True(t, m.showPrompts())
	assert.Nil(t, m.ctrl.Result())
}

func TestJournal_CopyHintNeedsClipboard(t *testing.T) {
	sub := &fakeSubmitter{result: journal.Reflection{Reflection: "r", Affirmation: "a"}}
	m := newJournal(t, sub)
	m.writeClipboard = func(string) error {
		t.Fatal("clipboard written without a clipboard tool")
		return nil
	}

	m = typeText(m, "x")
	m, _ = pressEnter(m)
	m, _ = m.Update(m.submitCmd(session.Request{Seq: m.ctrl.Seq(), Entry: "x"})())
	m = finishReveal(t, m)

	m.canCopy = false
	view := m.View()
	assert.NotContains(t, view, "ctrl+y: copy")
	assert.Contains(t, view, "ctrl+l: clear")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Nil(t, cmd)

	m.canCopy = true
	assert.Contains(t, m.View(), "ctrl+y: copy")
}

func TestJournal_EmptyReflectionIsNotCopied(t *testing.T) {
	sub := &fakeSubmitter{result: journal.Reflection{}}
	m := newJournal(t, sub)
	m.canCopy = true
	m.writeClipboard = func(string) error {
		t.Fatal("empty reflection copied")
		return nil
	}

	m = typeText(m, "x")
	m, _ = pressEnter(m)
	m, _ = m.Update(m.submitCmd(session.Request{Seq: m.ctrl.Seq(), Entry: "x"})())
	m = finishReveal(t, m)
	require.True(t, m.ctrl.Sequencer().Done())

	assert.NotContains(t, m.View(), "ctrl+y: copy")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Nil(t, cmd)
}
