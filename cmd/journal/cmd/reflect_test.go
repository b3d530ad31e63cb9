package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/f3rmion/journal/internal/reveal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEntry(t *testing.T) {
	got, err := readEntry([]string{"I", "feel", "anxious"}, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "I feel anxious", got)

	got, err = readEntry(nil, strings.NewReader("from stdin\n"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin\n", got)
}

func TestStatePrinter_WritesOnlyNewText(t *testing.T) {
	var buf bytes.Buffer
	p := &statePrinter{w: &buf}

	p.render(reveal.State{Reflection: "", TypingReflection: true})
	p.render(reveal.State{Reflection: "Yo", TypingReflection: true})
	p.render(reveal.State{Reflection: "You"})
	p.render(reveal.State{Reflection: "You", Affirmation: "B", TypingAffirmation: true})
	p.render(reveal.State{Reflection: "You", Affirmation: "Be"})
	p.render(reveal.State{Reflection: "You", Affirmation: "Be", FollowUps: []string{"Why?"}})
	p.render(reveal.State{Reflection: "You", Affirmation: "Be", FollowUps: []string{"Why?"}})

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "You\n\n"))
	assert.Equal(t, 1, strings.Count(out, "Affirmation:"))
	assert.Contains(t, out, " Be")
	assert.Equal(t, 1, strings.Count(out, "• Why?"))
}
