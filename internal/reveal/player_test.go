package reveal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/f3rmion/journal/internal/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastTiming() Timing {
	return Timing{CharDelay: time.Millisecond, PhasePause: 2 * time.Millisecond}
}

func TestPlayer_Play(t *testing.T) {
	r := journal.Reflection{Reflection: "calm", Affirmation: "yes", FollowUps: []string{"why?"}}
	p := NewPlayer(New(fastTiming()))

	var frames []State
	err := p.Play(context.Background(), r, func(s State) {
		frames = append(frames, s)
	})
	require.NoError(t, err)
	require.NotEmpty(t, frames)

	first := frames[0]
	assert.Equal(t, "", first.Reflection)
	assert.True(t, first.TypingReflection)

	last := frames[len(frames)-1]
	assert.Equal(t, "calm", last.Reflection)
	assert.Equal(t, "yes", last.Affirmation)
	assert.Equal(t, []string{"why?"}, last.FollowUps)

	for _, f := range frames {
		assert.False(t, f.TypingReflection && f.TypingAffirmation)
	}
}

func TestPlayer_PlayCancelled(t *testing.T) {
	seq := New(Timing{CharDelay: time.Hour, PhasePause: time.Hour})
	p := NewPlayer(seq)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- p.Play(ctx, journal.Reflection{Reflection: "never"}, func(State) {})
	}()

	cancel()
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		t.Fatal("Play did not return after cancel")
	}
}

func TestPlayer_Skip(t *testing.T) {
	p := NewPlayer(New(DefaultTiming()))

	calls := 0
	var got State
	p.Skip(journal.Reflection{Reflection: "r", Affirmation: "a", FollowUps: []string{"f"}}, func(s State) {
		calls++
		got = s
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, State{Reflection: "r", Affirmation: "a", FollowUps: []string{"f"}}, got)
}
