// Package reveal implements the staged typewriter reveal of a reflection:
// the reflection is typed out, then the affirmation, then the follow-up
// prompts appear as a block.
//
// The Sequencer owns no timers. Every step returns the delay until the next
// step and the caller schedules it. Each reveal cycle is tagged with a
// generation number; steps carrying an old generation are ignored, so a
// restarted or cancelled sequencer cannot be written to by a leftover timer.
package reveal

import (
	"time"

	"github.com/f3rmion/journal/internal/journal"
)

// Phase is a stage of the reveal cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTypingReflection
	PhasePauseBeforeAffirmation
	PhaseTypingAffirmation
	PhasePauseBeforeFollowUps
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTypingReflection:
		return "typing-reflection"
	case PhasePauseBeforeAffirmation:
		return "pause-before-affirmation"
	case PhaseTypingAffirmation:
		return "typing-affirmation"
	case PhasePauseBeforeFollowUps:
		return "pause-before-follow-ups"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Timing holds the reveal cadence.
type Timing struct {
	CharDelay  time.Duration // Delay between two typed characters
	PhasePause time.Duration // Pause after each typing phase
}

// DefaultTiming returns the standard cadence: 25ms per character, 500ms pauses.
func DefaultTiming() Timing {
	return Timing{
		CharDelay:  25 * time.Millisecond,
		PhasePause: 500 * time.Millisecond,
	}
}

// State is the visible part of a reveal.
type State struct {
	Reflection        string   // Typed prefix of the reflection
	Affirmation       string   // Typed prefix of the affirmation
	FollowUps         []string // Empty until revealed, then the full list
	TypingReflection  bool
	TypingAffirmation bool
}

// Sequencer drives one reveal cycle at a time.
type Sequencer struct {
	timing Timing
	gen    uint64
	phase  Phase

	reflection  []rune
	affirmation []rune
	followUps   []string

	reflectionPos  int
	affirmationPos int
	shownFollowUps []string
}

// New creates an idle sequencer. Zero durations in timing fall back to the
// defaults.
func New(timing Timing) *Sequencer {
	def := DefaultTiming()
	if timing.CharDelay <= 0 {
		timing.CharDelay = def.CharDelay
	}
	if timing.PhasePause <= 0 {
		timing.PhasePause = def.PhasePause
	}
	return &Sequencer{timing: timing}
}

// Timing returns the cadence in use.
func (s *Sequencer) Timing() Timing {
	return s.timing
}

// Gen returns the generation of the current cycle.
func (s *Sequencer) Gen() uint64 {
	return s.gen
}

// Phase returns the current phase.
func (s *Sequencer) Phase() Phase {
	return s.phase
}

// Done reports whether the current cycle has finished.
func (s *Sequencer) Done() bool {
	return s.phase == PhaseDone
}

// Active reports whether a cycle is in progress.
func (s *Sequencer) Active() bool {
	return s.phase != PhaseIdle && s.phase != PhaseDone
}

// Start begins a new cycle for r. Any previous cycle is invalidated.
// It returns the new generation and the delay before the first Advance.
func (s *Sequencer) Start(r journal.Reflection) (uint64, time.Duration) {
	s.reset()
	s.reflection = []rune(r.Reflection)
	s.affirmation = []rune(r.Affirmation)
	s.followUps = append([]string{}, r.FollowUps...)

	if len(s.reflection) == 0 {
		s.phase = PhasePauseBeforeAffirmation
		return s.gen, s.timing.PhasePause
	}
	s.phase = PhaseTypingReflection
	return s.gen, s.timing.CharDelay
}

// Cancel invalidates the current cycle and clears all visible state.
func (s *Sequencer) Cancel() {
	s.reset()
}

// Advance performs one step of the cycle identified by gen. It returns the
// delay before the next step and whether one is needed. A gen that does not
// match the current cycle is ignored.
func (s *Sequencer) Advance(gen uint64) (time.Duration, bool) {
	if gen != s.gen {
		return 0, false
	}

	switch s.phase {
	case PhaseTypingReflection:
		s.reflectionPos++
		if s.reflectionPos < len(s.reflection) {
			return s.timing.CharDelay, true
		}
		s.phase = PhasePauseBeforeAffirmation
		return s.timing.PhasePause, true

	case PhasePauseBeforeAffirmation:
		if len(s.affirmation) == 0 {
			s.phase = PhasePauseBeforeFollowUps
			return s.timing.PhasePause, true
		}
		s.phase = PhaseTypingAffirmation
		return s.timing.CharDelay, true

	case PhaseTypingAffirmation:
		s.affirmationPos++
		if s.affirmationPos < len(s.affirmation) {
			return s.timing.CharDelay, true
		}
		s.phase = PhasePauseBeforeFollowUps
		return s.timing.PhasePause, true

	case PhasePauseBeforeFollowUps:
		s.shownFollowUps = append([]string{}, s.followUps...)
		s.phase = PhaseDone
		return 0, false
	}

	return 0, false
}

// Finish jumps the current cycle straight to its final state.
func (s *Sequencer) Finish() {
	if s.phase == PhaseIdle {
		return
	}
	s.reflectionPos = len(s.reflection)
	s.affirmationPos = len(s.affirmation)
	s.shownFollowUps = append([]string{}, s.followUps...)
	s.phase = PhaseDone
}

// State returns a snapshot of the visible reveal.
func (s *Sequencer) State() State {
	return State{
		Reflection:        string(s.reflection[:s.reflectionPos]),
		Affirmation:       string(s.affirmation[:s.affirmationPos]),
		FollowUps:         append([]string{}, s.shownFollowUps...),
		TypingReflection:  s.phase == PhaseTypingReflection,
		TypingAffirmation: s.phase == PhaseTypingAffirmation,
	}
}

// Total returns how long a full cycle for r takes with the current timing.
func (s *Sequencer) Total(r journal.Reflection) time.Duration {
	chars := len([]rune(r.Reflection)) + len([]rune(r.Affirmation))
	return time.Duration(chars)*s.timing.CharDelay + 2*s.timing.PhasePause
}

func (s *Sequencer) reset() {
	s.gen++
	s.phase = PhaseIdle
	s.reflection = nil
	s.affirmation = nil
	s.followUps = nil
	s.reflectionPos = 0
	s.affirmationPos = 0
	s.shownFollowUps = nil
}
