// Package journal provides the core types shared by the journal client.
package journal

import "strings"

// Fallback text shown when a reflection could not be fetched.
const (
	FallbackReflection  = "An error occurred."
	FallbackAffirmation = "Please try again later."
)

// Reflection is the server's answer to a journal entry.
// A Reflection is replaced wholesale per submission and never mutated in place.
type Reflection struct {
	Reflection  string   `json:"reflection" yaml:"reflection"`                     // Short empathetic commentary on the entry
	Affirmation string   `json:"affirmation" yaml:"affirmation"`                   // Brief supportive statement
	FollowUps   []string `json:"follow_ups,omitempty" yaml:"follow_ups,omitempty"` // Suggested next reflection topics
}

// Fallback returns the reflection shown when the service call fails.
func Fallback() Reflection {
	return Reflection{
		Reflection:  FallbackReflection,
		Affirmation: FallbackAffirmation,
		FollowUps:   []string{},
	}
}

// Clone returns a deep copy of r.
func (r Reflection) Clone() Reflection {
	out := r
	out.FollowUps = append([]string{}, r.FollowUps...)
	return out
}

// Empty reports whether r carries no text at all.
func (r Reflection) Empty() bool {
	return r.Reflection == "" && r.Affirmation == "" && len(r.FollowUps) == 0
}

// IsFallback reports whether r is the fixed error reflection.
func (r Reflection) IsFallback() bool {
	return r.Reflection == FallbackReflection &&
		r.Affirmation == FallbackAffirmation &&
		len(r.FollowUps) == 0
}

// ExamplePrompt is a canned entry the user can pick instead of typing.
type ExamplePrompt struct {
	ID   string `yaml:"id" json:"id"`                         // Unique identifier (e.g., "anxious")
	Icon string `yaml:"icon,omitempty" json:"icon,omitempty"` // Short glyph shown on the card
	Text string `yaml:"text" json:"text"`                     // Entry text used to prefill the input
}

// DefaultPrompts returns the built-in example prompts.
func DefaultPrompts() []ExamplePrompt {
	return []ExamplePrompt{
		{ID: "anxious", Icon: "☹", Text: "I’ve been feeling anxious and overwhelmed lately."},
		{ID: "uncertain", Icon: "?", Text: "I’m not sure if I’m making the right life choices."},
		{ID: "grateful", Icon: "☺", Text: "I had a great day and want to reflect on it."},
	}
}

// NormalizeEntry trims surrounding whitespace from an entry.
// An empty result means the entry must not be submitted.
func NormalizeEntry(entry string) string {
	return strings.TrimSpace(entry)
}
