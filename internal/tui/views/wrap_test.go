package views

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestWordWrap(t *testing.T) {
	got := wordWrap("the quick brown fox jumps over the lazy dog", 10)
	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, runewidth.StringWidth(line), 10, "line %q too wide", line)
	}
	assert.Equal(t, "the quick brown fox jumps over the lazy dog", strings.ReplaceAll(got, "\n", " "))
}

func TestWordWrap_WideRunes(t *testing.T) {
	got := wordWrap("你好 世界 你好", 5)
	assert.Equal(t, "你好\n世界\n你好", got)
}

func TestWordWrap_Empty(t *testing.T) {
	assert.Equal(t, "", wordWrap("   ", 10))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
