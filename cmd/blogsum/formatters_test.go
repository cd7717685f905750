package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"

	wrapped := wrapText(text, 10)

	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 10, line)
	}
	assert.Equal(t, text, strings.Join(strings.Fields(wrapped), " "))
}

func TestWrapText_CountsRunes(t *testing.T) {
	wrapped := wrapText("اچھا اچھا اچھا", 9)

	assert.Equal(t, "اچھا اچھا\nاچھا", wrapped)
}

func TestWrapText_Empty(t *testing.T) {
	assert.Equal(t, "", wrapText("", 10))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ایک...", truncate("ایک مختصر", 6))
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n  b", indent("a\nb", "  "))
}
