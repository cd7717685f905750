package summarizer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedChooser(i int) Chooser {
	return func(n int) int { return i }
}

// TestSummarize_FallbackWhenNothingEligible verifies the fallback literal
func TestSummarize_FallbackWhenNothingEligible(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "too short", content: "Hello"},
		{name: "only short sentences", content: "Yes. No. Maybe so. Fine!"},
		{name: "only long sentence", content: strings.Repeat("word ", 80)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, FallbackSummary, Summarize(tt.content, "Title"))
		})
	}
}

// TestSummarize_ExampleArticle verifies the scoring of a small article
func TestSummarize_ExampleArticle(t *testing.T) {
	content := "The research is important. This is a filler sentence about nothing in particular that adds no value. The conclusion shows significant results with 42% improvement."
	title := "Research Study"

	s := New(WithChooser(fixedChooser(0)))
	sentences := Sentences(content)
	require.Len(t, sentences, 3)

	assert.Equal(t, 19, s.Score(sentences[0], 3, title), "two keywords plus title overlap")
	assert.Equal(t, 18, s.Score(sentences[1], 3, title), "length and position only")
	assert.Equal(t, 29, s.Score(sentences[2], 3, title), "three keywords plus numeric content")

	// ceil(3 * 0.25) = 1, so only the best sentence survives.
	assert.Equal(t, "The conclusion shows significant results with 42% improvement.", s.Summarize(content, title))
}

// TestSummarize_PreservesOriginalOrder verifies selected sentences keep
// their source order
func TestSummarize_PreservesOriginalOrder(t *testing.T) {
	filler := "This line talks about the weather outside"
	parts := make([]string, 12)
	for i := range parts {
		parts[i] = filler
	}
	// Highest scores land on the later sentence first to prove the re-sort.
	parts[3] = "The key research result is important evidence alpha"
	parts[7] = "The key research result is important evidence bravo"
	parts[10] = "The key research result is important evidence charlie"
	content := strings.Join(parts, ". ") + "."

	got := New().Summarize(content, "")

	want := "The key research result is important evidence alpha. " +
		"The key research result is important evidence bravo. " +
		"The key research result is important evidence charlie."
	assert.Equal(t, want, got)
}

// TestSummarize_AddsTerminalPunctuation verifies the summary always ends a
// sentence
func TestSummarize_AddsTerminalPunctuation(t *testing.T) {
	got := Summarize("Hello there my friend, how are you doing", "")

	assert.Equal(t, "Hello there my friend, how are you doing.", got)
}

// TestSummarize_EndsWithTerminal checks the ending property on varied input
func TestSummarize_EndsWithTerminal(t *testing.T) {
	inputs := []string{
		"A sentence that is long enough to count!",
		"Is this sentence long enough to count? It certainly seems so to me.",
		"First sentence that should be eligible. Second sentence that should be eligible",
	}

	for _, in := range inputs {
		got := Summarize(in, "Some Title")
		require.NotEmpty(t, got)
		assert.True(t, endsWithTerminal(got), "summary %q should end with terminal punctuation", got)
	}
}

// TestSummarize_Conclusion verifies the synthetic conclusion with a fixed
// chooser
func TestSummarize_Conclusion(t *testing.T) {
	sentence := "Writers often describe the weather outside in long and winding paragraphs that go on and on"
	content := strings.Repeat(sentence+". ", 16)

	s := New(WithChooser(fixedChooser(2)))
	got := s.Summarize(content, "Machine Learning Basics Explained Today")

	body := strings.Repeat(sentence+". ", 3) + sentence + "."
	assert.Equal(t, body+" The key takeaways from this content are Machine, Learning, Basics and related concepts.", got)
}

// TestSummarize_ConclusionNeedsTitleWords verifies short titles add nothing
func TestSummarize_ConclusionNeedsTitleWords(t *testing.T) {
	sentence := "Writers often describe the weather outside in long and winding paragraphs that go on and on"
	content := strings.Repeat(sentence+". ", 16)

	got := New(WithChooser(fixedChooser(1))).Summarize(content, "A Go")

	assert.Equal(t, strings.Repeat(sentence+". ", 3)+sentence+".", got)
}

// TestSummarize_ChooserOutOfRange verifies a misbehaving chooser falls back
// to the first lead-in
func TestSummarize_ChooserOutOfRange(t *testing.T) {
	sentence := "Writers often describe the weather outside in long and winding paragraphs that go on and on"
	content := strings.Repeat(sentence+". ", 16)

	got := New(WithChooser(fixedChooser(99))).Summarize(content, "Weather Writing")

	assert.True(t, strings.HasSuffix(got, " In summary, this article discusses Weather, Writing and related concepts."))
}

// TestSentences verifies splitting and the length window
func TestSentences(t *testing.T) {
	content := "Short. This sentence is long enough to count! Another eligible sentence appears here?"

	got := Sentences(content)

	require.Len(t, got, 2)
	assert.Equal(t, Sentence{Text: "This sentence is long enough to count", Index: 0, Words: 7}, got[0])
	assert.Equal(t, Sentence{Text: "Another eligible sentence appears here", Index: 1, Words: 5}, got[1])
}

// TestSentences_LengthWindow verifies the inclusive lower and exclusive
// upper bound
func TestSentences_LengthWindow(t *testing.T) {
	tests := []struct {
		length   int
		eligible bool
	}{
		{19, false},
		{20, true},
		{299, true},
		{300, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d chars", tt.length), func(t *testing.T) {
			text := strings.Repeat("a", tt.length)
			assert.Equal(t, tt.eligible, len(Sentences(text)) == 1)
		})
	}
}

// TestScore_Components isolates each additive heuristic
func TestScore_Components(t *testing.T) {
	s := New()

	tests := []struct {
		name  string
		text  string
		title string
		want  int
	}{
		{name: "position only", text: "The cat sat on the mat today", want: 8},
		{name: "keyword counted once", text: "data data data everywhere in the room", want: 8 + 4},
		{name: "title overlap", text: "Learning about machines is fun for all", title: "Machine Learning in Go", want: 8 + 3 + 3},
		{name: "numeric content", text: "There were 300 people at the venue", want: 8 + 2},
		{name: "embedded question", text: "He asked why? nobody knew the answer", want: 8 + 3},
		{name: "generic penalty applied once", text: "please click here and subscribe now", want: 8 - 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sent := Sentence{Text: tt.text, Index: 0, Words: len(strings.Fields(tt.text))}
			assert.Equal(t, tt.want, s.Score(sent, 1, tt.title))
		})
	}
}

// TestPositionScore verifies the relative position bands
func TestPositionScore(t *testing.T) {
	assert.Equal(t, 8, positionScore(0, 10))
	assert.Equal(t, 12, positionScore(1, 10))
	assert.Equal(t, 12, positionScore(2, 10))
	assert.Equal(t, 10, positionScore(4, 10))
	assert.Equal(t, 10, positionScore(6, 10))
	assert.Equal(t, 6, positionScore(8, 10))
	assert.Equal(t, 6, positionScore(9, 10))
	assert.Equal(t, 0, positionScore(0, 0))
}

// TestLengthScore verifies the tight band takes precedence over the loose
// band
func TestLengthScore(t *testing.T) {
	tests := map[int]int{
		7: 0, 8: 5, 11: 5, 12: 8, 25: 8, 26: 5, 35: 5, 36: 0,
	}

	for words, want := range tests {
		assert.Equal(t, want, lengthScore(words), "words=%d", words)
	}
}

// TestSelect_Count verifies the selection limit
func TestSelect_Count(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{4, 1},
		{5, 2},
		{12, 3},
		{32, 8},
		{40, 8},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d sentences", tt.n), func(t *testing.T) {
			scored := make([]ScoredSentence, tt.n)
			for i := range scored {
				scored[i] = ScoredSentence{Sentence: Sentence{Index: i}, Score: i % 7}
			}
			assert.Len(t, Select(scored), tt.want)
		})
	}
}

// TestSelect_OrderAndTies verifies ranking, tie stability and re-sorting
func TestSelect_OrderAndTies(t *testing.T) {
	scored := []ScoredSentence{
		{Sentence: Sentence{Text: "a", Index: 0}, Score: 5},
		{Sentence: Sentence{Text: "b", Index: 1}, Score: 9},
		{Sentence: Sentence{Text: "c", Index: 2}, Score: 5},
		{Sentence: Sentence{Text: "d", Index: 3}, Score: 1},
		{Sentence: Sentence{Text: "e", Index: 4}, Score: 7},
		{Sentence: Sentence{Text: "f", Index: 5}, Score: 5},
		{Sentence: Sentence{Text: "g", Index: 6}, Score: 0},
		{Sentence: Sentence{Text: "h", Index: 7}, Score: 2},
		{Sentence: Sentence{Text: "i", Index: 8}, Score: 5},
	}

	// ceil(9 * 0.25) = 3: b (9), e (7), then a wins the four-way tie at 5.
	got := Select(scored)

	var texts []string
	for _, s := range got {
		texts = append(texts, s.Text)
	}
	assert.Equal(t, []string{"a", "b", "e"}, texts)
	assert.Equal(t, "a", scored[0].Text, "input must not be reordered")
	assert.Equal(t, "b", scored[1].Text)
}
