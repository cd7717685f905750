// Package summarizer produces short summaries of article text. The static
// summarizer is extractive: it scores sentences with simple heuristics and
// keeps the best ones in their original order. It never touches the
// network.
package summarizer

import (
	"math"
	"math/rand/v2"
	"sort"
	"strings"
	"unicode/utf8"
)

// FallbackSummary is returned when no sentence is eligible for scoring.
const FallbackSummary = "Unable to generate a meaningful summary from the provided content."

const (
	minSentenceChars = 20
	maxSentenceChars = 300

	maxSelected   = 8
	selectedRatio = 0.25

	// conclusionThreshold is the summary length above which a synthetic
	// conclusion is appended.
	conclusionThreshold = 300
	conclusionTopics    = 3
)

// significanceKeywords each add keywordScore when they appear anywhere in a
// sentence.
var significanceKeywords = []string{
	"important", "key", "main", "significant", "crucial", "essential",
	"primary", "major", "critical", "fundamental", "central", "core", "vital",
	"necessary", "conclusion", "result", "finding", "discovery", "research",
	"study", "analysis", "solution", "approach", "method", "strategy",
	"technique", "process", "benefit", "advantage", "impact", "effect",
	"influence", "consequence", "problem", "challenge", "issue", "difficulty",
	"concern", "example", "instance", "case", "evidence", "proof", "data",
	"statistics",
}

var genericPhrases = []string{
	"click here", "read more", "subscribe", "follow us", "share this",
}

var conclusionStarters = []string{
	"In summary, this article discusses",
	"Overall, the main points covered include",
	"The key takeaways from this content are",
	"This article primarily focuses on",
}

const (
	keywordScore    = 4
	titleWordScore  = 3
	numericScore    = 2
	questionScore   = 3
	genericPenalty  = -5
	tightLengthBand = 8
	looseLengthBand = 5
)

// Sentence is a candidate span of the source text.
type Sentence struct {
	Text  string
	Index int
	Words int
}

// ScoredSentence is a Sentence with its heuristic score.
type ScoredSentence struct {
	Sentence
	Score int
}

// Chooser picks an index in [0, n).
type Chooser func(n int) int

// Summarizer is the extractive summarizer. The zero value is not usable;
// create one with New.
type Summarizer struct {
	choose Chooser
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithChooser sets the function that picks the conclusion lead-in. Tests
// pass a fixed chooser to get reproducible output.
func WithChooser(c Chooser) Option {
	return func(s *Summarizer) {
		if c != nil {
			s.choose = c
		}
	}
}

// New creates a Summarizer. Without options the conclusion lead-in is
// chosen uniformly at random.
func New(opts ...Option) *Summarizer {
	s := &Summarizer{choose: rand.IntN}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSummarizer = New()

// Summarize summarizes content with the default Summarizer.
func Summarize(content, title string) string {
	return defaultSummarizer.Summarize(content, title)
}

// Sentences splits content on terminal punctuation and returns the
// trimmed spans whose length is within the eligible window, indexed in
// order of appearance among the eligible spans.
func Sentences(content string) []Sentence {
	var sentences []Sentence
	for _, part := range strings.FieldsFunc(content, isTerminal) {
		text := strings.TrimSpace(part)
		n := utf8.RuneCountInString(text)
		if n < minSentenceChars || n >= maxSentenceChars {
			continue
		}
		sentences = append(sentences, Sentence{
			Text:  text,
			Index: len(sentences),
			Words: len(strings.Fields(text)),
		})
	}
	return sentences
}

// Summarize returns an extractive summary of content. It always returns a
// non-empty string; when nothing in content is eligible it returns
// FallbackSummary.
func (s *Summarizer) Summarize(content, title string) string {
	sentences := Sentences(content)
	if len(sentences) == 0 {
		return FallbackSummary
	}

	titleWords := significantWords(strings.ToLower(title))

	scored := make([]ScoredSentence, len(sentences))
	for i, sent := range sentences {
		scored[i] = ScoredSentence{
			Sentence: sent,
			Score:    s.score(sent, len(sentences), titleWords),
		}
	}

	selected := Select(scored)
	texts := make([]string, len(selected))
	for i, sent := range selected {
		texts[i] = sent.Text
	}

	summary := strings.Join(texts, ". ")
	if !endsWithTerminal(summary) {
		summary += "."
	}

	if utf8.RuneCountInString(summary) > conclusionThreshold {
		summary += s.conclusion(title)
	}

	return summary
}

// Score computes the heuristic score of a sentence among total candidates.
func (s *Summarizer) Score(sent Sentence, total int, title string) int {
	return s.score(sent, total, significantWords(strings.ToLower(title)))
}

func (s *Summarizer) score(sent Sentence, total int, titleWords []string) int {
	lower := strings.ToLower(sent.Text)

	score := positionScore(sent.Index, total) + lengthScore(sent.Words)

	for _, kw := range significanceKeywords {
		if strings.Contains(lower, kw) {
			score += keywordScore
		}
	}

	for _, w := range titleWords {
		if strings.Contains(lower, w) {
			score += titleWordScore
		}
	}

	if strings.ContainsFunc(sent.Text, isDigit) {
		score += numericScore
	}

	if strings.Contains(sent.Text, "?") {
		score += questionScore
	}

	for _, phrase := range genericPhrases {
		if strings.Contains(lower, phrase) {
			score += genericPenalty
			break
		}
	}

	return score
}

// positionScore favours the early body of an article over its first lines.
func positionScore(index, total int) int {
	if total <= 0 {
		return 0
	}
	pos := float64(index)
	n := float64(total)
	switch {
	case pos < n*0.1:
		return 8
	case pos < n*0.3:
		return 12
	case pos < n*0.7:
		return 10
	default:
		return 6
	}
}

func lengthScore(words int) int {
	switch {
	case words >= 12 && words <= 25:
		return tightLengthBand
	case words >= 8 && words <= 35:
		return looseLengthBand
	default:
		return 0
	}
}

// Select returns the top-scoring sentences, at most min(8, ceil(N/4)),
// ordered by their original position. Ties keep source order.
func Select(scored []ScoredSentence) []ScoredSentence {
	if len(scored) == 0 {
		return nil
	}

	ranked := make([]ScoredSentence, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	limit := min(maxSelected, int(math.Ceil(float64(len(ranked))*selectedRatio)))
	top := ranked[:limit]

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Index < top[j].Index
	})
	return top
}

// conclusion builds the closing sentence from the first title words, or
// returns "" when the title has none long enough.
func (s *Summarizer) conclusion(title string) string {
	topics := significantWords(title)
	if len(topics) == 0 {
		return ""
	}
	if len(topics) > conclusionTopics {
		topics = topics[:conclusionTopics]
	}

	i := s.choose(len(conclusionStarters))
	if i < 0 || i >= len(conclusionStarters) {
		i = 0
	}

	return " " + conclusionStarters[i] + " " + strings.Join(topics, ", ") + " and related concepts."
}

// significantWords returns the whitespace-separated words of text longer
// than three characters, in order.
func significantWords(text string) []string {
	var words []string
	for _, w := range strings.Fields(text) {
		if utf8.RuneCountInString(w) > 3 {
			words = append(words, w)
		}
	}
	return words
}

func endsWithTerminal(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?")
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
