// Package translator renders English text in Urdu. The offline path is a
// greedy phrase-dictionary substitution that needs no network access; the
// Service type prefers a networked translation and falls back to it.
package translator

import "strings"

const (
	// urduFullStop separates translated sentences.
	urduFullStop = "۔"

	// maxPhraseWords is the longest dictionary phrase considered.
	maxPhraseWords = 3
)

// Translator performs dictionary-based translation.
type Translator struct {
	dict *Dictionary
}

// NewTranslator returns a Translator backed by dict. A nil dict uses the
// built-in dictionary.
func NewTranslator(dict *Dictionary) *Translator {
	if dict == nil {
		dict = Default()
	}
	return &Translator{dict: dict}
}

// TranslateOffline translates text with the built-in dictionary.
func TranslateOffline(text string) string {
	return NewTranslator(nil).TranslateOffline(text)
}

// TranslateOffline translates text sentence by sentence. Within a sentence
// tokens are matched longest phrase first (three words, then two, then
// one). The scan never backtracks: once a phrase consumes a token that
// token is not reconsidered. Tokens with no entry are emitted unchanged.
//
// The result always ends with the Urdu full stop, so an empty input yields
// "۔".
func (t *Translator) TranslateOffline(text string) string {
	sentences := splitSentences(text)

	translated := make([]string, 0, len(sentences))
	for _, s := range sentences {
		translated = append(translated, t.translateSentence(s))
	}

	return strings.Join(translated, urduFullStop+" ") + urduFullStop
}

func (t *Translator) translateSentence(sentence string) string {
	words := strings.Fields(strings.ToLower(sentence))
	cleaned := make([]string, len(words))
	for i, w := range words {
		cleaned[i] = Clean(w)
	}

	out := make([]string, 0, len(words))
	for i := 0; i < len(words); {
		n, urdu := t.match(cleaned, i)
		if n == 0 {
			out = append(out, words[i])
			i++
			continue
		}
		out = append(out, urdu)
		i += n
	}

	return strings.Join(out, " ")
}

// match reports how many tokens starting at i are covered by the longest
// dictionary entry, or zero when there is none.
func (t *Translator) match(cleaned []string, i int) (int, string) {
	for n := maxPhraseWords; n >= 1; n-- {
		if i+n > len(cleaned) {
			continue
		}
		key := strings.Join(cleaned[i:i+n], " ")
		if urdu, ok := t.dict.Lookup(key); ok {
			return n, urdu
		}
	}
	return 0, ""
}

// splitSentences splits on terminal punctuation and drops blank spans.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, isTerminal)
	sentences := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
