package translator

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTranslateOffline_Empty verifies the boundary literal for empty input
func TestTranslateOffline_Empty(t *testing.T) {
	assert.Equal(t, "۔", TranslateOffline(""))
	assert.Equal(t, "۔", TranslateOffline("   "))
	assert.Equal(t, "۔", TranslateOffline("...!!??"), "punctuation-only input has no sentences")
}

// TestTranslateOffline_SingleWordHit verifies word hits and pass-through
func TestTranslateOffline_SingleWordHit(t *testing.T) {
	assert.Equal(t, "اچھا morning۔", TranslateOffline("good morning"))
}

// TestTranslateOffline_TwoWordPhrase verifies that a phrase entry wins over
// its individual words
func TestTranslateOffline_TwoWordPhrase(t *testing.T) {
	// "to" alone maps to "کو"; the phrase must be emitted as one group.
	assert.Equal(t, "کے مطابق یہ report۔", TranslateOffline("According to the report."))
}

// TestTranslateOffline_ThreeWordPhrase verifies the three-word window is
// tried first
func TestTranslateOffline_ThreeWordPhrase(t *testing.T) {
	assert.Equal(t, "کے لیے succeed۔", TranslateOffline("in order to succeed"))
}

// TestTranslateOffline_CraftedThreeWordPhrase verifies phrase precedence
// with an injected dictionary
func TestTranslateOffline_CraftedThreeWordPhrase(t *testing.T) {
	dict := NewDictionary(map[string]string{
		"at the end": "آخر میں",
		"at":         "پر",
		"the":        "یہ",
		"end":        "اختتام",
		"the end":    "اختتام پر",
	})
	tr := NewTranslator(dict)

	assert.Equal(t, "آخر میں۔", tr.TranslateOffline("At the end"))
	assert.Equal(t, "آخر میں۔", tr.TranslateOffline("at, the end"),
		"cleaned tokens still form the three-word key")
	assert.Equal(t, "اختتام پر۔", tr.TranslateOffline("the end"))
	assert.Equal(t, "so اختتام پر۔", tr.TranslateOffline("so the end"),
		"two-word window applies when the three-word key misses")
}

// TestTranslateOffline_GreedyNoBacktrack verifies the scan keeps the first
// match even when another segmentation would match more
func TestTranslateOffline_GreedyNoBacktrack(t *testing.T) {
	dict := NewDictionary(map[string]string{
		"a b":   "X",
		"b c d": "Y",
	})
	tr := NewTranslator(dict)

	assert.Equal(t, "X c d۔", tr.TranslateOffline("a b c d"))
}

// TestTranslateOffline_PunctuationHandling verifies lookup cleaning and
// pass-through of the uncleaned token
func TestTranslateOffline_PunctuationHandling(t *testing.T) {
	tr := NewTranslator(NewDictionary(map[string]string{
		"hello": "سلام",
		"world": "دنیا",
	}))

	assert.Equal(t, "سلام دنیا۔", tr.TranslateOffline("Hello, world!"))
	assert.Equal(t, "سلام (friend)۔", tr.TranslateOffline("Hello (Friend)"),
		"missing tokens keep their punctuation")
}

// TestTranslateOffline_MultipleSentences verifies sentence joining
func TestTranslateOffline_MultipleSentences(t *testing.T) {
	tr := NewTranslator(NewDictionary(map[string]string{
		"good": "اچھا",
		"bad":  "برا",
	}))

	assert.Equal(t, "اچھا day۔ برا day۔", tr.TranslateOffline("Good day. Bad day!"))
	assert.Equal(t, "اچھا۔ برا۔", tr.TranslateOffline("Good... bad?!"),
		"runs of terminal punctuation split once")
}

// TestTranslateOffline_ShortSentences verifies lookahead bounds at the end
// of a sentence
func TestTranslateOffline_ShortSentences(t *testing.T) {
	tr := NewTranslator(NewDictionary(map[string]string{
		"a b c": "ABC",
		"x":     "ایکس",
	}))

	assert.Equal(t, "ایکس۔", tr.TranslateOffline("x"))
	assert.Equal(t, "a b۔", tr.TranslateOffline("a b"))
	assert.Equal(t, "ABC ایکس۔", tr.TranslateOffline("a b c x"))
}

// TestTranslateOffline_NotIdempotent documents that translating Urdu output
// again is not expected to be stable
func TestTranslateOffline_NotIdempotent(t *testing.T) {
	once := TranslateOffline("good morning")
	twice := TranslateOffline(once)

	assert.NotEqual(t, once, twice, "a second pass appends another full stop")
}

// TestTranslateOffline_Concurrent verifies the default dictionary can be
// shared by concurrent callers
func TestTranslateOffline_Concurrent(t *testing.T) {
	const text = "The research is important. Technology helps people."
	want := TranslateOffline(text)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = TranslateOffline(text)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

// TestNewDictionary_NormalisesKeys verifies keys are lower-cased and cleaned
func TestNewDictionary_NormalisesKeys(t *testing.T) {
	dict := NewDictionary(map[string]string{
		"According  To!": "کے مطابق",
		"!!!":            "ignored",
	})

	v, ok := dict.Lookup("according to")
	require.True(t, ok)
	assert.Equal(t, "کے مطابق", v)
	assert.Equal(t, 1, dict.Len(), "keys that clean to nothing are dropped")
}

// TestNewDictionary_CopiesInput verifies later changes to the source map do
// not leak into the dictionary
func TestNewDictionary_CopiesInput(t *testing.T) {
	src := map[string]string{"good": "اچھا"}
	dict := NewDictionary(src)
	src["good"] = "changed"
	src["bad"] = "برا"

	v, _ := dict.Lookup("good")
	assert.Equal(t, "اچھا", v)
	_, ok := dict.Lookup("bad")
	assert.False(t, ok)
}

// TestDefault_Shared verifies the built-in dictionary is built once
func TestDefault_Shared(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Equal(t, 268, Default().Len())
}

// TestNilDictionary verifies lookups on a nil dictionary miss
func TestNilDictionary(t *testing.T) {
	var d *Dictionary
	_, ok := d.Lookup("good")
	assert.False(t, ok)
	assert.Equal(t, 0, d.Len())
}

// TestClean verifies the lookup normalisation
func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello,", "hello"},
		{"well-known", "well-known"},
		{"snake_case", "snake_case"},
		{"42%", "42"},
		{"\"quoted\"", "quoted"},
		{"café", "caf"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}
