package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pevans/blogsum/pipeline"
	"github.com/pevans/blogsum/summaries"
)

// printResult prints a freshly processed post
func printResult(r *pipeline.Result) {
	fmt.Printf("✓ %s\n", r.Title)
	fmt.Printf("   URL: %s\n", r.URL)
	fmt.Printf("   Words: %d | Summary: %s | Translation: %s | %dms\n",
		r.WordCount, r.SummaryMethod, r.TranslationMethod, r.ProcessingTime)
	fmt.Printf("   ID: %s\n", r.ID.String())
	fmt.Println()
	fmt.Println(indent(wrapText(r.Summary, 76), "   "))
	fmt.Println()
	fmt.Println(indent(wrapText(r.UrduSummary, 76), "   "))
	fmt.Println()
}

// printSummary prints one stored summary in full
func printSummary(s *summaries.Summary) {
	fmt.Printf("%s\n", s.Title)
	fmt.Printf("URL: %s\n", s.URL)
	fmt.Printf("ID: %s\n", s.ID.String())
	fmt.Printf("Created: %s\n", s.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Printf("Words: %d | Summary: %s | Translation: %s | %dms\n",
		s.WordCount, s.SummaryMethod, s.TranslationMethod, s.ProcessingTime)
	fmt.Println()
	fmt.Println("Summary:")
	fmt.Println(wrapText(s.Summary, 80))
	fmt.Println()
	fmt.Println("Urdu:")
	fmt.Println(wrapText(s.UrduSummary, 80))
}

// printSummaryTable prints summaries in human-readable table format
func printSummaryTable(list []summaries.Summary) {
	if len(list) == 0 {
		fmt.Println("No summaries to display.")
		return
	}

	fmt.Printf("%-36s %-16s %-8s %s\n", "ID", "CREATED", "METHOD", "TITLE")
	fmt.Println("----------------------------------------------------------------------------------------------------")

	for _, s := range list {
		fmt.Printf("%-36s %-16s %-8s %s\n",
			s.ID.String(),
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
			s.SummaryMethod,
			truncate(s.Title, 50),
		)
	}
}

// printJSON prints v as indented JSON
func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to marshal JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(data))
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// indent prefixes every line of text
func indent(text, prefix string) string {
	return prefix + strings.ReplaceAll(text, "\n", "\n"+prefix)
}

// wrapText wraps text to a maximum line width, counted in runes
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	var currentLine strings.Builder
	lineLen := 0

	for _, word := range words {
		wordLen := len([]rune(word))
		if lineLen == 0 {
			currentLine.WriteString(word)
			lineLen = wordLen
		} else if lineLen+1+wordLen <= width {
			currentLine.WriteString(" ")
			currentLine.WriteString(word)
			lineLen += 1 + wordLen
		} else {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentLine.WriteString(word)
			lineLen = wordLen
		}
	}

	if lineLen > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, "\n")
}
