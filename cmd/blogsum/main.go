package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"github.com/pevans/blogsum/app"
	"github.com/pevans/blogsum/config"
	"github.com/pevans/blogsum/feeds"
	"github.com/pevans/blogsum/summaries"
	"github.com/pevans/blogsum/translator"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	subcommand := os.Args[1]
	args := os.Args[2:]

	switch subcommand {
	case "summarize":
		withApp(func(ctx context.Context, a *app.App) { handleSummarize(ctx, a, args) })
	case "translate":
		handleTranslate(args)
	case "list":
		withApp(func(ctx context.Context, a *app.App) { handleList(a, args) })
	case "show":
		withApp(func(ctx context.Context, a *app.App) { handleShow(a, args) })
	case "digest":
		withApp(func(ctx context.Context, a *app.App) { handleDigest(ctx, a, args) })
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n\n", subcommand)
		printUsage()
		os.Exit(1)
	}
}

// withApp loads the configuration, wires the app and runs fn with a context
// cancelled on interrupt.
func withApp(fn func(ctx context.Context, a *app.App)) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a, err := app.New(ctx, cfg, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	fn(ctx, a)
}

func printUsage() {
	fmt.Println("blogsum - Blog summarizer with Urdu translation")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  blogsum <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  summarize  Summarize a blog post: summarize [-format text|json] <url>")
	fmt.Println("  translate  Translate English text to Urdu offline: translate <text...>")
	fmt.Println("  list       List stored summaries: list [-limit N] [-url URL] [-method M]")
	fmt.Println("  show       Show a stored summary: show <id>")
	fmt.Println("  digest     Summarize the latest posts of a feed: digest [-limit N] <feed-url>")
	fmt.Println("  help       Show this help message")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  BLOGSUM_CONFIG             Path to config file (default: ~/.blogsum/config.yaml)")
	fmt.Println("  GOOGLE_GEMINI_API_KEY      Enables Gemini summaries for long posts")
	fmt.Println("  BLOGSUM_SUMMARIES_DSN      Path to summary database (default: ~/.blogsum/summaries.db)")
	fmt.Println("  BLOGSUM_CONTENTS_DIR       Path to scraped content storage (default: ~/.blogsum/contents)")
	fmt.Println("  BLOGSUM_TRANSLATE_ENABLED  Use Google Translate before the dictionary (default: true)")
	fmt.Println("  BLOGSUM_LOG_LEVEL          debug, info, warn or error (default: info)")
}

func handleSummarize(ctx context.Context, a *app.App, args []string) {
	fs := flag.NewFlagSet("summarize", flag.ExitOnError)
	format := fs.String("format", "text", "Output format: text, json")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: URL is required\n")
		fmt.Fprintf(os.Stderr, "Usage: blogsum summarize [-format text|json] <url>\n")
		os.Exit(1)
	}

	result, err := a.Pipeline.Process(ctx, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch *format {
	case "json":
		printJSON(result)
	case "text":
		printResult(result)
	default:
		fmt.Fprintf(os.Stderr, "Error: --format must be 'text' or 'json'\n")
		os.Exit(1)
	}
}

func handleTranslate(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: text is required\n")
		fmt.Fprintf(os.Stderr, "Usage: blogsum translate <text...>\n")
		os.Exit(1)
	}

	fmt.Println(translator.TranslateOffline(strings.Join(args, " ")))
}

func handleList(a *app.App, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	limit := fs.Int("limit", 20, "Maximum number of summaries to display")
	offset := fs.Int("offset", 0, "Number of summaries to skip")
	url := fs.String("url", "", "Filter by exact URL")
	method := fs.String("method", "", "Filter by summary method: static, gemini")
	format := fs.String("format", "table", "Output format: table, json")
	fs.Parse(args)

	filter := summaries.Filter{Limit: *limit, Offset: *offset}
	if *url != "" {
		filter.URL = url
	}
	if *method != "" {
		filter.Method = method
	}

	list, err := a.Summaries.List(filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to list summaries: %v\n", err)
		os.Exit(1)
	}

	if *format == "json" {
		if list == nil {
			list = []summaries.Summary{}
		}
		printJSON(map[string]any{"summaries": list, "total": len(list)})
		return
	}
	printSummaryTable(list)
}

func handleShow(a *app.App, args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Error: summary ID is required\n")
		fmt.Fprintf(os.Stderr, "Usage: blogsum show <id>\n")
		os.Exit(1)
	}

	id, err := uuid.Parse(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid summary ID: %v\n", err)
		os.Exit(1)
	}

	summary, err := a.Summaries.Get(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printSummary(summary)
}

func handleDigest(ctx context.Context, a *app.App, args []string) {
	fs := flag.NewFlagSet("digest", flag.ExitOnError)
	limit := fs.Int("limit", 5, "Number of latest posts to summarize")
	concurrency := fs.Int("concurrency", 3, "Posts processed in parallel")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: feed URL is required\n")
		fmt.Fprintf(os.Stderr, "Usage: blogsum digest [-limit N] <feed-url>\n")
		os.Exit(1)
	}

	feed, err := feeds.Fetch(ctx, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	entries := feeds.LatestEntries(feed, *limit)
	if len(entries) == 0 {
		fmt.Println("No posts found in feed.")
		return
	}

	urls := make([]string, len(entries))
	for i, entry := range entries {
		urls[i] = entry.URL
	}

	failed := 0
	for i, r := range a.Pipeline.ProcessAll(ctx, urls, *concurrency) {
		if r.Err != nil {
			failed++
			fmt.Printf("✗ %s\n   %v\n\n", entries[i].Title, r.Err)
			continue
		}
		printResult(r.Result)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d of %d post(s) could not be summarized\n", failed, len(entries))
		os.Exit(1)
	}
}
