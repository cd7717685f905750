// Package feeds resolves a blog's RSS or Atom feed into post URLs.
package feeds

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Entry is a single post listed in a feed.
type Entry struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}

// Fetch fetches and parses an RSS or Atom feed. gofeed detects the format.
func Fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	feed, err := fp.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return feed, nil
}

// Parse parses a feed document from r.
func Parse(r io.Reader) (*gofeed.Feed, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return feed, nil
}

// LatestEntries returns up to limit entries that carry a link, newest
// first. Entries without a date sort last, in feed order. A limit of zero
// or less returns every entry.
func LatestEntries(feed *gofeed.Feed, limit int) []Entry {
	if feed == nil {
		return nil
	}

	entries := make([]Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		link := strings.TrimSpace(item.Link)
		if link == "" {
			continue
		}

		title := item.Title
		if title == "" {
			title = "(No title)"
		}

		// Published date from <pubDate>/<published>, falling back to
		// <updated>
		var publishedAt time.Time
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			publishedAt = *item.UpdatedParsed
		}

		entries = append(entries, Entry{
			Title:       title,
			URL:         link,
			PublishedAt: publishedAt,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].PublishedAt, entries[j].PublishedAt
		if a.IsZero() || b.IsZero() {
			return !a.IsZero() && b.IsZero()
		}
		return a.After(b)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
