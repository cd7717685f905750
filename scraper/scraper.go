// Package scraper fetches blog pages and extracts their title and main text.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"html"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html/charset"
)

var (
	// ErrScrape wraps every failure returned by Scrape.
	ErrScrape = errors.New("failed to scrape blog content")
	// ErrNoContent means the page yielded too little text to summarize.
	ErrNoContent = errors.New("could not extract meaningful content from the URL; the page might be protected or have dynamic content")
)

// Metadata describes where and how content was scraped.
type Metadata struct {
	Domain         string `json:"domain"`
	ScrapingMethod string `json:"scraping_method"`
	ContentType    string `json:"content_type"`
}

// ScrapedContent holds extracted article data.
type ScrapedContent struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Markdown  string   `json:"markdown,omitempty"`
	URL       string   `json:"url"`
	WordCount int      `json:"word_count"`
	Metadata  Metadata `json:"metadata"`
}

// Options configures a Scraper.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Article   *ArticleConfig
	Client    *http.Client
}

// Scraper fetches and extracts blog articles.
type Scraper struct {
	client    *http.Client
	userAgent string
	article   ArticleConfig
}

// New creates a Scraper. Zero options use DefaultTimeout, DefaultUserAgent
// and DefaultArticleConfig.
func New(opts Options) *Scraper {
	s := &Scraper{
		client:    opts.Client,
		userAgent: opts.UserAgent,
		article:   DefaultArticleConfig(),
	}
	if opts.Article != nil {
		s.article = *opts.Article
	}
	if s.client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		s.client = &http.Client{Timeout: timeout}
	}
	if s.userAgent == "" {
		s.userAgent = DefaultUserAgent
	}
	return s
}

// Scrape fetches rawURL and extracts its article. All errors wrap ErrScrape.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*ScrapedContent, error) {
	doc, contentType, err := FetchHTML(ctx, s.client, rawURL, s.userAgent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScrape, err)
	}

	content, err := Extract(doc, s.article, rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScrape, err)
	}
	content.Metadata.ContentType = contentType

	return content, nil
}

// FetchHTML fetches the page at rawURL and parses it. It returns the
// response media type alongside the document.
func FetchHTML(ctx context.Context, client *http.Client, rawURL, userAgent string) (*goquery.Document, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	// Pages declaring a legacy charset are decoded to UTF-8
	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode response: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	contentType := "text/html"
	if mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil && mediaType != "" {
		contentType = mediaType
	}

	return doc, contentType, nil
}

// Extract pulls the title and main text out of doc. The document is
// modified: elements matching cfg.RemoveSelectors are removed.
func Extract(doc *goquery.Document, cfg ArticleConfig, articleURL string) (*ScrapedContent, error) {
	if len(cfg.RemoveSelectors) > 0 {
		doc.Find(strings.Join(cfg.RemoveSelectors, ", ")).Remove()
	}

	title := truncateRunes(extractTitle(doc, cfg.TitleSelectors), cfg.MaxTitleLength)

	selection := contentSelection(doc, cfg)
	content := normalizeWhitespace(selection.Text())

	if utf8.RuneCountInString(content) < cfg.MinContentLength {
		return nil, ErrNoContent
	}

	var domain string
	if u, err := url.Parse(articleURL); err == nil {
		domain = u.Hostname()
	}

	return &ScrapedContent{
		Title:     title,
		Content:   content,
		Markdown:  toMarkdown(selection, articleURL),
		URL:       articleURL,
		WordCount: len(strings.Fields(content)),
		Metadata: Metadata{
			Domain:         domain,
			ScrapingMethod: ScrapingMethod,
			ContentType:    "text/html",
		},
	}, nil
}

var titlePolicy = bluemonday.StrictPolicy()

// extractTitle returns the first non-empty title candidate, with any
// markup stripped.
func extractTitle(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		node := doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}

		text := node.Text()
		if goquery.NodeName(node) == "meta" {
			text, _ = node.Attr("content")
		}

		text = normalizeWhitespace(html.UnescapeString(titlePolicy.Sanitize(text)))
		if text != "" {
			return text
		}
	}
	return DefaultTitle
}

// contentSelection returns the first selector match with substantial text,
// falling back to the body.
func contentSelection(doc *goquery.Document, cfg ArticleConfig) *goquery.Selection {
	for _, sel := range cfg.ContentSelectors {
		found := doc.Find(sel)
		if found.Length() == 0 {
			continue
		}
		if utf8.RuneCountInString(strings.TrimSpace(found.Text())) > cfg.MinSelectorContent {
			return found
		}
	}
	return doc.Find("body")
}

var markdownConverter = converter.NewConverter(
	converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
	),
)

// toMarkdown renders the selection as Markdown. Failures yield "" since
// the plain text is the primary output.
func toMarkdown(sel *goquery.Selection, articleURL string) string {
	var parts []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if h, err := goquery.OuterHtml(s); err == nil {
			parts = append(parts, h)
		}
	})
	if len(parts) == 0 {
		return ""
	}

	md, err := markdownConverter.ConvertString(strings.Join(parts, "\n"), converter.WithDomain(articleURL))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(md)
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
