package scraper

import "time"

// ArticleConfig defines how to extract an article from a blog page.
type ArticleConfig struct {
	// RemoveSelectors are stripped from the document before extraction.
	RemoveSelectors []string `yaml:"remove_selectors"`
	// TitleSelectors are tried in order; meta elements contribute their
	// content attribute.
	TitleSelectors []string `yaml:"title_selectors"`
	// ContentSelectors are tried in order; the first whose text is longer
	// than MinSelectorContent wins, otherwise the body is used.
	ContentSelectors []string `yaml:"content_selectors"`

	MinSelectorContent int `yaml:"min_selector_content"`
	MinContentLength   int `yaml:"min_content_length"`
	MaxTitleLength     int `yaml:"max_title_length"`
}

// DefaultTitle is used when no title selector matches.
const DefaultTitle = "Untitled Article"

// ScrapingMethod identifies this scraper in stored metadata.
const ScrapingMethod = "goquery"

// DefaultUserAgent mimics a desktop browser; many blogs refuse obvious bots.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// DefaultTimeout bounds a single page fetch.
const DefaultTimeout = 30 * time.Second

// DefaultArticleConfig returns selectors that fit most blog engines.
func DefaultArticleConfig() ArticleConfig {
	return ArticleConfig{
		RemoveSelectors: []string{
			"script", "style", "nav", "header", "footer", "aside",
			".advertisement", ".ads", ".social-share", ".comments",
		},
		TitleSelectors: []string{
			"h1",
			`meta[property="og:title"]`,
			`meta[name="twitter:title"]`,
			"title",
		},
		ContentSelectors: []string{
			"article",
			`[role="main"]`,
			".post-content",
			".entry-content",
			".article-content",
			".content",
			"main",
			".post-body",
			".story-body",
			"#content",
			".article-body",
		},
		MinSelectorContent: 200,
		MinContentLength:   100,
		MaxTitleLength:     500,
	}
}
