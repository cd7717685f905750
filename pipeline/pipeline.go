// Package pipeline turns a blog URL into a stored English and Urdu summary:
// scrape, summarize, translate, persist.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pevans/blogsum/contents"
	"github.com/pevans/blogsum/scraper"
	"github.com/pevans/blogsum/summaries"
	"github.com/pevans/blogsum/summarizer"
	"github.com/pevans/blogsum/translator"
)

var (
	ErrURLRequired = errors.New("URL is required")
	ErrInvalidURL  = errors.New("invalid URL format")
)

// DefaultConcurrency is the number of URLs ProcessAll handles in parallel.
const DefaultConcurrency = 3

// ContentScraper fetches and extracts an article.
type ContentScraper interface {
	Scrape(ctx context.Context, url string) (*scraper.ScrapedContent, error)
}

// Summarizer produces a summary tagged with its method.
type Summarizer interface {
	Generate(ctx context.Context, content, title string) summarizer.Result
}

// Translator produces an Urdu translation tagged with its method.
type Translator interface {
	Translate(ctx context.Context, text string) translator.Result
}

// SummaryStore persists summaries and processing attempts.
type SummaryStore interface {
	Create(summary *summaries.Summary) error
	LogProcessing(entry summaries.ProcessingLog) error
}

// ContentStore persists scraped page content.
type ContentStore interface {
	Put(doc contents.Document) error
}

// Result is the outcome of processing one URL.
type Result struct {
	ID                uuid.UUID `json:"id"`
	URL               string    `json:"url"`
	Title             string    `json:"title"`
	Content           string    `json:"content"`
	Summary           string    `json:"summary"`
	UrduSummary       string    `json:"urduSummary"`
	CreatedAt         time.Time `json:"createdAt"`
	ProcessingTime    int64     `json:"processingTime"` // milliseconds
	WordCount         int       `json:"wordCount"`
	SummaryMethod     string    `json:"summaryMethod"`
	TranslationMethod string    `json:"translationMethod"`
}

// Config wires a Pipeline. Scraper, Summarizer and Translator are required;
// the stores are optional.
type Config struct {
	Scraper    ContentScraper
	Summarizer Summarizer
	Translator Translator
	Summaries  SummaryStore
	Contents   ContentStore
	Logger     *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Pipeline processes blog URLs.
type Pipeline struct {
	scraper    ContentScraper
	summarizer Summarizer
	translator Translator
	summaries  SummaryStore
	contents   ContentStore
	logger     *slog.Logger
	now        func() time.Time
}

// New creates a Pipeline.
func New(cfg Config) *Pipeline {
	p := &Pipeline{
		scraper:    cfg.Scraper,
		summarizer: cfg.Summarizer,
		translator: cfg.Translator,
		summaries:  cfg.Summaries,
		contents:   cfg.Contents,
		logger:     cfg.Logger,
		now:        cfg.Now,
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.now == nil {
		p.now = time.Now
	}
	return p
}

// ValidateURL checks that rawURL is an absolute http or https URL.
func ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrURLRequired
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidURL
	}
	return nil
}

// Process scrapes, summarizes and translates rawURL. Storage failures are
// logged and do not fail the call. Every attempt past URL validation is
// recorded in the processing log.
func (p *Pipeline) Process(ctx context.Context, rawURL string) (*Result, error) {
	start := p.now()

	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	logger := p.logger.With("url", rawURL)
	logger.Info("processing started")

	content, err := p.scraper.Scrape(ctx, rawURL)
	if err != nil {
		p.logAttempt(rawURL, err, p.elapsed(start))
		return nil, err
	}
	logger.Info("content scraped", "words", content.WordCount, "domain", content.Metadata.Domain)

	summary := p.summarizer.Generate(ctx, content.Content, content.Title)
	logger.Info("summary generated", "method", summary.Method)

	urdu := p.translator.Translate(ctx, summary.Summary)
	logger.Info("translation completed", "method", urdu.Method)

	result := &Result{
		ID:                uuid.New(),
		URL:               rawURL,
		Title:             content.Title,
		Content:           content.Content,
		Summary:           summary.Summary,
		UrduSummary:       urdu.Text,
		ProcessingTime:    p.elapsed(start),
		WordCount:         content.WordCount,
		SummaryMethod:     string(summary.Method),
		TranslationMethod: string(urdu.Method),
	}
	result.CreatedAt = p.now()

	p.store(logger, content, result)
	p.logAttempt(rawURL, nil, result.ProcessingTime)

	logger.Info("processing completed", "processing_time_ms", result.ProcessingTime)
	return result, nil
}

// store persists the summary and content. Failures are only logged.
func (p *Pipeline) store(logger *slog.Logger, content *scraper.ScrapedContent, result *Result) {
	if p.summaries != nil {
		err := p.summaries.Create(&summaries.Summary{
			ID:                result.ID,
			URL:               result.URL,
			Title:             result.Title,
			Summary:           result.Summary,
			UrduSummary:       result.UrduSummary,
			WordCount:         result.WordCount,
			SummaryMethod:     result.SummaryMethod,
			TranslationMethod: result.TranslationMethod,
			ProcessingTime:    result.ProcessingTime,
			CreatedAt:         result.CreatedAt,
		})
		if err != nil {
			logger.Error("failed to store summary", "error", err)
		}
	}

	if p.contents != nil {
		if err := p.contents.Put(contents.NewDocument(content, result.ID, result.CreatedAt)); err != nil {
			logger.Error("failed to store content", "error", err)
		}
	}
}

func (p *Pipeline) logAttempt(rawURL string, procErr error, elapsed int64) {
	if p.summaries == nil {
		return
	}

	entry := summaries.ProcessingLog{
		URL:            rawURL,
		Status:         summaries.StatusSuccess,
		ProcessingTime: elapsed,
		Timestamp:      p.now(),
	}
	if procErr != nil {
		msg := procErr.Error()
		entry.Status = summaries.StatusFailed
		entry.ErrorMessage = &msg
	}

	if err := p.summaries.LogProcessing(entry); err != nil {
		p.logger.Error("failed to write processing log", "url", rawURL, "error", err)
	}
}

func (p *Pipeline) elapsed(start time.Time) int64 {
	return p.now().Sub(start).Milliseconds()
}

// BatchResult pairs a URL with the outcome of processing it.
type BatchResult struct {
	URL    string
	Result *Result
	Err    error
}

// ProcessAll processes urls with at most concurrency in flight and returns
// the outcomes in input order. A concurrency of zero or less uses
// DefaultConcurrency.
func (p *Pipeline) ProcessAll(ctx context.Context, urls []string, concurrency int) []BatchResult {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]BatchResult, len(urls))
	semaphore := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, u := range urls {
		results[i].URL = u

		select {
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			continue
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()
			defer func() { <-semaphore }()

			results[i].Result, results[i].Err = p.Process(ctx, u)
		}(i, u)
	}

	wg.Wait()
	return results
}

// StatusCode maps a Process error to an HTTP status.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrURLRequired), errors.Is(err, ErrInvalidURL):
		return http.StatusBadRequest
	case errors.Is(err, scraper.ErrScrape), strings.Contains(err.Error(), "scrape"):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded), strings.Contains(strings.ToLower(err.Error()), "timeout"):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}
