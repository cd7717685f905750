// Package contents stores scraped page content as JSON documents, one file
// per URL.
package contents

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pevans/blogsum/scraper"
)

// ErrNotFound is returned when no document exists for a URL.
var ErrNotFound = errors.New("content not found")

// Document is the scraped content of a single URL.
type Document struct {
	ID        uuid.UUID        `json:"id"`
	URL       string           `json:"url"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Markdown  string           `json:"markdown,omitempty"`
	ScrapedAt time.Time        `json:"scraped_at"`
	SummaryID uuid.UUID        `json:"summary_id"`
	WordCount int              `json:"word_count"`
	Metadata  scraper.Metadata `json:"metadata"`
}

// DocumentID returns the stable ID for url. Storing by this ID keeps one
// document per URL.
func DocumentID(url string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(url))
}

// NewDocument builds a Document from scraped content.
func NewDocument(content *scraper.ScrapedContent, summaryID uuid.UUID, scrapedAt time.Time) Document {
	return Document{
		ID:        DocumentID(content.URL),
		URL:       content.URL,
		Title:     content.Title,
		Content:   content.Content,
		Markdown:  content.Markdown,
		ScrapedAt: scrapedAt,
		SummaryID: summaryID,
		WordCount: content.WordCount,
		Metadata:  content.Metadata,
	}
}

// Store is a directory of content documents.
type Store struct {
	storageDir string
}

// ReadError describes a failure to read a single document file.
type ReadError struct {
	Filename string
	Err      error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Filename, e.Err)
}

// ListResult contains the documents that were read and any per-file errors.
type ListResult struct {
	Items  []Document
	Errors []ReadError
}

// NewStore creates a content store in storageDir, creating the directory if
// needed.
func NewStore(storageDir string) (*Store, error) {
	// 0700: owner-only access
	if err := os.MkdirAll(storageDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &Store{
		storageDir: storageDir,
	}, nil
}

func (s *Store) path(id uuid.UUID) string {
	return filepath.Join(s.storageDir, id.String()+".json")
}

// Put saves doc, replacing any previous document for the same URL. The ID is
// always derived from the URL.
func (s *Store) Put(doc Document) error {
	if doc.URL == "" {
		return errors.New("document URL is required")
	}
	doc.ID = DocumentID(doc.URL)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	// Write to a temp file and rename so readers never see a partial
	// document
	tmp, err := os.CreateTemp(s.storageDir, ".doc-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := os.Rename(tmpName, s.path(doc.ID)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document: %w", err)
	}

	return nil
}

// GetByURL retrieves the document stored for url.
func (s *Store) GetByURL(url string) (*Document, error) {
	data, err := os.ReadFile(s.path(DocumentID(url)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	return &doc, nil
}

// List returns every document, most recently scraped first. Unreadable or
// corrupt files are collected in the result's Errors rather than failing the
// call.
func (s *Store) List() (*ListResult, error) {
	entries, err := os.ReadDir(s.storageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read storage directory: %w", err)
	}

	result := &ListResult{}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.storageDir, entry.Name()))
		if err != nil {
			result.Errors = append(result.Errors, ReadError{Filename: entry.Name(), Err: err})
			continue
		}

		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			result.Errors = append(result.Errors, ReadError{Filename: entry.Name(), Err: err})
			continue
		}

		result.Items = append(result.Items, doc)
	}

	sort.SliceStable(result.Items, func(i, j int) bool {
		return result.Items[i].ScrapedAt.After(result.Items[j].ScrapedAt)
	})

	return result, nil
}

// Delete removes the document stored for url.
func (s *Store) Delete(url string) error {
	if err := os.Remove(s.path(DocumentID(url))); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
