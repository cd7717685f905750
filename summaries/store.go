package summaries

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Custom errors for summary operations
var (
	ErrNotFound    = errors.New("summary not found")
	ErrDuplicateID = errors.New("summary with this ID already exists")
)

// Processing statuses recorded in the processing log.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Store manages summary records using SQLite.
type Store struct {
	db *sql.DB
}

// Summary is one processed blog post.
type Summary struct {
	ID                uuid.UUID `json:"id"`
	URL               string    `json:"url"`
	Title             string    `json:"title"`
	Summary           string    `json:"summary"`
	UrduSummary       string    `json:"urdu_summary"`
	WordCount         int       `json:"word_count"`
	SummaryMethod     string    `json:"summary_method"`     // "static" or "gemini"
	TranslationMethod string    `json:"translation_method"` // "google" or "dictionary"
	ProcessingTime    int64     `json:"processing_time"`    // milliseconds
	CreatedAt         time.Time `json:"created_at"`
}

// Filter represents filtering options for listing summaries.
type Filter struct {
	URL    *string // Filter by exact URL
	Method *string // Filter by summary_method
	Limit  int     // Pagination limit
	Offset int     // Pagination offset
}

// ProcessingLog records one attempt to process a URL.
type ProcessingLog struct {
	URL            string    `json:"url"`
	Status         string    `json:"status"`
	ErrorMessage   *string   `json:"error_message,omitempty"`
	ProcessingTime int64     `json:"processing_time"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewStore creates a new summary store with the given database path.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the tables if they don't exist.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS blog_summaries (
		id TEXT PRIMARY KEY,
		url TEXT NOT NULL,
		title TEXT NOT NULL,
		summary TEXT NOT NULL,
		urdu_summary TEXT NOT NULL,
		word_count INTEGER DEFAULT 0,
		summary_method TEXT NOT NULL,
		translation_method TEXT NOT NULL DEFAULT '',
		processing_time INTEGER DEFAULT 0,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_blog_summaries_url ON blog_summaries (url);
	CREATE INDEX IF NOT EXISTS idx_blog_summaries_created_at ON blog_summaries (created_at);

	CREATE TABLE IF NOT EXISTS processing_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		url TEXT NOT NULL,
		status TEXT NOT NULL,
		error_message TEXT,
		processing_time INTEGER DEFAULT 0,
		timestamp TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_processing_logs_url ON processing_logs (url);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create inserts a summary. A nil ID is replaced with a new UUID and a zero
// CreatedAt with the current time.
func (s *Store) Create(summary *Summary) error {
	if summary.ID == uuid.Nil {
		summary.ID = uuid.New()
	}
	if summary.CreatedAt.IsZero() {
		summary.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO blog_summaries (
			id, url, title, summary, urdu_summary, word_count,
			summary_method, translation_method, processing_time, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		summary.ID.String(),
		summary.URL,
		summary.Title,
		summary.Summary,
		summary.UrduSummary,
		summary.WordCount,
		summary.SummaryMethod,
		summary.TranslationMethod,
		summary.ProcessingTime,
		formatTime(&summary.CreatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "unique constraint") {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to insert summary: %w", err)
	}

	return nil
}

const selectColumns = `
	SELECT id, url, title, summary, urdu_summary, word_count,
	       summary_method, translation_method, processing_time, created_at
	FROM blog_summaries
`

// Get retrieves a summary by ID.
func (s *Store) Get(id uuid.UUID) (*Summary, error) {
	row := s.db.QueryRow(selectColumns+" WHERE id = ?", id.String())

	summary, err := scanSummary(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query summary: %w", err)
	}

	return summary, nil
}

// List lists summaries, newest first, with optional filtering.
func (s *Store) List(filter Filter) ([]Summary, error) {
	query := selectColumns

	var whereClauses []string
	var args []any

	if filter.URL != nil {
		whereClauses = append(whereClauses, "url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Method != nil {
		whereClauses = append(whereClauses, "summary_method = ?")
		args = append(args, *filter.Method)
	}

	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}

	query += " ORDER BY created_at DESC"

	// SQLite needs a LIMIT before OFFSET; -1 means no limit.
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	} else if filter.Offset > 0 {
		query += " LIMIT -1"
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query summaries: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		summaries = append(summaries, *summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate summaries: %w", err)
	}

	return summaries, nil
}

// Delete deletes a summary.
func (s *Store) Delete(id uuid.UUID) error {
	result, err := s.db.Exec("DELETE FROM blog_summaries WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("failed to delete summary: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// LogProcessing appends an entry to the processing log. A zero Timestamp is
// replaced with the current time.
func (s *Store) LogProcessing(entry ProcessingLog) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := s.db.Exec(
		"INSERT INTO processing_logs (url, status, error_message, processing_time, timestamp) VALUES (?, ?, ?, ?, ?)",
		entry.URL, entry.Status, entry.ErrorMessage, entry.ProcessingTime, formatTime(&entry.Timestamp),
	)
	if err != nil {
		return fmt.Errorf("failed to insert processing log: %w", err)
	}
	return nil
}

// ListProcessingLogs returns the processing log entries for url, newest
// first.
func (s *Store) ListProcessingLogs(url string) ([]ProcessingLog, error) {
	rows, err := s.db.Query(
		"SELECT url, status, error_message, processing_time, timestamp FROM processing_logs WHERE url = ? ORDER BY timestamp DESC, id DESC",
		url,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query processing logs: %w", err)
	}
	defer rows.Close()

	var logs []ProcessingLog
	for rows.Next() {
		var entry ProcessingLog
		var errorMessage sql.NullString
		var timestamp string
		if err := rows.Scan(&entry.URL, &entry.Status, &errorMessage, &entry.ProcessingTime, &timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan processing log: %w", err)
		}
		if errorMessage.Valid {
			entry.ErrorMessage = &errorMessage.String
		}
		entry.Timestamp = parseTime(timestamp)
		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate processing logs: %w", err)
	}

	return logs, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanSummary parses one row into a Summary. It is shared by Get and List.
func scanSummary(row rowScanner) (*Summary, error) {
	var idStr, createdAtStr string
	summary := &Summary{}

	err := row.Scan(
		&idStr, &summary.URL, &summary.Title, &summary.Summary, &summary.UrduSummary,
		&summary.WordCount, &summary.SummaryMethod, &summary.TranslationMethod,
		&summary.ProcessingTime, &createdAtStr,
	)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse summary ID: %w", err)
	}
	summary.ID = id
	summary.CreatedAt = parseTime(createdAtStr)

	return summary, nil
}

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Helper functions for time formatting
func formatTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	// Strip monotonic clock for consistent storage and comparisons
	return t.Truncate(0).UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	// Try RFC3339Nano first, fall back to RFC3339 for compatibility
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t, _ = time.Parse(time.RFC3339, s)
	}
	return t.Truncate(0)
}
