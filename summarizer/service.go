package summarizer

import (
	"context"
	"log/slog"
)

// Method identifies which path produced a summary.
type Method string

const (
	MethodStatic Method = "static"
	MethodGemini Method = "gemini"
)

// DefaultMinLLMContent is the content length above which the LLM is tried.
const DefaultMinLLMContent = 1000

// Generator produces a summary with an external service.
type Generator interface {
	Generate(ctx context.Context, content, title string) (string, error)
}

// Result is a summary tagged with its provenance.
type Result struct {
	Summary string `json:"summary"`
	Method  Method `json:"method"`
}

// Service chooses between the static summarizer and an optional LLM.
type Service struct {
	static        *Summarizer
	llm           Generator
	minLLMContent int
	logger        *slog.Logger
}

// ServiceConfig configures a Service.
type ServiceConfig struct {
	// Static defaults to New().
	Static *Summarizer
	// LLM is optional; when nil every summary is static.
	LLM Generator
	// MinLLMContent defaults to DefaultMinLLMContent.
	MinLLMContent int
	Logger        *slog.Logger
}

// NewService creates a summary service.
func NewService(cfg ServiceConfig) *Service {
	s := &Service{
		static:        cfg.Static,
		llm:           cfg.LLM,
		minLLMContent: cfg.MinLLMContent,
		logger:        cfg.Logger,
	}
	if s.static == nil {
		s.static = New()
	}
	if s.minLLMContent <= 0 {
		s.minLLMContent = DefaultMinLLMContent
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Generate summarizes content. The static summary is always computed; the
// LLM supersedes it only for substantial content and only when it
// succeeds.
func (s *Service) Generate(ctx context.Context, content, title string) Result {
	static := s.static.Summarize(content, title)

	if s.llm != nil && len(content) > s.minLLMContent {
		summary, err := s.llm.Generate(ctx, content, title)
		if err == nil {
			return Result{Summary: summary, Method: MethodGemini}
		}
		s.logger.Warn("LLM summary failed, using static summary", "error", err)
	}

	return Result{Summary: static, Method: MethodStatic}
}
