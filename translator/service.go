package translator

import (
	"context"
	"log/slog"
)

// Method identifies which path produced a translation.
type Method string

const (
	MethodGoogle     Method = "google"
	MethodDictionary Method = "dictionary"
)

// TargetLanguage is the language code requested from remote services.
const TargetLanguage = "ur"

// Remote is a networked translation service.
type Remote interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// Result is a translation tagged with its provenance.
type Result struct {
	Text   string `json:"text"`
	Method Method `json:"method"`
}

// Service translates with a remote service when one is configured and
// falls back to the offline dictionary otherwise.
type Service struct {
	remote  Remote
	offline *Translator
	logger  *slog.Logger
}

// NewService creates a translation service. remote may be nil, in which
// case every call uses the dictionary.
func NewService(remote Remote, offline *Translator, logger *slog.Logger) *Service {
	if offline == nil {
		offline = NewTranslator(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		remote:  remote,
		offline: offline,
		logger:  logger,
	}
}

// Translate returns the Urdu rendering of text. It never fails: remote
// errors are logged and the dictionary result is returned instead.
func (s *Service) Translate(ctx context.Context, text string) Result {
	if s.remote != nil {
		out, err := s.remote.Translate(ctx, text, TargetLanguage)
		if err == nil {
			return Result{Text: out, Method: MethodGoogle}
		}
		s.logger.Warn("remote translation failed, falling back to dictionary", "error", err)
	}

	return Result{Text: s.offline.TranslateOffline(text), Method: MethodDictionary}
}
