package unitext

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Attempt identifies one extraction attempt started on a Session.
type Attempt struct {
	// ID is a unique identifier for log correlation.
	ID string

	// Source is the extractor the attempt was started for.
	Source Source

	generation uint64
}

// Session tracks the current extraction attempt and its outcome.
//
// Only one attempt is current at a time. Starting a new attempt or clearing
// the session supersedes any attempt still in flight: its completion is
// dropped when it arrives, but the underlying work is not cancelled.
//
// The credential lives only in memory for the lifetime of the Session.
type Session struct {
	pdf PDFExtractor
	url URLExtractor

	mu         sync.Mutex
	credential string
	generation uint64
	state      State
}

// NewSession returns an idle Session that extracts with the given extractors.
func NewSession(pdf PDFExtractor, url URLExtractor) *Session {
	return &Session{pdf: pdf, url: url}
}

// SetCredential stores the trimmed credential. An empty value clears it.
// The credential is not validated until it is first used.
func (s *Session) SetCredential(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = strings.TrimSpace(value)
}

// HasCredential reports whether a non-empty credential is set.
func (s *Session) HasCredential() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential != ""
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start begins a new attempt for source, discarding any previous result.
//
// URL extraction without a credential fails fast: the session settles with
// a KindMissingCredential failure and the error is returned.
func (s *Session) Start(source Source) (Attempt, error) {
	a, _, err := s.begin(source)
	return a, err
}

// Complete settles attempt a with the extractor's outcome. It reports
// whether the outcome was applied; completions of superseded attempts are
// dropped.
func (s *Session) Complete(a Attempt, text string, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.generation == 0 || a.generation != s.generation || !s.state.Running {
		return false
	}

	s.state.Running = false
	if err != nil {
		s.state.Text = ""
		s.state.Err = err
		return true
	}
	s.state.Text = text
	s.state.Err = nil
	return true
}

// Clear returns the session to idle, discarding source, text and error.
// Attempts still in flight are superseded.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.state = State{}
}

// ExtractFromPDF runs a PDF extraction to completion and returns its result.
func (s *Session) ExtractFromPDF(ctx context.Context, data []byte) Result {
	a, _, err := s.begin(SourcePDF)
	if err != nil {
		return NewResult(SourcePDF, "", err)
	}
	text, err := s.pdf.ExtractPDF(ctx, data)
	return s.finish(a, text, err)
}

// ExtractFromURL runs a URL extraction with the session credential and
// returns its result.
func (s *Session) ExtractFromURL(ctx context.Context, rawURL string) Result {
	a, credential, err := s.begin(SourceURL)
	if err != nil {
		return NewResult(SourceURL, "", err)
	}
	text, err := s.url.ExtractURL(ctx, rawURL, credential)
	return s.finish(a, text, err)
}

// ExtractFromURLWithCredential applies credential and then runs a URL extraction.
func (s *Session) ExtractFromURLWithCredential(ctx context.Context, rawURL, credential string) Result {
	s.SetCredential(credential)
	return s.ExtractFromURL(ctx, rawURL)
}

// GoPDF starts a PDF extraction and runs it on its own goroutine. The
// returned channel receives the attempt's result when the extractor returns.
func (s *Session) GoPDF(ctx context.Context, data []byte) (Attempt, <-chan Result, error) {
	return s.launch(ctx, SourcePDF, func(ctx context.Context, _ string) (string, error) {
		return s.pdf.ExtractPDF(ctx, data)
	})
}

// GoURL starts a URL extraction and runs it on its own goroutine. The
// returned channel receives the attempt's result when the extractor returns.
func (s *Session) GoURL(ctx context.Context, rawURL string) (Attempt, <-chan Result, error) {
	return s.launch(ctx, SourceURL, func(ctx context.Context, credential string) (string, error) {
		return s.url.ExtractURL(ctx, rawURL, credential)
	})
}

func (s *Session) launch(ctx context.Context, source Source, run func(context.Context, string) (string, error)) (Attempt, <-chan Result, error) {
	a, credential, err := s.begin(source)
	if err != nil {
		return a, nil, err
	}

	ch := make(chan Result, 1)
	go func() {
		text, err := run(ctx, credential)
		ch <- s.finish(a, text, err)
	}()
	return a, ch, nil
}

// begin starts an attempt and returns the credential captured at start time.
func (s *Session) begin(source Source) (Attempt, string, error) {
	if source != SourcePDF && source != SourceURL {
		return Attempt{}, "", Errorf(EINVALID, "unknown extraction source %q", source)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	if source == SourceURL && s.credential == "" {
		err := KindErrorf(EINVALID, KindMissingCredential,
			"Gemini API key is required for URL extraction. Please apply your API key first.")
		s.state = State{Source: SourceURL, Err: err}
		return Attempt{}, "", err
	}

	s.state = State{Source: source, Running: true}
	a := Attempt{
		ID:         uuid.NewString(),
		Source:     source,
		generation: s.generation,
	}
	return a, s.credential, nil
}

func (s *Session) finish(a Attempt, text string, err error) Result {
	r := NewResult(a.Source, text, err)
	r.Stale = !s.Complete(a, text, err)
	return r
}
