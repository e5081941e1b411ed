package unitext

// Source identifies which extractor produced, or is producing, a result.
type Source string

// Source constants.
const (
	SourceNone Source = ""
	SourcePDF  Source = "pdf"
	SourceURL  Source = "url"
)

// Label returns the human-readable name of the source.
func (s Source) Label() string {
	switch s {
	case SourcePDF:
		return "PDF Document"
	case SourceURL:
		return "Website URL"
	default:
		return ""
	}
}

// Status is the lifecycle position of an extraction result.
type Status int

// Status constants.
const (
	StatusPending Status = iota
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "pending"
	}
}

// Result is the outcome of one extraction attempt.
type Result struct {
	Source Source
	Status Status
	Text   string
	Err    error

	// Stale is set when a newer attempt (or a clear) superseded this one
	// before it completed. A stale result never reaches the session state.
	Stale bool
}

// NewResult builds a settled result from an extractor's return values.
func NewResult(source Source, text string, err error) Result {
	if err != nil {
		return Result{Source: source, Status: StatusFailure, Err: err}
	}
	return Result{Source: source, Status: StatusSuccess, Text: text}
}

// Message returns the user-facing error message, or an empty string on success.
func (r Result) Message() string {
	return ErrorMessage(r.Err)
}

// State is a snapshot of a Session for presentation.
type State struct {
	Source  Source
	Running bool
	Text    string
	Err     error
}

// Idle reports whether no extraction is running or settled.
func (s State) Idle() bool {
	return s.Source == SourceNone && !s.Running && s.Err == nil && s.Text == ""
}

// ErrorMessage returns the user-facing error message, if any.
func (s State) ErrorMessage() string {
	return ErrorMessage(s.Err)
}
