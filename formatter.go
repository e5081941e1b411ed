package unitext

import "strings"

// FormatState renders a session snapshot for display.
// Idle sessions render as an empty string.
func FormatState(s State) string {
	if s.Source == SourceNone && !s.Running && s.Err == nil {
		return ""
	}

	var sb strings.Builder
	switch {
	case s.Running:
		sb.WriteString(header(s.Source))
		sb.WriteString("\nExtracting text...")
	case s.Err != nil:
		sb.WriteString("Error: ")
		sb.WriteString(s.ErrorMessage())
	case s.Text == "":
		sb.WriteString(header(s.Source))
		sb.WriteString("\nNo text was extracted.")
	default:
		sb.WriteString(header(s.Source))
		sb.WriteString("\n\n")
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// FormatResult renders a single attempt's result the same way FormatState
// renders a settled session.
func FormatResult(r Result) string {
	return FormatState(State{
		Source:  r.Source,
		Running: r.Status == StatusPending,
		Text:    r.Text,
		Err:     r.Err,
	})
}

func header(source Source) string {
	if label := source.Label(); label != "" {
		return "Extracted Text (from " + label + ")"
	}
	return "Extracted Text"
}
