// Package gemini implements unitext.URLExtractor using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/fwojciec/unitext"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for URL extraction.
const DefaultModel = "gemini-2.5-flash"

// emptyResultMessage is shown when the model returns no text at all.
const emptyResultMessage = "No significant textual content could be extracted by the AI from this URL, or the page was empty."

// Ensure URLExtractor implements unitext.URLExtractor at compile time.
var _ unitext.URLExtractor = (*URLExtractor)(nil)

// URLExtractor asks a Gemini model to read a web page and return its main
// text. Each call makes exactly one request; there are no retries and no
// caching.
type URLExtractor struct {
	model      string
	baseURL    string
	httpClient *http.Client
}

// Option configures a URLExtractor.
type Option func(*URLExtractor)

// WithModel sets the model identifier. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(e *URLExtractor) {
		if model != "" {
			e.model = model
		}
	}
}

// WithBaseURL overrides the Gemini API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(e *URLExtractor) {
		e.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(e *URLExtractor) {
		e.httpClient = c
	}
}

// NewURLExtractor creates a new URLExtractor.
func NewURLExtractor(opts ...Option) *URLExtractor {
	e := &URLExtractor{model: DefaultModel}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Model returns the model identifier used for requests.
func (e *URLExtractor) Model() string {
	return e.model
}

// ExtractURL returns the main text of the page at rawURL as read by the model.
//
// The credential and URL are checked before any request is made. A blank
// model response is reported as KindEmptyResult. Text in which the model
// says the page could not be accessed is returned as is.
func (e *URLExtractor) ExtractURL(ctx context.Context, rawURL, credential string) (string, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return "", unitext.KindErrorf(unitext.EINVALID, unitext.KindMissingCredential,
			"Gemini API key is not provided. Please enter your API key in the application settings.")
	}
	rawURL = strings.TrimSpace(rawURL)
	if err := unitext.ValidateURL(rawURL); err != nil {
		return "", err
	}

	client, err := genai.NewClient(ctx, e.clientConfig(credential))
	if err != nil {
		return "", Classify(err)
	}

	result, err := client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{genai.NewContentFromText(BuildPrompt(rawURL), "user")},
		BuildConfig(),
	)
	if err != nil {
		return "", Classify(err)
	}
	if result == nil {
		return "", unitext.Errorf(unitext.EINTERNAL, "gemini returned nil result")
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", unitext.KindErrorf(unitext.EREMOTE, unitext.KindEmptyResult, emptyResultMessage)
	}
	return text, nil
}

func (e *URLExtractor) clientConfig(apiKey string) *genai.ClientConfig {
	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: e.httpClient,
	}
	if e.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: e.baseURL}
	}
	return cfg
}

// BuildConfig returns the GenerateContentConfig for extraction calls.
// The URL context tool lets the model retrieve the page itself.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
		Tools: []*genai.Tool{
			{URLContext: &genai.URLContext{}},
		},
	}
}

// BuildPrompt builds the extraction instruction for rawURL.
func BuildPrompt(rawURL string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Please extract the main textual content from the website at the following URL: %s\n", rawURL)
	sb.WriteString("Return only the extracted text. Avoid any of your own commentary, summarization, or conversational filler.\n")
	sb.WriteString("If the website contains primarily code or non-prose content, try to extract meaningful textual descriptions or comments if available.\n")
	sb.WriteString("If the URL leads to an error page or content cannot be accessed, indicate that clearly in your response ")
	sb.WriteString(`(e.g., "Could not access content at URL." or "The URL led to an error page.").`)
	return sb.String()
}
