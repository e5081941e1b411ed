package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/unitext"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Session   *unitext.Session
	Fetcher   unitext.Fetcher
	Extractor unitext.ContentExtractor
	Converter unitext.Converter
}

func (d *Dependencies) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	APIKey  string        `name:"api-key" env:"GEMINI_API_KEY" help:"Gemini API key for URL extraction (kept in memory only)"`
	Model   string        `name:"model" env:"UNITEXT_MODEL" default:"gemini-2.5-flash" help:"Gemini model used for URL extraction"`
	Verbose bool          `short:"v" help:"Log extraction details to stderr"`
	Timeout time.Duration `default:"10s" help:"Timeout for local page fetches"`

	PDF   PDFCmd   `cmd:"" name:"pdf" help:"Extract text from a local PDF file"`
	URL   URLCmd   `cmd:"" name:"url" help:"Extract the main text of a web page using Gemini"`
	Fetch FetchCmd `cmd:"" name:"fetch" help:"Extract the main text of a web page locally, without an API key"`
	Shell ShellCmd `cmd:"" name:"shell" help:"Start an interactive extraction session"`
}

// PDFCmd is the "pdf" subcommand.
type PDFCmd struct {
	Path string `arg:"" help:"Path to the PDF file"`
}

// URLCmd is the "url" subcommand.
type URLCmd struct {
	URL string `arg:"" help:"Web page URL"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL         string `arg:"" help:"Web page URL"`
	Readability bool   `help:"Isolate content with readability instead of trafilatura"`
	Selector    string `short:"s" help:"Take content from elements matching this CSS selector"`
	Browser     bool   `help:"Render the page in headless Chrome before extracting"`
	Plain       bool   `help:"Print plain text instead of Markdown"`
	Title       bool   `help:"Prefix the output with the page title"`
}

// ShellCmd is the "shell" subcommand.
type ShellCmd struct{}

// printResult writes a settled result to stdout, or its error to stderr.
func printResult(deps *Dependencies, r unitext.Result) error {
	if r.Err != nil {
		fmt.Fprintln(deps.Stderr, unitext.FormatResult(r))
		return r.Err
	}
	fmt.Fprintln(deps.Stdout, unitext.FormatResult(r))
	return nil
}
