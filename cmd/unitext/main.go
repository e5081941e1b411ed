package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/unitext"
	"github.com/fwojciec/unitext/gemini"
	"github.com/fwojciec/unitext/goquery"
	"github.com/fwojciec/unitext/htmltomarkdown"
	unihttp "github.com/fwojciec/unitext/http"
	"github.com/fwojciec/unitext/pdf"
	"github.com/fwojciec/unitext/readability"
	"github.com/fwojciec/unitext/rod"
	uslog "github.com/fwojciec/unitext/slog"
	"github.com/fwojciec/unitext/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Input for the interactive shell.
	Stdin io.Reader

	// Extractors for end-to-end testing. Production implementations are
	// used when nil.
	PDFExtractor unitext.PDFExtractor
	URLExtractor unitext.URLExtractor
	Fetcher      unitext.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("unitext"),
		kong.Description("Extract text from PDF files locally or from websites using AI."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'unitext --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	pdfExtractor := m.PDFExtractor
	if pdfExtractor == nil {
		pdfExtractor = pdf.NewExtractor()
	}
	urlExtractor := m.URLExtractor
	if urlExtractor == nil {
		urlExtractor = gemini.NewURLExtractor(gemini.WithModel(cli.Model))
	}
	deps.Session = unitext.NewSession(
		uslog.NewLoggingPDFExtractor(pdfExtractor, deps.Logger),
		uslog.NewLoggingURLExtractor(urlExtractor, deps.Logger),
	)
	deps.Session.SetCredential(cli.APIKey)

	if strings.HasPrefix(kongCtx.Command(), "fetch") {
		fetcher := m.Fetcher
		if fetcher == nil && cli.Fetch.Browser {
			browser, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = browser
		} else if fetcher == nil {
			fetcher = unihttp.NewFetcher(unihttp.WithTimeout(cli.Timeout))
		}
		deps.Fetcher = uslog.NewLoggingFetcher(fetcher, deps.Logger)
		defer deps.Fetcher.Close()

		switch {
		case cli.Fetch.Selector != "":
			deps.Extractor = goquery.NewSelectorExtractor(cli.Fetch.Selector)
		case cli.Fetch.Readability:
			deps.Extractor = readability.NewExtractor()
		default:
			deps.Extractor = trafilatura.NewExtractor()
		}
		deps.Converter = htmltomarkdown.NewConverter()
	}

	return kongCtx.Run(deps)
}
