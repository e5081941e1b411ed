package main

import (
	"github.com/fwojciec/unitext"
	"github.com/fwojciec/unitext/local"
	uslog "github.com/fwojciec/unitext/slog"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	ext := &local.URLExtractor{
		Fetcher:      deps.Fetcher,
		Extractor:    deps.Extractor,
		Converter:    deps.Converter,
		IncludeTitle: c.Title,
	}
	if c.Plain {
		ext.Converter = nil
	}

	text, err := uslog.NewLoggingURLExtractor(ext, deps.logger()).ExtractURL(deps.Ctx, c.URL, "")
	return printResult(deps, unitext.NewResult(unitext.SourceURL, text, err))
}
