package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fwojciec/unitext"
	"github.com/gabriel-vasile/mimetype"
)

// largePDFSize is the size above which a PDF triggers an advisory warning.
const largePDFSize = 50 * 1000 * 1000

// Run executes the pdf command.
func (c *PDFCmd) Run(deps *Dependencies) error {
	data, err := readPDF(deps.Stderr, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %s\n", unitext.ErrorMessage(err))
		return err
	}

	return printResult(deps, deps.Session.ExtractFromPDF(deps.Ctx, data))
}

// readPDF loads the file at path and checks that it holds a PDF document.
// Files above largePDFSize are read anyway with a warning on stderr.
func readPDF(stderr io.Writer, path string) ([]byte, error) {
	if path == "" {
		return nil, unitext.KindErrorf(unitext.EINVALID, unitext.KindInvalidFileType, "Please select a PDF file first.")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, unitext.Errorf(unitext.ENOTFOUND, "File %q not found.", path)
	} else if err != nil {
		return nil, unitext.WrapError(err, unitext.EINVALID, "", "Could not read %q.", path)
	}

	if mt := mimetype.Detect(data); !mt.Is("application/pdf") {
		return nil, unitext.KindErrorf(unitext.EINVALID, unitext.KindInvalidFileType,
			"Invalid file type. Please select a PDF file.")
	}

	if len(data) > largePDFSize {
		fmt.Fprintf(stderr, "Warning: %s is %s; PDFs over %s may take a long time to process.\n",
			path, humanize.Bytes(uint64(len(data))), humanize.Bytes(largePDFSize))
	}
	return data, nil
}
