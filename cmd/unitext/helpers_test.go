package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/unitext"
	main "github.com/fwojciec/unitext/cmd/unitext"
	"github.com/stretchr/testify/require"
)

// newDeps returns Dependencies around a fresh session and captures output.
func newDeps(pdf unitext.PDFExtractor, url unitext.URLExtractor) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Session: unitext.NewSession(pdf, url),
	}, stdout, stderr
}

// writeFile writes data to a file in a temporary directory and returns its path.
func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// pdfBytes is recognized as a PDF by content sniffing. The extractors in
// these tests are mocks, so the body does not need to parse.
var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< >>\n%%EOF\n")
