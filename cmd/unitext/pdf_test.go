package main_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/unitext"
	main "github.com/fwojciec/unitext/cmd/unitext"
	"github.com/fwojciec/unitext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints extracted text", func(t *testing.T) {
		t.Parallel()

		var got []byte
		pdf := &mock.PDFExtractor{
			ExtractPDFFn: func(_ context.Context, data []byte) (string, error) {
				got = data
				return "Hello World", nil
			},
		}
		deps, stdout, _ := newDeps(pdf, nil)
		path := writeFile(t, "doc.pdf", pdfBytes)

		err := (&main.PDFCmd{Path: path}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, pdfBytes, got)
		assert.Equal(t, "Extracted Text (from PDF Document)\n\nHello World\n", stdout.String())
		assert.Equal(t, "Hello World", deps.Session.State().Text)
	})

	t.Run("reports empty documents", func(t *testing.T) {
		t.Parallel()

		pdf := &mock.PDFExtractor{
			ExtractPDFFn: func(_ context.Context, data []byte) (string, error) {
				return "", nil
			},
		}
		deps, stdout, _ := newDeps(pdf, nil)

		err := (&main.PDFCmd{Path: writeFile(t, "empty.pdf", pdfBytes)}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No text was extracted.")
	})

	t.Run("rejects non-PDF files before extracting", func(t *testing.T) {
		t.Parallel()

		called := false
		pdf := &mock.PDFExtractor{
			ExtractPDFFn: func(_ context.Context, data []byte) (string, error) {
				called = true
				return "", nil
			},
		}
		deps, stdout, stderr := newDeps(pdf, nil)

		err := (&main.PDFCmd{Path: writeFile(t, "notes.txt", []byte("just some notes"))}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, unitext.KindInvalidFileType, unitext.ErrorKind(err))
		assert.Contains(t, stderr.String(), "Invalid file type. Please select a PDF file.")
		assert.Empty(t, stdout.String())
		assert.False(t, called)
	})

	t.Run("reports missing files", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(&mock.PDFExtractor{}, nil)

		err := (&main.PDFCmd{Path: filepath.Join(t.TempDir(), "missing.pdf")}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, unitext.ENOTFOUND, unitext.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})

	t.Run("prints parse errors", func(t *testing.T) {
		t.Parallel()

		pdf := &mock.PDFExtractor{
			ExtractPDFFn: func(_ context.Context, data []byte) (string, error) {
				return "", unitext.Errorf(unitext.EPARSE, "Failed to parse PDF.")
			},
		}
		deps, stdout, stderr := newDeps(pdf, nil)

		err := (&main.PDFCmd{Path: writeFile(t, "bad.pdf", pdfBytes)}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "Error: Failed to parse PDF.\n", stderr.String())
		assert.Empty(t, stdout.String())
	})
}
