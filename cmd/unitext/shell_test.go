package main_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/unitext"
	main "github.com/fwojciec/unitext/cmd/unitext"
	"github.com/fwojciec/unitext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("extracts a PDF and shows the result", func(t *testing.T) {
		t.Parallel()

		pdf := &mock.PDFExtractor{
			ExtractPDFFn: func(_ context.Context, data []byte) (string, error) {
				return "Hello from the PDF", nil
			},
		}
		deps, stdout, _ := newDeps(pdf, nil)
		path := writeFile(t, "doc.pdf", pdfBytes)
		deps.Stdin = strings.NewReader("pdf " + path + "\nwait\nquit\n")

		err := (&main.ShellCmd{}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Extracting text from PDF Document...")
		assert.Contains(t, output, "Extracted Text (from PDF Document)\n\nHello from the PDF")
		assert.Equal(t, "Hello from the PDF", deps.Session.State().Text)
	})

	t.Run("url requires a key until one is applied", func(t *testing.T) {
		t.Parallel()

		var gotKey string
		url := &mock.URLExtractor{
			ExtractURLFn: func(_ context.Context, rawURL, credential string) (string, error) {
				gotKey = credential
				return "Page text", nil
			},
		}
		deps, stdout, _ := newDeps(nil, url)
		deps.Stdin = strings.NewReader("url https://example.com\nkey  key-123 \nurl https://example.com\nwait\n")

		err := (&main.ShellCmd{}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Error: Gemini API key is required for URL extraction")
		assert.Contains(t, output, "API Key applied for this session!")
		assert.Contains(t, output, "Extracted Text (from Website URL)\n\nPage text")
		assert.Equal(t, "key-123", gotKey)
	})

	t.Run("empty key clears the credential", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(nil, nil)
		deps.Stdin = strings.NewReader("key abc\nkey\n")

		err := (&main.ShellCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "API Key cleared.")
		assert.False(t, deps.Session.HasCredential())
	})

	t.Run("clear returns to idle", func(t *testing.T) {
		t.Parallel()

		pdf := &mock.PDFExtractor{
			ExtractPDFFn: func(_ context.Context, data []byte) (string, error) {
				return "text", nil
			},
		}
		deps, stdout, _ := newDeps(pdf, nil)
		path := writeFile(t, "doc.pdf", pdfBytes)
		deps.Stdin = strings.NewReader("pdf " + path + "\nwait\nclear\nshow\nquit\n")

		err := (&main.ShellCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Cleared.\nNothing extracted yet.\n")
		assert.True(t, deps.Session.State().Idle())
	})

	t.Run("failed extraction is shown and the shell exits cleanly", func(t *testing.T) {
		t.Parallel()

		url := &mock.URLExtractor{
			ExtractURLFn: func(_ context.Context, rawURL, credential string) (string, error) {
				return "", unitext.KindErrorf(unitext.EREMOTE, unitext.KindQuotaExceeded, "Gemini API quota exceeded.")
			},
		}
		deps, stdout, _ := newDeps(nil, url)
		deps.Stdin = strings.NewReader("key k\nurl https://example.com\nwait\nquit\n")

		err := (&main.ShellCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Error: Gemini API quota exceeded.")
		assert.Equal(t, unitext.KindQuotaExceeded, unitext.ErrorKind(deps.Session.State().Err))
	})

	t.Run("rejects non-PDF files", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(&mock.PDFExtractor{}, nil)
		path := writeFile(t, "notes.txt", []byte("plain notes"))
		deps.Stdin = strings.NewReader("pdf " + path + "\n")

		err := (&main.ShellCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Error: Invalid file type. Please select a PDF file.")
	})

	t.Run("reports unknown commands and help", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(nil, nil)
		deps.Stdin = strings.NewReader("bogus\nhelp\n")

		err := (&main.ShellCmd{}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, `Unknown command "bogus"`)
		for _, cmd := range []string{"key", "pdf", "url", "show", "clear", "wait", "quit"} {
			assert.Contains(t, output, "  "+cmd)
		}
	})

	t.Run("newer extraction wins over a slower earlier one", func(t *testing.T) {
		t.Parallel()

		started := make(chan string, 2)
		release := make(chan struct{})
		pdf := &mock.PDFExtractor{
			ExtractPDFFn: func(_ context.Context, data []byte) (string, error) {
				if bytes.Contains(data, []byte("%first")) {
					started <- "first"
					<-release
					return "alpha", nil
				}
				started <- "second"
				return "beta", nil
			},
		}
		deps, stdout, _ := newDeps(pdf, nil)
		first := writeFile(t, "f1.pdf", append(append([]byte{}, pdfBytes...), "%first\n"...))
		second := writeFile(t, "f2.pdf", pdfBytes)

		in, w := io.Pipe()
		deps.Stdin = in
		done := make(chan error, 1)
		go func() { done <- (&main.ShellCmd{}).Run(deps) }()

		_, err := io.WriteString(w, "pdf "+first+"\n")
		require.NoError(t, err)
		requireStarted(t, started, "first")

		_, err = io.WriteString(w, "pdf "+second+"\n")
		require.NoError(t, err)
		requireStarted(t, started, "second")

		close(release)
		_, err = io.WriteString(w, "wait\n")
		require.NoError(t, err)
		require.NoError(t, w.Close())

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("shell did not exit")
		}

		assert.Equal(t, "beta", deps.Session.State().Text)
		assert.NotContains(t, stdout.String(), "alpha")
		assert.Contains(t, stdout.String(), "beta")
	})
}

func requireStarted(t *testing.T, started <-chan string, want string) {
	t.Helper()
	select {
	case got := <-started:
		require.Equal(t, want, got)
	case <-time.After(5 * time.Second):
		t.Fatalf("%s extraction did not start", want)
	}
}
