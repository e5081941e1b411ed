package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/unitext"
	"github.com/fwojciec/unitext/mock"
	uslog "github.com/fwojciec/unitext/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTextLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs page size and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<p>article</p>", nil
			},
		}

		html, err := uslog.NewLoggingFetcher(inner, newTextLogger(&buf)).Fetch(context.Background(), "https://example.com/post")

		require.NoError(t, err)
		assert.Equal(t, "<p>article</p>", html)
		output := buf.String()
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, "url=https://example.com/post")
		assert.Contains(t, output, "bytes=14")
		assert.Contains(t, output, "duration=")
		assert.Contains(t, output, "kind=\"\"")
	})

	t.Run("logs the error kind of application errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", unitext.KindErrorf(unitext.EREMOTE, unitext.KindNetworkUnreachable, "Failed to fetch the URL.")
			},
		}

		_, err := uslog.NewLoggingFetcher(inner, newTextLogger(&buf)).Fetch(context.Background(), "https://nope.invalid")

		require.Error(t, err)
		assert.Equal(t, unitext.KindNetworkUnreachable, unitext.ErrorKind(err))
		output := buf.String()
		assert.Contains(t, output, "kind=network_unreachable")
		assert.Contains(t, output, "bytes=0")
	})

	t.Run("logs plain transport errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("HTTP 503 for https://example.com")
			},
		}

		_, err := uslog.NewLoggingFetcher(inner, newTextLogger(&buf)).Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="HTTP 503 for https://example.com"`)
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	closeErr := errors.New("browser already gone")
	inner := &mock.Fetcher{
		CloseFn: func() error {
			return closeErr
		},
	}

	err := uslog.NewLoggingFetcher(inner, newTextLogger(&buf)).Close()

	require.ErrorIs(t, err, closeErr)
	assert.Empty(t, buf.String())
}
