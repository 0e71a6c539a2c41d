// Package dataset loads drawing results from CSV sources.
package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/verte-zerg/drawfreq/internal/logging"
)

// StdinSource selects standard input as the table source.
const StdinSource = "-"

// httpClient has no timeout of its own; the caller's context bounds each request.
var httpClient = &http.Client{}

// IsURL reports whether source should be fetched over HTTP.
func IsURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Open returns a reader for a file path, "-" or an http(s) URL.
func Open(ctx context.Context, source string, stdin io.Reader) (io.ReadCloser, error) {
	switch {
	case source == "":
		return nil, fmt.Errorf("source is empty")
	case source == StdinSource:
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.NopCloser(stdin), nil
	case IsURL(source):
		return openURL(ctx, source)
	default:
		file, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		return file, nil
	}
}

func openURL(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		logging.SafeCloseWithLogging(resp.Body, logging.FromContext(ctx), "close response body")
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	logging.FromContext(ctx).Debug("fetched dataset", slog.String("url", url), slog.String("status", resp.Status))
	return resp.Body, nil
}
