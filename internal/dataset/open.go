package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Open returns a reader for a local path or an http(s) URL. A URL is fetched
// with a single blocking GET.
func Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("failed to open dataset: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build dataset request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch dataset: unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}
