// Package transport fetches HTTP bodies for the demonstration drivers. It
// is not part of either decoder core; callers that get an empty buffer on
// failure are expected to treat that as "nothing to process" rather than
// as an error.
package transport

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"
)

var client = &http.Client{Timeout: 30 * time.Second}

// Download fetches url's body. On any failure (network error, non-2xx
// status, body read error) it logs the cause and returns nil rather than
// propagating an error, matching the original downloader's log-and-continue
// behavior.
func Download(ctx context.Context, url string) []byte {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Printf("transport: building request for %s: %v", url, err)
		return nil
	}

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("transport: fetching %s: %v", url, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("transport: fetching %s: unexpected status %s", url, resp.Status)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("transport: reading body from %s: %v", url, err)
		return nil
	}
	return body
}
