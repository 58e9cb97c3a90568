package monitor

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/axellelanca/minicrud/internal/models"
)

// LinkSource supplies the links to check.
type LinkSource interface {
	Links(ctx context.Context) ([]models.ShortLink, error)
}

// Result is the reachability of one stored target URL.
type Result struct {
	ShortID   string
	FullURL   string
	Reachable bool
	Status    int // 0 when no response was received
}

// LinkChecker probes the target URL of every stored short link.
type LinkChecker struct {
	source     LinkSource
	timeout    time.Duration
	httpClient *http.Client
}

// NewLinkChecker creates a checker giving each URL at most timeout to answer.
func NewLinkChecker(source LinkSource, timeout time.Duration) *LinkChecker {
	return &LinkChecker{
		source:  source,
		timeout: timeout,
		httpClient: &http.Client{
			// A redirect is an answer; do not follow it.
			CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
		},
	}
}

// Check performs one pass over all links, in store order.
func (m *LinkChecker) Check(ctx context.Context) ([]Result, error) {
	links, err := m.source.Links(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(links))
	for _, link := range links {
		status := m.probe(ctx, link.FullURL)
		results = append(results, Result{
			ShortID:   link.ShortID,
			FullURL:   link.FullURL,
			Reachable: status >= 200 && status < 400,
			Status:    status,
		})
	}
	return results, nil
}

// probe sends a HEAD request and returns the status code, or 0 on failure.
func (m *LinkChecker) probe(ctx context.Context, url string) int {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		log.Printf("[MONITOR] Error creating request for URL '%s': %v", url, err)
		return 0
	}
	resp, err := m.httpClient.Do(req)
	if err != nil {
		log.Printf("[MONITOR] Error accessing URL '%s': %v", url, err)
		return 0
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

// FormatState renders reachability for humans.
func FormatState(reachable bool) string {
	if reachable {
		return "ACCESSIBLE"
	}
	return "INACCESSIBLE"
}
