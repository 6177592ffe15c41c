package mensafeed

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/temoto/robotstxt"
)

// Fetcher retrieves the menu page and hands back the parsed document
// tree. One fetch per run, no retries; a failure is fatal for the run
// and propagates to the caller.
type Fetcher struct {
	agent  string
	client *http.Client
}

func NewFetcher(agent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		agent: agent,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchDocument gets targetURL and parses the body. The site's
// robots.txt is honored when it can be read; an unreadable robots.txt
// is logged and ignored.
func (f *Fetcher) FetchDocument(ctx context.Context, targetURL string) (*goquery.Document, error) {
	if err := f.checkRobots(ctx, targetURL); err != nil {
		return nil, err
	}

	req, errRequest := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if errRequest != nil {
		return nil, fmt.Errorf("building request for %s: %w", targetURL, errRequest)
	}
	req.Header.Set("User-Agent", f.agent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	start := time.Now()
	resp, errGet := f.client.Do(req)
	if errGet != nil {
		return nil, fmt.Errorf("fetching %s: %w", targetURL, errGet)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", targetURL, resp.Status)
	}

	doc, errDoc := goquery.NewDocumentFromReader(resp.Body)
	mtc.fetchDurations.Observe(time.Since(start).Seconds())
	if errDoc != nil {
		return nil, fmt.Errorf("parsing %s: %w", targetURL, errDoc)
	}
	log.Printf("fetched %s, status %s", targetURL, resp.Status)
	return doc, nil
}

func (f *Fetcher) checkRobots(ctx context.Context, targetURL string) error {
	target, errParse := url.Parse(targetURL)
	if errParse != nil {
		return fmt.Errorf("parsing target url %s: %w", targetURL, errParse)
	}
	robotsURL := target.Scheme + "://" + target.Host + "/robots.txt"

	req, errRequest := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if errRequest != nil {
		log.Printf("robots: cannot build request for %s: %v", robotsURL, errRequest)
		return nil
	}
	req.Header.Set("User-Agent", f.agent)
	resp, errGet := f.client.Do(req)
	if errGet != nil {
		log.Printf("robots: cannot read %s, continuing: %v", robotsURL, errGet)
		return nil
	}
	defer resp.Body.Close()

	data, errRobots := robotstxt.FromResponse(resp)
	if errRobots != nil {
		log.Printf("robots: cannot parse %s, continuing: %v", robotsURL, errRobots)
		return nil
	}
	if !data.TestAgent(target.Path, f.agent) {
		return fmt.Errorf("robots.txt of %s disallows %s", target.Host, target.Path)
	}
	return nil
}
