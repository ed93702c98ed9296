// Package classes retrieves the canonical Nice Classification taxonomy
// as rendered on the public TMclass page.
package classes

import (
    "context"

    "github.com/hyperifyio/tmclassify/internal/extract"
    "github.com/hyperifyio/tmclassify/internal/fetch"
    "github.com/hyperifyio/tmclassify/internal/truncate"
)

// DefaultURL is the canonical taxonomy source.
const DefaultURL = "https://tmclass.tmdn.org/ec2/"

// Fetcher retrieves the reference taxonomy text. Every call re-fetches;
// the absence of a cache is deliberate, not an oversight.
type Fetcher struct {
    Client *fetch.Client
    // URL overrides DefaultURL; used by operators pointing at a mirror
    // and by tests.
    URL string
}

// Fetch returns the sanitized, capped visible text of the reference page.
// The page passes through exactly the same fetch and sanitization path as
// business URLs.
func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
    url := f.URL
    if url == "" {
        url = DefaultURL
    }
    client := f.Client
    if client == nil {
        client = &fetch.Client{}
    }
    body, err := client.Get(ctx, url)
    if err != nil {
        return "", err
    }
    return truncate.ToCap(extract.Text(body)), nil
}
