package docgrab

import "context"

// Fetcher retrieves content over the network.
type Fetcher interface {
	// Fetch retrieves a page body as text.
	Fetch(ctx context.Context, url string) (string, error)

	// FetchBytes retrieves a resource body verbatim.
	FetchBytes(ctx context.Context, url string) ([]byte, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
