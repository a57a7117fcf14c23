package feedclient

import "context"

// Client fetches upstream feed documents over HTTP.
type Client interface {
	Fetch(ctx context.Context, url string, accept string) (string, error)
}
