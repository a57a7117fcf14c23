package mocks

import (
	"context"
	"strings"
	"sync"

	"feeds.xdoubleu.com/pkg/feedclient"
)

// MockFeedClient serves canned feed bodies and counts upstream
// fetches so tests can assert the cache short-circuits them.
type MockFeedClient struct {
	mu  sync.Mutex
	ICS string
	RSS string
	Err error

	ICSCalls int
	RSSCalls int
}

func NewMockFeedClient(icsBody string, rssBody string) *MockFeedClient {
	return &MockFeedClient{
		ICS: icsBody,
		RSS: rssBody,
	}
}

func (client *MockFeedClient) Fetch(
	_ context.Context,
	url string,
	_ string,
) (string, error) {
	client.mu.Lock()
	defer client.mu.Unlock()

	if client.Err != nil {
		return "", client.Err
	}

	if strings.HasSuffix(url, ".ics") {
		client.ICSCalls++
		return client.ICS, nil
	}

	client.RSSCalls++
	return client.RSS, nil
}

func (client *MockFeedClient) Calls() int {
	client.mu.Lock()
	defer client.mu.Unlock()

	return client.ICSCalls + client.RSSCalls
}

var _ feedclient.Client = (*MockFeedClient)(nil)
