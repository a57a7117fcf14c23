package models

import "net/http"

// CachedResponse is a fully rendered HTTP response as stored in the
// edge cache. A cache hit replays status, headers and body verbatim;
// CORS headers are merged back in by the middleware chain.
type CachedResponse struct {
	Status int
	Header http.Header
	Body   []byte
}

func NewCachedResponse(contentType string, cacheControl string, body []byte) *CachedResponse {
	header := http.Header{}
	header.Set("Content-Type", contentType)
	if cacheControl != "" {
		header.Set("Cache-Control", cacheControl)
	}

	return &CachedResponse{
		Status: http.StatusOK,
		Header: header,
		Body:   body,
	}
}
