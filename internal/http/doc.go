// Package http provides the HTTP client used to talk to Moxfield and EDHREC.
//
// The Client in this package handles:
//   - User-Agent headers (Moxfield sits behind a bot filter)
//   - Timeout handling
//   - Mapping non-200 responses to *apperr.RemoteFetchError
//   - JSON decoding
//
// # Basic Usage
//
//	client := http.NewClient(http.WithTimeout(10*time.Second), http.WithLogger(logger))
//
//	// Fetch raw bytes
//	body, err := client.Get(ctx, "https://api2.moxfield.com/v3/decks/all/Smh7ryekIUeOQd9mlYjBXA")
//
//	// Fetch and decode JSON
//	var page map[string]any
//	err = client.GetJSON(ctx, url, &page)
//
// No retries are performed; a failed request surfaces immediately.
package http
