// Package http provides an HTTP client configured for FANBOX API requests.
//
// The Client attaches the fixed header set the API requires (Origin,
// User-Agent, and the FANBOXSESSID session cookie when one is configured)
// to every request. An empty session is allowed: requests go out
// unauthenticated and the upstream service rejects gated content.
//
// # Basic Usage
//
//	client := http.NewClient(session)
//
//	// Fetch an API response body for JSON decoding
//	body, err := client.Get(ctx, "https://api.fanbox.cc/plan.listSupporting")
//
//	// Stream a file to disk with a progress callback
//	err = client.DownloadFile(ctx, url, "/path/to/file.png", func(written, total int64) {
//	    fmt.Printf("%d / %d bytes\n", written, total)
//	})
package http
