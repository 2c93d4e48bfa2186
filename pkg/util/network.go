package util

import (
	"net/url"
)

// Host extracts the hostname of a URL for per-host accounting. Invalid URLs
// map to the raw string so they still share one bucket.
func Host(s string) string {
	u, err := url.Parse(s)
	if err != nil || u.Hostname() == "" {
		return s
	}

	return u.Hostname()
}
