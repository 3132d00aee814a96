package genesys

import "regexp"

// storedDownloadPattern matches Genesys Cloud stored-download URLs:
// https://api.<domain>/api/v2/downloads/<downloadId>. The domain segment
// identifies the region whose token endpoint must authorize the fetch.
var storedDownloadPattern = regexp.MustCompile(`^https://api\.([a-zA-Z0-9.-]+)/api/v2/downloads/([A-Za-z0-9_-]+)`)

// IsStoredDownloadURL reports whether rawURL points at a Genesys Cloud
// stored download that requires an OAuth-authenticated fetch.
func IsStoredDownloadURL(rawURL string) bool {
	return storedDownloadPattern.MatchString(rawURL)
}

// parseStoredDownloadURL extracts the region domain and download id.
func parseStoredDownloadURL(rawURL string) (domain, downloadID string, ok bool) {
	m := storedDownloadPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
