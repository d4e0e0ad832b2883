// Package service provides business-logic services for inquiry submission
// and catalog management, delegating persistence and delivery to injected
// interfaces.
package service

import "regexp"

// youtubeIDLength is the fixed identifier length for the supported host.
const youtubeIDLength = 11

// embedPattern recognizes URLs whose video identifier follows one of the
// known path markers. The candidate runs up to the next '#', '&' or '?'.
// A URL that fails the pattern degrades to a plain link.
var embedPattern = regexp.MustCompile(`(?:youtu\.be/|/v/|/u/\w+/|embed/|watch\?v=|&v=)([^#&?]*)`)

// ResolveEmbedID maps a video URL to its embeddable identifier. The second
// return value is false when the URL cannot be shown as an inline player.
func ResolveEmbedID(rawURL string) (string, bool) {
	m := embedPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	if len(m[1]) != youtubeIDLength {
		return "", false
	}
	return m[1], true
}
