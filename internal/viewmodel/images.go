package viewmodel

import (
	"hash/fnv"
	"regexp"
	"strings"
)

// placeholders is the fixed set of bundled fallback images used when a
// location or review carries no usable image candidate.
var placeholders = []string{
	"assets/placeholder_court_1.png",
	"assets/placeholder_court_2.png",
	"assets/placeholder_court_3.png",
}

var versionSegment = regexp.MustCompile(`^v[0-9]+$`)

// ImageResolver turns backend image fields into fetchable URLs.
type ImageResolver struct {
	fileBase string
}

// NewImageResolver derives the file-server base from the API base URL:
// the trailing versioned path segment is stripped and "/files" is
// appended, so "https://host/api/v1" serves files from
// "https://host/api/files/".
func NewImageResolver(apiBaseURL string) *ImageResolver {
	base := strings.TrimRight(apiBaseURL, "/")
	if idx := strings.LastIndex(base, "/"); idx > 0 {
		if versionSegment.MatchString(base[idx+1:]) {
			base = base[:idx]
		}
	}
	return &ImageResolver{fileBase: base + "/files"}
}

// Resolve returns a fetchable URL for the candidate: absolute URLs
// pass through, bare file names are prefixed with the file-server
// base, and an empty candidate falls back to a placeholder chosen
// deterministically from key.
func (r *ImageResolver) Resolve(candidate, key string) string {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return Placeholder(key)
	}
	if strings.HasPrefix(candidate, "http://") || strings.HasPrefix(candidate, "https://") {
		return candidate
	}
	return r.fileBase + "/" + strings.TrimLeft(candidate, "/")
}

// ResolveFirst resolves the first usable candidate from a list.
func (r *ImageResolver) ResolveFirst(candidates []string, key string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return r.Resolve(c, key)
		}
	}
	return Placeholder(key)
}

// ResolveAll resolves every candidate in order.
func (r *ImageResolver) ResolveAll(candidates []string, key string) []string {
	if len(candidates) == 0 {
		return []string{Placeholder(key)}
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = r.Resolve(c, key)
	}
	return out
}

// Placeholder picks a bundled fallback image. The choice is
// deterministic in the key so a given card keeps its placeholder
// across renders.
func Placeholder(key string) string {
	h := fnv.New32a()
	h.Write([]byte(key))
	return placeholders[int(h.Sum32())%len(placeholders)]
}
