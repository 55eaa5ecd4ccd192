// Package filter derives the visible subset of the feed. Both functions
// are pure: the same posts, search term, and tag always produce the same
// result, and the input is never reordered or mutated.
package filter

import (
	"sort"
	"strings"

	"github.com/l9rins/foine-2025/pkg/post"
)

// VisiblePosts filters posts by a free-text search term and a selected tag.
// The search matches title or description case-insensitively; the tag must
// match a tag name exactly. Empty search and empty tag is the identity
// filter. Input order is preserved.
func VisiblePosts(posts []*post.Post, search, tag string) []*post.Post {
	needle := strings.ToLower(search)
	visible := make([]*post.Post, 0, len(posts))
	for _, p := range posts {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		if tag != "" && !p.HasTag(tag) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

// DistinctTags returns every tag name appearing across posts, deduplicated
// and sorted in ascending lexicographic order.
func DistinctTags(posts []*post.Post) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, p := range posts {
		for _, t := range p.Tags {
			if _, ok := seen[t.Name]; ok {
				continue
			}
			seen[t.Name] = struct{}{}
			names = append(names, t.Name)
		}
	}
	sort.Strings(names)
	return names
}
