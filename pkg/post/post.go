package post

// Tag labels a post. Name is both the display string and the filter key;
// tag filtering matches names exactly.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Post is the canonical feed record. Everything except Liked comes from
// the service; Liked is client-local optimistic state and is never sent
// back on the wire.
type Post struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl"`
	Tags        []Tag     `json:"tags,omitempty"`
	LikeCount   int       `json:"likeCount"`
	Liked       bool      `json:"-"`
	CreatedAt   Timestamp `json:"createdAt,omitempty"`
}

// Sanitize enforces construction invariants on a record decoded from the
// wire. The like count must never start negative; the like mutator relies
// on that floor.
func (p *Post) Sanitize() {
	if p.LikeCount < 0 {
		p.LikeCount = 0
	}
}

// HasTag reports whether the post carries a tag with exactly the given name.
func (p *Post) HasTag(name string) bool {
	for _, t := range p.Tags {
		if t.Name == name {
			return true
		}
	}
	return false
}

// TagNames returns the tag names in their received order.
func (p *Post) TagNames() []string {
	if len(p.Tags) == 0 {
		return nil
	}
	names := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		names = append(names, t.Name)
	}
	return names
}
