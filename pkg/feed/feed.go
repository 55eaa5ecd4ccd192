// Package feed owns the authoritative in-memory post collection and
// reconciles it with the remote service. All downstream layers (filtering,
// layout, rendering) derive from the snapshot this package holds; they
// never talk to the wire themselves.
package feed

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/l9rins/foine-2025/pkg/post"
)

// Source is the read side of the REST boundary. pkg/api implements it;
// tests substitute fakes.
type Source interface {
	FetchPosts(ctx context.Context) (json.RawMessage, error)
}

// Repository is the single source of truth for posts. Mutations are whole
// collection replacements or single-record updates, applied under one
// mutex so CLI commands and the UI event loop can share an instance.
type Repository struct {
	mu     sync.RWMutex
	source Source
	posts  []*post.Post
}

// NewRepository builds an empty repository reading from source.
func NewRepository(source Source) *Repository {
	return &Repository{source: source}
}

// FetchAll issues one read for all posts, normalizes whatever envelope
// comes back, and replaces the collection. On transport or parse failure
// the collection is emptied and the error is returned for display; there
// is no automatic retry. Concurrent fetches are allowed — the last
// response to resolve wins, which is the only ordering guarantee the
// service offers.
func (r *Repository) FetchAll(ctx context.Context) ([]*post.Post, error) {
	raw, err := r.source.FetchPosts(ctx)
	if err != nil {
		r.ReplaceAll(nil)
		return nil, err
	}
	posts := Normalize(raw)
	r.ReplaceAll(posts)
	return posts, nil
}

// Posts returns a snapshot of the collection. The slice is a copy; the
// records are shared.
func (r *Repository) Posts() []*post.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make([]*post.Post, len(r.posts))
	copy(snapshot, r.posts)
	return snapshot
}

// Len reports the current collection size.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts)
}

// ReplaceAll atomically substitutes the whole collection.
func (r *Repository) ReplaceAll(posts []*post.Post) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = posts
}

// Prepend inserts a newly created post at the front, keeping the
// most-recent-first ordering by insertion. The created record is trusted
// as-is; no re-fetch happens.
func (r *Repository) Prepend(p *post.Post) {
	if p == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append([]*post.Post{p}, r.posts...)
}

// Update applies fn to the single post matching id. A missing id is a
// silent no-op: stale operations on removed posts are dropped. The return
// value reports whether a post was touched.
func (r *Repository) Update(id int64, fn func(*post.Post)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.ID == id {
			fn(p)
			return true
		}
	}
	return false
}

// Remove drops the post matching id, reporting whether it was present.
func (r *Repository) Remove(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the post matching id, if any.
func (r *Repository) Get(id int64) (*post.Post, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.posts {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}
