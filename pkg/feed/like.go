package feed

import (
	"context"

	"github.com/l9rins/foine-2025/pkg/post"
)

// ConfirmFunc reports the server's verdict on a like transition. The
// deployed service has no like endpoint yet, so the default (nil) confirm
// accepts immediately; the hook exists so the rollback path stays real and
// testable instead of dead code.
type ConfirmFunc func(ctx context.Context, id int64, liked bool) error

// LikeMutator applies optimistic like/unlike transitions to a post in the
// repository. The flip and count adjustment happen before any network
// confirmation; a failed confirmation restores the exact pre-invocation
// state.
type LikeMutator struct {
	Repo    *Repository
	Confirm ConfirmFunc
}

// Toggle flips the liked flag of the post matching id and adjusts its like
// count by +1 or -1, clamped at zero. If the confirming call fails, the
// same adjustment is inverted — the liked flag is set back, not re-toggled,
// and the recorded count delta subtracted — so overlapping invocations
// cannot double-apply a rollback. A missing id is silently dropped.
func (m *LikeMutator) Toggle(ctx context.Context, id int64) error {
	var (
		likedBefore bool
		likedAfter  bool
		delta       int
	)
	applied := m.Repo.Update(id, func(p *post.Post) {
		likedBefore = p.Liked
		before := p.LikeCount
		if p.Liked {
			p.Liked = false
			p.LikeCount--
		} else {
			p.Liked = true
			p.LikeCount++
		}
		if p.LikeCount < 0 {
			p.LikeCount = 0
		}
		likedAfter = p.Liked
		delta = p.LikeCount - before
	})
	if !applied || m.Confirm == nil {
		return nil
	}

	if err := m.Confirm(ctx, id, likedAfter); err != nil {
		m.Repo.Update(id, func(p *post.Post) {
			p.Liked = likedBefore
			p.LikeCount -= delta
			if p.LikeCount < 0 {
				p.LikeCount = 0
			}
		})
		return err
	}
	return nil
}
