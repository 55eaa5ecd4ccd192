package tui

import (
	"context"
	"encoding/json"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/l9rins/foine-2025/pkg/feed"
	"github.com/l9rins/foine-2025/pkg/post"
	"github.com/l9rins/foine-2025/pkg/session"
)

type fakeSource struct {
	payload json.RawMessage
	err     error
}

func (f *fakeSource) FetchPosts(_ context.Context) (json.RawMessage, error) {
	return f.payload, f.err
}

const feedPayload = `{"data": [
	{"id": 1, "title": "Alpine Lake", "description": "Cold water", "imageUrl": "/u/1.jpg",
	 "tags": [{"id": 1, "name": "nature"}], "likeCount": 3},
	{"id": 2, "title": "City Night", "description": "Neon", "imageUrl": "/u/2.jpg",
	 "tags": [{"id": 2, "name": "urban"}], "likeCount": 7}
]}`

func newTestModel(t *testing.T, payload string) Model {
	t.Helper()
	repo := feed.NewRepository(&fakeSource{payload: json.RawMessage(payload)})
	likes := &feed.LikeMutator{Repo: repo}
	return New(repo, likes, nil, session.NewStore(t.TempDir()))
}

// loadFeed runs Init and feeds its result back, the way the program
// loop would.
func loadFeed(t *testing.T, m Model) Model {
	t.Helper()
	cmd := m.Init()
	if cmd == nil {
		t.Fatalf("Init must start a fetch")
	}
	next, _ := m.Update(cmd())
	return next.(Model)
}

func press(m Model, keys ...tea.KeyPressMsg) Model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func char(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Text: string(r), Code: r}
}

func TestInitialFetchPopulatesFeedInOrder(t *testing.T) {
	m := loadFeed(t, newTestModel(t, feedPayload))

	if got := m.repo.Len(); got != 2 {
		t.Fatalf("expected 2 posts after fetch, got %d", got)
	}
	if len(m.visible) != 2 || m.visible[0].ID != 1 || m.visible[1].ID != 2 {
		t.Fatalf("visible posts out of order: %+v", m.visible)
	}
	if m.loading {
		t.Fatalf("loading must clear once the matching response lands")
	}
}

func TestSearchNarrowsVisiblePosts(t *testing.T) {
	m := loadFeed(t, newTestModel(t, feedPayload))

	m = press(m, char('/'), char('a'), char('l'), char('p'))
	if len(m.visible) != 1 || m.visible[0].ID != 1 {
		t.Fatalf("search %q should leave only Alpine Lake, got %d posts", "alp", len(m.visible))
	}

	m = press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.searching {
		t.Fatalf("enter must leave search entry mode")
	}
	if len(m.visible) != 1 {
		t.Fatalf("leaving entry mode must keep the query applied")
	}
}

func TestTagCycleFiltersAndClears(t *testing.T) {
	m := loadFeed(t, newTestModel(t, feedPayload))

	m = press(m, char('t'))
	if m.selectedTag != "nature" {
		t.Fatalf("first cycle should select the first sorted tag, got %q", m.selectedTag)
	}
	if len(m.visible) != 1 || m.visible[0].ID != 1 {
		t.Fatalf("tag filter nature should show only post 1")
	}

	m = press(m, char('t'), char('t'))
	if m.selectedTag != "" || len(m.visible) != 2 {
		t.Fatalf("cycling past the last tag must clear the filter")
	}
}

func TestCreationClosesComposerAndPrependsPost(t *testing.T) {
	m := loadFeed(t, newTestModel(t, feedPayload))

	m = press(m, char('o'))
	if m.modal.State() != ModalUpload {
		t.Fatalf("o must open the upload composer")
	}

	created := &post.Post{ID: 9, Title: "Fresh"}
	next, _ := m.Update(postCreatedMsg{post: created})
	m = next.(Model)

	if m.modal.State() != ModalClosed {
		t.Fatalf("successful creation must dismiss the composer, got %v", m.modal.State())
	}
	posts := m.repo.Posts()
	if len(posts) != 3 || posts[0].ID != 9 {
		t.Fatalf("created post must land at the head of the feed")
	}
	if len(m.visible) == 0 || m.visible[0].ID != 9 {
		t.Fatalf("visible posts must pick up the new head")
	}
}

func TestCreationFailureKeepsComposerOpen(t *testing.T) {
	m := loadFeed(t, newTestModel(t, feedPayload))
	m = press(m, char('o'))

	next, _ := m.Update(postCreatedMsg{err: context.DeadlineExceeded})
	m = next.(Model)

	if m.modal.State() != ModalUpload {
		t.Fatalf("a failed upload must leave the composer open for retry")
	}
	if m.upload.errMsg == "" {
		t.Fatalf("the failure must surface in the composer")
	}
	if m.repo.Len() != 2 {
		t.Fatalf("no post may be added on failure")
	}
}

func TestLikeFromFeedTogglesSelectedPost(t *testing.T) {
	m := loadFeed(t, newTestModel(t, feedPayload))

	next, cmd := m.Update(char('L'))
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("L must issue a like command")
	}
	next, _ = m.Update(cmd())
	m = next.(Model)

	p := m.visible[0]
	if !p.Liked || p.LikeCount != 4 {
		t.Fatalf("expected liked post with count 4, got liked=%v count=%d", p.Liked, p.LikeCount)
	}
}

func TestDeleteClosesDetailAndRemovesPost(t *testing.T) {
	m := loadFeed(t, newTestModel(t, feedPayload))

	m = press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.modal.State() != ModalDetail {
		t.Fatalf("enter must open the detail overlay")
	}

	next, _ := m.Update(postDeletedMsg{id: 1})
	m = next.(Model)

	if m.modal.State() != ModalClosed {
		t.Fatalf("deleting the shown post must close the overlay")
	}
	if m.repo.Len() != 1 || m.repo.Posts()[0].ID != 2 {
		t.Fatalf("post 1 must be gone from the feed")
	}
}

func TestStaleFetchResponseDoesNotClearLoading(t *testing.T) {
	m := loadFeed(t, newTestModel(t, feedPayload))

	// A refresh bumps the sequence; a response from the earlier fetch
	// must not clear the newer request's loading state.
	next, _ := m.Update(char('r'))
	m = next.(Model)
	if !m.loading {
		t.Fatalf("refresh must mark the model loading")
	}

	next, _ = m.Update(postsLoadedMsg{seq: m.fetchSeq - 1})
	m = next.(Model)
	if !m.loading {
		t.Fatalf("a stale response must not clear loading")
	}

	next, _ = m.Update(postsLoadedMsg{seq: m.fetchSeq})
	m = next.(Model)
	if m.loading {
		t.Fatalf("the matching response must clear loading")
	}
}

func TestEmptyFeedViewInvitesPosting(t *testing.T) {
	m := loadFeed(t, newTestModel(t, `[]`))
	m = press(m, tea.KeyPressMsg{Code: tea.KeyEnter}, char('L'))
	if m.modal.State() != ModalClosed {
		t.Fatalf("enter on an empty feed must not open an overlay")
	}
	if view := m.View(); view == "" {
		t.Fatalf("empty feed still renders the frame")
	}
}
