package filter

import (
	"reflect"
	"testing"

	"github.com/l9rins/foine-2025/pkg/post"
)

func feedFixture() []*post.Post {
	return []*post.Post{
		{ID: 1, Title: "Sunset", Description: "over the bay", Tags: []post.Tag{{ID: 1, Name: "nature"}}},
		{ID: 2, Title: "City lights", Description: "Downtown at night", Tags: []post.Tag{{ID: 2, Name: "urban"}, {ID: 1, Name: "nature"}}},
		{ID: 3, Title: "Alpha", Description: ""},
	}
}

func ids(posts []*post.Post) []int64 {
	out := make([]int64, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestVisiblePostsIdentity(t *testing.T) {
	posts := feedFixture()
	visible := VisiblePosts(posts, "", "")
	if !reflect.DeepEqual(ids(visible), []int64{1, 2, 3}) {
		t.Fatalf("empty search and tag must be the identity filter, got %v", ids(visible))
	}
	for i := range posts {
		if visible[i] != posts[i] {
			t.Fatalf("identity filter should keep the same records in order")
		}
	}
}

func TestVisiblePostsSearchIsCaseInsensitive(t *testing.T) {
	posts := feedFixture()

	if got := ids(VisiblePosts(posts, "sun", "")); !reflect.DeepEqual(got, []int64{1}) {
		t.Fatalf(`search "sun" should match title "Sunset", got %v`, got)
	}
	if got := ids(VisiblePosts(posts, "DOWNTOWN", "")); !reflect.DeepEqual(got, []int64{2}) {
		t.Fatalf("search should match descriptions case-insensitively, got %v", got)
	}
	if got := VisiblePosts(posts, "nomatch", ""); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", ids(got))
	}
}

func TestVisiblePostsTagIsExact(t *testing.T) {
	posts := feedFixture()

	if got := ids(VisiblePosts(posts, "", "nature")); !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Fatalf("tag filter should keep feed order, got %v", got)
	}
	if got := VisiblePosts(posts, "", "Nature"); len(got) != 0 {
		t.Fatalf("tag match must be case-sensitive, got %v", ids(got))
	}
}

func TestVisiblePostsCombinesSearchAndTag(t *testing.T) {
	posts := feedFixture()
	got := ids(VisiblePosts(posts, "night", "nature"))
	if !reflect.DeepEqual(got, []int64{2}) {
		t.Fatalf("both conditions must hold, got %v", got)
	}
}

func TestDistinctTagsSortedAndDeduplicated(t *testing.T) {
	posts := feedFixture()
	got := DistinctTags(posts)
	want := []string{"nature", "urban"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if got := DistinctTags(nil); len(got) != 0 {
		t.Fatalf("no posts means no tags, got %v", got)
	}
	if got := DistinctTags([]*post.Post{{ID: 9}}); len(got) != 0 {
		t.Fatalf("posts without tags contribute nothing, got %v", got)
	}
}
