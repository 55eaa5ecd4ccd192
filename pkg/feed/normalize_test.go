package feed

import (
	"fmt"
	"testing"
)

const elements = `[{"id":1,"title":"Alpha","likeCount":3},{"id":2,"title":"Beta","likeCount":0}]`

func TestNormalizeSupportedEnvelopes(t *testing.T) {
	envelopes := map[string]string{
		"bare array":        elements,
		"data wrapper":      fmt.Sprintf(`{"data":%s}`, elements),
		"posts wrapper":     fmt.Sprintf(`{"posts":%s}`, elements),
		"first array field": fmt.Sprintf(`{"meta":{"total":2},"items":%s}`, elements),
	}

	for name, envelope := range envelopes {
		posts := Normalize([]byte(envelope))
		if len(posts) != 2 {
			t.Fatalf("%s: expected 2 posts, got %d", name, len(posts))
		}
		if posts[0].ID != 1 || posts[0].Title != "Alpha" {
			t.Fatalf("%s: first post = %+v", name, posts[0])
		}
		if posts[1].ID != 2 || posts[1].Title != "Beta" {
			t.Fatalf("%s: second post = %+v", name, posts[1])
		}
	}
}

func TestNormalizePrefersDataOverEarlierArrays(t *testing.T) {
	envelope := fmt.Sprintf(`{"warnings":["stale cache"],"data":%s}`, elements)
	posts := Normalize([]byte(envelope))
	if len(posts) != 2 {
		t.Fatalf("the data field should win over an earlier array field, got %d posts", len(posts))
	}
}

func TestNormalizeFirstArrayFieldHonorsDocumentOrder(t *testing.T) {
	envelope := fmt.Sprintf(`{"first":%s,"second":[{"id":9,"title":"Wrong"}]}`, elements)
	posts := Normalize([]byte(envelope))
	if len(posts) != 2 || posts[0].ID != 1 {
		t.Fatalf("expected the first array field in document order, got %+v", posts)
	}
}

func TestNormalizeUnrecognizedShapesAreEmpty(t *testing.T) {
	for _, raw := range []string{
		``,
		`null`,
		`42`,
		`"posts"`,
		`{}`,
		`{"count":7,"ok":true}`,
		`{"data":{"id":1}}`,
		`{not even json`,
	} {
		posts := Normalize([]byte(raw))
		if posts == nil {
			t.Fatalf("%q: normalization must yield a usable empty slice, not nil", raw)
		}
		if len(posts) != 0 {
			t.Fatalf("%q: expected empty, got %d posts", raw, len(posts))
		}
	}
}

func TestNormalizeSkipsMalformedElements(t *testing.T) {
	posts := Normalize([]byte(`[{"id":1,"title":"Alpha"},"garbage",{"id":2,"title":"Beta"}]`))
	if len(posts) != 2 {
		t.Fatalf("one bad element should cost one record, got %d", len(posts))
	}
	if posts[0].ID != 1 || posts[1].ID != 2 {
		t.Fatalf("surviving elements out of order: %+v", posts)
	}
}

func TestNormalizeClampsNegativeLikeCounts(t *testing.T) {
	posts := Normalize([]byte(`[{"id":1,"title":"Alpha","likeCount":-5}]`))
	if len(posts) != 1 || posts[0].LikeCount != 0 {
		t.Fatalf("like counts must never start negative, got %+v", posts)
	}
}

func TestNormalizeToleratesMissingCreatedAt(t *testing.T) {
	posts := Normalize([]byte(`[{"id":1,"title":"Alpha","createdAt":"not a date"}]`))
	if len(posts) != 1 {
		t.Fatalf("a malformed createdAt must not drop the record, got %d posts", len(posts))
	}
	if !posts[0].CreatedAt.IsZero() {
		t.Fatalf("expected zero created time, got %v", posts[0].CreatedAt)
	}
}
