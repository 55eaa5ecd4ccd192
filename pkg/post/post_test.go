package post

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSanitizeClampsLikeCount(t *testing.T) {
	p := &Post{ID: 1, Title: "Sunset", LikeCount: -3}
	p.Sanitize()
	if p.LikeCount != 0 {
		t.Fatalf("expected like count clamped to 0, got %d", p.LikeCount)
	}

	p = &Post{ID: 2, Title: "Dunes", LikeCount: 7}
	p.Sanitize()
	if p.LikeCount != 7 {
		t.Fatalf("sanitize should leave a valid count alone, got %d", p.LikeCount)
	}
}

func TestHasTagMatchesExactly(t *testing.T) {
	p := &Post{Tags: []Tag{{ID: 1, Name: "nature"}, {ID: 2, Name: "Sky"}}}

	if !p.HasTag("nature") {
		t.Fatalf("expected exact tag name to match")
	}
	if p.HasTag("Nature") {
		t.Fatalf("tag matching must be case-sensitive")
	}
	if p.HasTag("") {
		t.Fatalf("empty name should not match any tag")
	}
}

func TestTimestampDecodesKnownLayouts(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{`"2024-06-01T10:30:00Z"`, time.Date(2024, time.June, 1, 10, 30, 0, 0, time.UTC)},
		{`"2024-06-01T10:30:00.5Z"`, time.Date(2024, time.June, 1, 10, 30, 0, 500000000, time.UTC)},
		{`"2024-06-01"`, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		var ts Timestamp
		if err := json.Unmarshal([]byte(tc.raw), &ts); err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.raw, err)
		}
		if !ts.Equal(tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.raw, ts.Time, tc.want)
		}
	}
}

func TestTimestampToleratesGarbage(t *testing.T) {
	for _, raw := range []string{`""`, `"yesterday"`, `42`, `{"seconds":1}`, `null`} {
		var ts Timestamp
		if err := json.Unmarshal([]byte(raw), &ts); err != nil {
			t.Fatalf("%s: timestamp decoding must not fail, got %v", raw, err)
		}
		if !ts.IsZero() {
			t.Fatalf("%s: expected zero time, got %v", raw, ts.Time)
		}
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	ts := Timestamp{Time: time.Date(2024, time.June, 1, 10, 30, 0, 0, time.UTC)}
	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(ts.Time) {
		t.Fatalf("round trip changed value: %v != %v", back.Time, ts.Time)
	}
}
