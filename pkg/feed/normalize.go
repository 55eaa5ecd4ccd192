package feed

import (
	"bytes"
	"encoding/json"

	"github.com/l9rins/foine-2025/pkg/post"
)

// Normalize extracts the post sequence from any of the envelope shapes the
// service has been observed to produce:
//
//   - a bare array of post objects
//   - an object whose "data" field holds the array
//   - an object whose "posts" field holds the array
//   - any non-empty object: its first array-valued field, in document order
//
// Anything else decodes to an empty collection. This is deliberately
// fail-open: an empty feed beats a crash when the backend changes its
// wrapper, and per spec the caller treats unrecognized shapes the same as
// "no data". Normalize never returns an error.
func Normalize(raw json.RawMessage) []*post.Post {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []*post.Post{}
	}

	switch trimmed[0] {
	case '[':
		return decodeList(trimmed)
	case '{':
		fields := objectFields(trimmed)
		for _, key := range []string{"data", "posts"} {
			for _, f := range fields {
				if f.key == key && isArray(f.value) {
					return decodeList(f.value)
				}
			}
		}
		for _, f := range fields {
			if isArray(f.value) {
				return decodeList(f.value)
			}
		}
	}
	return []*post.Post{}
}

type field struct {
	key   string
	value json.RawMessage
}

// objectFields walks a top-level JSON object with a token decoder so the
// "first array-valued field" rule can honor document order, which a plain
// map[string]json.RawMessage would lose.
func objectFields(raw []byte) []field {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}

	var fields []field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fields
		}
		key, ok := keyTok.(string)
		if !ok {
			return fields
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fields
		}
		fields = append(fields, field{key: key, value: value})
	}
	return fields
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// decodeList decodes elements one at a time so a single malformed record
// costs that record, not the whole feed.
func decodeList(raw json.RawMessage) []*post.Post {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return []*post.Post{}
	}
	posts := make([]*post.Post, 0, len(elements))
	for _, element := range elements {
		p := &post.Post{}
		if err := json.Unmarshal(element, p); err != nil {
			continue
		}
		p.Sanitize()
		posts = append(posts, p)
	}
	return posts
}
