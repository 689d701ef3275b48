// Package normalize turns free-text model output into typed records.
//
// Malformed output is an expected branch, not an error: every entry point
// returns a Result tagged with how the value was obtained.
package normalize

import (
	"encoding/json"
	"strings"
)

type Outcome int

const (
	// Parsed means the model output decoded as structured data; missing
	// fields were defaulted individually.
	Parsed Outcome = iota
	// FallbackStatic means the value was generated from the reference tables.
	FallbackStatic
	// FallbackTruncated means the raw text was used as-is, truncated.
	FallbackTruncated
)

func (o Outcome) String() string {
	switch o {
	case Parsed:
		return "parsed"
	case FallbackStatic:
		return "fallback_static"
	case FallbackTruncated:
		return "fallback_truncated"
	default:
		return "unknown"
	}
}

type Result[T any] struct {
	Value   T
	Outcome Outcome
}

const (
	labeledFence = "```json"
	fence        = "```"
)

// ExtractFenced returns the body of the first ```json fence, else the body of
// the first bare ``` fence, else the trimmed text. An unterminated fence runs
// to the end of the text.
func ExtractFenced(raw string) string {
	text := strings.TrimSpace(raw)

	open := labeledFence
	i := strings.Index(text, labeledFence)
	if i < 0 {
		open = fence
		i = strings.Index(text, fence)
	}
	if i < 0 {
		return text
	}

	body := text[i+len(open):]
	if j := strings.Index(body, fence); j >= 0 {
		body = body[:j]
	}
	return body
}

// ListParams describes a list-shaped generation request.
type ListParams struct {
	Niche      string
	Categories []string
	Count      int
}

// normalizeList is the shared routine behind every list shape: decode a JSON
// array, default fields per element, and cap at count. Output that is not a
// JSON array is replaced by fallback(), also capped at count.
func normalizeList[T any](raw string, count int, decode func(map[string]any) T, fallback func() []T) Result[[]T] {
	if count <= 0 {
		return Result[[]T]{Value: []T{}, Outcome: FallbackStatic}
	}

	var items []any
	if err := json.Unmarshal([]byte(ExtractFenced(raw)), &items); err != nil || items == nil {
		out := fallback()
		if len(out) > count {
			out = out[:count]
		}
		return Result[[]T]{Value: out, Outcome: FallbackStatic}
	}

	out := make([]T, 0, min(count, len(items)))
	for _, item := range items {
		if len(out) == count {
			break
		}
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, decode(obj))
	}
	return Result[[]T]{Value: out, Outcome: Parsed}
}

// stringField returns obj[key] when it is a string, trying aliases in order.
func stringField(obj map[string]any, def string, keys ...string) string {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok {
			return s
		}
	}
	return def
}

// stringsField keeps the string elements of an array field; anything else
// yields an empty list.
func stringsField(obj map[string]any, key string) []string {
	arr, ok := obj[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func hashtagsField(obj map[string]any, key string) []string {
	return CleanHashtags(stringsField(obj, key))
}

// CleanHashtags drops blank entries and prefixes a missing '#'.
func CleanHashtags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		tag = strings.TrimLeft(tag, "#")
		if tag == "" {
			continue
		}
		out = append(out, "#"+tag)
	}
	return out
}
