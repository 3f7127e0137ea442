package item

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Fields carries the raw submitted form values of a create or update.
// Normalization happens in the service, not at the HTTP boundary.
type Fields struct {
	Category     string
	Title        string
	Subtitle     string
	Description  string
	TagsRaw      string // comma-separated
	LinksRaw     string // JSON array of {label, url}
	YearRaw      string
	Publication  string
	Domain       string
	Collaborator string
	Thumbnail    string
	PeriodStart  string
	PeriodEnd    string
}

// NormalizeTags splits a comma-separated tag string into a trimmed
// sequence. Empty entries are dropped; order and duplicates given by
// the admin are preserved.
func NormalizeTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ParseLinks decodes the JSON-encoded links payload. An empty payload
// yields an empty sequence.
func ParseLinks(raw string) (LinkList, error) {
	if strings.TrimSpace(raw) == "" {
		return LinkList{}, nil
	}
	var links LinkList
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		return nil, fmt.Errorf("invalid links payload: %v", err)
	}
	return links, nil
}

// ParseYear coerces the raw year field to an integer, or nil when blank.
func ParseYear(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	y, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid year %q", raw)
	}
	return &y, nil
}

// nullable maps an empty form value to NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
