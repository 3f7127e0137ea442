package gallery

import (
	"sort"

	"github.com/qwest/portfolioapi/api/item"
)

// View is the derived gallery projection handed to rendering.
type View struct {
	State        State            `json:"state"`
	Items        []item.ItemModel `json:"items"`
	FilterValues []string         `json:"filter_values"`
}

// Visible derives the filtered item list from the state. It is a pure
// projection recomputed on every call; an empty result is a valid
// outcome, not an error.
func Visible(s State, items []item.ItemModel) []item.ItemModel {
	if s.Category == CategoryAll {
		out := make([]item.ItemModel, len(items))
		copy(out, items)
		return out
	}

	out := make([]item.ItemModel, 0, len(items))
	for _, m := range items {
		if string(m.Category) != s.Category {
			continue
		}
		if s.Filter != nil && !matches(s, &m) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// matches applies the active secondary filter to one item.
func matches(s State, m *item.ItemModel) bool {
	filter := *s.Filter

	if s.Category == string(item.CategoryPaperReview) {
		switch s.SubTab {
		case SubTabPublication:
			return m.Publication != nil && *m.Publication == filter
		case SubTabDomain:
			return m.Domain != nil && *m.Domain == filter
		}
	}

	return m.HasTag(filter)
}

// FilterValues derives the selectable secondary values for the current
// category and sub-tab: sorted unique tags, publications or domains of
// the items in that category.
func FilterValues(s State, items []item.ItemModel) []string {
	if s.Category == CategoryAll {
		return []string{}
	}

	seen := map[string]struct{}{}
	values := []string{}
	add := func(v string) {
		if v == "" {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	for _, m := range items {
		if string(m.Category) != s.Category {
			continue
		}
		if s.Category == string(item.CategoryPaperReview) && s.SubTab == SubTabPublication {
			if m.Publication != nil {
				add(*m.Publication)
			}
			continue
		}
		if s.Category == string(item.CategoryPaperReview) && s.SubTab == SubTabDomain {
			if m.Domain != nil {
				add(*m.Domain)
			}
			continue
		}
		for _, t := range m.Tags {
			add(t)
		}
	}

	sort.Strings(values)
	return values
}

// Derive builds the full view for the given state.
func Derive(s State, items []item.ItemModel) View {
	return View{
		State:        s,
		Items:        Visible(s, items),
		FilterValues: FilterValues(s, items),
	}
}
