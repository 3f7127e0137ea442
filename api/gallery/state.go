// Package gallery holds the public gallery view state and its pure
// derivation over the item list. All transitions go through Reduce so
// the coupling between category selection and sub-filter reset lives
// in one place.
package gallery

import (
	"github.com/qwest/portfolioapi/api/item"
)

// CategoryAll is the view-only pseudo-category showing every item.
// It is never stored on an item.
const CategoryAll = "all"

// SubTab selects which secondary axis narrows the paper review
// category. It is meaningful only there.
type SubTab string

const (
	SubTabMain        SubTab = "main"
	SubTabPublication SubTab = "publication"
	SubTabDomain      SubTab = "domain"
)

func (t SubTab) valid() bool {
	switch t {
	case SubTabMain, SubTabPublication, SubTabDomain:
		return true
	}
	return false
}

// State is the complete view state of the public gallery.
type State struct {
	Category string  `json:"category"`
	Filter   *string `json:"filter"`
	SubTab   SubTab  `json:"sub_tab"`
	Enlarged bool    `json:"enlarged"`
}

// DefaultState shows everything, no filter, compact grid.
func DefaultState() State {
	return State{Category: CategoryAll, SubTab: SubTabMain}
}

// Action is one user interaction with the gallery.
type Action interface{ isAction() }

// SelectCategory switches the visible category. Unknown categories are
// ignored.
type SelectCategory struct{ Category string }

// SelectFilter narrows the current view by a tag, publication or
// domain depending on the active category and sub-tab.
type SelectFilter struct{ Value string }

// ClearFilter removes the active secondary filter.
type ClearFilter struct{}

// SelectSubTab switches the paper review secondary axis.
type SelectSubTab struct{ Tab SubTab }

// ToggleEnlarged flips the display density. It is orthogonal to
// category and filter state.
type ToggleEnlarged struct{}

func (SelectCategory) isAction() {}
func (SelectFilter) isAction()   {}
func (ClearFilter) isAction()    {}
func (SelectSubTab) isAction()   {}
func (ToggleEnlarged) isAction() {}

// validCategory accepts the storable categories plus "all".
func validCategory(c string) bool {
	return c == CategoryAll || item.Category(c).Valid()
}

// Reduce applies one action to the state. Invariants: the filter is
// always nil right after a category or sub-tab change, and the sub-tab
// is back at main whenever the category is not paper_review.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case SelectCategory:
		if !validCategory(act.Category) {
			return s
		}
		s.Category = act.Category
		s.Filter = nil
		if s.Category != string(item.CategoryPaperReview) {
			s.SubTab = SubTabMain
		}
		return s

	case SelectFilter:
		if act.Value == "" {
			s.Filter = nil
			return s
		}
		v := act.Value
		s.Filter = &v
		return s

	case ClearFilter:
		s.Filter = nil
		return s

	case SelectSubTab:
		if s.Category != string(item.CategoryPaperReview) || !act.Tab.valid() {
			return s
		}
		s.SubTab = act.Tab
		s.Filter = nil
		return s

	case ToggleEnlarged:
		s.Enlarged = !s.Enlarged
		return s
	}

	return s
}
