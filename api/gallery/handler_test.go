package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qwest/portfolioapi/api/item"
)

// Query parameters replay through the reducer, so hostile or stale
// URLs cannot produce states the UI could never reach.
func TestStateFromQuery(t *testing.T) {
	s := StateFromQuery("research", "", "NLP", "true")
	assert.Equal(t, string(item.CategoryResearch), s.Category)
	assert.Equal(t, "NLP", *s.Filter)
	assert.True(t, s.Enlarged)

	// Sub-tabs only exist under paper_review.
	s = StateFromQuery("research", "publication", "", "")
	assert.Equal(t, SubTabMain, s.SubTab)

	s = StateFromQuery("paper_review", "publication", "NeurIPS", "")
	assert.Equal(t, SubTabPublication, s.SubTab)
	assert.Equal(t, "NeurIPS", *s.Filter)

	// Unknown categories fall back to the default view.
	s = StateFromQuery("bogus", "", "", "")
	assert.Equal(t, CategoryAll, s.Category)
	assert.Nil(t, s.Filter)
}
