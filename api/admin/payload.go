package admin

import (
	"fmt"

	"github.com/qwest/portfolioapi/api/item"
)

// FormInput carries every raw form value the editing form can hold,
// including values entered under a previously selected category.
type FormInput struct {
	Category     string
	Title        string
	Subtitle     string
	Description  string
	TagsRaw      string
	LinksRaw     string
	YearRaw      string
	Publication  string
	Domain       string
	Collaborator string
	Thumbnail    string
	PeriodStart  string
	PeriodEnd    string
}

// categoryFields is the tagged union of category-specific payload
// variants: each variant contributes only the fields that are
// semantically meaningful for its category.
type categoryFields interface {
	apply(f *item.Fields)
}

type researchFields struct {
	publication string
	domain      string
}

func (r researchFields) apply(f *item.Fields) {
	f.Publication = r.publication
	f.Domain = r.domain
}

type projectFields struct {
	collaborator string
	thumbnail    string
	periodStart  string
	periodEnd    string
}

func (p projectFields) apply(f *item.Fields) {
	f.Collaborator = p.collaborator
	f.Thumbnail = p.thumbnail
	f.PeriodStart = p.periodStart
	f.PeriodEnd = p.periodEnd
}

type aboutFields struct{}

func (aboutFields) apply(*item.Fields) {}

// variantFor dispatches on the category tag.
func variantFor(in FormInput) (categoryFields, error) {
	switch item.Category(in.Category) {
	case item.CategoryResearch, item.CategoryPaperReview:
		return researchFields{publication: in.Publication, domain: in.Domain}, nil
	case item.CategoryProject:
		return projectFields{
			collaborator: in.Collaborator,
			thumbnail:    in.Thumbnail,
			periodStart:  in.PeriodStart,
			periodEnd:    in.PeriodEnd,
		}, nil
	case item.CategoryAbout:
		return aboutFields{}, nil
	}
	return nil, fmt.Errorf("invalid category %q", in.Category)
}

// BuildPayload assembles the submitted field payload. Values entered
// for fields outside the chosen category's semantic set stay in the
// form but are not submitted.
func BuildPayload(in FormInput) (item.Fields, error) {
	variant, err := variantFor(in)
	if err != nil {
		return item.Fields{}, err
	}

	f := item.Fields{
		Category:    in.Category,
		Title:       in.Title,
		Subtitle:    in.Subtitle,
		Description: in.Description,
		TagsRaw:     in.TagsRaw,
		LinksRaw:    in.LinksRaw,
		YearRaw:     in.YearRaw,
	}
	variant.apply(&f)
	return f, nil
}
