package item

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

const ItemsTableName = "items"

// Category is the closed set of item categories. The public gallery
// additionally shows an "all" pseudo-category, which is view state only
// and never stored.
type Category string

const (
	CategoryResearch    Category = "research"
	CategoryPaperReview Category = "paper_review"
	CategoryProject     Category = "project"
	CategoryAbout       Category = "about"
)

// Categories lists the storable categories in display order.
var Categories = []Category{CategoryResearch, CategoryPaperReview, CategoryProject, CategoryAbout}

// Valid reports whether c is a storable category.
func (c Category) Valid() bool {
	switch c {
	case CategoryResearch, CategoryPaperReview, CategoryProject, CategoryAbout:
		return true
	}
	return false
}

// Link is one labeled external reference on an item.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// LinkList stores the ordered links sequence as a jsonb column.
type LinkList []Link

// Value implements driver.Valuer
func (l LinkList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *LinkList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into LinkList", src)
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

// ItemModel is one portfolio entry. Category determines which optional
// fields are semantically meaningful; the store does not enforce that
// coupling, payload assembly does.
type ItemModel struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Category     Category       `gorm:"index;not null" json:"category"`
	Title        string         `gorm:"not null" json:"title"`
	Subtitle     *string        `json:"subtitle"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags"`
	Links        LinkList       `gorm:"type:jsonb" json:"links"`
	Year         *int           `gorm:"index" json:"year"`
	Publication  *string        `json:"publication"`
	Domain       *string        `json:"domain"`
	Collaborator *string        `json:"collaborator"`
	Thumbnail    *string        `json:"thumbnail"`
	PeriodStart  *string        `json:"period_start"`
	PeriodEnd    *string        `json:"period_end"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"-"`
}

// TableName overrides the table name used by ItemModel
func (ItemModel) TableName() string {
	return ItemsTableName
}

// HasTag reports whether tag appears in the item's tag sequence.
func (m *ItemModel) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
