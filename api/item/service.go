package item

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/qwest/portfolioapi/shared/auditlog"
	"github.com/qwest/portfolioapi/shared/zaplogger"
)

type store interface {
	List(ctx context.Context) ([]ItemModel, error)
	Create(ctx context.Context, m *ItemModel) error
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type listCache interface {
	Get(ctx context.Context) ([]ItemModel, bool)
	Set(ctx context.Context, items []ItemModel)
	Invalidate(ctx context.Context)
}

// Service is the content store adapter: it normalizes submitted fields,
// persists rows and keeps the cached public list coherent. Reads fail
// soft; writes report store errors verbatim.
type Service struct {
	store store
	cache listCache
	audit *auditlog.Logger
}

func NewService(db *gorm.DB, redisClient *redis.Client, audit *auditlog.Logger) *Service {
	return &Service{
		store: NewRepository(db),
		cache: NewListCache(redisClient),
		audit: audit,
	}
}

// List returns all items, year descending with unknown years last. Any
// store failure degrades to an empty list so the public page always
// renders.
func (s *Service) List(ctx context.Context) []ItemModel {
	if s.cache != nil {
		if items, ok := s.cache.Get(ctx); ok {
			return items
		}
	}

	items, err := s.store.List(ctx)
	if err != nil {
		zaplogger.Warn("item list failed, serving empty", zaplogger.Fields{"error": err.Error()})
		return []ItemModel{}
	}

	if s.cache != nil {
		s.cache.Set(ctx, items)
	}
	return items
}

// Get returns a single item by id from the listed set.
func (s *Service) Get(ctx context.Context, id string) (*ItemModel, bool) {
	for _, m := range s.List(ctx) {
		if m.ID == id {
			return &m, true
		}
	}
	return nil, false
}

// Create normalizes the submitted fields and persists a new item.
func (s *Service) Create(ctx context.Context, f Fields) (*ItemModel, error) {
	m, err := s.buildModel(f)
	if err != nil {
		return nil, err
	}
	m.ID = newID()

	if err := s.store.Create(ctx, m); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, "item.create", m.ID, string(m.Category))
	return m, nil
}

// Update normalizes the submitted fields and applies them to the item
// with the given id. An id matching no row succeeds as a no-op.
func (s *Service) Update(ctx context.Context, id string, f Fields) error {
	m, err := s.buildModel(f)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"category":     m.Category,
		"title":        m.Title,
		"subtitle":     m.Subtitle,
		"description":  m.Description,
		"tags":         m.Tags,
		"links":        m.Links,
		"year":         m.Year,
		"publication":  m.Publication,
		"domain":       m.Domain,
		"collaborator": m.Collaborator,
		"thumbnail":    m.Thumbnail,
		"period_start": m.PeriodStart,
		"period_end":   m.PeriodEnd,
	}

	if err := s.store.Update(ctx, id, updates); err != nil {
		return err
	}

	s.afterMutation(ctx, "item.update", id, string(m.Category))
	return nil
}

// Delete removes the item with the given id unconditionally.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.afterMutation(ctx, "item.delete", id, "")
	return nil
}

func (s *Service) buildModel(f Fields) (*ItemModel, error) {
	category := Category(f.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("invalid category %q", f.Category)
	}
	if f.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if f.Description == "" {
		return nil, fmt.Errorf("description is required")
	}

	links, err := ParseLinks(f.LinksRaw)
	if err != nil {
		return nil, err
	}
	year, err := ParseYear(f.YearRaw)
	if err != nil {
		return nil, err
	}

	return &ItemModel{
		Category:     category,
		Title:        f.Title,
		Subtitle:     nullable(f.Subtitle),
		Description:  f.Description,
		Tags:         NormalizeTags(f.TagsRaw),
		Links:        links,
		Year:         year,
		Publication:  nullable(f.Publication),
		Domain:       nullable(f.Domain),
		Collaborator: nullable(f.Collaborator),
		Thumbnail:    nullable(f.Thumbnail),
		PeriodStart:  nullable(f.PeriodStart),
		PeriodEnd:    nullable(f.PeriodEnd),
	}, nil
}

func (s *Service) afterMutation(ctx context.Context, action, id, category string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	if s.audit != nil {
		fields := map[string]interface{}{"id": id}
		if category != "" {
			fields["category"] = category
		}
		if err := s.audit.Info(action, "item mutated", fields); err != nil {
			zaplogger.Warn("audit write failed", zaplogger.Fields{"error": err.Error()})
		}
	}
}

// newID returns a fresh time-sortable item id.
func newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.Monotonic(rand.Reader, 0)).String()
}
