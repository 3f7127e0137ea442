package item

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the Postgres row store for items.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// List returns all items ordered by year descending, items without a
// year last.
func (r *Repository) List(ctx context.Context) ([]ItemModel, error) {
	var items []ItemModel
	err := r.DB.WithContext(ctx).
		Order("year DESC NULLS LAST").
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new item row.
func (r *Repository) Create(ctx context.Context, m *ItemModel) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

// Update applies column updates to the row with the given id. A
// non-matching id updates zero rows and is not an error; the adapter
// does not second-guess store semantics.
func (r *Repository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	return r.DB.WithContext(ctx).
		Model(&ItemModel{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// Delete removes the row with the given id unconditionally.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&ItemModel{}).Error
}
