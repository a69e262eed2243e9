package inventory

import (
	"context"
	"errors"

	"estoque-backend/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no product matches the given item_id.
var ErrNotFound = errors.New("product not found")

// ErrDuplicate is returned when creating a product whose item_id already exists.
var ErrDuplicate = errors.New("item_id already registered")

// ErrInvalid is returned when a product has no item_id. Mirrors the NOT NULL
// primary key on the produtos table, which an empty Go string would slip past.
var ErrInvalid = errors.New("product is missing item_id")

// Repository translates product operations into store calls.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpdateFields enumerates the columns a partial update may touch. The
// primary key is deliberately not here; nil fields keep their stored value.
type UpdateFields struct {
	ModelID          *int
	Name             *string
	CurrentStock     *int
	PromotionalStock *int
	Location         *string
}

// ListAll returns every product in store-default order.
func (r *Repository) ListAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *Repository) Create(ctx context.Context, p *models.Product) error {
	if p.ItemID == "" {
		return ErrInvalid
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *Repository) FindByKey(ctx context.Context, itemID string) (*models.Product, error) {
	var p models.Product
	if err := r.db.WithContext(ctx).First(&p, "item_id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Update merges the provided fields into the stored row and persists it,
// returning the updated product. Returns ErrNotFound if the id is unknown.
func (r *Repository) Update(ctx context.Context, itemID string, fields UpdateFields) (*models.Product, error) {
	p, err := r.FindByKey(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if fields.ModelID != nil {
		p.ModelID = *fields.ModelID
	}
	if fields.Name != nil {
		p.Name = *fields.Name
	}
	if fields.CurrentStock != nil {
		p.CurrentStock = *fields.CurrentStock
	}
	if fields.PromotionalStock != nil {
		p.PromotionalStock = *fields.PromotionalStock
	}
	if fields.Location != nil {
		p.Location = *fields.Location
	}

	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// Delete permanently removes a product. Returns ErrNotFound if the id is unknown.
func (r *Repository) Delete(ctx context.Context, itemID string) error {
	p, err := r.FindByKey(ctx, itemID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(p).Error
}
