package sales

import (
	"context"
	"errors"

	"estoque-backend/internal/models"

	"gorm.io/gorm"
)

// ErrInvalid is returned when a sale is missing a required field. The check
// mirrors the NOT NULL constraints on the vendas table.
var ErrInvalid = errors.New("sale is missing required fields")

// Repository translates sale operations into store calls. Sales are
// append-only: there is no update or delete.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Append inserts one sale row. The product is not checked for existence.
func (r *Repository) Append(ctx context.Context, sale *models.Sale) error {
	if sale.ItemID == nil || *sale.ItemID == "" || sale.Quantity == nil || sale.SaleDate.IsZero() {
		return ErrInvalid
	}
	return r.db.WithContext(ctx).Create(sale).Error
}

// ListAll returns every sale in insertion order.
func (r *Repository) ListAll(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	if err := r.db.WithContext(ctx).Order("id").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}
