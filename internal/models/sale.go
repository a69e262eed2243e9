package models

import "time"

// Sale is an append-only record of one sale event. ItemID references a
// product only by convention, there is no foreign key on purpose: sales of
// delisted products must keep importing. Required columns are pointers so a
// missing field maps to NULL rather than a zero value.
type Sale struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ItemID    *string   `gorm:"size:64;not null" json:"item_id"`
	Quantity  *int      `gorm:"not null" json:"quantidade"`
	SaleDate  DateOnly  `gorm:"type:date;not null" json:"data_venda"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Sale) TableName() string {
	return "vendas"
}
