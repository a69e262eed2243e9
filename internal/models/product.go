package models

import "time"

// Product represents one row of the produtos table. The item_id comes from
// the warehouse system (e.g. a SKU) and is the primary key, so two products
// can never share it. JSON names follow the wire contract the front end uses.
type Product struct {
	ItemID           string    `gorm:"primaryKey;size:64" json:"item_id"`
	ModelID          int       `gorm:"not null;default:0" json:"model_id"`
	Name             string    `gorm:"size:255" json:"nome_produto"`
	CurrentStock     int       `gorm:"not null;default:0" json:"estoque_atual"`
	PromotionalStock int       `gorm:"not null;default:0" json:"estoque_promocional"`
	Location         string    `gorm:"size:255" json:"localizacao"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (Product) TableName() string {
	return "produtos"
}
