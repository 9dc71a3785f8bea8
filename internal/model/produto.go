package model

import (
	"time"

	"github.com/google/uuid"
)

// Produto is a catalog item sold at the pesqueiro counter.
// All prices are stored in centavos (int64) — never floating point.
type Produto struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nome          string    `gorm:"index;not null"`
	SKU           *string   `gorm:"column:sku"`
	CodigoBarras  *string   `gorm:"uniqueIndex"`
	PrecoCentavos int64     `gorm:"not null"`
	Estoque       int       `gorm:"not null;default:0"`
	Ativo         bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Produto) TableName() string { return "produtos" }
