package model

import (
	"time"

	"github.com/google/uuid"
)

// Venda is a completed sale against a comanda, tied to the caixa that
// was open when it was registered.
type Venda struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ComandaID        uuid.UUID  `gorm:"type:uuid;index;not null"`
	CaixaID          uuid.UUID  `gorm:"type:uuid;index;not null"`
	UsuarioID        *uuid.UUID `gorm:"type:uuid"`
	TotalCentavos    int64      `gorm:"not null"`
	DescontoCentavos int64      `gorm:"not null;default:0"`
	CreatedAt        time.Time

	Comanda *Comanda    `gorm:"foreignKey:ComandaID"`
	Itens   []ItemVenda `gorm:"foreignKey:VendaID"`
}

func (Venda) TableName() string { return "vendas" }

// ItemVenda records one sale line with the unit price snapshot taken at
// sale time — later catalog price changes never affect it.
type ItemVenda struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendaID           uuid.UUID `gorm:"type:uuid;index;not null"`
	ProdutoID         uuid.UUID `gorm:"type:uuid;index;not null"`
	Quantidade        int       `gorm:"not null"`
	PrecoUnitCentavos int64     `gorm:"not null"`
	TotalCentavos     int64     `gorm:"not null"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (ItemVenda) TableName() string { return "itens_venda" }
