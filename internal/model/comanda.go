package model

import (
	"time"

	"github.com/google/uuid"
)

// Comanda is a running tab identified by a caller-supplied código.
// A venda references an existing comanda or creates one on the fly;
// the sale path never deletes comandas.
type Comanda struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Codigo      string    `gorm:"uniqueIndex;not null"`
	ClienteNome *string
	Aberta      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

func (Comanda) TableName() string { return "comandas" }
