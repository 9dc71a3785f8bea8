package model

import (
	"time"

	"github.com/google/uuid"
)

// Caixa status values.
const (
	CaixaAberto  = "aberto"
	CaixaFechado = "fechado"
)

// Movimento kinds.
const (
	MovimentoCredito = "credito"
	MovimentoDebito  = "debito"
)

// Caixa represents a till session. At most one row may have Status =
// "aberto" at any time; the schema enforces this with a partial unique
// index in addition to the service-level check.
type Caixa struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	AbertoPor               *uuid.UUID `gorm:"type:uuid"`
	FechadoPor              *uuid.UUID `gorm:"type:uuid"`
	ValorAberturaCentavos   int64      `gorm:"not null"`
	ValorFechamentoCentavos *int64
	Status                  string `gorm:"type:varchar(20);not null;default:'aberto'"`
	AbertoEm                time.Time `gorm:"autoCreateTime"`
	FechadoEm               *time.Time

	Movimentos []MovimentoCaixa `gorm:"foreignKey:CaixaID"`
}

func (Caixa) TableName() string { return "caixas" }

// MovimentoCaixa is an immutable ledger entry against a caixa.
// Movements are never updated or deleted.
type MovimentoCaixa struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CaixaID       uuid.UUID `gorm:"type:uuid;index;not null"`
	Tipo          string    `gorm:"type:varchar(20);not null"` // credito | debito
	ValorCentavos int64     `gorm:"not null"`
	Descricao     string    `gorm:"not null"`
	CreatedAt     time.Time
}

func (MovimentoCaixa) TableName() string { return "movimentos_caixa" }
