package model

import (
	"time"

	"github.com/google/uuid"
)

// Tanque is a fishing tank that can be reserved by customers.
type Tanque struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nome      string    `gorm:"uniqueIndex;not null"`
	Lugares   int       `gorm:"not null;default:1"`
	CreatedAt time.Time
}

func (Tanque) TableName() string { return "tanques" }

// Reserva books a tanque for a time window. Two reservas on the same
// tanque may never overlap.
type Reserva struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TanqueID    uuid.UUID `gorm:"type:uuid;index;not null"`
	ClienteNome string    `gorm:"not null"`
	Inicio      time.Time `gorm:"not null"`
	Fim         time.Time `gorm:"not null"`
	CreatedAt   time.Time

	Tanque *Tanque `gorm:"foreignKey:TanqueID"`
}

func (Reserva) TableName() string { return "reservas" }
