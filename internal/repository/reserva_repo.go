package repository

import (
	"context"
	"time"

	"github.com/GodoyTECH/sistemapesqueiro/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservaRepository interface {
	CreateTanque(ctx context.Context, t *model.Tanque) error
	ListTanques(ctx context.Context) ([]model.Tanque, error)
	FindTanqueByID(ctx context.Context, id uuid.UUID) (*model.Tanque, error)

	Create(ctx context.Context, r *model.Reserva) error
	List(ctx context.Context) ([]model.Reserva, error)
	// HasConflict reports whether any existing reserva on the tanque
	// intersects the [inicio, fim) window.
	HasConflict(ctx context.Context, tanqueID uuid.UUID, inicio, fim time.Time) (bool, error)
}

type reservaRepo struct{ db *gorm.DB }

func NewReservaRepository(db *gorm.DB) ReservaRepository { return &reservaRepo{db: db} }

func (r *reservaRepo) CreateTanque(ctx context.Context, t *model.Tanque) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *reservaRepo) ListTanques(ctx context.Context) ([]model.Tanque, error) {
	var tanques []model.Tanque
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&tanques).Error
	return tanques, err
}

func (r *reservaRepo) FindTanqueByID(ctx context.Context, id uuid.UUID) (*model.Tanque, error) {
	var t model.Tanque
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *reservaRepo) Create(ctx context.Context, res *model.Reserva) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *reservaRepo) List(ctx context.Context) ([]model.Reserva, error) {
	var reservas []model.Reserva
	err := r.db.WithContext(ctx).Preload("Tanque").Order("inicio DESC").Find(&reservas).Error
	return reservas, err
}

func (r *reservaRepo) HasConflict(ctx context.Context, tanqueID uuid.UUID, inicio, fim time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Reserva{}).
		Where("tanque_id = ? AND NOT (fim <= ? OR inicio >= ?)", tanqueID, inicio, fim).
		Count(&count).Error
	return count > 0, err
}
