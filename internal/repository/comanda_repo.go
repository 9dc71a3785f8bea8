package repository

import (
	"context"

	"github.com/GodoyTECH/sistemapesqueiro/internal/model"

	"gorm.io/gorm"
)

type ComandaRepository interface {
	Create(ctx context.Context, c *model.Comanda) error
	FindByCodigo(ctx context.Context, codigo string) (*model.Comanda, error)
	Fechar(ctx context.Context, codigo string) (*model.Comanda, error)

	// Tx variants used inside the sale transaction.
	FindByCodigoTx(tx *gorm.DB, codigo string) (*model.Comanda, error)
	CreateTx(tx *gorm.DB, c *model.Comanda) error
}

type comandaRepo struct{ db *gorm.DB }

func NewComandaRepository(db *gorm.DB) ComandaRepository { return &comandaRepo{db: db} }

func (r *comandaRepo) Create(ctx context.Context, c *model.Comanda) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *comandaRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Comanda, error) {
	var c model.Comanda
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&c).Error
	return &c, err
}

func (r *comandaRepo) Fechar(ctx context.Context, codigo string) (*model.Comanda, error) {
	var c model.Comanda
	if err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&c).Error; err != nil {
		return nil, err
	}
	c.Aberta = false
	if err := r.db.WithContext(ctx).Save(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *comandaRepo) FindByCodigoTx(tx *gorm.DB, codigo string) (*model.Comanda, error) {
	var c model.Comanda
	err := tx.Where("codigo = ?", codigo).First(&c).Error
	return &c, err
}

func (r *comandaRepo) CreateTx(tx *gorm.DB, c *model.Comanda) error {
	return tx.Create(c).Error
}
