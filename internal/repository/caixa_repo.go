package repository

import (
	"context"
	"errors"

	"github.com/GodoyTECH/sistemapesqueiro/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CaixaRepository interface {
	Create(ctx context.Context, c *model.Caixa) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Caixa, error)
	// FindAberto returns the open caixa, or (nil, nil) when none is open.
	FindAberto(ctx context.Context) (*model.Caixa, error)
	Update(ctx context.Context, c *model.Caixa) error
	CreateMovimento(ctx context.Context, m *model.MovimentoCaixa) error
	// Tx variants used inside the sale transaction.
	FindAbertoTx(tx *gorm.DB) (*model.Caixa, error)
	CreateMovimentoTx(tx *gorm.DB, m *model.MovimentoCaixa) error
	ListMovimentos(ctx context.Context, caixaID uuid.UUID) ([]model.MovimentoCaixa, error)
	// SumMovimentos returns aggregate credito and debito totals for a caixa.
	SumMovimentos(ctx context.Context, caixaID uuid.UUID) (credito, debito int64, err error)
}

type caixaRepo struct{ db *gorm.DB }

func NewCaixaRepository(db *gorm.DB) CaixaRepository { return &caixaRepo{db: db} }

func (r *caixaRepo) Create(ctx context.Context, c *model.Caixa) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *caixaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Caixa, error) {
	var c model.Caixa
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *caixaRepo) FindAberto(ctx context.Context) (*model.Caixa, error) {
	return findAberto(r.db.WithContext(ctx))
}

func (r *caixaRepo) FindAbertoTx(tx *gorm.DB) (*model.Caixa, error) {
	return findAberto(tx)
}

func findAberto(q *gorm.DB) (*model.Caixa, error) {
	var c model.Caixa
	err := q.
		Where("status = ?", model.CaixaAberto).
		Order("aberto_em DESC").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *caixaRepo) Update(ctx context.Context, c *model.Caixa) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *caixaRepo) CreateMovimento(ctx context.Context, m *model.MovimentoCaixa) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *caixaRepo) CreateMovimentoTx(tx *gorm.DB, m *model.MovimentoCaixa) error {
	return tx.Create(m).Error
}

func (r *caixaRepo) ListMovimentos(ctx context.Context, caixaID uuid.UUID) ([]model.MovimentoCaixa, error) {
	var movs []model.MovimentoCaixa
	err := r.db.WithContext(ctx).
		Where("caixa_id = ?", caixaID).
		Order("created_at ASC").
		Find(&movs).Error
	return movs, err
}

func (r *caixaRepo) SumMovimentos(ctx context.Context, caixaID uuid.UUID) (int64, int64, error) {
	type row struct {
		Tipo string
		Soma int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.MovimentoCaixa{}).
		Select("tipo, COALESCE(SUM(valor_centavos), 0) AS soma").
		Where("caixa_id = ?", caixaID).
		Group("tipo").
		Scan(&rows).Error
	if err != nil {
		return 0, 0, err
	}
	var credito, debito int64
	for _, r := range rows {
		switch r.Tipo {
		case model.MovimentoCredito:
			credito = r.Soma
		case model.MovimentoDebito:
			debito = r.Soma
		}
	}
	return credito, debito, nil
}
