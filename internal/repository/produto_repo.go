package repository

import (
	"context"

	"github.com/GodoyTECH/sistemapesqueiro/internal/dto"
	"github.com/GodoyTECH/sistemapesqueiro/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProdutoRepository defines the data access contract for the catalog.
// Services depend on this interface, not on the concrete GORM
// implementation, enabling clean unit testing via fakes.
type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error)
	List(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, int64, error)
	Update(ctx context.Context, p *model.Produto) error
	Desativar(ctx context.Context, id uuid.UUID) error
	Reativar(ctx context.Context, id uuid.UUID) error

	// Used inside the sale transaction — callers must pass the tx instance.
	// FindForSaleTx loads price+stock for all referenced ids in one read;
	// ids without a row are simply absent from the result.
	FindForSaleTx(tx *gorm.DB, ids []uuid.UUID) ([]model.Produto, error)
	// DescontarEstoqueTx decrements stock with a guard: it only succeeds
	// when the row still has at least qtd units, and reports whether a
	// row was updated. Concurrent sales can therefore never drive stock
	// below zero regardless of isolation level.
	DescontarEstoqueTx(tx *gorm.DB, id uuid.UUID, qtd int) (bool, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *produtoRepo) List(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, int64, error) {
	var produtos []model.Produto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Produto{})

	// Ativo filter: "false" = inativos, "all" = todos, anything else = ativos (default)
	switch filter.Ativo {
	case "false":
		q = q.Where("ativo = false")
	case "all":
		// no filter
	default:
		q = q.Where("ativo = true")
	}

	if filter.Busca != "" {
		q = q.Where("nome ILIKE ? OR sku = ? OR codigo_barras = ?",
			"%"+filter.Busca+"%", filter.Busca, filter.Busca)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("nome ASC").Limit(filter.Limit).Offset(offset).Find(&produtos).Error
	return produtos, total, err
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *produtoRepo) Desativar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Produto{}).Where("id = ?", id).Update("ativo", false).Error
}

func (r *produtoRepo) Reativar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Produto{}).Where("id = ?", id).Update("ativo", true).Error
}

func (r *produtoRepo) FindForSaleTx(tx *gorm.DB, ids []uuid.UUID) ([]model.Produto, error) {
	var produtos []model.Produto
	err := tx.Where("id IN ?", ids).Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) DescontarEstoqueTx(tx *gorm.DB, id uuid.UUID, qtd int) (bool, error) {
	res := tx.Model(&model.Produto{}).
		Where("id = ? AND estoque >= ?", id, qtd).
		Update("estoque", gorm.Expr("estoque - ?", qtd))
	return res.RowsAffected > 0, res.Error
}

func (r *produtoRepo) DB() *gorm.DB { return r.db }
