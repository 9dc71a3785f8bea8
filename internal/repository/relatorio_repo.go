package repository

import (
	"context"
	"time"

	"github.com/GodoyTECH/sistemapesqueiro/internal/dto"

	"gorm.io/gorm"
)

// RelatorioRepository runs the aggregate report queries. These are raw
// SQL: GORM's query builder has no date_trunc, and the queries are
// read-only.
type RelatorioRepository interface {
	VendasPorDia(ctx context.Context, de, ate time.Time) ([]dto.VendasPorDiaRow, error)
	VendasPorProduto(ctx context.Context, de, ate time.Time) ([]dto.VendasPorProdutoRow, error)
}

type relatorioRepo struct{ db *gorm.DB }

func NewRelatorioRepository(db *gorm.DB) RelatorioRepository { return &relatorioRepo{db: db} }

func (r *relatorioRepo) VendasPorDia(ctx context.Context, de, ate time.Time) ([]dto.VendasPorDiaRow, error) {
	var rows []dto.VendasPorDiaRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT to_char(date_trunc('day', v.created_at), 'YYYY-MM-DD') AS dia,
		       COALESCE(SUM(v.total_centavos), 0) AS total_centavos,
		       COUNT(*) AS num_vendas
		FROM vendas v
		WHERE v.created_at >= ? AND v.created_at < ?
		GROUP BY dia
		ORDER BY dia DESC`, de, ate).Scan(&rows).Error
	return rows, err
}

func (r *relatorioRepo) VendasPorProduto(ctx context.Context, de, ate time.Time) ([]dto.VendasPorProdutoRow, error) {
	var rows []dto.VendasPorProdutoRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.id AS produto_id,
		       p.nome,
		       COALESCE(SUM(iv.quantidade), 0) AS quantidade,
		       COALESCE(SUM(iv.total_centavos), 0) AS total_centavos
		FROM vendas v
		JOIN itens_venda iv ON iv.venda_id = v.id
		JOIN produtos p ON p.id = iv.produto_id
		WHERE v.created_at >= ? AND v.created_at < ?
		GROUP BY p.id, p.nome
		ORDER BY total_centavos DESC`, de, ate).Scan(&rows).Error
	return rows, err
}
