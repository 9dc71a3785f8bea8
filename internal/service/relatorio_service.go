package service

import (
	"context"
	"time"

	"github.com/GodoyTECH/sistemapesqueiro/internal/dto"
	"github.com/GodoyTECH/sistemapesqueiro/internal/repository"
)

type RelatorioService interface {
	VendasPorDia(ctx context.Context, filter dto.RelatorioFilter) ([]dto.VendasPorDiaRow, error)
	VendasPorProduto(ctx context.Context, filter dto.RelatorioFilter) ([]dto.VendasPorProdutoRow, error)
}

type relatorioService struct {
	repo repository.RelatorioRepository
}

func NewRelatorioService(repo repository.RelatorioRepository) RelatorioService {
	return &relatorioService{repo: repo}
}

func (s *relatorioService) VendasPorDia(ctx context.Context, filter dto.RelatorioFilter) ([]dto.VendasPorDiaRow, error) {
	de, ate := resolvePeriodo(filter)
	return s.repo.VendasPorDia(ctx, de, ate)
}

func (s *relatorioService) VendasPorProduto(ctx context.Context, filter dto.RelatorioFilter) ([]dto.VendasPorProdutoRow, error) {
	de, ate := resolvePeriodo(filter)
	return s.repo.VendasPorProduto(ctx, de, ate)
}

// resolvePeriodo turns the optional de/ate dates into a half-open
// [de, ate+1d) interval. Default window: last 7 days.
func resolvePeriodo(filter dto.RelatorioFilter) (time.Time, time.Time) {
	now := time.Now()
	de := now.AddDate(0, 0, -7)
	ate := now

	if filter.De != "" {
		if t, err := time.Parse("2006-01-02", filter.De); err == nil {
			de = t
		}
	}
	if filter.Ate != "" {
		if t, err := time.Parse("2006-01-02", filter.Ate); err == nil {
			ate = t.AddDate(0, 0, 1)
		}
	}
	return de, ate
}
