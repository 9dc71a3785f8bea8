package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GodoyTECH/sistemapesqueiro/internal/dto"
	"github.com/GodoyTECH/sistemapesqueiro/internal/model"
	"github.com/GodoyTECH/sistemapesqueiro/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context, filter dto.ProdutoFilter) (*dto.ProdutoListResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	Desativar(ctx context.Context, id uuid.UUID) error
	Reativar(ctx context.Context, id uuid.UUID) error
}

type produtoService struct {
	repo     repository.ProdutoRepository
	rdb      *redis.Client
	cacheTTL time.Duration
}

// NewProdutoService builds the catalog service. rdb may be nil (unit
// tests); every cache interaction is best-effort and never fails a request.
func NewProdutoService(repo repository.ProdutoRepository, rdb *redis.Client, cacheTTL time.Duration) ProdutoService {
	return &produtoService{repo: repo, rdb: rdb, cacheTTL: cacheTTL}
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	p := &model.Produto{
		Nome:          req.Nome,
		SKU:           req.SKU,
		CodigoBarras:  req.CodigoBarras,
		PrecoCentavos: req.PrecoCentavos,
		Estoque:       req.Estoque,
		Ativo:         true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return produtoToResponse(p), nil
}

func (s *produtoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) Listar(ctx context.Context, filter dto.ProdutoFilter) (*dto.ProdutoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}

	key := s.cacheKey(filter)
	if cached := s.cacheGet(ctx, key); cached != nil {
		return cached, nil
	}

	produtos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		items = append(items, *produtoToResponse(&produtos[i]))
	}
	resp := &dto.ProdutoListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	s.cacheSet(ctx, key, resp)
	return resp, nil
}

func (s *produtoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}

	if req.Nome != nil {
		p.Nome = *req.Nome
	}
	if req.SKU != nil {
		p.SKU = req.SKU
	}
	if req.CodigoBarras != nil {
		p.CodigoBarras = req.CodigoBarras
	}
	if req.PrecoCentavos != nil {
		p.PrecoCentavos = *req.PrecoCentavos
	}
	if req.Estoque != nil {
		p.Estoque = *req.Estoque
	}
	if req.Ativo != nil {
		p.Ativo = *req.Ativo
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return produtoToResponse(p), nil
}

func (s *produtoService) Desativar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrProdutoNaoEncontrado
	}
	if err := s.repo.Desativar(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *produtoService) Reativar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrProdutoNaoEncontrado
	}
	if err := s.repo.Reativar(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// ── Cache ─────────────────────────────────────────────────────────────────────
// Product listings are read on every POS screen refresh; a short TTL
// plus write invalidation keeps the catalog queries off the database.

const produtoCachePrefix = "produtos:list:"

func (s *produtoService) cacheKey(filter dto.ProdutoFilter) string {
	return fmt.Sprintf("%s%s:%s:%d:%d", produtoCachePrefix, filter.Busca, filter.Ativo, filter.Page, filter.Limit)
}

func (s *produtoService) cacheGet(ctx context.Context, key string) *dto.ProdutoListResponse {
	if s.rdb == nil {
		return nil
	}
	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var resp dto.ProdutoListResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *produtoService) cacheSet(ctx context.Context, key string, resp *dto.ProdutoListResponse) {
	if s.rdb == nil {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
		log.Debug().Err(err).Msg("produto cache set failed")
	}
}

func (s *produtoService) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	iter := s.rdb.Scan(ctx, 0, produtoCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.Debug().Err(err).Msg("produto cache invalidation failed")
		}
	}
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:            p.ID.String(),
		Nome:          p.Nome,
		SKU:           p.SKU,
		CodigoBarras:  p.CodigoBarras,
		PrecoCentavos: p.PrecoCentavos,
		Estoque:       p.Estoque,
		Ativo:         p.Ativo,
	}
}
