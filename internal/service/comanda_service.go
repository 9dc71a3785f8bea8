package service

import (
	"context"
	"time"

	"github.com/GodoyTECH/sistemapesqueiro/internal/dto"
	"github.com/GodoyTECH/sistemapesqueiro/internal/model"
	"github.com/GodoyTECH/sistemapesqueiro/internal/repository"
)

type ComandaService interface {
	Criar(ctx context.Context, req dto.CriarComandaRequest) (*dto.ComandaResponse, error)
	ObterPorCodigo(ctx context.Context, codigo string) (*dto.ComandaResponse, error)
	Fechar(ctx context.Context, codigo string) (*dto.ComandaResponse, error)
}

type comandaService struct {
	repo repository.ComandaRepository
}

func NewComandaService(repo repository.ComandaRepository) ComandaService {
	return &comandaService{repo: repo}
}

func (s *comandaService) Criar(ctx context.Context, req dto.CriarComandaRequest) (*dto.ComandaResponse, error) {
	if existing, err := s.repo.FindByCodigo(ctx, req.Codigo); err == nil && existing != nil {
		return nil, ErrComandaJaExiste
	}
	c := &model.Comanda{
		Codigo:      req.Codigo,
		ClienteNome: req.ClienteNome,
		Aberta:      true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return comandaToResponse(c), nil
}

func (s *comandaService) ObterPorCodigo(ctx context.Context, codigo string) (*dto.ComandaResponse, error) {
	c, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		return nil, ErrComandaNaoEncontrada
	}
	return comandaToResponse(c), nil
}

func (s *comandaService) Fechar(ctx context.Context, codigo string) (*dto.ComandaResponse, error) {
	c, err := s.repo.Fechar(ctx, codigo)
	if err != nil {
		return nil, ErrComandaNaoEncontrada
	}
	return comandaToResponse(c), nil
}

func comandaToResponse(c *model.Comanda) *dto.ComandaResponse {
	return &dto.ComandaResponse{
		ID:          c.ID.String(),
		Codigo:      c.Codigo,
		ClienteNome: c.ClienteNome,
		Aberta:      c.Aberta,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}
