package service

import (
	"context"
	"time"

	"github.com/GodoyTECH/sistemapesqueiro/internal/dto"
	"github.com/GodoyTECH/sistemapesqueiro/internal/model"
	"github.com/GodoyTECH/sistemapesqueiro/internal/repository"

	"github.com/google/uuid"
)

type ReservaService interface {
	CriarTanque(ctx context.Context, req dto.CriarTanqueRequest) (*dto.TanqueResponse, error)
	ListarTanques(ctx context.Context) ([]dto.TanqueResponse, error)
	CriarReserva(ctx context.Context, req dto.CriarReservaRequest) (*dto.ReservaResponse, error)
	ListarReservas(ctx context.Context) ([]dto.ReservaResponse, error)
}

type reservaService struct {
	repo repository.ReservaRepository
}

func NewReservaService(repo repository.ReservaRepository) ReservaService {
	return &reservaService{repo: repo}
}

func (s *reservaService) CriarTanque(ctx context.Context, req dto.CriarTanqueRequest) (*dto.TanqueResponse, error) {
	t := &model.Tanque{Nome: req.Nome, Lugares: req.Lugares}
	if t.Lugares < 1 {
		t.Lugares = 1
	}
	if err := s.repo.CreateTanque(ctx, t); err != nil {
		return nil, err
	}
	return tanqueToResponse(t), nil
}

func (s *reservaService) ListarTanques(ctx context.Context) ([]dto.TanqueResponse, error) {
	tanques, err := s.repo.ListTanques(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TanqueResponse, 0, len(tanques))
	for i := range tanques {
		out = append(out, *tanqueToResponse(&tanques[i]))
	}
	return out, nil
}

// CriarReserva rejects windows that intersect an existing reserva on
// the same tanque.
func (s *reservaService) CriarReserva(ctx context.Context, req dto.CriarReservaRequest) (*dto.ReservaResponse, error) {
	tanqueID, err := uuid.Parse(req.TanqueID)
	if err != nil {
		return nil, ErrTanqueNaoEncontrado
	}
	tanque, err := s.repo.FindTanqueByID(ctx, tanqueID)
	if err != nil {
		return nil, ErrTanqueNaoEncontrado
	}

	conflict, err := s.repo.HasConflict(ctx, tanqueID, req.Inicio, req.Fim)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrJanelaIndisponivel
	}

	reserva := &model.Reserva{
		TanqueID:    tanqueID,
		ClienteNome: req.ClienteNome,
		Inicio:      req.Inicio,
		Fim:         req.Fim,
	}
	if err := s.repo.Create(ctx, reserva); err != nil {
		return nil, err
	}
	reserva.Tanque = tanque
	return reservaToResponse(reserva), nil
}

func (s *reservaService) ListarReservas(ctx context.Context) ([]dto.ReservaResponse, error) {
	reservas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReservaResponse, 0, len(reservas))
	for i := range reservas {
		out = append(out, *reservaToResponse(&reservas[i]))
	}
	return out, nil
}

func tanqueToResponse(t *model.Tanque) *dto.TanqueResponse {
	return &dto.TanqueResponse{ID: t.ID.String(), Nome: t.Nome, Lugares: t.Lugares}
}

func reservaToResponse(r *model.Reserva) *dto.ReservaResponse {
	resp := &dto.ReservaResponse{
		ID:          r.ID.String(),
		TanqueID:    r.TanqueID.String(),
		ClienteNome: r.ClienteNome,
		Inicio:      r.Inicio.Format(time.RFC3339),
		Fim:         r.Fim.Format(time.RFC3339),
	}
	if r.Tanque != nil {
		resp.TanqueNome = r.Tanque.Nome
	}
	return resp
}
