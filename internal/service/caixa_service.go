package service

import (
	"context"
	"time"

	"github.com/GodoyTECH/sistemapesqueiro/internal/dto"
	"github.com/GodoyTECH/sistemapesqueiro/internal/model"
	"github.com/GodoyTECH/sistemapesqueiro/internal/repository"

	"github.com/google/uuid"
)

type CaixaService interface {
	Abrir(ctx context.Context, req dto.AbrirCaixaRequest) (*dto.CaixaResponse, error)
	Status(ctx context.Context) (*dto.StatusCaixaResponse, error)
	Fechar(ctx context.Context, req dto.FecharCaixaRequest) (*dto.CaixaResponse, error)
	RegistrarMovimento(ctx context.Context, req dto.MovimentoManualRequest) error
	ListarMovimentos(ctx context.Context) ([]dto.MovimentoResponse, error)
}

type caixaService struct {
	repo repository.CaixaRepository
}

func NewCaixaService(repo repository.CaixaRepository) CaixaService {
	return &caixaService{repo: repo}
}

// ── Abrir ─────────────────────────────────────────────────────────────────────
// Only one caixa may be open at a time. The check here gives a clean
// error message; the partial unique index on caixas(status) closes the
// check-then-insert race at the storage layer.

func (s *caixaService) Abrir(ctx context.Context, req dto.AbrirCaixaRequest) (*dto.CaixaResponse, error) {
	aberto, err := s.repo.FindAberto(ctx)
	if err != nil {
		return nil, err
	}
	if aberto != nil {
		return nil, ErrCaixaJaAberto
	}

	caixa := &model.Caixa{
		AbertoPor:             parseOptionalUUID(req.UsuarioID),
		ValorAberturaCentavos: req.ValorAberturaCentavos,
		Status:                model.CaixaAberto,
	}
	if err := s.repo.Create(ctx, caixa); err != nil {
		return nil, err
	}
	return caixaToResponse(caixa), nil
}

// ── Status ────────────────────────────────────────────────────────────────────

func (s *caixaService) Status(ctx context.Context) (*dto.StatusCaixaResponse, error) {
	aberto, err := s.repo.FindAberto(ctx)
	if err != nil {
		return nil, err
	}
	if aberto == nil {
		return &dto.StatusCaixaResponse{Aberto: false}, nil
	}

	credito, debito, err := s.repo.SumMovimentos(ctx, aberto.ID)
	if err != nil {
		return nil, err
	}
	return &dto.StatusCaixaResponse{
		Aberto:               true,
		Caixa:                caixaToResponse(aberto),
		TotalCreditoCentavos: credito,
		TotalDebitoCentavos:  debito,
	}, nil
}

// ── Fechar ────────────────────────────────────────────────────────────────────
// expected = abertura + Σcreditos − Σdebitos. An explicit closing value
// overrides the computed one — the manual count wins, and discrepancy
// reporting is the reporting layer's concern, not an error here.

func (s *caixaService) Fechar(ctx context.Context, req dto.FecharCaixaRequest) (*dto.CaixaResponse, error) {
	aberto, err := s.repo.FindAberto(ctx)
	if err != nil {
		return nil, err
	}
	if aberto == nil {
		return nil, ErrNenhumCaixaAberto
	}

	credito, debito, err := s.repo.SumMovimentos(ctx, aberto.ID)
	if err != nil {
		return nil, err
	}

	fechamento := aberto.ValorAberturaCentavos + credito - debito
	if req.ValorFechamentoCentavos != nil {
		fechamento = *req.ValorFechamentoCentavos
	}

	now := time.Now()
	aberto.Status = model.CaixaFechado
	aberto.ValorFechamentoCentavos = &fechamento
	aberto.FechadoEm = &now
	aberto.FechadoPor = parseOptionalUUID(req.UsuarioID)

	if err := s.repo.Update(ctx, aberto); err != nil {
		return nil, err
	}
	return caixaToResponse(aberto), nil
}

// ── RegistrarMovimento ────────────────────────────────────────────────────────
// Manual credito/debito entry. Movements are immutable — no update, no delete.

func (s *caixaService) RegistrarMovimento(ctx context.Context, req dto.MovimentoManualRequest) error {
	aberto, err := s.repo.FindAberto(ctx)
	if err != nil {
		return err
	}
	if aberto == nil {
		return ErrNenhumCaixaAberto
	}

	mov := &model.MovimentoCaixa{
		CaixaID:       aberto.ID,
		Tipo:          req.Tipo,
		ValorCentavos: req.ValorCentavos,
		Descricao:     req.Descricao,
	}
	return s.repo.CreateMovimento(ctx, mov)
}

// ── ListarMovimentos ──────────────────────────────────────────────────────────

func (s *caixaService) ListarMovimentos(ctx context.Context) ([]dto.MovimentoResponse, error) {
	aberto, err := s.repo.FindAberto(ctx)
	if err != nil {
		return nil, err
	}
	if aberto == nil {
		return nil, ErrNenhumCaixaAberto
	}

	movs, err := s.repo.ListMovimentos(ctx, aberto.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimentoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovimentoResponse{
			ID:            m.ID.String(),
			Tipo:          m.Tipo,
			ValorCentavos: m.ValorCentavos,
			Descricao:     m.Descricao,
			CreatedAt:     m.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func parseOptionalUUID(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

func caixaToResponse(c *model.Caixa) *dto.CaixaResponse {
	resp := &dto.CaixaResponse{
		ID:                      c.ID.String(),
		Status:                  c.Status,
		ValorAberturaCentavos:   c.ValorAberturaCentavos,
		ValorFechamentoCentavos: c.ValorFechamentoCentavos,
		AbertoEm:                c.AbertoEm.Format(time.RFC3339),
	}
	if c.FechadoEm != nil {
		t := c.FechadoEm.Format(time.RFC3339)
		resp.FechadoEm = &t
	}
	return resp
}
