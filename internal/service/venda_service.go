package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GodoyTECH/sistemapesqueiro/internal/dto"
	"github.com/GodoyTECH/sistemapesqueiro/internal/model"
	"github.com/GodoyTECH/sistemapesqueiro/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendaService interface {
	RegistrarVenda(ctx context.Context, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error)
	ObterVenda(ctx context.Context, id uuid.UUID) (*dto.VendaResponse, error)
	ListVendas(ctx context.Context, filter dto.VendaFilter) (*dto.VendaListResponse, error)
	// ObterVendaModel returns the raw model, used by the receipt renderer.
	ObterVendaModel(ctx context.Context, id uuid.UUID) (*model.Venda, error)
}

type vendaService struct {
	repo        repository.VendaRepository
	caixaRepo   repository.CaixaRepository
	comandaRepo repository.ComandaRepository
	produtoRepo repository.ProdutoRepository
}

func NewVendaService(
	repo repository.VendaRepository,
	caixaRepo repository.CaixaRepository,
	comandaRepo repository.ComandaRepository,
	produtoRepo repository.ProdutoRepository,
) VendaService {
	return &vendaService{
		repo:        repo,
		caixaRepo:   caixaRepo,
		comandaRepo: comandaRepo,
		produtoRepo: produtoRepo,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── RegistrarVenda ────────────────────────────────────────────────────────────
// The whole sale is one ACID transaction:
//   1. Resolve the open caixa — inside the transaction, so a close
//      that commits concurrently cannot leave this sale's credito on
//      an already-closed caixa
//   2. Resolve (or create) the comanda by código
//   3. Load price+stock of every referenced product in one read
//   4. Validate each line against a running remaining-stock figure
//   5. Price lines with the snapshot unit price; clamp the discount
//   6. Create venda + itens, decrement stock (guarded), post one
//      movimento de caixa (credito)
// Any failure rolls back every effect — no partial stock mutation, no
// orphan comanda, no dangling movimento.

func (s *vendaService) RegistrarVenda(ctx context.Context, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error) {
	itemIDs := make([]uuid.UUID, 0, len(req.Itens))
	for _, item := range req.Itens {
		pid, err := uuid.Parse(item.ProdutoID)
		if err != nil {
			return nil, fmt.Errorf("produto_id inválido: %w", err)
		}
		itemIDs = append(itemIDs, pid)
	}

	var venda model.Venda
	var comanda *model.Comanda

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// 1. Resolve the open caixa
		caixa, err := s.caixaRepo.FindAbertoTx(tx)
		if err != nil {
			return err
		}
		if caixa == nil {
			return ErrNenhumCaixaAberto
		}

		// 2. Resolve comanda; create it when absent
		c, err := s.comandaRepo.FindByCodigoTx(tx, req.ComandaCodigo)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c = &model.Comanda{Codigo: req.ComandaCodigo, Aberta: true}
			if err := s.comandaRepo.CreateTx(tx, c); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		comanda = c

		// 3. One read for every distinct product: snapshot price + stock
		produtos, err := s.produtoRepo.FindForSaleTx(tx, itemIDs)
		if err != nil {
			return err
		}
		type snapshot struct {
			preco    int64
			restante int
		}
		snapshots := make(map[uuid.UUID]*snapshot, len(produtos))
		for _, p := range produtos {
			snapshots[p.ID] = &snapshot{preco: p.PrecoCentavos, restante: p.Estoque}
		}

		// 4+5. Validate and price each line, in input order. The remaining
		// counter makes duplicate lines of the same product check against
		// each other's consumption, not against the raw snapshot.
		var total int64
		itens := make([]model.ItemVenda, 0, len(req.Itens))
		for i, item := range req.Itens {
			snap, ok := snapshots[itemIDs[i]]
			if !ok {
				return &ProdutoNaoEncontradoError{ProdutoID: itemIDs[i]}
			}
			if snap.restante < item.Quantidade {
				return &EstoqueInsuficienteError{
					ProdutoID:  itemIDs[i],
					Estoque:    snap.restante,
					Solicitado: item.Quantidade,
				}
			}
			snap.restante -= item.Quantidade

			lineTotal := snap.preco * int64(item.Quantidade)
			total += lineTotal
			itens = append(itens, model.ItemVenda{
				ProdutoID:         itemIDs[i],
				Quantidade:        item.Quantidade,
				PrecoUnitCentavos: snap.preco,
				TotalCentavos:     lineTotal,
			})
		}

		// Discount is clamped — the total never goes negative
		totalComDesconto := total - req.DescontoCentavos
		if totalComDesconto < 0 {
			totalComDesconto = 0
		}

		venda = model.Venda{
			ComandaID:        comanda.ID,
			CaixaID:          caixa.ID,
			UsuarioID:        parseOptionalUUID(req.UsuarioID),
			TotalCentavos:    totalComDesconto,
			DescontoCentavos: req.DescontoCentavos,
			Itens:            itens,
		}
		if err := s.repo.CreateTx(tx, &venda); err != nil {
			return err
		}

		// Decrement stock. The guarded UPDATE double-checks against
		// concurrent sales that committed after our snapshot read.
		for i, item := range req.Itens {
			ok, err := s.produtoRepo.DescontarEstoqueTx(tx, itemIDs[i], item.Quantidade)
			if err != nil {
				return err
			}
			if !ok {
				return &EstoqueInsuficienteError{
					ProdutoID:  itemIDs[i],
					Solicitado: item.Quantidade,
				}
			}
		}

		// 6. One credito movimento for the sale total
		mov := &model.MovimentoCaixa{
			CaixaID:       caixa.ID,
			Tipo:          model.MovimentoCredito,
			ValorCentavos: totalComDesconto,
			Descricao:     fmt.Sprintf("venda %s", venda.ID),
		}
		return s.caixaRepo.CreateMovimentoTx(tx, mov)
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := vendaToResponse(&venda)
	resp.ComandaCodigo = comanda.Codigo
	return resp, nil
}

// ── Queries ───────────────────────────────────────────────────────────────────

func (s *vendaService) ObterVenda(ctx context.Context, id uuid.UUID) (*dto.VendaResponse, error) {
	venda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrVendaNaoEncontrada
	}
	resp := vendaToResponse(venda)
	if venda.Comanda != nil {
		resp.ComandaCodigo = venda.Comanda.Codigo
	}
	return resp, nil
}

func (s *vendaService) ObterVendaModel(ctx context.Context, id uuid.UUID) (*model.Venda, error) {
	venda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrVendaNaoEncontrada
	}
	return venda, nil
}

func (s *vendaService) ListVendas(ctx context.Context, filter dto.VendaFilter) (*dto.VendaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	vendas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendaResponse, 0, len(vendas))
	for i := range vendas {
		resp := vendaToResponse(&vendas[i])
		if vendas[i].Comanda != nil {
			resp.ComandaCodigo = vendas[i].Comanda.Codigo
		}
		items = append(items, *resp)
	}
	return &dto.VendaListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func vendaToResponse(v *model.Venda) *dto.VendaResponse {
	itens := make([]dto.ItemVendaResponse, 0, len(v.Itens))
	for _, item := range v.Itens {
		nome := ""
		if item.Produto != nil {
			nome = item.Produto.Nome
		}
		itens = append(itens, dto.ItemVendaResponse{
			ProdutoID:         item.ProdutoID.String(),
			Produto:           nome,
			Quantidade:        item.Quantidade,
			PrecoUnitCentavos: item.PrecoUnitCentavos,
			TotalCentavos:     item.TotalCentavos,
		})
	}
	return &dto.VendaResponse{
		ID:               v.ID.String(),
		ComandaID:        v.ComandaID.String(),
		CaixaID:          v.CaixaID.String(),
		Itens:            itens,
		DescontoCentavos: v.DescontoCentavos,
		TotalCentavos:    v.TotalCentavos,
		CreatedAt:        v.CreatedAt.Format(time.RFC3339),
	}
}
