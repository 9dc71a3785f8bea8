package service

import (
	"context"
	"testing"

	"github.com/GodoyTECH/sistemapesqueiro/internal/dto"
	"github.com/GodoyTECH/sistemapesqueiro/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vendaFixture struct {
	svc         VendaService
	caixaSvc    CaixaService
	caixaRepo   *fakeCaixaRepo
	produtoRepo *fakeProdutoRepo
	comandaRepo *fakeComandaRepo
	vendaRepo   *fakeVendaRepo
}

func newVendaFixture(t *testing.T, abrirCaixa bool) *vendaFixture {
	t.Helper()
	caixaRepo := newFakeCaixaRepo()
	caixaSvc := NewCaixaService(caixaRepo)
	produtoRepo := newFakeProdutoRepo()
	comandaRepo := newFakeComandaRepo()
	vendaRepo := newFakeVendaRepo()

	if abrirCaixa {
		_, err := caixaSvc.Abrir(context.Background(), dto.AbrirCaixaRequest{ValorAberturaCentavos: 10000})
		require.NoError(t, err)
	}

	return &vendaFixture{
		svc:         NewVendaService(vendaRepo, caixaRepo, comandaRepo, produtoRepo),
		caixaSvc:    caixaSvc,
		caixaRepo:   caixaRepo,
		produtoRepo: produtoRepo,
		comandaRepo: comandaRepo,
		vendaRepo:   vendaRepo,
	}
}

func TestRegistrarVenda(t *testing.T) {
	fx := newVendaFixture(t, true)
	ctx := context.Background()

	iscaID := fx.produtoRepo.add("Isca viva", 500, 10)
	racaoID := fx.produtoRepo.add("Ração premium", 1200, 1)

	resp, err := fx.svc.RegistrarVenda(ctx, dto.RegistrarVendaRequest{
		ComandaCodigo: "C-17",
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: iscaID.String(), Quantidade: 2},
			{ProdutoID: racaoID.String(), Quantidade: 1},
		},
		DescontoCentavos: 200,
	})
	require.NoError(t, err)

	// 2×500 + 1×1200 − 200 = 2500
	assert.Equal(t, int64(2500), resp.TotalCentavos)
	assert.Equal(t, int64(200), resp.DescontoCentavos)
	assert.Equal(t, "C-17", resp.ComandaCodigo)
	require.Len(t, resp.Itens, 2)
	assert.Equal(t, int64(1000), resp.Itens[0].TotalCentavos)
	assert.Equal(t, int64(1200), resp.Itens[1].TotalCentavos)

	// estoque decrementado
	assert.Equal(t, 8, fx.produtoRepo.produtos[iscaID].Estoque)
	assert.Equal(t, 0, fx.produtoRepo.produtos[racaoID].Estoque)

	// exatamente um crédito no caixa, no valor final da venda
	require.Len(t, fx.caixaRepo.movimentos, 1)
	mov := fx.caixaRepo.movimentos[0]
	assert.Equal(t, model.MovimentoCredito, mov.Tipo)
	assert.Equal(t, int64(2500), mov.ValorCentavos)

	// comanda criada na hora
	comanda, ok := fx.comandaRepo.comandas["C-17"]
	require.True(t, ok)
	assert.True(t, comanda.Aberta)
}

func TestRegistrarVendaComandaExistente(t *testing.T) {
	fx := newVendaFixture(t, true)
	ctx := context.Background()

	existente := &model.Comanda{Codigo: "MESA-3", Aberta: true}
	require.NoError(t, fx.comandaRepo.Create(ctx, existente))

	pid := fx.produtoRepo.add("Tilápia kg", 3500, 5)

	resp, err := fx.svc.RegistrarVenda(ctx, dto.RegistrarVendaRequest{
		ComandaCodigo: "MESA-3",
		Itens:         []dto.ItemVendaRequest{{ProdutoID: pid.String(), Quantidade: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, existente.ID.String(), resp.ComandaID)
	assert.Len(t, fx.comandaRepo.comandas, 1)
}

func TestRegistrarVendaSemCaixaAberto(t *testing.T) {
	fx := newVendaFixture(t, false)
	pid := fx.produtoRepo.add("Isca viva", 500, 10)

	_, err := fx.svc.RegistrarVenda(context.Background(), dto.RegistrarVendaRequest{
		ComandaCodigo: "C-1",
		Itens:         []dto.ItemVendaRequest{{ProdutoID: pid.String(), Quantidade: 1}},
	})
	assert.ErrorIs(t, err, ErrNenhumCaixaAberto)
	assert.Empty(t, fx.vendaRepo.vendas)
}

func TestRegistrarVendaProdutoInexistente(t *testing.T) {
	fx := newVendaFixture(t, true)

	fantasma := uuid.New()
	_, err := fx.svc.RegistrarVenda(context.Background(), dto.RegistrarVendaRequest{
		ComandaCodigo: "C-1",
		Itens:         []dto.ItemVendaRequest{{ProdutoID: fantasma.String(), Quantidade: 1}},
	})

	var notFound *ProdutoNaoEncontradoError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, fantasma, notFound.ProdutoID)
	assert.ErrorIs(t, err, ErrProdutoNaoEncontrado)
	assert.Empty(t, fx.vendaRepo.vendas)
	assert.Empty(t, fx.caixaRepo.movimentos)
}

func TestRegistrarVendaEstoqueInsuficiente(t *testing.T) {
	fx := newVendaFixture(t, true)
	pid := fx.produtoRepo.add("Isca viva", 500, 3)

	_, err := fx.svc.RegistrarVenda(context.Background(), dto.RegistrarVendaRequest{
		ComandaCodigo: "C-1",
		Itens:         []dto.ItemVendaRequest{{ProdutoID: pid.String(), Quantidade: 5}},
	})

	var insuf *EstoqueInsuficienteError
	require.ErrorAs(t, err, &insuf)
	assert.Equal(t, pid, insuf.ProdutoID)
	assert.Equal(t, 3, insuf.Estoque)
	assert.Equal(t, 5, insuf.Solicitado)

	// nada mudou
	assert.Equal(t, 3, fx.produtoRepo.produtos[pid].Estoque)
	assert.Empty(t, fx.vendaRepo.vendas)
	assert.Empty(t, fx.caixaRepo.movimentos)
}

func TestRegistrarVendaLinhasDuplicadasConsomemEstoqueAcumulado(t *testing.T) {
	fx := newVendaFixture(t, true)
	pid := fx.produtoRepo.add("Isca viva", 500, 5)

	// duas linhas do mesmo produto: 3 + 3 = 6 > 5 em estoque — a
	// segunda linha precisa enxergar o consumo da primeira
	_, err := fx.svc.RegistrarVenda(context.Background(), dto.RegistrarVendaRequest{
		ComandaCodigo: "C-1",
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: pid.String(), Quantidade: 3},
			{ProdutoID: pid.String(), Quantidade: 3},
		},
	})

	var insuf *EstoqueInsuficienteError
	require.ErrorAs(t, err, &insuf)
	assert.Equal(t, 2, insuf.Estoque)
	assert.Equal(t, 3, insuf.Solicitado)
	assert.Equal(t, 5, fx.produtoRepo.produtos[pid].Estoque)
}

func TestRegistrarVendaLinhasDuplicadasDentroDoEstoque(t *testing.T) {
	fx := newVendaFixture(t, true)
	pid := fx.produtoRepo.add("Isca viva", 500, 5)

	resp, err := fx.svc.RegistrarVenda(context.Background(), dto.RegistrarVendaRequest{
		ComandaCodigo: "C-1",
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: pid.String(), Quantidade: 2},
			{ProdutoID: pid.String(), Quantidade: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2500), resp.TotalCentavos)
	assert.Equal(t, 0, fx.produtoRepo.produtos[pid].Estoque)
}

func TestRegistrarVendaDescontoMaiorQueTotal(t *testing.T) {
	fx := newVendaFixture(t, true)
	pid := fx.produtoRepo.add("Chumbada", 300, 10)

	resp, err := fx.svc.RegistrarVenda(context.Background(), dto.RegistrarVendaRequest{
		ComandaCodigo:    "C-1",
		Itens:            []dto.ItemVendaRequest{{ProdutoID: pid.String(), Quantidade: 1}},
		DescontoCentavos: 900,
	})
	require.NoError(t, err)

	// total nunca fica negativo
	assert.Equal(t, int64(0), resp.TotalCentavos)
	require.Len(t, fx.caixaRepo.movimentos, 1)
	assert.Equal(t, int64(0), fx.caixaRepo.movimentos[0].ValorCentavos)
}

func TestRegistrarVendaPrecoCongeladoNaVenda(t *testing.T) {
	fx := newVendaFixture(t, true)
	ctx := context.Background()
	pid := fx.produtoRepo.add("Vara de pesca", 15000, 4)

	resp, err := fx.svc.RegistrarVenda(ctx, dto.RegistrarVendaRequest{
		ComandaCodigo: "C-1",
		Itens:         []dto.ItemVendaRequest{{ProdutoID: pid.String(), Quantidade: 1}},
	})
	require.NoError(t, err)

	// alteração posterior de preço não afeta a venda registrada
	fx.produtoRepo.produtos[pid].PrecoCentavos = 20000

	venda, err := fx.svc.ObterVenda(ctx, uuid.MustParse(resp.ID))
	require.NoError(t, err)
	require.Len(t, venda.Itens, 1)
	assert.Equal(t, int64(15000), venda.Itens[0].PrecoUnitCentavos)
	assert.Equal(t, int64(15000), venda.TotalCentavos)
}

func TestRegistrarVendaProdutoIDInvalido(t *testing.T) {
	fx := newVendaFixture(t, true)

	_, err := fx.svc.RegistrarVenda(context.Background(), dto.RegistrarVendaRequest{
		ComandaCodigo: "C-1",
		Itens:         []dto.ItemVendaRequest{{ProdutoID: "nao-e-uuid", Quantidade: 1}},
	})
	assert.Error(t, err)
	assert.Empty(t, fx.vendaRepo.vendas)
}

func TestObterVendaInexistente(t *testing.T) {
	fx := newVendaFixture(t, true)

	_, err := fx.svc.ObterVenda(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrVendaNaoEncontrada)
}
