package service

import (
	"context"
	"time"

	"github.com/GodoyTECH/sistemapesqueiro/internal/dto"
	"github.com/GodoyTECH/sistemapesqueiro/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory fakes for the repository interfaces. The tx parameter is
// ignored — unit tests run with a nil DB, so runTx calls fn(nil).

// ── fakeCaixaRepo ─────────────────────────────────────────────────────────────

type fakeCaixaRepo struct {
	caixas     []*model.Caixa
	movimentos []model.MovimentoCaixa
}

func newFakeCaixaRepo() *fakeCaixaRepo { return &fakeCaixaRepo{} }

func (f *fakeCaixaRepo) Create(_ context.Context, c *model.Caixa) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.AbertoEm = time.Now()
	f.caixas = append(f.caixas, c)
	return nil
}

func (f *fakeCaixaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Caixa, error) {
	for _, c := range f.caixas {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCaixaRepo) FindAberto(context.Context) (*model.Caixa, error) {
	return f.FindAbertoTx(nil)
}

func (f *fakeCaixaRepo) FindAbertoTx(*gorm.DB) (*model.Caixa, error) {
	for _, c := range f.caixas {
		if c.Status == model.CaixaAberto {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCaixaRepo) Update(context.Context, *model.Caixa) error { return nil }

func (f *fakeCaixaRepo) CreateMovimento(_ context.Context, m *model.MovimentoCaixa) error {
	return f.CreateMovimentoTx(nil, m)
}

func (f *fakeCaixaRepo) CreateMovimentoTx(_ *gorm.DB, m *model.MovimentoCaixa) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	f.movimentos = append(f.movimentos, *m)
	return nil
}

func (f *fakeCaixaRepo) ListMovimentos(_ context.Context, caixaID uuid.UUID) ([]model.MovimentoCaixa, error) {
	var out []model.MovimentoCaixa
	for _, m := range f.movimentos {
		if m.CaixaID == caixaID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeCaixaRepo) SumMovimentos(_ context.Context, caixaID uuid.UUID) (int64, int64, error) {
	var credito, debito int64
	for _, m := range f.movimentos {
		if m.CaixaID != caixaID {
			continue
		}
		switch m.Tipo {
		case model.MovimentoCredito:
			credito += m.ValorCentavos
		case model.MovimentoDebito:
			debito += m.ValorCentavos
		}
	}
	return credito, debito, nil
}

// ── fakeProdutoRepo ───────────────────────────────────────────────────────────

type fakeProdutoRepo struct {
	produtos map[uuid.UUID]*model.Produto
}

func newFakeProdutoRepo() *fakeProdutoRepo {
	return &fakeProdutoRepo{produtos: make(map[uuid.UUID]*model.Produto)}
}

func (f *fakeProdutoRepo) add(nome string, preco int64, estoque int) uuid.UUID {
	p := &model.Produto{
		ID:            uuid.New(),
		Nome:          nome,
		PrecoCentavos: preco,
		Estoque:       estoque,
		Ativo:         true,
	}
	f.produtos[p.ID] = p
	return p.ID
}

func (f *fakeProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.produtos[p.ID] = p
	return nil
}

func (f *fakeProdutoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Produto, error) {
	p, ok := f.produtos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProdutoRepo) List(context.Context, dto.ProdutoFilter) ([]model.Produto, int64, error) {
	out := make([]model.Produto, 0, len(f.produtos))
	for _, p := range f.produtos {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProdutoRepo) Update(context.Context, *model.Produto) error { return nil }

func (f *fakeProdutoRepo) Desativar(_ context.Context, id uuid.UUID) error {
	if p, ok := f.produtos[id]; ok {
		p.Ativo = false
	}
	return nil
}

func (f *fakeProdutoRepo) Reativar(_ context.Context, id uuid.UUID) error {
	if p, ok := f.produtos[id]; ok {
		p.Ativo = true
	}
	return nil
}

func (f *fakeProdutoRepo) FindForSaleTx(_ *gorm.DB, ids []uuid.UUID) ([]model.Produto, error) {
	seen := make(map[uuid.UUID]bool)
	var out []model.Produto
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := f.produtos[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProdutoRepo) DescontarEstoqueTx(_ *gorm.DB, id uuid.UUID, qtd int) (bool, error) {
	p, ok := f.produtos[id]
	if !ok || p.Estoque < qtd {
		return false, nil
	}
	p.Estoque -= qtd
	return true, nil
}

func (f *fakeProdutoRepo) DB() *gorm.DB { return nil }

// ── fakeComandaRepo ───────────────────────────────────────────────────────────

type fakeComandaRepo struct {
	comandas map[string]*model.Comanda
}

func newFakeComandaRepo() *fakeComandaRepo {
	return &fakeComandaRepo{comandas: make(map[string]*model.Comanda)}
}

func (f *fakeComandaRepo) Create(_ context.Context, c *model.Comanda) error {
	return f.CreateTx(nil, c)
}

func (f *fakeComandaRepo) FindByCodigo(_ context.Context, codigo string) (*model.Comanda, error) {
	return f.FindByCodigoTx(nil, codigo)
}

func (f *fakeComandaRepo) Fechar(_ context.Context, codigo string) (*model.Comanda, error) {
	c, ok := f.comandas[codigo]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c.Aberta = false
	return c, nil
}

func (f *fakeComandaRepo) FindByCodigoTx(_ *gorm.DB, codigo string) (*model.Comanda, error) {
	c, ok := f.comandas[codigo]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeComandaRepo) CreateTx(_ *gorm.DB, c *model.Comanda) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.comandas[c.Codigo] = c
	return nil
}

// ── fakeVendaRepo ─────────────────────────────────────────────────────────────

type fakeVendaRepo struct {
	vendas []*model.Venda
}

func newFakeVendaRepo() *fakeVendaRepo { return &fakeVendaRepo{} }

func (f *fakeVendaRepo) CreateTx(_ *gorm.DB, v *model.Venda) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.CreatedAt = time.Now()
	f.vendas = append(f.vendas, v)
	return nil
}

func (f *fakeVendaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venda, error) {
	for _, v := range f.vendas {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVendaRepo) List(context.Context, dto.VendaFilter) ([]model.Venda, int64, error) {
	out := make([]model.Venda, 0, len(f.vendas))
	for _, v := range f.vendas {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (f *fakeVendaRepo) DB() *gorm.DB { return nil }

// ── fakeReservaRepo ───────────────────────────────────────────────────────────

type fakeReservaRepo struct {
	tanques  map[uuid.UUID]*model.Tanque
	reservas []*model.Reserva
}

func newFakeReservaRepo() *fakeReservaRepo {
	return &fakeReservaRepo{tanques: make(map[uuid.UUID]*model.Tanque)}
}

func (f *fakeReservaRepo) CreateTanque(_ context.Context, t *model.Tanque) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	f.tanques[t.ID] = t
	return nil
}

func (f *fakeReservaRepo) ListTanques(context.Context) ([]model.Tanque, error) {
	out := make([]model.Tanque, 0, len(f.tanques))
	for _, t := range f.tanques {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeReservaRepo) FindTanqueByID(_ context.Context, id uuid.UUID) (*model.Tanque, error) {
	t, ok := f.tanques[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (f *fakeReservaRepo) Create(_ context.Context, r *model.Reserva) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	f.reservas = append(f.reservas, r)
	return nil
}

func (f *fakeReservaRepo) List(context.Context) ([]model.Reserva, error) {
	out := make([]model.Reserva, 0, len(f.reservas))
	for _, r := range f.reservas {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeReservaRepo) HasConflict(_ context.Context, tanqueID uuid.UUID, inicio, fim time.Time) (bool, error) {
	for _, r := range f.reservas {
		if r.TanqueID != tanqueID {
			continue
		}
		if r.Inicio.Before(fim) && r.Fim.After(inicio) {
			return true, nil
		}
	}
	return false, nil
}
