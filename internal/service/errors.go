package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Domain errors. Handlers map these onto HTTP status codes; the service
// layer never knows about HTTP.
var (
	// Preconditions (mapped to 409)
	ErrCaixaJaAberto      = errors.New("já existe um caixa aberto")
	ErrNenhumCaixaAberto  = errors.New("nenhum caixa aberto")
	ErrComandaJaExiste    = errors.New("comanda já existe")
	ErrJanelaIndisponivel = errors.New("janela indisponível")

	// Not found (mapped to 404)
	ErrComandaNaoEncontrada = errors.New("comanda não encontrada")
	ErrProdutoNaoEncontrado = errors.New("produto não encontrado")
	ErrVendaNaoEncontrada   = errors.New("venda não encontrada")
	ErrTanqueNaoEncontrado  = errors.New("tanque não encontrado")
)

// ProdutoNaoEncontradoError identifies the offending product of a sale
// line that referenced a missing catalog row. It aborts the whole sale.
type ProdutoNaoEncontradoError struct {
	ProdutoID uuid.UUID
}

func (e *ProdutoNaoEncontradoError) Error() string {
	return fmt.Sprintf("produto %s não encontrado", e.ProdutoID)
}

func (e *ProdutoNaoEncontradoError) Unwrap() error { return ErrProdutoNaoEncontrado }

// EstoqueInsuficienteError is returned when a sale line requests more
// units than the product has in stock. It aborts the whole sale.
type EstoqueInsuficienteError struct {
	ProdutoID  uuid.UUID
	Estoque    int
	Solicitado int
}

func (e *EstoqueInsuficienteError) Error() string {
	return fmt.Sprintf("estoque insuficiente do produto %s (disponível %d, solicitado %d)",
		e.ProdutoID, e.Estoque, e.Solicitado)
}
