package infra

import (
	"testing"
	"time"

	"github.com/GodoyTECH/sistemapesqueiro/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarReciboPDF(t *testing.T) {
	isca := &model.Produto{ID: uuid.New(), Nome: "Isca viva"}
	venda := &model.Venda{
		ID:               uuid.New(),
		TotalCentavos:    2500,
		DescontoCentavos: 200,
		CreatedAt:        time.Now(),
		Comanda:          &model.Comanda{Codigo: "C-17"},
		Itens: []model.ItemVenda{
			{Produto: isca, ProdutoID: isca.ID, Quantidade: 2, PrecoUnitCentavos: 500, TotalCentavos: 1000},
		},
	}

	pdf, err := GerarReciboPDF(venda)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGerarReciboPDFSemRelacoes(t *testing.T) {
	// Produto e Comanda podem vir nil quando o preload falhou — o recibo
	// ainda sai, só com campos em branco.
	venda := &model.Venda{
		ID:            uuid.New(),
		TotalCentavos: 300,
		CreatedAt:     time.Now(),
		Itens:         []model.ItemVenda{{Quantidade: 1, TotalCentavos: 300}},
	}

	pdf, err := GerarReciboPDF(venda)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestFormatCentavos(t *testing.T) {
	assert.Equal(t, "R$ 12,50", formatCentavos(1250))
	assert.Equal(t, "R$ 0,05", formatCentavos(5))
	assert.Equal(t, "R$ 0,00", formatCentavos(0))
	assert.Equal(t, "-R$ 3,00", formatCentavos(-300))
	assert.Equal(t, "R$ 1234,00", formatCentavos(123400))
}
