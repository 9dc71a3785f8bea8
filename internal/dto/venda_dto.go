package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVendaRequest struct {
	ProdutoID  string `json:"produto_id" validate:"required,uuid"`
	Quantidade int    `json:"quantidade" validate:"required,min=1"`
}

type RegistrarVendaRequest struct {
	ComandaCodigo string             `json:"comanda_codigo" validate:"required,min=1"`
	UsuarioID     *string            `json:"usuario_id"     validate:"omitempty,uuid"`
	Itens         []ItemVendaRequest `json:"itens"          validate:"required,min=1,dive"`
	// DescontoCentavos is clamped: the final total never goes below zero.
	DescontoCentavos int64 `json:"desconto_centavos" validate:"min=0"`
}

// VendaFilter is bound from the query string of GET /v1/vendas.
type VendaFilter struct {
	Data  string `form:"data"` // YYYY-MM-DD; empty = today
	Page  int    `form:"page,default=1"  validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVendaResponse struct {
	ProdutoID         string `json:"produto_id"`
	Produto           string `json:"produto,omitempty"`
	Quantidade        int    `json:"quantidade"`
	PrecoUnitCentavos int64  `json:"preco_unit_centavos"`
	TotalCentavos     int64  `json:"total_centavos"`
}

type VendaResponse struct {
	ID               string              `json:"id"`
	ComandaID        string              `json:"comanda_id"`
	ComandaCodigo    string              `json:"comanda_codigo,omitempty"`
	CaixaID          string              `json:"caixa_id"`
	Itens            []ItemVendaResponse `json:"itens"`
	DescontoCentavos int64               `json:"desconto_centavos"`
	TotalCentavos    int64               `json:"total_centavos"`
	CreatedAt        string              `json:"criado_em"`
}

type VendaListResponse struct {
	Data  []VendaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
