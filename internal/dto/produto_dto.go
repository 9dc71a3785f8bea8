package dto

// ─── Filter / List ──────────────────────────────────────────────────────────

// ProdutoFilter is bound from the query string of GET /v1/produtos.
type ProdutoFilter struct {
	Busca string `form:"q"`                    // name ILIKE / sku / barcode match
	Ativo string `form:"ativo,default=true"`   // true | false | all
	Page  int    `form:"page,default=1"  validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Nome          string  `json:"nome"           validate:"required,min=1"`
	SKU           *string `json:"sku"`
	CodigoBarras  *string `json:"codigo_barras"`
	PrecoCentavos int64   `json:"preco_centavos" validate:"min=0"`
	Estoque       int     `json:"estoque"        validate:"min=0"`
}

// AtualizarProdutoRequest uses pointers so that absent fields are left
// untouched (partial update).
type AtualizarProdutoRequest struct {
	Nome          *string `json:"nome"           validate:"omitempty,min=1"`
	SKU           *string `json:"sku"`
	CodigoBarras  *string `json:"codigo_barras"`
	PrecoCentavos *int64  `json:"preco_centavos" validate:"omitempty,min=0"`
	Estoque       *int    `json:"estoque"        validate:"omitempty,min=0"`
	Ativo         *bool   `json:"ativo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProdutoResponse struct {
	ID            string  `json:"id"`
	Nome          string  `json:"nome"`
	SKU           *string `json:"sku,omitempty"`
	CodigoBarras  *string `json:"codigo_barras,omitempty"`
	PrecoCentavos int64   `json:"preco_centavos"`
	Estoque       int     `json:"estoque"`
	Ativo         bool    `json:"ativo"`
}

type ProdutoListResponse struct {
	Data  []ProdutoResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
