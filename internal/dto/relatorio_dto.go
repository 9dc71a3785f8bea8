package dto

// RelatorioFilter is bound from the query string of GET /v1/relatorios/vendas.
// Empty de/ate defaults to the last 7 days.
type RelatorioFilter struct {
	De      string `form:"de"      validate:"omitempty,datetime=2006-01-02"`
	Ate     string `form:"ate"     validate:"omitempty,datetime=2006-01-02"`
	Agrupar string `form:"agrupar,default=dia" validate:"oneof=dia produto"`
}

// VendasPorDiaRow aggregates sales totals per day.
type VendasPorDiaRow struct {
	Dia           string `json:"dia"`
	TotalCentavos int64  `json:"total_centavos"`
	NumVendas     int64  `json:"num_vendas"`
}

// VendasPorProdutoRow ranks products by revenue in the period.
type VendasPorProdutoRow struct {
	ProdutoID     string `json:"produto_id"`
	Nome          string `json:"nome"`
	Quantidade    int64  `json:"quantidade"`
	TotalCentavos int64  `json:"total_centavos"`
}
