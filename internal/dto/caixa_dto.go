package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirCaixaRequest struct {
	ValorAberturaCentavos int64   `json:"valor_abertura_centavos" validate:"min=0"`
	UsuarioID             *string `json:"usuario_id"              validate:"omitempty,uuid"`
}

type FecharCaixaRequest struct {
	// ValorFechamentoCentavos overrides the computed closing amount when
	// present — the manual count wins, no discrepancy error is raised.
	ValorFechamentoCentavos *int64  `json:"valor_fechamento_centavos" validate:"omitempty,min=0"`
	UsuarioID               *string `json:"usuario_id"                validate:"omitempty,uuid"`
}

type MovimentoManualRequest struct {
	Tipo          string `json:"tipo"           validate:"required,oneof=credito debito"`
	ValorCentavos int64  `json:"valor_centavos" validate:"required,gt=0"`
	Descricao     string `json:"descricao"      validate:"required,min=3"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CaixaResponse struct {
	ID                      string `json:"id"`
	Status                  string `json:"status"`
	ValorAberturaCentavos   int64  `json:"valor_abertura_centavos"`
	ValorFechamentoCentavos *int64 `json:"valor_fechamento_centavos,omitempty"`
	AbertoEm                string `json:"aberto_em"`
	FechadoEm               *string `json:"fechado_em,omitempty"`
}

type MovimentoResponse struct {
	ID            string `json:"id"`
	Tipo          string `json:"tipo"`
	ValorCentavos int64  `json:"valor_centavos"`
	Descricao     string `json:"descricao"`
	CreatedAt     string `json:"criado_em"`
}

// StatusCaixaResponse reports the current open caixa, if any, with
// aggregate movement totals. Aberto=false is a normal answer, not an error.
type StatusCaixaResponse struct {
	Aberto               bool           `json:"aberto"`
	Caixa                *CaixaResponse `json:"caixa,omitempty"`
	TotalCreditoCentavos int64          `json:"total_credito_centavos"`
	TotalDebitoCentavos  int64          `json:"total_debito_centavos"`
}
