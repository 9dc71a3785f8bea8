package dto

type CriarComandaRequest struct {
	Codigo      string  `json:"codigo"       validate:"required,min=1"`
	ClienteNome *string `json:"cliente_nome"`
}

type ComandaResponse struct {
	ID          string  `json:"id"`
	Codigo      string  `json:"codigo"`
	ClienteNome *string `json:"cliente_nome,omitempty"`
	Aberta      bool    `json:"aberta"`
	CreatedAt   string  `json:"criado_em"`
}
