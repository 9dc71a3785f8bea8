package dto

import "time"

type CriarTanqueRequest struct {
	Nome    string `json:"nome"    validate:"required,min=1"`
	Lugares int    `json:"lugares" validate:"min=1"`
}

type TanqueResponse struct {
	ID      string `json:"id"`
	Nome    string `json:"nome"`
	Lugares int    `json:"lugares"`
}

type CriarReservaRequest struct {
	TanqueID    string    `json:"tanque_id"    validate:"required,uuid"`
	ClienteNome string    `json:"cliente_nome" validate:"required,min=1"`
	Inicio      time.Time `json:"inicio"       validate:"required"`
	Fim         time.Time `json:"fim"          validate:"required,gtfield=Inicio"`
}

type ReservaResponse struct {
	ID          string `json:"id"`
	TanqueID    string `json:"tanque_id"`
	TanqueNome  string `json:"tanque_nome,omitempty"`
	ClienteNome string `json:"cliente_nome"`
	Inicio      string `json:"inicio"`
	Fim         string `json:"fim"`
}
