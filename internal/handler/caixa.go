package handler

import (
	"net/http"

	"github.com/GodoyTECH/sistemapesqueiro/internal/dto"
	"github.com/GodoyTECH/sistemapesqueiro/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// CaixaHandler exposes the till lifecycle: open, status, close, and
// manual cash movements.
type CaixaHandler struct {
	service service.CaixaService
}

func NewCaixaHandler(service service.CaixaService) *CaixaHandler {
	return &CaixaHandler{service: service}
}

// Abrir handles POST /v1/caixa/abrir
func (h *CaixaHandler) Abrir(c *gin.Context) {
	var req dto.AbrirCaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.service.Abrir(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	log.Info().
		Str("caixa_id", resp.ID).
		Int64("valor_abertura_centavos", resp.ValorAberturaCentavos).
		Msg("caixa aberto")
	c.JSON(http.StatusCreated, resp)
}

// Status handles GET /v1/caixa/status
func (h *CaixaHandler) Status(c *gin.Context) {
	resp, err := h.service.Status(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Fechar handles POST /v1/caixa/fechar
func (h *CaixaHandler) Fechar(c *gin.Context) {
	var req dto.FecharCaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.service.Fechar(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	log.Info().
		Str("caixa_id", resp.ID).
		Int64("valor_fechamento_centavos", *resp.ValorFechamentoCentavos).
		Msg("caixa fechado")
	c.JSON(http.StatusOK, resp)
}

// Movimento handles POST /v1/caixa/movimentos
func (h *CaixaHandler) Movimento(c *gin.Context) {
	var req dto.MovimentoManualRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.service.RegistrarMovimento(c.Request.Context(), req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// Movimentos handles GET /v1/caixa/movimentos — ledger of the open caixa.
func (h *CaixaHandler) Movimentos(c *gin.Context) {
	resp, err := h.service.ListarMovimentos(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
