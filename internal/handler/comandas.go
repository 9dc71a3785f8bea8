package handler

import (
	"net/http"

	"github.com/GodoyTECH/sistemapesqueiro/internal/dto"
	"github.com/GodoyTECH/sistemapesqueiro/internal/service"

	"github.com/gin-gonic/gin"
)

// ComandaHandler exposes comanda creation and lookup by código.
type ComandaHandler struct {
	service service.ComandaService
}

func NewComandaHandler(service service.ComandaService) *ComandaHandler {
	return &ComandaHandler{service: service}
}

// Criar handles POST /v1/comandas
func (h *ComandaHandler) Criar(c *gin.Context) {
	var req dto.CriarComandaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.service.Criar(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Obter handles GET /v1/comandas/:codigo
func (h *ComandaHandler) Obter(c *gin.Context) {
	resp, err := h.service.ObterPorCodigo(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Fechar handles POST /v1/comandas/:codigo/fechar
func (h *ComandaHandler) Fechar(c *gin.Context) {
	resp, err := h.service.Fechar(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
