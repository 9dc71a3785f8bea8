package handler

import (
	"fmt"
	"net/http"

	"github.com/GodoyTECH/sistemapesqueiro/internal/apierror"
	"github.com/GodoyTECH/sistemapesqueiro/internal/dto"
	"github.com/GodoyTECH/sistemapesqueiro/internal/infra"
	"github.com/GodoyTECH/sistemapesqueiro/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// VendaHandler exposes sale registration, listing and the receipt PDF.
type VendaHandler struct {
	service service.VendaService
}

func NewVendaHandler(service service.VendaService) *VendaHandler {
	return &VendaHandler{service: service}
}

// Registrar handles POST /v1/vendas
func (h *VendaHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.service.RegistrarVenda(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	log.Info().
		Str("venda_id", resp.ID).
		Str("comanda_codigo", resp.ComandaCodigo).
		Int64("total_centavos", resp.TotalCentavos).
		Int("itens", len(resp.Itens)).
		Msg("venda registrada")
	c.JSON(http.StatusCreated, resp)
}

// Listar handles GET /v1/vendas
func (h *VendaHandler) Listar(c *gin.Context) {
	var filter dto.VendaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("parâmetros inválidos: "+err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("parâmetros fora do intervalo permitido"))
		return
	}

	resp, err := h.service.ListVendas(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obter handles GET /v1/vendas/:id
func (h *VendaHandler) Obter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id inválido"))
		return
	}

	resp, err := h.service.ObterVenda(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Recibo handles GET /v1/vendas/:id/recibo — streams the receipt PDF.
func (h *VendaHandler) Recibo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id inválido"))
		return
	}

	venda, err := h.service.ObterVendaModel(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	pdf, err := infra.GerarReciboPDF(venda)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=recibo-%s.pdf", id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
