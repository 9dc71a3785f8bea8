package handler

import (
	"net/http"

	"github.com/GodoyTECH/sistemapesqueiro/internal/apierror"
	"github.com/GodoyTECH/sistemapesqueiro/internal/dto"
	"github.com/GodoyTECH/sistemapesqueiro/internal/service"

	"github.com/gin-gonic/gin"
)

// RelatorioHandler exposes the sales report, grouped by day or product.
type RelatorioHandler struct {
	service service.RelatorioService
}

func NewRelatorioHandler(service service.RelatorioService) *RelatorioHandler {
	return &RelatorioHandler{service: service}
}

// Vendas handles GET /v1/relatorios/vendas?de=&ate=&agrupar=dia|produto
func (h *RelatorioHandler) Vendas(c *gin.Context) {
	var filter dto.RelatorioFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("parâmetros inválidos: "+err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("parâmetros inválidos: use de/ate no formato AAAA-MM-DD e agrupar=dia|produto"))
		return
	}

	switch filter.Agrupar {
	case "produto":
		rows, err := h.service.VendasPorProduto(c.Request.Context(), filter)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"agrupar": "produto", "data": rows})
	default:
		rows, err := h.service.VendasPorDia(c.Request.Context(), filter)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"agrupar": "dia", "data": rows})
	}
}
