package handler

import (
	"net/http"

	"github.com/GodoyTECH/sistemapesqueiro/internal/dto"
	"github.com/GodoyTECH/sistemapesqueiro/internal/service"

	"github.com/gin-gonic/gin"
)

// ReservaHandler exposes tanques and their reservation windows.
type ReservaHandler struct {
	service service.ReservaService
}

func NewReservaHandler(service service.ReservaService) *ReservaHandler {
	return &ReservaHandler{service: service}
}

// CriarTanque handles POST /v1/tanques
func (h *ReservaHandler) CriarTanque(c *gin.Context) {
	var req dto.CriarTanqueRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.service.CriarTanque(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarTanques handles GET /v1/tanques
func (h *ReservaHandler) ListarTanques(c *gin.Context) {
	resp, err := h.service.ListarTanques(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CriarReserva handles POST /v1/reservas
func (h *ReservaHandler) CriarReserva(c *gin.Context) {
	var req dto.CriarReservaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.service.CriarReserva(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarReservas handles GET /v1/reservas
func (h *ReservaHandler) ListarReservas(c *gin.Context) {
	resp, err := h.service.ListarReservas(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
