package handler

import (
	"net/http"

	"github.com/GodoyTECH/sistemapesqueiro/internal/apierror"
	"github.com/GodoyTECH/sistemapesqueiro/internal/dto"
	"github.com/GodoyTECH/sistemapesqueiro/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProdutoHandler exposes the product catalog CRUD.
type ProdutoHandler struct {
	service service.ProdutoService
}

func NewProdutoHandler(service service.ProdutoService) *ProdutoHandler {
	return &ProdutoHandler{service: service}
}

// Criar handles POST /v1/produtos
func (h *ProdutoHandler) Criar(c *gin.Context) {
	var req dto.CriarProdutoRequest
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

// Listar handles GET /v1/produtos
func (h *ProdutoHandler) Listar(c *gin.Context) {
	var filter dto.ProdutoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("parâmetros inválidos: "+err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("parâmetros fora do intervalo permitido"))
		return
	}

	resp, err := h.service.Listar(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obter handles GET /v1/produtos/:id
func (h *ProdutoHandler) Obter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id inválido"))
		return
	}

	resp, err := h.service.ObterPorID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar handles PATCH /v1/produtos/:id
func (h *ProdutoHandler) Atualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id inválido"))
		return
	}

	var req dto.AtualizarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.service.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desativar handles DELETE /v1/produtos/:id — soft delete, the product
// stays referenced by historical sale lines.
func (h *ProdutoHandler) Desativar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id inválido"))
		return
	}

	if err := h.service.Desativar(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reativar handles POST /v1/produtos/:id/reativar
func (h *ProdutoHandler) Reativar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id inválido"))
		return
	}

	if err := h.service.Reativar(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
