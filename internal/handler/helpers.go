package handler

import (
	"errors"
	"net/http"

	"github.com/GodoyTECH/sistemapesqueiro/internal/apierror"
	"github.com/GodoyTECH/sistemapesqueiro/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondServiceError maps domain errors onto HTTP status codes.
// Conflict-class errors (open-caixa preconditions, stock shortage,
// reservation overlap) are 409: the request was well-formed but the
// current state rejects it. Unknown errors are logged and become an
// opaque 500.
func respondServiceError(c *gin.Context, err error) {
	var estoqueErr *service.EstoqueInsuficienteError

	switch {
	case errors.As(err, &estoqueErr):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrCaixaJaAberto),
		errors.Is(err, service.ErrNenhumCaixaAberto),
		errors.Is(err, service.ErrComandaJaExiste),
		errors.Is(err, service.ErrJanelaIndisponivel):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrProdutoNaoEncontrado),
		errors.Is(err, service.ErrComandaNaoEncontrada),
		errors.Is(err, service.ErrVendaNaoEncontrada),
		errors.Is(err, service.ErrTanqueNaoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("service error")
		c.JSON(http.StatusInternalServerError, apierror.New("erro interno do servidor"))
	}
}
