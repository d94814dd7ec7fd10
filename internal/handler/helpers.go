package handler

import (
	"net/http"
	"reflect"
	"strconv"

	"github.com/FrankSCarvalho/sistema-pdv/internal/apierror"
	"github.com/FrankSCarvalho/sistema-pdv/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Registra decimal.Decimal como tipo numérico para que tags como
	// min=0, gt=0, required funcionem sem panic ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate faz o bind do JSON e roda as tags do go-playground/validator.
// Retorna false já tendo escrito a resposta de erro — o chamador deve
// retornar imediatamente sem escrever outra resposta.
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

// respondErr traduz erros de domínio para o status HTTP da taxonomia.
func respondErr(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), apierror.New(err.Error()))
}

// parseID lê o parâmetro de rota "id" como inteiro positivo.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return 0, false
	}
	return uint(id), true
}
