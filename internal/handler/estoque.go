package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/FrankSCarvalho/sistema-pdv/internal/apierror"
	"github.com/FrankSCarvalho/sistema-pdv/internal/dto"
	"github.com/FrankSCarvalho/sistema-pdv/internal/middleware"
	"github.com/FrankSCarvalho/sistema-pdv/internal/service"

	"github.com/gin-gonic/gin"
)

type EstoqueHandler struct{ svc service.EstoqueService }

func NewEstoqueHandler(svc service.EstoqueService) *EstoqueHandler {
	return &EstoqueHandler{svc: svc}
}

func (h *EstoqueHandler) Entrada(c *gin.Context) {
	h.movimentar(c, h.svc.RegistrarEntrada)
}

func (h *EstoqueHandler) Saida(c *gin.Context) {
	h.movimentar(c, h.svc.RegistrarSaida)
}

type movimentarFn func(ctx context.Context, produtoID uint, quantidade int, observacao string, usuarioID *uint) error

func (h *EstoqueHandler) movimentar(c *gin.Context, fn movimentarFn) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.MovimentacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	var usuarioID *uint
	if claims := middleware.GetClaims(c); claims != nil {
		usuarioID = &claims.UserID
	}

	if err := fn(c.Request.Context(), id, req.Quantidade, req.Observacao, usuarioID); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EstoqueHandler) ListarMovimentacoes(c *gin.Context) {
	var produtoID *uint
	if raw := c.Query("produto_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("produto_id inválido"))
			return
		}
		id := uint(v)
		produtoID = &id
	}
	resp, err := h.svc.ListarMovimentacoes(c.Request.Context(), produtoID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
