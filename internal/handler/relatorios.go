package handler

import (
	"net/http"
	"strconv"

	"github.com/FrankSCarvalho/sistema-pdv/internal/service"

	"github.com/gin-gonic/gin"
)

type RelatoriosHandler struct{ svc service.RelatorioService }

func NewRelatoriosHandler(svc service.RelatorioService) *RelatoriosHandler {
	return &RelatoriosHandler{svc: svc}
}

func (h *RelatoriosHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RelatoriosHandler) ResumoPeriodo(c *gin.Context) {
	resp, err := h.svc.ResumoPeriodo(c.Request.Context(), c.Query("de"), c.Query("ate"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RelatoriosHandler) ProdutosMaisVendidos(c *gin.Context) {
	limite, _ := strconv.Atoi(c.DefaultQuery("limite", "10"))
	resp, err := h.svc.ProdutosMaisVendidos(c.Request.Context(), limite)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RelatoriosHandler) FormasPagamento(c *gin.Context) {
	resp, err := h.svc.TotaisPorFormaPagamento(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
