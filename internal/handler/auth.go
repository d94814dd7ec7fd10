package handler

import (
	"net/http"

	"github.com/FrankSCarvalho/sistema-pdv/internal/apierror"
	"github.com/FrankSCarvalho/sistema-pdv/internal/dto"
	"github.com/FrankSCarvalho/sistema-pdv/internal/middleware"
	"github.com/FrankSCarvalho/sistema-pdv/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Credenciais inválidas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AlterarMinhaSenha troca a senha do usuário autenticado, exigindo a atual.
func (h *AuthHandler) AlterarMinhaSenha(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticação requerida"))
		return
	}
	var req dto.AlterarSenhaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.AlterarSenha(c.Request.Context(), claims.UserID, req); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
