package service

import (
	"testing"

	"github.com/FrankSCarvalho/sistema-pdv/internal/apperr"
	"github.com/FrankSCarvalho/sistema-pdv/internal/config"
	"github.com/FrankSCarvalho/sistema-pdv/internal/dto"
	"github.com/FrankSCarvalho/sistema-pdv/internal/model"
	"github.com/FrankSCarvalho/sistema-pdv/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func novoAuthService(t *testing.T) (AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{
		JWTSecret:          "segredo-de-teste",
		JWTExpirationHours: 1,
		JWTRefreshHours:    2,
	}
	return NewAuthService(repository.NewUsuarioRepository(db), cfg), db
}

func TestLoginAdminPadrao(t *testing.T) {
	svc, _ := novoAuthService(t)

	// O seed cria admin/admin123 em banco vazio.
	resp, err := svc.Login(ctxTeste(), dto.LoginRequest{Login: "admin", Senha: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, model.NivelAdministrador, resp.Usuario.NivelAcesso)
	assert.Equal(t, "Administrador", resp.Usuario.NivelNome)
	assert.NotEmpty(t, resp.Usuario.UltimoAcesso)
}

func TestLoginNormalizaCaixaDoLogin(t *testing.T) {
	svc, _ := novoAuthService(t)
	resp, err := svc.Login(ctxTeste(), dto.LoginRequest{Login: "  ADMIN ", Senha: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Usuario.Login)
}

func TestLoginCredenciaisInvalidas(t *testing.T) {
	svc, _ := novoAuthService(t)

	_, err := svc.Login(ctxTeste(), dto.LoginRequest{Login: "admin", Senha: "errada"})
	assert.ErrorIs(t, err, apperr.ErrCredenciaisInvalidas)

	_, err = svc.Login(ctxTeste(), dto.LoginRequest{Login: "fantasma", Senha: "qualquer"})
	assert.ErrorIs(t, err, apperr.ErrCredenciaisInvalidas)
}

func TestCriarUsuarioLoginUnicoInsensivelACaixa(t *testing.T) {
	svc, _ := novoAuthService(t)

	criado, err := svc.CriarUsuario(ctxTeste(), dto.CriarUsuarioRequest{
		Nome:        "Maria Silva",
		Login:       "Maria",
		Senha:       "segredo1",
		NivelAcesso: model.NivelVendedor,
	})
	require.NoError(t, err)
	assert.Equal(t, "maria", criado.Login)
	assert.Equal(t, "Vendedor", criado.NivelNome)

	_, err = svc.CriarUsuario(ctxTeste(), dto.CriarUsuarioRequest{
		Nome:        "Outra Maria",
		Login:       "MARIA",
		Senha:       "segredo2",
		NivelAcesso: model.NivelGerente,
	})
	assert.ErrorIs(t, err, apperr.ErrChaveDuplicada)
}

func TestCriarUsuarioNivelInvalido(t *testing.T) {
	svc, _ := novoAuthService(t)
	_, err := svc.CriarUsuario(ctxTeste(), dto.CriarUsuarioRequest{
		Nome:        "Nível Errado",
		Login:       "nivel",
		Senha:       "segredo1",
		NivelAcesso: 7,
	})
	assert.ErrorIs(t, err, apperr.ErrValidacao)
}

func TestUsuarioDesativadoNaoAutentica(t *testing.T) {
	svc, _ := novoAuthService(t)

	criado, err := svc.CriarUsuario(ctxTeste(), dto.CriarUsuarioRequest{
		Nome:        "João",
		Login:       "joao",
		Senha:       "segredo1",
		NivelAcesso: model.NivelGerente,
	})
	require.NoError(t, err)

	_, err = svc.Login(ctxTeste(), dto.LoginRequest{Login: "joao", Senha: "segredo1"})
	require.NoError(t, err)

	require.NoError(t, svc.DesativarUsuario(ctxTeste(), criado.ID))
	_, err = svc.Login(ctxTeste(), dto.LoginRequest{Login: "joao", Senha: "segredo1"})
	assert.ErrorIs(t, err, apperr.ErrCredenciaisInvalidas)

	require.NoError(t, svc.ReativarUsuario(ctxTeste(), criado.ID))
	_, err = svc.Login(ctxTeste(), dto.LoginRequest{Login: "joao", Senha: "segredo1"})
	assert.NoError(t, err)
}

func TestRefreshEmiteNovoPar(t *testing.T) {
	svc, _ := novoAuthService(t)

	login, err := svc.Login(ctxTeste(), dto.LoginRequest{Login: "admin", Senha: "admin123"})
	require.NoError(t, err)

	renovado, err := svc.Refresh(ctxTeste(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renovado.AccessToken)
	assert.Equal(t, "admin", renovado.Usuario.Login)

	_, err = svc.Refresh(ctxTeste(), "token.adulterado.aqui")
	assert.Error(t, err)
}

func TestRefreshNaoAceitaAccessToken(t *testing.T) {
	svc, _ := novoAuthService(t)

	login, err := svc.Login(ctxTeste(), dto.LoginRequest{Login: "admin", Senha: "admin123"})
	require.NoError(t, err)

	// Access token é assinado com o mesmo segredo, mas token_type separa
	// as duas vidas úteis.
	_, err = svc.Refresh(ctxTeste(), login.AccessToken)
	assert.Error(t, err)
}

func TestAlterarSenhaExigeSenhaAtual(t *testing.T) {
	svc, _ := novoAuthService(t)

	login, err := svc.Login(ctxTeste(), dto.LoginRequest{Login: "admin", Senha: "admin123"})
	require.NoError(t, err)
	id := login.Usuario.ID

	err = svc.AlterarSenha(ctxTeste(), id, dto.AlterarSenhaRequest{
		SenhaAtual: "errada",
		SenhaNova:  "novasenha1",
	})
	assert.ErrorIs(t, err, apperr.ErrCredenciaisInvalidas)

	require.NoError(t, svc.AlterarSenha(ctxTeste(), id, dto.AlterarSenhaRequest{
		SenhaAtual: "admin123",
		SenhaNova:  "novasenha1",
	}))

	_, err = svc.Login(ctxTeste(), dto.LoginRequest{Login: "admin", Senha: "admin123"})
	assert.ErrorIs(t, err, apperr.ErrCredenciaisInvalidas)
	_, err = svc.Login(ctxTeste(), dto.LoginRequest{Login: "admin", Senha: "novasenha1"})
	assert.NoError(t, err)
}
