package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/FrankSCarvalho/sistema-pdv/internal/apperr"
	"github.com/FrankSCarvalho/sistema-pdv/internal/config"
	"github.com/FrankSCarvalho/sistema-pdv/internal/dto"
	"github.com/FrankSCarvalho/sistema-pdv/internal/model"
	"github.com/FrankSCarvalho/sistema-pdv/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	CriarUsuario(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error)
	AtualizarUsuario(ctx context.Context, id uint, req dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	AlterarSenha(ctx context.Context, id uint, req dto.AlterarSenhaRequest) error
	ListarUsuarios(ctx context.Context, filter dto.UsuarioFilter) ([]dto.UsuarioResponse, error)
	DesativarUsuario(ctx context.Context, id uint) error
	ReativarUsuario(ctx context.Context, id uint) error
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	login := strings.ToLower(strings.TrimSpace(req.Login))

	user, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		// Mesma resposta para login inexistente e senha errada.
		return nil, apperr.ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(req.Senha)); err != nil {
		return nil, apperr.ErrCredenciaisInvalidas
	}

	agora := time.Now()
	if err := s.repo.AtualizarUltimoAcesso(ctx, user.ID, agora); err != nil {
		return nil, err
	}
	user.UltimoAcesso = &agora

	return s.montarLoginResponse(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("refresh token inválido ou expirado")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("token mal formado")
	}
	// Um access token assinado com o mesmo segredo não serve aqui: as duas
	// vidas úteis são separadas pelo claim token_type.
	if tipo, _ := claims["token_type"].(string); tipo != tokenTypeRefresh {
		return nil, errors.New("refresh token inválido ou expirado")
	}
	idFloat, ok := claims["user_id"].(float64)
	if !ok {
		return nil, errors.New("token mal formado")
	}

	user, err := s.repo.FindByID(ctx, uint(idFloat))
	if err != nil || !user.Ativo {
		return nil, errors.New("usuário não encontrado ou inativo")
	}

	return s.montarLoginResponse(user)
}

func (s *authService) CriarUsuario(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error) {
	if req.NivelAcesso < model.NivelAdministrador || req.NivelAcesso > model.NivelVendedor {
		return nil, apperr.Validacao("nivel_acesso", "nível de acesso inválido")
	}
	if strings.TrimSpace(req.Nome) == "" {
		return nil, apperr.Validacao("nome", "o nome do usuário é obrigatório")
	}
	login := strings.ToLower(strings.TrimSpace(req.Login))
	if login == "" {
		return nil, apperr.Validacao("login", "o login é obrigatório")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), 12)
	if err != nil {
		return nil, err
	}

	user := &model.Usuario{
		Nome:        strings.TrimSpace(req.Nome),
		Login:       login,
		SenhaHash:   string(hash),
		NivelAcesso: req.NivelAcesso,
		Ativo:       true,
		DataCriacao: time.Now(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return usuarioToResponse(user), nil
}

func (s *authService) AtualizarUsuario(ctx context.Context, id uint, req dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nome != "" {
		user.Nome = strings.TrimSpace(req.Nome)
	}
	if req.Login != "" {
		user.Login = strings.ToLower(strings.TrimSpace(req.Login))
	}
	if req.NivelAcesso != 0 {
		if req.NivelAcesso < model.NivelAdministrador || req.NivelAcesso > model.NivelVendedor {
			return nil, apperr.Validacao("nivel_acesso", "nível de acesso inválido")
		}
		user.NivelAcesso = req.NivelAcesso
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return usuarioToResponse(user), nil
}

func (s *authService) AlterarSenha(ctx context.Context, id uint, req dto.AlterarSenhaRequest) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(req.SenhaAtual)); err != nil {
		return apperr.ErrCredenciaisInvalidas
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.SenhaNova), 12)
	if err != nil {
		return err
	}
	return s.repo.AtualizarSenha(ctx, id, string(hash))
}

func (s *authService) ListarUsuarios(ctx context.Context, filter dto.UsuarioFilter) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		resp = append(resp, *usuarioToResponse(&usuarios[i]))
	}
	return resp, nil
}

func (s *authService) DesativarUsuario(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *authService) ReativarUsuario(ctx context.Context, id uint) error {
	return s.repo.Reativar(ctx, id)
}

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

func (s *authService) montarLoginResponse(user *model.Usuario) (*dto.LoginResponse, error) {
	accessToken, err := s.gerarToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour, tokenTypeAccess)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.gerarToken(user, time.Duration(s.cfg.JWTRefreshHours)*time.Hour, tokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		Usuario:      *usuarioToResponse(user),
	}, nil
}

func (s *authService) gerarToken(user *model.Usuario, duration time.Duration, tipo string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":      user.ID,
		"login":        user.Login,
		"nivel_acesso": user.NivelAcesso,
		"token_type":   tipo,
		"exp":          time.Now().Add(duration).Unix(),
		"iat":          time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	resp := &dto.UsuarioResponse{
		ID:          u.ID,
		Nome:        u.Nome,
		Login:       u.Login,
		NivelAcesso: u.NivelAcesso,
		NivelNome:   u.NivelNome(),
		Ativo:       u.Ativo,
		DataCriacao: u.DataCriacao.Format(time.RFC3339),
	}
	if u.UltimoAcesso != nil {
		resp.UltimoAcesso = u.UltimoAcesso.Format(time.RFC3339)
	}
	return resp
}
