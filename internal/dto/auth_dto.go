package dto

type LoginRequest struct {
	Login string `json:"login" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	Usuario      UsuarioResponse `json:"usuario"`
}

type CriarUsuarioRequest struct {
	Nome        string `json:"nome" validate:"required"`
	Login       string `json:"login" validate:"required,min=3"`
	Senha       string `json:"senha" validate:"required,min=6"`
	NivelAcesso int    `json:"nivel_acesso" validate:"required,min=1,max=3"`
}

type AtualizarUsuarioRequest struct {
	Nome        string `json:"nome"`
	Login       string `json:"login"`
	NivelAcesso int    `json:"nivel_acesso" validate:"omitempty,min=1,max=3"`
}

type AlterarSenhaRequest struct {
	SenhaAtual string `json:"senha_atual" validate:"required"`
	SenhaNova  string `json:"senha_nova" validate:"required,min=6"`
}

type UsuarioFilter struct {
	Nome             string `form:"nome"`
	IncluirInativos  bool   `form:"incluir_inativos"`
}

type UsuarioResponse struct {
	ID           uint   `json:"id"`
	Nome         string `json:"nome"`
	Login        string `json:"login"`
	NivelAcesso  int    `json:"nivel_acesso"`
	NivelNome    string `json:"nivel_nome"`
	Ativo        bool   `json:"ativo"`
	DataCriacao  string `json:"data_criacao"`
	UltimoAcesso string `json:"ultimo_acesso,omitempty"`
}
