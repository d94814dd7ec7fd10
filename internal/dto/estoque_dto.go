package dto

type MovimentacaoRequest struct {
	Quantidade int    `json:"quantidade" validate:"required,gt=0"`
	Observacao string `json:"observacao"`
}

type MovimentacaoResponse struct {
	ID         uint   `json:"id"`
	ProdutoID  uint   `json:"produto_id"`
	Produto    string `json:"produto"` // rótulo com tamanho e cor
	Tipo       string `json:"tipo"`
	Quantidade int    `json:"quantidade"`
	Data       string `json:"data"`
	Observacao string `json:"observacao,omitempty"`
	UsuarioID  *uint  `json:"usuario_id,omitempty"`
}
