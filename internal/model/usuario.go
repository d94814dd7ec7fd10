package model

import "time"

// Níveis de acesso. O número menor tem mais privilégio.
const (
	NivelAdministrador = 1
	NivelGerente       = 2
	NivelVendedor      = 3
)

// Usuario stores system users with role-based access.
// Login é sempre normalizado para minúsculas antes de persistir, então a
// unicidade do índice já cobre colisões de caixa ("Admin" vs "admin").
type Usuario struct {
	ID           uint   `gorm:"primaryKey"`
	Nome         string `gorm:"not null"`
	Login        string `gorm:"uniqueIndex;not null"`
	SenhaHash    string `gorm:"not null"`
	NivelAcesso  int    `gorm:"not null;default:3"`
	Ativo        bool   `gorm:"not null;default:true"`
	DataCriacao  time.Time `gorm:"autoCreateTime"`
	UltimoAcesso *time.Time
}

func (Usuario) TableName() string { return "usuarios" }

// NivelNome devolve o nome legível do nível de acesso.
func (u *Usuario) NivelNome() string {
	switch u.NivelAcesso {
	case NivelAdministrador:
		return "Administrador"
	case NivelGerente:
		return "Gerente"
	case NivelVendedor:
		return "Vendedor"
	default:
		return "Desconhecido"
	}
}
