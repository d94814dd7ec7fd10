package repository

import (
	"context"
	"time"

	"github.com/FrankSCarvalho/sistema-pdv/internal/apperr"
	"github.com/FrankSCarvalho/sistema-pdv/internal/dto"
	"github.com/FrankSCarvalho/sistema-pdv/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByID(ctx context.Context, id uint) (*model.Usuario, error)
	// FindByLogin busca apenas usuários ativos — logins desativados não
	// autenticam nem colidem em buscas de chave única.
	FindByLogin(ctx context.Context, login string) (*model.Usuario, error)
	List(ctx context.Context, filter dto.UsuarioFilter) ([]model.Usuario, error)
	Update(ctx context.Context, u *model.Usuario) error
	AtualizarSenha(ctx context.Context, id uint, senhaHash string) error
	AtualizarUltimoAcesso(ctx context.Context, id uint, quando time.Time) error
	SoftDelete(ctx context.Context, id uint) error
	Reativar(ctx context.Context, id uint) error
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return translate("usuarios.create", r.db.WithContext(ctx).Create(u).Error)
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uint) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate("usuarios.find", err)
	}
	return &u, nil
}

func (r *usuarioRepo) FindByLogin(ctx context.Context, login string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Where("login = ? AND ativo = ?", login, true).
		First(&u).Error
	if err != nil {
		return nil, translate("usuarios.find_login", err)
	}
	return &u, nil
}

func (r *usuarioRepo) List(ctx context.Context, filter dto.UsuarioFilter) ([]model.Usuario, error) {
	var usuarios []model.Usuario

	q := r.db.WithContext(ctx).Model(&model.Usuario{})
	if !filter.IncluirInativos {
		q = q.Where("ativo = ?", true)
	}
	if filter.Nome != "" {
		q = q.Where("nome LIKE ?", "%"+filter.Nome+"%")
	}

	if err := q.Order("nome ASC").Find(&usuarios).Error; err != nil {
		return nil, translate("usuarios.list", err)
	}
	return usuarios, nil
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	res := r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"nome":         u.Nome,
			"login":        u.Login,
			"nivel_acesso": u.NivelAcesso,
		})
	if res.Error != nil {
		return translate("usuarios.update", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNaoEncontrado
	}
	return nil
}

func (r *usuarioRepo) AtualizarSenha(ctx context.Context, id uint, senhaHash string) error {
	res := r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("id = ?", id).
		Update("senha_hash", senhaHash)
	if res.Error != nil {
		return translate("usuarios.senha", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNaoEncontrado
	}
	return nil
}

func (r *usuarioRepo) AtualizarUltimoAcesso(ctx context.Context, id uint, quando time.Time) error {
	return translate("usuarios.ultimo_acesso",
		r.db.WithContext(ctx).Model(&model.Usuario{}).
			Where("id = ?", id).
			Update("ultimo_acesso", quando).Error)
}

func (r *usuarioRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.setAtivo(ctx, id, false)
}

func (r *usuarioRepo) Reativar(ctx context.Context, id uint) error {
	return r.setAtivo(ctx, id, true)
}

func (r *usuarioRepo) setAtivo(ctx context.Context, id uint, ativo bool) error {
	res := r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("id = ?", id).
		Update("ativo", ativo)
	if res.Error != nil {
		return translate("usuarios.ativo", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNaoEncontrado
	}
	return nil
}
