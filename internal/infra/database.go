package infra

import (
	"fmt"
	"strings"
	"time"

	"github.com/FrankSCarvalho/sistema-pdv/internal/model"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the embedded SQLite file at path, creates the schema on
// first use and seeds the bootstrap admin. Foreign-key enforcement is OFF by
// default in SQLite, so it is enabled explicitly via the DSN on every
// connection the pool hands out.
func NewDatabase(path string) (*gorm.DB, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on"
	} else {
		dsn += "&_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true, // unique violations surface as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, fmt.Errorf("abrir banco %s: %w", path, err)
	}

	// Um único processo local acessa o arquivo; uma conexão serializa tudo
	// e evita SQLITE_BUSY entre transações concorrentes do pool.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.Produto{},
		&model.Cliente{},
		&model.Usuario{},
		&model.Venda{},
		&model.ItemVenda{},
		&model.MovimentacaoEstoque{},
	); err != nil {
		return nil, fmt.Errorf("migrar esquema: %w", err)
	}

	if err := seedAdminPadrao(db); err != nil {
		return nil, fmt.Errorf("criar admin padrão: %w", err)
	}

	return db, nil
}

// seedAdminPadrao cria o usuário administrador inicial quando a tabela de
// usuários está vazia (login "admin"). A senha padrão deve ser trocada no
// primeiro acesso.
func seedAdminPadrao(db *gorm.DB) error {
	var total int64
	if err := db.Model(&model.Usuario{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 12)
	if err != nil {
		return err
	}
	admin := &model.Usuario{
		Nome:        "Administrador",
		Login:       "admin",
		SenhaHash:   string(hash),
		NivelAcesso: model.NivelAdministrador,
		Ativo:       true,
		DataCriacao: time.Now(),
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	log.Warn().Msg("usuário admin padrão criado (login: admin) — troque a senha")
	return nil
}
