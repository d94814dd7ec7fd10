// Package repository implementa o acesso a dados sobre GORM/SQLite.
// Serviços dependem das interfaces, não das implementações concretas,
// permitindo testes de unidade com stubs em memória.
package repository

import (
	"errors"
	"strings"

	"github.com/FrankSCarvalho/sistema-pdv/internal/apperr"

	"gorm.io/gorm"
)

// translate converte erros crus do armazenamento para a taxonomia de domínio.
// Violações de unicidade viram ErrChaveDuplicada (o chamador decide qual
// chave: código de barras, CPF/CNPJ ou login); registro ausente vira
// ErrNaoEncontrado; o resto é encapsulado como erro de armazenamento.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrNaoEncontrado
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return apperr.ErrChaveDuplicada
	default:
		return apperr.Armazenamento(op, err)
	}
}
