// Package apperr defines the domain error taxonomy shared by all services.
// Handlers translate these into HTTP responses; nothing below the handler
// layer knows about status codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNaoEncontrado indicates the referenced record does not exist.
	ErrNaoEncontrado = errors.New("registro não encontrado")

	// ErrChaveDuplicada is the translation of a storage-level unique
	// violation (código de barras, CPF/CNPJ ou login repetido).
	ErrChaveDuplicada = errors.New("registro duplicado")

	// ErrEstoqueInsuficiente means the requested quantity exceeds the
	// product's current stock. Business rule, not a defect.
	ErrEstoqueInsuficiente = errors.New("estoque insuficiente")

	// ErrVendaJaCancelada guards the terminal state transition: cancelling
	// an already-cancelled sale is an error, never a no-op.
	ErrVendaJaCancelada = errors.New("esta venda já está cancelada")

	// ErrVendaSemItens rejects a sale with no line items.
	ErrVendaSemItens = errors.New("a venda deve ter pelo menos um item")

	// ErrQuantidadeInvalida rejects non-positive quantities on stock
	// movements and sale items.
	ErrQuantidadeInvalida = errors.New("a quantidade deve ser maior que zero")

	// ErrCredenciaisInvalidas is returned on failed authentication. The
	// message is deliberately identical for unknown login and wrong password.
	ErrCredenciaisInvalidas = errors.New("login ou senha inválidos")

	// ErrValidacao is the sentinel every ValidacaoError unwraps to.
	ErrValidacao = errors.New("dados inválidos")
)

// ValidacaoError carries a per-field validation failure raised before any
// storage access. Never partially applied.
type ValidacaoError struct {
	Campo  string
	Motivo string
}

func (e *ValidacaoError) Error() string {
	return fmt.Sprintf("%s: %s", e.Campo, e.Motivo)
}

func (e *ValidacaoError) Unwrap() error { return ErrValidacao }

// Validacao builds a ValidacaoError.
func Validacao(campo, motivo string) error {
	return &ValidacaoError{Campo: campo, Motivo: motivo}
}

// EstoqueInsuficienteError identifies which product could not satisfy the
// requested quantity. errors.Is(err, ErrEstoqueInsuficiente) matches it.
type EstoqueInsuficienteError struct {
	ProdutoID  uint
	Disponivel int
	Solicitado int
}

func (e *EstoqueInsuficienteError) Error() string {
	return fmt.Sprintf("estoque insuficiente para o produto %d: disponível %d, solicitado %d",
		e.ProdutoID, e.Disponivel, e.Solicitado)
}

func (e *EstoqueInsuficienteError) Unwrap() error { return ErrEstoqueInsuficiente }

// EstoqueInsuficiente builds an EstoqueInsuficienteError.
func EstoqueInsuficiente(produtoID uint, disponivel, solicitado int) error {
	return &EstoqueInsuficienteError{ProdutoID: produtoID, Disponivel: disponivel, Solicitado: solicitado}
}

// ArmazenamentoError wraps any unexpected persistence failure. The enclosing
// transaction has already been rolled back when one of these surfaces.
type ArmazenamentoError struct {
	Op  string
	Err error
}

func (e *ArmazenamentoError) Error() string {
	return fmt.Sprintf("erro de armazenamento em %s: %v", e.Op, e.Err)
}

func (e *ArmazenamentoError) Unwrap() error { return e.Err }

// Armazenamento wraps err as an ArmazenamentoError, passing nil through.
func Armazenamento(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ArmazenamentoError{Op: op, Err: err}
}

// HTTPStatus maps a domain error onto the status code handlers should write.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNaoEncontrado):
		return http.StatusNotFound
	case errors.Is(err, ErrChaveDuplicada):
		return http.StatusConflict
	case errors.Is(err, ErrEstoqueInsuficiente),
		errors.Is(err, ErrVendaJaCancelada),
		errors.Is(err, ErrVendaSemItens),
		errors.Is(err, ErrQuantidadeInvalida):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrCredenciaisInvalidas):
		return http.StatusUnauthorized
	case errors.Is(err, ErrValidacao):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
