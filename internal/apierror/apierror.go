// Package apierror define o envelope de erro da API. Toda resposta 4xx/5xx
// passa por aqui; detalhes internos (stack, erros de driver) ficam no log e
// nunca no corpo da resposta.
package apierror

// APIError é o envelope padrão de erro.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError agrupa as falhas campo a campo de uma requisição.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}
