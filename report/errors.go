package report

import (
	"errors"
	"fmt"
)

var (
	// ErrDateParse é devolvido (via DateParseError) quando a validade de uma licença
	// está ausente ou não é uma data. O relatório inteiro falha: a linha não é descartada.
	ErrDateParse = errors.New("validade inválida")

	// ErrEmptyResult não é fatal: a visão está vazia e a exportação fica suprimida.
	ErrEmptyResult = errors.New("nenhum registro encontrado")
)

type DateParseError struct {
	Number string
	Raw    string
	Err    error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("licença %q: validade %q: %v", e.Number, e.Raw, e.Err)
}

func (e *DateParseError) Unwrap() error { return e.Err }

func (e *DateParseError) Is(target error) bool { return target == ErrDateParse }
