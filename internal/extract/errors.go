package extract

import (
	"errors"
	"fmt"
)

// Erros sentinela. Use errors.Is para identificar o tipo de falha.
var (
	ErrParse                = errors.New("nfse: XML inválido")
	ErrMissingRequiredField = errors.New("nfse: campo obrigatório ausente")
)

// ParseError indica XML mal formado ou ausência do elemento raiz da NFS-e.
type ParseError struct {
	Reason string
	Err    error // erro do parser XML, quando houver
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("falha ao parsear XML da NFS-e: %s: %v", e.Reason, e.Err)
	}
	return "falha ao parsear XML da NFS-e: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// MissingRequiredFieldError indica que um campo obrigatório não está no XML.
type MissingRequiredFieldError struct {
	Field string // ex: "infNFSe/@Id"
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("campo obrigatório ausente no XML da NFS-e: %s", e.Field)
}

func (e *MissingRequiredFieldError) Is(target error) bool {
	return target == ErrMissingRequiredField
}
