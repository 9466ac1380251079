package format

import (
	"strings"
	"unicode/utf8"
)

// OnlyDigits: Remove tudo que não for dígito
func OnlyDigits(s string) string {
	var out []rune
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	return string(out)
}

// ChooseFirstNonEmpty: Retorna o primeiro valor não vazio de uma lista
func ChooseFirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// OrDash devolve "-" quando o valor está vazio (campo indisponível no leiaute)
func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// Truncate corta s em n caracteres (runas) e acrescenta "..." quando houve corte.
func Truncate(s string, n int) string {
	if n < 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
