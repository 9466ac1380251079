package format

import "regexp"

// Máscaras de exibição. Todas são totais: entradas fora do formato esperado
// voltam sem máscara (apenas com os dígitos, quando a máscara limpa a entrada).

var (
	dateRegex     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	dateTimeRegex = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})`)
)

// TaxID formata CNPJ (14 dígitos) ou CPF (11 dígitos).
//
//	TaxID("12345678000195") // 12.345.678/0001-95
//	TaxID("12345678909")    // 123.456.789-09
func TaxID(value string) string {
	d := OnlyDigits(value)
	switch len(d) {
	case 14:
		return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
	case 11:
		return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
	}
	return d
}

// PostalCode formata o CEP: NNNNN-NNN
func PostalCode(value string) string {
	d := OnlyDigits(value)
	if len(d) == 8 {
		return d[0:5] + "-" + d[5:8]
	}
	return d
}

// Phone formata telefones com DDD (celular com 11 dígitos, fixo com 10)
func Phone(value string) string {
	d := OnlyDigits(value)
	switch len(d) {
	case 11:
		return "(" + d[0:2] + ") " + d[2:7] + "-" + d[7:11]
	case 10:
		return "(" + d[0:2] + ") " + d[2:6] + "-" + d[6:10]
	}
	return d
}

// Date converte o prefixo AAAA-MM-DD para DD/MM/AAAA
func Date(value string) string {
	m := dateRegex.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	return m[3] + "/" + m[2] + "/" + m[1]
}

// DateTime converte o prefixo AAAA-MM-DDTHH:MM:SS para DD/MM/AAAA HH:MM:SS.
// Fuso horário e frações de segundo são descartados.
func DateTime(value string) string {
	m := dateTimeRegex.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	return m[3] + "/" + m[2] + "/" + m[1] + " " + m[4] + ":" + m[5] + ":" + m[6]
}

// ClassificationCode formata o código de tributação nacional: NN.NN.NN
func ClassificationCode(value string) string {
	d := OnlyDigits(value)
	if len(d) == 6 {
		return d[0:2] + "." + d[2:4] + "." + d[4:6]
	}
	return d
}
