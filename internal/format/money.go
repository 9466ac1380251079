package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal converte o texto do XML em decimal. Vazio ou inválido vira zero.
func ParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseNullDecimal é como ParseDecimal, mas marca ausência/erro como inválido.
func ParseNullDecimal(s string) decimal.NullDecimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// Number formata com separador de milhar "." e decimal "," (2 casas).
func Number(d decimal.Decimal) string {
	s := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	return sign + b.String() + "," + frac
}

// Currency: R$ 1.234,56
func Currency(d decimal.Decimal) string {
	return "R$ " + Number(d)
}

// Percent: 12,34 %
func Percent(d decimal.Decimal) string {
	return Number(d) + " %"
}

// NullCurrency devolve "-" para valores ausentes
func NullCurrency(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return Currency(d.Decimal)
}

// NullPercent devolve "-" para percentuais ausentes
func NullPercent(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return Percent(d.Decimal)
}
