package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converte o valor digitado pelo usuário em decimal.
// Aceita vírgula ou ponto como separador decimal.
func ParseAmount(input string) (decimal.Decimal, error) {
	normalized := strings.TrimSpace(input)
	normalized = strings.ReplaceAll(normalized, ",", ".")

	return decimal.NewFromString(normalized)
}

// FormatAmount formata um valor monetário com duas casas decimais
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
