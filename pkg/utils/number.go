package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseLocalizedNumber converte valores numéricos vindos das planilhas
// (formato pt-BR) em float64. Aceita "R$ 1.234,56", "1234,56", "1234.56".
// Valores vazios ou inválidos viram 0.
func ParseLocalizedNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	// Remove símbolo de moeda e espaços internos
	s = strings.NewReplacer("R$", "", "$", "", " ", "", "\t", "").Replace(s)

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		// 1.234,56 -> ponto é separador de milhar
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}

	// Descarta qualquer sobra que não seja dígito, ponto ou sinal
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}

	return n
}

// SafeDiv divide a por b retornando 0 quando o divisor é 0,
// evitando NaN/Inf nas métricas derivadas.
func SafeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
