package normalizing

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vfg2006/performance-dashboard-api/internal/domain"
)

var (
	accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	nonWordRuns    = regexp.MustCompile(`[^\w]+`)
	underscoreRuns = regexp.MustCompile(`_+`)
)

// NormalizeKey reduz o nome de uma coluna à forma canônica usada no
// casamento: minúsculas, sem acentos, sequências de caracteres não
// alfanuméricos colapsadas em um único underscore.
// "Qtd  Pedidos " e "qtd_pedidos" produzem a mesma chave.
func NormalizeKey(s string) string {
	out := strings.ToLower(strings.TrimSpace(s))

	if stripped, _, err := transform.String(accentStripper, out); err == nil {
		out = stripped
	}

	out = nonWordRuns.ReplaceAllString(out, "_")
	out = underscoreRuns.ReplaceAllString(out, "_")

	return out
}

// ResolveField encontra o valor da primeira coluna da linha que casa com um
// dos nomes lógicos candidatos. Primeiro passo: igualdade entre as formas
// canônicas, candidato a candidato na ordem dada (cada candidato é testado
// contra todas as colunas antes do próximo). Segundo passo, somente se o
// primeiro não encontrou nada: a forma canônica da coluna contém a do
// candidato. As planilhas variam o nome das colunas ("Faturamento",
// "Receita", "valor"); isso absorve a deriva sem fixar um esquema único.
func ResolveField(row domain.RawRow, candidates []string) (string, bool) {
	normalized := make([]string, len(row.Columns))
	for i, col := range row.Columns {
		normalized[i] = NormalizeKey(col)
	}

	for _, candidate := range candidates {
		cc := NormalizeKey(candidate)
		for i, col := range row.Columns {
			if normalized[i] == cc {
				return row.Get(col), true
			}
		}
	}

	for _, candidate := range candidates {
		cc := NormalizeKey(candidate)
		for i, col := range row.Columns {
			if strings.Contains(normalized[i], cc) {
				return row.Get(col), true
			}
		}
	}

	return "", false
}
