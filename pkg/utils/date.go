package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDatePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	brDatePattern    = regexp.MustCompile(`^\d{2}/\d{2}/\d{2,4}$`)
	shortDatePattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
)

// Layouts tentados como último recurso quando nenhum formato conhecido casa
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"02-01-2006",
}

// ParseDate interpreta datas de query string no formato YYYY-MM-DD.
// String vazia retorna a data zero (filtro não informado).
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.ParseInLocation(time.DateOnly, dateStr, time.Local)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseFlexibleDate interpreta as datas vindas das planilhas. Formatos aceitos,
// em ordem de prioridade: YYYY-MM-DD, DD/MM/YYYY, DD/MM/YY (século 2000) e
// DD/MM (ano assumido = defaultYear). Retorna nil quando a data é inválida.
func ParseFlexibleDate(raw string, defaultYear int) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if isoDatePattern.MatchString(s) {
		dt, err := time.ParseInLocation(time.DateOnly, s, time.Local)
		if err != nil {
			return nil
		}
		return &dt
	}

	if brDatePattern.MatchString(s) {
		parts := strings.Split(s, "/")
		day, _ := strconv.Atoi(parts[0])
		month, _ := strconv.Atoi(parts[1])
		year, _ := strconv.Atoi(parts[2])
		if year < 100 {
			year = 2000 + year
		}
		return buildDate(year, month, day)
	}

	if shortDatePattern.MatchString(s) {
		parts := strings.Split(s, "/")
		day, _ := strconv.Atoi(parts[0])
		month, _ := strconv.Atoi(parts[1])
		return buildDate(defaultYear, month, day)
	}

	for _, layout := range fallbackLayouts {
		if dt, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &dt
		}
	}

	return nil
}

// buildDate monta a data validando os componentes: time.Date normaliza
// estouros (mês 13 vira janeiro do ano seguinte), o que aqui deve ser
// tratado como data inválida.
func buildDate(year, month, day int) *time.Time {
	dt := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if dt.Year() != year || dt.Month() != time.Month(month) || dt.Day() != day {
		return nil
	}
	return &dt
}

// StartOfDay zera o horário da data (00:00:00.000).
func StartOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// EndOfDay posiciona a data no último milissegundo do dia (23:59:59.999).
func EndOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(999*time.Millisecond), d.Location())
}

// DayKey é a chave inteira de agrupamento por dia (timestamp do início do dia
// em milissegundos), independente do horário do registro.
func DayKey(d time.Time) int64 {
	return StartOfDay(d).UnixMilli()
}

// FormatShortBR formata a data como DD/MM para rótulos de série.
func FormatShortBR(d time.Time) string {
	return d.Format("02/01")
}

// FormatDateBR formata a data como DD/MM/YYYY para exibição em tabelas.
func FormatDateBR(d time.Time) string {
	return d.Format("02/01/2006")
}
