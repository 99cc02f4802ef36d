package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate(t *testing.T) {
	expected := time.Date(2025, time.November, 19, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		input string
	}{
		{name: "Formato ISO", input: "2025-11-19"},
		{name: "Formato brasileiro com ano completo", input: "19/11/2025"},
		{name: "Formato brasileiro com ano de dois dígitos", input: "19/11/25"},
		{name: "Dia e mês sem ano assume o ano de referência", input: "19/11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFlexibleDate(tt.input, 2025)
			require.NotNil(t, got)
			assert.True(t, expected.Equal(*got), "esperado %s, obtido %s", expected, got)
		})
	}
}

func TestParseFlexibleDate_Invalidas(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "String vazia", input: ""},
		{name: "Somente espaços", input: "   "},
		{name: "Mês inexistente", input: "31/13/2025"},
		{name: "Dia inexistente", input: "32/01/2025"},
		{name: "Texto livre sem formato reconhecido", input: "ontem"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ParseFlexibleDate(tt.input, 2025))
		})
	}
}

func TestParseFlexibleDate_FallbackRFC3339(t *testing.T) {
	got := ParseFlexibleDate("2025-11-19T10:30:00Z", 2025)
	require.NotNil(t, got)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.November, got.Month())
	assert.Equal(t, 19, got.Day())
}

func TestStartOfDayEndOfDay(t *testing.T) {
	d := time.Date(2025, time.November, 19, 14, 35, 12, 123456789, time.Local)

	start := StartOfDay(d)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, 0, start.Second())
	assert.Equal(t, 0, start.Nanosecond())

	end := EndOfDay(d)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.Equal(t, int(999*time.Millisecond), end.Nanosecond())

	assert.True(t, start.Before(end))
}

func TestDayKey(t *testing.T) {
	morning := time.Date(2025, time.November, 19, 8, 0, 0, 0, time.Local)
	evening := time.Date(2025, time.November, 19, 22, 45, 0, 0, time.Local)
	nextDay := time.Date(2025, time.November, 20, 0, 0, 0, 0, time.Local)

	assert.Equal(t, DayKey(morning), DayKey(evening), "horários diferentes no mesmo dia compartilham a chave")
	assert.Less(t, DayKey(evening), DayKey(nextDay))
}

func TestFormatBR(t *testing.T) {
	d := time.Date(2025, time.November, 9, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "09/11", FormatShortBR(d))
	assert.Equal(t, "09/11/2025", FormatDateBR(d))
}
