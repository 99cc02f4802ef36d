package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelSelection_Toggle(t *testing.T) {
	s := NewChannelSelection([]string{"Site", "Social"})

	assert.ElementsMatch(t, []string{"Site", "Social"}, s.Selected())

	assert.True(t, s.Toggle("Site"), "desmarcar canal com outro ainda ativo")
	assert.Equal(t, []string{"Social"}, s.Selected())

	assert.False(t, s.Toggle("Social"), "desmarcar o último canal é no-op")
	assert.Equal(t, []string{"Social"}, s.Selected(), "seleção permanece inalterada")

	assert.True(t, s.Toggle("Site"), "remarcar canal")
	assert.Equal(t, []string{"Site", "Social"}, s.Selected())

	assert.False(t, s.Toggle("Inexistente"), "canal fora da lista canônica é ignorado")
}

func TestChannelSelection_Reset(t *testing.T) {
	s := NewChannelSelection([]string{"Site", "Dream Team", "Marketplace"})
	s.Toggle("Site")
	s.Toggle("Marketplace")

	s.Reset()
	assert.Equal(t, []string{"Site", "Dream Team", "Marketplace"}, s.Selected())
}

func TestChannelSelection_ReplaceVazioIgnorado(t *testing.T) {
	s := NewChannelSelection([]string{"Site", "Social"})

	s.Replace(nil)
	assert.ElementsMatch(t, []string{"Site", "Social"}, s.Selected())

	s.Replace([]string{"Social"})
	assert.Equal(t, []string{"Social"}, s.Selected())
}

func TestReconcileChannels(t *testing.T) {
	canonical := []string{"Site", "Dream Team", "Marketplace", "Social"}

	tests := []struct {
		name     string
		channels []string
		expected []string
	}{
		{
			name:     "Casa sem diferenciar maiúsculas",
			channels: []string{"site", "SOCIAL", "social"},
			expected: []string{"Site", "Social"},
		},
		{
			name:     "Nenhum canal casa devolve a lista completa",
			channels: []string{"WhatsApp", "Loja Física"},
			expected: canonical,
		},
		{
			name:     "Sem registros devolve a lista completa",
			channels: nil,
			expected: canonical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]*SalesRecord, 0, len(tt.channels))
			for _, ch := range tt.channels {
				records = append(records, &SalesRecord{Channel: ch})
			}

			assert.Equal(t, tt.expected, ReconcileChannels(records, canonical))
		})
	}
}
