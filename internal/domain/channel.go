package domain

import "strings"

// DefaultCanonicalChannels são os canais oficiais de venda usados pelo
// filtro do dashboard quando nenhuma configuração é informada.
var DefaultCanonicalChannels = []string{"Site", "Dream Team", "Marketplace", "Social"}

// ChannelSelection mantém a seleção corrente de canais sobre a lista
// canônica. A seleção nunca fica vazia: remover o último canal é no-op.
// O tipo não é thread-safe; o chamador coordena o acesso.
type ChannelSelection struct {
	canonical []string
	selected  map[string]bool
}

// NewChannelSelection cria uma seleção com todos os canais canônicos ativos.
func NewChannelSelection(canonical []string) *ChannelSelection {
	s := &ChannelSelection{
		canonical: append([]string(nil), canonical...),
		selected:  make(map[string]bool, len(canonical)),
	}
	for _, ch := range canonical {
		s.selected[ch] = true
	}
	return s
}

// Canonical retorna a lista canônica na ordem configurada.
func (s *ChannelSelection) Canonical() []string {
	return append([]string(nil), s.canonical...)
}

// Selected retorna os canais selecionados na ordem canônica.
func (s *ChannelSelection) Selected() []string {
	out := make([]string, 0, len(s.selected))
	for _, ch := range s.canonical {
		if s.selected[ch] {
			out = append(out, ch)
		}
	}
	return out
}

// Has indica se o canal está selecionado.
func (s *ChannelSelection) Has(channel string) bool {
	return s.selected[channel]
}

// Toggle alterna a seleção de um canal canônico. Retorna false sem alterar
// nada quando o canal não é canônico ou quando a remoção deixaria a seleção
// vazia.
func (s *ChannelSelection) Toggle(channel string) bool {
	if !s.isCanonical(channel) {
		return false
	}

	if s.selected[channel] {
		if len(s.Selected()) == 1 {
			// Nunca deixa a seleção vazia
			return false
		}
		delete(s.selected, channel)
		return true
	}

	s.selected[channel] = true
	return true
}

// Reset volta a seleção para todos os canais canônicos.
func (s *ChannelSelection) Reset() {
	s.selected = make(map[string]bool, len(s.canonical))
	for _, ch := range s.canonical {
		s.selected[ch] = true
	}
}

// Replace substitui a seleção corrente. Conjuntos vazios são ignorados,
// preservando a invariante de seleção não vazia.
func (s *ChannelSelection) Replace(channels []string) {
	if len(channels) == 0 {
		return
	}

	next := make(map[string]bool, len(channels))
	for _, ch := range channels {
		next[ch] = true
	}
	s.selected = next
}

func (s *ChannelSelection) isCanonical(channel string) bool {
	for _, ch := range s.canonical {
		if ch == channel {
			return true
		}
	}
	return false
}

// ReconcileChannels cruza os canais presentes nos registros de vendas com a
// lista canônica (comparação sem diferenciar maiúsculas) e devolve a seleção
// padrão após um recarregamento: os canônicos encontrados nos dados ou, se
// nenhum casar, a lista canônica completa.
func ReconcileChannels(records []*SalesRecord, canonical []string) []string {
	seen := make(map[string]bool)
	for _, r := range records {
		seen[strings.ToLower(r.Channel)] = true
	}

	matched := make([]string, 0, len(canonical))
	for _, ch := range canonical {
		if seen[strings.ToLower(ch)] {
			matched = append(matched, ch)
		}
	}

	if len(matched) == 0 {
		return append([]string(nil), canonical...)
	}

	return matched
}
