package domain

import "time"

// RawRow é uma linha bruta do CSV: valores string indexados pelo nome
// original da coluna, preservando a ordem do cabeçalho. A ordem importa
// para que a resolução de colunas seja determinística.
type RawRow struct {
	Columns []string
	Values  map[string]string
}

// Get retorna o valor da coluna pelo nome original do cabeçalho.
func (r RawRow) Get(column string) string {
	return r.Values[column]
}

// SalesRecord é um registro normalizado da planilha consolidada de vendas.
// Linhas sem data válida ou sem canal são descartadas na normalização.
type SalesRecord struct {
	Date       time.Time `json:"date"`
	DateKey    int64     `json:"date_key"`
	DateLabel  string    `json:"date_label"` // DD/MM
	DateFull   string    `json:"date_full"`  // DD/MM/YYYY
	Channel    string    `json:"channel"`
	OrderCount int       `json:"order_count"`
	Revenue    float64   `json:"revenue"`
}

// InvestmentRecord é um registro normalizado da planilha de investimento em
// mídia. Não possui dimensão de canal; gasto e clientes novos ausentes
// degradam para zero em vez de invalidar a linha.
type InvestmentRecord struct {
	Date         time.Time `json:"date"`
	DateKey      int64     `json:"date_key"`
	DateLabel    string    `json:"date_label"`
	TotalSpend   float64   `json:"total_spend"`
	NewCustomers int       `json:"new_customers"`
}
