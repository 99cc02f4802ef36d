package sheetsclient

import (
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/performance-dashboard-api/internal/config"
	"github.com/vfg2006/performance-dashboard-api/internal/domain"
)

type Client interface {
	FetchRows(ctx context.Context, url string) ([]domain.RawRow, error)
}

type SheetsClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria o cliente HTTP para os CSVs publicados das planilhas.
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Feeds.FetchTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SheetsClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

// FetchRows baixa o CSV publicado e devolve as linhas brutas como pares
// nome-da-coluna/valor, preservando a ordem do cabeçalho. Os nomes das
// colunas não são confiáveis; a resolução fica a cargo da normalização.
func (c *SheetsClient) FetchRows(ctx context.Context, url string) ([]domain.RawRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição do feed")
	}

	req.Header.Set("Accept", "text/csv")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar o feed CSV")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("requisição do feed falhou com status: %s", resp.Status)
	}

	rows, err := parseCSV(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao interpretar o CSV do feed")
	}

	return rows, nil
}

// parseCSV lê o documento com cabeçalho na primeira linha. Linhas vazias são
// ignoradas; linhas mais curtas que o cabeçalho valem para as colunas que
// possuem, as demais ficam em branco.
func parseCSV(r io.Reader) ([]domain.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = false

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("feed CSV vazio")
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o cabeçalho")
	}

	var rows []domain.RawRow

	line := 1
	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "erro na linha %d", line)
		}

		if isEmptyRecord(record) {
			continue
		}

		row := domain.RawRow{
			Columns: header,
			Values:  make(map[string]string, len(header)),
		}
		for i, col := range header {
			if i < len(record) {
				row.Values[col] = record[i]
			} else {
				row.Values[col] = ""
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func isEmptyRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
