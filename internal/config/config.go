package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/performance-dashboard-api/internal/domain"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Feeds       Feeds       `mapstructure:",squash"`
	Dashboard   Dashboard   `mapstructure:",squash"`
	FeedRefresh FeedRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Feeds aponta para os CSVs publicados das planilhas (vendas consolidadas e
// investimento em mídia).
type Feeds struct {
	ConsolidatedCSVURL  string `mapstructure:"consolidated_csv_url"`
	InvestmentCSVURL    string `mapstructure:"investment_csv_url"`
	FetchTimeoutSeconds int    `mapstructure:"feed_fetch_timeout_seconds"`
}

// Dashboard concentra as regras de interpretação dos dados: ano assumido
// para datas sem ano (DD/MM) e a lista canônica de canais do filtro.
type Dashboard struct {
	ReportYear        int      `mapstructure:"report_year"`
	CanonicalChannels []string `mapstructure:"canonical_channels"`
}

// FeedRefresh controla o agendador de recarga periódica dos feeds.
type FeedRefresh struct {
	CronSchedule string `mapstructure:"feed_refresh_cron"`
	Enabled      bool   `mapstructure:"feed_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("CONSOLIDATED_CSV_URL", "")
	viper.SetDefault("INVESTMENT_CSV_URL", "")
	viper.SetDefault("FEED_FETCH_TIMEOUT_SECONDS", 30)

	viper.SetDefault("REPORT_YEAR", 2025)
	viper.SetDefault("CANONICAL_CHANNELS", "Site,Dream Team,Marketplace,Social")

	// Defaults para recarga periódica dos feeds
	viper.SetDefault("FEED_REFRESH_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("FEED_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if len(config.Dashboard.CanonicalChannels) == 0 {
		config.Dashboard.CanonicalChannels = domain.DefaultCanonicalChannels
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
