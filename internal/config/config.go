package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Ads      Ads      `mapstructure:",squash"`
	TextGen  TextGen  `mapstructure:",squash"`
	Dispatch Dispatch `mapstructure:",squash"`
	Vault    Vault    `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Ads configura o cliente da plataforma de anúncios.
type Ads struct {
	BaseURL string `mapstructure:"ads_base_url"`
	Version string `mapstructure:"ads_version"`
	URL     string `mapstructure:"-"`
	// MaxRetries é o teto de retentativas para erros transitórios
	// (rate limit). Token expirado nunca é retentado.
	MaxRetries int `mapstructure:"ads_max_retries"`
	// BackoffBaseMillis é o atraso inicial do backoff exponencial.
	BackoffBaseMillis int `mapstructure:"ads_backoff_base_millis"`
	// MaxPages limita a paginação por cursor contra contas gigantes ou
	// respostas mal-comportadas.
	MaxPages int `mapstructure:"ads_max_pages"`
	// MetadataCacheTTLMinutes é o TTL do cache de metadados de conta.
	MetadataCacheTTLMinutes int `mapstructure:"ads_metadata_cache_ttl_minutes"`
	TimeoutSeconds          int `mapstructure:"ads_timeout_seconds"`
}

type TextGen struct {
	APIKey string `mapstructure:"textgen_api_key"`
	Model  string `mapstructure:"textgen_model"`
}

// Dispatch configura o loop de despacho de relatórios e sincronizações.
type Dispatch struct {
	Enabled      bool   `mapstructure:"dispatch_enabled"`
	CronSchedule string `mapstructure:"dispatch_cron"`
	// TriggerToken é o segredo compartilhado exigido no gatilho HTTP externo.
	TriggerToken         string  `mapstructure:"dispatch_trigger_token"`
	MaxConcurrentTenants int     `mapstructure:"dispatch_max_concurrent_tenants"`
	TenantTimeoutSeconds int     `mapstructure:"dispatch_tenant_timeout_seconds"`
	MinCampaignSpend     float64 `mapstructure:"dispatch_min_campaign_spend"`
}

type Vault struct {
	// EncryptionKey é a chave AES-256 em hexadecimal. Vazia habilita o modo
	// degradado em texto puro.
	EncryptionKey string `mapstructure:"vault_encryption_key"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
	// OperatorEmail e OperatorPasswordHash (bcrypt) autenticam o operador do
	// painel nas rotas administrativas.
	OperatorEmail        string `mapstructure:"auth_operator_email"`
	OperatorPasswordHash string `mapstructure:"auth_operator_password_hash"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/grandline")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("ADS_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("ADS_VERSION", "v22.0")
	viper.SetDefault("ADS_MAX_RETRIES", 2)            // Retentativas para rate limit
	viper.SetDefault("ADS_BACKOFF_BASE_MILLIS", 500)  // Base do backoff exponencial
	viper.SetDefault("ADS_MAX_PAGES", 20)             // Teto de páginas por consulta
	viper.SetDefault("ADS_METADATA_CACHE_TTL_MINUTES", 10)
	viper.SetDefault("ADS_TIMEOUT_SECONDS", 30)

	viper.SetDefault("TEXTGEN_API_KEY", "")
	viper.SetDefault("TEXTGEN_MODEL", "gemini-2.0-flash")

	viper.SetDefault("DISPATCH_ENABLED", false)
	viper.SetDefault("DISPATCH_CRON", "0 * * * *") // Toda hora cheia
	viper.SetDefault("DISPATCH_TRIGGER_TOKEN", "")
	viper.SetDefault("DISPATCH_MAX_CONCURRENT_TENANTS", 3)
	viper.SetDefault("DISPATCH_TENANT_TIMEOUT_SECONDS", 120)
	viper.SetDefault("DISPATCH_MIN_CAMPAIGN_SPEND", 1.0)

	viper.SetDefault("VAULT_ENCRYPTION_KEY", "")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_OPERATOR_EMAIL", "")
	viper.SetDefault("AUTH_OPERATOR_PASSWORD_HASH", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Ads.URL = config.Ads.BaseURL + "/" + config.Ads.Version

	config.Database.DSN = config.Database.Driver + "://" +
		config.Database.User + ":" +
		config.Database.Password + "@" +
		config.Database.URL

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
