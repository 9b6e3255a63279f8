package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Nomes dos backends de cache suportados
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// DefaultSourceURL é a planilha de campanhas usada quando nenhuma fonte é configurada
const DefaultSourceURL = "https://raw.githubusercontent.com/hoerique/Data-insights-app/main/campanhas_Meta_ads.csv"

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	DataSource     DataSource     `mapstructure:",squash"`
	Cache          Cache          `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_enabled"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type DataSource struct {
	DefaultURL     string        `mapstructure:"datasource_default_url"`
	AllowedURLs    []string      `mapstructure:"datasource_allowed_urls"`
	RequestTimeout time.Duration `mapstructure:"datasource_request_timeout"`
}

type Cache struct {
	Backend string        `mapstructure:"cache_backend"`
	TTL     time.Duration `mapstructure:"cache_ttl"`
}

type Redis struct {
	URL      string `mapstructure:"redis_url"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type DatasetRefresh struct {
	CronSchedule      string `mapstructure:"dataset_refresh_cron"`
	MaxConcurrentJobs int    `mapstructure:"dataset_refresh_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"dataset_refresh_enabled"`
}

// Sources retorna a fonte padrão seguida das fontes permitidas, sem repetições
func (d DataSource) Sources() []string {
	seen := make(map[string]bool)
	sources := make([]string, 0, len(d.AllowedURLs)+1)

	for _, source := range append([]string{d.DefaultURL}, d.AllowedURLs...) {
		if source == "" || seen[source] {
			continue
		}
		seen[source] = true
		sources = append(sources, source)
	}

	return sources
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaigns?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DATASOURCE_DEFAULT_URL", DefaultSourceURL)
	viper.SetDefault("DATASOURCE_ALLOWED_URLS", "")
	viper.SetDefault("DATASOURCE_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("CACHE_BACKEND", CacheBackendMemory)
	viper.SetDefault("CACHE_TTL", "10m") // 0 mantém os dados até invalidação explícita

	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	// Aquecimento do cache: a cada 30 minutos, 2 fontes em paralelo
	viper.SetDefault("DATASET_REFRESH_CRON", "*/30 * * * *")
	viper.SetDefault("DATASET_REFRESH_MAX_CONCURRENT_JOBS", 2)
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	if config.DatasetRefresh.MaxConcurrentJobs <= 0 {
		config.DatasetRefresh.MaxConcurrentJobs = 1
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
