package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// Construído uma única vez no arranque e passado por referência — nenhum
// estado global de caminho de banco existe fora desta struct.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database — arquivo SQLite local
	DBPath string `mapstructure:"DB_PATH"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`
	JWTRefreshHours    int    `mapstructure:"JWT_REFRESH_HOURS"`

	// Atualizador
	AppVersion string `mapstructure:"APP_VERSION"`
	UpdateURL  string `mapstructure:"UPDATE_URL"`

	// Recibos
	PDFStoragePath string `mapstructure:"PDF_STORAGE_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_PATH", "estoque.db")
	viper.SetDefault("JWT_SECRET", "dev-secret-trocar-em-producao")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("JWT_REFRESH_HOURS", 24)
	viper.SetDefault("APP_VERSION", "1.0.0")
	viper.SetDefault("UPDATE_URL", "https://api.github.com/repos/FrankSCarvalho/sistema_pdv/releases/latest")
	viper.SetDefault("PDF_STORAGE_PATH", "/tmp/sistema-pdv/recibos")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
