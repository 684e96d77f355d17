package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Voters  VotersConfig
	Users   UsersConfig
	Storage StorageConfig
	Admin   AdminConfig
}

type AppConfig struct {
	Port       string
	Env        string
	LogLevel   string
	CORSOrigin string
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// VotersConfig controls the voter listing page size, caching and the
// optional selected-voter detail.
type VotersConfig struct {
	PageSize              int
	ListCacheTTL          time.Duration
	FilterOptionsCacheTTL time.Duration
	SelectedEnabled       bool
}

type UsersConfig struct {
	PageSize int
}

type StorageConfig struct {
	PublicURL string
}

// AdminConfig is the account upserted by cmd/seed-admin.
type AdminConfig struct {
	Email    string
	Name     string
	Password string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_LOG_LEVEL", "info")
	viper.SetDefault("APP_CORS_ORIGIN", "*")
	viper.SetDefault("DB_AUTO_MIGRATE", true)
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("VOTERS_PAGE_SIZE", 15)
	viper.SetDefault("VOTERS_SELECTED_ENABLED", true)
	viper.SetDefault("USERS_PAGE_SIZE", 15)
	viper.SetDefault("STORAGE_PUBLIC_URL", "/storage")
	viper.SetDefault("ADMIN_NAME", "Administrator")

	if err := viper.ReadInConfig(); err != nil {
		// .env is optional
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port:       viper.GetString("APP_PORT"),
			Env:        viper.GetString("APP_ENV"),
			LogLevel:   viper.GetString("APP_LOG_LEVEL"),
			CORSOrigin: viper.GetString("APP_CORS_ORIGIN"),
		},
		DB: DBConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetString("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASSWORD"),
			Name:        viper.GetString("DB_NAME"),
			AutoMigrate: viper.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  durationOr("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: durationOr("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Voters: VotersConfig{
			PageSize:              viper.GetInt("VOTERS_PAGE_SIZE"),
			ListCacheTTL:          durationOr("VOTERS_LIST_CACHE_TTL", 60*time.Second),
			FilterOptionsCacheTTL: durationOr("VOTERS_FILTER_OPTIONS_CACHE_TTL", 15*time.Minute),
			SelectedEnabled:       viper.GetBool("VOTERS_SELECTED_ENABLED"),
		},
		Users: UsersConfig{
			PageSize: viper.GetInt("USERS_PAGE_SIZE"),
		},
		Storage: StorageConfig{
			PublicURL: viper.GetString("STORAGE_PUBLIC_URL"),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Name:     viper.GetString("ADMIN_NAME"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return config, nil
}

func durationOr(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(viper.GetString(key))
	if err != nil {
		return fallback
	}
	return d
}
