package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Upload   UploadConfig   `mapstructure:"upload"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" envconfig:"PORT" validate:"required,min=1,max=65535"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host" envconfig:"DB_HOST" validate:"required"`
	Port     int    `mapstructure:"port" envconfig:"DB_PORT" validate:"required,min=1,max=65535"`
	User     string `mapstructure:"user" envconfig:"DB_USER" validate:"required"`
	Password string `mapstructure:"password" envconfig:"DB_PASSWORD"`
	Name     string `mapstructure:"name" envconfig:"DB_NAME" validate:"required"`
	SSLMode  string `mapstructure:"sslmode" envconfig:"DB_SSLMODE" validate:"required"`
}

type UploadConfig struct {
	Dir     string `mapstructure:"dir" envconfig:"UPLOAD_DIR" validate:"required"`
	BaseURL string `mapstructure:"base_url" envconfig:"UPLOAD_BASE_URL" validate:"required,url"`
}

// AdminConfig holds the privileged credentials used only by the
// one-off createdb utility, never by the API server.
type AdminConfig struct {
	Host     string `envconfig:"DB_HOST"`
	Port     int    `envconfig:"DB_PORT"`
	User     string `envconfig:"PG_SUPERUSER"`
	Password string `envconfig:"PG_SUPERUSER_PASSWORD"`
	Database string `envconfig:"PG_ADMIN_DATABASE"`
}

// DSN builds a lib/pq connection string for the target database.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// DSN builds a lib/pq connection string for the administrative database.
func (c AdminConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Database,
	)
}

// LoadConfig reads config.yaml if present and then applies environment
// overrides. A missing config file is not an error; defaults cover
// local development.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 3000)
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.name", "healthcare_db")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("upload.dir", "uploads")
	viper.SetDefault("upload.base_url", "http://localhost:3000")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadAdminConfig reads the administrative connection settings from the
// environment. The createdb utility is the only consumer.
func LoadAdminConfig() (*AdminConfig, error) {
	cfg := AdminConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Database: "postgres",
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read admin config: %w", err)
	}
	return &cfg, nil
}
