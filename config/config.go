package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	App AppConfig
	DB  DBConfig
}

type AppConfig struct {
	Env string
}

type DBConfig struct {
	// URI, when set, takes precedence over the individual fields below.
	URI      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string

	MigrationsPath string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine; everything can come from the environment.
	_ = viper.ReadInConfig()

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "postgres")
	viper.SetDefault("MIGRATIONS_PATH", "db/migrations")

	config := &Config{
		App: AppConfig{
			Env: viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			URI:            viper.GetString("DATABASE_URI"),
			Host:           viper.GetString("DB_HOST"),
			Port:           viper.GetString("DB_PORT"),
			User:           viper.GetString("DB_USER"),
			Password:       viper.GetString("DB_PASSWORD"),
			Name:           viper.GetString("DB_NAME"),
			MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
		},
	}

	return config, nil
}

// URL returns the connection string in URL form, as expected by golang-migrate.
func (c DBConfig) URL() string {
	if c.URI != "" {
		return c.URI
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name,
	)
}
