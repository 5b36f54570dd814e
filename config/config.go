package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
}

type ServerConfig struct {
	Port  string
	Env   string
	Debug bool
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	URL      string
}

// Load reads configuration from .env and the OS environment. Environment
// variables override the file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	v.AutomaticEnv()
	v.BindEnv("SERVER_PORT", "PORT") // fall back to PORT when SERVER_PORT is missing
	v.BindEnv("DATABASE_URL")
	v.SetDefault("SERVER_PORT", "8000")
	v.SetDefault("SERVER_ENV", "development")

	cfg := &Config{
		Server: ServerConfig{
			Port:  v.GetString("SERVER_PORT"),
			Env:   v.GetString("SERVER_ENV"),
			Debug: v.GetBool("DEBUG"),
		},
		Database: DatabaseConfig{
			Driver:   v.GetString("DB_DRIVER"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			URL:      v.GetString("DATABASE_URL"),
		},
	}

	log.Printf("Configuration loaded:")
	log.Printf("- Server Port: %s", cfg.Server.Port)
	log.Printf("- Server Env: %s", cfg.Server.Env)
	log.Printf("- Database Host: %s", cfg.Database.Host)
	log.Printf("- Database Name: %s", cfg.Database.Name)

	return cfg, nil
}
