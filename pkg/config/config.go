// Файл: pkg/config/config.go
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

type AuthConfig struct {
	// Токен, который админ-панель шлёт в заголовке Authorization.
	// Контракт API фиксирует значение "admin" по умолчанию.
	Token string

	AdminUsername string
	AdminPassword string
}

type SeedConfig struct {
	DemoData bool
}

type Config struct {
	Server ServerConfig
	Auth   AuthConfig
	Seed   SeedConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Auth: AuthConfig{
			Token:         getEnv("API_TOKEN", "admin"),
			AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		Seed: SeedConfig{
			DemoData: getEnvBool("SEED_DEMO_DATA", false),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
