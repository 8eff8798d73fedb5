package config

import "os"

// Config reúne toda a configuração lida do ambiente. O sistema é
// single-tenant e roda localmente, então toda variável tem um padrão
// utilizável sem .env algum.
type Config struct {
	Porta string

	JWTSecret  string
	AdminNome  string
	AdminEmail string
	AdminSenha string

	// "sqlite" (padrão, arquivo local) ou "postgres"
	DBDriver   string
	SQLitePath string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// URL de webhook para avisos de veículo disponível; vazio desativa
	WebhookURL string
}

func Load() *Config {
	return &Config{
		Porta: getEnv("APP_PORT", "8080"),

		JWTSecret:  getEnv("JWT_SECRET", "agenda-dev-secret"),
		AdminNome:  getEnv("ADMIN_NOME", "Administrador"),
		AdminEmail: getEnv("ADMIN_EMAIL", "admin@concessionaria.com"),
		AdminSenha: getEnv("ADMIN_SENHA", "admin123"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		SQLitePath: getEnv("SQLITE_PATH", "agenda.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "agenda"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		WebhookURL: getEnv("WEBHOOK_URL", ""),
	}
}

func getEnv(key, padrao string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return padrao
}
