package db

import (
	"fmt"

	"github.com/AgendaCar/api-concessionaria/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Conectar abre a base conforme o driver configurado. O padrão é um
// arquivo SQLite local, espelhando o perfil único do navegador; Postgres
// fica disponível para quem quiser centralizar a base.
func Conectar(cfg *config.Config) (*gorm.DB, error) {
	opts := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
		)
		return gorm.Open(postgres.Open(dsn), opts)
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.SQLitePath), opts)
	default:
		return nil, fmt.Errorf("driver de banco desconhecido: %q", cfg.DBDriver)
	}
}
