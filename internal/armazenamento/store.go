// Package armazenamento implementa o substrato chave-valor da agenda:
// cada coleção de registros vive inteira sob uma chave, serializada em
// JSON, como no armazenamento original do console.
package armazenamento

import (
	"errors"

	"github.com/AgendaCar/api-concessionaria/internal/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store é o substrato chave-valor. Falhas de leitura ou escrita são
// absorvidas e logadas; nenhuma operação propaga erro ao chamador.
type Store interface {
	Obter(chave string) (string, bool)
	Definir(chave, valor string)
}

// Registro é a linha persistida de uma coleção (ou contador).
type Registro struct {
	Chave string `gorm:"primaryKey;size:64"`
	Valor string `gorm:"type:text"`
}

func (Registro) TableName() string { return "registros" }

// GormStore guarda os registros numa tabela chave-valor via GORM.
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore migra a tabela de registros e devolve o store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Registro{}); err != nil {
		return nil, err
	}
	return &GormStore{DB: db}, nil
}

func (s *GormStore) Obter(chave string) (string, bool) {
	var r Registro
	err := s.DB.First(&r, "chave = ?", chave).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.L().Error("erro ao ler registro", zap.String("chave", chave), zap.Error(err))
		}
		return "", false
	}
	return r.Valor, true
}

func (s *GormStore) Definir(chave, valor string) {
	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chave"}},
		DoUpdates: clause.AssignmentColumns([]string{"valor"}),
	}).Create(&Registro{Chave: chave, Valor: valor}).Error
	if err != nil {
		logger.L().Error("erro ao gravar registro", zap.String("chave", chave), zap.Error(err))
	}
}
