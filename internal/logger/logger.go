package logger

import "go.uber.org/zap"

var log *zap.Logger

// Init configura o logger global. Em desenvolvimento usa o formato
// legível de console; em produção, JSON.
func Init(dev bool) error {
	var err error
	if dev {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	return err
}

// L retorna o logger global. Antes de Init, retorna um logger nulo
// para que pacotes e testes possam logar sem configuração prévia.
func L() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
