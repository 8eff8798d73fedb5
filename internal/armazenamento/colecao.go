package armazenamento

import (
	"encoding/json"
	"strconv"
	"sync"

	"github.com/AgendaCar/api-concessionaria/internal/logger"
	"go.uber.org/zap"
)

// O servidor atende cada requisição em goroutine própria; sem uma
// tranca por coleção, dois ciclos carregar-alterar-salvar simultâneos
// na mesma chave se sobrepõem e um deles some. Todo acesso a uma chave
// passa por Carregar, Salvar, Mutar ou ProximoNumero, que seguram a
// tranca da chave.
var (
	trancasMu sync.Mutex
	trancas   = map[string]*sync.Mutex{}
)

func trancaDe(chave string) *sync.Mutex {
	trancasMu.Lock()
	defer trancasMu.Unlock()
	if trancas[chave] == nil {
		trancas[chave] = &sync.Mutex{}
	}
	return trancas[chave]
}

// Carregar lê a coleção inteira gravada sob a chave. Chave ausente
// inicializa o armazenamento com o valor padrão e o devolve. Conteúdo
// corrompido não derruba o chamador: loga e devolve o padrão.
func Carregar[T any](s Store, chave string, padrao []T) []T {
	tranca := trancaDe(chave)
	tranca.Lock()
	defer tranca.Unlock()
	return carregar(s, chave, padrao)
}

func carregar[T any](s Store, chave string, padrao []T) []T {
	bruto, ok := s.Obter(chave)
	if !ok {
		salvar(s, chave, padrao)
		return padrao
	}
	var itens []T
	if err := json.Unmarshal([]byte(bruto), &itens); err != nil {
		logger.L().Warn("conteúdo corrompido no armazenamento, usando padrão",
			zap.String("chave", chave), zap.Error(err))
		return padrao
	}
	return itens
}

// Salvar serializa e grava a coleção inteira, substituindo o valor
// anterior. Melhor esforço: falha de serialização é logada e engolida.
func Salvar[T any](s Store, chave string, itens []T) {
	tranca := trancaDe(chave)
	tranca.Lock()
	defer tranca.Unlock()
	salvar(s, chave, itens)
}

func salvar[T any](s Store, chave string, itens []T) {
	bruto, err := json.Marshal(itens)
	if err != nil {
		logger.L().Error("erro ao serializar coleção", zap.String("chave", chave), zap.Error(err))
		return
	}
	s.Definir(chave, string(bruto))
}

// Mutar executa um ciclo carregar-alterar-salvar atômico sobre a
// coleção da chave. fn recebe a coleção atual e devolve a que deve
// ficar gravada.
func Mutar[T any](s Store, chave string, fn func([]T) []T) {
	tranca := trancaDe(chave)
	tranca.Lock()
	defer tranca.Unlock()
	salvar(s, chave, fn(carregar(s, chave, []T{})))
}

// ProximoNumero incrementa e devolve o contador monotônico gravado sob
// a chave. Diferente de contar o tamanho da coleção, o contador nunca
// reaproveita número depois de uma exclusão.
func ProximoNumero(s Store, chave string) int {
	tranca := trancaDe(chave)
	tranca.Lock()
	defer tranca.Unlock()

	n := 0
	if bruto, ok := s.Obter(chave); ok {
		valor, err := strconv.Atoi(bruto)
		if err != nil {
			logger.L().Warn("contador corrompido, reiniciando",
				zap.String("chave", chave), zap.Error(err))
		} else {
			n = valor
		}
	}
	n++
	s.Definir(chave, strconv.Itoa(n))
	return n
}
