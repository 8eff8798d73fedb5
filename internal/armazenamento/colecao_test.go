package armazenamento

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registroTeste struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

func TestCarregarInicializaComPadrao(t *testing.T) {
	s := NewMemStore()

	padrao := []registroTeste{{ID: "1", Nome: "seed"}}
	itens := Carregar(s, "colecao_teste", padrao)
	require.Equal(t, padrao, itens)

	// a chave deve ter sido gravada com o seed
	bruto, ok := s.Obter("colecao_teste")
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"1","nome":"seed"}]`, bruto)
}

func TestSalvarECarregarRoundTrip(t *testing.T) {
	s := NewMemStore()

	itens := []registroTeste{{ID: "1", Nome: "a"}, {ID: "2", Nome: "b"}}
	Salvar(s, "colecao_teste", itens)

	lidos := Carregar(s, "colecao_teste", []registroTeste{})
	assert.Equal(t, itens, lidos)
}

func TestCarregarEIdempotente(t *testing.T) {
	s := NewMemStore()
	Salvar(s, "colecao_teste", []registroTeste{{ID: "1", Nome: "a"}})

	primeira := Carregar(s, "colecao_teste", []registroTeste{})
	segunda := Carregar(s, "colecao_teste", []registroTeste{})
	assert.Equal(t, primeira, segunda)
}

func TestCarregarConteudoCorrompidoVoltaPadrao(t *testing.T) {
	s := NewMemStore()
	s.Definir("colecao_teste", "{isso não é um array json")

	padrao := []registroTeste{{ID: "seed", Nome: "seed"}}
	itens := Carregar(s, "colecao_teste", padrao)
	assert.Equal(t, padrao, itens)
}

func TestProximoNumeroMonotonico(t *testing.T) {
	s := NewMemStore()

	assert.Equal(t, 1, ProximoNumero(s, "seq_teste"))
	assert.Equal(t, 2, ProximoNumero(s, "seq_teste"))
	assert.Equal(t, 3, ProximoNumero(s, "seq_teste"))
}

func TestMutarConcorrenteNaoPerdeRegistro(t *testing.T) {
	s := NewMemStore()

	const gravacoes = 16
	largada := make(chan struct{})
	var wg sync.WaitGroup
	for g := 0; g < gravacoes; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			<-largada
			Mutar(s, "colecao_concorrente", func(itens []registroTeste) []registroTeste {
				return append(itens, registroTeste{ID: strconv.Itoa(id)})
			})
		}(g)
	}
	close(largada)
	wg.Wait()

	assert.Len(t, Carregar(s, "colecao_concorrente", []registroTeste{}), gravacoes)
}

func TestProximoNumeroConcorrenteNaoRepete(t *testing.T) {
	s := NewMemStore()

	const chamadas = 16
	largada := make(chan struct{})
	numeros := make(chan int, chamadas)
	var wg sync.WaitGroup
	for g := 0; g < chamadas; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-largada
			numeros <- ProximoNumero(s, "seq_concorrente")
		}()
	}
	close(largada)
	wg.Wait()
	close(numeros)

	vistos := map[int]bool{}
	for n := range numeros {
		assert.False(t, vistos[n], "número %d saiu duas vezes", n)
		vistos[n] = true
	}
	assert.Len(t, vistos, chamadas)
}

func TestProximoNumeroCorrompidoReinicia(t *testing.T) {
	s := NewMemStore()
	s.Definir("seq_teste", "não é número")

	assert.Equal(t, 1, ProximoNumero(s, "seq_teste"))
	assert.Equal(t, 2, ProximoNumero(s, "seq_teste"))
}
