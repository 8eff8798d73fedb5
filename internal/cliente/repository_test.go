package cliente

import (
	"strconv"
	"sync"
	"testing"

	"github.com/AgendaCar/api-concessionaria/internal/armazenamento"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelefoneEmUso(t *testing.T) {
	s := armazenamento.NewMemStore()
	repo := NewRepository()
	repo.Adicionar(s, Cliente{ID: "c1", Nome: "João Silva", Telefone: "(11)999999999"})

	// compara só os dígitos, com ou sem máscara
	assert.True(t, repo.TelefoneEmUso(s, "11999999999"))
	assert.True(t, repo.TelefoneEmUso(s, "(11)99999-9999"))
	assert.False(t, repo.TelefoneEmUso(s, "11888888888"))
}

func TestAtualizarIDInexistenteENoOp(t *testing.T) {
	s := armazenamento.NewMemStore()
	repo := NewRepository()
	repo.Adicionar(s, Cliente{ID: "c1", Nome: "João Silva", Telefone: "11999999999"})

	antes := repo.ListarTodos(s)
	novoNome := "Outro Nome"
	repo.Atualizar(s, "nao-existe", Atualizacao{Nome: &novoNome})

	assert.Equal(t, antes, repo.ListarTodos(s))
}

func TestBuscarPorID(t *testing.T) {
	s := armazenamento.NewMemStore()
	repo := NewRepository()
	repo.Adicionar(s, Cliente{ID: "c1", Nome: "João Silva", Telefone: "11999999999"})

	c, ok := repo.BuscarPorID(s, "c1")
	require.True(t, ok)
	assert.Equal(t, "João Silva", c.Nome)

	_, ok = repo.BuscarPorID(s, "c2")
	assert.False(t, ok)
}

func TestAdicionarConcorrenteNaoPerdeCliente(t *testing.T) {
	s := armazenamento.NewMemStore()
	repo := NewRepository()

	// cada requisição roda em goroutine própria; nenhuma gravação
	// simultânea pode sumir
	const gravacoes = 16
	largada := make(chan struct{})
	var wg sync.WaitGroup
	for g := 0; g < gravacoes; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			<-largada
			repo.Adicionar(s, Cliente{
				ID:       strconv.Itoa(id),
				Nome:     "Cliente " + strconv.Itoa(id),
				Telefone: strconv.Itoa(11900000000 + id),
			})
		}(g)
	}
	close(largada)
	wg.Wait()

	assert.Len(t, repo.ListarTodos(s), gravacoes)
}

func TestRemoverNaoCascateia(t *testing.T) {
	s := armazenamento.NewMemStore()
	repo := NewRepository()
	repo.Adicionar(s, Cliente{ID: "c1", Nome: "João Silva", Telefone: "11999999999"})

	repo.Remover(s, "c1")
	assert.Empty(t, repo.ListarTodos(s))
}
