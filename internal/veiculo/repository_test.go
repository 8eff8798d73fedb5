package veiculo

import (
	"testing"

	"github.com/AgendaCar/api-concessionaria/internal/armazenamento"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoCorolla() Veiculo {
	return Veiculo{
		ID:     "v1",
		Marca:  "Toyota",
		Modelo: "Corolla",
		Ano:    "2023",
		Placa:  "ABC1D23",
		Status: StatusDisponivel,
	}
}

func TestAdicionarEListar(t *testing.T) {
	s := armazenamento.NewMemStore()
	repo := NewRepository()

	repo.Adicionar(s, novoCorolla())

	veiculos := repo.ListarTodos(s)
	require.Len(t, veiculos, 1)
	assert.Equal(t, novoCorolla(), veiculos[0])
}

func TestBuscarPorID(t *testing.T) {
	s := armazenamento.NewMemStore()
	repo := NewRepository()
	repo.Adicionar(s, novoCorolla())

	v, ok := repo.BuscarPorID(s, "v1")
	require.True(t, ok)
	assert.Equal(t, "Corolla", v.Modelo)

	_, ok = repo.BuscarPorID(s, "v2")
	assert.False(t, ok)
}

func TestAtualizarParcial(t *testing.T) {
	s := armazenamento.NewMemStore()
	repo := NewRepository()
	repo.Adicionar(s, novoCorolla())

	reservado := StatusReservado
	repo.Atualizar(s, "v1", Atualizacao{Status: &reservado})

	veiculos := repo.ListarTodos(s)
	require.Len(t, veiculos, 1)
	assert.Equal(t, StatusReservado, veiculos[0].Status)
	// os demais campos ficam intactos
	assert.Equal(t, "Toyota", veiculos[0].Marca)
	assert.Equal(t, "ABC1D23", veiculos[0].Placa)
}

func TestAtualizarIDInexistenteENoOp(t *testing.T) {
	s := armazenamento.NewMemStore()
	repo := NewRepository()
	repo.Adicionar(s, novoCorolla())

	vendido := StatusVendido
	repo.Atualizar(s, "nao-existe", Atualizacao{Status: &vendido})

	veiculos := repo.ListarTodos(s)
	require.Len(t, veiculos, 1)
	assert.Equal(t, StatusDisponivel, veiculos[0].Status)
}

func TestRemover(t *testing.T) {
	s := armazenamento.NewMemStore()
	repo := NewRepository()
	repo.Adicionar(s, novoCorolla())
	outro := novoCorolla()
	outro.ID = "v2"
	outro.Placa = "XYZ9Z99"
	repo.Adicionar(s, outro)

	repo.Remover(s, "v1")

	veiculos := repo.ListarTodos(s)
	require.Len(t, veiculos, 1)
	assert.Equal(t, "v2", veiculos[0].ID)

	// remover id inexistente não muda nada
	repo.Remover(s, "v1")
	assert.Len(t, repo.ListarTodos(s), 1)
}

func TestPlacaEmUso(t *testing.T) {
	s := armazenamento.NewMemStore()
	repo := NewRepository()
	repo.Adicionar(s, novoCorolla())

	assert.True(t, repo.PlacaEmUso(s, "ABC1D23"))
	assert.True(t, repo.PlacaEmUso(s, "abc1d23"))
	assert.False(t, repo.PlacaEmUso(s, "ZZZ0Z00"))
}
