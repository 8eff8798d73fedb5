package estoque

import (
	"testing"

	"github.com/AgendaCar/api-concessionaria/internal/veiculo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisponivel(t *testing.T) {
	veiculos := []veiculo.Veiculo{
		{Marca: "Toyota", Modelo: "Corolla", Ano: "2023", Status: veiculo.StatusDisponivel},
	}

	// marca e modelo sem diferenciar maiúsculas, ano exato
	assert.True(t, Disponivel(veiculos, "toyota", "corolla", "2023"))
	assert.True(t, Disponivel(veiculos, "TOYOTA", "COROLLA", "2023"))
	assert.False(t, Disponivel(veiculos, "toyota", "corolla", "2022"))
	assert.False(t, Disponivel(veiculos, "honda", "corolla", "2023"))
}

func TestDisponivelIgnoraStatusNaoDisponivel(t *testing.T) {
	veiculos := []veiculo.Veiculo{
		{Marca: "Toyota", Modelo: "Corolla", Ano: "2023", Status: veiculo.StatusVendido},
		{Marca: "Toyota", Modelo: "Corolla", Ano: "2023", Status: veiculo.StatusReservado},
	}
	assert.False(t, Disponivel(veiculos, "Toyota", "Corolla", "2023"))
}

func TestRankearSimilaresOrdemEEstabilidade(t *testing.T) {
	// pontuações: hilux=3 (marca), corolla2024=3+2+1=6... o match exato sai,
	// então montamos candidatos com pontuações 3, 3, 1 e 0
	veiculos := []veiculo.Veiculo{
		{ID: "a", Marca: "Toyota", Modelo: "Hilux", Ano: "2019", Status: veiculo.StatusDisponivel},   // 3
		{ID: "b", Marca: "Toyota", Modelo: "Etios", Ano: "2018", Status: veiculo.StatusDisponivel},   // 3
		{ID: "c", Marca: "Honda", Modelo: "Civic", Ano: "2023", Status: veiculo.StatusDisponivel},    // 1
		{ID: "d", Marca: "Ford", Modelo: "Fiesta", Ano: "2015", Status: veiculo.StatusDisponivel},    // 0
		{ID: "e", Marca: "Toyota", Modelo: "Corolla", Ano: "2023", Status: veiculo.StatusDisponivel}, // exato, sai
	}

	similares := RankearSimilares(veiculos, "Toyota", "Corolla", "2023", 3)
	require.Len(t, similares, 3)
	// empate 3-3 preserva a ordem original do estoque
	assert.Equal(t, "a", similares[0].ID)
	assert.Equal(t, "b", similares[1].ID)
	assert.Equal(t, "c", similares[2].ID)
}

func TestRankearSimilaresIncluiPontuacaoZeroComEstoqueCurto(t *testing.T) {
	veiculos := []veiculo.Veiculo{
		{ID: "a", Marca: "Toyota", Modelo: "Hilux", Ano: "2019", Status: veiculo.StatusDisponivel}, // 3
		{ID: "d", Marca: "Ford", Modelo: "Fiesta", Ano: "2015", Status: veiculo.StatusDisponivel},  // 0
	}

	similares := RankearSimilares(veiculos, "Toyota", "Corolla", "2023", 3)
	require.Len(t, similares, 2)
	assert.Equal(t, "a", similares[0].ID)
	assert.Equal(t, "d", similares[1].ID)
}

func TestRankearSimilaresSoConsideraDisponiveis(t *testing.T) {
	veiculos := []veiculo.Veiculo{
		{ID: "a", Marca: "Toyota", Modelo: "Hilux", Ano: "2023", Status: veiculo.StatusVendido},
	}
	assert.Empty(t, RankearSimilares(veiculos, "Toyota", "Corolla", "2023", 3))
}

func TestAnoProximo(t *testing.T) {
	assert.True(t, anoProximo("2022", "2023"))
	assert.True(t, anoProximo("2024", "2023"))
	assert.True(t, anoProximo("2023", "2023"))
	assert.False(t, anoProximo("2021", "2023"))
	assert.False(t, anoProximo("abc", "2023"))
}
