package proposta

import (
	"testing"

	"github.com/AgendaCar/api-concessionaria/internal/armazenamento"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcularValorFinal(t *testing.T) {
	assert.Equal(t, "85000", CalcularValorFinal("100000", "15000"))
	// desconto maior que o valor trava em zero
	assert.Equal(t, "0", CalcularValorFinal("100000", "200000"))
	// sem desconto
	assert.Equal(t, "100000", CalcularValorFinal("100000", ""))
	// entrada ilegível conta como zero
	assert.Equal(t, "0", CalcularValorFinal("abc", "10"))
}

func TestFormatarNumero(t *testing.T) {
	assert.Equal(t, "PROP-001", FormatarNumero(1))
	assert.Equal(t, "PROP-042", FormatarNumero(42))
	assert.Equal(t, "PROP-1000", FormatarNumero(1000))
}

func TestResumoParcelas(t *testing.T) {
	assert.Equal(t, "12x R$ 2500", ResumoParcelas("Financiamento", "12", "2500"))
	assert.Equal(t, "-", ResumoParcelas("À Vista", "12", "2500"))
	assert.Equal(t, "-", ResumoParcelas("Financiamento", "", "2500"))
}

func TestNumeracaoNaoReaproveitaAposExclusao(t *testing.T) {
	s := armazenamento.NewMemStore()
	repo := NewRepository()

	primeira := Proposta{ID: "p1", Numero: FormatarNumero(repo.ProximaSequencia(s))}
	repo.Adicionar(s, primeira)
	assert.Equal(t, "PROP-001", primeira.Numero)

	// simula a exclusão manual da coleção inteira; o contador sobrevive
	armazenamento.Salvar(s, ChaveArmazenamento, []Proposta{})

	segunda := Proposta{ID: "p2", Numero: FormatarNumero(repo.ProximaSequencia(s))}
	repo.Adicionar(s, segunda)
	assert.Equal(t, "PROP-002", segunda.Numero)
}

func TestAtualizarStatus(t *testing.T) {
	s := armazenamento.NewMemStore()
	repo := NewRepository()
	repo.Adicionar(s, Proposta{ID: "p1", Status: StatusPendente})

	repo.AtualizarStatus(s, "p1", StatusAceita)

	p, ok := repo.BuscarPorID(s, "p1")
	require.True(t, ok)
	assert.Equal(t, StatusAceita, p.Status)

	// id inexistente é no-op
	repo.AtualizarStatus(s, "p9", StatusRecusada)
	assert.Len(t, repo.ListarTodos(s), 1)
}
