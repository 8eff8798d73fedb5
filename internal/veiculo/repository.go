package veiculo

import (
	"strings"

	"github.com/AgendaCar/api-concessionaria/internal/armazenamento"
)

// Repository opera a coleção de veículos. Nenhuma operação valida nada
// nem devolve erro: id inexistente em Atualizar/Remover é no-op, e a
// checagem de placa duplicada é responsabilidade de quem insere.
type Repository interface {
	ListarTodos(s armazenamento.Store) []Veiculo
	BuscarPorID(s armazenamento.Store, id string) (Veiculo, bool)
	Adicionar(s armazenamento.Store, v Veiculo)
	Atualizar(s armazenamento.Store, id string, campos Atualizacao)
	Remover(s armazenamento.Store, id string)
	PlacaEmUso(s armazenamento.Store, placa string) bool
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarTodos(s armazenamento.Store) []Veiculo {
	return armazenamento.Carregar(s, ChaveArmazenamento, []Veiculo{})
}

func (r *repositoryImpl) BuscarPorID(s armazenamento.Store, id string) (Veiculo, bool) {
	for _, v := range r.ListarTodos(s) {
		if v.ID == id {
			return v, true
		}
	}
	return Veiculo{}, false
}

func (r *repositoryImpl) Adicionar(s armazenamento.Store, v Veiculo) {
	armazenamento.Mutar(s, ChaveArmazenamento, func(veiculos []Veiculo) []Veiculo {
		return append(veiculos, v)
	})
}

func (r *repositoryImpl) Atualizar(s armazenamento.Store, id string, campos Atualizacao) {
	armazenamento.Mutar(s, ChaveArmazenamento, func(veiculos []Veiculo) []Veiculo {
		for i := range veiculos {
			if veiculos[i].ID == id {
				veiculos[i].aplicar(campos)
				break
			}
		}
		return veiculos
	})
}

func (r *repositoryImpl) Remover(s armazenamento.Store, id string) {
	armazenamento.Mutar(s, ChaveArmazenamento, func(veiculos []Veiculo) []Veiculo {
		restantes := make([]Veiculo, 0, len(veiculos))
		for _, v := range veiculos {
			if v.ID != id {
				restantes = append(restantes, v)
			}
		}
		return restantes
	})
}

func (r *repositoryImpl) PlacaEmUso(s armazenamento.Store, placa string) bool {
	for _, v := range r.ListarTodos(s) {
		if strings.EqualFold(v.Placa, placa) {
			return true
		}
	}
	return false
}
