package proposta

import (
	"github.com/AgendaCar/api-concessionaria/internal/armazenamento"
)

// Repository opera a coleção de propostas. Propostas não são excluídas;
// recusa é transição de status.
type Repository interface {
	ListarTodos(s armazenamento.Store) []Proposta
	BuscarPorID(s armazenamento.Store, id string) (Proposta, bool)
	Adicionar(s armazenamento.Store, p Proposta)
	AtualizarStatus(s armazenamento.Store, id, status string)
	ProximaSequencia(s armazenamento.Store) int
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarTodos(s armazenamento.Store) []Proposta {
	return armazenamento.Carregar(s, ChaveArmazenamento, []Proposta{})
}

func (r *repositoryImpl) BuscarPorID(s armazenamento.Store, id string) (Proposta, bool) {
	for _, p := range r.ListarTodos(s) {
		if p.ID == id {
			return p, true
		}
	}
	return Proposta{}, false
}

func (r *repositoryImpl) Adicionar(s armazenamento.Store, p Proposta) {
	armazenamento.Mutar(s, ChaveArmazenamento, func(propostas []Proposta) []Proposta {
		return append(propostas, p)
	})
}

func (r *repositoryImpl) AtualizarStatus(s armazenamento.Store, id, status string) {
	armazenamento.Mutar(s, ChaveArmazenamento, func(propostas []Proposta) []Proposta {
		for i := range propostas {
			if propostas[i].ID == id {
				propostas[i].Status = status
				break
			}
		}
		return propostas
	})
}

func (r *repositoryImpl) ProximaSequencia(s armazenamento.Store) int {
	return armazenamento.ProximoNumero(s, ChaveSequencia)
}
