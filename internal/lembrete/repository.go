package lembrete

import (
	"github.com/AgendaCar/api-concessionaria/internal/armazenamento"
)

// Repository opera a coleção de lembretes; id inexistente em
// Atualizar/Remover é no-op silencioso.
type Repository interface {
	ListarTodos(s armazenamento.Store) []Lembrete
	BuscarPorID(s armazenamento.Store, id string) (Lembrete, bool)
	Adicionar(s armazenamento.Store, l Lembrete)
	Atualizar(s armazenamento.Store, id string, campos Atualizacao)
	Remover(s armazenamento.Store, id string)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarTodos(s armazenamento.Store) []Lembrete {
	return armazenamento.Carregar(s, ChaveArmazenamento, []Lembrete{})
}

func (r *repositoryImpl) BuscarPorID(s armazenamento.Store, id string) (Lembrete, bool) {
	for _, l := range r.ListarTodos(s) {
		if l.ID == id {
			return l, true
		}
	}
	return Lembrete{}, false
}

func (r *repositoryImpl) Adicionar(s armazenamento.Store, l Lembrete) {
	armazenamento.Mutar(s, ChaveArmazenamento, func(lembretes []Lembrete) []Lembrete {
		return append(lembretes, l)
	})
}

func (r *repositoryImpl) Atualizar(s armazenamento.Store, id string, campos Atualizacao) {
	armazenamento.Mutar(s, ChaveArmazenamento, func(lembretes []Lembrete) []Lembrete {
		for i := range lembretes {
			if lembretes[i].ID == id {
				lembretes[i].aplicar(campos)
				break
			}
		}
		return lembretes
	})
}

func (r *repositoryImpl) Remover(s armazenamento.Store, id string) {
	armazenamento.Mutar(s, ChaveArmazenamento, func(lembretes []Lembrete) []Lembrete {
		restantes := make([]Lembrete, 0, len(lembretes))
		for _, l := range lembretes {
			if l.ID != id {
				restantes = append(restantes, l)
			}
		}
		return restantes
	})
}
